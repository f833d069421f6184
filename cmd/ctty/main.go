//go:build darwin || freebsd

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"cttydev/tty"
	"cttydev/tty_bsd"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/term"
)

func main() {
	pidFlag := flag.Int("pid", 0, "Process ID to inspect (default: this process)")
	jsonFlag := flag.Bool("json", false, "Output result as JSON")
	quietFlag := flag.Bool("quiet", false, "Print only the raw device number (0 when there is none)")
	verboseFlag := flag.Bool("v", false, "Log progress to stderr")
	flag.Parse()

	if *pidFlag < 0 {
		fmt.Println("Error: --pid must be positive")
		flag.Usage()
		os.Exit(1)
	}

	if *quietFlag {
		if *pidFlag != 0 {
			fmt.Println("Error: --quiet only reports this process")
			os.Exit(1)
		}
		fmt.Println(tty_bsd.ControllingDevice())
		return
	}

	log := logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "ctty"))

	pid := *pidFlag
	if pid == 0 {
		pid = os.Getpid()
		if *verboseFlag && !term.IsTerminal(int(os.Stdin.Fd())) {
			log.Infoln("stdin is not a terminal; the controlling terminal may still be set")
		}
	}

	if *verboseFlag {
		log.Infoln("Querying kern.proc.pid for", pid)
	}

	info, err := tty_bsd.New().Describe(pid)
	if err != nil {
		if errors.Is(err, tty.ErrNoControllingTTY) {
			fmt.Printf("Process %d has no controlling terminal\n", pid)
		} else {
			fmt.Printf("Error querying process %d: %v\n", pid, err)
		}
		os.Exit(1)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			fmt.Printf("Error encoding result: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(info)
}
