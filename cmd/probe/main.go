package main

import (
	"fmt"
	"os"

	"github.com/mgutz/ansi"
	"github.com/xyproto/kittykeys"
)

func main() {
	if !kittykeys.Interactive() {
		fmt.Fprintln(os.Stderr, "stdin/stdout is not a terminal, nothing to probe")
		os.Exit(1)
	}

	info := kittykeys.GetTerminalInfo()
	fmt.Printf("terminal: %s (probe timeout %v)\n", info.Program, info.ProbeTimeout())

	tty, err := kittykeys.NewTTY()
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not open the terminal:", err)
		os.Exit(1)
	}
	defer tty.Close()

	prober := kittykeys.NewProber(tty)
	if !prober.Supported() {
		fmt.Printf("%s\r\n", ansi.Color("kitty keyboard protocol: not supported", "red"))
		os.Exit(1)
	}
	fmt.Printf("%s\r\n", ansi.Color("kitty keyboard protocol: supported", "green"))

	flags, err := prober.EnabledFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read enabled flags: %v\r\n", err)
		os.Exit(1)
	}
	fmt.Printf("enabled enhancements: %s (%d)\r\n", ansi.Color(flags.String(), "cyan"), flags)
}
