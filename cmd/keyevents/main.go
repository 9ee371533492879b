package main

import (
	"fmt"
	"os"

	"github.com/mgutz/ansi"
	"github.com/xyproto/kittykeys"
)

var eventColors = map[kittykeys.EventType]string{
	kittykeys.EventPress:   "green",
	kittykeys.EventRepeat:  "yellow",
	kittykeys.EventRelease: "blue",
}

func main() {
	tty, err := kittykeys.NewTTY()
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not open the terminal:", err)
		os.Exit(1)
	}
	defer tty.Close()

	if !kittykeys.NewProber(tty).Supported() {
		fmt.Fprintln(os.Stderr, "this terminal does not implement the kitty keyboard protocol")
		os.Exit(1)
	}

	if err := tty.EnableEnhancements(kittykeys.FlagDisambiguateEscapeCodes |
		kittykeys.FlagReportEventTypes | kittykeys.FlagReportAlternateKeys); err != nil {
		fmt.Fprintln(os.Stderr, "could not enable enhancements:", err)
		os.Exit(1)
	}
	defer tty.RestoreEnhancements()

	fmt.Print("press keys to see decoded events, press ESC twice to exit\r\n")

	escCount := 0
	for escCount < 2 {
		seq, err := tty.ReadSequence()
		if err != nil {
			break
		}
		if len(seq) == 0 {
			continue
		}

		if len(seq) >= 3 && seq[0] == 0x1b && seq[1] == '[' {
			ev, ok := kittykeys.Translate(seq[2:])
			if !ok {
				fmt.Printf("not a key report: %q\r\n", seq)
				continue
			}
			fmt.Printf("%s %s\r\n", ansi.Color(ev.String(), "cyan"),
				ansi.Color(ev.Event.String(), eventColors[ev.Event]))
			if ev.Text != "" {
				fmt.Printf("  text: %q\r\n", ev.Text)
			}
			if ev.Kind == kittykeys.KindSpecial && ev.Special == kittykeys.KeyEscape &&
				ev.Event != kittykeys.EventRelease {
				escCount++
			} else if ev.Event != kittykeys.EventRelease {
				escCount = 0
			}
			continue
		}

		if len(seq) == 1 && seq[0] == 0x1b {
			escCount++
			continue
		}
		escCount = 0
		fmt.Printf("raw input: %q\r\n", seq)
	}
	fmt.Print("bye!\r\n")
}
