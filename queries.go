package kittykeys

import (
	"strconv"
	"strings"
)

// Flags is the bitmask of progressive enhancements a terminal can have
// enabled for the kitty keyboard protocol.
type Flags uint8

// Progressive enhancement flags.
// See: https://sw.kovidgoyal.net/kitty/keyboard-protocol/#progressive-enhancement
const (
	FlagDisambiguateEscapeCodes Flags = 1 << iota
	FlagReportEventTypes
	FlagReportAlternateKeys
	FlagReportAllKeysAsEscapeCodes
	FlagReportAssociatedText

	FlagsAll = FlagDisambiguateEscapeCodes | FlagReportEventTypes |
		FlagReportAlternateKeys | FlagReportAllKeysAsEscapeCodes | FlagReportAssociatedText
)

// Has reports whether all the given flags are set.
func (f Flags) Has(x Flags) bool {
	return f&x == x
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagDisambiguateEscapeCodes, "disambiguate-escape-codes"},
	{FlagReportEventTypes, "report-event-types"},
	{FlagReportAlternateKeys, "report-alternate-keys"},
	{FlagReportAllKeysAsEscapeCodes, "report-all-keys-as-escape-codes"},
	{FlagReportAssociatedText, "report-associated-text"},
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, ",")
}

// Modes for SetFlags.
const (
	ModeReplaceFlags = 1 // set the given flags, unset all others
	ModeSetFlags     = 2 // set the given flags, keep the rest
	ModeUnsetFlags   = 3 // unset the given flags, keep the rest
)

// QueryFlags asks the terminal for its currently enabled enhancement
// flags. A terminal that implements the protocol replies with
// ESC [ ? flags u; one that does not stays silent.
const QueryFlags = "\x1b[?u"

// DisableEnhancements pushes zero onto the terminal's enhancement stack,
// turning the protocol off. Equivalent to PushFlags(0).
const DisableEnhancements = "\x1b[>u"

// PushFlags returns the sequence that pushes the given flags onto the
// terminal's enhancement stack.
func PushFlags(f Flags) string {
	var s string
	if f > 0 {
		s = strconv.Itoa(int(f))
	}
	return "\x1b[>" + s + "u"
}

// PopFlags returns the sequence that pops n entries off the terminal's
// enhancement stack.
func PopFlags(n int) string {
	var s string
	if n > 0 {
		s = strconv.Itoa(n)
	}
	return "\x1b[<" + s + "u"
}

// SetFlags returns the sequence that changes the current enhancement
// flags in place, without touching the stack. The mode is one of
// ModeReplaceFlags, ModeSetFlags or ModeUnsetFlags.
func SetFlags(f Flags, mode int) string {
	return "\x1b[=" + strconv.Itoa(int(f)) + ";" + strconv.Itoa(mode) + "u"
}
