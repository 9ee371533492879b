package kittykeys

import "strings"

// Mod is a bitmask of key modifiers. The wire encoding is offset by one:
// a modifier field of 1 means no modifiers.
type Mod uint8

// Modifiers
const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
	ModSuper
	ModHyper
	ModMeta
	ModCapsLock
	ModNumLock
)

// EventType says what happened to the key. The values match the wire
// encoding of the event-type sub-field.
type EventType uint8

const (
	EventPress EventType = iota + 1
	EventRepeat
	EventRelease
)

func (e EventType) String() string {
	switch e {
	case EventRepeat:
		return "repeat"
	case EventRelease:
		return "release"
	default:
		return "press"
	}
}

// Kind distinguishes the two key identity variants so that callers can
// switch exhaustively instead of sniffing the representation.
type Kind uint8

const (
	KindRune    Kind = iota // a printable character, in Rune
	KindSpecial             // a named key, in Special
)

// KeyEvent is one decoded key report.
type KeyEvent struct {
	Kind    Kind
	Rune    rune       // the printable key, when Kind is KindRune
	Special SpecialKey // the named key, when Kind is KindSpecial
	Mods    Mod
	Event   EventType
	Shifted rune   // shifted alternate key, 0 when not reported
	Base    rune   // base layout alternate key, 0 when not reported
	Text    string // associated text, empty when not reported
}

func runeEvent(r rune) KeyEvent {
	return KeyEvent{Kind: KindRune, Rune: r, Event: EventPress}
}

func specialEvent(k SpecialKey) KeyEvent {
	return KeyEvent{Kind: KindSpecial, Special: k, Event: EventPress}
}

var modNames = []struct {
	mod  Mod
	name string
}{
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModShift, "shift"},
	{ModSuper, "super"},
	{ModHyper, "hyper"},
	{ModMeta, "meta"},
}

// String renders the event as "ctrl+shift+left" style text for
// debugging and demo output. Lock modifiers are omitted.
func (ev KeyEvent) String() string {
	var parts []string
	for _, mn := range modNames {
		if ev.Mods&mn.mod != 0 {
			parts = append(parts, mn.name)
		}
	}
	if ev.Kind == KindSpecial {
		parts = append(parts, ev.Special.String())
	} else {
		parts = append(parts, string(ev.Rune))
	}
	return strings.Join(parts, "+")
}
