package kittykeys

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Translate decodes the body of one CSI key-report sequence into a key
// event. The body is everything after the ESC [ introducer, terminator
// byte included. The second return value is false when the bytes are not
// a key report at all: empty input, or a terminator outside the
// recognized set.
//
// Translate is pure and never panics. It sits directly on the receive
// path of live terminal bytes, where truncated and corrupt sequences are
// routine, so malformed fields degrade rather than fail: a broken
// modifier field falls back to no modifiers, an unknown event type falls
// back to press. Only a missing or undecodable key identity suppresses
// the event.
func Translate(body []byte) (KeyEvent, bool) {
	if len(body) == 0 {
		return KeyEvent{}, false
	}
	terminator := body[len(body)-1]
	fields := strings.Split(string(body[:len(body)-1]), ";")
	switch terminator {
	case 'u':
		return translateUnicodeKey(fields)
	case '~':
		return translateLegacyIndex(fields)
	default:
		if key, ok := letterKeys[terminator]; ok {
			return translateLegacyLetter(key, terminator, fields)
		}
		return KeyEvent{}, false
	}
}

// translateUnicodeKey handles code[:shifted[:base]] ; mods[:event] ; text u
func translateUnicodeKey(fields []string) (KeyEvent, bool) {
	ev, ok := keyIdentity(fields[0])
	if !ok {
		return KeyEvent{}, false
	}
	if len(fields) > 1 {
		ev.Mods, ev.Event = modifierField(fields[1])
	}
	if len(fields) > 2 {
		ev.Text = textField(fields[2])
	}
	return ev, true
}

// translateLegacyIndex handles index ; mods[:event] ~
func translateLegacyIndex(fields []string) (KeyEvent, bool) {
	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return KeyEvent{}, false
	}
	key, ok := tildeKeys[index]
	if !ok {
		return KeyEvent{}, false
	}
	ev := specialEvent(key)
	if len(fields) > 1 {
		ev.Mods, ev.Event = modifierField(fields[1])
	}
	return ev, true
}

// translateLegacyLetter handles [1 ; mods[:event]] <letter>. The key is
// carried by the terminator letter itself; the leading "1" field, when
// present, is ignored.
func translateLegacyLetter(key SpecialKey, terminator byte, fields []string) (KeyEvent, bool) {
	ev := specialEvent(key)
	if len(fields) > 1 {
		ev.Mods, ev.Event = modifierField(fields[1])
	}
	if terminator == 'Z' {
		ev.Mods |= ModShift
	}
	return ev, true
}

// keyIdentity decodes the mandatory first field into a key event with
// optional shifted and base-layout alternates.
func keyIdentity(field string) (KeyEvent, bool) {
	sub := strings.Split(field, ":")
	if sub[0] == "" {
		return KeyEvent{}, false
	}
	code, err := strconv.Atoi(sub[0])
	if err != nil {
		// Not a decimal keycode. Degrade to the field itself when it is
		// a single printable character.
		r, size := utf8.DecodeRuneInString(sub[0])
		if r == utf8.RuneError || size != len(sub[0]) || !unicode.IsPrint(r) {
			return KeyEvent{}, false
		}
		return runeEvent(r), true
	}
	ev, ok := keycodeEvent(code)
	if !ok {
		return KeyEvent{}, false
	}
	if len(sub) > 1 {
		ev.Shifted = alternateKey(sub[1])
	}
	if len(sub) > 2 {
		ev.Base = alternateKey(sub[2])
	}
	return ev, true
}

// keycodeEvent maps a numeric keycode to a key identity: printable
// codepoints become runes, out-of-band codes go through the functional
// key table.
func keycodeEvent(code int) (KeyEvent, bool) {
	if key, ok := functionalKeys[code]; ok {
		return specialEvent(key), true
	}
	r := rune(code)
	if code > 0 && utf8.ValidRune(r) && unicode.IsPrint(r) {
		return runeEvent(r), true
	}
	return KeyEvent{}, false
}

// alternateKey parses a shifted or base-layout sub-field, returning 0
// when it is missing or unusable.
func alternateKey(s string) rune {
	code, err := strconv.Atoi(s)
	if err != nil || code <= 0 || !utf8.ValidRune(rune(code)) {
		return 0
	}
	return rune(code)
}

// modifierField decodes mods[:event]. The wire value is 1 + bitmask, so
// 1 means no modifiers. An unparsable modifier value never suppresses
// the key; it decodes as no modifiers.
func modifierField(field string) (Mod, EventType) {
	sub := strings.Split(field, ":")
	mods := Mod(parseModValue(sub[0]) - 1)
	event := EventPress
	if len(sub) > 1 {
		event = wireEventType(sub[1])
	}
	return mods, event
}

// parseModValue parses the decimal 1+bitmask modifier encoding, falling
// back to 1 (no modifiers) on anything that is not a small decimal.
func parseModValue(s string) int {
	if s == "" {
		return 1
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 1
		}
		n = n*10 + int(c-'0')
		if n > 256 {
			return 1
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// wireEventType decodes the event-type sub-field; anything unrecognized
// is a press.
func wireEventType(s string) EventType {
	switch s {
	case "2":
		return EventRepeat
	case "3":
		return EventRelease
	default:
		return EventPress
	}
}

// textField decodes the associated-text field, a colon-separated list of
// decimal codepoints. Undecodable entries are skipped.
func textField(field string) string {
	var b strings.Builder
	for _, cp := range strings.Split(field, ":") {
		code, err := strconv.Atoi(cp)
		if err != nil || code <= 0 || !utf8.ValidRune(rune(code)) {
			continue
		}
		b.WriteRune(rune(code))
	}
	return b.String()
}
