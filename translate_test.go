package kittykeys

import "testing"

func TestTranslateEmptyBody(t *testing.T) {
	if _, ok := Translate(nil); ok {
		t.Fatalf("expected no event for nil input")
	}
	if _, ok := Translate([]byte{}); ok {
		t.Fatalf("expected no event for empty input")
	}
}

func TestTranslateUnknownTerminator(t *testing.T) {
	for _, body := range []string{"X", "97;2X", "1;5x", "97", "!"} {
		if _, ok := Translate([]byte(body)); ok {
			t.Errorf("expected no event for %q", body)
		}
	}
}

func TestTranslateBareTerminatorIsNoEvent(t *testing.T) {
	// A key identity is mandatory; a lone terminator carries none.
	for _, body := range []string{"u", ";2u", "~", ";5~"} {
		if _, ok := Translate([]byte(body)); ok {
			t.Errorf("expected no event for %q", body)
		}
	}
}

func TestTranslatePlainKey(t *testing.T) {
	for _, body := range []string{"97u", "au"} {
		ev, ok := Translate([]byte(body))
		if !ok {
			t.Fatalf("expected an event for %q", body)
		}
		if ev.Kind != KindRune || ev.Rune != 'a' {
			t.Errorf("%q: expected key a, got %+v", body, ev)
		}
		if ev.Mods != 0 {
			t.Errorf("%q: expected empty modifier set, got %v", body, ev.Mods)
		}
		if ev.Event != EventPress {
			t.Errorf("%q: expected press, got %v", body, ev.Event)
		}
	}
}

func TestTranslateModifiers(t *testing.T) {
	tests := []struct {
		body string
		mods Mod
	}{
		{"a;2u", ModShift},
		{"97;2u", ModShift},
		{"97;3u", ModAlt},
		{"97;5u", ModCtrl},
		{"97;6u", ModShift | ModCtrl},
		{"97;9u", ModSuper},
		{"97;1u", 0},
	}
	for _, tt := range tests {
		ev, ok := Translate([]byte(tt.body))
		if !ok {
			t.Fatalf("expected an event for %q", tt.body)
		}
		if ev.Mods != tt.mods {
			t.Errorf("%q: expected mods %v, got %v", tt.body, tt.mods, ev.Mods)
		}
	}
}

func TestTranslateMalformedModifierFallsBack(t *testing.T) {
	// A broken modifier field must never suppress a decodable key.
	for _, body := range []string{"a;xu", "97;u", "97;-1u", "97;999999u"} {
		ev, ok := Translate([]byte(body))
		if !ok {
			t.Fatalf("expected an event for %q", body)
		}
		if ev.Kind != KindRune || ev.Rune != 'a' {
			t.Errorf("%q: expected key a, got %+v", body, ev)
		}
		if ev.Mods != 0 {
			t.Errorf("%q: expected empty modifier set, got %v", body, ev.Mods)
		}
	}
}

func TestTranslateEventTypes(t *testing.T) {
	tests := []struct {
		body  string
		event EventType
	}{
		{"97;1u", EventPress},
		{"97;1:1u", EventPress},
		{"97;1:2u", EventRepeat},
		{"97;1:3u", EventRelease},
		{"97;1:9u", EventPress}, // unrecognized event type defaults to press
		{"97;2:3u", EventRelease},
	}
	for _, tt := range tests {
		ev, ok := Translate([]byte(tt.body))
		if !ok {
			t.Fatalf("expected an event for %q", tt.body)
		}
		if ev.Event != tt.event {
			t.Errorf("%q: expected %v, got %v", tt.body, tt.event, ev.Event)
		}
	}
}

func TestTranslateAlternateKeys(t *testing.T) {
	ev, ok := Translate([]byte("97:65:98;1u"))
	if !ok {
		t.Fatalf("expected an event")
	}
	if ev.Rune != 'a' || ev.Shifted != 'A' || ev.Base != 'b' {
		t.Errorf("unexpected alternates: %+v", ev)
	}

	// Missing or broken alternates decode as absent, not as failure.
	ev, ok = Translate([]byte("97:;2u"))
	if !ok {
		t.Fatalf("expected an event")
	}
	if ev.Rune != 'a' || ev.Shifted != 0 || ev.Mods != ModShift {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestTranslateAssociatedText(t *testing.T) {
	ev, ok := Translate([]byte("97;;97:98u"))
	if !ok {
		t.Fatalf("expected an event")
	}
	if ev.Text != "ab" {
		t.Errorf("expected text ab, got %q", ev.Text)
	}
	if ev.Mods != 0 || ev.Event != EventPress {
		t.Errorf("empty modifier field should decode as unmodified press: %+v", ev)
	}

	ev, _ = Translate([]byte("97;2;8364u"))
	if ev.Text != "€" {
		t.Errorf("expected euro sign, got %q", ev.Text)
	}
}

func TestTranslateFunctionalKeycodes(t *testing.T) {
	tests := []struct {
		body string
		key  SpecialKey
	}{
		{"13u", KeyEnter},
		{"27u", KeyEscape},
		{"9u", KeyTab},
		{"127u", KeyBackspace},
		{"57364u", KeyF1},
		{"57383u", KeyF20},
		{"57414u", KeyKpEnter},
		{"57417u", KeyUp},
		{"57441u", KeyLeftShift},
	}
	for _, tt := range tests {
		ev, ok := Translate([]byte(tt.body))
		if !ok {
			t.Fatalf("expected an event for %q", tt.body)
		}
		if ev.Kind != KindSpecial || ev.Special != tt.key {
			t.Errorf("%q: expected %v, got %+v", tt.body, tt.key, ev)
		}
	}
}

func TestTranslateInvalidKeycodes(t *testing.T) {
	// No crash and no event for codes with no key identity.
	for _, body := range []string{"0u", "1u", "1114112u", "99999999999999999999u"} {
		if _, ok := Translate([]byte(body)); ok {
			t.Errorf("expected no event for %q", body)
		}
	}
}

func TestTranslateTildeForm(t *testing.T) {
	tests := []struct {
		body string
		key  SpecialKey
		mods Mod
	}{
		{"1~", KeyHome, 0},
		{"2~", KeyInsert, 0},
		{"3~", KeyDelete, 0},
		{"4~", KeyEnd, 0},
		{"5~", KeyPageUp, 0},
		{"6~", KeyPageDown, 0},
		{"7~", KeyHome, 0},
		{"15~", KeyF5, 0},
		{"24~", KeyF12, 0},
		{"5;3~", KeyPageUp, ModAlt},
		{"3;2~", KeyDelete, ModShift},
	}
	for _, tt := range tests {
		ev, ok := Translate([]byte(tt.body))
		if !ok {
			t.Fatalf("expected an event for %q", tt.body)
		}
		if ev.Kind != KindSpecial || ev.Special != tt.key || ev.Mods != tt.mods {
			t.Errorf("%q: expected %v with mods %v, got %+v", tt.body, tt.key, tt.mods, ev)
		}
	}
}

func TestTranslateTildeUnknownIndex(t *testing.T) {
	for _, body := range []string{"99~", "x~", "16~"} {
		if _, ok := Translate([]byte(body)); ok {
			t.Errorf("expected no event for %q", body)
		}
	}
}

func TestTranslateLegacyLetters(t *testing.T) {
	tests := []struct {
		body string
		key  SpecialKey
		mods Mod
	}{
		{"A", KeyUp, 0},
		{"B", KeyDown, 0},
		{"C", KeyRight, 0},
		{"D", KeyLeft, 0},
		{"H", KeyHome, 0},
		{"F", KeyEnd, 0},
		{"P", KeyF1, 0},
		{"Z", KeyTab, ModShift},
		{"1;5D", KeyLeft, ModCtrl},
		{"1;2A", KeyUp, ModShift},
		{"1;3C", KeyRight, ModAlt},
	}
	for _, tt := range tests {
		ev, ok := Translate([]byte(tt.body))
		if !ok {
			t.Fatalf("expected an event for %q", tt.body)
		}
		if ev.Kind != KindSpecial || ev.Special != tt.key || ev.Mods != tt.mods {
			t.Errorf("%q: expected %v with mods %v, got %+v", tt.body, tt.key, tt.mods, ev)
		}
	}
}

func TestTranslateLegacyLetterRelease(t *testing.T) {
	ev, ok := Translate([]byte("1;1:3B"))
	if !ok {
		t.Fatalf("expected an event")
	}
	if ev.Special != KeyDown || ev.Event != EventRelease {
		t.Errorf("expected down release, got %+v", ev)
	}
}

func TestTranslateIsPure(t *testing.T) {
	body := []byte("97:65;6:2;97u")
	first, ok1 := Translate(body)
	second, ok2 := Translate(body)
	if ok1 != ok2 || first != second {
		t.Fatalf("two calls with identical input disagree: %+v vs %+v", first, second)
	}
}

func TestKeyEventString(t *testing.T) {
	ev, _ := Translate([]byte("1;5D"))
	if got := ev.String(); got != "ctrl+left" {
		t.Errorf("expected ctrl+left, got %q", got)
	}
	ev, _ = Translate([]byte("97;4u"))
	if got := ev.String(); got != "alt+shift+a" {
		t.Errorf("expected alt+shift+a, got %q", got)
	}
}
