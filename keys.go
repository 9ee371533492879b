package kittykeys

// SpecialKey names a non-printable key.
type SpecialKey int

// Special key constants
const (
	KeyNone SpecialKey = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyMenu
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyKpEnter
	KeyKpBegin
	KeyLeftShift
	KeyLeftCtrl
	KeyLeftAlt
	KeyLeftSuper
	KeyLeftHyper
	KeyLeftMeta
	KeyRightShift
	KeyRightCtrl
	KeyRightAlt
	KeyRightSuper
	KeyRightHyper
	KeyRightMeta
)

var specialKeyNames = map[SpecialKey]string{
	KeyEscape:      "escape",
	KeyEnter:       "enter",
	KeyTab:         "tab",
	KeyBackspace:   "backspace",
	KeyInsert:      "insert",
	KeyDelete:      "delete",
	KeyLeft:        "left",
	KeyRight:       "right",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyPageUp:      "pageup",
	KeyPageDown:    "pagedown",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyCapsLock:    "capslock",
	KeyScrollLock:  "scrolllock",
	KeyNumLock:     "numlock",
	KeyPrintScreen: "printscreen",
	KeyPause:       "pause",
	KeyMenu:        "menu",
	KeyF1:          "f1",
	KeyF2:          "f2",
	KeyF3:          "f3",
	KeyF4:          "f4",
	KeyF5:          "f5",
	KeyF6:          "f6",
	KeyF7:          "f7",
	KeyF8:          "f8",
	KeyF9:          "f9",
	KeyF10:         "f10",
	KeyF11:         "f11",
	KeyF12:         "f12",
	KeyF13:         "f13",
	KeyF14:         "f14",
	KeyF15:         "f15",
	KeyF16:         "f16",
	KeyF17:         "f17",
	KeyF18:         "f18",
	KeyF19:         "f19",
	KeyF20:         "f20",
	KeyKpEnter:     "kpenter",
	KeyKpBegin:     "kpbegin",
	KeyLeftShift:   "leftshift",
	KeyLeftCtrl:    "leftctrl",
	KeyLeftAlt:     "leftalt",
	KeyLeftSuper:   "leftsuper",
	KeyLeftHyper:   "lefthyper",
	KeyLeftMeta:    "leftmeta",
	KeyRightShift:  "rightshift",
	KeyRightCtrl:   "rightctrl",
	KeyRightAlt:    "rightalt",
	KeyRightSuper:  "rightsuper",
	KeyRightHyper:  "righthyper",
	KeyRightMeta:   "rightmeta",
}

func (k SpecialKey) String() string {
	if name, ok := specialKeyNames[k]; ok {
		return name
	}
	return "none"
}

// functionalKeys maps unicode-keycode values outside the printable range
// to named keys. The C0 entries cover the codes kitty reports for keys
// that also exist in legacy input; the 57344+ block is the protocol's
// functional key range.
var functionalKeys = map[int]SpecialKey{
	9:   KeyTab,
	13:  KeyEnter,
	27:  KeyEscape,
	127: KeyBackspace,

	57358: KeyCapsLock,
	57359: KeyScrollLock,
	57360: KeyNumLock,
	57361: KeyPrintScreen,
	57362: KeyPause,
	57363: KeyMenu,
	57364: KeyF1,
	57365: KeyF2,
	57366: KeyF3,
	57367: KeyF4,
	57368: KeyF5,
	57369: KeyF6,
	57370: KeyF7,
	57371: KeyF8,
	57372: KeyF9,
	57373: KeyF10,
	57374: KeyF11,
	57375: KeyF12,
	57376: KeyF13,
	57377: KeyF14,
	57378: KeyF15,
	57379: KeyF16,
	57380: KeyF17,
	57381: KeyF18,
	57382: KeyF19,
	57383: KeyF20,
	57414: KeyKpEnter,
	57417: KeyUp,
	57418: KeyDown,
	57419: KeyLeft,
	57420: KeyRight,
	57421: KeyPageUp,
	57422: KeyPageDown,
	57423: KeyHome,
	57424: KeyEnd,
	57425: KeyInsert,
	57426: KeyDelete,
	57441: KeyLeftShift,
	57442: KeyLeftCtrl,
	57443: KeyLeftAlt,
	57444: KeyLeftSuper,
	57445: KeyLeftHyper,
	57446: KeyLeftMeta,
	57447: KeyRightShift,
	57448: KeyRightCtrl,
	57449: KeyRightAlt,
	57450: KeyRightSuper,
	57451: KeyRightHyper,
	57452: KeyRightMeta,
}

// tildeKeys maps the numeric index of a legacy ESC [ n ~ sequence to its
// key. Home and End have two indices each (xterm vs rxvt numbering).
var tildeKeys = map[int]SpecialKey{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// letterKeys maps legacy CSI final letters to their keys. Z is shift-tab
// and gets ModShift added during translation.
var letterKeys = map[byte]SpecialKey{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'E': KeyKpBegin,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'Z': KeyTab,
}
