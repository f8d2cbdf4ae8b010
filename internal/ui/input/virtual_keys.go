package input

import (
	"strings"
	"unicode/utf8"
)

// NamedKey is a key identified by its function rather than by the text it
// produces.
type NamedKey int

const (
	NamedNone NamedKey = iota
	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyEscape
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyShift
	KeyControl
	KeyAlt
	KeyAltGraph
	KeySuper
	KeyCapsLock
	KeyNumLock
	KeyScrollLock
	KeyPrintScreen
	KeyPause
	KeyContextMenu
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
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyAudioVolumeMute
	KeyAudioVolumeDown
	KeyAudioVolumeUp
	KeyMediaTrackNext
	KeyMediaTrackPrevious
	KeyMediaStop
	KeyMediaPlayPause
	KeyBrowserBack
	KeyBrowserForward
	KeyBrowserRefresh
)

var namedKeyNames = [...]string{
	NamedNone:             "",
	KeyEnter:              "enter",
	KeyTab:                "tab",
	KeySpace:              "space",
	KeyBackspace:          "backspace",
	KeyEscape:             "escape",
	KeyDelete:             "delete",
	KeyInsert:             "insert",
	KeyHome:               "home",
	KeyEnd:                "end",
	KeyPageUp:             "pageup",
	KeyPageDown:           "pagedown",
	KeyArrowLeft:          "left",
	KeyArrowRight:         "right",
	KeyArrowUp:            "up",
	KeyArrowDown:          "down",
	KeyShift:              "shift",
	KeyControl:            "control",
	KeyAlt:                "alt",
	KeyAltGraph:           "altgr",
	KeySuper:              "super",
	KeyCapsLock:           "capslock",
	KeyNumLock:            "numlock",
	KeyScrollLock:         "scrolllock",
	KeyPrintScreen:        "printscreen",
	KeyPause:              "pause",
	KeyContextMenu:        "contextmenu",
	KeyF1:                 "f1",
	KeyF2:                 "f2",
	KeyF3:                 "f3",
	KeyF4:                 "f4",
	KeyF5:                 "f5",
	KeyF6:                 "f6",
	KeyF7:                 "f7",
	KeyF8:                 "f8",
	KeyF9:                 "f9",
	KeyF10:                "f10",
	KeyF11:                "f11",
	KeyF12:                "f12",
	KeyF13:                "f13",
	KeyF14:                "f14",
	KeyF15:                "f15",
	KeyF16:                "f16",
	KeyF17:                "f17",
	KeyF18:                "f18",
	KeyF19:                "f19",
	KeyF20:                "f20",
	KeyF21:                "f21",
	KeyF22:                "f22",
	KeyF23:                "f23",
	KeyF24:                "f24",
	KeyAudioVolumeMute:    "volumemute",
	KeyAudioVolumeDown:    "volumedown",
	KeyAudioVolumeUp:      "volumeup",
	KeyMediaTrackNext:     "medianext",
	KeyMediaTrackPrevious: "mediaprev",
	KeyMediaStop:          "mediastop",
	KeyMediaPlayPause:     "mediaplaypause",
	KeyBrowserBack:        "browserback",
	KeyBrowserForward:     "browserforward",
	KeyBrowserRefresh:     "browserrefresh",
}

// String returns the lowercase name of the key.
func (k NamedKey) String() string {
	if k < 0 || int(k) >= len(namedKeyNames) {
		return ""
	}
	return namedKeyNames[k]
}

var namedKeyAliases = map[string]NamedKey{
	"return":     KeyEnter,
	"esc":        KeyEscape,
	"del":        KeyDelete,
	"page_up":    KeyPageUp,
	"page_down":  KeyPageDown,
	"arrowleft":  KeyArrowLeft,
	"arrowright": KeyArrowRight,
	"arrowup":    KeyArrowUp,
	"arrowdown":  KeyArrowDown,
	"ctrl":       KeyControl,
	"meta":       KeySuper,
	"cmd":        KeySuper,
	"command":    KeySuper,
	"menu":       KeyContextMenu,
}

// ParseKey parses a key name: a named key such as "enter" or "f5", or a
// single character.
func ParseKey(name string) (Key, bool) {
	lower := strings.ToLower(name)
	for i, n := range namedKeyNames {
		if n != "" && n == lower {
			return Named(NamedKey(i)), true
		}
	}
	if k, ok := namedKeyAliases[lower]; ok {
		return Named(k), true
	}
	if utf8.RuneCountInString(name) == 1 {
		return Character(name), true
	}
	return Key{}, false
}

// Windows virtual-key codes of named control keys.
var namedVirtualKeys = map[NamedKey]int32{
	KeyEnter:              0x0D,
	KeyTab:                0x09,
	KeySpace:              0x20,
	KeyBackspace:          0x08,
	KeyEscape:             0x1B,
	KeyDelete:             0x2E,
	KeyInsert:             0x2D,
	KeyHome:               0x24,
	KeyEnd:                0x23,
	KeyPageUp:             0x21,
	KeyPageDown:           0x22,
	KeyArrowLeft:          0x25,
	KeyArrowRight:         0x27,
	KeyArrowUp:            0x26,
	KeyArrowDown:          0x28,
	KeyShift:              0x10,
	KeyControl:            0x11,
	KeyAlt:                0x12,
	KeyAltGraph:           0xA5,
	KeySuper:              0x5B,
	KeyCapsLock:           0x14,
	KeyNumLock:            0x90,
	KeyScrollLock:         0x91,
	KeyPrintScreen:        0x2C,
	KeyPause:              0x13,
	KeyContextMenu:        0x5D,
	KeyF1:                 0x70,
	KeyF2:                 0x71,
	KeyF3:                 0x72,
	KeyF4:                 0x73,
	KeyF5:                 0x74,
	KeyF6:                 0x75,
	KeyF7:                 0x76,
	KeyF8:                 0x77,
	KeyF9:                 0x78,
	KeyF10:                0x79,
	KeyF11:                0x7A,
	KeyF12:                0x7B,
	KeyF13:                0x7C,
	KeyF14:                0x7D,
	KeyF15:                0x7E,
	KeyF16:                0x7F,
	KeyF17:                0x80,
	KeyF18:                0x81,
	KeyF19:                0x82,
	KeyF20:                0x83,
	KeyF21:                0x84,
	KeyF22:                0x85,
	KeyF23:                0x86,
	KeyF24:                0x87,
	KeyAudioVolumeMute:    0xAD,
	KeyAudioVolumeDown:    0xAE,
	KeyAudioVolumeUp:      0xAF,
	KeyMediaTrackNext:     0xB0,
	KeyMediaTrackPrevious: 0xB1,
	KeyMediaStop:          0xB2,
	KeyMediaPlayPause:     0xB3,
	KeyBrowserBack:        0xA6,
	KeyBrowserForward:     0xA7,
	KeyBrowserRefresh:     0xA8,
}

// Virtual-key codes of punctuation, by the unshifted character on a US
// layout.
var charVirtualKeys = map[rune]int32{
	';': 0xBA, ':': 0xBA,
	'=': 0xBB, '+': 0xBB,
	',': 0xBC, '<': 0xBC,
	'-': 0xBD, '_': 0xBD,
	'.': 0xBE, '>': 0xBE,
	'/': 0xBF, '?': 0xBF,
	'`': 0xC0, '~': 0xC0,
	'[': 0xDB, '{': 0xDB,
	'\\': 0xDC, '|': 0xDC,
	']': 0xDD, '}': 0xDD,
	'\'': 0xDE, '"': 0xDE,
	' ': 0x20,
}

// Shifted digits on a US layout map back to their digit key.
var shiftedDigits = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
}

// VirtualKeyCode resolves the Windows virtual-key code the engine expects in
// every key event. Named keys use the named table; character keys are
// resolved from the character so that the code follows the active layout;
// anything else falls back to the physical position.
func VirtualKeyCode(key Key, code Code) int32 {
	// Keypad digits and operators have codes of their own. With num lock
	// off the keypad produces named navigation keys instead.
	if code.IsNumpad() && key.Named == NamedNone {
		if vk, ok := codeVirtualKeys[code]; ok {
			return vk
		}
	}
	if key.Named != NamedNone {
		if vk, ok := namedVirtualKeys[key.Named]; ok {
			return vk
		}
	}
	if r, size := utf8.DecodeRuneInString(key.Char); size > 0 && size == len(key.Char) {
		switch {
		case r >= 'a' && r <= 'z':
			return 'A' + (r - 'a')
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		}
		if d, ok := shiftedDigits[r]; ok {
			return d
		}
		if vk, ok := charVirtualKeys[r]; ok {
			return vk
		}
	}
	return codeVirtualKeys[code]
}
