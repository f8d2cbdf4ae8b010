package input

// Code is a physical key position, named after the US QWERTY key found there.
type Code int

const (
	CodeUnidentified Code = iota
	CodeKeyA
	CodeKeyB
	CodeKeyC
	CodeKeyD
	CodeKeyE
	CodeKeyF
	CodeKeyG
	CodeKeyH
	CodeKeyI
	CodeKeyJ
	CodeKeyK
	CodeKeyL
	CodeKeyM
	CodeKeyN
	CodeKeyO
	CodeKeyP
	CodeKeyQ
	CodeKeyR
	CodeKeyS
	CodeKeyT
	CodeKeyU
	CodeKeyV
	CodeKeyW
	CodeKeyX
	CodeKeyY
	CodeKeyZ
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9
	CodeDigit0
	CodeEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpace
	CodeMinus
	CodeEqual
	CodeBracketLeft
	CodeBracketRight
	CodeBackslash
	CodeSemicolon
	CodeQuote
	CodeBackquote
	CodeComma
	CodePeriod
	CodeSlash
	CodeCapsLock
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodePrintScreen
	CodeScrollLock
	CodePause
	CodeInsert
	CodeHome
	CodePageUp
	CodeDelete
	CodeEnd
	CodePageDown
	CodeArrowRight
	CodeArrowLeft
	CodeArrowDown
	CodeArrowUp
	CodeNumLock
	CodeNumpadDivide
	CodeNumpadMultiply
	CodeNumpadSubtract
	CodeNumpadAdd
	CodeNumpadEnter
	CodeNumpad1
	CodeNumpad2
	CodeNumpad3
	CodeNumpad4
	CodeNumpad5
	CodeNumpad6
	CodeNumpad7
	CodeNumpad8
	CodeNumpad9
	CodeNumpad0
	CodeNumpadDecimal
	CodeNumpadEqual
	CodeIntlBackslash
	CodeContextMenu
	CodeControlLeft
	CodeShiftLeft
	CodeAltLeft
	CodeMetaLeft
	CodeControlRight
	CodeShiftRight
	CodeAltRight
	CodeMetaRight
)

var codeNames = [...]string{
	CodeUnidentified:   "Unidentified",
	CodeKeyA:           "KeyA",
	CodeKeyB:           "KeyB",
	CodeKeyC:           "KeyC",
	CodeKeyD:           "KeyD",
	CodeKeyE:           "KeyE",
	CodeKeyF:           "KeyF",
	CodeKeyG:           "KeyG",
	CodeKeyH:           "KeyH",
	CodeKeyI:           "KeyI",
	CodeKeyJ:           "KeyJ",
	CodeKeyK:           "KeyK",
	CodeKeyL:           "KeyL",
	CodeKeyM:           "KeyM",
	CodeKeyN:           "KeyN",
	CodeKeyO:           "KeyO",
	CodeKeyP:           "KeyP",
	CodeKeyQ:           "KeyQ",
	CodeKeyR:           "KeyR",
	CodeKeyS:           "KeyS",
	CodeKeyT:           "KeyT",
	CodeKeyU:           "KeyU",
	CodeKeyV:           "KeyV",
	CodeKeyW:           "KeyW",
	CodeKeyX:           "KeyX",
	CodeKeyY:           "KeyY",
	CodeKeyZ:           "KeyZ",
	CodeDigit1:         "Digit1",
	CodeDigit2:         "Digit2",
	CodeDigit3:         "Digit3",
	CodeDigit4:         "Digit4",
	CodeDigit5:         "Digit5",
	CodeDigit6:         "Digit6",
	CodeDigit7:         "Digit7",
	CodeDigit8:         "Digit8",
	CodeDigit9:         "Digit9",
	CodeDigit0:         "Digit0",
	CodeEnter:          "Enter",
	CodeEscape:         "Escape",
	CodeBackspace:      "Backspace",
	CodeTab:            "Tab",
	CodeSpace:          "Space",
	CodeMinus:          "Minus",
	CodeEqual:          "Equal",
	CodeBracketLeft:    "BracketLeft",
	CodeBracketRight:   "BracketRight",
	CodeBackslash:      "Backslash",
	CodeSemicolon:      "Semicolon",
	CodeQuote:          "Quote",
	CodeBackquote:      "Backquote",
	CodeComma:          "Comma",
	CodePeriod:         "Period",
	CodeSlash:          "Slash",
	CodeCapsLock:       "CapsLock",
	CodeF1:             "F1",
	CodeF2:             "F2",
	CodeF3:             "F3",
	CodeF4:             "F4",
	CodeF5:             "F5",
	CodeF6:             "F6",
	CodeF7:             "F7",
	CodeF8:             "F8",
	CodeF9:             "F9",
	CodeF10:            "F10",
	CodeF11:            "F11",
	CodeF12:            "F12",
	CodePrintScreen:    "PrintScreen",
	CodeScrollLock:     "ScrollLock",
	CodePause:          "Pause",
	CodeInsert:         "Insert",
	CodeHome:           "Home",
	CodePageUp:         "PageUp",
	CodeDelete:         "Delete",
	CodeEnd:            "End",
	CodePageDown:       "PageDown",
	CodeArrowRight:     "ArrowRight",
	CodeArrowLeft:      "ArrowLeft",
	CodeArrowDown:      "ArrowDown",
	CodeArrowUp:        "ArrowUp",
	CodeNumLock:        "NumLock",
	CodeNumpadDivide:   "NumpadDivide",
	CodeNumpadMultiply: "NumpadMultiply",
	CodeNumpadSubtract: "NumpadSubtract",
	CodeNumpadAdd:      "NumpadAdd",
	CodeNumpadEnter:    "NumpadEnter",
	CodeNumpad1:        "Numpad1",
	CodeNumpad2:        "Numpad2",
	CodeNumpad3:        "Numpad3",
	CodeNumpad4:        "Numpad4",
	CodeNumpad5:        "Numpad5",
	CodeNumpad6:        "Numpad6",
	CodeNumpad7:        "Numpad7",
	CodeNumpad8:        "Numpad8",
	CodeNumpad9:        "Numpad9",
	CodeNumpad0:        "Numpad0",
	CodeNumpadDecimal:  "NumpadDecimal",
	CodeNumpadEqual:    "NumpadEqual",
	CodeIntlBackslash:  "IntlBackslash",
	CodeContextMenu:    "ContextMenu",
	CodeControlLeft:    "ControlLeft",
	CodeShiftLeft:      "ShiftLeft",
	CodeAltLeft:        "AltLeft",
	CodeMetaLeft:       "MetaLeft",
	CodeControlRight:   "ControlRight",
	CodeShiftRight:     "ShiftRight",
	CodeAltRight:       "AltRight",
	CodeMetaRight:      "MetaRight",
}

// String returns the W3C code name of the key.
func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return codeNames[CodeUnidentified]
	}
	return codeNames[c]
}

// Codes returns every identified code in declaration order.
func Codes() []Code {
	out := make([]Code, 0, len(codeNames)-1)
	for c := CodeUnidentified + 1; int(c) < len(codeNames); c++ {
		out = append(out, c)
	}
	return out
}

// ParseCode returns the code with the given W3C name.
func ParseCode(name string) (Code, bool) {
	for i, n := range codeNames {
		if n == name && i != int(CodeUnidentified) {
			return Code(i), true
		}
	}
	return CodeUnidentified, false
}

// Windows virtual-key codes by physical position. Used when the logical key
// does not identify the key by itself.
var codeVirtualKeys = map[Code]int32{
	CodeKeyA:           0x41,
	CodeKeyB:           0x42,
	CodeKeyC:           0x43,
	CodeKeyD:           0x44,
	CodeKeyE:           0x45,
	CodeKeyF:           0x46,
	CodeKeyG:           0x47,
	CodeKeyH:           0x48,
	CodeKeyI:           0x49,
	CodeKeyJ:           0x4A,
	CodeKeyK:           0x4B,
	CodeKeyL:           0x4C,
	CodeKeyM:           0x4D,
	CodeKeyN:           0x4E,
	CodeKeyO:           0x4F,
	CodeKeyP:           0x50,
	CodeKeyQ:           0x51,
	CodeKeyR:           0x52,
	CodeKeyS:           0x53,
	CodeKeyT:           0x54,
	CodeKeyU:           0x55,
	CodeKeyV:           0x56,
	CodeKeyW:           0x57,
	CodeKeyX:           0x58,
	CodeKeyY:           0x59,
	CodeKeyZ:           0x5A,
	CodeDigit1:         0x31,
	CodeDigit2:         0x32,
	CodeDigit3:         0x33,
	CodeDigit4:         0x34,
	CodeDigit5:         0x35,
	CodeDigit6:         0x36,
	CodeDigit7:         0x37,
	CodeDigit8:         0x38,
	CodeDigit9:         0x39,
	CodeDigit0:         0x30,
	CodeEnter:          0x0D,
	CodeEscape:         0x1B,
	CodeBackspace:      0x08,
	CodeTab:            0x09,
	CodeSpace:          0x20,
	CodeMinus:          0xBD,
	CodeEqual:          0xBB,
	CodeBracketLeft:    0xDB,
	CodeBracketRight:   0xDD,
	CodeBackslash:      0xDC,
	CodeSemicolon:      0xBA,
	CodeQuote:          0xDE,
	CodeBackquote:      0xC0,
	CodeComma:          0xBC,
	CodePeriod:         0xBE,
	CodeSlash:          0xBF,
	CodeCapsLock:       0x14,
	CodeF1:             0x70,
	CodeF2:             0x71,
	CodeF3:             0x72,
	CodeF4:             0x73,
	CodeF5:             0x74,
	CodeF6:             0x75,
	CodeF7:             0x76,
	CodeF8:             0x77,
	CodeF9:             0x78,
	CodeF10:            0x79,
	CodeF11:            0x7A,
	CodeF12:            0x7B,
	CodePrintScreen:    0x2C,
	CodeScrollLock:     0x91,
	CodePause:          0x13,
	CodeInsert:         0x2D,
	CodeHome:           0x24,
	CodePageUp:         0x21,
	CodeDelete:         0x2E,
	CodeEnd:            0x23,
	CodePageDown:       0x22,
	CodeArrowRight:     0x27,
	CodeArrowLeft:      0x25,
	CodeArrowDown:      0x28,
	CodeArrowUp:        0x26,
	CodeNumLock:        0x90,
	CodeNumpadDivide:   0x6F,
	CodeNumpadMultiply: 0x6A,
	CodeNumpadSubtract: 0x6D,
	CodeNumpadAdd:      0x6B,
	CodeNumpadEnter:    0x0D,
	CodeNumpad1:        0x61,
	CodeNumpad2:        0x62,
	CodeNumpad3:        0x63,
	CodeNumpad4:        0x64,
	CodeNumpad5:        0x65,
	CodeNumpad6:        0x66,
	CodeNumpad7:        0x67,
	CodeNumpad8:        0x68,
	CodeNumpad9:        0x69,
	CodeNumpad0:        0x60,
	CodeNumpadDecimal:  0x6E,
	CodeNumpadEqual:    0x92,
	CodeIntlBackslash:  0xE2,
	CodeContextMenu:    0x5D,
	CodeControlLeft:    0xA2,
	CodeShiftLeft:      0xA0,
	CodeAltLeft:        0xA4,
	CodeMetaLeft:       0x5B,
	CodeControlRight:   0xA3,
	CodeShiftRight:     0xA1,
	CodeAltRight:       0xA5,
	CodeMetaRight:      0x5C,
}

// Windows set 1 scan codes. Extended keys carry the 0xE0 prefix byte.
var windowsScanCodes = map[Code]uint32{
	CodeKeyA:           0x1E,
	CodeKeyB:           0x30,
	CodeKeyC:           0x2E,
	CodeKeyD:           0x20,
	CodeKeyE:           0x12,
	CodeKeyF:           0x21,
	CodeKeyG:           0x22,
	CodeKeyH:           0x23,
	CodeKeyI:           0x17,
	CodeKeyJ:           0x24,
	CodeKeyK:           0x25,
	CodeKeyL:           0x26,
	CodeKeyM:           0x32,
	CodeKeyN:           0x31,
	CodeKeyO:           0x18,
	CodeKeyP:           0x19,
	CodeKeyQ:           0x10,
	CodeKeyR:           0x13,
	CodeKeyS:           0x1F,
	CodeKeyT:           0x14,
	CodeKeyU:           0x16,
	CodeKeyV:           0x2F,
	CodeKeyW:           0x11,
	CodeKeyX:           0x2D,
	CodeKeyY:           0x15,
	CodeKeyZ:           0x2C,
	CodeDigit1:         0x02,
	CodeDigit2:         0x03,
	CodeDigit3:         0x04,
	CodeDigit4:         0x05,
	CodeDigit5:         0x06,
	CodeDigit6:         0x07,
	CodeDigit7:         0x08,
	CodeDigit8:         0x09,
	CodeDigit9:         0x0A,
	CodeDigit0:         0x0B,
	CodeEnter:          0x1C,
	CodeEscape:         0x01,
	CodeBackspace:      0x0E,
	CodeTab:            0x0F,
	CodeSpace:          0x39,
	CodeMinus:          0x0C,
	CodeEqual:          0x0D,
	CodeBracketLeft:    0x1A,
	CodeBracketRight:   0x1B,
	CodeBackslash:      0x2B,
	CodeSemicolon:      0x27,
	CodeQuote:          0x28,
	CodeBackquote:      0x29,
	CodeComma:          0x33,
	CodePeriod:         0x34,
	CodeSlash:          0x35,
	CodeCapsLock:       0x3A,
	CodeF1:             0x3B,
	CodeF2:             0x3C,
	CodeF3:             0x3D,
	CodeF4:             0x3E,
	CodeF5:             0x3F,
	CodeF6:             0x40,
	CodeF7:             0x41,
	CodeF8:             0x42,
	CodeF9:             0x43,
	CodeF10:            0x44,
	CodeF11:            0x57,
	CodeF12:            0x58,
	CodePrintScreen:    0xE037,
	CodeScrollLock:     0x46,
	CodePause:          0x45,
	CodeInsert:         0xE052,
	CodeHome:           0xE047,
	CodePageUp:         0xE049,
	CodeDelete:         0xE053,
	CodeEnd:            0xE04F,
	CodePageDown:       0xE051,
	CodeArrowRight:     0xE04D,
	CodeArrowLeft:      0xE04B,
	CodeArrowDown:      0xE050,
	CodeArrowUp:        0xE048,
	CodeNumLock:        0xE045,
	CodeNumpadDivide:   0xE035,
	CodeNumpadMultiply: 0x37,
	CodeNumpadSubtract: 0x4A,
	CodeNumpadAdd:      0x4E,
	CodeNumpadEnter:    0xE01C,
	CodeNumpad1:        0x4F,
	CodeNumpad2:        0x50,
	CodeNumpad3:        0x51,
	CodeNumpad4:        0x4B,
	CodeNumpad5:        0x4C,
	CodeNumpad6:        0x4D,
	CodeNumpad7:        0x47,
	CodeNumpad8:        0x48,
	CodeNumpad9:        0x49,
	CodeNumpad0:        0x52,
	CodeNumpadDecimal:  0x53,
	CodeNumpadEqual:    0x59,
	CodeIntlBackslash:  0x56,
	CodeContextMenu:    0xE05D,
	CodeControlLeft:    0x1D,
	CodeShiftLeft:      0x2A,
	CodeAltLeft:        0x38,
	CodeMetaLeft:       0xE05B,
	CodeControlRight:   0xE01D,
	CodeShiftRight:     0x36,
	CodeAltRight:       0xE038,
	CodeMetaRight:      0xE05C,
}

// macOS virtual key codes (kVK_*).
var macKeyCodes = map[Code]uint32{
	CodeKeyA:           0x00,
	CodeKeyB:           0x0B,
	CodeKeyC:           0x08,
	CodeKeyD:           0x02,
	CodeKeyE:           0x0E,
	CodeKeyF:           0x03,
	CodeKeyG:           0x05,
	CodeKeyH:           0x04,
	CodeKeyI:           0x22,
	CodeKeyJ:           0x26,
	CodeKeyK:           0x28,
	CodeKeyL:           0x25,
	CodeKeyM:           0x2E,
	CodeKeyN:           0x2D,
	CodeKeyO:           0x1F,
	CodeKeyP:           0x23,
	CodeKeyQ:           0x0C,
	CodeKeyR:           0x0F,
	CodeKeyS:           0x01,
	CodeKeyT:           0x11,
	CodeKeyU:           0x20,
	CodeKeyV:           0x09,
	CodeKeyW:           0x0D,
	CodeKeyX:           0x07,
	CodeKeyY:           0x10,
	CodeKeyZ:           0x06,
	CodeDigit1:         0x12,
	CodeDigit2:         0x13,
	CodeDigit3:         0x14,
	CodeDigit4:         0x15,
	CodeDigit5:         0x17,
	CodeDigit6:         0x16,
	CodeDigit7:         0x1A,
	CodeDigit8:         0x1C,
	CodeDigit9:         0x19,
	CodeDigit0:         0x1D,
	CodeEnter:          0x24,
	CodeEscape:         0x35,
	CodeBackspace:      0x33,
	CodeTab:            0x30,
	CodeSpace:          0x31,
	CodeMinus:          0x1B,
	CodeEqual:          0x18,
	CodeBracketLeft:    0x21,
	CodeBracketRight:   0x1E,
	CodeBackslash:      0x2A,
	CodeSemicolon:      0x29,
	CodeQuote:          0x27,
	CodeBackquote:      0x32,
	CodeComma:          0x2B,
	CodePeriod:         0x2F,
	CodeSlash:          0x2C,
	CodeCapsLock:       0x39,
	CodeF1:             0x7A,
	CodeF2:             0x78,
	CodeF3:             0x63,
	CodeF4:             0x76,
	CodeF5:             0x60,
	CodeF6:             0x61,
	CodeF7:             0x62,
	CodeF8:             0x64,
	CodeF9:             0x65,
	CodeF10:            0x6D,
	CodeF11:            0x67,
	CodeF12:            0x6F,
	CodePrintScreen:    0x69,
	CodeScrollLock:     0x6B,
	CodePause:          0x71,
	CodeInsert:         0x72,
	CodeHome:           0x73,
	CodePageUp:         0x74,
	CodeDelete:         0x75,
	CodeEnd:            0x77,
	CodePageDown:       0x79,
	CodeArrowRight:     0x7C,
	CodeArrowLeft:      0x7B,
	CodeArrowDown:      0x7D,
	CodeArrowUp:        0x7E,
	CodeNumLock:        0x47,
	CodeNumpadDivide:   0x4B,
	CodeNumpadMultiply: 0x43,
	CodeNumpadSubtract: 0x4E,
	CodeNumpadAdd:      0x45,
	CodeNumpadEnter:    0x4C,
	CodeNumpad1:        0x53,
	CodeNumpad2:        0x54,
	CodeNumpad3:        0x55,
	CodeNumpad4:        0x56,
	CodeNumpad5:        0x57,
	CodeNumpad6:        0x58,
	CodeNumpad7:        0x59,
	CodeNumpad8:        0x5B,
	CodeNumpad9:        0x5C,
	CodeNumpad0:        0x52,
	CodeNumpadDecimal:  0x41,
	CodeNumpadEqual:    0x51,
	CodeIntlBackslash:  0x0A,
	CodeContextMenu:    0x6E,
	CodeControlLeft:    0x3B,
	CodeShiftLeft:      0x38,
	CodeAltLeft:        0x3A,
	CodeMetaLeft:       0x37,
	CodeControlRight:   0x3E,
	CodeShiftRight:     0x3C,
	CodeAltRight:       0x3D,
	CodeMetaRight:      0x36,
}

// Hardware keycodes on Linux. These are XKB keycodes (evdev + 8) and
// identify the physical key independent of the active layout.
var linuxKeycodes = map[Code]uint32{
	CodeKeyA:           38,
	CodeKeyB:           56,
	CodeKeyC:           54,
	CodeKeyD:           40,
	CodeKeyE:           26,
	CodeKeyF:           41,
	CodeKeyG:           42,
	CodeKeyH:           43,
	CodeKeyI:           31,
	CodeKeyJ:           44,
	CodeKeyK:           45,
	CodeKeyL:           46,
	CodeKeyM:           58,
	CodeKeyN:           57,
	CodeKeyO:           32,
	CodeKeyP:           33,
	CodeKeyQ:           24,
	CodeKeyR:           27,
	CodeKeyS:           39,
	CodeKeyT:           28,
	CodeKeyU:           30,
	CodeKeyV:           55,
	CodeKeyW:           25,
	CodeKeyX:           53,
	CodeKeyY:           29,
	CodeKeyZ:           52,
	CodeDigit1:         10,
	CodeDigit2:         11,
	CodeDigit3:         12,
	CodeDigit4:         13,
	CodeDigit5:         14,
	CodeDigit6:         15,
	CodeDigit7:         16,
	CodeDigit8:         17,
	CodeDigit9:         18,
	CodeDigit0:         19,
	CodeEnter:          36,
	CodeEscape:         9,
	CodeBackspace:      22,
	CodeTab:            23,
	CodeSpace:          65,
	CodeMinus:          20,
	CodeEqual:          21,
	CodeBracketLeft:    34,
	CodeBracketRight:   35,
	CodeBackslash:      51,
	CodeSemicolon:      47,
	CodeQuote:          48,
	CodeBackquote:      49,
	CodeComma:          59,
	CodePeriod:         60,
	CodeSlash:          61,
	CodeCapsLock:       66,
	CodeF1:             67,
	CodeF2:             68,
	CodeF3:             69,
	CodeF4:             70,
	CodeF5:             71,
	CodeF6:             72,
	CodeF7:             73,
	CodeF8:             74,
	CodeF9:             75,
	CodeF10:            76,
	CodeF11:            95,
	CodeF12:            96,
	CodePrintScreen:    107,
	CodeScrollLock:     78,
	CodePause:          127,
	CodeInsert:         118,
	CodeHome:           110,
	CodePageUp:         112,
	CodeDelete:         119,
	CodeEnd:            115,
	CodePageDown:       117,
	CodeArrowRight:     114,
	CodeArrowLeft:      113,
	CodeArrowDown:      116,
	CodeArrowUp:        111,
	CodeNumLock:        77,
	CodeNumpadDivide:   106,
	CodeNumpadMultiply: 63,
	CodeNumpadSubtract: 82,
	CodeNumpadAdd:      86,
	CodeNumpadEnter:    104,
	CodeNumpad1:        87,
	CodeNumpad2:        88,
	CodeNumpad3:        89,
	CodeNumpad4:        83,
	CodeNumpad5:        84,
	CodeNumpad6:        85,
	CodeNumpad7:        79,
	CodeNumpad8:        80,
	CodeNumpad9:        81,
	CodeNumpad0:        90,
	CodeNumpadDecimal:  91,
	CodeNumpadEqual:    125,
	CodeIntlBackslash:  94,
	CodeContextMenu:    135,
	CodeControlLeft:    37,
	CodeShiftLeft:      50,
	CodeAltLeft:        64,
	CodeMetaLeft:       133,
	CodeControlRight:   105,
	CodeShiftRight:     62,
	CodeAltRight:       108,
	CodeMetaRight:      134,
}
