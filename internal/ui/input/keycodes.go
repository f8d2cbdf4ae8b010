package input

// Platform selects the native key code table and the platform conventions
// of the translation.
type Platform int

const (
	PlatformLinux Platform = iota
	PlatformWindows
	PlatformMacOS
)

// String returns a human-readable representation of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformWindows:
		return "windows"
	case PlatformMacOS:
		return "macos"
	default:
		return "unknown"
	}
}

// ParsePlatform accepts the platform names used in configuration, plus the
// GOOS spellings.
func ParsePlatform(s string) (Platform, bool) {
	switch s {
	case "linux", "freebsd", "openbsd", "netbsd":
		return PlatformLinux, true
	case "windows":
		return PlatformWindows, true
	case "macos", "darwin":
		return PlatformMacOS, true
	}
	return PlatformLinux, false
}

const (
	windowsExtendedPrefix = 0xE000
	// lParam bits of WM_KEYDOWN / WM_KEYUP.
	lParamRepeatCount = 1
	lParamExtended    = 1 << 24
	lParamPrevState   = 1 << 30
	lParamTransition  = 1 << 31
)

// NativeKeyCode returns the platform key code of a physical key. On Windows
// the engine expects the message lParam: repeat count, scan code, extended
// flag and, for releases, the previous-state and transition bits. On macOS it
// is the kVK code and on Linux the XKB keycode. Unknown keys yield 0.
func NativeKeyCode(p Platform, code Code, release bool) int32 {
	switch p {
	case PlatformWindows:
		scan, ok := windowsScanCodes[code]
		if !ok {
			return 0
		}
		lParam := uint32(lParamRepeatCount)
		if scan&windowsExtendedPrefix == windowsExtendedPrefix {
			lParam |= lParamExtended
			scan &^= windowsExtendedPrefix
		}
		lParam |= (scan & 0xFF) << 16
		if release {
			lParam |= lParamPrevState | lParamTransition
		}
		return int32(lParam)
	case PlatformMacOS:
		if kc, ok := macKeyCodes[code]; ok {
			return int32(kc)
		}
	default:
		if kc, ok := linuxKeycodes[code]; ok {
			return int32(kc)
		}
	}
	return 0
}

// CodeForNative is the reverse lookup of NativeKeyCode for press events.
func CodeForNative(p Platform, native int32) (Code, bool) {
	for code := range codeVirtualKeys {
		if NativeKeyCode(p, code, false) == native {
			return code, true
		}
	}
	return CodeUnidentified, false
}

// IsNumpad reports whether code sits on the numeric keypad.
func (c Code) IsNumpad() bool {
	switch c {
	case CodeNumLock, CodeNumpadDivide, CodeNumpadMultiply, CodeNumpadSubtract,
		CodeNumpadAdd, CodeNumpadEnter, CodeNumpadDecimal, CodeNumpadEqual:
		return true
	}
	return c >= CodeNumpad1 && c <= CodeNumpad0
}
