package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLinuxKeycodes verifies the hardware keycodes of the number row. These
// are XKB keycodes (evdev + 8).
func TestLinuxKeycodes(t *testing.T) {
	tests := []struct {
		code     Code
		expected int32
	}{
		{CodeDigit1, 10},
		{CodeDigit2, 11},
		{CodeDigit9, 18},
		{CodeDigit0, 19},
		{CodeKeyA, 38},
		{CodeEscape, 9},
		{CodeEnter, 36},
		{CodeArrowLeft, 113},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, NativeKeyCode(PlatformLinux, tt.code, false))
			assert.Equal(t, tt.expected, NativeKeyCode(PlatformLinux, tt.code, true), "release uses the same keycode")
		})
	}
}

func TestMacKeyCodes(t *testing.T) {
	assert.Equal(t, int32(0x00), NativeKeyCode(PlatformMacOS, CodeKeyA, false))
	assert.Equal(t, int32(0x24), NativeKeyCode(PlatformMacOS, CodeEnter, false))
	assert.Equal(t, int32(0x7B), NativeKeyCode(PlatformMacOS, CodeArrowLeft, false))
	assert.Equal(t, int32(0x37), NativeKeyCode(PlatformMacOS, CodeMetaLeft, false))
}

func TestWindowsLParam(t *testing.T) {
	tests := []struct {
		name    string
		code    Code
		release bool
		want    uint32
	}{
		{"a press", CodeKeyA, false, 0x001E0001},
		{"a release", CodeKeyA, true, 0xC01E0001},
		{"extended arrow", CodeArrowLeft, false, 0x014B0001},
		{"extended right control", CodeControlRight, false, 0x011D0001},
		{"numpad enter", CodeNumpadEnter, false, 0x011C0001},
		{"enter", CodeEnter, false, 0x001C0001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, int32(tt.want), NativeKeyCode(PlatformWindows, tt.code, tt.release))
		})
	}
}

func TestNativeKeyCodeUnknown(t *testing.T) {
	for _, p := range []Platform{PlatformLinux, PlatformWindows, PlatformMacOS} {
		assert.Zero(t, NativeKeyCode(p, CodeUnidentified, false), p.String())
	}
}

func TestNativeTablesRoundTrip(t *testing.T) {
	for _, p := range []Platform{PlatformLinux, PlatformWindows, PlatformMacOS} {
		for code := range codeVirtualKeys {
			got, ok := CodeForNative(p, NativeKeyCode(p, code, false))
			if assert.True(t, ok, "%s %s", p, code) {
				assert.Equal(t, code, got, "%s native codes must be unique", p)
			}
		}
	}
}

func TestTablesCoverEveryCode(t *testing.T) {
	for c := CodeKeyA; int(c) < len(codeNames); c++ {
		assert.Contains(t, codeVirtualKeys, c)
		assert.Contains(t, windowsScanCodes, c)
		assert.Contains(t, macKeyCodes, c)
		assert.Contains(t, linuxKeycodes, c)
	}
}

func TestParseCodeAndPlatform(t *testing.T) {
	c, ok := ParseCode("KeyQ")
	assert.True(t, ok)
	assert.Equal(t, CodeKeyQ, c)

	_, ok = ParseCode("Unidentified")
	assert.False(t, ok)

	p, ok := ParsePlatform("darwin")
	assert.True(t, ok)
	assert.Equal(t, PlatformMacOS, p)
	_, ok = ParsePlatform("plan9")
	assert.False(t, ok)
	assert.Equal(t, "Unidentified", Code(-1).String())
}

func TestCodesListsEveryNamedCode(t *testing.T) {
	codes := Codes()
	assert.Equal(t, CodeKeyA, codes[0])
	assert.Equal(t, CodeMetaRight, codes[len(codes)-1])
	assert.NotContains(t, codes, CodeUnidentified)
	for _, c := range codes {
		got, ok := ParseCode(c.String())
		assert.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}
}
