package input

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bnema/osrview/internal/application/port"
)

// ModifierPolicy decides how held modifiers map onto engine flags.
type ModifierPolicy int

const (
	// ModifiersCombined sets one flag per held modifier.
	ModifiersCombined ModifierPolicy = iota
	// ModifiersFirstMatch sets only the first held modifier, checked in the
	// order control, alt, shift, command.
	ModifiersFirstMatch
)

// String returns the configuration spelling of the policy.
func (p ModifierPolicy) String() string {
	if p == ModifiersFirstMatch {
		return "first_match"
	}
	return "combined"
}

// ParseModifierPolicy parses "combined" or "first_match".
func ParseModifierPolicy(s string) (ModifierPolicy, bool) {
	switch s {
	case "combined", "":
		return ModifiersCombined, true
	case "first_match":
		return ModifiersFirstMatch, true
	}
	return ModifiersCombined, false
}

// Keyboard translates GUI key events into engine key events.
type Keyboard struct {
	Platform Platform
	Policy   ModifierPolicy
}

// Flags converts held modifiers into engine flags according to the policy.
func (k Keyboard) Flags(m Modifiers) port.EventFlags {
	if k.Policy == ModifiersFirstMatch {
		switch {
		case m.Has(ModControl):
			return port.EventFlagControlDown
		case m.Has(ModAlt):
			return port.EventFlagAltDown
		case m.Has(ModShift):
			return port.EventFlagShiftDown
		case m.Has(ModLogo):
			return port.EventFlagCommandDown
		}
		return port.EventFlagNone
	}

	var f port.EventFlags
	if m.Has(ModShift) {
		f |= port.EventFlagShiftDown
	}
	if m.Has(ModControl) {
		f |= port.EventFlagControlDown
	}
	if m.Has(ModAlt) {
		f |= port.EventFlagAltDown
	}
	if m.Has(ModLogo) {
		f |= port.EventFlagCommandDown
	}
	return f
}

func locationFlags(loc Location, code Code) port.EventFlags {
	switch loc {
	case LocationLeft:
		return port.EventFlagIsLeft
	case LocationRight:
		return port.EventFlagIsRight
	case LocationNumpad:
		return port.EventFlagIsKeyPad
	}
	if code.IsNumpad() {
		return port.EventFlagIsKeyPad
	}
	return port.EventFlagNone
}

// Translate converts a key press or release. A press yields a raw key-down
// followed, when the press inserts text, by one char event per UTF-16 unit.
// A release yields a single key-up. Any other event yields nothing.
// editable tells the engine whether an editable node has focus.
func (k Keyboard) Translate(ev Event, editable bool) []port.KeyEvent {
	switch ev := ev.(type) {
	case KeyPressed:
		return k.press(ev, editable)
	case KeyReleased:
		return []port.KeyEvent{{
			Type:                 port.KeyEventKeyUp,
			Modifiers:            k.Flags(ev.Modifiers) | locationFlags(ev.Location, ev.Physical),
			WindowsKeyCode:       VirtualKeyCode(ev.Key, ev.Physical),
			NativeKeyCode:        NativeKeyCode(k.Platform, ev.Physical, true),
			IsSystemKey:          k.isSystemKey(ev.Modifiers),
			UnmodifiedCharacter:  unmodifiedCharacter(ev.Key),
			FocusOnEditableField: editable,
		}}
	}
	return nil
}

func (k Keyboard) press(ev KeyPressed, editable bool) []port.KeyEvent {
	flags := k.Flags(ev.Modifiers) | locationFlags(ev.Location, ev.Physical)
	if ev.Repeat {
		flags |= port.EventFlagIsRepeat
	}
	native := NativeKeyCode(k.Platform, ev.Physical, false)
	system := k.isSystemKey(ev.Modifiers)

	text := ev.Text
	if text == "" && ev.Key.Named == KeyEnter {
		text = "\r"
	}
	units := utf16.Encode([]rune(text))

	down := port.KeyEvent{
		Type:                 port.KeyEventRawKeyDown,
		Modifiers:            flags,
		WindowsKeyCode:       VirtualKeyCode(ev.Key, ev.Physical),
		NativeKeyCode:        native,
		IsSystemKey:          system,
		UnmodifiedCharacter:  unmodifiedCharacter(ev.Key),
		FocusOnEditableField: editable,
	}
	if len(units) > 0 {
		down.Character = units[0]
	}
	events := []port.KeyEvent{down}

	if !k.producesText(ev.Modifiers, text) {
		return events
	}
	for _, u := range units {
		events = append(events, port.KeyEvent{
			Type:                 port.KeyEventChar,
			Modifiers:            flags,
			WindowsKeyCode:       int32(u),
			NativeKeyCode:        native,
			IsSystemKey:          system,
			Character:            u,
			UnmodifiedCharacter:  u,
			FocusOnEditableField: editable,
		})
	}
	return events
}

// producesText reports whether a press with the given text becomes char
// events. Control, alt and command suppress text, except for AltGr
// (control+alt) and the macOS option key, which compose characters.
func (k Keyboard) producesText(m Modifiers, text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsControl(r) && r != '\r' && r != '\t' {
			return false
		}
	}
	if m.Has(ModLogo) {
		return false
	}
	if m.Has(ModControl) {
		return m.Has(ModAlt) && k.Platform != PlatformMacOS
	}
	if m.Has(ModAlt) {
		return k.Platform == PlatformMacOS
	}
	return true
}

func (k Keyboard) isSystemKey(m Modifiers) bool {
	switch k.Platform {
	case PlatformWindows:
		return m.Has(ModAlt) && !m.Has(ModControl)
	case PlatformMacOS:
		return m.Has(ModLogo)
	}
	return false
}

func unmodifiedCharacter(key Key) uint16 {
	if key.Named == KeyEnter {
		return '\r'
	}
	r, size := utf8.DecodeRuneInString(key.Char)
	if size == 0 || size != len(key.Char) || r > 0xFFFF {
		return 0
	}
	return uint16(unicode.ToLower(r))
}
