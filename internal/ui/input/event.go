// Package input defines the GUI event model of the webview widget and
// translates those events into the engine's native key and mouse events.
package input

import (
	"time"

	"github.com/bnema/osrview/internal/domain/entity"
)

// Event is a GUI event delivered to a widget.
type Event interface{ guiEvent() }

// Modifiers is the set of modifier keys held while an event happened.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	// ModLogo is the command key on macOS and the super/windows key elsewhere.
	ModLogo
)

// Has reports whether all modifiers of m are held.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// Key is a logical key: either a named key or the text the key produces
// under the current layout.
type Key struct {
	Named NamedKey
	Char  string
}

// Named builds a Key for a named key.
func Named(n NamedKey) Key { return Key{Named: n} }

// Character builds a Key for a character key.
func Character(s string) Key { return Key{Char: s} }

// Location distinguishes keys present more than once on a keyboard.
type Location int

const (
	LocationStandard Location = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

// KeyPressed is a key press. Text is what the press inserts, if anything.
type KeyPressed struct {
	Key       Key
	Physical  Code
	Location  Location
	Modifiers Modifiers
	Text      string
	Repeat    bool
}

// KeyReleased is a key release.
type KeyReleased struct {
	Key       Key
	Physical  Code
	Location  Location
	Modifiers Modifiers
}

// ModifiersChanged reports a new modifier state.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// Button is a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonBack
	ButtonForward
)

// String returns a human-readable representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "unknown"
	}
}

// CursorEntered is sent when the pointer enters the window.
type CursorEntered struct{}

// CursorMoved carries the pointer position in window coordinates.
type CursorMoved struct {
	Position entity.Point
}

// CursorLeft is sent when the pointer leaves the window.
type CursorLeft struct{}

// ButtonPressed is a mouse button press at the last known position.
type ButtonPressed struct {
	Button Button
}

// ButtonReleased is a mouse button release at the last known position.
type ButtonReleased struct {
	Button Button
}

// ScrollUnit tells how a wheel delta is measured.
type ScrollUnit int

const (
	ScrollLines ScrollUnit = iota
	ScrollPixels
)

// WheelScrolled is a wheel or touchpad scroll.
type WheelScrolled struct {
	Unit ScrollUnit
	X, Y float32
}

// IMEOpened is sent when an input method session starts.
type IMEOpened struct{}

// IMEPreedit carries the text being composed. Cursor is the byte range of the
// caret or selection inside Text when HasCursor is set.
type IMEPreedit struct {
	Text      string
	Cursor    entity.Range
	HasCursor bool
}

// IMECommit carries text the input method committed.
type IMECommit struct {
	Text string
}

// IMEClosed is sent when the input method session ends.
type IMEClosed struct{}

// RedrawRequested is sent on every frame the window redraws.
type RedrawRequested struct {
	At time.Time
}

func (KeyPressed) guiEvent()       {}
func (KeyReleased) guiEvent()      {}
func (ModifiersChanged) guiEvent() {}
func (CursorEntered) guiEvent()    {}
func (CursorMoved) guiEvent()      {}
func (CursorLeft) guiEvent()       {}
func (ButtonPressed) guiEvent()    {}
func (ButtonReleased) guiEvent()   {}
func (WheelScrolled) guiEvent()    {}
func (IMEOpened) guiEvent()        {}
func (IMEPreedit) guiEvent()       {}
func (IMECommit) guiEvent()        {}
func (IMEClosed) guiEvent()        {}
func (RedrawRequested) guiEvent()  {}
