package port

import "github.com/bnema/osrview/internal/domain/entity"

// EventFlags is the engine's modifier and button bitmask.
type EventFlags uint32

const (
	EventFlagNone              EventFlags = 0
	EventFlagCapsLockOn        EventFlags = 1 << 0
	EventFlagShiftDown         EventFlags = 1 << 1
	EventFlagControlDown       EventFlags = 1 << 2
	EventFlagAltDown           EventFlags = 1 << 3
	EventFlagLeftMouseButton   EventFlags = 1 << 4
	EventFlagMiddleMouseButton EventFlags = 1 << 5
	EventFlagRightMouseButton  EventFlags = 1 << 6
	EventFlagCommandDown       EventFlags = 1 << 7
	EventFlagNumLockOn         EventFlags = 1 << 8
	EventFlagIsKeyPad          EventFlags = 1 << 9
	EventFlagIsLeft            EventFlags = 1 << 10
	EventFlagIsRight           EventFlags = 1 << 11
	EventFlagAltGrDown         EventFlags = 1 << 12
	EventFlagIsRepeat          EventFlags = 1 << 13
)

// Has reports whether all bits of f are set.
func (e EventFlags) Has(f EventFlags) bool {
	return e&f == f
}

// KeyEventType is the kind of a native key event.
type KeyEventType int

const (
	// KeyEventRawKeyDown is a key press without character translation.
	KeyEventRawKeyDown KeyEventType = iota
	// KeyEventKeyDown is a key press with character translation.
	KeyEventKeyDown
	KeyEventKeyUp
	// KeyEventChar carries a produced character.
	KeyEventChar
)

// String returns a human-readable representation of the key event type.
func (t KeyEventType) String() string {
	switch t {
	case KeyEventRawKeyDown:
		return "rawkeydown"
	case KeyEventKeyDown:
		return "keydown"
	case KeyEventKeyUp:
		return "keyup"
	case KeyEventChar:
		return "char"
	default:
		return "unknown"
	}
}

// KeyEvent is the engine's native key event.
type KeyEvent struct {
	Type                 KeyEventType
	Modifiers            EventFlags
	WindowsKeyCode       int32
	NativeKeyCode        int32
	IsSystemKey          bool
	Character            uint16
	UnmodifiedCharacter  uint16
	FocusOnEditableField bool
}

// MouseButton is the engine's mouse button type.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// MouseEvent is the engine's native mouse event, in view coordinates.
type MouseEvent struct {
	X, Y      int32
	Modifiers EventFlags
}

// CompositionUnderline styles a range of IME preedit text.
type CompositionUnderline struct {
	Range           entity.Range
	Color           uint32
	BackgroundColor uint32
	Thick           bool
}
