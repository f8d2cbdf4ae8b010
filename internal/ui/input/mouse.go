package input

import (
	"math"
	"time"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
)

const (
	DefaultDoubleClickInterval = 300 * time.Millisecond
	DefaultDoubleClickDistance = 4
	DefaultWheelLinePixels     = 40
	DefaultWheelMaxPixels      = 120
)

// ClickKind is the multiplicity of a button press.
type ClickKind int

const (
	ClickSingle ClickKind = 1
	ClickDouble ClickKind = 2
	ClickTriple ClickKind = 3
)

type click struct {
	button Button
	pos    entity.Point
	at     time.Time
	kind   ClickKind
}

// ClickTracker classifies presses into single, double and triple clicks. A
// press continues the previous click when it uses the same button, comes
// within Interval and lands within Distance of it.
type ClickTracker struct {
	Interval time.Duration
	Distance float32
	last     *click
}

// NewClickTracker creates a tracker. Non-positive arguments select the
// defaults.
func NewClickTracker(interval time.Duration, distance float32) *ClickTracker {
	if interval <= 0 {
		interval = DefaultDoubleClickInterval
	}
	if distance <= 0 {
		distance = DefaultDoubleClickDistance
	}
	return &ClickTracker{Interval: interval, Distance: distance}
}

// Press records a press and returns its multiplicity. After a triple click
// further presses alternate with double clicks, as text selection expects.
func (t *ClickTracker) Press(b Button, pos entity.Point, at time.Time) ClickKind {
	kind := ClickSingle
	if l := t.last; l != nil && l.button == b && !at.Before(l.at) &&
		at.Sub(l.at) <= t.Interval && pos.Distance(l.pos) <= t.Distance {
		switch l.kind {
		case ClickSingle:
			kind = ClickDouble
		case ClickDouble:
			kind = ClickTriple
		case ClickTriple:
			kind = ClickDouble
		}
	}
	t.last = &click{button: b, pos: pos, at: at, kind: kind}
	return kind
}

// Reset forgets the previous click.
func (t *ClickTracker) Reset() {
	t.last = nil
}

// MouseAction is one engine call produced by mouse translation:
// MouseClick, MouseMove or MouseWheel.
type MouseAction interface{ mouseAction() }

// MouseClick is a button press or release.
type MouseClick struct {
	Event      port.MouseEvent
	Button     port.MouseButton
	Up         bool
	ClickCount int
}

// MouseMove is a pointer move. Leave is set when the pointer left the view.
type MouseMove struct {
	Event port.MouseEvent
	Leave bool
}

// MouseWheel is a scroll in pixels.
type MouseWheel struct {
	Event          port.MouseEvent
	DeltaX, DeltaY int
}

func (MouseClick) mouseAction() {}
func (MouseMove) mouseAction()  {}
func (MouseWheel) mouseAction() {}

// MouseConfig tunes a Mouse translator.
type MouseConfig struct {
	Keyboard            Keyboard
	DoubleClickInterval time.Duration
	DoubleClickDistance float32
	WheelLinePixels     float32
	WheelMaxPixels      float32
}

// Mouse translates pointer events relative to a widget. It keeps the last
// pointer position, the held buttons and the click history.
type Mouse struct {
	keyboard  Keyboard
	clicks    *ClickTracker
	linePx    float32
	maxPx     float32
	position  entity.Point
	located   bool
	inside    bool
	buttons   port.EventFlags
	modifiers Modifiers
}

// NewMouse creates a translator.
func NewMouse(cfg MouseConfig) *Mouse {
	m := &Mouse{clicks: NewClickTracker(0, 0)}
	m.SetConfig(cfg)
	return m
}

// SetConfig replaces the tuning of the translator. The pointer position,
// held buttons and click history are kept.
func (m *Mouse) SetConfig(cfg MouseConfig) {
	if cfg.WheelLinePixels <= 0 {
		cfg.WheelLinePixels = DefaultWheelLinePixels
	}
	if cfg.WheelMaxPixels <= 0 {
		cfg.WheelMaxPixels = DefaultWheelMaxPixels
	}
	if cfg.DoubleClickInterval <= 0 {
		cfg.DoubleClickInterval = DefaultDoubleClickInterval
	}
	if cfg.DoubleClickDistance <= 0 {
		cfg.DoubleClickDistance = DefaultDoubleClickDistance
	}
	m.keyboard = cfg.Keyboard
	m.linePx = cfg.WheelLinePixels
	m.maxPx = cfg.WheelMaxPixels
	m.clicks.Interval = cfg.DoubleClickInterval
	m.clicks.Distance = cfg.DoubleClickDistance
}

// SetModifiers records the keyboard modifiers carried by mouse events.
func (m *Mouse) SetModifiers(mod Modifiers) {
	m.modifiers = mod
}

// Inside reports whether the pointer is over the view.
func (m *Mouse) Inside() bool {
	return m.inside
}

// Handle translates ev for a view laid out at bounds. Positions are sent in
// view coordinates. A drag that started inside the view keeps reporting
// moves and the final release even outside of it.
func (m *Mouse) Handle(ev Event, bounds entity.Rectangle, at time.Time) []MouseAction {
	switch ev := ev.(type) {
	case CursorEntered:
		// The event has no position: replay the last known one, the next
		// CursorMoved corrects it.
		if m.inside || !m.located {
			return nil
		}
		return m.moved(entity.Point{X: m.position.X + bounds.X, Y: m.position.Y + bounds.Y}, bounds)
	case CursorMoved:
		return m.moved(ev.Position, bounds)
	case CursorLeft:
		if !m.inside {
			return nil
		}
		m.inside = false
		return []MouseAction{MouseMove{Event: m.event(), Leave: true}}
	case ButtonPressed:
		b, flag, ok := engineButton(ev.Button)
		if !ok || !m.inside {
			return nil
		}
		kind := m.clicks.Press(ev.Button, m.position, at)
		m.buttons |= flag
		return []MouseAction{MouseClick{Event: m.event(), Button: b, ClickCount: int(kind)}}
	case ButtonReleased:
		b, flag, ok := engineButton(ev.Button)
		if !ok || m.buttons&flag == 0 {
			return nil
		}
		m.buttons &^= flag
		return []MouseAction{MouseClick{Event: m.event(), Button: b, Up: true, ClickCount: 1}}
	case WheelScrolled:
		if !m.inside {
			return nil
		}
		dx, dy := ev.X, ev.Y
		if ev.Unit == ScrollLines {
			dx *= m.linePx
			dy *= m.linePx
		}
		return []MouseAction{MouseWheel{
			Event:  m.event(),
			DeltaX: clampDelta(dx, m.maxPx),
			DeltaY: clampDelta(dy, m.maxPx),
		}}
	case ModifiersChanged:
		m.modifiers = ev.Modifiers
	}
	return nil
}

func (m *Mouse) moved(pos entity.Point, bounds entity.Rectangle) []MouseAction {
	m.position = entity.Point{X: pos.X - bounds.X, Y: pos.Y - bounds.Y}
	m.located = true
	if bounds.Contains(pos) {
		m.inside = true
		return []MouseAction{MouseMove{Event: m.event()}}
	}
	if m.buttons != 0 {
		return []MouseAction{MouseMove{Event: m.event()}}
	}
	if m.inside {
		m.inside = false
		return []MouseAction{MouseMove{Event: m.event(), Leave: true}}
	}
	return nil
}

func (m *Mouse) event() port.MouseEvent {
	return port.MouseEvent{
		X:         int32(math.Round(float64(m.position.X))),
		Y:         int32(math.Round(float64(m.position.Y))),
		Modifiers: m.keyboard.Flags(m.modifiers) | m.buttons,
	}
}

func engineButton(b Button) (port.MouseButton, port.EventFlags, bool) {
	switch b {
	case ButtonLeft:
		return port.MouseButtonLeft, port.EventFlagLeftMouseButton, true
	case ButtonMiddle:
		return port.MouseButtonMiddle, port.EventFlagMiddleMouseButton, true
	case ButtonRight:
		return port.MouseButtonRight, port.EventFlagRightMouseButton, true
	}
	return 0, 0, false
}

func clampDelta(v, limit float32) int {
	if v > limit {
		v = limit
	}
	if v < -limit {
		v = -limit
	}
	return int(math.Round(float64(v)))
}
