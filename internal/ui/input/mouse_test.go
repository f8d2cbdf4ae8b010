package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
)

func TestClickTrackerTripleClick(t *testing.T) {
	tr := NewClickTracker(0, 0)
	t0 := time.Unix(0, 0)
	p := entity.Point{X: 10, Y: 10}

	assert.Equal(t, ClickSingle, tr.Press(ButtonLeft, p, t0))
	assert.Equal(t, ClickDouble, tr.Press(ButtonLeft, p, t0.Add(100*time.Millisecond)))
	assert.Equal(t, ClickTriple, tr.Press(ButtonLeft, p, t0.Add(200*time.Millisecond)))
	assert.Equal(t, ClickDouble, tr.Press(ButtonLeft, p, t0.Add(300*time.Millisecond)))
}

func TestClickTrackerResets(t *testing.T) {
	t0 := time.Unix(0, 0)
	p := entity.Point{X: 10, Y: 10}

	tests := []struct {
		name   string
		button Button
		pos    entity.Point
		at     time.Time
	}{
		{"interval elapsed", ButtonLeft, p, t0.Add(DefaultDoubleClickInterval + time.Millisecond)},
		{"moved too far", ButtonLeft, entity.Point{X: 20, Y: 10}, t0.Add(50 * time.Millisecond)},
		{"other button", ButtonRight, p, t0.Add(50 * time.Millisecond)},
		{"clock went back", ButtonLeft, p, t0.Add(-time.Millisecond)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewClickTracker(0, 0)
			tr.Press(ButtonLeft, p, t0)
			assert.Equal(t, ClickSingle, tr.Press(tt.button, tt.pos, tt.at))
		})
	}
}

func TestClickTrackerWithinDistance(t *testing.T) {
	tr := NewClickTracker(time.Second, 5)
	t0 := time.Unix(0, 0)
	tr.Press(ButtonLeft, entity.Point{X: 0, Y: 0}, t0)
	assert.Equal(t, ClickDouble, tr.Press(ButtonLeft, entity.Point{X: 3, Y: 4}, t0.Add(900*time.Millisecond)))

	tr.Reset()
	assert.Equal(t, ClickSingle, tr.Press(ButtonLeft, entity.Point{X: 3, Y: 4}, t0.Add(950*time.Millisecond)))
}

var viewBounds = entity.Rectangle{X: 100, Y: 200, Width: 800, Height: 600}

func TestMouseMoveAndLeave(t *testing.T) {
	m := NewMouse(MouseConfig{})
	now := time.Now()

	actions := m.Handle(CursorMoved{Position: entity.Point{X: 150, Y: 260}}, viewBounds, now)
	require.Len(t, actions, 1)
	assert.Equal(t, MouseMove{Event: port.MouseEvent{X: 50, Y: 60}}, actions[0])
	assert.True(t, m.Inside())

	actions = m.Handle(CursorMoved{Position: entity.Point{X: 10, Y: 10}}, viewBounds, now)
	require.Len(t, actions, 1)
	assert.True(t, actions[0].(MouseMove).Leave)

	assert.Empty(t, m.Handle(CursorMoved{Position: entity.Point{X: 5, Y: 5}}, viewBounds, now))
	assert.Empty(t, m.Handle(CursorLeft{}, viewBounds, now))
}

func TestMouseClickSequence(t *testing.T) {
	m := NewMouse(MouseConfig{})
	t0 := time.Unix(0, 0)
	m.Handle(CursorMoved{Position: entity.Point{X: 110, Y: 210}}, viewBounds, t0)

	var counts []int
	for i := 0; i < 3; i++ {
		at := t0.Add(time.Duration(i) * 100 * time.Millisecond)
		press := m.Handle(ButtonPressed{Button: ButtonLeft}, viewBounds, at)
		require.Len(t, press, 1)
		click := press[0].(MouseClick)
		assert.False(t, click.Up)
		assert.True(t, click.Event.Modifiers.Has(port.EventFlagLeftMouseButton))
		counts = append(counts, click.ClickCount)

		release := m.Handle(ButtonReleased{Button: ButtonLeft}, viewBounds, at)
		require.Len(t, release, 1)
		assert.True(t, release[0].(MouseClick).Up)
		assert.False(t, release[0].(MouseClick).Event.Modifiers.Has(port.EventFlagLeftMouseButton))
	}
	assert.Equal(t, []int{1, 2, 3}, counts)
}

func TestMouseDragCarriesButtonAndModifiers(t *testing.T) {
	m := NewMouse(MouseConfig{})
	now := time.Now()
	m.Handle(CursorMoved{Position: entity.Point{X: 110, Y: 210}}, viewBounds, now)
	m.Handle(ModifiersChanged{Modifiers: ModShift}, viewBounds, now)
	m.Handle(ButtonPressed{Button: ButtonLeft}, viewBounds, now)

	actions := m.Handle(CursorMoved{Position: entity.Point{X: 50, Y: 210}}, viewBounds, now)
	require.Len(t, actions, 1, "drag keeps reporting outside the view")
	move := actions[0].(MouseMove)
	assert.False(t, move.Leave)
	assert.Equal(t, int32(-50), move.Event.X)
	assert.Equal(t, port.EventFlagLeftMouseButton|port.EventFlagShiftDown, move.Event.Modifiers)

	release := m.Handle(ButtonReleased{Button: ButtonLeft}, viewBounds, now)
	require.Len(t, release, 1)
}

func TestMousePressOutsideIgnored(t *testing.T) {
	m := NewMouse(MouseConfig{})
	now := time.Now()
	assert.Empty(t, m.Handle(ButtonPressed{Button: ButtonLeft}, viewBounds, now))
	assert.Empty(t, m.Handle(ButtonReleased{Button: ButtonLeft}, viewBounds, now))

	m.Handle(CursorMoved{Position: entity.Point{X: 110, Y: 210}}, viewBounds, now)
	assert.Empty(t, m.Handle(ButtonPressed{Button: ButtonBack}, viewBounds, now))
}

func TestMouseWheelClamped(t *testing.T) {
	m := NewMouse(MouseConfig{WheelLinePixels: 40, WheelMaxPixels: 120})
	now := time.Now()
	assert.Empty(t, m.Handle(WheelScrolled{Unit: ScrollLines, Y: 1}, viewBounds, now))

	m.Handle(CursorMoved{Position: entity.Point{X: 110, Y: 210}}, viewBounds, now)

	tests := []struct {
		name   string
		ev     WheelScrolled
		dx, dy int
	}{
		{"one line", WheelScrolled{Unit: ScrollLines, Y: 1}, 0, 40},
		{"many lines", WheelScrolled{Unit: ScrollLines, Y: -10}, 0, -120},
		{"pixels", WheelScrolled{Unit: ScrollPixels, X: 12.4, Y: -3}, 12, -3},
		{"pixel burst", WheelScrolled{Unit: ScrollPixels, X: 900}, 120, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := m.Handle(tt.ev, viewBounds, now)
			require.Len(t, actions, 1)
			wheel := actions[0].(MouseWheel)
			assert.Equal(t, tt.dx, wheel.DeltaX)
			assert.Equal(t, tt.dy, wheel.DeltaY)
		})
	}
}

func TestMouseEnteredReplaysLastPosition(t *testing.T) {
	m := NewMouse(MouseConfig{})
	now := time.Now()
	assert.Empty(t, m.Handle(CursorEntered{}, viewBounds, now), "no position known yet")

	m.Handle(CursorMoved{Position: entity.Point{X: 150, Y: 260}}, viewBounds, now)
	leave := m.Handle(CursorLeft{}, viewBounds, now)
	require.Len(t, leave, 1)
	assert.False(t, m.Inside())

	actions := m.Handle(CursorEntered{}, viewBounds, now)
	require.Len(t, actions, 1)
	assert.Equal(t, MouseMove{Event: port.MouseEvent{X: 50, Y: 60}}, actions[0])
	assert.True(t, m.Inside())

	assert.Empty(t, m.Handle(CursorEntered{}, viewBounds, now), "already inside")
}

func TestMouseSetConfigKeepsState(t *testing.T) {
	m := NewMouse(MouseConfig{})
	t0 := time.Unix(0, 0)
	m.Handle(CursorMoved{Position: entity.Point{X: 110, Y: 210}}, viewBounds, t0)
	m.Handle(ButtonPressed{Button: ButtonLeft}, viewBounds, t0)

	m.SetConfig(MouseConfig{
		DoubleClickInterval: 50 * time.Millisecond,
		WheelLinePixels:     10,
		WheelMaxPixels:      25,
	})
	assert.True(t, m.Inside())

	wheel := m.Handle(WheelScrolled{Unit: ScrollLines, Y: 2}, viewBounds, t0)
	require.Len(t, wheel, 1)
	assert.Equal(t, 20, wheel[0].(MouseWheel).DeltaY)
	assert.True(t, wheel[0].(MouseWheel).Event.Modifiers.Has(port.EventFlagLeftMouseButton), "held button survives")

	burst := m.Handle(WheelScrolled{Unit: ScrollLines, Y: -9}, viewBounds, t0)
	assert.Equal(t, -25, burst[0].(MouseWheel).DeltaY)

	m.Handle(ButtonReleased{Button: ButtonLeft}, viewBounds, t0)
	late := m.Handle(ButtonPressed{Button: ButtonLeft}, viewBounds, t0.Add(100*time.Millisecond))
	require.Len(t, late, 1)
	assert.Equal(t, 1, late[0].(MouseClick).ClickCount, "shorter interval applies")
}

func TestInteractionFor(t *testing.T) {
	assert.Equal(t, InteractionText, InteractionFor(entity.CursorIBeam))
	assert.Equal(t, InteractionPointer, InteractionFor(entity.CursorHand))
	assert.Equal(t, InteractionResizingDiagonallyUp, InteractionFor(entity.CursorNorthEastResize))
	assert.Equal(t, InteractionIdle, InteractionFor(entity.CursorCustom))
	assert.Equal(t, InteractionIdle, InteractionFor(entity.CursorType(999)))
	assert.Equal(t, "grabbing", InteractionGrabbing.String())
}

func TestCompositionSelection(t *testing.T) {
	assert.Equal(t, entity.Range{From: 3, To: 3}, CompositionSelection(IMEPreedit{Text: "abc"}))

	// "日本" is 6 bytes and 2 UTF-16 units.
	sel := CompositionSelection(IMEPreedit{Text: "日本", Cursor: entity.Range{From: 3, To: 6}, HasCursor: true})
	assert.Equal(t, entity.Range{From: 1, To: 2}, sel)

	sel = CompositionSelection(IMEPreedit{Text: "😀a", Cursor: entity.Range{From: 5, To: 4}, HasCursor: true})
	assert.Equal(t, entity.Range{From: 2, To: 3}, sel)

	assert.Equal(t, uint32(3), UTF16Len("😀a"))
}
