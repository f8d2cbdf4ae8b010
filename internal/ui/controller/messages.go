package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
)

// CreateMsg asks the controller to launch a browser.
type CreateMsg struct {
	URL         string
	Bounds      entity.Rectangle
	ScaleFactor float32
	// Parent is the native window to embed into. The zero value launches a
	// windowless (off-screen) browser.
	Parent port.WindowHandle
}

// CreatedMsg reports that the engine constructed the browser for Launch.
type CreatedMsg struct {
	Launch    entity.LaunchID
	BrowserID entity.BrowserID
}

// ClosedMsg reports that the engine is about to destroy a browser.
type ClosedMsg struct {
	BrowserID entity.BrowserID
}

// LoadMsg carries a load notification.
type LoadMsg struct {
	Event entity.LoadEvent
}

// UpdateViewMsg reports that a new frame is ready.
type UpdateViewMsg struct {
	Frame entity.Frame
}

// UpdateCaretOffsetMsg carries the caret offset inside the focused node.
type UpdateCaretOffsetMsg struct {
	BrowserID entity.BrowserID
	Offset    float32
}

// EditableNodeFocusedMsg carries the geometry of the focused editable node.
type EditableNodeFocusedMsg struct {
	BrowserID entity.BrowserID
	Rect      entity.Rectangle
}

// PumpLoopMsg asks for one round of engine message loop work.
type PumpLoopMsg struct {
	Delay     time.Duration
	scheduled bool
	periodic  bool
}

// CloseMsg asks the controller to close a browser.
type CloseMsg struct {
	BrowserID entity.BrowserID
}

// CloseTimeoutMsg fires when a browser did not confirm its close in time.
type CloseTimeoutMsg struct {
	BrowserID entity.BrowserID
	Launch    entity.LaunchID
}

// streamMsg wraps a message delivered by an engine mailbox together with the
// command that waits for the next one.
type streamMsg struct {
	msg  tea.Msg
	next tea.Cmd
}

// pumpRequestMsg is a pump delay asked for by the engine.
type pumpRequestMsg struct {
	delay time.Duration
}

// ActionKind tells the host what a handled message produced.
type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionRun means only Cmd needs to run.
	ActionRun
	ActionCreated
	ActionClosed
	ActionUpdateView
	// ActionLoaded means the main frame finished loading.
	ActionLoaded
	ActionLaunchFailed
)

// String returns a human-readable representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionRun:
		return "run"
	case ActionCreated:
		return "created"
	case ActionClosed:
		return "closed"
	case ActionUpdateView:
		return "update_view"
	case ActionLoaded:
		return "loaded"
	case ActionLaunchFailed:
		return "launch_failed"
	default:
		return "unknown"
	}
}

// Action is the outcome of Update. Cmd, when set, must be run by the host
// whatever the kind is; it keeps the engine streams flowing.
type Action struct {
	Kind      ActionKind
	Launch    entity.LaunchID
	BrowserID entity.BrowserID
	Err       error
	Cmd       tea.Cmd
}

func (a Action) with(cmd tea.Cmd) Action {
	a.Cmd = tea.Batch(a.Cmd, cmd)
	if a.Kind == ActionNone && a.Cmd != nil {
		a.Kind = ActionRun
	}
	return a
}
