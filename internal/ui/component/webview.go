package component

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/logging"
	"github.com/bnema/osrview/internal/ui/controller"
	"github.com/bnema/osrview/internal/ui/input"
)

// WebviewOptions configures a Webview widget.
type WebviewOptions struct {
	Backend            controller.Backend
	ExternalBeginFrame bool
	Keyboard           input.Keyboard
	Mouse              input.MouseConfig
}

// Webview is the leaf widget presenting one browser. It reads the frame the
// controller cached in the registry on every draw and forwards input to the
// engine host synchronously.
type Webview struct {
	id       entity.BrowserID
	registry *controller.Registry
	engine   port.Engine
	opts     WebviewOptions

	keyboard input.Keyboard
	mouse    *input.Mouse
	bounds   entity.Rectangle
	laidOut  bool
	focused  bool

	now    func() time.Time
	logger *zerolog.Logger
}

// NewWebview creates the widget for browser id.
func NewWebview(
	ctx context.Context,
	id entity.BrowserID,
	registry *controller.Registry,
	eng port.Engine,
	opts WebviewOptions,
) *Webview {
	ctx = logging.WithBrowserID(logging.WithComponent(ctx, "webview"), int32(id))
	opts.Mouse.Keyboard = opts.Keyboard
	return &Webview{
		id:       id,
		registry: registry,
		engine:   eng,
		opts:     opts,
		keyboard: opts.Keyboard,
		mouse:    input.NewMouse(opts.Mouse),
		now:      time.Now,
		logger:   logging.FromContext(ctx),
	}
}

// SetInput applies new keyboard and mouse settings. The rendering backend
// is fixed for the lifetime of the widget.
func (w *Webview) SetInput(opts WebviewOptions) {
	opts.Mouse.Keyboard = opts.Keyboard
	w.opts.Keyboard = opts.Keyboard
	w.opts.Mouse = opts.Mouse
	w.keyboard = opts.Keyboard
	w.mouse.SetConfig(opts.Mouse)
}

// BrowserID returns the browser the widget presents.
func (w *Webview) BrowserID() entity.BrowserID {
	return w.id
}

// Bounds returns the bounds of the last layout pass.
func (w *Webview) Bounds() entity.Rectangle {
	return w.bounds
}

// Layout fills the available space. When the bounds changed since the last
// pass the engine is told to resize.
func (w *Webview) Layout(available entity.Rectangle) entity.Rectangle {
	if !w.laidOut || available != w.bounds {
		w.bounds = available
		w.laidOut = true
		w.Resize(available)
	}
	return available
}

// Resize stores the new view rect and notifies the engine. Repeating the
// same bounds is a no-op. A browser that is gone is ignored.
func (w *Webview) Resize(bounds entity.Rectangle) {
	e, ok := w.registry.Get(w.id)
	if !ok {
		return
	}
	if !e.State.Render.SetViewRect(bounds.ToRect()) {
		return
	}
	if host, ok := w.engine.Host(w.id); ok {
		host.WasResized()
	}
	w.logger.Debug().
		Float32("width", bounds.Width).
		Float32("height", bounds.Height).
		Msg("view resized")
}

// SetScaleFactor changes the device scale factor the engine renders at and
// asks it to re-query the screen and view size. Non-positive and unchanged
// factors are ignored.
func (w *Webview) SetScaleFactor(scale float32) bool {
	e, ok := w.registry.Get(w.id)
	if !ok || scale <= 0 || e.State.Render.DeviceScaleFactor() == scale {
		return false
	}
	e.State.Render.SetDeviceScaleFactor(scale)
	if host, ok := w.engine.Host(w.id); ok {
		host.NotifyScreenInfoChanged()
		host.WasResized()
	}
	w.logger.Debug().Float32("scale", scale).Msg("device scale factor changed")
	return true
}

// ScaleFactor returns the device scale factor of the browser, 1 when it is gone.
func (w *Webview) ScaleFactor() float32 {
	e, ok := w.registry.Get(w.id)
	if !ok {
		return 1
	}
	return e.State.Render.DeviceScaleFactor()
}

// Draw presents the cached frame, or a placeholder when there is none.
func (w *Webview) Draw(r port.Renderer) {
	e, ok := w.registry.Get(w.id)
	switch {
	case !ok:
		r.DrawPlaceholder(w.bounds)
	case w.opts.Backend == controller.BackendTexture && e.Texture != nil:
		r.DrawTexture(e.Texture, w.bounds)
	case !e.Frame.Empty():
		r.DrawImage(e.Frame, w.bounds)
	default:
		r.DrawPlaceholder(w.bounds)
	}
}

// MouseInteraction returns the cursor to show at pos.
func (w *Webview) MouseInteraction(pos entity.Point) input.Interaction {
	if !w.bounds.Contains(pos) {
		return input.InteractionNone
	}
	e, ok := w.registry.Get(w.id)
	if !ok {
		return input.InteractionIdle
	}
	return input.InteractionFor(e.State.Display.Cursor())
}

// Update handles one GUI event.
func (w *Webview) Update(ev input.Event, shell port.Shell) {
	if _, ok := ev.(input.RedrawRequested); ok {
		w.redraw(shell)
		return
	}

	if _, ok := w.registry.Get(w.id); !ok {
		return
	}
	host, ok := w.engine.Host(w.id)
	if !ok {
		return
	}

	switch ev := ev.(type) {
	case input.KeyPressed, input.KeyReleased:
		if !w.focused {
			return
		}
		for _, ke := range w.keyboard.Translate(ev, w.editable()) {
			host.SendKeyEvent(ke)
		}
		shell.CaptureEvent()
	case input.ModifiersChanged:
		w.mouse.SetModifiers(ev.Modifiers)
	case input.CursorEntered, input.CursorMoved, input.CursorLeft,
		input.ButtonPressed, input.ButtonReleased, input.WheelScrolled:
		w.mouseEvent(host, ev, shell)
	case input.IMEPreedit:
		underline := port.CompositionUnderline{
			Range: entity.Range{From: 0, To: input.UTF16Len(ev.Text)},
			Color: 0xFF000000,
		}
		host.ImeSetComposition(ev.Text, []port.CompositionUnderline{underline},
			entity.InvalidRange, input.CompositionSelection(ev))
		shell.CaptureEvent()
	case input.IMECommit:
		host.ImeCommitText(ev.Text, entity.InvalidRange, 0)
		shell.CaptureEvent()
	case input.IMEClosed:
		host.ImeFinishComposingText(false)
	}
}

func (w *Webview) mouseEvent(host port.BrowserHost, ev input.Event, shell port.Shell) {
	actions := w.mouse.Handle(ev, w.bounds, w.now())
	for _, a := range actions {
		switch a := a.(type) {
		case input.MouseClick:
			if !a.Up {
				w.focus(host, true)
			}
			host.SendMouseClickEvent(a.Event, a.Button, a.Up, a.ClickCount)
		case input.MouseMove:
			host.SendMouseMoveEvent(a.Event, a.Leave)
		case input.MouseWheel:
			host.SendMouseWheelEvent(a.Event, a.DeltaX, a.DeltaY)
		}
	}
	if _, pressed := ev.(input.ButtonPressed); pressed && len(actions) == 0 {
		// A press outside of the view moves focus elsewhere.
		w.focus(host, false)
	}
	if len(actions) > 0 {
		shell.CaptureEvent()
	}
}

// Focus gives keyboard focus to the view or takes it away.
func (w *Webview) Focus(focused bool) {
	if host, ok := w.engine.Host(w.id); ok {
		w.focus(host, focused)
	}
}

// Focused reports whether key events are forwarded.
func (w *Webview) Focused() bool {
	return w.focused
}

func (w *Webview) focus(host port.BrowserHost, focused bool) {
	if w.focused == focused {
		return
	}
	w.focused = focused
	host.SetFocus(focused)
}

func (w *Webview) editable() bool {
	e, ok := w.registry.Get(w.id)
	return ok && e.HasFocusedNode
}

// redraw re-issues the IME request, since the node may have moved without
// any input, and paces frame production in external begin-frame mode.
func (w *Webview) redraw(shell port.Shell) {
	e, ok := w.registry.Get(w.id)
	if !ok {
		return
	}
	if pos, ok := e.IMEPosition(w.bounds); ok {
		shell.RequestInputMethod(port.InputMethod{Enabled: true, Position: pos, Purpose: port.InputPurposeNormal})
	} else {
		shell.RequestInputMethod(port.InputMethod{})
	}

	if w.opts.Backend == controller.BackendTexture && w.opts.ExternalBeginFrame {
		if host, ok := w.engine.Host(w.id); ok {
			host.SendExternalBeginFrame()
		}
		shell.RequestRedraw()
	}
}
