package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/infrastructure/engine"
	"github.com/bnema/osrview/internal/infrastructure/metrics"
	"github.com/bnema/osrview/internal/logging"
)

// ErrLaunchFailed is returned in the action of a create request the engine
// rejected synchronously.
var ErrLaunchFailed = errors.New("browser launch failed")

const (
	defaultFrameRate    = 60
	defaultPumpInterval = 17 * time.Millisecond
	defaultCloseTimeout = 5 * time.Second
	defaultEncoding     = "UTF-8"
)

// Backend selects how frames reach the widget.
type Backend int

const (
	BackendBitmap Backend = iota
	BackendTexture
)

// String returns a human-readable representation of the backend.
func (b Backend) String() string {
	if b == BackendTexture {
		return "texture"
	}
	return "bitmap"
}

// Config tunes a WebviewController.
type Config struct {
	Backend Backend
	// ExternalBeginFrame lets the widget drive frame production. Only used
	// with BackendTexture.
	ExternalBeginFrame bool
	FrameRate          int
	// PumpInterval is the period of the host pump timer.
	PumpInterval time.Duration
	// CloseTimeout bounds the wait for before-close after a close request.
	// Negative disables the timeout; zero selects the default.
	CloseTimeout     time.Duration
	KeyboardMode     engine.KeyboardMode
	ShortcutModifier port.EventFlags
	Importer         port.TextureImporter
	Handles          *engine.HandleTable
}

func (c Config) withDefaults() Config {
	if c.FrameRate <= 0 {
		c.FrameRate = defaultFrameRate
	}
	if c.PumpInterval <= 0 {
		c.PumpInterval = defaultPumpInterval
	}
	if c.CloseTimeout == 0 {
		c.CloseTimeout = defaultCloseTimeout
	}
	if c.Handles == nil {
		c.Handles = engine.NewHandleTable()
	}
	return c
}

// webview is the controller-side lifecycle record of one launch.
type webview struct {
	launch   entity.LaunchID
	browser  entity.BrowserID
	state    entity.WebviewState
	sub      *engine.ClientEventSubscriber
	handle   engine.Handle
	cancel   context.CancelFunc
	closeReq bool
}

// WebviewController owns the registry and drives every browser through
// Uninitialized, Launching, Active, Closing and Closed. All methods must be
// called from the GUI thread.
type WebviewController struct {
	ctx      context.Context
	logger   *zerolog.Logger
	engine   port.Engine
	process  *engine.BrowserProcessHandler
	cfg      Config
	registry *Registry

	launches map[entity.LaunchID]*webview
	browsers map[entity.BrowserID]*webview

	pumpDeadline time.Time
	pumpLater    []time.Time
	now          func() time.Time
}

// NewWebviewController creates a controller for eng. process may be nil when
// the engine does not ask for scheduled pumps.
func NewWebviewController(
	ctx context.Context,
	eng port.Engine,
	process *engine.BrowserProcessHandler,
	cfg Config,
) *WebviewController {
	ctx = logging.WithComponent(ctx, "webview-controller")
	return &WebviewController{
		ctx:      ctx,
		logger:   logging.FromContext(ctx),
		engine:   eng,
		process:  process,
		cfg:      cfg.withDefaults(),
		registry: NewRegistry(),
		launches: make(map[entity.LaunchID]*webview),
		browsers: make(map[entity.BrowserID]*webview),
		now:      time.Now,
	}
}

// Registry returns the registry the controller owns.
func (c *WebviewController) Registry() *Registry {
	return c.registry
}

// Config returns the effective configuration.
func (c *WebviewController) Config() Config {
	return c.cfg
}

// Reconfigure applies reloaded settings. The backend, the texture importer
// and the handle table stay as they were. Live browsers switch keyboard
// policy at once; the frame rate only reaches later launches. The pump
// interval takes effect when the timer next re-arms.
func (c *WebviewController) Reconfigure(cfg Config) {
	cfg.Backend = c.cfg.Backend
	cfg.ExternalBeginFrame = c.cfg.ExternalBeginFrame
	cfg.Importer = c.cfg.Importer
	cfg.Handles = c.cfg.Handles
	c.cfg = cfg.withDefaults()

	mode, modifier := c.cfg.KeyboardMode, c.cfg.ShortcutModifier
	for _, wv := range c.launches {
		obj, ok := c.cfg.Handles.Lookup(wv.handle)
		if !ok {
			continue
		}
		client, ok := obj.(*engine.Client)
		if !ok {
			continue
		}
		if err := c.engine.PostTask(0, func() { client.SetKeyboard(mode, modifier) }); err != nil {
			c.logger.Warn().Err(err).Uint64("launch_id", uint64(wv.launch)).Msg("keyboard policy not applied")
		}
	}
	c.logger.Info().
		Dur("pump_interval", c.cfg.PumpInterval).
		Dur("close_timeout", c.cfg.CloseTimeout).
		Int("frame_rate", c.cfg.FrameRate).
		Msg("configuration applied")
}

// State returns the lifecycle state of a launch.
func (c *WebviewController) State(launch entity.LaunchID) entity.WebviewState {
	if wv, ok := c.launches[launch]; ok {
		return wv.state
	}
	return entity.StateUninitialized
}

// Launch returns the launch a live browser belongs to.
func (c *WebviewController) Launch(id entity.BrowserID) (entity.LaunchID, bool) {
	wv, ok := c.browsers[id]
	if !ok {
		return 0, false
	}
	return wv.launch, true
}

// Init starts the host pump timer and, when available, the engine pump
// request stream.
func (c *WebviewController) Init() tea.Cmd {
	cmds := []tea.Cmd{c.pumpTick()}
	if c.process != nil {
		cmds = append(cmds, listen(c.ctx, c.process.PumpRequests(), func(d time.Duration) tea.Msg {
			return pumpRequestMsg{delay: d}
		}))
	}
	return tea.Batch(cmds...)
}

// Update handles one message. Messages the controller does not know yield
// ActionNone.
func (c *WebviewController) Update(msg tea.Msg) Action {
	switch msg := msg.(type) {
	case streamMsg:
		return c.Update(msg.msg).with(msg.next)
	case CreateMsg:
		return c.launch(msg)
	case CreatedMsg:
		return c.created(msg)
	case ClosedMsg:
		return c.closed(msg.BrowserID)
	case LoadMsg:
		return c.load(msg.Event)
	case UpdateViewMsg:
		return c.updateView(msg.Frame)
	case UpdateCaretOffsetMsg:
		if e, ok := c.registry.Get(msg.BrowserID); ok {
			e.CaretOffset = msg.Offset
			e.HasCaret = true
		}
		return Action{}
	case EditableNodeFocusedMsg:
		if e, ok := c.registry.Get(msg.BrowserID); ok {
			e.FocusedNode = msg.Rect
			e.HasFocusedNode = true
		}
		return Action{}
	case PumpLoopMsg:
		return c.pump(msg)
	case pumpRequestMsg:
		return c.schedulePump(msg.delay)
	case CloseMsg:
		return c.close(msg.BrowserID)
	case CloseTimeoutMsg:
		return c.closeTimeout(msg)
	}
	return Action{}
}

func (c *WebviewController) launch(msg CreateMsg) Action {
	launch := entity.NewLaunchID()
	ctx := logging.WithURL(logging.WithLaunchID(c.ctx, uint64(launch)), msg.URL)
	log := logging.FromContext(ctx)

	scale := msg.ScaleFactor
	if scale <= 0 {
		scale = 1
	}
	bounds := msg.Bounds.ToRect()

	window := port.WindowInfo{Bounds: bounds}
	switch msg.Parent.Kind {
	case port.WindowHandleNone:
		window.Windowless = true
		window.SharedTexture = c.cfg.Backend == BackendTexture
		window.ExternalBeginFrame = window.SharedTexture && c.cfg.ExternalBeginFrame
	case port.WindowHandleWin32, port.WindowHandleAppKit, port.WindowHandleXlib:
		window.Parent = msg.Parent
	default:
		panic(fmt.Sprintf("controller: cannot parent a browser to a %s window", msg.Parent.Kind))
	}

	client, state, sub := engine.NewClient(ctx, engine.Options{
		Launch:            launch,
		DeviceScaleFactor: scale,
		ViewRect:          bounds,
		KeyboardMode:      c.cfg.KeyboardMode,
		ShortcutModifier:  c.cfg.ShortcutModifier,
		Engine:            c.engine,
		Importer:          c.cfg.Importer,
		Handles:           c.cfg.Handles,
	})
	c.registry.InsertPending(launch, state)
	wv := &webview{launch: launch, state: entity.StateLaunching, sub: sub, handle: client.Handle()}
	c.launches[launch] = wv

	log.Info().
		Int32("width", bounds.Width).
		Int32("height", bounds.Height).
		Float32("scale", scale).
		Bool("windowless", window.Windowless).
		Msg("launching browser")

	ok := c.engine.CreateBrowser(ctx, port.CreateBrowserRequest{
		Window: window,
		Client: client,
		URL:    msg.URL,
		Settings: port.BrowserSettings{
			WindowlessFrameRate:       c.cfg.FrameRate,
			DefaultEncoding:           defaultEncoding,
			JavaScript:                port.StateEnabled,
			JavaScriptAccessClipboard: port.StateEnabled,
			JavaScriptDOMPaste:        port.StateEnabled,
		},
		RequestContext: engine.NewRequestContextHandler(ctx),
	})
	// The engine took its own reference when it accepted the client.
	client.Release()

	if !ok {
		log.Error().Msg("engine rejected browser creation")
		wv.state = entity.StateClosed
		delete(c.launches, launch)
		c.registry.RemovePending(launch)
		sub.Close()
		metrics.RecordLaunchFailure()
		return Action{
			Kind:   ActionLaunchFailed,
			Launch: launch,
			Err:    fmt.Errorf("%w: %s", ErrLaunchFailed, msg.URL),
		}
	}

	streamCtx, cancel := context.WithCancel(c.ctx)
	wv.cancel = cancel
	return Action{Kind: ActionRun, Launch: launch, Cmd: subscribe(streamCtx, sub)}
}

func (c *WebviewController) created(msg CreatedMsg) Action {
	wv, ok := c.launches[msg.Launch]
	if !ok || wv.state != entity.StateLaunching {
		c.logger.Debug().
			Uint64("launch_id", uint64(msg.Launch)).
			Int32("browser_id", int32(msg.BrowserID)).
			Msg("created event for unknown launch")
		return Action{}
	}
	c.registry.Promote(msg.Launch, msg.BrowserID)
	wv.browser = msg.BrowserID
	wv.state = entity.StateActive
	c.browsers[msg.BrowserID] = wv
	metrics.SetLiveBrowsers(len(c.browsers))

	c.logger.Info().
		Uint64("launch_id", uint64(msg.Launch)).
		Int32("browser_id", int32(msg.BrowserID)).
		Msg("browser created")

	action := Action{Kind: ActionCreated, Launch: msg.Launch, BrowserID: msg.BrowserID}
	if wv.closeReq {
		closing := c.close(msg.BrowserID)
		action = action.with(closing.Cmd)
	}
	return action
}

func (c *WebviewController) load(ev entity.LoadEvent) Action {
	id, ok := ev.Browser()
	if !ok {
		return Action{}
	}
	switch ev := ev.(type) {
	case entity.LoadEnded:
		if ev.IsMainFrame {
			if _, live := c.browsers[id]; live {
				return Action{Kind: ActionLoaded, BrowserID: id}
			}
		}
	case entity.LoadFailed:
		c.logger.Warn().Err(ev).Int32("browser_id", int32(id)).Msg("load failed")
	}
	return Action{}
}

func (c *WebviewController) updateView(frame entity.Frame) Action {
	e, ok := c.registry.Get(frame.BrowserID)
	if !ok {
		return Action{}
	}
	if frame.Texture != nil {
		e.Texture = frame.Texture
		e.Frame = entity.Bitmap{}
	} else {
		e.Frame = e.State.Render.Snapshot()
		e.Texture = nil
	}
	return Action{Kind: ActionUpdateView, BrowserID: frame.BrowserID}
}

func (c *WebviewController) close(id entity.BrowserID) Action {
	wv, ok := c.browsers[id]
	if !ok || wv.state != entity.StateActive {
		return Action{}
	}

	host, ok := c.engine.Host(id)
	if !ok {
		c.logger.Warn().Int32("browser_id", int32(id)).Msg("no engine host for browser, evicting")
		return c.closed(id)
	}
	wv.state = entity.StateClosing
	host.CloseBrowser(false)
	c.logger.Debug().Int32("browser_id", int32(id)).Msg("close requested")

	if c.cfg.CloseTimeout < 0 {
		return Action{}
	}
	timeout := CloseTimeoutMsg{BrowserID: id, Launch: wv.launch}
	return Action{Kind: ActionRun, BrowserID: id, Cmd: tea.Tick(c.cfg.CloseTimeout, func(time.Time) tea.Msg {
		return timeout
	})}
}

// CloseLaunch marks a pending launch to be closed as soon as its browser
// exists.
func (c *WebviewController) CloseLaunch(launch entity.LaunchID) {
	if wv, ok := c.launches[launch]; ok && wv.state == entity.StateLaunching {
		wv.closeReq = true
	}
}

func (c *WebviewController) closeTimeout(msg CloseTimeoutMsg) Action {
	wv, ok := c.browsers[msg.BrowserID]
	if !ok || wv.launch != msg.Launch || wv.state != entity.StateClosing {
		return Action{}
	}
	c.logger.Warn().
		Int32("browser_id", int32(msg.BrowserID)).
		Dur("timeout", c.cfg.CloseTimeout).
		Msg("browser did not confirm close, evicting")
	metrics.RecordCloseTimeout()
	return c.closed(msg.BrowserID)
}

// closed finalizes a browser. Both the before-close event and the close
// timeout end here.
func (c *WebviewController) closed(id entity.BrowserID) Action {
	wv, ok := c.browsers[id]
	if !ok {
		return Action{}
	}
	wv.state = entity.StateClosed
	delete(c.browsers, id)
	delete(c.launches, wv.launch)
	c.registry.Remove(id)
	wv.sub.Close()
	if wv.cancel != nil {
		wv.cancel()
	}
	metrics.SetLiveBrowsers(len(c.browsers))

	c.logger.Info().Int32("browser_id", int32(id)).Msg("browser closed")
	return Action{Kind: ActionClosed, Launch: wv.launch, BrowserID: id}
}

// CloseAll requests a close of every live browser.
func (c *WebviewController) CloseAll() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(c.browsers))
	for _, id := range c.registry.Browsers() {
		cmds = append(cmds, c.close(id).Cmd)
	}
	return tea.Batch(cmds...)
}

// Live returns the number of browsers not yet closed.
func (c *WebviewController) Live() int {
	return len(c.launches)
}
