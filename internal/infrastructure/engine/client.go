// Package engine implements the handler set the embedded browser engine
// calls back into, together with the per-browser render state and the
// mailboxes that carry engine events to the GUI thread.
package engine

import (
	"context"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/infrastructure/metrics"
	"github.com/bnema/osrview/internal/logging"
)

// KeyboardMode selects who handles editing shortcuts.
type KeyboardMode int

const (
	// KeyboardPassthrough leaves every key to the widget translation path.
	KeyboardPassthrough KeyboardMode = iota
	// KeyboardDelegate runs the engine's default editing commands and the
	// dev tools toggle from the keyboard callbacks.
	KeyboardDelegate
)

// Options configures a handler set.
type Options struct {
	Launch            entity.LaunchID
	DeviceScaleFactor float32
	ViewRect          entity.Rect
	KeyboardMode      KeyboardMode
	// ShortcutModifier is the modifier that turns A/C/V/X/Y/Z into editing
	// shortcuts in delegate mode: control, or command on macOS.
	ShortcutModifier port.EventFlags
	// Engine resolves browser hosts for delegated editing commands.
	Engine port.Engine
	// Importer is required for shared texture rendering.
	Importer port.TextureImporter
	// Handles is the table the client registers itself in. A private table
	// is used when nil.
	Handles *HandleTable
}

// ClientState is the GUI-side view of one browser.
type ClientState struct {
	Launch  entity.LaunchID
	Render  *RenderState
	Display *DisplayState
}

// Release frees the frame resources.
func (s *ClientState) Release() {
	if s == nil {
		return
	}
	s.Render.Release()
}

// ClientEventSubscriber bundles the receive ends of one browser's event
// mailboxes. It is consumed once by the controller.
type ClientEventSubscriber struct {
	LifeSpan *Mailbox[entity.LifeSpanEvent]
	Load     *Mailbox[entity.LoadEvent]
	Frames   *Mailbox[entity.Frame]
	IPC      *Mailbox[entity.IPCMessage]
}

// Close drops every receive end. Later engine events are discarded.
func (s *ClientEventSubscriber) Close() {
	s.LifeSpan.Close()
	s.Load.Close()
	s.Frames.Close()
	s.IPC.Close()
}

func (s *ClientEventSubscriber) closeSend() {
	s.LifeSpan.CloseSend()
	s.Load.CloseSend()
	s.Frames.CloseSend()
	s.IPC.CloseSend()
}

// Client is the handler set of one browser. It implements port.Client and
// only translates callbacks into mailbox sends.
type Client struct {
	ctx     context.Context
	handles *HandleTable
	handle  Handle

	lifeSpan    lifeSpanHandler
	load        loadHandler
	render      renderHandler
	display     displayHandler
	contextMenu contextMenuHandler
	keyboard    keyboardHandler
	messages    processMessageHandler
}

var _ port.Client = (*Client)(nil)

// NewClient builds a handler set, its state and its subscriber. The returned
// client holds one reference owned by the caller; the engine adds its own
// when it accepts the client.
func NewClient(ctx context.Context, opts Options) (*Client, *ClientState, *ClientEventSubscriber) {
	ctx = logging.WithLaunchID(ctx, uint64(opts.Launch))

	state := &ClientState{
		Launch:  opts.Launch,
		Render:  NewRenderState(opts.DeviceScaleFactor, opts.ViewRect),
		Display: NewDisplayState(),
	}
	sub := &ClientEventSubscriber{
		LifeSpan: NewMailbox[entity.LifeSpanEvent](),
		Load:     NewMailbox[entity.LoadEvent](),
		Frames:   NewMailbox[entity.Frame](),
		IPC:      NewMailbox[entity.IPCMessage](),
	}

	c := &Client{
		ctx:         ctx,
		lifeSpan:    lifeSpanHandler{ctx: ctx, launch: opts.Launch, tx: sub.LifeSpan},
		load:        loadHandler{ctx: ctx, tx: sub.Load},
		render:      renderHandler{ctx: ctx, state: state.Render, importer: opts.Importer, tx: sub.Frames},
		display:     displayHandler{state: state.Display},
		contextMenu: contextMenuHandler{},
		keyboard:    keyboardHandler{ctx: ctx, engine: opts.Engine},
		messages:    processMessageHandler{ctx: ctx, state: state.Render, tx: sub.IPC},
	}

	c.keyboard.setPolicy(opts.KeyboardMode, opts.ShortcutModifier)

	c.handles = opts.Handles
	if c.handles == nil {
		c.handles = NewHandleTable()
	}
	c.handle = c.handles.Register(c, func() {
		logging.FromContext(ctx).Debug().Msg("handler set released by engine")
		sub.closeSend()
	})

	return c, state, sub
}

// SetKeyboard changes the shortcut policy. Like every handler call it must
// run on the engine thread; see port.Engine.PostTask.
func (c *Client) SetKeyboard(mode KeyboardMode, modifier port.EventFlags) {
	c.keyboard.setPolicy(mode, modifier)
}

// Handle returns the table handle the client is registered under.
func (c *Client) Handle() Handle { return c.handle }

func (c *Client) AddRef() { c.handles.Retain(c.handle) }

func (c *Client) Release() bool { return c.handles.Release(c.handle) }

func (c *Client) HasOneRef() bool { return c.handles.Refs(c.handle) == 1 }

func (c *Client) LifeSpan(cb port.LifeSpanCallback) bool { return c.lifeSpan.dispatch(cb) }

func (c *Client) Load(cb port.LoadCallback) { c.load.dispatch(cb) }

func (c *Client) Render(cb port.RenderCallback) port.RenderReply { return c.render.dispatch(cb) }

func (c *Client) Display(cb port.DisplayCallback) bool { return c.display.dispatch(cb) }

func (c *Client) ContextMenu(cb port.ContextMenuCallback) { c.contextMenu.dispatch(cb) }

func (c *Client) Keyboard(cb port.KeyboardCallback) port.KeyboardReply {
	return c.keyboard.dispatch(cb)
}

func (c *Client) ProcessMessage(msg port.ProcessMessage) bool { return c.messages.dispatch(msg) }

// sender is the send end of a mailbox.
type sender[T any] interface {
	Send(v T) error
}

// send enqueues v and swallows failures: the engine must never see an error
// from a notification.
func send[T any](ctx context.Context, channel string, tx sender[T], v T) bool {
	if err := tx.Send(v); err != nil {
		metrics.RecordDroppedEvent(channel)
		logging.FromContext(ctx).Debug().Err(err).Str("channel", channel).Msg("dropping engine event")
		return false
	}
	return true
}
