package headless

import (
	"context"
	"encoding/json"
	"image"
	"sync/atomic"
	"time"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/infrastructure/engine"
	"github.com/bnema/osrview/internal/logging"
)

const (
	defaultViewWidth  = 800
	defaultViewHeight = 600
	defaultFrameRate  = 60

	errUnknownURLScheme = -302
)

// vkBack is the Windows virtual key code of backspace.
const vkBack = 0x08

// browser is the host object of one headless browser. Host methods may be
// called from any goroutine and only queue work; everything else runs on the
// pumping goroutine.
type browser struct {
	id      entity.BrowserID
	engine  *Engine
	ctx     context.Context
	client  port.Client
	window  port.WindowInfo
	prefs   *Preferences
	devTool atomic.Bool

	frameInterval time.Duration

	page      *page
	focused   bool
	cursor    entity.CursorType
	closing   bool
	scheduled bool
	invalid   bool
	full      bool
	dirty     []entity.Rect
	lastSize  image.Point
	viewWidth int32
}

var _ port.BrowserHost = (*browser)(nil)

func newBrowser(e *Engine, id entity.BrowserID, req port.CreateBrowserRequest) *browser {
	rate := req.Settings.WindowlessFrameRate
	if rate <= 0 {
		rate = defaultFrameRate
	}
	return &browser{
		id:            id,
		engine:        e,
		ctx:           logging.WithURL(logging.WithBrowserID(e.ctx, int32(id)), req.URL),
		client:        req.Client,
		window:        req.Window,
		prefs:         newSeededPreferences(e.defaults),
		frameInterval: time.Second / time.Duration(rate),
		page:          newPage(req.URL),
		cursor:        entity.CursorPointer,
		viewWidth:     defaultViewWidth,
	}
}

func (b *browser) ref() port.BrowserRef { return port.Browser(b.id) }

func (b *browser) mainFrame() port.FrameRef {
	return port.FrameRef{ID: "main", IsMain: true, Valid: true}
}

// create announces the browser and starts the navigation.
func (b *browser) create(rc port.RequestContextHandler) {
	if rc != nil {
		rc.OnRequestContextInitialized(b.prefs)
	}
	b.engine.register(b)
	b.client.LifeSpan(port.AfterCreated{Browser: b.ref()})

	b.client.Load(port.LoadingStateChange{Browser: b.ref(), IsLoading: true})
	b.client.Load(port.LoadStart{Browser: b.ref(), Frame: b.mainFrame()})
	b.invalidateAll()
	b.engine.post(0, b.finishLoad)
}

func (b *browser) finishLoad() {
	if b.closing {
		return
	}
	if !b.page.loadable() {
		b.client.Load(port.LoadError{
			Browser:   b.ref(),
			Frame:     b.mainFrame(),
			ErrorCode: errUnknownURLScheme,
			ErrorText: "ERR_UNKNOWN_URL_SCHEME",
			FailedURL: b.page.url,
		})
	} else {
		b.client.Load(port.LoadEnd{Browser: b.ref(), Frame: b.mainFrame(), HTTPStatusCode: 200})
	}
	b.client.Load(port.LoadingStateChange{Browser: b.ref(), IsLoading: false})
}

// invalidate marks r dirty and schedules a paint unless frames are paced
// externally.
func (b *browser) invalidate(r entity.Rect) {
	b.dirty = append(b.dirty, r)
	b.schedulePaint()
}

func (b *browser) invalidateAll() {
	b.full = true
	b.schedulePaint()
}

func (b *browser) schedulePaint() {
	b.invalid = true
	if b.window.ExternalBeginFrame || b.scheduled {
		return
	}
	b.scheduled = true
	b.engine.post(b.frameInterval, func() {
		b.scheduled = false
		b.paint()
	})
}

func (b *browser) viewRect() entity.Rect {
	reply := b.client.Render(port.GetViewRect{Browser: b.ref()})
	if reply.Handled && reply.ViewRect.Width > 0 && reply.ViewRect.Height > 0 {
		return reply.ViewRect
	}
	return entity.Rect{Width: defaultViewWidth, Height: defaultViewHeight}
}

func (b *browser) scale() float32 {
	reply := b.client.Render(port.GetScreenInfo{Browser: b.ref()})
	if reply.Handled && reply.Screen.DeviceScaleFactor > 0 {
		return reply.Screen.DeviceScaleFactor
	}
	return 1
}

func (b *browser) paint() {
	if b.closing || !b.invalid {
		return
	}
	view := b.viewRect()
	scale := b.scale()
	b.viewWidth = view.Width

	img := b.page.rasterize(view.Width, view.Height, scale, b.focused)
	size := img.Rect.Size()

	var dirty []entity.Rect
	if b.full || size != b.lastSize {
		dirty = []entity.Rect{{Width: int32(size.X), Height: int32(size.Y)}}
	} else {
		dirty = make([]entity.Rect, 0, len(b.dirty))
		for _, r := range b.dirty {
			dirty = append(dirty, deviceRect(r, scale))
		}
	}
	b.full, b.invalid, b.dirty = false, false, nil
	b.lastSize = size

	if b.window.SharedTexture {
		handle := b.engine.textures.publish(b.id, img)
		b.client.Render(port.AcceleratedPaint{
			Browser:    b.ref(),
			Element:    entity.PaintView,
			DirtyRects: dirty,
			Info: entity.SharedTextureInfo{
				Handle:    handle,
				Format:    entity.ColorRGBA8888,
				CodedSize: size,
			},
		})
		return
	}
	b.client.Render(port.Paint{
		Browser:    b.ref(),
		Element:    entity.PaintView,
		DirtyRects: dirty,
		Buffer:     bgra(img),
		Width:      int32(size.X),
		Height:     int32(size.Y),
	})
}

// textChanged repaints the field and reports the new caret.
func (b *browser) textChanged() {
	b.invalidate(field(b.viewWidth))
	b.sendMessage(engine.MessageCaretOffsetChanged, struct {
		Offset float32 `json:"offset"`
	}{b.page.caretOffset()})
}

// focusField reports the field geometry in device pixels.
func (b *browser) focusField() {
	f := field(b.viewWidth)
	s := b.scale()
	b.sendMessage(engine.MessageFocusedNode, struct {
		X      float32 `json:"x"`
		Y      float32 `json:"y"`
		Width  float32 `json:"width"`
		Height float32 `json:"height"`
	}{float32(f.X) * s, float32(f.Y) * s, float32(f.Width) * s, float32(f.Height) * s})
}

func (b *browser) sendMessage(name string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.FromContext(b.ctx).Error().Err(err).Str("name", name).Msg("failed to encode renderer message")
		return
	}
	b.client.ProcessMessage(port.ProcessMessage{
		Browser: b.ref(),
		Frame:   b.mainFrame(),
		Source:  port.ProcessRenderer,
		Name:    name,
		Args:    []string{string(data)},
	})
}

func (b *browser) setCursor(c entity.CursorType) {
	if b.cursor == c {
		return
	}
	b.cursor = c
	b.client.Display(port.CursorChange{Browser: b.ref(), Cursor: c})
}

// live wraps fn so it is skipped once the browser started closing.
func (b *browser) live(fn func()) func() {
	return func() {
		if !b.closing {
			fn()
		}
	}
}

func (b *browser) ID() entity.BrowserID { return b.id }

func (b *browser) CloseBrowser(force bool) {
	b.engine.post(0, func() {
		if b.closing {
			return
		}
		b.closing = true
		logging.FromContext(b.ctx).Debug().Bool("force", force).Msg("closing browser")
		b.client.LifeSpan(port.BeforeClose{Browser: b.ref()})
		b.engine.unregister(b.id)
		b.client.Release()
	})
}

func (b *browser) WasResized() {
	b.engine.post(0, b.live(b.invalidateAll))
}

func (b *browser) NotifyScreenInfoChanged() {
	b.engine.post(0, b.live(b.invalidateAll))
}

func (b *browser) SetFocus(focus bool) {
	b.engine.post(0, b.live(func() {
		if b.focused == focus {
			return
		}
		b.focused = focus
		b.invalidate(field(b.viewWidth))
	}))
}

func (b *browser) SendKeyEvent(ev port.KeyEvent) {
	b.engine.post(0, b.live(func() {
		if reply := b.client.Keyboard(port.PreKey{Browser: b.ref(), Event: ev}); reply.Handled {
			return
		}
		if b.consumeKey(ev) {
			return
		}
		b.client.Keyboard(port.Key{Browser: b.ref(), Event: ev})
	}))
}

// consumeKey applies ev to the focused field and reports whether it was used.
func (b *browser) consumeKey(ev port.KeyEvent) bool {
	if !b.focused || !b.page.editing {
		return false
	}
	switch ev.Type {
	case port.KeyEventChar:
		if ev.Modifiers&(port.EventFlagControlDown|port.EventFlagCommandDown) != 0 &&
			!ev.Modifiers.Has(port.EventFlagAltGrDown) {
			return false
		}
		if b.page.insertUnit(ev.Character) {
			b.textChanged()
		}
		return true
	case port.KeyEventRawKeyDown, port.KeyEventKeyDown:
		if ev.WindowsKeyCode == vkBack {
			if b.page.backspace() {
				b.textChanged()
			}
			return true
		}
	}
	return false
}

func (b *browser) SendMouseClickEvent(ev port.MouseEvent, button port.MouseButton, mouseUp bool, clickCount int) {
	b.engine.post(0, b.live(func() {
		inside := b.page.contains(b.viewWidth, ev.X, ev.Y)
		switch button {
		case port.MouseButtonLeft:
			if mouseUp {
				return
			}
			if inside != b.page.editing {
				b.page.editing = inside
				b.invalidate(field(b.viewWidth))
				if inside {
					b.focusField()
					b.textChanged()
				}
			}
			if inside && clickCount >= 2 {
				b.page.selectAll()
				b.invalidate(field(b.viewWidth))
			}
		case port.MouseButtonMiddle:
			if mouseUp {
				b.client.LifeSpan(port.BeforePopup{Browser: b.ref(), TargetURL: b.page.url, UserGesture: true})
			}
		case port.MouseButtonRight:
			if mouseUp {
				menu := newContextMenu(inside)
				b.client.ContextMenu(port.BeforeContextMenu{Browser: b.ref(), Model: menu})
				if menu.Count() > 0 {
					logging.FromContext(b.ctx).Debug().Int("items", menu.Count()).Msg("context menu not suppressed")
				}
			}
		}
	}))
}

func (b *browser) SendMouseMoveEvent(ev port.MouseEvent, mouseLeave bool) {
	b.engine.post(0, b.live(func() {
		if !mouseLeave && b.page.contains(b.viewWidth, ev.X, ev.Y) {
			b.setCursor(entity.CursorIBeam)
			return
		}
		b.setCursor(entity.CursorPointer)
	}))
}

func (b *browser) SendMouseWheelEvent(_ port.MouseEvent, _ int, deltaY int) {
	b.engine.post(0, b.live(func() {
		next := b.page.scroll - float64(deltaY)
		if next < 0 {
			next = 0
		}
		if next == b.page.scroll {
			return
		}
		b.page.scroll = next
		b.invalidateAll()
	}))
}

func (b *browser) ImeSetComposition(text string, _ []port.CompositionUnderline, _, _ entity.Range) {
	b.engine.post(0, b.live(func() {
		if !b.page.editing {
			return
		}
		b.page.composition = []rune(text)
		b.textChanged()
	}))
}

func (b *browser) ImeCommitText(text string, _ entity.Range, _ int) {
	b.engine.post(0, b.live(func() {
		if !b.page.editing {
			return
		}
		b.page.composition = nil
		b.page.insert(text)
		b.textChanged()
	}))
}

func (b *browser) ImeFinishComposingText(keepSelection bool) {
	b.engine.post(0, b.live(func() {
		if len(b.page.composition) == 0 {
			return
		}
		b.page.finishComposition(keepSelection)
		b.textChanged()
	}))
}

func (b *browser) SendExternalBeginFrame() {
	b.engine.post(0, b.live(b.paint))
}

func (b *browser) ShowDevTools() {
	b.devTool.Store(true)
}

func (b *browser) CloseDevTools() {
	b.devTool.Store(false)
}

func (b *browser) HasDevTools() bool {
	return b.devTool.Load()
}

func (b *browser) FocusedFrame() (port.EditableFrame, bool) {
	return editableFrame{b: b}, true
}

// Preferences returns the request-context preferences of browser id.
func (e *Engine) Preferences(id entity.BrowserID) (*Preferences, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.browsers[id]
	if !ok {
		return nil, false
	}
	return b.prefs, true
}

// editableFrame runs editing commands against the page's text field.
type editableFrame struct {
	b *browser
}

func (f editableFrame) edit(op func(p *page) bool) {
	b := f.b
	b.engine.post(0, b.live(func() {
		if !b.page.editing {
			return
		}
		if op(b.page) {
			b.textChanged()
		}
	}))
}

func (f editableFrame) SelectAll() {
	f.edit(func(p *page) bool {
		p.selectAll()
		return true
	})
}

func (f editableFrame) Copy() {
	f.edit(func(p *page) bool {
		p.copySelection()
		return false
	})
}

func (f editableFrame) Cut()   { f.edit((*page).cut) }
func (f editableFrame) Paste() { f.edit((*page).paste) }
func (f editableFrame) Undo()  { f.edit((*page).undoEdit) }
func (f editableFrame) Redo()  { f.edit((*page).redoEdit) }
