package port

import "github.com/bnema/osrview/internal/domain/entity"

// RefCounted participates in the engine's reference counting. The engine
// retains every handler object it is handed and releases it when the browser
// is gone; the object lives as long as the engine's count says so.
type RefCounted interface {
	AddRef()
	// Release drops one reference and reports whether it was the last one.
	Release() bool
	HasOneRef() bool
}

// Client is the handler set the engine invokes from its own thread. Every
// category is dispatched through a single method taking a closed callback
// variant. Implementations must not block.
type Client interface {
	RefCounted

	LifeSpan(cb LifeSpanCallback) bool
	Load(cb LoadCallback)
	Render(cb RenderCallback) RenderReply
	Display(cb DisplayCallback) bool
	ContextMenu(cb ContextMenuCallback)
	Keyboard(cb KeyboardCallback) KeyboardReply
	ProcessMessage(msg ProcessMessage) bool
}

// BrowserRef is an optional browser id, as some callbacks may arrive without
// a browser.
type BrowserRef struct {
	ID    entity.BrowserID
	Valid bool
}

// Browser wraps id in a valid BrowserRef.
func Browser(id entity.BrowserID) BrowserRef {
	return BrowserRef{ID: id, Valid: true}
}

// FrameRef is an optional frame reference.
type FrameRef struct {
	ID     string
	IsMain bool
	Valid  bool
}

// LifeSpanCallback is one of AfterCreated, BeforeClose, BeforePopup.
type LifeSpanCallback interface{ lifeSpanCallback() }

// AfterCreated fires once the browser exists.
type AfterCreated struct{ Browser BrowserRef }

// BeforeClose fires right before the browser is destroyed.
type BeforeClose struct{ Browser BrowserRef }

// BeforePopup fires when the page tries to open a popup. Returning true
// cancels the popup.
type BeforePopup struct {
	Browser         BrowserRef
	TargetURL       string
	TargetFrameName string
	UserGesture     bool
}

func (AfterCreated) lifeSpanCallback() {}
func (BeforeClose) lifeSpanCallback()  {}
func (BeforePopup) lifeSpanCallback()  {}

// LoadCallback is one of LoadingStateChange, LoadStart, LoadEnd, LoadError.
type LoadCallback interface{ loadCallback() }

type LoadingStateChange struct {
	Browser      BrowserRef
	IsLoading    bool
	CanGoBack    bool
	CanGoForward bool
}

type LoadStart struct {
	Browser        BrowserRef
	Frame          FrameRef
	TransitionType uint32
}

type LoadEnd struct {
	Browser        BrowserRef
	Frame          FrameRef
	HTTPStatusCode int
}

type LoadError struct {
	Browser   BrowserRef
	Frame     FrameRef
	ErrorCode int32
	ErrorText string
	FailedURL string
}

func (LoadingStateChange) loadCallback() {}
func (LoadStart) loadCallback()          {}
func (LoadEnd) loadCallback()            {}
func (LoadError) loadCallback()          {}

// RenderCallback is one of GetViewRect, GetScreenInfo, GetScreenPoint, Paint,
// AcceleratedPaint.
type RenderCallback interface{ renderCallback() }

// GetViewRect asks for the view rectangle in logical pixels.
type GetViewRect struct{ Browser BrowserRef }

// GetScreenInfo asks for the screen description, mainly the scale factor.
type GetScreenInfo struct{ Browser BrowserRef }

// GetScreenPoint asks to convert a view point to screen coordinates.
type GetScreenPoint struct {
	Browser      BrowserRef
	ViewX, ViewY int32
}

// Paint delivers a BGRA bitmap. Buffer is only valid during the call.
type Paint struct {
	Browser       BrowserRef
	Element       entity.PaintElementType
	DirtyRects    []entity.Rect
	Buffer        []byte
	Width, Height int32
}

// AcceleratedPaint delivers a shared GPU texture.
type AcceleratedPaint struct {
	Browser    BrowserRef
	Element    entity.PaintElementType
	DirtyRects []entity.Rect
	Info       entity.SharedTextureInfo
}

func (GetViewRect) renderCallback()      {}
func (GetScreenInfo) renderCallback()    {}
func (GetScreenPoint) renderCallback()   {}
func (Paint) renderCallback()            {}
func (AcceleratedPaint) renderCallback() {}

// ScreenInfo describes the screen hosting the view.
type ScreenInfo struct {
	DeviceScaleFactor float32
	Rect              entity.Rect
	AvailableRect     entity.Rect
}

// RenderReply is the answer to a render callback. Only the field matching the
// callback kind is meaningful, and only when Handled is true.
type RenderReply struct {
	Handled          bool
	ViewRect         entity.Rect
	Screen           ScreenInfo
	ScreenX, ScreenY int32
}

// DisplayCallback is currently only CursorChange.
type DisplayCallback interface{ displayCallback() }

// CursorChange reports a new cursor shape. Returning true stops the engine
// from applying a platform cursor itself.
type CursorChange struct {
	Browser BrowserRef
	Cursor  entity.CursorType
}

func (CursorChange) displayCallback() {}

// MenuModel is the engine's context menu model.
type MenuModel interface {
	Clear() bool
	Count() int
}

// ContextMenuCallback is currently only BeforeContextMenu.
type ContextMenuCallback interface{ contextMenuCallback() }

// BeforeContextMenu fires before a context menu is shown.
type BeforeContextMenu struct {
	Browser BrowserRef
	Model   MenuModel
}

func (BeforeContextMenu) contextMenuCallback() {}

// KeyboardCallback is one of PreKey, Key.
type KeyboardCallback interface{ keyboardCallback() }

// PreKey fires before the event reaches the renderer.
type PreKey struct {
	Browser BrowserRef
	Event   KeyEvent
}

// Key fires after the renderer did not consume the event.
type Key struct {
	Browser BrowserRef
	Event   KeyEvent
}

func (PreKey) keyboardCallback() {}
func (Key) keyboardCallback()    {}

// KeyboardReply is the answer to a keyboard callback.
type KeyboardReply struct {
	Handled            bool
	IsKeyboardShortcut bool
}

// ProcessID names the process a message originates from.
type ProcessID int

const (
	ProcessBrowser ProcessID = iota
	ProcessRenderer
)

// ProcessMessage is a message sent by another engine process.
type ProcessMessage struct {
	Browser BrowserRef
	Frame   FrameRef
	Source  ProcessID
	Name    string
	Args    []string
}

// BrowserProcessHandler receives process-wide engine notifications.
type BrowserProcessHandler interface {
	OnContextInitialized()
	// OnScheduleMessagePumpWork asks the host to call DoMessageLoopWork after
	// delayMS milliseconds (0 means as soon as possible).
	OnScheduleMessagePumpWork(delayMS int64)
}

// PreferenceSetter writes request-context preferences.
type PreferenceSetter interface {
	SetPreference(name string, value any) error
}

// RequestContextHandler is invoked once a request context is initialized.
type RequestContextHandler interface {
	OnRequestContextInitialized(prefs PreferenceSetter)
}
