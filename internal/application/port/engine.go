// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the embedded browser engine and the GUI runtime so the
// webview controller and the widget adapter stay independent of a concrete
// engine build.
package port

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/osrview/internal/domain/entity"
)

// ErrEngineShutdown is returned for work posted after Shutdown.
var ErrEngineShutdown = errors.New("engine is shut down")

// Engine is the embedded browser runtime. All methods are non-blocking from
// the caller's point of view.
type Engine interface {
	// CreateBrowser issues an asynchronous create request. It returns false
	// when the engine rejected the request synchronously; in that case no
	// callback will ever reach req.Client.
	CreateBrowser(ctx context.Context, req CreateBrowserRequest) bool

	// Host returns the host object of a live browser.
	Host(id entity.BrowserID) (BrowserHost, bool)

	// DoMessageLoopWork processes queued engine work and returns. In
	// windowless mode the engine never runs on its own and must be pumped.
	DoMessageLoopWork()

	// PostTask queues fn to run on the engine thread once delay elapsed.
	// Handler state may only be touched from there.
	PostTask(delay time.Duration, fn func()) error

	// Shutdown releases engine resources. Browsers must be closed first.
	Shutdown()
}

// BrowserHost is the per-browser command surface used to forward input and
// lifecycle requests.
type BrowserHost interface {
	ID() entity.BrowserID

	// CloseBrowser starts the asynchronous close sequence. Completion is
	// signaled through the before-close lifespan callback.
	CloseBrowser(force bool)

	// WasResized tells the engine to query the view rect again and repaint.
	WasResized()
	// NotifyScreenInfoChanged tells the engine to query the screen info again.
	NotifyScreenInfoChanged()
	SetFocus(focus bool)

	SendKeyEvent(ev KeyEvent)
	SendMouseClickEvent(ev MouseEvent, button MouseButton, mouseUp bool, clickCount int)
	SendMouseMoveEvent(ev MouseEvent, mouseLeave bool)
	SendMouseWheelEvent(ev MouseEvent, deltaX, deltaY int)

	ImeSetComposition(text string, underlines []CompositionUnderline, replacement, selection entity.Range)
	ImeCommitText(text string, replacement entity.Range, relativeCursorPos int)
	ImeFinishComposingText(keepSelection bool)

	// SendExternalBeginFrame asks for one frame when external begin-frame
	// pacing is enabled.
	SendExternalBeginFrame()

	ShowDevTools()
	CloseDevTools()
	HasDevTools() bool

	// FocusedFrame returns the frame that owns keyboard focus.
	FocusedFrame() (EditableFrame, bool)
}

// EditableFrame exposes the engine's default editing commands.
type EditableFrame interface {
	SelectAll()
	Copy()
	Cut()
	Paste()
	Undo()
	Redo()
}

// WindowHandleKind names the platform surface a windowed browser is parented to.
type WindowHandleKind int

const (
	// WindowHandleNone means no parent; used for windowless rendering.
	WindowHandleNone WindowHandleKind = iota
	WindowHandleWin32
	WindowHandleAppKit
	WindowHandleXlib
	WindowHandleWayland
	WindowHandleWeb
)

// String returns a human-readable representation of the handle kind.
func (k WindowHandleKind) String() string {
	switch k {
	case WindowHandleNone:
		return "none"
	case WindowHandleWin32:
		return "win32"
	case WindowHandleAppKit:
		return "appkit"
	case WindowHandleXlib:
		return "xlib"
	case WindowHandleWayland:
		return "wayland"
	case WindowHandleWeb:
		return "web"
	default:
		return "unknown"
	}
}

// WindowHandle is a raw native window handle supplied by the GUI runtime.
type WindowHandle struct {
	Kind  WindowHandleKind
	Value uintptr
}

// WindowInfo configures the native surface of a new browser.
type WindowInfo struct {
	Bounds entity.Rect
	// Windowless enables off-screen rendering through the render callbacks.
	Windowless bool
	// SharedTexture delivers frames as GPU shared textures instead of bitmaps.
	SharedTexture bool
	// ExternalBeginFrame disables the engine's frame timer; the host drives
	// frames with SendExternalBeginFrame.
	ExternalBeginFrame bool
	Parent             WindowHandle
}

// State is a tri-state engine setting.
type State int

const (
	StateDefault State = iota
	StateEnabled
	StateDisabled
)

// BrowserSettings are the per-browser engine settings.
type BrowserSettings struct {
	WindowlessFrameRate       int
	DefaultEncoding           string
	JavaScript                State
	JavaScriptAccessClipboard State
	JavaScriptDOMPaste        State
}

// CreateBrowserRequest bundles everything the engine needs to create a browser.
type CreateBrowserRequest struct {
	Window         WindowInfo
	Client         Client
	URL            string
	Settings       BrowserSettings
	RequestContext RequestContextHandler
}

// TextureImporter turns an engine shared texture handle into a GPU texture the
// presentation layer can sample.
type TextureImporter interface {
	Import(info entity.SharedTextureInfo) (entity.Texture, error)
}
