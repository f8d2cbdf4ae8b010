package entity

import "fmt"

// LifeSpanEvent is emitted when a browser finishes construction or is about
// to be destroyed. Implementations: LifeSpanCreated, LifeSpanClosed.
type LifeSpanEvent interface {
	lifeSpanEvent()
	Browser() BrowserID
}

// LifeSpanCreated reports that the engine constructed the browser for Launch.
type LifeSpanCreated struct {
	Launch    LaunchID
	BrowserID BrowserID
}

// LifeSpanClosed reports that the engine is about to destroy the browser.
type LifeSpanClosed struct {
	BrowserID BrowserID
}

func (LifeSpanCreated) lifeSpanEvent() {}
func (LifeSpanClosed) lifeSpanEvent()  {}

// Browser returns the browser the event refers to.
func (e LifeSpanCreated) Browser() BrowserID { return e.BrowserID }

// Browser returns the browser the event refers to.
func (e LifeSpanClosed) Browser() BrowserID { return e.BrowserID }

// LoadEvent is a navigation/load notification. Implementations:
// LoadingStateChanged, LoadStarted, LoadEnded, LoadFailed.
type LoadEvent interface {
	loadEvent()
	// Browser returns the browser id when the engine supplied one.
	Browser() (BrowserID, bool)
}

// LoadSource carries the optional ids common to all load events.
type LoadSource struct {
	BrowserID   BrowserID
	HasBrowser  bool
	FrameID     string
	IsMainFrame bool
}

// Browser returns the browser id when present.
func (s LoadSource) Browser() (BrowserID, bool) {
	return s.BrowserID, s.HasBrowser
}

// LoadingStateChanged mirrors the engine's loading-state callback.
type LoadingStateChanged struct {
	LoadSource
	IsLoading    bool
	CanGoBack    bool
	CanGoForward bool
}

// LoadStarted is emitted when a frame starts loading.
type LoadStarted struct {
	LoadSource
	TransitionType uint32
}

// LoadEnded is emitted when a frame finished loading.
type LoadEnded struct {
	LoadSource
	HTTPStatusCode int
}

// LoadFailed is emitted when a navigation fails.
type LoadFailed struct {
	LoadSource
	ErrorCode int32
	ErrorText string
	FailedURL string
}

func (LoadingStateChanged) loadEvent() {}
func (LoadStarted) loadEvent()         {}
func (LoadEnded) loadEvent()           {}
func (LoadFailed) loadEvent()          {}

// Error implements error so a failed load can be logged with Err().
func (e LoadFailed) Error() string {
	return fmt.Sprintf("load failed (%d %s): %s", e.ErrorCode, e.ErrorText, e.FailedURL)
}

// IPCMessage is a custom message sent by the renderer process.
// Implementations: CaretOffsetChanged, FocusedNodeChanged.
type IPCMessage interface {
	ipcMessage()
	Browser() BrowserID
}

// CaretOffsetChanged carries the horizontal caret offset inside the focused
// editable node.
type CaretOffsetChanged struct {
	BrowserID BrowserID
	Offset    float32
}

// FocusedNodeChanged carries the geometry of the focused editable node.
type FocusedNodeChanged struct {
	BrowserID BrowserID
	Rect      Rectangle
}

func (CaretOffsetChanged) ipcMessage() {}
func (FocusedNodeChanged) ipcMessage() {}

// Browser returns the browser the message refers to.
func (m CaretOffsetChanged) Browser() BrowserID { return m.BrowserID }

// Browser returns the browser the message refers to.
func (m FocusedNodeChanged) Browser() BrowserID { return m.BrowserID }

// Frame is a frame-ready notification. Texture is nil for bitmap rendering.
type Frame struct {
	BrowserID BrowserID
	Texture   Texture
}
