// Package entity defines the domain types shared by the engine bridge, the
// webview controller and the widget layer.
package entity

import (
	"strconv"
	"sync/atomic"
)

// BrowserID identifies one engine browser instance. It is assigned by the
// engine when the browser finishes construction and is never reused while the
// process lives.
type BrowserID int32

// String returns the decimal form of the id.
func (id BrowserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// LaunchID correlates an asynchronous create-browser request with the
// BrowserID the engine reports later.
type LaunchID uint64

// String returns the decimal form of the id.
func (id LaunchID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

var nextLaunchID atomic.Uint64

// NewLaunchID returns a fresh process-local launch id. Ids increase
// monotonically and start at 1 so the zero value means "no launch".
func NewLaunchID() LaunchID {
	return LaunchID(nextLaunchID.Add(1))
}

// WebviewState is the lifecycle state of one webview.
type WebviewState int

const (
	// StateUninitialized is the state before any create request.
	StateUninitialized WebviewState = iota
	// StateLaunching means the create request was issued and the engine has
	// not reported the browser yet.
	StateLaunching
	// StateActive means the browser exists and streams are being drained.
	StateActive
	// StateClosing means a close was requested and before-close is pending.
	StateClosing
	// StateClosed is terminal.
	StateClosed
)

// String returns a human-readable representation of the state.
func (s WebviewState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLaunching:
		return "launching"
	case StateActive:
		return "active"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
