package controller

import (
	"sort"

	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/infrastructure/engine"
)

// imeVerticalOffset places the IME popup just below the caret baseline.
const imeVerticalOffset = 4

// Entry is the GUI-thread record of one browser.
type Entry struct {
	Launch    entity.LaunchID
	BrowserID entity.BrowserID
	State     *engine.ClientState

	// Frame is the drawable cached on the last frame-ready event.
	Frame   entity.Bitmap
	Texture entity.Texture

	CaretOffset    float32
	HasCaret       bool
	FocusedNode    entity.Rectangle
	HasFocusedNode bool
}

// IMEPosition returns where the input method popup should appear for a
// widget laid out at bounds. It needs both a focused editable node and a
// caret offset.
func (e *Entry) IMEPosition(bounds entity.Rectangle) (entity.Point, bool) {
	if e == nil || !e.HasFocusedNode || !e.HasCaret {
		return entity.Point{}, false
	}
	return e.FocusedNode.Position().
		Add(bounds.Position()).
		Add(entity.Point{X: e.CaretOffset, Y: imeVerticalOffset}), true
}

// Registry maps pending launches and live browsers to their state. It is
// owned by the controller and only touched from the GUI thread, so it needs
// no lock.
type Registry struct {
	pending map[entity.LaunchID]*Entry
	active  map[entity.BrowserID]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pending: make(map[entity.LaunchID]*Entry),
		active:  make(map[entity.BrowserID]*Entry),
	}
}

// InsertPending registers state under a fresh launch id.
func (r *Registry) InsertPending(launch entity.LaunchID, state *engine.ClientState) {
	r.pending[launch] = &Entry{Launch: launch, State: state}
}

// Promote moves a pending entry under the browser id the engine assigned.
// It reports false, and does nothing, when no pending entry exists.
func (r *Registry) Promote(launch entity.LaunchID, id entity.BrowserID) bool {
	e, ok := r.pending[launch]
	if !ok {
		return false
	}
	delete(r.pending, launch)
	e.BrowserID = id
	r.active[id] = e
	return true
}

// Remove drops a live browser and releases its frame resources.
func (r *Registry) Remove(id entity.BrowserID) bool {
	e, ok := r.active[id]
	if !ok {
		return false
	}
	delete(r.active, id)
	e.release()
	return true
}

// RemovePending drops a launch that never produced a browser.
func (r *Registry) RemovePending(launch entity.LaunchID) bool {
	e, ok := r.pending[launch]
	if !ok {
		return false
	}
	delete(r.pending, launch)
	e.release()
	return true
}

// Get returns the entry of a live browser.
func (r *Registry) Get(id entity.BrowserID) (*Entry, bool) {
	e, ok := r.active[id]
	return e, ok
}

// Pending returns the entry of a launch still waiting for its browser.
func (r *Registry) Pending(launch entity.LaunchID) (*Entry, bool) {
	e, ok := r.pending[launch]
	return e, ok
}

// Len returns the number of pending and live entries.
func (r *Registry) Len() int {
	return len(r.pending) + len(r.active)
}

// Browsers returns the live browser ids in ascending order.
func (r *Registry) Browsers() []entity.BrowserID {
	ids := make([]entity.BrowserID, 0, len(r.active))
	for id := range r.active {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (e *Entry) release() {
	e.Frame = entity.Bitmap{}
	e.Texture = nil
	e.State.Release()
}
