package engine

import "sync"

// Handle is an opaque integer reference to a Go object that can be stored on
// the engine side of the boundary.
type Handle uintptr

type handleEntry struct {
	obj       any
	refs      int32
	onDestroy func()
}

// HandleTable keeps objects reachable while the engine holds references to
// them. An object is dropped when its count reaches zero, not when the Go
// side stops using it.
type HandleTable struct {
	mu      sync.Mutex
	entries map[Handle]*handleEntry
	next    Handle
}

// NewHandleTable creates an empty table.
func NewHandleTable() *HandleTable {
	return &HandleTable{
		entries: make(map[Handle]*handleEntry),
		next:    1,
	}
}

// Register stores obj with a count of one, owned by the caller. onDestroy
// runs once, outside the table lock, when the count drops to zero.
func (t *HandleTable) Register(obj any, onDestroy func()) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := t.next
	t.next++
	t.entries[h] = &handleEntry{obj: obj, refs: 1, onDestroy: onDestroy}
	return h
}

// Lookup returns the object behind h.
func (t *HandleTable) Lookup(h Handle) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[h]
	if !ok {
		return nil, false
	}
	return e.obj, true
}

// Retain adds one reference. It returns false for unknown handles.
func (t *HandleTable) Retain(h Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[h]
	if !ok {
		return false
	}
	e.refs++
	return true
}

// Release drops one reference and reports whether the object was destroyed.
func (t *HandleTable) Release(h Handle) bool {
	t.mu.Lock()
	e, ok := t.entries[h]
	if !ok {
		t.mu.Unlock()
		return false
	}
	e.refs--
	if e.refs > 0 {
		t.mu.Unlock()
		return false
	}
	delete(t.entries, h)
	t.mu.Unlock()

	if e.onDestroy != nil {
		e.onDestroy()
	}
	return true
}

// Refs returns the current count, zero for unknown handles.
func (t *HandleTable) Refs(h Handle) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[h]; ok {
		return e.refs
	}
	return 0
}

// Len returns the number of live handles.
func (t *HandleTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
