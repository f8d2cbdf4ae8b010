package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/infrastructure/engine"
)

func newState() *engine.ClientState {
	return &engine.ClientState{
		Render:  engine.NewRenderState(1, entity.Rect{Width: 10, Height: 10}),
		Display: engine.NewDisplayState(),
	}
}

func TestRegistryPromote(t *testing.T) {
	r := NewRegistry()
	launch := entity.NewLaunchID()
	state := newState()

	r.InsertPending(launch, state)
	_, ok := r.Pending(launch)
	require.True(t, ok)
	assert.Equal(t, 1, r.Len())

	require.True(t, r.Promote(launch, 7))
	e, ok := r.Get(7)
	require.True(t, ok)
	assert.Same(t, state, e.State)
	assert.Equal(t, entity.BrowserID(7), e.BrowserID)

	_, ok = r.Pending(launch)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryPromoteTwiceIsNoop(t *testing.T) {
	r := NewRegistry()
	launch := entity.NewLaunchID()
	r.InsertPending(launch, newState())

	assert.True(t, r.Promote(launch, 3))
	assert.NotPanics(t, func() {
		assert.False(t, r.Promote(launch, 3))
		assert.False(t, r.Promote(launch, 4))
	})
	_, ok := r.Get(4)
	assert.False(t, ok)
	assert.Equal(t, []entity.BrowserID{3}, r.Browsers())
}

func TestRegistryGetAfterRemove(t *testing.T) {
	r := NewRegistry()
	launch := entity.NewLaunchID()
	r.InsertPending(launch, newState())
	r.Promote(launch, 7)

	assert.True(t, r.Remove(7))
	_, ok := r.Get(7)
	assert.False(t, ok)
	assert.False(t, r.Remove(7))
	assert.Zero(t, r.Len())
}

func TestRegistryRemovePending(t *testing.T) {
	r := NewRegistry()
	launch := entity.NewLaunchID()
	r.InsertPending(launch, newState())

	assert.True(t, r.RemovePending(launch))
	assert.False(t, r.RemovePending(launch))
	assert.False(t, r.Promote(launch, 1))
}

func TestEntryIMEPosition(t *testing.T) {
	var nilEntry *Entry
	_, ok := nilEntry.IMEPosition(entity.Rectangle{})
	assert.False(t, ok)

	e := &Entry{}
	_, ok = e.IMEPosition(entity.Rectangle{})
	assert.False(t, ok)

	e.FocusedNode = entity.Rectangle{X: 10, Y: 20, Width: 200, Height: 30}
	e.HasFocusedNode = true
	_, ok = e.IMEPosition(entity.Rectangle{})
	assert.False(t, ok, "caret offset still unknown")

	e.CaretOffset = 42
	e.HasCaret = true
	pos, ok := e.IMEPosition(entity.Rectangle{X: 100, Y: 200, Width: 800, Height: 600})
	require.True(t, ok)
	assert.Equal(t, entity.Point{X: 152, Y: 224}, pos)
}
