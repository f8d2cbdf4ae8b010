package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTableFollowsForeignCount(t *testing.T) {
	table := NewHandleTable()
	destroyed := 0
	obj := &struct{ name string }{"client"}

	h := table.Register(obj, func() { destroyed++ })
	assert.Equal(t, int32(1), table.Refs(h))

	require.True(t, table.Retain(h))
	require.True(t, table.Retain(h))
	assert.Equal(t, int32(3), table.Refs(h))

	assert.False(t, table.Release(h))
	assert.False(t, table.Release(h))
	got, ok := table.Lookup(h)
	require.True(t, ok)
	assert.Same(t, obj, got)

	assert.True(t, table.Release(h))
	assert.Equal(t, 1, destroyed)
	assert.Zero(t, table.Len())

	_, ok = table.Lookup(h)
	assert.False(t, ok)
	assert.False(t, table.Release(h))
	assert.False(t, table.Retain(h))
	assert.Equal(t, 1, destroyed)
}

func TestHandleTableHandlesAreUnique(t *testing.T) {
	table := NewHandleTable()
	a := table.Register("a", nil)
	b := table.Register("b", nil)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, table.Len())
	assert.True(t, table.Release(a))
	assert.Equal(t, 1, table.Len())
}
