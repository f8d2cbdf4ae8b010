package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescerMergesBurstIntoSingleTask(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer[string](func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("pump", func() { value = v })
	}

	require.Len(t, queue, 1)
	assert.Equal(t, 1, c.Pending())
	queue[0]()

	assert.Equal(t, 5, value, "latest callback runs")
	assert.Zero(t, c.Pending())

	c.Post("pump", func() { value = 6 })
	require.Len(t, queue, 2, "a new burst queues a new task")
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer[int](func(fn func()) { queue = append(queue, fn) })

	var ran []int
	c.Post(1, func() { ran = append(ran, 1) })
	c.Post(2, func() { ran = append(ran, 2) })
	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, []int{1, 2}, ran)
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer[string](func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("frame", func() { ran = true })
	c.Destroy()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran, "queued work is dropped after destroy")

	c.Post("frame", func() { ran = true })
	assert.Len(t, queue, 1, "no new task after destroy")
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer[string](nil) })
}
