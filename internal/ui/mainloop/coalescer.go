package mainloop

import "sync"

// Coalescer merges bursts of same-key loop tasks: while a task is queued,
// posting the same key again only replaces the function that will run.
type Coalescer[K comparable] struct {
	mu        sync.Mutex
	callbacks map[K]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer queuing through post.
func NewCoalescer[K comparable](post func(func())) *Coalescer[K] {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer[K]{
		callbacks: make(map[K]func()),
		post:      post,
	}
}

// Post schedules fn under key. The latest function posted before the task
// runs wins.
func (c *Coalescer[K]) Post(key K, fn func()) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, queued := c.callbacks[key]
	c.callbacks[key] = fn
	c.mu.Unlock()
	if queued {
		return
	}

	c.post(func() {
		c.mu.Lock()
		fn, ok := c.callbacks[key]
		delete(c.callbacks, key)
		destroyed := c.destroyed
		c.mu.Unlock()

		if ok && !destroyed {
			fn()
		}
	})
}

// Pending returns the number of keys waiting to run.
func (c *Coalescer[K]) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.callbacks)
}

// Destroy drops queued work and ignores later posts.
func (c *Coalescer[K]) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.callbacks = make(map[K]func())
	c.mu.Unlock()
}
