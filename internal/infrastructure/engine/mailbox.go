package engine

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when sending to or receiving from a closed mailbox.
var ErrClosed = errors.New("mailbox closed")

// Mailbox is an unbounded FIFO queue. Send never blocks, so it is safe to
// call from engine callbacks; Recv blocks the GUI side until a value arrives.
type Mailbox[T any] struct {
	mu         sync.Mutex
	items      []T
	sendClosed bool
	closed     bool
	notify     chan struct{}
	done       chan struct{}
}

// NewMailbox creates an empty mailbox.
func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Send enqueues v. It fails with ErrClosed once either end is closed.
func (m *Mailbox[T]) Send(v T) error {
	m.mu.Lock()
	if m.closed || m.sendClosed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.items = append(m.items, v)
	m.mu.Unlock()

	select {
	case m.notify <- struct{}{}:
	default:
	}
	return nil
}

// Recv returns the oldest value. It blocks until a value is available, the
// context is done or the mailbox is closed. After CloseSend, queued values
// are still delivered before ErrClosed.
func (m *Mailbox[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	for {
		if v, ok, err := m.pop(); ok || err != nil {
			return v, err
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-m.done:
		case <-m.notify:
		}
	}
}

// TryRecv returns the oldest value without blocking.
func (m *Mailbox[T]) TryRecv() (T, bool) {
	v, ok, _ := m.pop()
	return v, ok
}

func (m *Mailbox[T]) pop() (T, bool, error) {
	var zero T
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return zero, false, ErrClosed
	}
	if len(m.items) > 0 {
		v := m.items[0]
		m.items[0] = zero
		m.items = m.items[1:]
		if len(m.items) == 0 {
			m.items = nil
		}
		return v, true, nil
	}
	if m.sendClosed {
		return zero, false, ErrClosed
	}
	return zero, false, nil
}

// Len returns the number of queued values.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// CloseSend closes the sending side. Queued values can still be received.
func (m *Mailbox[T]) CloseSend() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendClosed || m.closed {
		m.sendClosed = true
		return
	}
	m.sendClosed = true
	close(m.done)
}

// Close drops the receiving side and discards queued values. Later sends
// fail with ErrClosed.
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if !m.sendClosed {
		close(m.done)
	}
	m.closed = true
	m.items = nil
}
