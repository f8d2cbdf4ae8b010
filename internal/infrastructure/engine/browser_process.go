package engine

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/logging"
)

// BrowserProcessHandler turns process-wide engine notifications into a ready
// signal and a stream of pump requests.
type BrowserProcessHandler struct {
	ctx       context.Context
	readyOnce sync.Once
	ready     chan struct{}
	pumps     *Mailbox[time.Duration]
}

var _ port.BrowserProcessHandler = (*BrowserProcessHandler)(nil)

func NewBrowserProcessHandler(ctx context.Context) *BrowserProcessHandler {
	return &BrowserProcessHandler{
		ctx:   ctx,
		ready: make(chan struct{}),
		pumps: NewMailbox[time.Duration](),
	}
}

// Ready is closed once the engine context is initialized.
func (h *BrowserProcessHandler) Ready() <-chan struct{} {
	return h.ready
}

// PumpRequests carries the delays the engine asked to be pumped after.
func (h *BrowserProcessHandler) PumpRequests() *Mailbox[time.Duration] {
	return h.pumps
}

func (h *BrowserProcessHandler) OnContextInitialized() {
	h.readyOnce.Do(func() {
		logging.FromContext(h.ctx).Debug().Msg("engine context initialized")
		close(h.ready)
	})
}

func (h *BrowserProcessHandler) OnScheduleMessagePumpWork(delayMS int64) {
	if delayMS < 0 {
		delayMS = 0
	}
	send(h.ctx, "pump", h.pumps, time.Duration(delayMS)*time.Millisecond)
}

// Close stops accepting pump requests.
func (h *BrowserProcessHandler) Close() {
	h.pumps.Close()
}
