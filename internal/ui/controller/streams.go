package controller

import (
	"context"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/infrastructure/engine"
	"github.com/bnema/osrview/internal/infrastructure/metrics"
)

// listen waits for the next value of box and wraps it together with the
// command that waits for the one after. Only one receive is in flight per
// mailbox, so messages reach Update in send order. A closed mailbox or a
// cancelled context ends the stream.
func listen[T any](ctx context.Context, box *engine.Mailbox[T], wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, err := box.Recv(ctx)
		if err != nil {
			return nil
		}
		return streamMsg{msg: wrap(v), next: listen(ctx, box, wrap)}
	}
}

// subscribe starts the four streams of one browser.
func subscribe(ctx context.Context, sub *engine.ClientEventSubscriber) tea.Cmd {
	return tea.Batch(
		listen(ctx, sub.LifeSpan, lifeSpanMsg),
		listen(ctx, sub.Load, func(ev entity.LoadEvent) tea.Msg {
			return LoadMsg{Event: ev}
		}),
		listen(ctx, sub.Frames, func(f entity.Frame) tea.Msg {
			return UpdateViewMsg{Frame: f}
		}),
		listen(ctx, sub.IPC, ipcMsg),
	)
}

func lifeSpanMsg(ev entity.LifeSpanEvent) tea.Msg {
	switch ev := ev.(type) {
	case entity.LifeSpanCreated:
		return CreatedMsg{Launch: ev.Launch, BrowserID: ev.BrowserID}
	case entity.LifeSpanClosed:
		return ClosedMsg{BrowserID: ev.BrowserID}
	}
	return nil
}

func ipcMsg(m entity.IPCMessage) tea.Msg {
	switch m := m.(type) {
	case entity.CaretOffsetChanged:
		return UpdateCaretOffsetMsg{BrowserID: m.BrowserID, Offset: m.Offset}
	case entity.FocusedNodeChanged:
		return EditableNodeFocusedMsg{BrowserID: m.BrowserID, Rect: m.Rect}
	}
	return nil
}

func (c *WebviewController) pumpTick() tea.Cmd {
	interval := c.cfg.PumpInterval
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return PumpLoopMsg{Delay: interval, periodic: true}
	})
}

func (c *WebviewController) pump(msg PumpLoopMsg) Action {
	if msg.scheduled {
		c.pumpDeadline = time.Time{}
	}
	c.engine.DoMessageLoopWork()
	metrics.RecordPump()

	switch {
	case msg.periodic:
		return Action{Kind: ActionRun, Cmd: c.pumpTick()}
	case msg.scheduled && len(c.pumpLater) > 0:
		next := c.pumpLater[0]
		c.pumpLater = c.pumpLater[1:]
		return c.schedulePump(next.Sub(c.now()))
	}
	return Action{}
}

// schedulePump turns an engine pump request into a delayed PumpLoopMsg. Only
// the earliest request is armed; later ones wait in pumpLater and are armed
// one at a time as scheduled pumps fire.
func (c *WebviewController) schedulePump(delay time.Duration) Action {
	due := c.now().Add(delay)
	if !c.pumpDeadline.IsZero() && !due.Before(c.pumpDeadline) {
		if due.After(c.pumpDeadline) {
			i, found := slices.BinarySearchFunc(c.pumpLater, due, time.Time.Compare)
			if !found {
				c.pumpLater = slices.Insert(c.pumpLater, i, due)
			}
		}
		return Action{}
	}
	c.pumpDeadline = due
	if delay <= 0 {
		return Action{Kind: ActionRun, Cmd: func() tea.Msg {
			return PumpLoopMsg{scheduled: true}
		}}
	}
	return Action{Kind: ActionRun, Cmd: tea.Tick(delay, func(time.Time) tea.Msg {
		return PumpLoopMsg{Delay: delay, scheduled: true}
	})}
}
