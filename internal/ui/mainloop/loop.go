// Package mainloop runs a single-goroutine message loop for hosts without a
// terminal or window: commands run concurrently, their messages and posted
// tasks are handled one at a time on the loop goroutine.
package mainloop

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/osrview/internal/logging"
)

const queueSize = 256

// Model is the update side of a host program.
type Model interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
}

// ErrorMsg stops the loop with Err.
type ErrorMsg struct {
	Err error
}

// CoalescedMsg delivers Msg to the model merged with every other CoalescedMsg
// of the same Key still waiting in the queue; only the latest one is handled.
type CoalescedMsg struct {
	Key string
	Msg tea.Msg
}

type task func()

// Loop owns the message queue. Send, Post and PostCoalesced are safe from any
// goroutine; the model only ever runs on the goroutine calling Run.
type Loop struct {
	msgs      chan tea.Msg
	coalescer *Coalescer[string]
}

// New creates an idle loop.
func New() *Loop {
	l := &Loop{msgs: make(chan tea.Msg, queueSize)}
	l.coalescer = NewCoalescer[string](l.Post)
	return l
}

// Send queues a message for the model.
func (l *Loop) Send(msg tea.Msg) {
	if msg != nil {
		l.msgs <- msg
	}
}

// Post runs fn on the loop goroutine.
func (l *Loop) Post(fn func()) {
	l.msgs <- task(fn)
}

// PostCoalesced runs fn on the loop goroutine, merged with other posts of the
// same key still waiting to run.
func (l *Loop) PostCoalesced(key string, fn func()) {
	l.coalescer.Post(key, fn)
}

// Run drives model until ctx is done, a tea.QuitMsg arrives or the model
// reports an ErrorMsg.
func (l *Loop) Run(ctx context.Context, model Model) error {
	log := logging.FromContext(ctx)
	defer l.coalescer.Destroy()

	l.exec(ctx, model.Init())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-l.msgs:
			switch msg := msg.(type) {
			case tea.QuitMsg:
				log.Debug().Msg("main loop quit")
				return nil
			case ErrorMsg:
				return msg.Err
			case tea.BatchMsg:
				for _, cmd := range msg {
					l.exec(ctx, cmd)
				}
			case CoalescedMsg:
				l.PostCoalesced(msg.Key, func() {
					l.exec(ctx, model.Update(msg.Msg))
				})
			case task:
				msg()
			default:
				l.exec(ctx, model.Update(msg))
			}
		}
	}
}

// exec runs cmd on its own goroutine and queues the message it returns.
func (l *Loop) exec(ctx context.Context, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if msg == nil {
			return
		}
		select {
		case l.msgs <- msg:
		case <-ctx.Done():
		}
	}()
}
