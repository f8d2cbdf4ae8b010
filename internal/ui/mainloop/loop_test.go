package mainloop

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countMsg int

type recorder struct {
	init tea.Cmd
	seen []tea.Msg
	on   func(msg tea.Msg) tea.Cmd
}

func (r *recorder) Init() tea.Cmd { return r.init }

func (r *recorder) Update(msg tea.Msg) tea.Cmd {
	r.seen = append(r.seen, msg)
	if r.on != nil {
		return r.on(msg)
	}
	return nil
}

func TestLoopRunsCommandsAndQuits(t *testing.T) {
	l := New()
	model := &recorder{
		init: tea.Batch(
			func() tea.Msg { return countMsg(1) },
		),
		on: func(msg tea.Msg) tea.Cmd {
			if n := msg.(countMsg); n < 3 {
				return func() tea.Msg { return n + 1 }
			}
			return tea.Quit
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, l.Run(ctx, model))
	assert.Equal(t, []tea.Msg{countMsg(1), countMsg(2), countMsg(3)}, model.seen)
}

func TestLoopSendAndPost(t *testing.T) {
	l := New()
	var order []string
	model := &recorder{on: func(msg tea.Msg) tea.Cmd {
		order = append(order, "msg")
		return nil
	}}

	l.Send(countMsg(1))
	l.Post(func() { order = append(order, "task") })
	l.Send(tea.QuitMsg{})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, l.Run(ctx, model))
	assert.Equal(t, []string{"msg", "task"}, order)
}

func TestLoopCoalescedPosts(t *testing.T) {
	l := New()
	runs := 0
	last := 0
	for i := 1; i <= 4; i++ {
		v := i
		l.PostCoalesced("frame", func() {
			runs++
			last = v
		})
	}
	l.Send(tea.QuitMsg{})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, l.Run(ctx, &recorder{}))
	assert.Equal(t, 1, runs)
	assert.Equal(t, 4, last)
}

func TestLoopCoalescedMsgKeepsLatest(t *testing.T) {
	l := New()
	model := &recorder{on: func(tea.Msg) tea.Cmd { return tea.Quit }}
	for i := 1; i <= 3; i++ {
		l.Send(CoalescedMsg{Key: "capture", Msg: countMsg(i)})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, l.Run(ctx, model))
	assert.Equal(t, []tea.Msg{countMsg(3)}, model.seen)
}

func TestLoopErrorMsg(t *testing.T) {
	boom := errors.New("boom")
	l := New()
	model := &recorder{init: func() tea.Msg { return ErrorMsg{Err: boom} }}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.ErrorIs(t, l.Run(ctx, model), boom)
}

func TestLoopContextCancel(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Run(ctx, &recorder{}), context.Canceled)
}
