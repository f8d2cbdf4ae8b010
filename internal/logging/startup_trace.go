package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace measures the time from process start to the first frame of
// the first browser. It only records when the logger is at debug level or
// below. A nil trace is valid and does nothing.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	now        func() time.Time
	milestones []Milestone
	logger     *zerolog.Logger
	finished   bool
}

// Milestone is a timing checkpoint.
type Milestone struct {
	Name    string
	Elapsed time.Duration // since t0
	Delta   time.Duration // since the previous milestone
}

// NewStartupTrace starts a trace at t0. It returns nil when logger would
// drop debug lines.
func NewStartupTrace(logger *zerolog.Logger, t0 time.Time) *StartupTrace {
	if logger == nil || logger.GetLevel() > zerolog.DebugLevel || zerolog.GlobalLevel() > zerolog.DebugLevel {
		return nil
	}
	return &StartupTrace{
		t0:         t0,
		now:        time.Now,
		milestones: make([]Milestone, 0, 8),
		logger:     logger,
	}
}

// Mark records a milestone and logs it at debug level.
func (st *StartupTrace) Mark(name string) {
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}

	elapsed := st.now().Sub(st.t0)
	m := Milestone{Name: name, Elapsed: elapsed}
	if n := len(st.milestones); n > 0 {
		m.Delta = elapsed - st.milestones[n-1].Elapsed
	}
	st.milestones = append(st.milestones, m)

	event := st.logger.Debug().Str("milestone", m.Name).Int64("t_ms", elapsed.Milliseconds())
	if m.Delta > 0 {
		event.Int64("delta_ms", m.Delta.Milliseconds()).
			Msgf("startup_trace: %s (T+%dms, +%dms)", m.Name, elapsed.Milliseconds(), m.Delta.Milliseconds())
		return
	}
	event.Msgf("startup_trace: %s (T+%dms)", m.Name, elapsed.Milliseconds())
}

// Finish records a last milestone and logs the summary. Later marks are
// ignored.
func (st *StartupTrace) Finish(name string) {
	if st == nil {
		return
	}
	st.Mark(name)

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}
	st.finished = true

	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}
	st.logger.Info().
		Int64("total_ms", st.now().Sub(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup_trace: first frame")
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Milestone(nil), st.milestones...)
}
