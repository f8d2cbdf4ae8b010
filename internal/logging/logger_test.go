package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "osrview.log")
	logger, closer, err := New(Config{Level: zerolog.DebugLevel, Format: "json", File: path})
	require.NoError(t, err)

	logger.Debug().Str("k", "v").Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))
	ctx = WithComponent(ctx, "controller")
	ctx = WithLaunchID(ctx, 7)
	ctx = WithBrowserID(ctx, 3)
	ctx = WithURL(ctx, "about:blank")

	FromContext(ctx).Info().Msg("x")
	out := buf.String()
	for _, field := range []string{`"component":"controller"`, `"launch_id":7`, `"browser_id":3`, `"url":"about:blank"`} {
		assert.Contains(t, out, field)
	}
}

func TestFromContextWithoutLogger(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info().Msg("dropped")
}

func TestRecoverPanicRepanics(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	assert.PanicsWithValue(t, "boom", func() {
		defer RecoverPanic(ctx)
		panic("boom")
	})
	assert.Contains(t, buf.String(), `"panic":"boom"`)
	assert.Contains(t, buf.String(), `"stack":`)
}

func TestLogRotatorRotatesBySize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "osrview.log")
	r, err := NewLogRotator(path, RotateOptions{MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	r.maxSize = 100
	tick := time.Unix(1700000000, 0)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	line := []byte(strings.Repeat("x", 59) + "\n")
	for i := 0; i < 8; i++ {
		n, err := r.Write(line)
		require.NoError(t, err)
		require.Equal(t, len(line), n)
	}
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if e.Name() != "osrview.log" {
			backups++
			assert.True(t, strings.HasPrefix(e.Name(), "osrview.log."))
		}
	}
	assert.Equal(t, 2, backups, "only MaxBackups backups are kept")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(line)), info.Size())
}

func TestLogRotatorCompressesBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(filepath.Join(dir, "a.log"), RotateOptions{Compress: true})
	require.NoError(t, err)
	r.maxSize = 10

	_, err = r.Write([]byte("first line\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("second line\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "a.log.*.gz"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestStartupTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	t0 := time.Unix(1700000000, 0)
	st := NewStartupTrace(&logger, t0)
	require.NotNil(t, st)

	now := t0
	st.now = func() time.Time { return now }
	now = now.Add(10 * time.Millisecond)
	st.Mark("engine_ready")
	now = now.Add(25 * time.Millisecond)
	st.Finish("first_frame")
	st.Mark("ignored")

	ms := st.Milestones()
	require.Len(t, ms, 2)
	assert.Equal(t, Milestone{Name: "engine_ready", Elapsed: 10 * time.Millisecond}, ms[0])
	assert.Equal(t, Milestone{Name: "first_frame", Elapsed: 35 * time.Millisecond, Delta: 25 * time.Millisecond}, ms[1])
	assert.Contains(t, buf.String(), "engine_ready:10,first_frame:35")
}

func TestStartupTraceDisabledAboveDebug(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.InfoLevel)
	st := NewStartupTrace(&logger, time.Now())
	assert.Nil(t, st)

	st.Mark("noop")
	st.Finish("noop")
	assert.Nil(t, st.Milestones())
}

func TestNewWithoutConsoleStillWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiet.log")
	logger, closer, err := New(Config{Level: zerolog.InfoLevel, Format: "console", File: path, NoConsole: true})
	require.NoError(t, err)
	logger.Info().Msg("file only")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file only")
}
