package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func load(t *testing.T, path string) (*Manager, error) {
	t.Helper()
	mgr, err := NewManager(path)
	require.NoError(t, err)
	return mgr, mgr.Load()
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "bitmap", mgr.viper.GetString("render.backend"))
	assert.Equal(t, 60, mgr.viper.GetInt("render.frame_rate"))
	assert.Equal(t, 17, mgr.viper.GetInt("pump.interval_ms"))
	assert.Equal(t, 5000, mgr.viper.GetInt("lifecycle.close_timeout_ms"))
	assert.Equal(t, "combined", mgr.viper.GetString("input.modifier_policy"))
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
start_url = "https://example.com"

[render]
backend = "Texture"
frame_rate = 30

[input]
platform = "macos"
modifier_policy = "first_match"
wheel_line_px = 20
wheel_max_px = 60

[lifecycle]
close_timeout_ms = 0
`)
	mgr, err := load(t, path)
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, path, mgr.GetConfigFile())
	assert.Equal(t, "https://example.com", cfg.StartURL)
	assert.Equal(t, BackendTexture, cfg.Render.Backend)
	assert.Equal(t, 30, cfg.Render.FrameRate)
	assert.Equal(t, "macos", cfg.Input.Platform)
	assert.Equal(t, PolicyFirstMatch, cfg.Input.ModifierPolicy)
	assert.Equal(t, float32(20), cfg.Input.WheelLinePx)
	assert.Equal(t, 300*time.Millisecond, cfg.Input.DoubleClickInterval(), "unset keys keep defaults")
	assert.Equal(t, time.Duration(-1), cfg.Lifecycle.CloseTimeout(), "zero disables the close timeout")
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("OSRVIEW_PUMP_INTERVAL_MS", "5")
	t.Setenv("OSRVIEW_LOG_LEVEL", "debug")
	path := writeConfig(t, "[pump]\ninterval_ms = 20\n")

	mgr, err := load(t, path)
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, 5*time.Millisecond, cfg.Pump.Interval())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "[render]\nbackend = \"vulkan\"\n")
	_, err := load(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render.backend")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := load(t, filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestGetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig().Render, mgr.Get().Render)
}

func TestReloadNotifiesAndKeepsLastGoodConfig(t *testing.T) {
	path := writeConfig(t, "[render]\nframe_rate = 30\n")
	mgr, err := load(t, path)
	require.NoError(t, err)

	var seen []int
	mgr.OnConfigChange(func(c *Config) { seen = append(seen, c.Render.FrameRate) })

	require.NoError(t, os.WriteFile(path, []byte("[render]\nframe_rate = 90\n"), 0o600))
	mgr.mu.Lock()
	require.NoError(t, mgr.reload())
	mgr.notifyCallbacksLocked()
	assert.Equal(t, []int{90}, seen)

	require.NoError(t, os.WriteFile(path, []byte("[render]\nframe_rate = 9000\n"), 0o600))
	mgr.mu.Lock()
	err = mgr.reload()
	mgr.mu.Unlock()
	require.Error(t, err)
	assert.Equal(t, 90, mgr.Get().Render.FrameRate)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.Backend = " TEXTURE "
	cfg.Input.ModifierPolicy = "first-match"
	cfg.Input.KeyboardMode = ""
	cfg.Logging.Level = "DEBUG"

	normalizeConfig(cfg)

	assert.Equal(t, BackendTexture, cfg.Render.Backend)
	assert.Equal(t, PolicyFirstMatch, cfg.Input.ModifierPolicy)
	assert.Equal(t, KeyboardPassthrough, cfg.Input.KeyboardMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestNormalizeConfigResolvesLogFiles(t *testing.T) {
	state := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_STATE_HOME", state)

	cfg := DefaultConfig()
	cfg.Logging.File = "osrview.log"
	cfg.Engine.LogFile = "/var/log/engine.log"

	normalizeConfig(cfg)

	assert.Equal(t, filepath.Join(state, "osrview", "logs", "osrview.log"), cfg.Logging.File)
	assert.Equal(t, "/var/log/engine.log", cfg.Engine.LogFile)
}

func TestDebouncerRunsLastTriggerOnce(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	var (
		mu   sync.Mutex
		runs []int
	)
	for i := 1; i <= 3; i++ {
		n := i
		d.trigger(func() {
			mu.Lock()
			runs = append(runs, n)
			mu.Unlock()
		})
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(runs) == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{3}, runs)
}

func TestWatchWithoutFileIsNoop(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	require.NoError(t, mgr.Watch(context.Background()))
	assert.False(t, mgr.watching)
}
