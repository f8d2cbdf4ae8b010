package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/infrastructure/config"
	"github.com/bnema/osrview/internal/infrastructure/engine"
	"github.com/bnema/osrview/internal/ui/controller"
	"github.com/bnema/osrview/internal/ui/input"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestControllerConfigDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input.Platform = "linux"

	got, err := ControllerConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, controller.BackendBitmap, got.Backend)
	assert.Equal(t, 60, got.FrameRate)
	assert.Equal(t, 17*time.Millisecond, got.PumpInterval)
	assert.Equal(t, 5*time.Second, got.CloseTimeout)
	assert.Equal(t, engine.KeyboardPassthrough, got.KeyboardMode)
	assert.Equal(t, port.EventFlagControlDown, got.ShortcutModifier)
}

func TestControllerConfigOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input.Platform = "macos"
	cfg.Input.KeyboardMode = config.KeyboardDelegate
	cfg.Render.Backend = config.BackendTexture
	cfg.Render.ExternalBeginFrame = true
	cfg.Lifecycle.CloseTimeoutMs = 0

	got, err := ControllerConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, controller.BackendTexture, got.Backend)
	assert.True(t, got.ExternalBeginFrame)
	assert.Equal(t, engine.KeyboardDelegate, got.KeyboardMode)
	assert.Equal(t, port.EventFlagCommandDown, got.ShortcutModifier)
	assert.Negative(t, got.CloseTimeout, "zero disables the close timeout")
}

func TestControllerConfigRejectsUnknownValues(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Render.Backend = "vulkan"
	_, err := ControllerConfig(cfg)
	assert.Error(t, err)

	cfg = config.DefaultConfig()
	cfg.Input.Platform = "plan9"
	_, err = ControllerConfig(cfg)
	assert.Error(t, err)
}

func TestWidgetOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input.Platform = "windows"
	cfg.Input.ModifierPolicy = config.PolicyFirstMatch

	got, err := WidgetOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, input.Keyboard{Platform: input.PlatformWindows, Policy: input.ModifiersFirstMatch}, got.Keyboard)
	assert.Equal(t, got.Keyboard, got.Mouse.Keyboard)
	assert.Equal(t, 300*time.Millisecond, got.Mouse.DoubleClickInterval)
	assert.Equal(t, float32(4), got.Mouse.DoubleClickDistance)
	assert.Equal(t, float32(40), got.Mouse.WheelLinePixels)
	assert.Equal(t, float32(120), got.Mouse.WheelMaxPixels)

	cfg.Input.ModifierPolicy = "random"
	_, err = WidgetOptions(cfg)
	assert.Error(t, err)
}

func TestPlatformDefaultsToHost(t *testing.T) {
	p, err := Platform("")
	require.NoError(t, err)
	assert.Contains(t, []input.Platform{input.PlatformLinux, input.PlatformWindows, input.PlatformMacOS}, p)

	p, err = Platform("darwin")
	require.NoError(t, err)
	assert.Equal(t, input.PlatformMacOS, p)
}

func TestNewAppAndSession(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, fmt.Sprintf(`
[engine]
cache_path = %q
log_file = %q
locale = "fr-FR"

[logging]
level = "debug"
file = %q
`, filepath.Join(dir, "cache"), filepath.Join(dir, "engine.log"), filepath.Join(dir, "osrview.log")))

	app, err := NewApp(Options{ConfigPath: path, Quiet: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	assert.Equal(t, "fr-FR", app.Current().Engine.Locale)
	require.NotNil(t, app.Trace, "debug level enables the startup trace")

	s, err := app.NewSession(app.Ctx(), app.Current())
	require.NoError(t, err)
	require.NotNil(t, s.Controller)
	assert.DirExists(t, filepath.Join(dir, "cache"))
	require.NoError(t, s.Close())

	require.NoError(t, app.Close())
	assert.FileExists(t, filepath.Join(dir, "osrview.log"))
	assert.FileExists(t, filepath.Join(dir, "engine.log"))

	var names []string
	for _, m := range app.Trace.Milestones() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"config_loaded", "engine_created"}, names)
}

func TestConfigChangedAppliesLevelAndNotifies(t *testing.T) {
	prev := zerolog.GlobalLevel()
	path := writeConfig(t, "[logging]\nlevel = \"info\"\n")
	app, err := NewApp(Options{ConfigPath: path, Quiet: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = app.Close()
		zerolog.SetGlobalLevel(prev)
	})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.False(t, app.Logger().Debug().Enabled())

	cfg := config.DefaultConfig()
	cfg.Logging.Level = "debug"
	var got *config.Config
	app.configChanged(cfg, func(c *config.Config) { got = c })

	assert.Same(t, cfg, got)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.True(t, app.Logger().Debug().Enabled(), "reload lowers the threshold of existing loggers")

	app.configChanged(&config.Config{Logging: config.LoggingConfig{Level: "error"}}, nil)
	assert.False(t, app.Logger().Info().Enabled())
}

func TestNewAppMissingExplicitConfig(t *testing.T) {
	_, err := NewApp(Options{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}
