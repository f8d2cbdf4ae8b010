package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/cli/model"
	"github.com/bnema/osrview/internal/cli/styles"
	"github.com/bnema/osrview/internal/domain/build"
	"github.com/bnema/osrview/internal/infrastructure/config"
	"github.com/bnema/osrview/internal/ui/input"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "v1.2.3", Commit: "abcdef0", BuildDate: "2026-01-01", GoVersion: "go1.25.3"})

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, build.RepoURL())

	out, err = execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3\n", out)
	versionShort = false
}

func TestKeysCommand(t *testing.T) {
	out, err := execute(t, "keys", "--platform", "linux", "--filter", "Digit1")
	require.NoError(t, err)
	assert.Contains(t, out, "Key table: linux")
	assert.Contains(t, out, "Digit1")
	assert.Contains(t, out, "10", "XKB keycode of the 1 key")
	assert.Contains(t, out, "1 keys")

	_, err = execute(t, "keys", "--platform", "beos", "--filter", "")
	assert.Error(t, err)
	keysPlatform, keysFilter = "", ""
}

func TestRenderKeyTableWindows(t *testing.T) {
	out := renderKeyTable(styles.NewTheme(), input.PlatformWindows, "KeyA")
	assert.Contains(t, out, "0x001E0001", "press lParam carries the scan code")
	assert.Contains(t, out, "0x41")
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, model.FormatPNG, formatFor("a.png"))
	assert.Equal(t, model.FormatJPEG, formatFor("a.JPG"))
	assert.Equal(t, model.FormatJPEG, formatFor("a.jpeg"))
	assert.Equal(t, model.FormatPNG, formatFor("-"))
}

func TestSnapshotCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf(`
[engine]
cache_path = %q

[logging]
level = "error"
`, filepath.Join(dir, "cache"))), 0o600))
	outPath := filepath.Join(dir, "page.png")

	out, err := execute(t, "--config", cfgPath, "snapshot", "https://example.com",
		"-o", outPath, "--width", "160", "--height", "90", "--scale", "1", "--timeout", "10s")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+outPath)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
	assert.Nil(t, GetApp(), "app is closed after the command")
}

func TestSnapshotRejectsBadSize(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("[engine]\ncache_path = %q\n", dir)), 0o600))

	_, err := execute(t, "--config", cfgPath, "snapshot", "--width", "0")
	assert.Error(t, err)
	snapshotWidth = defaultSnapshotWidth
}

func TestReloadedSettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input.Platform = "macos"
	cfg.Input.KeyboardMode = config.KeyboardDelegate
	cfg.Input.WheelLinePx = 20

	msg, err := reloadedSettings(cfg)
	require.NoError(t, err)
	assert.Equal(t, port.EventFlagCommandDown, msg.Controller.ShortcutModifier)
	assert.Equal(t, input.PlatformMacOS, msg.Widget.Keyboard.Platform)
	assert.Equal(t, float32(20), msg.Widget.Mouse.WheelLinePixels)

	cfg.Input.ModifierPolicy = "random"
	_, err = reloadedSettings(cfg)
	assert.Error(t, err)
}
