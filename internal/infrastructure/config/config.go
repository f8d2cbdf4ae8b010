// Package config loads osrview settings from TOML, OSRVIEW_ environment
// variables and defaults, and reloads them when the file changes.
package config

import "time"

// Backend names accepted by render.backend.
const (
	BackendBitmap  = "bitmap"
	BackendTexture = "texture"
)

// Modifier policies accepted by input.modifier_policy.
const (
	PolicyCombined   = "combined"
	PolicyFirstMatch = "first_match"
)

// Keyboard modes accepted by input.keyboard_mode.
const (
	KeyboardPassthrough = "passthrough"
	KeyboardDelegate    = "delegate"
)

// Config is the full application configuration.
type Config struct {
	Engine    EngineConfig    `mapstructure:"engine" toml:"engine"`
	Render    RenderConfig    `mapstructure:"render" toml:"render"`
	Pump      PumpConfig      `mapstructure:"pump" toml:"pump"`
	Input     InputConfig     `mapstructure:"input" toml:"input"`
	Lifecycle LifecycleConfig `mapstructure:"lifecycle" toml:"lifecycle"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics" toml:"metrics"`
	StartURL  string          `mapstructure:"start_url" toml:"start_url"`
}

// EngineConfig holds process-wide engine settings.
type EngineConfig struct {
	CachePath string `mapstructure:"cache_path" toml:"cache_path"`
	UserAgent string `mapstructure:"user_agent" toml:"user_agent"`
	Locale    string `mapstructure:"locale" toml:"locale"`
	LogFile   string `mapstructure:"log_file" toml:"log_file"`
}

// RenderConfig selects how frames reach the screen.
type RenderConfig struct {
	Backend            string `mapstructure:"backend" toml:"backend"`
	FrameRate          int    `mapstructure:"frame_rate" toml:"frame_rate"`
	ExternalBeginFrame bool   `mapstructure:"external_begin_frame" toml:"external_begin_frame"`
}

// PumpConfig controls the periodic engine pump.
type PumpConfig struct {
	IntervalMs int `mapstructure:"interval_ms" toml:"interval_ms"`
}

// Interval returns the pump period.
func (p PumpConfig) Interval() time.Duration {
	return time.Duration(p.IntervalMs) * time.Millisecond
}

// InputConfig tunes keyboard and mouse translation. An empty platform means
// the platform the binary runs on.
type InputConfig struct {
	Platform            string  `mapstructure:"platform" toml:"platform"`
	ModifierPolicy      string  `mapstructure:"modifier_policy" toml:"modifier_policy"`
	KeyboardMode        string  `mapstructure:"keyboard_mode" toml:"keyboard_mode"`
	DoubleClickMs       int     `mapstructure:"double_click_ms" toml:"double_click_ms"`
	DoubleClickDistance float32 `mapstructure:"double_click_distance" toml:"double_click_distance"`
	WheelLinePx         float32 `mapstructure:"wheel_line_px" toml:"wheel_line_px"`
	WheelMaxPx          float32 `mapstructure:"wheel_max_px" toml:"wheel_max_px"`
}

// DoubleClickInterval returns the multi-click window.
func (i InputConfig) DoubleClickInterval() time.Duration {
	return time.Duration(i.DoubleClickMs) * time.Millisecond
}

// LifecycleConfig bounds browser teardown.
type LifecycleConfig struct {
	// CloseTimeoutMs is how long a closing browser may take; 0 waits forever.
	CloseTimeoutMs int `mapstructure:"close_timeout_ms" toml:"close_timeout_ms"`
}

// CloseTimeout returns the teardown bound. A disabled bound is reported as a
// negative duration.
func (l LifecycleConfig) CloseTimeout() time.Duration {
	if l.CloseTimeoutMs <= 0 {
		return -1
	}
	return time.Duration(l.CloseTimeoutMs) * time.Millisecond
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
	File   string `mapstructure:"file" toml:"file"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Addr    string `mapstructure:"addr" toml:"addr"`
}
