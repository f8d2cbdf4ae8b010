package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "texture backend", mutate: func(c *Config) { c.Render.Backend = BackendTexture }},
		{name: "unknown backend", mutate: func(c *Config) { c.Render.Backend = "gl" }, wantErr: "render.backend"},
		{name: "frame rate zero", mutate: func(c *Config) { c.Render.FrameRate = 0 }, wantErr: "render.frame_rate"},
		{name: "pump interval", mutate: func(c *Config) { c.Pump.IntervalMs = 0 }, wantErr: "pump.interval_ms"},
		{name: "platform", mutate: func(c *Config) { c.Input.Platform = "beos" }, wantErr: "input.platform"},
		{name: "policy", mutate: func(c *Config) { c.Input.ModifierPolicy = "any" }, wantErr: "input.modifier_policy"},
		{name: "keyboard mode", mutate: func(c *Config) { c.Input.KeyboardMode = "vim" }, wantErr: "input.keyboard_mode"},
		{name: "wheel max below line", mutate: func(c *Config) { c.Input.WheelMaxPx = 10 }, wantErr: "input.wheel_max_px"},
		{name: "close timeout disabled", mutate: func(c *Config) { c.Lifecycle.CloseTimeoutMs = 0 }},
		{name: "negative close timeout", mutate: func(c *Config) { c.Lifecycle.CloseTimeoutMs = -1 }, wantErr: "lifecycle.close_timeout_ms"},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "metrics addr ignored when disabled", mutate: func(c *Config) { c.Metrics.Addr = "nope" }},
		{name: "metrics addr", mutate: func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Addr = "nope"
		}, wantErr: "metrics.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
