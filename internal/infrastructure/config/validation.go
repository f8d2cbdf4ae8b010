package config

import (
	"fmt"
	"net"
	"strings"
)

const maxFrameRate = 240

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateRender(config)...)
	validationErrors = append(validationErrors, validatePump(config)...)
	validationErrors = append(validationErrors, validateInput(config)...)
	validationErrors = append(validationErrors, validateLifecycle(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateMetrics(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateRender(config *Config) []string {
	var validationErrors []string
	switch config.Render.Backend {
	case BackendBitmap, BackendTexture:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"render.backend must be one of: bitmap, texture (got: %s)", config.Render.Backend))
	}
	if config.Render.FrameRate < 1 || config.Render.FrameRate > maxFrameRate {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"render.frame_rate must be between 1 and %d", maxFrameRate))
	}
	return validationErrors
}

func validatePump(config *Config) []string {
	if config.Pump.IntervalMs < 1 {
		return []string{"pump.interval_ms must be at least 1"}
	}
	return nil
}

func validateInput(config *Config) []string {
	var validationErrors []string
	switch config.Input.Platform {
	case "", "linux", "windows", "macos":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"input.platform must be one of: linux, windows, macos (got: %s)", config.Input.Platform))
	}
	switch config.Input.ModifierPolicy {
	case PolicyCombined, PolicyFirstMatch:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"input.modifier_policy must be one of: combined, first_match (got: %s)", config.Input.ModifierPolicy))
	}
	switch config.Input.KeyboardMode {
	case KeyboardPassthrough, KeyboardDelegate:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"input.keyboard_mode must be one of: passthrough, delegate (got: %s)", config.Input.KeyboardMode))
	}
	if config.Input.DoubleClickMs < 0 {
		validationErrors = append(validationErrors, "input.double_click_ms must be non-negative")
	}
	if config.Input.DoubleClickDistance < 0 {
		validationErrors = append(validationErrors, "input.double_click_distance must be non-negative")
	}
	if config.Input.WheelLinePx <= 0 {
		validationErrors = append(validationErrors, "input.wheel_line_px must be positive")
	}
	if config.Input.WheelMaxPx < config.Input.WheelLinePx {
		validationErrors = append(validationErrors, "input.wheel_max_px must be at least input.wheel_line_px")
	}
	return validationErrors
}

func validateLifecycle(config *Config) []string {
	if config.Lifecycle.CloseTimeoutMs < 0 {
		return []string{"lifecycle.close_timeout_ms must be non-negative (0 disables the timeout)"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, fatal (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "text", "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateMetrics(config *Config) []string {
	if !config.Metrics.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(config.Metrics.Addr); err != nil {
		return []string{fmt.Sprintf("metrics.addr must be host:port (got: %s)", config.Metrics.Addr)}
	}
	return nil
}
