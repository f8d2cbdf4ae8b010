package config

const (
	defaultFrameRate           = 60
	defaultPumpIntervalMs      = 17
	defaultDoubleClickMs       = 300
	defaultDoubleClickDistance = 4
	defaultWheelLinePx         = 40
	defaultWheelMaxPx          = 120
	defaultCloseTimeoutMs      = 5000
	defaultLocale              = "en-US"
	defaultMetricsAddr         = "127.0.0.1:9464"
	defaultStartURL            = "about:blank"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			CachePath: getDefaultCacheDir(),
			Locale:    defaultLocale,
		},
		Render: RenderConfig{
			Backend:   BackendBitmap,
			FrameRate: defaultFrameRate,
		},
		Pump: PumpConfig{IntervalMs: defaultPumpIntervalMs},
		Input: InputConfig{
			ModifierPolicy:      PolicyCombined,
			KeyboardMode:        KeyboardPassthrough,
			DoubleClickMs:       defaultDoubleClickMs,
			DoubleClickDistance: defaultDoubleClickDistance,
			WheelLinePx:         defaultWheelLinePx,
			WheelMaxPx:          defaultWheelMaxPx,
		},
		Lifecycle: LifecycleConfig{CloseTimeoutMs: defaultCloseTimeoutMs},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    defaultMetricsAddr,
		},
		StartURL: defaultStartURL,
	}
}

// getDefaultCacheDir returns the default engine cache directory, or an empty
// string when the home directory is unknown.
func getDefaultCacheDir() string {
	dir, err := GetCacheDir()
	if err != nil {
		return ""
	}
	return dir
}
