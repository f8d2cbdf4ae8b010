package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	explicit  bool
}

// NewManager creates a configuration manager. When path is empty the
// config.toml of the XDG config directory and of the working directory are
// looked up; a missing file then means defaults only.
func NewManager(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// Every key is reachable as OSRVIEW_<SECTION>_<KEY>, e.g. OSRVIEW_RENDER_BACKEND.
	v.SetEnvPrefix("OSRVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "OSRVIEW_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OSRVIEW_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "OSRVIEW_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind OSRVIEW_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		explicit:  path != "",
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) && !m.explicit {
		return nil
	}
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile, _ = GetConfigFile()
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Render.Backend = strings.ToLower(strings.TrimSpace(config.Render.Backend))
	if config.Render.Backend == "" {
		config.Render.Backend = BackendBitmap
	}

	config.Input.Platform = strings.ToLower(strings.TrimSpace(config.Input.Platform))
	config.Input.ModifierPolicy = strings.ToLower(strings.TrimSpace(config.Input.ModifierPolicy))
	switch config.Input.ModifierPolicy {
	case "", "combined":
		config.Input.ModifierPolicy = PolicyCombined
	case "first-match", "firstmatch":
		config.Input.ModifierPolicy = PolicyFirstMatch
	}
	config.Input.KeyboardMode = strings.ToLower(strings.TrimSpace(config.Input.KeyboardMode))
	if config.Input.KeyboardMode == "" {
		config.Input.KeyboardMode = KeyboardPassthrough
	}

	config.Logging.Level = strings.ToLower(config.Logging.Level)
	config.Logging.Format = strings.ToLower(config.Logging.Format)
	config.Logging.File = resolveLogPath(config.Logging.File)
	config.Engine.LogFile = resolveLogPath(config.Engine.LogFile)
	config.StartURL = strings.TrimSpace(config.StartURL)
}

// resolveLogPath places a bare log file name in the XDG log directory.
func resolveLogPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	dir, err := GetLogDir()
	if err != nil {
		return path
	}
	return filepath.Join(dir, path)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("engine.cache_path", defaults.Engine.CachePath)
	m.viper.SetDefault("engine.user_agent", defaults.Engine.UserAgent)
	m.viper.SetDefault("engine.locale", defaults.Engine.Locale)
	m.viper.SetDefault("engine.log_file", defaults.Engine.LogFile)

	m.viper.SetDefault("render.backend", defaults.Render.Backend)
	m.viper.SetDefault("render.frame_rate", defaults.Render.FrameRate)
	m.viper.SetDefault("render.external_begin_frame", defaults.Render.ExternalBeginFrame)

	m.viper.SetDefault("pump.interval_ms", defaults.Pump.IntervalMs)

	m.viper.SetDefault("input.platform", defaults.Input.Platform)
	m.viper.SetDefault("input.modifier_policy", defaults.Input.ModifierPolicy)
	m.viper.SetDefault("input.keyboard_mode", defaults.Input.KeyboardMode)
	m.viper.SetDefault("input.double_click_ms", defaults.Input.DoubleClickMs)
	m.viper.SetDefault("input.double_click_distance", defaults.Input.DoubleClickDistance)
	m.viper.SetDefault("input.wheel_line_px", defaults.Input.WheelLinePx)
	m.viper.SetDefault("input.wheel_max_px", defaults.Input.WheelMaxPx)

	m.viper.SetDefault("lifecycle.close_timeout_ms", defaults.Lifecycle.CloseTimeoutMs)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)

	m.viper.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	m.viper.SetDefault("metrics.addr", defaults.Metrics.Addr)

	m.viper.SetDefault("start_url", defaults.StartURL)
}
