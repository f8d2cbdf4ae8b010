// Package cli wires configuration, logging and the headless engine for the
// osrview commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/osrview/internal/cli/styles"
	"github.com/bnema/osrview/internal/domain/build"
	"github.com/bnema/osrview/internal/infrastructure/config"
	"github.com/bnema/osrview/internal/logging"
)

// Options tune NewApp.
type Options struct {
	// ConfigPath is an explicit config file; empty searches the config dir.
	ConfigPath string
	// Quiet keeps logs off the terminal, for full-screen commands.
	Quiet bool
	// Start is the process start, the origin of the startup trace.
	Start time.Time
}

// App holds CLI dependencies.
type App struct {
	// Config is the configuration loaded at startup.
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Trace     *logging.StartupTrace

	manager *config.Manager
	ctx     context.Context
	closers []io.Closer
}

// NewApp loads the configuration and builds the application logger.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, closer, err := logging.New(loggingConfig(cfg.Logging, opts.Quiet))
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.Logging.Level))
	ctx := logging.WithContext(context.Background(), logger)

	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	app := &App{
		Config:  cfg,
		Theme:   styles.NewTheme(),
		Trace:   logging.NewStartupTrace(logging.FromContext(ctx), opts.Start),
		manager: mgr,
		ctx:     ctx,
		closers: []io.Closer{closer},
	}
	app.Trace.Mark("config_loaded")

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("backend", cfg.Render.Backend).
		Msg("configuration loaded")
	return app, nil
}

// loggingConfig builds loggers at trace level; the configured level is the
// global threshold so that a reload can move it either way.
func loggingConfig(cfg config.LoggingConfig, quiet bool) logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = zerolog.TraceLevel
	if cfg.Format == "json" {
		lc.Format = "json"
	}
	lc.TimeFormat = "15:04:05"
	lc.File = cfg.File
	lc.NoConsole = quiet
	return lc
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Current returns the latest configuration, including reloads.
func (a *App) Current() *config.Config {
	return a.manager.Get()
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// WatchConfig reloads the configuration when its file changes. The log
// level applies at once; onChange, when set, receives every accepted
// configuration to apply the rest.
func (a *App) WatchConfig(onChange func(*config.Config)) {
	a.manager.OnConfigChange(func(cfg *config.Config) {
		a.configChanged(cfg, onChange)
	})
	if err := a.manager.Watch(a.ctx); err != nil {
		a.Logger().Warn().Err(err).Msg("config watch unavailable")
	}
}

func (a *App) configChanged(cfg *config.Config, onChange func(*config.Config)) {
	level := logging.ParseLevel(cfg.Logging.Level)
	logging.SetLevel(level)
	a.Logger().Info().
		Str("level", level.String()).
		Str("backend", cfg.Render.Backend).
		Msg("configuration reloaded")
	if onChange != nil {
		onChange(cfg)
	}
}

// Close releases the log files.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
