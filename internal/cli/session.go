package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/infrastructure/config"
	"github.com/bnema/osrview/internal/infrastructure/engine"
	"github.com/bnema/osrview/internal/infrastructure/headless"
	"github.com/bnema/osrview/internal/logging"
	"github.com/bnema/osrview/internal/ui/component"
	"github.com/bnema/osrview/internal/ui/controller"
	"github.com/bnema/osrview/internal/ui/input"
)

// Session is one engine with the controller driving it.
type Session struct {
	Engine     *headless.Engine
	Process    *engine.BrowserProcessHandler
	Controller *controller.WebviewController
	Widget     component.WebviewOptions

	closers []io.Closer
}

// NewSession starts a headless engine configured by cfg.
func (a *App) NewSession(ctx context.Context, cfg *config.Config) (*Session, error) {
	ctrlCfg, err := ControllerConfig(cfg)
	if err != nil {
		return nil, err
	}
	widget, err := WidgetOptions(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{Widget: widget}
	engineCtx := ctx
	if cfg.Engine.LogFile != "" {
		lc := loggingConfig(cfg.Logging, true)
		lc.Format = "json"
		lc.File = cfg.Engine.LogFile
		logger, closer, err := logging.New(lc)
		if err != nil {
			return nil, fmt.Errorf("open engine log: %w", err)
		}
		s.closers = append(s.closers, closer)
		engineCtx = logging.WithContext(ctx, logger)
	}
	if cfg.Engine.CachePath != "" {
		if err := os.MkdirAll(cfg.Engine.CachePath, 0o755); err != nil {
			s.Close()
			return nil, fmt.Errorf("create engine cache dir: %w", err)
		}
	}

	s.Process = engine.NewBrowserProcessHandler(engineCtx)
	textures := headless.NewTexturePool()
	s.Engine = headless.New(engineCtx, headless.Options{
		Process:   s.Process,
		Textures:  textures,
		UserAgent: cfg.Engine.UserAgent,
		Locale:    cfg.Engine.Locale,
	})
	ctrlCfg.Importer = textures
	s.Controller = controller.NewWebviewController(ctx, s.Engine, s.Process, ctrlCfg)
	a.Trace.Mark("engine_created")

	logging.FromContext(ctx).Debug().
		Str("backend", ctrlCfg.Backend.String()).
		Int("frame_rate", ctrlCfg.FrameRate).
		Dur("pump_interval", ctrlCfg.PumpInterval).
		Str("platform", widget.Keyboard.Platform.String()).
		Msg("engine session started")
	return s, nil
}

// Close shuts the engine down and releases the engine log.
func (s *Session) Close() error {
	if s.Engine != nil {
		s.Engine.Shutdown()
	}
	if s.Process != nil {
		s.Process.Close()
	}
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}

// ControllerConfig maps the configuration onto the controller settings.
func ControllerConfig(cfg *config.Config) (controller.Config, error) {
	platform, err := Platform(cfg.Input.Platform)
	if err != nil {
		return controller.Config{}, err
	}

	out := controller.Config{
		Backend:            controller.BackendBitmap,
		ExternalBeginFrame: cfg.Render.ExternalBeginFrame,
		FrameRate:          cfg.Render.FrameRate,
		PumpInterval:       cfg.Pump.Interval(),
		CloseTimeout:       cfg.Lifecycle.CloseTimeout(),
		KeyboardMode:       engine.KeyboardPassthrough,
		ShortcutModifier:   port.EventFlagControlDown,
	}
	switch cfg.Render.Backend {
	case config.BackendBitmap, "":
	case config.BackendTexture:
		out.Backend = controller.BackendTexture
	default:
		return controller.Config{}, fmt.Errorf("unknown render backend %q", cfg.Render.Backend)
	}
	switch cfg.Input.KeyboardMode {
	case config.KeyboardPassthrough, "":
	case config.KeyboardDelegate:
		out.KeyboardMode = engine.KeyboardDelegate
	default:
		return controller.Config{}, fmt.Errorf("unknown keyboard mode %q", cfg.Input.KeyboardMode)
	}
	if platform == input.PlatformMacOS {
		out.ShortcutModifier = port.EventFlagCommandDown
	}
	return out, nil
}

// WidgetOptions maps the configuration onto the webview widget settings.
func WidgetOptions(cfg *config.Config) (component.WebviewOptions, error) {
	platform, err := Platform(cfg.Input.Platform)
	if err != nil {
		return component.WebviewOptions{}, err
	}
	policy, ok := input.ParseModifierPolicy(cfg.Input.ModifierPolicy)
	if !ok {
		return component.WebviewOptions{}, fmt.Errorf("unknown modifier policy %q", cfg.Input.ModifierPolicy)
	}

	keyboard := input.Keyboard{Platform: platform, Policy: policy}
	backend := controller.BackendBitmap
	if cfg.Render.Backend == config.BackendTexture {
		backend = controller.BackendTexture
	}
	return component.WebviewOptions{
		Backend:            backend,
		ExternalBeginFrame: cfg.Render.ExternalBeginFrame,
		Keyboard:           keyboard,
		Mouse: input.MouseConfig{
			Keyboard:            keyboard,
			DoubleClickInterval: cfg.Input.DoubleClickInterval(),
			DoubleClickDistance: cfg.Input.DoubleClickDistance,
			WheelLinePixels:     cfg.Input.WheelLinePx,
			WheelMaxPixels:      cfg.Input.WheelMaxPx,
		},
	}, nil
}

// Platform resolves a configured platform name. Empty means the platform
// the binary runs on, falling back to Linux conventions.
func Platform(name string) (input.Platform, error) {
	if name == "" {
		p, _ := input.ParsePlatform(runtime.GOOS)
		return p, nil
	}
	p, ok := input.ParsePlatform(name)
	if !ok {
		return p, fmt.Errorf("unknown platform %q", name)
	}
	return p, nil
}
