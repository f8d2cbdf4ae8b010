package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/osrview/internal/cli"
	"github.com/bnema/osrview/internal/cli/model"
	"github.com/bnema/osrview/internal/infrastructure/config"
	"github.com/bnema/osrview/internal/infrastructure/metrics"
	"github.com/bnema/osrview/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run [url]",
	Short: "Open a page in the terminal",
	Long: `Open a page in an off-screen browser and draw its frames in the terminal.

Keys, mouse clicks and the wheel are forwarded to the page. Without a URL the
configured start_url is opened.

Examples:
  osrview run                        # Open start_url
  osrview run https://example.com    # Open a URL`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Current()
	url := cfg.StartURL
	if len(args) == 1 {
		url = args[0]
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logging.RecoverPanic(ctx)

	sess, err := app.NewSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	m := model.NewWebviewModel(ctx, app.Theme, sess.Controller, sess.Engine, sess.Widget, url)
	m.SetTrace(app.Trace)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	app.WatchConfig(func(cfg *config.Config) {
		msg, err := reloadedSettings(cfg)
		if err != nil {
			app.Logger().Warn().Err(err).Msg("reloaded settings not applied")
			return
		}
		p.Send(msg)
	})

	err = withMetrics(ctx, cfg.Metrics, func(ctx context.Context) error {
		stop := context.AfterFunc(ctx, p.Quit)
		defer stop()
		_, err := p.Run()
		if err != nil && ctx.Err() != nil {
			// Interrupted by a signal or by a failing metrics server; the
			// latter is reported by the group.
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	return m.Err()
}

// reloadedSettings converts a reloaded configuration into the settings a
// running session can apply.
func reloadedSettings(cfg *config.Config) (model.ConfigReloadedMsg, error) {
	ctrl, err := cli.ControllerConfig(cfg)
	if err != nil {
		return model.ConfigReloadedMsg{}, err
	}
	widget, err := cli.WidgetOptions(cfg)
	if err != nil {
		return model.ConfigReloadedMsg{}, err
	}
	return model.ConfigReloadedMsg{Controller: ctrl, Widget: widget}, nil
}

// withMetrics runs fn, serving metrics next to it when enabled. The server
// stops when fn returns.
func withMetrics(ctx context.Context, cfg config.MetricsConfig, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Enabled {
		g.Go(func() error {
			return metrics.Serve(gctx, cfg.Addr)
		})
	}
	g.Go(func() error {
		defer cancel()
		return fn(gctx)
	})
	return g.Wait()
}
