// Package cmd provides Cobra CLI commands for osrview.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/osrview/internal/cli"
	"github.com/bnema/osrview/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	startTime  = time.Now()
	rootCmd    = &cobra.Command{
		Use:   "osrview",
		Short: "Drive an off-screen browser engine from the terminal",
		Long: `osrview - an off-screen browser engine bridge.

Browsers are created windowless: every frame is painted off-screen and handed
to the host, which draws it and feeds keyboard, mouse and IME input back.

Use 'osrview run' to open a page in the terminal, 'osrview snapshot' to render
a page to an image, or 'osrview keys' to inspect the key translation tables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Commands that need neither configuration nor logging.
			switch cmd.Name() {
			case "help", "completion", "version", "keys":
				return nil
			}

			closeApp()
			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigPath: configPath,
				Quiet:      cmd.Name() == runCmd.Name(),
				Start:      startTime,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default $XDG_CONFIG_HOME/osrview/config.toml)")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	// A failing command skips the post-run hook.
	closeApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
