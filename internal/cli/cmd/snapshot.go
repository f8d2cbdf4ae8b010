package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/osrview/internal/cli/model"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/logging"
	"github.com/bnema/osrview/internal/ui/mainloop"
)

const (
	defaultSnapshotWidth   = 1280
	defaultSnapshotHeight  = 800
	defaultSnapshotTimeout = 30 * time.Second
)

var (
	snapshotOutput  string
	snapshotWidth   int
	snapshotHeight  int
	snapshotScale   float32
	snapshotTimeout time.Duration
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [url]",
	Short: "Render a page to an image",
	Long: `Load a page off-screen and write its first frame to a PNG or JPEG file.

The format follows the output extension. Use "-" to write PNG to stdout.

Examples:
  osrview snapshot https://example.com -o page.png
  osrview snapshot about:blank -o blank.jpg --width 800 --height 600 --scale 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "snapshot.png", "output file, or - for stdout")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", defaultSnapshotWidth, "view width in logical pixels")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", defaultSnapshotHeight, "view height in logical pixels")
	snapshotCmd.Flags().Float32Var(&snapshotScale, "scale", 1, "device scale factor")
	snapshotCmd.Flags().DurationVar(&snapshotTimeout, "timeout", defaultSnapshotTimeout, "give up after this long")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if snapshotWidth <= 0 || snapshotHeight <= 0 {
		return fmt.Errorf("invalid size %dx%d", snapshotWidth, snapshotHeight)
	}
	if snapshotScale <= 0 {
		return fmt.Errorf("invalid scale %g", snapshotScale)
	}
	cfg := app.Current()
	url := cfg.StartURL
	if len(args) == 1 {
		url = args[0]
	}

	ctx, cancel := context.WithTimeout(app.Ctx(), snapshotTimeout)
	defer cancel()
	defer logging.RecoverPanic(ctx)

	sess, err := app.NewSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	var buf bytes.Buffer
	m := model.NewSnapshotModel(ctx, sess.Controller, sess.Engine, &buf, model.SnapshotOptions{
		URL:         url,
		Bounds:      entity.Rectangle{Width: float32(snapshotWidth), Height: float32(snapshotHeight)},
		ScaleFactor: snapshotScale,
		Format:      formatFor(snapshotOutput),
		Widget:      sess.Widget,
		Trace:       app.Trace,
	})

	err = withMetrics(ctx, cfg.Metrics, func(ctx context.Context) error {
		return mainloop.New().Run(ctx, m)
	})
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("snapshot of %s timed out after %s", url, snapshotTimeout)
	}
	if err != nil {
		return fmt.Errorf("snapshot of %s: %w", url, err)
	}

	if snapshotOutput == "-" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(snapshotOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render(fmt.Sprintf("wrote %s (%d bytes)", snapshotOutput, buf.Len())))
	return nil
}

func formatFor(path string) model.ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return model.FormatJPEG
	default:
		return model.FormatPNG
	}
}
