package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/osrview/internal/cli/styles"
	"github.com/bnema/osrview/internal/domain/build"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.Version)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderVersion(styles.NewTheme(), buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print the version only")
}

func renderVersion(t *styles.Theme, info build.Info) string {
	row := func(label, value string) string {
		return t.Subtle.Render(fmt.Sprintf("%-12s", label)) + t.Normal.Render(value)
	}
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render("osrview"),
		"",
		row("Version", info.Version),
		row("Commit", info.Commit),
		row("Built", info.BuildDate),
		row("Go", info.GoVersion),
		row("Repository", build.RepoURL()),
		row("Authors", strings.Join(build.Contributors(), ", ")),
	))
}
