package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/osrview/internal/cli"
	"github.com/bnema/osrview/internal/cli/styles"
	"github.com/bnema/osrview/internal/ui/input"
)

var (
	keysPlatform string
	keysFilter   string
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the key translation table",
	Long: `Print, for every physical key, the native key code sent to the engine on
press and release, and the virtual-key code of the key position.

Examples:
  osrview keys                      # Table for this platform
  osrview keys --platform windows   # lParam values of the Windows table
  osrview keys --filter Numpad      # Only keypad keys`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().StringVarP(&keysPlatform, "platform", "p", "", "linux, windows or macos (default: this platform)")
	keysCmd.Flags().StringVarP(&keysFilter, "filter", "f", "", "only keys whose code name contains this text")
}

func runKeys(cmd *cobra.Command, _ []string) error {
	platform, err := cli.Platform(keysPlatform)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderKeyTable(styles.NewTheme(), platform, keysFilter))
	return nil
}

func renderKeyTable(t *styles.Theme, platform input.Platform, filter string) string {
	var sb strings.Builder
	sb.WriteString(t.Title.Render("Key table: "+platform.String()) + "\n")
	header := fmt.Sprintf("%-16s %12s %12s %6s", "code", "press", "release", "vk")
	sb.WriteString(t.Subtle.Render(header) + "\n")

	rows := 0
	for _, code := range input.Codes() {
		name := code.String()
		if filter != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(filter)) {
			continue
		}
		press := input.NativeKeyCode(platform, code, false)
		release := input.NativeKeyCode(platform, code, true)
		vk := input.VirtualKeyCode(input.Key{}, code)
		line := fmt.Sprintf("%-16s %12s %12s %6s", name, nativeString(platform, press), nativeString(platform, release), hexOrDash(vk))
		if press == 0 {
			sb.WriteString(t.Subtle.Render(line) + "\n")
		} else {
			sb.WriteString(t.Normal.Render(line) + "\n")
		}
		rows++
	}
	sb.WriteString(lipgloss.NewStyle().Foreground(t.Muted).Render(fmt.Sprintf("%d keys", rows)) + "\n")
	return sb.String()
}

func nativeString(platform input.Platform, v int32) string {
	if v == 0 {
		return "-"
	}
	if platform == input.PlatformWindows {
		return fmt.Sprintf("0x%08X", uint32(v))
	}
	return fmt.Sprintf("%d", v)
}

func hexOrDash(v int32) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("0x%02X", v)
}
