// Package styles provides the lipgloss theme, key maps and frame renderer
// of the terminal host.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is a set of base colors in hex form.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Border     string
}

// DefaultDarkPalette returns hardcoded dark theme colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Surface:    "#1a1a1b",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Border:     "#333333",
	}
}

// Theme holds lipgloss colors and styles.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	StatusBar  lipgloss.Style
	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style
	Box        lipgloss.Style

	Placeholder lipgloss.Style
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultDarkPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Surface:    lipgloss.Color(p.Surface),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),
		Error:      lipgloss.Color("#ef4444"),
	}
	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Border).
		Padding(0, 1)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Background)
}
