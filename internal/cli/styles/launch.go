package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// LaunchIndicator is shown in place of the page until the first frame.
type LaunchIndicator struct {
	Spinner spinner.Model
	URL     string
	started time.Time
	now     func() time.Time
	theme   *Theme
}

// NewLaunchIndicator starts timing the launch of url.
func NewLaunchIndicator(theme *Theme, url string) LaunchIndicator {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return LaunchIndicator{
		Spinner: s,
		URL:     url,
		started: time.Now(),
		now:     time.Now,
		theme:   theme,
	}
}

// Elapsed is the time since the launch started, rounded to 100ms.
func (l LaunchIndicator) Elapsed() time.Duration {
	return l.now().Sub(l.started).Round(100 * time.Millisecond)
}

// View renders the spinner, the url and the elapsed time.
func (l LaunchIndicator) View() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		l.Spinner.View(),
		" ",
		l.theme.Subtle.Render("Loading "+l.URL),
		" ",
		lipgloss.NewStyle().Foreground(l.theme.Muted).Render(fmt.Sprintf("(%s)", l.Elapsed())),
	)
}
