package model

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/cli/styles"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/logging"
	"github.com/bnema/osrview/internal/ui/component"
	"github.com/bnema/osrview/internal/ui/controller"
	"github.com/bnema/osrview/internal/ui/input"
)

// statusRows is the height of the status bar below the page.
const statusRows = 1

// Device scale factor steps of the zoom bindings.
const (
	scaleStep float32 = 0.25
	minScale  float32 = 0.5
	maxScale  float32 = 3
)

// shell records what the widget asked for while handling one event.
type shell struct {
	redraw   bool
	captured bool
	ime      port.InputMethod
}

func (s *shell) RequestRedraw()                         { s.redraw = true }
func (s *shell) RequestInputMethod(im port.InputMethod) { s.ime = im }
func (s *shell) CaptureEvent()                          { s.captured = true }

var _ port.Shell = (*shell)(nil)

// ConfigReloadedMsg carries settings from a reloaded configuration file.
type ConfigReloadedMsg struct {
	Controller controller.Config
	Widget     component.WebviewOptions
}

// WebviewModel hosts one browser in the terminal. The page is drawn with
// half-block cells; keys and mouse events are forwarded to it.
type WebviewModel struct {
	ctx    context.Context
	logger *zerolog.Logger

	ctrl   *controller.WebviewController
	engine port.Engine
	opts   component.WebviewOptions
	url    string

	trace   *logging.StartupTrace
	theme   *styles.Theme
	frame   *styles.FrameRenderer
	loading styles.LaunchIndicator
	help    help.Model
	keys    styles.WebviewKeyMap
	shell   shell

	view     *component.Webview
	launch   entity.LaunchID
	launched bool
	loaded   bool
	pressed  input.Button
	cursor   input.Interaction
	width    int
	height   int
	status   string
	quitting bool
	err      error
}

// NewWebviewModel creates a model that opens url once the terminal size is
// known.
func NewWebviewModel(
	ctx context.Context,
	theme *styles.Theme,
	ctrl *controller.WebviewController,
	eng port.Engine,
	opts component.WebviewOptions,
	url string,
) *WebviewModel {
	ctx = logging.WithComponent(ctx, "terminal-host")
	return &WebviewModel{
		ctx:     ctx,
		logger:  logging.FromContext(ctx),
		ctrl:    ctrl,
		engine:  eng,
		opts:    opts,
		url:     url,
		theme:   theme,
		frame:   styles.NewFrameRenderer(theme),
		loading: styles.NewLaunchIndicator(theme, url),
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultWebviewKeyMap(),
		status:  "launching",
	}
}

// SetTrace attaches the startup trace finished by the first frame.
func (m *WebviewModel) SetTrace(trace *logging.StartupTrace) {
	m.trace = trace
}

// Err returns the error that ended the session, if any.
func (m *WebviewModel) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *WebviewModel) Init() tea.Cmd {
	return tea.Batch(m.ctrl.Init(), m.loading.Spinner.Tick)
}

// Update implements tea.Model.
func (m *WebviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, m.quit()
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if key.Matches(msg, m.keys.ZoomIn) {
			m.zoom(scaleStep)
			return m, nil
		}
		if key.Matches(msg, m.keys.ZoomOut) {
			m.zoom(-scaleStep)
			return m, nil
		}
		if ev, ok := translateKey(msg); ok {
			m.dispatch(ev)
			m.dispatch(release(ev))
		}
		return m, nil

	case tea.MouseMsg:
		m.mouse(msg)
		return m, nil

	case ConfigReloadedMsg:
		m.reconfigure(msg)
		return m, nil

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd
	}

	return m, m.handle(m.ctrl.Update(msg))
}

func (m *WebviewModel) bounds() entity.Rectangle {
	rows := m.height - statusRows
	if rows < 1 {
		rows = 1
	}
	return styles.BoundsForCells(m.width, rows)
}

func (m *WebviewModel) resize(width, height int) tea.Cmd {
	m.width, m.height = width, height
	if m.view != nil {
		m.view.Layout(m.bounds())
		return nil
	}
	if m.launched {
		return nil
	}
	m.launched = true
	action := m.ctrl.Update(controller.CreateMsg{
		URL:         m.url,
		Bounds:      m.bounds(),
		ScaleFactor: 1,
	})
	m.launch = action.Launch
	return m.handle(action)
}

// handle reacts to a controller action. The action command always runs.
func (m *WebviewModel) handle(action controller.Action) tea.Cmd {
	cmds := []tea.Cmd{action.Cmd}
	switch action.Kind {
	case controller.ActionCreated:
		if action.Launch != m.launch || m.view != nil {
			break
		}
		m.view = component.NewWebview(m.ctx, action.BrowserID, m.ctrl.Registry(), m.engine, m.opts)
		m.view.Layout(m.bounds())
		m.view.Focus(true)
		m.status = "loading"
		m.trace.Mark("browser_created")
	case controller.ActionUpdateView:
		m.loaded = true
		m.trace.Finish("first_frame")
		m.dispatch(input.RedrawRequested{At: time.Now()})
	case controller.ActionLoaded:
		m.loaded = true
		m.status = "ready"
	case controller.ActionLaunchFailed:
		m.err = action.Err
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	case controller.ActionClosed:
		if m.view != nil && m.view.BrowserID() == action.BrowserID {
			m.view = nil
		}
		m.status = "closed"
		if m.quitting && m.ctrl.Live() == 0 {
			cmds = append(cmds, tea.Quit)
		}
	}
	return tea.Batch(cmds...)
}

// quit closes the browser and exits once it is gone. A second request exits
// immediately.
func (m *WebviewModel) quit() tea.Cmd {
	if m.quitting || m.ctrl.Live() == 0 {
		m.quitting = true
		return tea.Quit
	}
	m.quitting = true
	m.status = "closing"
	m.ctrl.CloseLaunch(m.launch)
	cmd := m.ctrl.CloseAll()
	if m.ctrl.Live() == 0 {
		return tea.Batch(cmd, tea.Quit)
	}
	return cmd
}

// reconfigure applies reloaded input and pump settings to the running
// session. The rendering backend stays as launched.
func (m *WebviewModel) reconfigure(msg ConfigReloadedMsg) {
	m.ctrl.Reconfigure(msg.Controller)
	m.opts.Keyboard = msg.Widget.Keyboard
	m.opts.Mouse = msg.Widget.Mouse
	if m.view != nil {
		m.view.SetInput(m.opts)
	}
	m.status = "config reloaded"
}

// zoom steps the device scale factor within [minScale, maxScale].
func (m *WebviewModel) zoom(delta float32) {
	if m.view == nil {
		return
	}
	scale := m.view.ScaleFactor() + delta
	scale = max(minScale, min(maxScale, scale))
	if m.view.SetScaleFactor(scale) {
		m.status = fmt.Sprintf("scale %.2g", scale)
	}
}

func (m *WebviewModel) dispatch(ev input.Event) {
	if m.view == nil {
		return
	}
	m.shell = shell{ime: m.shell.ime}
	m.view.Update(ev, &m.shell)
}

func (m *WebviewModel) mouse(msg tea.MouseMsg) {
	if m.view == nil {
		return
	}
	var mods input.Modifiers
	if msg.Shift {
		mods |= input.ModShift
	}
	if msg.Alt {
		mods |= input.ModAlt
	}
	if msg.Ctrl {
		mods |= input.ModControl
	}
	m.dispatch(input.ModifiersChanged{Modifiers: mods})

	pos := styles.CellCenter(msg.X, msg.Y)
	if !m.bounds().Contains(pos) {
		m.dispatch(input.CursorLeft{})
		m.cursor = input.InteractionNone
		return
	}
	m.dispatch(input.CursorMoved{Position: pos})
	m.cursor = m.view.MouseInteraction(pos)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.dispatch(input.WheelScrolled{Unit: input.ScrollLines, Y: 1})
		case tea.MouseButtonWheelDown:
			m.dispatch(input.WheelScrolled{Unit: input.ScrollLines, Y: -1})
		case tea.MouseButtonWheelLeft:
			m.dispatch(input.WheelScrolled{Unit: input.ScrollLines, X: 1})
		case tea.MouseButtonWheelRight:
			m.dispatch(input.WheelScrolled{Unit: input.ScrollLines, X: -1})
		default:
			if b, ok := mouseButton(msg.Button); ok {
				m.pressed = b
				m.dispatch(input.ButtonPressed{Button: b})
			}
		}
	case tea.MouseActionRelease:
		b, ok := mouseButton(msg.Button)
		if !ok {
			// Some terminals do not say which button went up.
			b = m.pressed
		}
		m.dispatch(input.ButtonReleased{Button: b})
	}
}

func mouseButton(b tea.MouseButton) (input.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return input.ButtonLeft, true
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle, true
	case tea.MouseButtonRight:
		return input.ButtonRight, true
	case tea.MouseButtonBackward:
		return input.ButtonBack, true
	case tea.MouseButtonForward:
		return input.ButtonForward, true
	}
	return input.ButtonLeft, false
}

// View implements tea.Model.
func (m *WebviewModel) View() string {
	t := m.theme
	if m.err != nil {
		return t.Box.Render(t.ErrorStyle.Render("Error: " + m.err.Error()))
	}

	var page string
	if m.view == nil {
		b := m.bounds()
		cols, rows := styles.Cells(b)
		page = lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, m.loading.View())
	} else {
		m.view.Draw(m.frame)
		page = m.frame.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, page, m.statusBar())
}

func (m *WebviewModel) statusBar() string {
	t := m.theme
	badge := t.Badge.Render(m.status)
	if m.status != "ready" {
		badge = t.BadgeMuted.Render(m.status)
	}
	parts := []string{badge, " ", t.Normal.Render(m.url)}
	if m.cursor != input.InteractionNone {
		parts = append(parts, " ", t.Subtle.Render(m.cursor.String()))
	}
	if m.shell.ime.Enabled {
		parts = append(parts, " ", t.Subtle.Render(fmt.Sprintf("ime %.0f,%.0f", m.shell.ime.Position.X, m.shell.ime.Position.Y)))
	}
	parts = append(parts, "  ", m.help.View(m.keys))
	return t.StatusBar.Width(m.width).MaxHeight(statusRows).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

var _ tea.Model = (*WebviewModel)(nil)
