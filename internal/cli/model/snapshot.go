package model

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"
	"github.com/rs/zerolog"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/logging"
	"github.com/bnema/osrview/internal/ui/component"
	"github.com/bnema/osrview/internal/ui/controller"
	"github.com/bnema/osrview/internal/ui/mainloop"
)

// ErrNoFrame is returned when the page finished without producing a frame.
var ErrNoFrame = errors.New("no frame to capture")

// ImageFormat selects the snapshot encoding.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)

const jpegQuality = 90

// imageRenderer keeps the last frame a widget drew.
type imageRenderer struct {
	img image.Image
}

func (r *imageRenderer) DrawImage(bitmap entity.Bitmap, _ entity.Rectangle) {
	r.img = bitmap.Image()
}

func (r *imageRenderer) DrawTexture(tex entity.Texture, _ entity.Rectangle) {
	r.img = nil
	if t, ok := tex.(interface{ Image() image.Image }); ok {
		r.img = t.Image()
	}
}

func (r *imageRenderer) DrawPlaceholder(entity.Rectangle) {
	r.img = nil
}

var _ port.Renderer = (*imageRenderer)(nil)

// SnapshotOptions configures a SnapshotModel.
type SnapshotOptions struct {
	URL         string
	Bounds      entity.Rectangle
	ScaleFactor float32
	Format      ImageFormat
	Widget      component.WebviewOptions
	Trace       *logging.StartupTrace
}

// SnapshotModel loads one page off-screen, writes its first complete frame
// to an image and closes the browser. It runs on a mainloop.Loop.
type SnapshotModel struct {
	ctx    context.Context
	logger *zerolog.Logger
	ctrl   *controller.WebviewController
	engine port.Engine
	opts   SnapshotOptions
	out    io.Writer

	launch   entity.LaunchID
	view     *component.Webview
	renderer imageRenderer
	loaded   bool
	written  bool
}

// NewSnapshotModel creates a snapshot model writing to out.
func NewSnapshotModel(
	ctx context.Context,
	ctrl *controller.WebviewController,
	eng port.Engine,
	out io.Writer,
	opts SnapshotOptions,
) *SnapshotModel {
	ctx = logging.WithComponent(ctx, "snapshot")
	return &SnapshotModel{
		ctx:    ctx,
		logger: logging.FromContext(ctx),
		ctrl:   ctrl,
		engine: eng,
		opts:   opts,
		out:    out,
	}
}

// Written reports whether the image was written.
func (m *SnapshotModel) Written() bool {
	return m.written
}

// Init implements mainloop.Model.
func (m *SnapshotModel) Init() tea.Cmd {
	create := controller.CreateMsg{URL: m.opts.URL, Bounds: m.opts.Bounds, ScaleFactor: m.opts.ScaleFactor}
	return tea.Batch(m.ctrl.Init(), func() tea.Msg { return create })
}

// Update implements mainloop.Model.
func (m *SnapshotModel) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(captureMsg); ok {
		return m.capture()
	}
	action := m.ctrl.Update(msg)
	cmds := []tea.Cmd{action.Cmd}

	switch action.Kind {
	case controller.ActionRun:
		if _, ok := msg.(controller.CreateMsg); ok {
			m.launch = action.Launch
		}
	case controller.ActionLaunchFailed:
		return fail(action.Err)
	case controller.ActionCreated:
		if action.Launch == m.launch {
			m.view = component.NewWebview(m.ctx, action.BrowserID, m.ctrl.Registry(), m.engine, m.opts.Widget)
			m.view.Layout(m.opts.Bounds)
			m.opts.Trace.Mark("browser_created")
		}
	case controller.ActionLoaded:
		m.loaded = true
		cmds = append(cmds, requestCapture)
	case controller.ActionUpdateView:
		if m.loaded {
			cmds = append(cmds, requestCapture)
		}
	case controller.ActionClosed:
		if m.ctrl.Live() > 0 {
			break
		}
		if !m.written {
			return fail(ErrNoFrame)
		}
		cmds = append(cmds, tea.Quit)
	}
	return tea.Batch(cmds...)
}

type captureMsg struct{}

// requestCapture merges a burst of frame notifications into one capture.
func requestCapture() tea.Msg {
	return mainloop.CoalescedMsg{Key: "capture", Msg: captureMsg{}}
}

// capture writes the current frame once and starts closing the browser.
func (m *SnapshotModel) capture() tea.Cmd {
	if m.written || m.view == nil {
		return nil
	}
	m.view.Draw(&m.renderer)
	if m.renderer.img == nil {
		return nil
	}
	if err := m.encode(m.renderer.img); err != nil {
		return fail(err)
	}
	m.written = true
	m.opts.Trace.Finish("first_frame")
	size := m.renderer.img.Bounds().Size()
	m.logger.Info().Int("width", size.X).Int("height", size.Y).Msg("snapshot written")

	cmd := m.ctrl.CloseAll()
	if m.ctrl.Live() == 0 {
		return tea.Batch(cmd, tea.Quit)
	}
	return cmd
}

func (m *SnapshotModel) encode(img image.Image) error {
	dc := gg.NewContextForImage(img)
	defer dc.Close()

	var err error
	switch m.opts.Format {
	case FormatJPEG:
		err = dc.EncodeJPEG(m.out, jpegQuality)
	default:
		err = dc.EncodePNG(m.out)
	}
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func fail(err error) tea.Cmd {
	return func() tea.Msg { return mainloop.ErrorMsg{Err: err} }
}

var _ mainloop.Model = (*SnapshotModel)(nil)
