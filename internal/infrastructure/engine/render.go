package engine

import (
	"context"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/infrastructure/metrics"
	"github.com/bnema/osrview/internal/logging"
)

type renderHandler struct {
	ctx      context.Context
	state    *RenderState
	importer port.TextureImporter
	tx       sender[entity.Frame]
}

func (h *renderHandler) dispatch(cb port.RenderCallback) port.RenderReply {
	switch cb := cb.(type) {
	case port.GetViewRect:
		// Leave the engine default in place until layout produced a real size.
		r := h.state.ViewRect()
		if r.Width > 0 && r.Height > 0 {
			return port.RenderReply{Handled: true, ViewRect: r}
		}
	case port.GetScreenInfo:
		r := h.state.ViewRect()
		return port.RenderReply{
			Handled: true,
			Screen: port.ScreenInfo{
				DeviceScaleFactor: h.state.DeviceScaleFactor(),
				Rect:              r,
				AvailableRect:     r,
			},
		}
	case port.GetScreenPoint:
	case port.Paint:
		h.paint(cb)
	case port.AcceleratedPaint:
		h.acceleratedPaint(cb)
	}
	return port.RenderReply{}
}

func (h *renderHandler) paint(p port.Paint) {
	if !p.Browser.Valid || p.Element != entity.PaintView {
		return
	}

	res, ok := h.state.applyPaint(p.Buffer, p.Width, p.Height, p.DirtyRects)
	if !ok {
		logging.FromContext(h.ctx).Warn().
			Int32("width", p.Width).
			Int32("height", p.Height).
			Int("buffer_len", len(p.Buffer)).
			Msg("ignoring paint with inconsistent buffer")
		return
	}

	metrics.RecordFrame("bitmap")
	metrics.RecordDirtyRects(res.patched)
	send(h.ctx, "frame", h.tx, entity.Frame{BrowserID: p.Browser.ID})
}

func (h *renderHandler) acceleratedPaint(p port.AcceleratedPaint) {
	if !p.Browser.Valid || p.Element != entity.PaintView {
		return
	}
	log := logging.FromContext(h.ctx)
	if h.importer == nil {
		log.Warn().Msg("accelerated paint without a texture importer")
		return
	}

	tex, err := h.importer.Import(p.Info)
	if err != nil {
		log.Error().Err(err).Str("format", p.Info.Format.String()).Msg("failed to import shared texture")
		return
	}
	h.state.setTexture(tex)

	metrics.RecordFrame("texture")
	send(h.ctx, "frame", h.tx, entity.Frame{BrowserID: p.Browser.ID, Texture: tex})
}
