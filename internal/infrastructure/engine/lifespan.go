package engine

import (
	"context"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/logging"
)

type lifeSpanHandler struct {
	ctx    context.Context
	launch entity.LaunchID
	tx     sender[entity.LifeSpanEvent]
}

func (h *lifeSpanHandler) dispatch(cb port.LifeSpanCallback) bool {
	switch cb := cb.(type) {
	case port.AfterCreated:
		if !cb.Browser.Valid {
			return false
		}
		send(h.ctx, "lifespan", h.tx, entity.LifeSpanEvent(entity.LifeSpanCreated{
			Launch:    h.launch,
			BrowserID: cb.Browser.ID,
		}))
	case port.BeforeClose:
		if !cb.Browser.Valid {
			return false
		}
		send(h.ctx, "lifespan", h.tx, entity.LifeSpanEvent(entity.LifeSpanClosed{
			BrowserID: cb.Browser.ID,
		}))
	case port.BeforePopup:
		logging.FromContext(h.ctx).Debug().
			Str("url", cb.TargetURL).
			Str("frame", cb.TargetFrameName).
			Msg("suppressing popup")
		return true
	}
	return false
}
