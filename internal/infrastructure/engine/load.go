package engine

import (
	"context"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
)

type loadHandler struct {
	ctx context.Context
	tx  sender[entity.LoadEvent]
}

func loadSource(b port.BrowserRef, f port.FrameRef) entity.LoadSource {
	src := entity.LoadSource{BrowserID: b.ID, HasBrowser: b.Valid}
	if f.Valid {
		src.FrameID = f.ID
		src.IsMainFrame = f.IsMain
	}
	return src
}

func (h *loadHandler) dispatch(cb port.LoadCallback) {
	var ev entity.LoadEvent
	switch cb := cb.(type) {
	case port.LoadingStateChange:
		ev = entity.LoadingStateChanged{
			LoadSource:   loadSource(cb.Browser, port.FrameRef{}),
			IsLoading:    cb.IsLoading,
			CanGoBack:    cb.CanGoBack,
			CanGoForward: cb.CanGoForward,
		}
	case port.LoadStart:
		ev = entity.LoadStarted{
			LoadSource:     loadSource(cb.Browser, cb.Frame),
			TransitionType: cb.TransitionType,
		}
	case port.LoadEnd:
		ev = entity.LoadEnded{
			LoadSource:     loadSource(cb.Browser, cb.Frame),
			HTTPStatusCode: cb.HTTPStatusCode,
		}
	case port.LoadError:
		ev = entity.LoadFailed{
			LoadSource: loadSource(cb.Browser, cb.Frame),
			ErrorCode:  cb.ErrorCode,
			ErrorText:  cb.ErrorText,
			FailedURL:  cb.FailedURL,
		}
	default:
		return
	}
	send(h.ctx, "load", h.tx, ev)
}
