package engine

import "github.com/bnema/osrview/internal/application/port"

type displayHandler struct {
	state *DisplayState
}

// dispatch stores cursor changes and reports them handled so the engine does
// not set a platform cursor on its own.
func (h *displayHandler) dispatch(cb port.DisplayCallback) bool {
	switch cb := cb.(type) {
	case port.CursorChange:
		h.state.setCursor(cb.Cursor)
		return true
	}
	return false
}
