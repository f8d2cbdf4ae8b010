package engine

import "github.com/bnema/osrview/internal/application/port"

type contextMenuHandler struct{}

// dispatch empties the menu model, which suppresses the native menu.
func (contextMenuHandler) dispatch(cb port.ContextMenuCallback) {
	switch cb := cb.(type) {
	case port.BeforeContextMenu:
		if cb.Model != nil {
			cb.Model.Clear()
		}
	}
}
