package headless

import "github.com/bnema/osrview/internal/application/port"

// contextMenu is the page's default menu.
type contextMenu struct {
	items []string
}

var _ port.MenuModel = (*contextMenu)(nil)

func newContextMenu(editable bool) *contextMenu {
	items := []string{"Back", "Forward", "Reload", "Inspect"}
	if editable {
		items = []string{"Undo", "Redo", "Cut", "Copy", "Paste", "Select All"}
	}
	return &contextMenu{items: items}
}

func (m *contextMenu) Clear() bool {
	m.items = nil
	return true
}

func (m *contextMenu) Count() int { return len(m.items) }
