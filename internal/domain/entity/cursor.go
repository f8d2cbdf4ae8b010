package entity

// CursorType is the cursor shape reported by the engine.
type CursorType int

// Cursor shapes, in engine order.
const (
	CursorPointer CursorType = iota
	CursorCross
	CursorHand
	CursorIBeam
	CursorWait
	CursorHelp
	CursorEastResize
	CursorNorthResize
	CursorNorthEastResize
	CursorNorthWestResize
	CursorSouthResize
	CursorSouthEastResize
	CursorSouthWestResize
	CursorWestResize
	CursorNorthSouthResize
	CursorEastWestResize
	CursorNorthEastSouthWestResize
	CursorNorthWestSouthEastResize
	CursorColumnResize
	CursorRowResize
	CursorMiddlePanning
	CursorEastPanning
	CursorNorthPanning
	CursorNorthEastPanning
	CursorNorthWestPanning
	CursorSouthPanning
	CursorSouthEastPanning
	CursorSouthWestPanning
	CursorWestPanning
	CursorMove
	CursorVerticalText
	CursorCell
	CursorContextMenu
	CursorAlias
	CursorProgress
	CursorNoDrop
	CursorCopy
	CursorNone
	CursorNotAllowed
	CursorZoomIn
	CursorZoomOut
	CursorGrab
	CursorGrabbing
	CursorMiddlePanningVertical
	CursorMiddlePanningHorizontal
	CursorCustom
	CursorDragDropNone
	CursorDragDropMove
	CursorDragDropCopy
	CursorDragDropLink
)

var cursorNames = [...]string{
	"pointer", "cross", "hand", "ibeam", "wait", "help",
	"e-resize", "n-resize", "ne-resize", "nw-resize", "s-resize", "se-resize",
	"sw-resize", "w-resize", "ns-resize", "ew-resize", "nesw-resize", "nwse-resize",
	"col-resize", "row-resize",
	"middle-panning", "e-panning", "n-panning", "ne-panning", "nw-panning",
	"s-panning", "se-panning", "sw-panning", "w-panning",
	"move", "vertical-text", "cell", "context-menu", "alias", "progress",
	"no-drop", "copy", "none", "not-allowed", "zoom-in", "zoom-out",
	"grab", "grabbing", "middle-panning-vertical", "middle-panning-horizontal",
	"custom", "dnd-none", "dnd-move", "dnd-copy", "dnd-link",
}

// String returns the CSS-like cursor name.
func (c CursorType) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return "unknown"
	}
	return cursorNames[c]
}
