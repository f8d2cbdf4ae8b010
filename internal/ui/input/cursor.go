package input

import "github.com/bnema/osrview/internal/domain/entity"

// Interaction is the mouse cursor a widget asks the GUI runtime to show.
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionIdle
	InteractionPointer
	InteractionGrab
	InteractionGrabbing
	InteractionText
	InteractionCrosshair
	InteractionWorking
	InteractionHelp
	InteractionCell
	InteractionMove
	InteractionCopy
	InteractionAlias
	InteractionContextMenu
	InteractionNotAllowed
	InteractionZoomIn
	InteractionZoomOut
	InteractionResizingHorizontally
	InteractionResizingVertically
	InteractionResizingDiagonallyUp
	InteractionResizingDiagonallyDown
	InteractionResizingColumn
	InteractionResizingRow
	InteractionAllScroll
	InteractionHidden
)

var interactionNames = [...]string{
	InteractionNone:                   "none",
	InteractionIdle:                   "idle",
	InteractionPointer:                "pointer",
	InteractionGrab:                   "grab",
	InteractionGrabbing:               "grabbing",
	InteractionText:                   "text",
	InteractionCrosshair:              "crosshair",
	InteractionWorking:                "working",
	InteractionHelp:                   "help",
	InteractionCell:                   "cell",
	InteractionMove:                   "move",
	InteractionCopy:                   "copy",
	InteractionAlias:                  "alias",
	InteractionContextMenu:            "context_menu",
	InteractionNotAllowed:             "not_allowed",
	InteractionZoomIn:                 "zoom_in",
	InteractionZoomOut:                "zoom_out",
	InteractionResizingHorizontally:   "resizing_horizontally",
	InteractionResizingVertically:     "resizing_vertically",
	InteractionResizingDiagonallyUp:   "resizing_diagonally_up",
	InteractionResizingDiagonallyDown: "resizing_diagonally_down",
	InteractionResizingColumn:         "resizing_column",
	InteractionResizingRow:            "resizing_row",
	InteractionAllScroll:              "all_scroll",
	InteractionHidden:                 "hidden",
}

// String returns a human-readable representation of the interaction.
func (i Interaction) String() string {
	if i < 0 || int(i) >= len(interactionNames) {
		return "unknown"
	}
	return interactionNames[i]
}

var cursorInteractions = map[entity.CursorType]Interaction{
	entity.CursorPointer:                  InteractionIdle,
	entity.CursorCross:                    InteractionCrosshair,
	entity.CursorHand:                     InteractionPointer,
	entity.CursorIBeam:                    InteractionText,
	entity.CursorVerticalText:             InteractionText,
	entity.CursorWait:                     InteractionWorking,
	entity.CursorProgress:                 InteractionWorking,
	entity.CursorHelp:                     InteractionHelp,
	entity.CursorCell:                     InteractionCell,
	entity.CursorMove:                     InteractionMove,
	entity.CursorCopy:                     InteractionCopy,
	entity.CursorDragDropCopy:             InteractionCopy,
	entity.CursorAlias:                    InteractionAlias,
	entity.CursorDragDropLink:             InteractionAlias,
	entity.CursorContextMenu:              InteractionContextMenu,
	entity.CursorNoDrop:                   InteractionNotAllowed,
	entity.CursorNotAllowed:               InteractionNotAllowed,
	entity.CursorDragDropNone:             InteractionNotAllowed,
	entity.CursorDragDropMove:             InteractionMove,
	entity.CursorZoomIn:                   InteractionZoomIn,
	entity.CursorZoomOut:                  InteractionZoomOut,
	entity.CursorGrab:                     InteractionGrab,
	entity.CursorGrabbing:                 InteractionGrabbing,
	entity.CursorEastResize:               InteractionResizingHorizontally,
	entity.CursorWestResize:               InteractionResizingHorizontally,
	entity.CursorEastWestResize:           InteractionResizingHorizontally,
	entity.CursorNorthResize:              InteractionResizingVertically,
	entity.CursorSouthResize:              InteractionResizingVertically,
	entity.CursorNorthSouthResize:         InteractionResizingVertically,
	entity.CursorNorthEastResize:          InteractionResizingDiagonallyUp,
	entity.CursorSouthWestResize:          InteractionResizingDiagonallyUp,
	entity.CursorNorthEastSouthWestResize: InteractionResizingDiagonallyUp,
	entity.CursorNorthWestResize:          InteractionResizingDiagonallyDown,
	entity.CursorSouthEastResize:          InteractionResizingDiagonallyDown,
	entity.CursorNorthWestSouthEastResize: InteractionResizingDiagonallyDown,
	entity.CursorColumnResize:             InteractionResizingColumn,
	entity.CursorRowResize:                InteractionResizingRow,
	entity.CursorMiddlePanning:            InteractionAllScroll,
	entity.CursorMiddlePanningVertical:    InteractionAllScroll,
	entity.CursorMiddlePanningHorizontal:  InteractionAllScroll,
	entity.CursorEastPanning:              InteractionAllScroll,
	entity.CursorNorthPanning:             InteractionAllScroll,
	entity.CursorNorthEastPanning:         InteractionAllScroll,
	entity.CursorNorthWestPanning:         InteractionAllScroll,
	entity.CursorSouthPanning:             InteractionAllScroll,
	entity.CursorSouthEastPanning:         InteractionAllScroll,
	entity.CursorSouthWestPanning:         InteractionAllScroll,
	entity.CursorWestPanning:              InteractionAllScroll,
	entity.CursorNone:                     InteractionHidden,
}

// InteractionFor maps an engine cursor onto a GUI interaction. Custom and
// unknown cursors fall back to the default arrow.
func InteractionFor(c entity.CursorType) Interaction {
	if i, ok := cursorInteractions[c]; ok {
		return i
	}
	return InteractionIdle
}
