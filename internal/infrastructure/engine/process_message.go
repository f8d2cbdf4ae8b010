package engine

import (
	"context"
	"encoding/json"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/logging"
)

// Renderer process message names.
const (
	MessageCaretOffsetChanged = "renderer.caret_offset_changed"
	MessageFocusedNode        = "renderer.focused_node"
)

type caretOffsetPayload struct {
	Offset *float32 `json:"offset"`
}

type focusedNodePayload struct {
	X      *float32 `json:"x"`
	Y      *float32 `json:"y"`
	Width  *float32 `json:"width"`
	Height *float32 `json:"height"`
}

type processMessageHandler struct {
	ctx   context.Context
	state *RenderState
	tx    sender[entity.IPCMessage]
}

// dispatch decodes the two known renderer messages. Unknown names and
// malformed payloads are reported unhandled and enqueue nothing.
func (h *processMessageHandler) dispatch(msg port.ProcessMessage) bool {
	if !msg.Browser.Valid || len(msg.Args) == 0 {
		return false
	}
	log := logging.FromContext(h.ctx)

	switch msg.Name {
	case MessageCaretOffsetChanged:
		var p caretOffsetPayload
		if err := json.Unmarshal([]byte(msg.Args[0]), &p); err != nil || p.Offset == nil {
			log.Debug().Err(err).Str("name", msg.Name).Msg("malformed process message")
			return false
		}
		send(h.ctx, "ipc", h.tx, entity.IPCMessage(entity.CaretOffsetChanged{
			BrowserID: msg.Browser.ID,
			Offset:    *p.Offset,
		}))
		return true

	case MessageFocusedNode:
		var p focusedNodePayload
		err := json.Unmarshal([]byte(msg.Args[0]), &p)
		if err != nil || p.X == nil || p.Y == nil || p.Width == nil || p.Height == nil {
			log.Debug().Err(err).Str("name", msg.Name).Msg("malformed process message")
			return false
		}
		// The renderer reports device pixels; the GUI works in logical ones.
		scale := h.state.DeviceScaleFactor()
		send(h.ctx, "ipc", h.tx, entity.IPCMessage(entity.FocusedNodeChanged{
			BrowserID: msg.Browser.ID,
			Rect: entity.Rectangle{
				X:      *p.X / scale,
				Y:      *p.Y / scale,
				Width:  *p.Width / scale,
				Height: *p.Height / scale,
			},
		}))
		return true
	}
	return false
}
