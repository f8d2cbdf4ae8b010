package engine

import (
	"context"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/logging"
)

// Windows virtual key codes recognized in delegate mode.
const (
	vkA   = 0x41
	vkC   = 0x43
	vkV   = 0x56
	vkX   = 0x58
	vkY   = 0x59
	vkZ   = 0x5A
	vkF12 = 0x7B
)

type keyboardHandler struct {
	ctx      context.Context
	mode     KeyboardMode
	modifier port.EventFlags
	engine   port.Engine
}

func (h *keyboardHandler) setPolicy(mode KeyboardMode, modifier port.EventFlags) {
	if modifier == 0 {
		modifier = port.EventFlagControlDown
	}
	h.mode, h.modifier = mode, modifier
}

func (h *keyboardHandler) dispatch(cb port.KeyboardCallback) port.KeyboardReply {
	if h.mode != KeyboardDelegate {
		return port.KeyboardReply{}
	}
	switch cb := cb.(type) {
	case port.PreKey:
		return port.KeyboardReply{IsKeyboardShortcut: h.isShortcut(cb.Event)}
	case port.Key:
		if !cb.Browser.Valid || cb.Event.Type != port.KeyEventRawKeyDown {
			return port.KeyboardReply{}
		}
		return port.KeyboardReply{Handled: h.execute(cb)}
	}
	return port.KeyboardReply{}
}

func (h *keyboardHandler) isShortcut(ev port.KeyEvent) bool {
	if ev.Type != port.KeyEventRawKeyDown {
		return false
	}
	switch ev.WindowsKeyCode {
	case vkA, vkC, vkV, vkX, vkY, vkZ:
		return ev.Modifiers.Has(h.modifier)
	case vkF12:
		return true
	}
	return false
}

func (h *keyboardHandler) execute(cb port.Key) bool {
	if h.engine == nil {
		return false
	}
	host, ok := h.engine.Host(cb.Browser.ID)
	if !ok {
		return false
	}

	if cb.Event.Modifiers.Has(h.modifier) {
		frame, ok := host.FocusedFrame()
		if !ok {
			return false
		}
		switch cb.Event.WindowsKeyCode {
		case vkA:
			frame.SelectAll()
		case vkZ:
			frame.Undo()
		case vkX:
			frame.Cut()
		case vkC:
			frame.Copy()
		case vkV:
			frame.Paste()
		case vkY:
			frame.Redo()
		default:
			return false
		}
		return true
	}

	if cb.Event.WindowsKeyCode == vkF12 {
		if host.HasDevTools() {
			host.CloseDevTools()
		} else {
			host.ShowDevTools()
		}
		logging.FromContext(h.ctx).Debug().Bool("open", host.HasDevTools()).Msg("toggled dev tools")
		return true
	}
	return false
}
