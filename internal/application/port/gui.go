package port

import "github.com/bnema/osrview/internal/domain/entity"

// InputMethodPurpose hints the kind of text being edited.
type InputMethodPurpose int

const (
	InputPurposeNormal InputMethodPurpose = iota
	InputPurposeSecure
	InputPurposeTerminal
)

// InputMethod is the IME state a widget requests from the GUI runtime.
type InputMethod struct {
	Enabled  bool
	Position entity.Point
	Purpose  InputMethodPurpose
}

// Shell is the per-event handle a widget uses to talk back to the GUI runtime.
type Shell interface {
	RequestRedraw()
	RequestInputMethod(im InputMethod)
	// CaptureEvent marks the current event as consumed by the widget.
	CaptureEvent()
}

// WindowInfoProvider queries the host window a webview is shown in.
type WindowInfoProvider interface {
	Position() entity.Point
	Size() entity.Size
	ScaleFactor() float32
	RawHandle() WindowHandle
}

// Renderer is the drawing surface a widget presents its frame on.
type Renderer interface {
	// DrawImage draws an RGBA bitmap scaled to bounds.
	DrawImage(bitmap entity.Bitmap, bounds entity.Rectangle)
	// DrawTexture draws an imported GPU texture as a textured quad.
	DrawTexture(tex entity.Texture, bounds entity.Rectangle)
	// DrawPlaceholder fills bounds while no frame is available.
	DrawPlaceholder(bounds entity.Rectangle)
}
