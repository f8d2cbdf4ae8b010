package entity

import "image"

// PaintElementType distinguishes the main view from popup widgets.
type PaintElementType int

const (
	// PaintView is the browser's main view.
	PaintView PaintElementType = iota
	// PaintPopup is a popup widget such as a select dropdown.
	PaintPopup
)

// ColorType is the pixel layout of a shared texture.
type ColorType int

const (
	// ColorBGRA8888 is the engine's default layout.
	ColorBGRA8888 ColorType = iota
	// ColorRGBA8888 is used on some GPU paths.
	ColorRGBA8888
)

// String returns a human-readable representation of the color type.
func (c ColorType) String() string {
	switch c {
	case ColorBGRA8888:
		return "bgra8888"
	case ColorRGBA8888:
		return "rgba8888"
	default:
		return "unknown"
	}
}

// SharedTextureHandle is an opaque platform handle to a GPU texture owned by
// the engine. It stays valid until the next accelerated paint for the same
// browser.
type SharedTextureHandle uintptr

// SharedTextureInfo describes an accelerated paint.
type SharedTextureInfo struct {
	Handle    SharedTextureHandle
	Format    ColorType
	CodedSize image.Point
}

// Texture is a GPU resource imported from a shared texture handle, ready to
// be bound by a full-screen quad pipeline.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() image.Point
	// Format returns the pixel layout.
	Format() ColorType
	// Release frees the imported resource. Calling it twice is harmless.
	Release()
}
