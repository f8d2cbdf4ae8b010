package entity

import "image"

// Bitmap is a CPU frame in RGBA order, row-major, 4 bytes per pixel.
type Bitmap struct {
	Pixels []byte
	Width  int
	Height int
}

// Empty reports whether the bitmap holds no frame.
func (b Bitmap) Empty() bool {
	return len(b.Pixels) == 0 || b.Width <= 0 || b.Height <= 0
}

// Image wraps the pixels without copying.
func (b Bitmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pixels,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
