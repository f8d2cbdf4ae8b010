package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmapImageSharesPixels(t *testing.T) {
	b := Bitmap{
		Pixels: []byte{1, 2, 3, 255, 4, 5, 6, 255},
		Width:  2,
		Height: 1,
	}

	img := b.Image()
	assert.Equal(t, color.RGBA{R: 4, G: 5, B: 6, A: 255}, img.RGBAAt(1, 0))

	b.Pixels[0] = 9
	assert.Equal(t, uint8(9), img.RGBAAt(0, 0).R)
}

func TestBitmapEmpty(t *testing.T) {
	assert.True(t, Bitmap{}.Empty())
	assert.True(t, Bitmap{Pixels: []byte{0, 0, 0, 0}, Width: 0, Height: 1}.Empty())
	assert.False(t, Bitmap{Pixels: []byte{0, 0, 0, 0}, Width: 1, Height: 1}.Empty())
}
