package headless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/osrview/internal/domain/entity"
)

func TestPageSurrogatePairs(t *testing.T) {
	p := newPage("about:blank")
	assert.False(t, p.insertUnit(0xD83D), "high surrogate waits for its pair")
	assert.True(t, p.insertUnit(0xDE00))
	assert.Equal(t, "😀", string(p.text))

	assert.False(t, p.insertUnit(0xDE00), "lone low surrogate")
	assert.False(t, p.insertUnit('\r'), "control characters")
	assert.Equal(t, float32(16), p.caretOffset())
}

func TestPageUndoRedo(t *testing.T) {
	p := newPage("about:blank")
	p.insert("ab")
	p.insert("c")
	assert.True(t, p.backspace())
	assert.Equal(t, "ab", string(p.text))

	assert.True(t, p.undoEdit())
	assert.Equal(t, "abc", string(p.text))
	assert.True(t, p.undoEdit())
	assert.Equal(t, "ab", string(p.text))
	assert.True(t, p.redoEdit())
	assert.Equal(t, "abc", string(p.text))

	p.insert("d")
	assert.False(t, p.redoEdit(), "an edit clears the redo stack")
}

func TestPageSelectionEdits(t *testing.T) {
	p := newPage("about:blank")
	p.selectAll()
	assert.False(t, p.selected, "nothing to select")

	p.insert("hello")
	p.selectAll()
	p.copySelection()
	p.insert("x")
	assert.Equal(t, "x", string(p.text), "typing replaces the selection")
	assert.True(t, p.paste())
	assert.Equal(t, "xhello", string(p.text))
	assert.False(t, p.cut(), "no selection")
}

func TestBackgroundFor(t *testing.T) {
	assert.Equal(t, backgroundFor("about:blank"), backgroundFor(""))
	assert.Equal(t, backgroundFor("https://a.example"), backgroundFor("https://a.example"))
	assert.NotEqual(t, backgroundFor("https://a.example"), backgroundFor("https://b.example"))
}

func TestFieldAndDeviceRect(t *testing.T) {
	assert.Equal(t, entity.Rect{X: 24, Y: 64, Width: 40, Height: 32}, field(60), "minimum width")

	assert.Equal(t, entity.Rect{X: 36, Y: 96, Width: 228, Height: 48},
		deviceRect(entity.Rect{X: 24, Y: 64, Width: 152, Height: 32}, 1.5))
	assert.Equal(t, entity.Rect{X: 1, Y: 1, Width: 2, Height: 2},
		deviceRect(entity.Rect{X: 1, Y: 1, Width: 1, Height: 1}, 1.5))
}

func TestRasterizeUsesDeviceSize(t *testing.T) {
	p := newPage("https://example.com")
	img := p.rasterize(100, 80, 2, false)
	assert.Equal(t, 200, img.Rect.Dx())
	assert.Equal(t, 160, img.Rect.Dy())

	buf := bgra(img)
	assert.Len(t, buf, 200*160*4)
	assert.Equal(t, img.Pix[0], buf[2])
	assert.Equal(t, img.Pix[2], buf[0])
}

func TestSeededPreferences(t *testing.T) {
	p := newSeededPreferences(map[string]string{prefAcceptLanguages: "fr-FR"})
	v, ok := p.Get(prefAcceptLanguages)
	require.True(t, ok)
	assert.Equal(t, "fr-FR", v)

	require.NoError(t, p.SetPreference(prefAcceptLanguages, "de-DE"))
	v, _ = p.Get(prefAcceptLanguages)
	assert.Equal(t, "de-DE", v)

	assert.Error(t, p.SetPreference("zoom", 1.5))
	_, ok = p.Get(prefUserAgent)
	assert.False(t, ok)
}
