package headless

import (
	"hash/fnv"
	"image"
	"math"
	"net/url"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/bnema/osrview/internal/domain/entity"
)

// Page layout in logical pixels.
const (
	headerHeight = 40
	fieldX       = 24
	fieldY       = 64
	fieldHeight  = 32
	fieldPadding = 8
	glyphWidth   = 8
	glyphHeight  = 14
	stripeEvery  = 48
	maxUndo      = 64
)

// supportedSchemes are the URL schemes the page loads; anything else fails
// with an unknown scheme error.
var supportedSchemes = map[string]bool{
	"http": true, "https": true, "about": true, "data": true, "file": true,
}

// page is the synthetic document of one browser: a header bar, scrolling
// stripes and a single text field.
type page struct {
	url        string
	background gg.RGBA

	text        []rune
	composition []rune
	selected    bool
	editing     bool
	scroll      float64
	surrogate   uint16
	undo        [][]rune
	redo        [][]rune
	clipboard   string
}

func newPage(raw string) *page {
	return &page{url: raw, background: backgroundFor(raw)}
}

// loadable reports whether the URL scheme is supported.
func (p *page) loadable() bool {
	u, err := url.Parse(p.url)
	if err != nil {
		return false
	}
	return supportedSchemes[u.Scheme]
}

// backgroundFor derives a stable pastel color from the URL.
func backgroundFor(raw string) gg.RGBA {
	if raw == "" || raw == "about:blank" {
		return gg.RGB(1, 1, 1)
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(raw))
	sum := h.Sum32()
	channel := func(shift uint) float64 {
		return 0.6 + float64((sum>>shift)&0xff)/255*0.35
	}
	return gg.RGB(channel(0), channel(8), channel(16))
}

// field returns the text field rectangle for a view of width w.
func field(w int32) entity.Rect {
	width := w - 2*fieldX
	if width < 40 {
		width = 40
	}
	return entity.Rect{X: fieldX, Y: fieldY, Width: width, Height: fieldHeight}
}

func (p *page) contains(w int32, x, y int32) bool {
	f := field(w)
	return x >= f.X && x < f.X+f.Width && y >= f.Y && y < f.Y+f.Height
}

// caretOffset is the caret position relative to the field's left edge.
func (p *page) caretOffset() float32 {
	return float32(fieldPadding + glyphWidth*(len(p.text)+len(p.composition)))
}

func (p *page) checkpoint() {
	snapshot := append([]rune(nil), p.text...)
	p.undo = append(p.undo, snapshot)
	if len(p.undo) > maxUndo {
		p.undo = p.undo[1:]
	}
	p.redo = nil
}

// insert replaces the selection, if any, with s.
func (p *page) insert(s string) {
	if s == "" {
		return
	}
	p.checkpoint()
	if p.selected {
		p.text = nil
		p.selected = false
	}
	p.text = append(p.text, []rune(s)...)
}

// finishComposition appends the pending composition to the text. The
// selection survives only when keepSelection is set.
func (p *page) finishComposition(keepSelection bool) {
	if len(p.composition) == 0 {
		return
	}
	p.checkpoint()
	p.text = append(p.text, p.composition...)
	p.composition = nil
	if !keepSelection {
		p.selected = false
	}
}

// insertUnit appends one UTF-16 code unit, pairing surrogates.
func (p *page) insertUnit(u uint16) bool {
	switch {
	case u >= 0xD800 && u < 0xDC00:
		p.surrogate = u
		return false
	case u >= 0xDC00 && u < 0xE000:
		if p.surrogate == 0 {
			return false
		}
		r := (rune(p.surrogate)-0xD800)<<10 + (rune(u) - 0xDC00) + 0x10000
		p.surrogate = 0
		p.insert(string(r))
		return true
	case u < 0x20 || u == 0x7f:
		return false
	}
	p.surrogate = 0
	p.insert(string(rune(u)))
	return true
}

func (p *page) backspace() bool {
	if len(p.text) == 0 {
		return false
	}
	p.checkpoint()
	if p.selected {
		p.text = nil
		p.selected = false
		return true
	}
	p.text = p.text[:len(p.text)-1]
	return true
}

func (p *page) selectAll() {
	p.selected = len(p.text) > 0
}

func (p *page) copySelection() {
	if p.selected {
		p.clipboard = string(p.text)
	}
}

func (p *page) cut() bool {
	if !p.selected {
		return false
	}
	p.copySelection()
	p.checkpoint()
	p.text = nil
	p.selected = false
	return true
}

func (p *page) paste() bool {
	if p.clipboard == "" {
		return false
	}
	p.insert(p.clipboard)
	return true
}

func (p *page) undoEdit() bool {
	if len(p.undo) == 0 {
		return false
	}
	p.redo = append(p.redo, p.text)
	p.text = p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]
	p.selected = false
	return true
}

func (p *page) redoEdit() bool {
	if len(p.redo) == 0 {
		return false
	}
	p.undo = append(p.undo, p.text)
	p.text = p.redo[len(p.redo)-1]
	p.redo = p.redo[:len(p.redo)-1]
	p.selected = false
	return true
}

// rasterize draws the page for a w×h logical view at the given scale and
// returns the device-pixel image.
func (p *page) rasterize(w, h int32, scale float32, focused bool) *image.RGBA {
	devW := int(math.Ceil(float64(w) * float64(scale)))
	devH := int(math.Ceil(float64(h) * float64(scale)))

	dc := gg.NewContext(devW, devH)
	defer dc.Close()

	dc.ClearWithColor(p.background)
	dc.Scale(float64(scale), float64(scale))

	dc.SetRGBA(1, 1, 1, 0.12)
	offset := math.Mod(p.scroll, stripeEvery)
	for y := float64(headerHeight) - offset; y < float64(h); y += stripeEvery {
		dc.DrawRectangle(0, y, float64(w), stripeEvery/2)
		_ = dc.Fill()
	}

	dc.SetRGBA(0, 0, 0, 0.18)
	dc.DrawRectangle(0, 0, float64(w), headerHeight)
	_ = dc.Fill()

	f := field(w)
	fx, fy, fw, fh := float64(f.X), float64(f.Y), float64(f.Width), float64(f.Height)
	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(fx, fy, fw, fh, 4)
	_ = dc.Fill()

	dc.SetLineWidth(1)
	if p.editing {
		dc.SetRGB(0.2, 0.4, 0.9)
	} else {
		dc.SetRGB(0.6, 0.6, 0.6)
	}
	dc.DrawRoundedRectangle(fx+0.5, fy+0.5, fw-1, fh-1, 4)
	_ = dc.Stroke()

	glyphTop := fy + (fh-glyphHeight)/2
	if p.selected {
		dc.SetRGBA(0.2, 0.4, 0.9, 0.3)
		dc.DrawRectangle(fx+fieldPadding, glyphTop-2, float64(glyphWidth*len(p.text)), glyphHeight+4)
		_ = dc.Fill()
	}

	// Glyphs are drawn as blocks; spaces stay empty.
	dc.SetRGB(0.1, 0.1, 0.1)
	x := fx + fieldPadding
	for _, r := range p.text {
		if r != ' ' {
			dc.DrawRectangle(x+1, glyphTop, glyphWidth-2, glyphHeight)
			_ = dc.Fill()
		}
		x += glyphWidth
	}

	if len(p.composition) > 0 {
		dc.SetRGB(0.35, 0.35, 0.35)
		start := x
		for range p.composition {
			dc.DrawRectangle(x+1, glyphTop+2, glyphWidth-2, glyphHeight-4)
			_ = dc.Fill()
			x += glyphWidth
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawLine(start, glyphTop+glyphHeight+1, x, glyphTop+glyphHeight+1)
		_ = dc.Stroke()
	}

	if p.editing && focused {
		dc.SetRGB(0, 0, 0)
		dc.DrawLine(x+0.5, fy+6, x+0.5, fy+fh-6)
		_ = dc.Stroke()
	}

	return toRGBA(dc.Image())
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}

// bgra converts img to the engine's BGRA byte order.
func bgra(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dst := out[y*w*4 : (y+1)*w*4]
		for i := 0; i < len(row); i += 4 {
			dst[i] = row[i+2]
			dst[i+1] = row[i+1]
			dst[i+2] = row[i]
			dst[i+3] = row[i+3]
		}
	}
	return out
}

// deviceRect scales a logical rect to device pixels, rounding outwards.
func deviceRect(r entity.Rect, scale float32) entity.Rect {
	s := float64(scale)
	x0 := int32(math.Floor(float64(r.X) * s))
	y0 := int32(math.Floor(float64(r.Y) * s))
	x1 := int32(math.Ceil(float64(r.X+r.Width) * s))
	y1 := int32(math.Ceil(float64(r.Y+r.Height) * s))
	return entity.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
