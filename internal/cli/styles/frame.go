package styles

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
)

// Terminal cell size in logical pixels. A cell shows two vertically stacked
// frame pixels through an upper half block.
const (
	CellWidth  = 8
	CellHeight = 16
)

const halfBlock = "▀"

// imageTexture is implemented by textures that can be read back on the CPU.
type imageTexture interface {
	Image() image.Image
}

// FrameRenderer draws webview frames as half-block terminal cells.
type FrameRenderer struct {
	theme  *Theme
	scaler draw.Scaler
	out    string
}

var _ port.Renderer = (*FrameRenderer)(nil)

// NewFrameRenderer creates a renderer using theme for placeholders.
func NewFrameRenderer(theme *Theme) *FrameRenderer {
	return &FrameRenderer{theme: theme, scaler: draw.ApproxBiLinear}
}

// Cells converts logical bounds to a cell grid.
func Cells(bounds entity.Rectangle) (cols, rows int) {
	return int(bounds.Width) / CellWidth, int(bounds.Height) / CellHeight
}

// BoundsForCells returns the logical size of a cols×rows grid.
func BoundsForCells(cols, rows int) entity.Rectangle {
	return entity.Rectangle{Width: float32(cols * CellWidth), Height: float32(rows * CellHeight)}
}

// CellCenter returns the logical position at the center of a cell.
func CellCenter(col, row int) entity.Point {
	return entity.Point{
		X: float32(col*CellWidth + CellWidth/2),
		Y: float32(row*CellHeight + CellHeight/2),
	}
}

func (r *FrameRenderer) DrawImage(bitmap entity.Bitmap, bounds entity.Rectangle) {
	if bitmap.Empty() {
		r.DrawPlaceholder(bounds)
		return
	}
	r.out = r.render(bitmap.Image(), bounds)
}

func (r *FrameRenderer) DrawTexture(tex entity.Texture, bounds entity.Rectangle) {
	if t, ok := tex.(imageTexture); ok {
		if img := t.Image(); img != nil {
			r.out = r.render(img, bounds)
			return
		}
	}
	r.DrawPlaceholder(bounds)
}

func (r *FrameRenderer) DrawPlaceholder(bounds entity.Rectangle) {
	cols, rows := Cells(bounds)
	if cols <= 0 || rows <= 0 {
		r.out = ""
		return
	}
	line := r.theme.Placeholder.Render(strings.Repeat("░", cols))
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	r.out = strings.Join(lines, "\n")
}

// String returns the last drawn frame.
func (r *FrameRenderer) String() string {
	return r.out
}

func (r *FrameRenderer) render(img image.Image, bounds entity.Rectangle) string {
	cols, rows := Cells(bounds)
	if cols <= 0 || rows <= 0 {
		return ""
	}
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	r.scaler.Scale(dst, dst.Rect, img, img.Bounds(), draw.Src, nil)

	var sb strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		// Adjacent cells with the same colors share one styled run.
		var run int
		var fg, bg color.RGBA
		flush := func() {
			if run == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(hex(fg)).Background(hex(bg))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, run)))
			run = 0
		}
		for x := 0; x < cols; x++ {
			top, bottom := dst.RGBAAt(x, 2*y), dst.RGBAAt(x, 2*y+1)
			if run > 0 && (top != fg || bottom != bg) {
				flush()
			}
			fg, bg = top, bottom
			run++
		}
		flush()
	}
	return sb.String()
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
