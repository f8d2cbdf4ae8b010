package engine

import (
	"sync"

	"github.com/bnema/osrview/internal/domain/entity"
)

// RenderState holds the latest frame of one browser. The render handler is
// the only writer and runs on the engine thread; the GUI thread reads through
// Snapshot and Texture and writes only the view rect and scale factor.
type RenderState struct {
	mu       sync.Mutex
	pixels   []byte
	width    int32
	height   int32
	viewRect entity.Rect
	scale    float32
	texture  entity.Texture
}

// NewRenderState creates an empty state for a view of the given geometry.
func NewRenderState(scale float32, view entity.Rect) *RenderState {
	if scale <= 0 {
		scale = 1
	}
	return &RenderState{scale: scale, viewRect: view}
}

func (s *RenderState) DeviceScaleFactor() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

func (s *RenderState) SetDeviceScaleFactor(scale float32) {
	if scale <= 0 {
		return
	}
	s.mu.Lock()
	s.scale = scale
	s.mu.Unlock()
}

func (s *RenderState) ViewRect() entity.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewRect
}

// SetViewRect stores r and reports whether it differs from the previous
// value. Last write wins against in-flight paints.
func (s *RenderState) SetViewRect(r entity.Rect) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.viewRect == r {
		return false
	}
	s.viewRect = r
	return true
}

// Size returns the dimensions of the last painted bitmap.
func (s *RenderState) Size() (width, height int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Snapshot copies the current bitmap. The copy is taken under the lock and
// can be uploaded afterwards without holding it.
func (s *RenderState) Snapshot() entity.Bitmap {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pixels) == 0 {
		return entity.Bitmap{}
	}
	pixels := make([]byte, len(s.pixels))
	copy(pixels, s.pixels)
	return entity.Bitmap{Pixels: pixels, Width: int(s.width), Height: int(s.height)}
}

// Texture returns the last imported shared texture, if any.
func (s *RenderState) Texture() entity.Texture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.texture
}

// Release drops the pixel buffer and the imported texture.
func (s *RenderState) Release() {
	s.mu.Lock()
	tex := s.texture
	s.texture = nil
	s.pixels = nil
	s.width, s.height = 0, 0
	s.mu.Unlock()

	if tex != nil {
		tex.Release()
	}
}

func (s *RenderState) setTexture(tex entity.Texture) {
	s.mu.Lock()
	prev := s.texture
	s.texture = tex
	size := tex.Size()
	s.width, s.height = int32(size.X), int32(size.Y)
	s.mu.Unlock()

	if prev != nil && prev != tex {
		prev.Release()
	}
}

// paintResult describes what applyPaint did.
type paintResult struct {
	full    bool
	patched int
}

// applyPaint copies a BGRA engine buffer into the RGBA store. The whole
// buffer is copied on the first paint or when the size changed; otherwise
// only the dirty rectangles, clipped to the bitmap, are patched. Pixels
// outside every dirty rectangle are left untouched.
func (s *RenderState) applyPaint(buf []byte, width, height int32, dirty []entity.Rect) (paintResult, bool) {
	if width <= 0 || height <= 0 {
		return paintResult{}, false
	}
	need := int(width) * int(height) * 4
	if len(buf) < need {
		return paintResult{}, false
	}
	buf = buf[:need]

	s.mu.Lock()
	defer s.mu.Unlock()

	sizeChanged := width != s.width || height != s.height
	s.width, s.height = width, height

	if len(s.pixels) == 0 || sizeChanged {
		pixels := make([]byte, need)
		swizzle(pixels, buf)
		s.pixels = pixels
		return paintResult{full: true}, true
	}

	var res paintResult
	stride := int(width) * 4
	for _, r := range dirty {
		x0, y0, x1, y1, ok := clip(r, width, height)
		if !ok {
			continue
		}
		for y := y0; y < y1; y++ {
			off := y*stride + x0*4
			end := y*stride + x1*4
			swizzle(s.pixels[off:end], buf[off:end])
		}
		res.patched++
	}
	return res, true
}

// clip intersects r with the bitmap bounds.
func clip(r entity.Rect, width, height int32) (x0, y0, x1, y1 int, ok bool) {
	left := clamp(r.X, 0, width)
	top := clamp(r.Y, 0, height)
	right := clamp(r.X+r.Width, 0, width)
	bottom := clamp(r.Y+r.Height, 0, height)
	if right <= left || bottom <= top {
		return 0, 0, 0, 0, false
	}
	return int(left), int(top), int(right), int(bottom), true
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// swizzle copies src into dst swapping the red and blue channels.
func swizzle(dst, src []byte) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		dst[i] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i]
		dst[i+3] = src[i+3]
	}
}

// DisplayState holds the last cursor shape reported by the engine.
type DisplayState struct {
	mu     sync.Mutex
	cursor entity.CursorType
}

// NewDisplayState creates a display state with the default pointer cursor.
func NewDisplayState() *DisplayState {
	return &DisplayState{cursor: entity.CursorPointer}
}

func (d *DisplayState) Cursor() entity.CursorType {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cursor
}

func (d *DisplayState) setCursor(c entity.CursorType) {
	d.mu.Lock()
	d.cursor = c
	d.mu.Unlock()
}
