package headless

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/domain/entity"
)

// ErrUnknownTexture is returned when importing a handle that was never
// published or has been superseded.
var ErrUnknownTexture = errors.New("unknown shared texture handle")

// TexturePool stands in for GPU shared memory: each browser owns at most one
// published frame, and publishing a new one invalidates the previous handle.
type TexturePool struct {
	mu        sync.Mutex
	next      entity.SharedTextureHandle
	frames    map[entity.SharedTextureHandle]*image.RGBA
	byBrowser map[entity.BrowserID]entity.SharedTextureHandle
}

var _ port.TextureImporter = (*TexturePool)(nil)

func NewTexturePool() *TexturePool {
	return &TexturePool{
		frames:    make(map[entity.SharedTextureHandle]*image.RGBA),
		byBrowser: make(map[entity.BrowserID]entity.SharedTextureHandle),
	}
}

// Import copies the frame behind info into a texture the caller owns.
func (p *TexturePool) Import(info entity.SharedTextureInfo) (entity.Texture, error) {
	p.mu.Lock()
	frame, ok := p.frames[info.Handle]
	p.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTexture, info.Handle)
	}
	if frame.Rect.Size() != info.CodedSize {
		return nil, fmt.Errorf("shared texture %d: coded size %v does not match %v", info.Handle, info.CodedSize, frame.Rect.Size())
	}

	img := image.NewRGBA(frame.Rect)
	copy(img.Pix, frame.Pix)
	return &Texture{img: img, format: info.Format}, nil
}

// Len returns the number of published frames.
func (p *TexturePool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}

func (p *TexturePool) publish(id entity.BrowserID, img *image.RGBA) entity.SharedTextureHandle {
	p.mu.Lock()
	defer p.mu.Unlock()
	if prev, ok := p.byBrowser[id]; ok {
		delete(p.frames, prev)
	}
	p.next++
	p.frames[p.next] = img
	p.byBrowser[id] = p.next
	return p.next
}

func (p *TexturePool) drop(id entity.BrowserID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.byBrowser[id]; ok {
		delete(p.frames, h)
		delete(p.byBrowser, id)
	}
}

// Texture is an imported frame.
type Texture struct {
	mu     sync.Mutex
	img    *image.RGBA
	format entity.ColorType
}

var _ entity.Texture = (*Texture)(nil)

func (t *Texture) Size() image.Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.img == nil {
		return image.Point{}
	}
	return t.img.Rect.Size()
}

func (t *Texture) Format() entity.ColorType { return t.format }

// Image returns the texture pixels, or nil once released.
func (t *Texture) Image() image.Image {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.img == nil {
		return nil
	}
	return t.img
}

func (t *Texture) Release() {
	t.mu.Lock()
	t.img = nil
	t.mu.Unlock()
}
