package engine

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/osrview/internal/domain/entity"
)

func bgraFrame(width, height int, seed byte) []byte {
	buf := make([]byte, width*height*4)
	for i := range buf {
		buf[i] = byte(i) + seed
	}
	return buf
}

func TestApplyPaintFirstFrameSwapsChannels(t *testing.T) {
	s := NewRenderState(1, entity.Rect{Width: 4, Height: 1})
	buf := []byte{
		0x10, 0x11, 0x12, 0x13,
		0x20, 0x21, 0x22, 0x23,
		0x30, 0x31, 0x32, 0x33,
		0x40, 0x41, 0x42, 0x43,
	}

	res, ok := s.applyPaint(buf, 4, 1, nil)
	require.True(t, ok)
	assert.True(t, res.full)

	snap := s.Snapshot()
	assert.Equal(t, []byte{
		0x12, 0x11, 0x10, 0x13,
		0x22, 0x21, 0x20, 0x23,
		0x32, 0x31, 0x30, 0x33,
		0x42, 0x41, 0x40, 0x43,
	}, snap.Pixels)
	w, h := s.Size()
	assert.Equal(t, int32(4), w)
	assert.Equal(t, int32(1), h)
}

func TestApplyPaintFullFrameLength(t *testing.T) {
	s := NewRenderState(1, entity.Rect{})
	sizes := [][2]int{{1, 1}, {3, 7}, {64, 48}, {17, 1}, {1, 33}, {64, 48}}

	for _, size := range sizes {
		w, h := size[0], size[1]
		_, ok := s.applyPaint(bgraFrame(w, h, 0), int32(w), int32(h), nil)
		require.True(t, ok)

		snap := s.Snapshot()
		assert.Len(t, snap.Pixels, w*h*4)
		assert.Equal(t, w, snap.Width)
		assert.Equal(t, h, snap.Height)
	}
}

func TestApplyPaintDirtyRectsOnlyTouchRects(t *testing.T) {
	const w, h = 32, 24
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 50; iter++ {
		s := NewRenderState(1, entity.Rect{Width: w, Height: h})
		_, ok := s.applyPaint(bgraFrame(w, h, 0), w, h, nil)
		require.True(t, ok)
		before := s.Snapshot().Pixels

		next := bgraFrame(w, h, byte(iter+1))
		var rects []entity.Rect
		for n := rng.Intn(4) + 1; n > 0; n-- {
			rects = append(rects, entity.Rect{
				X:      int32(rng.Intn(w+10) - 5),
				Y:      int32(rng.Intn(h+10) - 5),
				Width:  int32(rng.Intn(w)),
				Height: int32(rng.Intn(h)),
			})
		}

		res, ok := s.applyPaint(next, w, h, rects)
		require.True(t, ok)
		assert.False(t, res.full)
		after := s.Snapshot().Pixels

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := (y*w + x) * 4
				inside := false
				for _, r := range rects {
					if int32(x) >= r.X && int32(x) < r.X+r.Width && int32(y) >= r.Y && int32(y) < r.Y+r.Height {
						inside = true
						break
					}
				}
				if inside {
					want := []byte{next[i+2], next[i+1], next[i], next[i+3]}
					require.Equal(t, want, after[i:i+4], "pixel (%d,%d) inside a dirty rect", x, y)
				} else {
					require.Equal(t, before[i:i+4], after[i:i+4], "pixel (%d,%d) outside dirty rects", x, y)
				}
			}
		}
	}
}

func TestApplyPaintSizeChangeReplacesBuffer(t *testing.T) {
	s := NewRenderState(1, entity.Rect{})
	_, ok := s.applyPaint(bgraFrame(2, 2, 0), 2, 2, nil)
	require.True(t, ok)

	res, ok := s.applyPaint(bgraFrame(3, 2, 9), 3, 2, []entity.Rect{{X: 0, Y: 0, Width: 1, Height: 1}})
	require.True(t, ok)
	assert.True(t, res.full)
	assert.Len(t, s.Snapshot().Pixels, 3*2*4)
}

func TestApplyPaintRejectsShortBuffer(t *testing.T) {
	s := NewRenderState(1, entity.Rect{})
	_, ok := s.applyPaint(make([]byte, 10), 4, 4, nil)
	assert.False(t, ok)
	_, ok = s.applyPaint(nil, 0, 4, nil)
	assert.False(t, ok)
	assert.True(t, s.Snapshot().Empty())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewRenderState(1, entity.Rect{})
	_, ok := s.applyPaint(bgraFrame(2, 1, 0), 2, 1, nil)
	require.True(t, ok)

	snap := s.Snapshot()
	snap.Pixels[0] = 0xFF
	assert.False(t, bytes.Equal(snap.Pixels, s.Snapshot().Pixels))
}

func TestSetViewRectReportsChange(t *testing.T) {
	s := NewRenderState(0, entity.Rect{})
	assert.Equal(t, float32(1), s.DeviceScaleFactor())

	r := entity.Rect{X: 100, Y: 200, Width: 800, Height: 600}
	assert.True(t, s.SetViewRect(r))
	assert.False(t, s.SetViewRect(r))
	assert.Equal(t, r, s.ViewRect())
}

func TestReleaseDropsFrame(t *testing.T) {
	s := NewRenderState(1, entity.Rect{})
	tex := &fakeTexture{size: [2]int{8, 8}}
	s.setTexture(tex)
	_, ok := s.applyPaint(bgraFrame(2, 2, 0), 2, 2, nil)
	require.True(t, ok)

	s.Release()
	assert.True(t, s.Snapshot().Empty())
	assert.Nil(t, s.Texture())
	assert.Equal(t, 1, tex.released)
}
