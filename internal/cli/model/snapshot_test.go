package model

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/osrview/internal/application/port/mocks"
	"github.com/bnema/osrview/internal/domain/entity"
	"github.com/bnema/osrview/internal/infrastructure/engine"
	"github.com/bnema/osrview/internal/infrastructure/headless"
	"github.com/bnema/osrview/internal/ui/controller"
	"github.com/bnema/osrview/internal/ui/mainloop"
)

func runSnapshot(t *testing.T, backend controller.Backend, opts SnapshotOptions) ([]byte, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	process := engine.NewBrowserProcessHandler(ctx)
	textures := headless.NewTexturePool()
	eng := headless.New(ctx, headless.Options{Process: process, Textures: textures})
	defer eng.Shutdown()

	ctrl := controller.NewWebviewController(ctx, eng, process, controller.Config{
		Backend:  backend,
		Importer: textures,
	})
	opts.Widget.Backend = backend

	var out bytes.Buffer
	m := NewSnapshotModel(ctx, ctrl, eng, &out, opts)
	err := mainloop.New().Run(ctx, m)
	return out.Bytes(), err
}

func TestSnapshotWritesFirstFrame(t *testing.T) {
	for _, backend := range []controller.Backend{controller.BackendBitmap, controller.BackendTexture} {
		t.Run(backend.String(), func(t *testing.T) {
			data, err := runSnapshot(t, backend, SnapshotOptions{
				URL:         "about:blank",
				Bounds:      entity.Rectangle{Width: 320, Height: 200},
				ScaleFactor: 1,
			})
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, 320, img.Bounds().Dx())
			assert.Equal(t, 200, img.Bounds().Dy())
		})
	}
}

func TestSnapshotHonorsScaleFactor(t *testing.T) {
	data, err := runSnapshot(t, controller.BackendBitmap, SnapshotOptions{
		URL:         "https://example.com",
		Bounds:      entity.Rectangle{Width: 200, Height: 100},
		ScaleFactor: 2,
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestSnapshotLaunchFailure(t *testing.T) {
	ctx := context.Background()
	eng := mocks.NewMockEngine(t)
	eng.EXPECT().CreateBrowser(mock.Anything, mock.Anything).Return(false).Once()
	eng.EXPECT().DoMessageLoopWork().Maybe()
	ctrl := controller.NewWebviewController(ctx, eng, nil, controller.Config{})

	var out bytes.Buffer
	m := NewSnapshotModel(ctx, ctrl, eng, &out, SnapshotOptions{
		URL:    "about:blank",
		Bounds: entity.Rectangle{Width: 100, Height: 100},
	})

	err := mainloop.New().Run(ctx, m)
	require.ErrorIs(t, err, controller.ErrLaunchFailed)
	assert.False(t, m.Written())
	assert.Zero(t, out.Len())
}
