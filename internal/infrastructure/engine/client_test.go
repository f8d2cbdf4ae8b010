package engine

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/application/port/mocks"
	"github.com/bnema/osrview/internal/domain/entity"
)

type fakeTexture struct {
	size     [2]int
	released int
}

func (f *fakeTexture) Size() image.Point        { return image.Pt(f.size[0], f.size[1]) }
func (f *fakeTexture) Format() entity.ColorType { return entity.ColorBGRA8888 }
func (f *fakeTexture) Release()                 { f.released++ }

func newTestClient(t *testing.T, opts Options) (*Client, *ClientState, *ClientEventSubscriber) {
	t.Helper()
	if opts.Launch == 0 {
		opts.Launch = entity.NewLaunchID()
	}
	if opts.DeviceScaleFactor == 0 {
		opts.DeviceScaleFactor = 1
	}
	return NewClient(context.Background(), opts)
}

func recv[T any](t *testing.T, m *Mailbox[T]) T {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := m.Recv(ctx)
	require.NoError(t, err)
	return v
}

func TestLifeSpanCreatedThenClosed(t *testing.T) {
	launch := entity.NewLaunchID()
	c, _, sub := newTestClient(t, Options{Launch: launch})

	assert.False(t, c.LifeSpan(port.AfterCreated{Browser: port.Browser(7)}))
	assert.False(t, c.LifeSpan(port.BeforeClose{Browser: port.Browser(7)}))

	assert.Equal(t, entity.LifeSpanCreated{Launch: launch, BrowserID: 7}, recv(t, sub.LifeSpan))
	assert.Equal(t, entity.LifeSpanClosed{BrowserID: 7}, recv(t, sub.LifeSpan))
}

func TestLifeSpanWithoutBrowserIsIgnored(t *testing.T) {
	c, _, sub := newTestClient(t, Options{})
	c.LifeSpan(port.AfterCreated{})
	assert.Zero(t, sub.LifeSpan.Len())
}

func TestBeforePopupIsSuppressed(t *testing.T) {
	c, _, sub := newTestClient(t, Options{})
	assert.True(t, c.LifeSpan(port.BeforePopup{Browser: port.Browser(1), TargetURL: "https://example.com"}))
	assert.Zero(t, sub.LifeSpan.Len())
}

func TestLoadCallbacksMapToEvents(t *testing.T) {
	c, _, sub := newTestClient(t, Options{})
	main := port.FrameRef{ID: "f1", IsMain: true, Valid: true}

	c.Load(port.LoadingStateChange{Browser: port.Browser(3), IsLoading: true, CanGoBack: true})
	c.Load(port.LoadStart{Browser: port.Browser(3), Frame: main, TransitionType: 1})
	c.Load(port.LoadEnd{Browser: port.Browser(3), Frame: main, HTTPStatusCode: 200})
	c.Load(port.LoadError{Frame: main, ErrorCode: -105, ErrorText: "NAME_NOT_RESOLVED", FailedURL: "https://nope.invalid"})

	changed, ok := recv(t, sub.Load).(entity.LoadingStateChanged)
	require.True(t, ok)
	assert.True(t, changed.IsLoading)
	assert.True(t, changed.CanGoBack)

	started, ok := recv(t, sub.Load).(entity.LoadStarted)
	require.True(t, ok)
	assert.Equal(t, "f1", started.FrameID)

	ended, ok := recv(t, sub.Load).(entity.LoadEnded)
	require.True(t, ok)
	assert.Equal(t, 200, ended.HTTPStatusCode)
	assert.True(t, ended.IsMainFrame)

	failed, ok := recv(t, sub.Load).(entity.LoadFailed)
	require.True(t, ok)
	_, hasBrowser := failed.Browser()
	assert.False(t, hasBrowser)
	assert.Contains(t, failed.Error(), "NAME_NOT_RESOLVED")
}

func TestViewRectOnlyReportedWhenSized(t *testing.T) {
	c, state, _ := newTestClient(t, Options{DeviceScaleFactor: 2})

	reply := c.Render(port.GetViewRect{Browser: port.Browser(1)})
	assert.False(t, reply.Handled)

	state.Render.SetViewRect(entity.Rect{Width: 800, Height: 600})
	reply = c.Render(port.GetViewRect{Browser: port.Browser(1)})
	assert.True(t, reply.Handled)
	assert.Equal(t, entity.Rect{Width: 800, Height: 600}, reply.ViewRect)

	reply = c.Render(port.GetScreenInfo{Browser: port.Browser(1)})
	assert.True(t, reply.Handled)
	assert.Equal(t, float32(2), reply.Screen.DeviceScaleFactor)

	assert.False(t, c.Render(port.GetScreenPoint{Browser: port.Browser(1)}).Handled)
}

func TestPaintNotifiesFrameReady(t *testing.T) {
	c, state, sub := newTestClient(t, Options{})

	c.Render(port.Paint{
		Browser: port.Browser(4),
		Element: entity.PaintPopup,
		Buffer:  bgraFrame(2, 2, 0),
		Width:   2,
		Height:  2,
	})
	assert.Zero(t, sub.Frames.Len())

	c.Render(port.Paint{
		Browser: port.Browser(4),
		Element: entity.PaintView,
		Buffer:  bgraFrame(2, 2, 0),
		Width:   2,
		Height:  2,
	})
	assert.Equal(t, entity.Frame{BrowserID: 4}, recv(t, sub.Frames))
	assert.Len(t, state.Render.Snapshot().Pixels, 16)
}

func TestAcceleratedPaintImportsTexture(t *testing.T) {
	importer := mocks.NewMockTextureImporter(t)
	c, state, sub := newTestClient(t, Options{Importer: importer})

	first := &fakeTexture{size: [2]int{640, 480}}
	second := &fakeTexture{size: [2]int{640, 480}}
	info := entity.SharedTextureInfo{Handle: 0x1234, Format: entity.ColorBGRA8888, CodedSize: image.Pt(640, 480)}
	importer.EXPECT().Import(info).Return(first, nil).Once()
	importer.EXPECT().Import(info).Return(second, nil).Once()

	c.Render(port.AcceleratedPaint{Browser: port.Browser(2), Element: entity.PaintView, Info: info})
	frame := recv(t, sub.Frames)
	assert.Same(t, first, frame.Texture)

	c.Render(port.AcceleratedPaint{Browser: port.Browser(2), Element: entity.PaintView, Info: info})
	assert.Same(t, second, recv(t, sub.Frames).Texture)
	assert.Same(t, second, state.Render.Texture())
	assert.Equal(t, 1, first.released)
	assert.Zero(t, second.released)
}

func TestAcceleratedPaintImportFailureDropsFrame(t *testing.T) {
	importer := mocks.NewMockTextureImporter(t)
	c, state, sub := newTestClient(t, Options{Importer: importer})

	importer.EXPECT().Import(entity.SharedTextureInfo{}).Return(nil, errors.New("stale handle"))

	c.Render(port.AcceleratedPaint{Browser: port.Browser(2), Element: entity.PaintView})
	assert.Zero(t, sub.Frames.Len())
	assert.Nil(t, state.Render.Texture())
}

func TestCursorChangeIsStored(t *testing.T) {
	c, state, _ := newTestClient(t, Options{})
	assert.Equal(t, entity.CursorPointer, state.Display.Cursor())

	assert.True(t, c.Display(port.CursorChange{Browser: port.Browser(1), Cursor: entity.CursorIBeam}))
	assert.Equal(t, entity.CursorIBeam, state.Display.Cursor())
}

func TestContextMenuIsCleared(t *testing.T) {
	c, _, _ := newTestClient(t, Options{})
	model := mocks.NewMockMenuModel(t)
	model.EXPECT().Clear().Return(true).Once()

	c.ContextMenu(port.BeforeContextMenu{Browser: port.Browser(1), Model: model})
}

func TestProcessMessages(t *testing.T) {
	tests := []struct {
		name    string
		msgName string
		args    []string
		handled bool
		want    entity.IPCMessage
	}{
		{
			name:    "caret offset",
			msgName: MessageCaretOffsetChanged,
			args:    []string{`{"offset": 12.5}`},
			handled: true,
			want:    entity.CaretOffsetChanged{BrowserID: 9, Offset: 12.5},
		},
		{
			name:    "focused node scaled to logical pixels",
			msgName: MessageFocusedNode,
			args:    []string{`{"x": 20, "y": 40, "width": 300, "height": 50}`},
			handled: true,
			want:    entity.FocusedNodeChanged{BrowserID: 9, Rect: entity.Rectangle{X: 10, Y: 20, Width: 150, Height: 25}},
		},
		{name: "non json caret payload", msgName: MessageCaretOffsetChanged, args: []string{"not json"}},
		{name: "caret payload missing offset", msgName: MessageCaretOffsetChanged, args: []string{`{}`}},
		{name: "focused node missing field", msgName: MessageFocusedNode, args: []string{`{"x":1,"y":2,"width":3}`}},
		{name: "no arguments", msgName: MessageCaretOffsetChanged},
		{name: "unknown name", msgName: "renderer.something_else", args: []string{`{"offset": 1}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, sub := newTestClient(t, Options{DeviceScaleFactor: 2})

			handled := c.ProcessMessage(port.ProcessMessage{
				Browser: port.Browser(9),
				Source:  port.ProcessRenderer,
				Name:    tt.msgName,
				Args:    tt.args,
			})

			assert.Equal(t, tt.handled, handled)
			if !tt.handled {
				assert.Zero(t, sub.IPC.Len())
				return
			}
			assert.Equal(t, tt.want, recv(t, sub.IPC))
		})
	}
}

func TestKeyboardPassthroughHandlesNothing(t *testing.T) {
	engine := mocks.NewMockEngine(t)
	c, _, _ := newTestClient(t, Options{Engine: engine})

	ev := port.KeyEvent{Type: port.KeyEventRawKeyDown, WindowsKeyCode: vkC, Modifiers: port.EventFlagControlDown}
	assert.Equal(t, port.KeyboardReply{}, c.Keyboard(port.PreKey{Browser: port.Browser(1), Event: ev}))
	assert.Equal(t, port.KeyboardReply{}, c.Keyboard(port.Key{Browser: port.Browser(1), Event: ev}))
}

func TestKeyboardDelegateRunsEditingCommands(t *testing.T) {
	engine := mocks.NewMockEngine(t)
	host := mocks.NewMockBrowserHost(t)
	frame := mocks.NewMockEditableFrame(t)
	c, _, _ := newTestClient(t, Options{Engine: engine, KeyboardMode: KeyboardDelegate})

	engine.EXPECT().Host(entity.BrowserID(1)).Return(host, true)
	host.EXPECT().FocusedFrame().Return(frame, true)
	frame.EXPECT().Copy().Once()
	frame.EXPECT().SelectAll().Once()

	ctrlC := port.KeyEvent{Type: port.KeyEventRawKeyDown, WindowsKeyCode: vkC, Modifiers: port.EventFlagControlDown}
	pre := c.Keyboard(port.PreKey{Browser: port.Browser(1), Event: ctrlC})
	assert.True(t, pre.IsKeyboardShortcut)
	assert.False(t, pre.Handled)

	assert.True(t, c.Keyboard(port.Key{Browser: port.Browser(1), Event: ctrlC}).Handled)

	ctrlA := ctrlC
	ctrlA.WindowsKeyCode = vkA
	assert.True(t, c.Keyboard(port.Key{Browser: port.Browser(1), Event: ctrlA}).Handled)

	keyUp := ctrlC
	keyUp.Type = port.KeyEventKeyUp
	assert.False(t, c.Keyboard(port.Key{Browser: port.Browser(1), Event: keyUp}).Handled)

	plainC := port.KeyEvent{Type: port.KeyEventRawKeyDown, WindowsKeyCode: vkC}
	assert.False(t, c.Keyboard(port.PreKey{Browser: port.Browser(1), Event: plainC}).IsKeyboardShortcut)
}

func TestKeyboardDelegateTogglesDevTools(t *testing.T) {
	engine := mocks.NewMockEngine(t)
	host := mocks.NewMockBrowserHost(t)
	c, _, _ := newTestClient(t, Options{Engine: engine, KeyboardMode: KeyboardDelegate})

	engine.EXPECT().Host(entity.BrowserID(5)).Return(host, true)
	host.EXPECT().HasDevTools().Return(false).Once()
	host.EXPECT().ShowDevTools().Once()
	host.EXPECT().HasDevTools().Return(true).Once()

	f12 := port.KeyEvent{Type: port.KeyEventRawKeyDown, WindowsKeyCode: vkF12}
	assert.True(t, c.Keyboard(port.PreKey{Browser: port.Browser(5), Event: f12}).IsKeyboardShortcut)
	assert.True(t, c.Keyboard(port.Key{Browser: port.Browser(5), Event: f12}).Handled)
}

func TestKeyboardDelegateUsesCommandOnMac(t *testing.T) {
	c, _, _ := newTestClient(t, Options{KeyboardMode: KeyboardDelegate, ShortcutModifier: port.EventFlagCommandDown})

	ctrlV := port.KeyEvent{Type: port.KeyEventRawKeyDown, WindowsKeyCode: vkV, Modifiers: port.EventFlagControlDown}
	assert.False(t, c.Keyboard(port.PreKey{Browser: port.Browser(1), Event: ctrlV}).IsKeyboardShortcut)

	cmdV := ctrlV
	cmdV.Modifiers = port.EventFlagCommandDown
	assert.True(t, c.Keyboard(port.PreKey{Browser: port.Browser(1), Event: cmdV}).IsKeyboardShortcut)
}

func TestSetKeyboardSwitchesPolicyLive(t *testing.T) {
	c, _, _ := newTestClient(t, Options{})

	cmdV := port.KeyEvent{Type: port.KeyEventRawKeyDown, WindowsKeyCode: vkV, Modifiers: port.EventFlagCommandDown}
	assert.False(t, c.Keyboard(port.PreKey{Browser: port.Browser(1), Event: cmdV}).IsKeyboardShortcut)

	c.SetKeyboard(KeyboardDelegate, port.EventFlagCommandDown)
	assert.True(t, c.Keyboard(port.PreKey{Browser: port.Browser(1), Event: cmdV}).IsKeyboardShortcut)

	c.SetKeyboard(KeyboardDelegate, 0)
	assert.False(t, c.Keyboard(port.PreKey{Browser: port.Browser(1), Event: cmdV}).IsKeyboardShortcut, "zero selects control")

	c.SetKeyboard(KeyboardPassthrough, port.EventFlagCommandDown)
	assert.False(t, c.Keyboard(port.PreKey{Browser: port.Browser(1), Event: cmdV}).IsKeyboardShortcut)
}

func TestEngineReleaseClosesSendSide(t *testing.T) {
	handles := NewHandleTable()
	c, _, sub := newTestClient(t, Options{Handles: handles})

	// engine accepts the client, caller drops its own reference
	c.AddRef()
	assert.False(t, c.Release())
	assert.True(t, c.HasOneRef())

	c.LifeSpan(port.AfterCreated{Browser: port.Browser(7)})
	c.LifeSpan(port.BeforeClose{Browser: port.Browser(7)})
	assert.True(t, c.Release())
	assert.Zero(t, handles.Len())

	// queued events survive the release, later sends are dropped
	c.Load(port.LoadingStateChange{Browser: port.Browser(7)})
	assert.IsType(t, entity.LifeSpanCreated{}, recv(t, sub.LifeSpan))
	assert.IsType(t, entity.LifeSpanClosed{}, recv(t, sub.LifeSpan))

	_, err := sub.LifeSpan.Recv(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	_, err = sub.Load.Recv(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSendsAfterSubscriberCloseAreDropped(t *testing.T) {
	c, _, sub := newTestClient(t, Options{})
	sub.Close()

	assert.NotPanics(t, func() {
		c.LifeSpan(port.BeforeClose{Browser: port.Browser(7)})
		c.Render(port.Paint{Browser: port.Browser(7), Element: entity.PaintView, Buffer: bgraFrame(1, 1, 0), Width: 1, Height: 1})
		c.ProcessMessage(port.ProcessMessage{Browser: port.Browser(7), Name: MessageCaretOffsetChanged, Args: []string{`{"offset":1}`}})
	})
}

func TestRequestContextPreferences(t *testing.T) {
	prefs := mocks.NewMockPreferenceSetter(t)
	prefs.EXPECT().SetPreference("credentials_enable_service", false).Return(nil).Once()
	prefs.EXPECT().SetPreference("session.restore_on_startup", 5).Return(errors.New("read-only")).Once()

	h := NewRequestContextHandler(context.Background())
	assert.NotPanics(t, func() { h.OnRequestContextInitialized(prefs) })
	assert.NotPanics(t, func() { h.OnRequestContextInitialized(nil) })
}

func TestBrowserProcessHandler(t *testing.T) {
	h := NewBrowserProcessHandler(context.Background())

	h.OnContextInitialized()
	h.OnContextInitialized()
	select {
	case <-h.Ready():
	default:
		t.Fatal("ready channel not closed")
	}

	h.OnScheduleMessagePumpWork(16)
	h.OnScheduleMessagePumpWork(-3)
	assert.Equal(t, 16*time.Millisecond, recv(t, h.PumpRequests()))
	assert.Equal(t, time.Duration(0), recv(t, h.PumpRequests()))

	h.Close()
	assert.NotPanics(t, func() { h.OnScheduleMessagePumpWork(1) })
}
