package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/prism-go/engine/gpu"
	"github.com/Carmen-Shannon/prism-go/engine/gpu/gputest"
	"github.com/Carmen-Shannon/prism-go/engine/scene"
)

// stubWindow is a headless Window that delivers a fixed number of message
// loop iterations, draining queued frame callbacks like the real loop does.
type stubWindow struct {
	width, height int
	iterations    int

	frames []func()
	resize func(width, height int)
	closed bool
}

func newStubWindow(iterations int) *stubWindow {
	return &stubWindow{width: 640, height: 480, iterations: iterations}
}

func (w *stubWindow) SetUpdateCallback(func())              {}
func (w *stubWindow) SetScrollCallback(func(float32))       {}
func (w *stubWindow) SetKeyDownCallback(func(uint32))       {}
func (w *stubWindow) SetKeyUpCallback(func(uint32))         {}
func (w *stubWindow) SetMouseMoveCallback(func(x, y int32)) {}
func (w *stubWindow) Width() int                            { return w.width }
func (w *stubWindow) Height() int                           { return w.height }
func (w *stubWindow) IsRunning() bool                       { return !w.closed }

func (w *stubWindow) OnResize(callback func(width, height int)) error {
	w.resize = callback
	return nil
}

func (w *stubWindow) RequestFrame(fn func()) error {
	if w.closed {
		return errors.New("window is closed")
	}
	w.frames = append(w.frames, fn)
	return nil
}

func (w *stubWindow) Close() error {
	w.closed = true
	return nil
}

func (w *stubWindow) ProcessMessages() {
	for i := 0; i < w.iterations && !w.closed; i++ {
		pending := w.frames
		w.frames = nil
		for _, fn := range pending {
			fn()
		}
	}
}

func TestRunWithoutWindow(t *testing.T) {
	eng := NewEngine()
	assert.Error(t, eng.Run())
}

func TestRunDrivesSceneLifecycle(t *testing.T) {
	ctx := gputest.NewContext()
	win := newStubWindow(3)

	var (
		order     []string
		frameLogs []bool
	)
	newScene := func(name string) scene.Scene {
		return scene.NewScene(
			scene.WithSetup(func(gpu.Context) error {
				order = append(order, "setup "+name)
				return nil
			}),
			scene.WithFrame(func(_ gpu.Context, surfaceChanged bool) {
				if name == "background" {
					frameLogs = append(frameLogs, surfaceChanged)
				}
				order = append(order, "frame "+name)
			}),
			scene.WithTeardown(func(gpu.Context) {
				order = append(order, "teardown "+name)
			}),
		)
	}

	eng := NewEngine(
		WithWindow(win),
		WithContext(ctx),
		WithScene(10, newScene("overlay")),
		WithScene(0, newScene("background")),
	)
	require.NoError(t, eng.Run())

	// Setup in ascending key order, one synchronous layout frame, then one
	// animation frame per loop iteration, then teardown in key order.
	assert.Equal(t, []string{
		"setup background", "setup overlay",
		"frame background", "frame overlay",
		"frame background", "frame overlay",
		"frame background", "frame overlay",
		"frame background", "frame overlay",
		"teardown background", "teardown overlay",
	}, order)
	assert.Equal(t, []bool{true, false, false, false}, frameLogs)

	// The layout pass applied the window's framebuffer size.
	assert.Equal(t, [4]int{0, 0, 640, 480}, ctx.ViewportRect)
}

func TestRunSkipsInactiveScenes(t *testing.T) {
	ctx := gputest.NewContext()
	win := newStubWindow(1)

	var frames int
	dormant := scene.NewScene(
		scene.WithActive(false),
		scene.WithFrame(func(gpu.Context, bool) { frames++ }),
	)

	eng := NewEngine(WithWindow(win), WithContext(ctx), WithScene(0, dormant))
	require.NoError(t, eng.Run())
	assert.Zero(t, frames)
}

func TestRunTearsDownEarlierScenesOnSetupFailure(t *testing.T) {
	ctx := gputest.NewContext()
	win := newStubWindow(1)

	var torndown bool
	ok := scene.NewScene(
		scene.WithTeardown(func(gpu.Context) { torndown = true }),
	)
	failing := scene.NewScene(
		scene.WithSetup(func(gpu.Context) error { return errors.New("missing asset") }),
	)

	eng := NewEngine(
		WithWindow(win),
		WithContext(ctx),
		WithScene(0, ok),
		WithScene(1, failing),
	)
	require.Error(t, eng.Run())
	assert.True(t, torndown)
}

func TestFramePanicQuitsInsteadOfCrashing(t *testing.T) {
	ctx := gputest.NewContext()
	win := newStubWindow(5)

	panicky := scene.NewScene(
		scene.WithFrame(func(_ gpu.Context, surfaceChanged bool) {
			if !surfaceChanged {
				panic("corrupt state")
			}
		}),
	)

	eng := NewEngine(WithWindow(win), WithContext(ctx), WithScene(0, panicky))
	require.NoError(t, eng.Run())
	assert.True(t, win.closed)
}

func TestSceneRegistry(t *testing.T) {
	s := scene.NewScene()
	eng := NewEngine()

	eng.AddScene(3, s)
	assert.Equal(t, s, eng.Scene(3))
	assert.Nil(t, eng.Scene(99))
	assert.Len(t, eng.Scenes(), 1)

	eng.RemoveScene(3)
	assert.Nil(t, eng.Scene(3))
	assert.Empty(t, eng.Scenes())
}
