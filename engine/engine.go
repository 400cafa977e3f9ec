// package engine ties the window, the GPU context, the frame scheduler and
// the registered scenes together. Everything runs cooperatively on the single
// UI/render thread; the engine owns no goroutines.
package engine

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/Carmen-Shannon/prism-go/engine/gpu"
	"github.com/Carmen-Shannon/prism-go/engine/profiler"
	"github.com/Carmen-Shannon/prism-go/engine/scene"
	"github.com/Carmen-Shannon/prism-go/engine/scheduler"
	"github.com/Carmen-Shannon/prism-go/engine/window"
)

// engine implements the Engine interface.
// Coordinates the window message loop, the frame scheduler, and scene setup,
// rendering, and teardown.
type engine struct {
	window window.Window

	// ctx is the GPU capability context scenes draw through. Created by
	// contextFactory during Run unless injected via WithContext.
	ctx gpu.Context

	// contextFactory creates the GPU context once the window's context is
	// current. Defaults to gpu.NewContext.
	contextFactory func() (gpu.Context, error)

	// sched drives per-frame and layout callbacks. One per Run.
	sched scheduler.FrameScheduler

	profiler         *profiler.Profiler
	profilingEnabled bool

	// scenes holds registered scenes keyed by z-index; rendered in ascending
	// key order.
	scenes map[int]scene.Scene
}

// Engine is the main entry point for the engine.
// It orchestrates scene lifecycle, the frame scheduler, and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Context returns the GPU context, or nil before Run has created it.
	//
	// Returns:
	//   - gpu.Context: the GPU capability context
	Context() gpu.Context

	// EnableProfiler enables periodic frame statistics reporting.
	EnableProfiler()

	// DisableProfiler disables frame statistics reporting.
	DisableProfiler()

	// AddScene registers a scene at the given z-index key.
	// Scenes are rendered in ascending key order each frame.
	//
	// Parameters:
	//   - key: the z-index determining render order (lower renders first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run creates the GPU context, sets up all scenes, starts the frame
	// scheduler, and blocks in the window message loop until the window
	// closes. Scenes are torn down before Run returns.
	//
	// Returns:
	//   - error: construction or scheduler registration failure
	Run() error

	// Quit closes the window, ending the message loop.
	// Safe to call multiple times.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, scenes, profiling)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		scenes:         make(map[int]scene.Scene),
		profiler:       profiler.NewProfiler(),
		contextFactory: gpu.NewContext,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Context() gpu.Context {
	return e.ctx
}

func (e *engine) Run() error {
	if e.window == nil {
		return fmt.Errorf("engine: no window configured")
	}

	if e.ctx == nil {
		ctx, err := e.contextFactory()
		if err != nil {
			return fmt.Errorf("engine: failed to create GPU context: %w", err)
		}
		e.ctx = ctx
	}

	keys := e.orderedKeys()
	for i, k := range keys {
		if err := e.scenes[k].Setup(e.ctx); err != nil {
			for _, prev := range keys[:i] {
				e.scenes[prev].Teardown(e.ctx)
			}
			return fmt.Errorf("engine: scene %d setup failed: %w", k, err)
		}
	}

	e.sched = scheduler.NewFrameScheduler(e.window)
	if err := e.sched.Start(e.frame); err != nil {
		for _, k := range keys {
			e.scenes[k].Teardown(e.ctx)
		}
		return err
	}

	e.window.ProcessMessages()

	for _, k := range e.orderedKeys() {
		e.scenes[k].Teardown(e.ctx)
	}
	return nil
}

// frame is the scheduler callback: it applies layout-dependent viewport state
// on surface changes, then fans out to active scenes in ascending z-index
// order. A panic in a scene is recovered and quits the engine rather than
// crashing the message loop.
func (e *engine) frame(surfaceChanged bool) {
	defer func() {
		if r := recover(); r != nil {
			common.Logger().Error("frame callback recovered from panic", "panic", r)
			e.Quit()
		}
	}()

	if surfaceChanged {
		e.ctx.Viewport(0, 0, e.window.Width(), e.window.Height())
	}

	for _, k := range e.orderedKeys() {
		s := e.scenes[k]
		if s.Active() {
			s.Frame(e.ctx, surfaceChanged)
		}
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// orderedKeys returns the scene z-index keys in ascending order.
func (e *engine) orderedKeys() []int {
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Quit closes the window, ending the message loop.
func (e *engine) Quit() {
	if e.window == nil {
		return
	}
	if err := e.window.Close(); err != nil {
		common.Logger().Warn("failed to close window", "error", err)
	}
}

// EnableProfiler enables periodic frame statistics reporting.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables frame statistics reporting.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
