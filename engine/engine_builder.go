package engine

import (
	"github.com/Carmen-Shannon/prism-go/engine/gpu"
	"github.com/Carmen-Shannon/prism-go/engine/scene"
	"github.com/Carmen-Shannon/prism-go/engine/window"
)

// EngineBuilderOption defines a functional option for configuring an engine
// during construction.
type EngineBuilderOption func(*engine)

// WithWindow sets the window the engine drives its message loop and frame
// scheduling through.
//
// Parameters:
//   - w: the window instance
//
// Returns:
//   - EngineBuilderOption: the option to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene registers a scene at the given z-index key.
// Scenes render in ascending key order each frame.
//
// Parameters:
//   - key: the z-index determining render order (lower renders first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: the option to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithContext injects a pre-built GPU context, bypassing context creation
// during Run. Intended for tests driving the engine against a fake context.
//
// Parameters:
//   - ctx: the GPU capability context to use
//
// Returns:
//   - EngineBuilderOption: the option to apply
func WithContext(ctx gpu.Context) EngineBuilderOption {
	return func(e *engine) {
		e.ctx = ctx
	}
}

// WithProfiling enables or disables periodic frame statistics reporting.
//
// Parameters:
//   - enabled: whether profiling starts enabled
//
// Returns:
//   - EngineBuilderOption: the option to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}
