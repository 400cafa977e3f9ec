package scene

import (
	"github.com/Carmen-Shannon/prism-go/engine/gpu"
)

// SceneBuilderOption is a functional option for configuring a sceneImpl.
// Use the With* functions to create options.
type SceneBuilderOption func(s *sceneImpl)

// WithSetup sets the function that builds the scene's GPU resources.
//
// Parameters:
//   - setup: function called once before the first frame
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSetup(setup func(ctx gpu.Context) error) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.setup = setup
	}
}

// WithFrame sets the scene's per-frame body.
//
// Parameters:
//   - frame: function called each frame; surfaceChanged is true on layout passes
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFrame(frame func(ctx gpu.Context, surfaceChanged bool)) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.frame = frame
	}
}

// WithTeardown sets the function that releases the scene's GPU resources.
//
// Parameters:
//   - teardown: function called when the engine shuts down
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTeardown(teardown func(ctx gpu.Context)) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.teardown = teardown
	}
}

// WithActive sets the scene's initial active state (default true).
//
// Parameters:
//   - active: true to render the scene
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.active = active
	}
}
