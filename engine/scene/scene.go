// package scene wraps one renderable unit of the application: its GPU
// resource setup, its per-frame draw body, and its teardown. Scenes own their
// shader programs and buffer sets exclusively; the engine invokes them on the
// single render thread in z-index order.
package scene

import (
	"github.com/Carmen-Shannon/prism-go/engine/gpu"
)

// sceneImpl is the implementation of the Scene interface.
type sceneImpl struct {
	// active gates whether the engine invokes Frame for this scene.
	active bool

	// setup builds GPU resources once before the first frame.
	setup func(ctx gpu.Context) error

	// frame is the per-frame body. surfaceChanged is true for layout passes.
	frame func(ctx gpu.Context, surfaceChanged bool)

	// teardown releases GPU resources when the engine shuts down.
	teardown func(ctx gpu.Context)
}

// Scene is one renderable unit driven by the engine's frame scheduler.
type Scene interface {
	// Setup builds the scene's GPU resources (programs, buffer sets). Called
	// once, before the scheduler starts. A setup error aborts the engine run.
	//
	// Parameters:
	//   - ctx: the GPU context to allocate on
	//
	// Returns:
	//   - error: error if resource construction fails
	Setup(ctx gpu.Context) error

	// Frame runs the scene's per-frame body. surfaceChanged is true on layout
	// passes (initial frame and resizes); scenes branch on it to avoid
	// recomputing projection state every frame. Frame must not block waiting
	// on another frame, and must handle or log its own draw failures.
	//
	// Parameters:
	//   - ctx: the GPU context to draw through
	//   - surfaceChanged: true when layout-dependent state should be rebuilt
	Frame(ctx gpu.Context, surfaceChanged bool)

	// Teardown releases the scene's GPU resources.
	//
	// Parameters:
	//   - ctx: the GPU context the resources were allocated on
	Teardown(ctx gpu.Context)

	// Active reports whether the engine should invoke Frame for this scene.
	//
	// Returns:
	//   - bool: true if the scene is rendered
	Active() bool

	// SetActive enables or disables rendering of this scene.
	//
	// Parameters:
	//   - active: true to render the scene
	SetActive(active bool)
}

var _ Scene = &sceneImpl{}

// NewScene creates a new Scene with the specified options. Scenes default to
// active; omitted callbacks are no-ops.
//
// Parameters:
//   - options: functional options providing the setup/frame/teardown bodies
//
// Returns:
//   - Scene: the configured scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		active: true,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *sceneImpl) Setup(ctx gpu.Context) error {
	if s.setup == nil {
		return nil
	}
	return s.setup(ctx)
}

func (s *sceneImpl) Frame(ctx gpu.Context, surfaceChanged bool) {
	if s.frame != nil {
		s.frame(ctx, surfaceChanged)
	}
}

func (s *sceneImpl) Teardown(ctx gpu.Context) {
	if s.teardown != nil {
		s.teardown(ctx)
	}
}

func (s *sceneImpl) Active() bool {
	return s.active
}

func (s *sceneImpl) SetActive(active bool) {
	s.active = active
}
