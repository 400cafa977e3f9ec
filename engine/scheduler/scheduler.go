// package scheduler drives the cooperative render loop: a caller-supplied
// callback runs once per display refresh, plus a distinguished layout pass
// whenever the output surface is resized. Everything executes on the single
// UI/render thread; no callback ever runs concurrently with another.
package scheduler

import (
	"fmt"

	"github.com/Carmen-Shannon/prism-go/common"
)

// Platform is the host event source the scheduler registers against. Both
// callbacks are delivered only on the single UI thread.
type Platform interface {
	// RequestFrame registers fn for a one-shot invocation before the next
	// display refresh. Each animation frame must be re-requested.
	//
	// Parameters:
	//   - fn: the function to invoke on the next refresh
	//
	// Returns:
	//   - error: error if the host cannot deliver frame callbacks
	RequestFrame(fn func()) error

	// OnResize registers fn to be invoked whenever the output surface
	// changes size. At most one resize listener is active at a time.
	//
	// Parameters:
	//   - fn: the function receiving the new surface size in pixels
	//
	// Returns:
	//   - error: error if the host cannot deliver resize events
	OnResize(fn func(width, height int)) error
}

// InitError reports that the scheduler could not register against the host's
// event sources. The scheduler cannot run headless.
type InitError struct {
	// Reason describes what failed.
	Reason string

	// Err is the platform's underlying error, if any.
	Err error
}

func (e *InitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scheduler: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("scheduler: %s", e.Reason)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// schedulerState is the two-state machine of the frame scheduler.
type schedulerState int

const (
	// stateIdle means Start has not yet been called.
	stateIdle schedulerState = iota

	// stateRunning means the loop is registered and self-sustaining. There is
	// no programmatic stop; the loop runs for the lifetime of the host.
	stateRunning
)

// frameScheduler is the implementation of the FrameScheduler interface.
type frameScheduler struct {
	// platform is the host event source frames and resizes come from.
	platform Platform

	// state tracks the Idle -> Running transition.
	state schedulerState

	// callback is the single active per-frame callback. Replaceable only by
	// constructing a new scheduler.
	callback func(surfaceChanged bool)
}

// FrameScheduler invokes a per-frame callback once per display refresh and a
// layout pass on surface resize. The boolean argument distinguishes "surface
// geometry may have changed, recompute layout-dependent state" (true) from an
// ordinary animation step (false).
type FrameScheduler interface {
	// Start transitions the scheduler from Idle to Running. It synchronously
	// invokes callback(true) once before registering any recurring schedule,
	// then registers the resize listener and the self-re-requesting animation
	// frame. The initial callback(true) happens-before any animation frame;
	// a resize-triggered callback(true) may interleave with animation frames
	// but never runs concurrently with them.
	//
	// Parameters:
	//   - callback: the per-frame callback; receives true for layout passes
	//
	// Returns:
	//   - error: *InitError if already running or registration fails
	Start(callback func(surfaceChanged bool)) error

	// Running reports whether the loop has been started.
	//
	// Returns:
	//   - bool: true once Start has succeeded
	Running() bool
}

var _ FrameScheduler = &frameScheduler{}

// NewFrameScheduler creates an idle scheduler bound to the given platform
// event source.
//
// Parameters:
//   - platform: the host event source (typically the window)
//
// Returns:
//   - FrameScheduler: the new scheduler in the Idle state
func NewFrameScheduler(platform Platform) FrameScheduler {
	return &frameScheduler{
		platform: platform,
		state:    stateIdle,
	}
}

func (s *frameScheduler) Start(callback func(surfaceChanged bool)) error {
	if s.platform == nil {
		return &InitError{Reason: "no platform event source"}
	}
	if s.state == stateRunning {
		return &InitError{Reason: "scheduler already running"}
	}
	s.callback = callback

	// Establish initial layout-dependent state (projection parameters etc.)
	// before the first animation-driven frame.
	s.callback(true)

	if err := s.platform.OnResize(func(width, height int) {
		s.callback(true)
	}); err != nil {
		return &InitError{Reason: "failed to register resize listener", Err: err}
	}

	var frame func()
	frame = func() {
		s.callback(false)
		if err := s.platform.RequestFrame(frame); err != nil {
			// Losing the frame source mid-loop is fatal; there is no policy
			// for re-acquiring the host scheduler.
			common.Logger().Error("scheduler: failed to re-request animation frame", "error", err)
		}
	}
	if err := s.platform.RequestFrame(frame); err != nil {
		return &InitError{Reason: "failed to request animation frame", Err: err}
	}

	s.state = stateRunning
	return nil
}

func (s *frameScheduler) Running() bool {
	return s.state == stateRunning
}
