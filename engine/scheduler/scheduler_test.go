package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlatform queues requested frame callbacks so tests can pump the loop
// deterministically, one refresh at a time.
type fakePlatform struct {
	frames []func()
	resize func(width, height int)

	frameErr  error
	resizeErr error
}

func (p *fakePlatform) RequestFrame(fn func()) error {
	if p.frameErr != nil {
		return p.frameErr
	}
	p.frames = append(p.frames, fn)
	return nil
}

func (p *fakePlatform) OnResize(fn func(width, height int)) error {
	if p.resizeErr != nil {
		return p.resizeErr
	}
	p.resize = fn
	return nil
}

// pump delivers the next queued frame, the way the host's message loop would.
func (p *fakePlatform) pump(t *testing.T) {
	t.Helper()
	require.NotEmpty(t, p.frames)
	next := p.frames[0]
	p.frames = p.frames[1:]
	next()
}

// recorder collects the surfaceChanged argument of every callback invocation.
type recorder struct {
	calls []bool
}

func (r *recorder) callback(surfaceChanged bool) {
	r.calls = append(r.calls, surfaceChanged)
}

func TestStartRunsInitialLayoutPassSynchronously(t *testing.T) {
	platform := &fakePlatform{}
	sched := NewFrameScheduler(platform)
	rec := &recorder{}

	require.False(t, sched.Running())
	require.NoError(t, sched.Start(rec.callback))
	assert.True(t, sched.Running())

	// Exactly one layout pass before any frame has been delivered.
	assert.Equal(t, []bool{true}, rec.calls)
	assert.Len(t, platform.frames, 1)
}

func TestAnimationFramesSelfSustain(t *testing.T) {
	platform := &fakePlatform{}
	sched := NewFrameScheduler(platform)
	rec := &recorder{}
	require.NoError(t, sched.Start(rec.callback))

	for i := 0; i < 3; i++ {
		platform.pump(t)
	}

	assert.Equal(t, []bool{true, false, false, false}, rec.calls)
	// Each delivered frame re-requested the next one.
	assert.Len(t, platform.frames, 1)
}

func TestResizeInjectsLayoutPassWithoutPerturbingFrames(t *testing.T) {
	platform := &fakePlatform{}
	sched := NewFrameScheduler(platform)
	rec := &recorder{}
	require.NoError(t, sched.Start(rec.callback))
	require.NotNil(t, platform.resize)

	platform.pump(t)
	platform.resize(800, 600)
	platform.pump(t)
	platform.pump(t)

	// One extra layout pass; no animation frame dropped or duplicated.
	assert.Equal(t, []bool{true, false, true, false, false}, rec.calls)
	assert.Len(t, platform.frames, 1)
}

func TestStartWithoutPlatform(t *testing.T) {
	sched := NewFrameScheduler(nil)

	err := sched.Start(func(bool) {})
	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.False(t, sched.Running())
}

func TestStartResizeRegistrationFailure(t *testing.T) {
	cause := errors.New("surface lost")
	platform := &fakePlatform{resizeErr: cause}
	sched := NewFrameScheduler(platform)

	err := sched.Start(func(bool) {})
	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.ErrorIs(t, err, cause)
	assert.False(t, sched.Running())
}

func TestStartFrameRegistrationFailure(t *testing.T) {
	cause := errors.New("no frame source")
	platform := &fakePlatform{frameErr: cause}
	sched := NewFrameScheduler(platform)

	err := sched.Start(func(bool) {})
	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.ErrorIs(t, err, cause)
	assert.False(t, sched.Running())
}

func TestStartTwice(t *testing.T) {
	platform := &fakePlatform{}
	sched := NewFrameScheduler(platform)
	rec := &recorder{}
	require.NoError(t, sched.Start(rec.callback))

	err := sched.Start(rec.callback)
	var initErr *InitError
	require.ErrorAs(t, err, &initErr)

	// The original loop keeps running; the second Start scheduled nothing.
	assert.Equal(t, []bool{true}, rec.calls)
	assert.Len(t, platform.frames, 1)
}
