package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/prism-go/common"
)

const epsilon = 1e-5

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera()

	assert.InDelta(t, 90.0*math.Pi/180.0, cam.Fov(), epsilon)
	assert.InDelta(t, 16.0/9.0, cam.Aspect(), epsilon)
}

func TestNewCameraOptions(t *testing.T) {
	cam := NewCamera(
		WithFov(math.Pi/3),
		WithAspect(4.0/3.0),
	)

	assert.InDelta(t, math.Pi/3, cam.Fov(), epsilon)
	assert.InDelta(t, 4.0/3.0, cam.Aspect(), epsilon)
}

func TestProjectionTracksAspect(t *testing.T) {
	cam := NewCamera(WithAspect(1))
	before := cam.ProjectionMatrix()

	cam.SetAspect(2)
	after := cam.ProjectionMatrix()

	// Horizontal scale halves when the aspect ratio doubles.
	assert.InDelta(t, before[0]/2, after[0], epsilon)
	assert.InDelta(t, before[5], after[5], epsilon)
}

func TestSetAspectIgnoresInvalidValues(t *testing.T) {
	cam := NewCamera(WithAspect(1))
	before := cam.ProjectionMatrix()

	cam.SetAspect(0)
	cam.SetAspect(-2)

	assert.Equal(t, before, cam.ProjectionMatrix())
}

func TestViewMatrixTracksPosition(t *testing.T) {
	cam := NewCamera(
		WithPosition(0, 0, 5),
		WithTarget(0, 0, 0),
	)

	view := cam.ViewMatrix()
	// The target lands on the negative view z axis at eye distance.
	z := view[2]*0 + view[6]*0 + view[10]*0 + view[14]
	assert.InDelta(t, -5, z, epsilon)

	cam.SetPosition(0, 0, 8)
	view = cam.ViewMatrix()
	z = view[14]
	assert.InDelta(t, -8, z, epsilon)
}

func TestViewProjectionIsProduct(t *testing.T) {
	cam := NewCamera(
		WithPosition(1, 2, 3),
		WithTarget(0, 0, 0),
		WithFov(math.Pi/4),
		WithAspect(1.5),
	)

	proj := cam.ProjectionMatrix()
	view := cam.ViewMatrix()
	var want [16]float32
	common.Mul4(want[:], proj[:], view[:])

	got := cam.ViewProjectionMatrix()
	for i := range want {
		assert.InDelta(t, want[i], got[i], epsilon, "element %d", i)
	}
}

func TestMatricesStableWithoutChanges(t *testing.T) {
	cam := NewCamera()

	first := cam.ViewProjectionMatrix()
	second := cam.ViewProjectionMatrix()
	assert.Equal(t, first, second)

	cam.SetTarget(1, 0, 0)
	assert.NotEqual(t, first, cam.ViewProjectionMatrix())
}
