// package camera holds perspective settings and computes view/projection
// matrices for a scene. Scenes update the aspect ratio on layout passes only,
// so projection state is not recomputed every frame.
package camera

import (
	"math"

	"github.com/Carmen-Shannon/prism-go/common"
)

type cameraImpl struct {
	eye    [3]float32
	target [3]float32
	up     [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32

	// dirty marks the cached matrices stale after a settings change.
	dirty bool
}

// Camera defines the interface for the camera system.
// The camera holds perspective settings and computes view/projection matrices
// lazily when they are read.
type Camera interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect updates the aspect ratio. Call on layout passes when the
	// output surface changes size.
	//
	// Parameters:
	//   - aspect: the new aspect ratio (width / height)
	SetAspect(aspect float32)

	// SetFov updates the vertical field of view.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetPosition moves the camera eye point.
	//
	// Parameters:
	//   - x, y, z: eye position in world space
	SetPosition(x, y, z float32)

	// SetTarget changes the point the camera looks at.
	//
	// Parameters:
	//   - x, y, z: target point in world space
	SetTarget(x, y, z float32)

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns projection * view as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the specified options.
// Applies sensible perspective defaults first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the configured camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		eye:   [3]float32{0, 0, 3},
		up:    [3]float32{0, 1, 0},
		dirty: true,
	}
	for _, opt := range options {
		opt(c)
	}
	c.fov = common.Coalesce(c.fov, float32(90.0*math.Pi/180.0))
	c.aspect = common.Coalesce(c.aspect, 16.0/9.0)
	c.near = common.Coalesce(c.near, 0.1)
	c.far = common.Coalesce(c.far, 1000.0)
	return c
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if aspect > 0 && aspect != c.aspect {
		c.aspect = aspect
		c.dirty = true
	}
}

func (c *cameraImpl) SetFov(fov float32) {
	if fov > 0 && fov != c.fov {
		c.fov = fov
		c.dirty = true
	}
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.eye = [3]float32{x, y, z}
	c.dirty = true
}

func (c *cameraImpl) SetTarget(x, y, z float32) {
	c.target = [3]float32{x, y, z}
	c.dirty = true
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.recompute()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.recompute()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.recompute()
	return c.viewProjectionMatrix
}

// recompute rebuilds the cached matrices if any setting changed since the
// last read.
func (c *cameraImpl) recompute() {
	if !c.dirty {
		return
	}
	common.Perspective(c.projectionMatrix[:], c.fov, c.aspect, c.near, c.far)
	common.LookAt(c.viewMatrix[:],
		c.eye[0], c.eye[1], c.eye[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2])
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
	c.dirty = false
}
