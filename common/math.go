// package common contains common types and helpers that are used throughout this engine.
// They are not interface-wrapped structs, just plain functions and data-types.
package common

import "math"

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix.
// Uses the finite-far-plane convention for OpenGL clip space [-1, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	rng := 1.0 / (near - far)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = (near + far) * rng
	out[11] = -1.0
	out[14] = near * far * rng * 2.0
	out[15] = 0.0
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point the camera looks at
//   - upX, upY, upZ: up vector defining camera orientation (typically 0,1,0)
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	z0 := eyeX - centerX
	z1 := eyeY - centerY
	z2 := eyeZ - centerZ
	val := float64(z0*z0 + z1*z1 + z2*z2)
	if val == 0 {
		val = 1
	}
	invLen := 1.0 / float32(math.Sqrt(val))
	z0 *= invLen
	z1 *= invLen
	z2 *= invLen

	x0 := upY*z2 - upZ*z1
	x1 := upZ*z0 - upX*z2
	x2 := upX*z1 - upY*z0
	val = float64(x0*x0 + x1*x1 + x2*x2)
	if val == 0 {
		val = 1
	}
	invLen = 1.0 / float32(math.Sqrt(val))
	x0 *= invLen
	x1 *= invLen
	x2 *= invLen

	y0 := z1*x2 - z2*x1
	y1 := z2*x0 - z0*x2
	y2 := z0*x1 - z1*x0

	out[0], out[4], out[8], out[12] = x0, x1, x2, -(x0*eyeX + x1*eyeY + x2*eyeZ)
	out[1], out[5], out[9], out[13] = y0, y1, y2, -(y0*eyeX + y1*eyeY + y2*eyeZ)
	out[2], out[6], out[10], out[14] = z0, z1, z2, -(z0*eyeX + z1*eyeY + z2*eyeZ)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// RotateAxisAngle rotates the 3-vector (x, y, z) around the given axis by theta
// radians using the axis-angle rotation matrix. The axis does not need to be
// normalized.
//
// Parameters:
//   - x, y, z: the vector components to rotate
//   - axisX, axisY, axisZ: the rotation axis
//   - theta: rotation angle in radians
//
// Returns:
//   - float32: the rotated x component
//   - float32: the rotated y component
//   - float32: the rotated z component
func RotateAxisAngle(x, y, z, axisX, axisY, axisZ, theta float32) (float32, float32, float32) {
	mag := float32(math.Sqrt(float64(axisX*axisX + axisY*axisY + axisZ*axisZ)))
	if mag == 0 {
		return x, y, z
	}
	ux, uy, uz := axisX/mag, axisY/mag, axisZ/mag
	snt := float32(math.Sin(float64(theta)))
	cst := float32(math.Cos(float64(theta)))
	ocst := 1 - cst

	rx := (cst+ux*ux*ocst)*x + (ux*uy*ocst-uz*snt)*y + (ux*uz*ocst+uy*snt)*z
	ry := (uy*ux*ocst+uz*snt)*x + (cst+uy*uy*ocst)*y + (uy*uz*ocst-ux*snt)*z
	rz := (uz*ux*ocst-uy*snt)*x + (uz*uy*ocst+ux*snt)*y + (cst+uz*uz*ocst)*z
	return rx, ry, rz
}
