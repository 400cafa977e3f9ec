package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

// transformPoint applies a column-major 4x4 matrix to (x, y, z, 1) and
// returns the clip-space result.
func transformPoint(m []float32, x, y, z float32) (float32, float32, float32, float32) {
	cx := m[0]*x + m[4]*y + m[8]*z + m[12]
	cy := m[1]*x + m[5]*y + m[9]*z + m[13]
	cz := m[2]*x + m[6]*y + m[10]*z + m[14]
	cw := m[3]*x + m[7]*y + m[11]*z + m[15]
	return cx, cy, cz, cw
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)

	for i := 0; i < 16; i++ {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		assert.Equal(t, want, m[i], "element %d", i)
	}
}

func TestMul4IdentityIsNeutral(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)
	a := []float32{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		5, 6, 7, 1,
	}

	out := make([]float32, 16)
	Mul4(out, a, id)
	assert.Equal(t, a, out)
	Mul4(out, id, a)
	assert.Equal(t, a, out)
}

func TestMul4ComposesTranslations(t *testing.T) {
	translation := func(x, y, z float32) []float32 {
		m := make([]float32, 16)
		Identity(m)
		m[12], m[13], m[14] = x, y, z
		return m
	}

	out := make([]float32, 16)
	Mul4(out, translation(1, 2, 3), translation(10, 20, 30))
	assert.InDelta(t, 11, out[12], epsilon)
	assert.InDelta(t, 22, out[13], epsilon)
	assert.InDelta(t, 33, out[14], epsilon)
}

func TestMul4InPlaceDestination(t *testing.T) {
	a := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		4, 5, 6, 1,
	}
	b := make([]float32, 16)
	copy(b, a)

	// out aliasing an operand must still produce the correct product.
	Mul4(a, a, b)
	assert.InDelta(t, 8, a[12], epsilon)
	assert.InDelta(t, 10, a[13], epsilon)
	assert.InDelta(t, 12, a[14], epsilon)
}

func TestPerspectiveMapsClipPlanes(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, math.Pi/2, 1.0, 1.0, 3.0)

	// 90 degree fov at aspect 1 leaves x and y unscaled.
	assert.InDelta(t, 1, m[0], epsilon)
	assert.InDelta(t, 1, m[5], epsilon)

	// A point on the near plane maps to NDC z = -1.
	_, _, cz, cw := transformPoint(m, 0, 0, -1)
	require.NotZero(t, cw)
	assert.InDelta(t, -1, cz/cw, epsilon)

	// A point on the far plane maps to NDC z = +1.
	_, _, cz, cw = transformPoint(m, 0, 0, -3)
	require.NotZero(t, cw)
	assert.InDelta(t, 1, cz/cw, epsilon)
}

func TestLookAtTransformsWorldToView(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 0, 0, 3, 0, 0, 0, 0, 1, 0)

	// The target lands on the negative view z axis at eye distance.
	x, y, z, w := transformPoint(m, 0, 0, 0)
	assert.InDelta(t, 0, x, epsilon)
	assert.InDelta(t, 0, y, epsilon)
	assert.InDelta(t, -3, z, epsilon)
	assert.InDelta(t, 1, w, epsilon)

	// The eye lands at the view-space origin.
	x, y, z, _ = transformPoint(m, 0, 0, 3)
	assert.InDelta(t, 0, x, epsilon)
	assert.InDelta(t, 0, y, epsilon)
	assert.InDelta(t, 0, z, epsilon)
}

func TestRotateAxisAngle(t *testing.T) {
	tests := []struct {
		name                string
		x, y, z             float32
		axisX, axisY, axisZ float32
		theta               float32
		wantX, wantY, wantZ float32
	}{
		{name: "quarter turn around y", x: 1, axisY: 1, theta: math.Pi / 2, wantZ: -1},
		{name: "half turn around y", x: 1, axisY: 1, theta: math.Pi, wantX: -1},
		{name: "quarter turn around x", y: 1, axisX: 1, theta: math.Pi / 2, wantZ: 1},
		{name: "quarter turn around z", x: 1, axisZ: 1, theta: math.Pi / 2, wantY: 1},
		{name: "zero angle", x: 1, y: 2, z: 3, axisY: 1, wantX: 1, wantY: 2, wantZ: 3},
		{name: "unnormalized axis", x: 1, axisY: 5, theta: math.Pi / 2, wantZ: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY, gotZ := RotateAxisAngle(tt.x, tt.y, tt.z, tt.axisX, tt.axisY, tt.axisZ, tt.theta)
			assert.InDelta(t, tt.wantX, gotX, epsilon)
			assert.InDelta(t, tt.wantY, gotY, epsilon)
			assert.InDelta(t, tt.wantZ, gotZ, epsilon)
		})
	}
}

func TestRotateAxisAngleZeroAxisIsIdentity(t *testing.T) {
	x, y, z := RotateAxisAngle(1, 2, 3, 0, 0, 0, math.Pi/2)
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(2), y)
	assert.Equal(t, float32(3), z)
}

func TestRotateAxisAnglePreservesLength(t *testing.T) {
	x, y, z := RotateAxisAngle(1, 2, 3, 1, 1, 1, 0.7)
	got := math.Sqrt(float64(x*x + y*y + z*z))
	want := math.Sqrt(float64(1 + 4 + 9))
	assert.InDelta(t, want, got, epsilon)
}
