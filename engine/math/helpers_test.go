package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEpsilon = 1e-4

func assertVec3InDelta(t *testing.T, expected, actual Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "x: expected %v, got %v", expected, actual)
	assert.InDelta(t, expected.Y, actual.Y, delta, "y: expected %v, got %v", expected, actual)
	assert.InDelta(t, expected.Z, actual.Z, delta, "z: expected %v, got %v", expected, actual)
}

func assertMat4InDelta(t *testing.T, expected, actual Mat4, delta float64) {
	t.Helper()
	for i := range expected.Data {
		assert.InDelta(t, expected.Data[i], actual.Data[i], delta, "element %d", i)
	}
}

// assertSameRotation accepts q and -q, which describe the same rotation.
func assertSameRotation(t *testing.T, expected, actual Quaternion, delta float64) {
	t.Helper()
	dot := expected.Dot(actual)
	if dot < 0 {
		dot = -dot
	}
	assert.InDelta(t, 1.0, dot, delta, "expected %v, got %v", expected, actual)
}
