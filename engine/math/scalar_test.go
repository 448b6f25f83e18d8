package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(3), Clamp[float32](5, 0, 3))
	assert.Equal(t, float32(0), Clamp[float32](-1, 0, 3))
	assert.Equal(t, float32(1.5), Clamp[float32](1.5, 0, 3))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, uint8(7), Clamp[uint8](7, 1, 9))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, float32(-2), Min[float32](-2, 4))
	assert.Equal(t, float32(4), Max[float32](-2, 4))
	assert.Equal(t, 3, Min(3, 3))
}

func TestAngleConversion(t *testing.T) {
	tests := []struct {
		name    string
		degrees float32
		radians float32
	}{
		{name: "zero", degrees: 0, radians: 0},
		{name: "right angle", degrees: 90, radians: K_HALF_PI},
		{name: "half turn", degrees: 180, radians: K_PI},
		{name: "negative", degrees: -45, radians: -K_QUARTER_PI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.radians, DegToRad(tt.degrees), testEpsilon)
			assert.InDelta(t, tt.degrees, RadToDeg(tt.radians), 1e-2)
		})
	}
}

func TestTruncatedMultipliers(t *testing.T) {
	// the multipliers are intentionally not full precision
	assert.InDelta(t, 3.141594, DegToRad(180), 1e-6)
	assert.NotEqual(t, K_PI, DegToRad(180))
}

func TestConvert3DSMax(t *testing.T) {
	assert.Equal(t, Vec3{-1, 3, -2}, Convert3DSMax(1, 2, 3))
}

func TestEulerMatrix(t *testing.T) {
	e := NewEuler(0.3, -0.7, 1.1)
	assertMat4InDelta(t, NewMat4EulerXYZ(0.3, -0.7, 1.1), e.Matrix(), 1e-6)
}

func TestRandom(t *testing.T) {
	RandomizeWithSeed(42)
	first := []float32{RandomNormalized(), RandomNormalized(), RandomNormalized()}

	RandomizeWithSeed(42)
	second := []float32{RandomNormalized(), RandomNormalized(), RandomNormalized()}
	assert.Equal(t, first, second)

	for i := 0; i < 1000; i++ {
		n := RandomNormalized()
		assert.GreaterOrEqual(t, n, float32(0))
		assert.Less(t, n, float32(1))

		v := RandomBetween(-5, 5)
		assert.GreaterOrEqual(t, v, float32(-5))
		assert.Less(t, v, float32(5))
	}

	from, to := Vec3{-1, 0, 10}, Vec3{1, 2, 20}
	bounds := NewAABBFromExtents(Extents3D{Min: from, Max: to})
	for i := 0; i < 100; i++ {
		assert.True(t, bounds.IsOverlapedPoint(RandomBetweenVec3(from, to)))
	}
}
