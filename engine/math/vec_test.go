package math

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/gxmath/engine/core"
)

func TestVec2(t *testing.T) {
	var n Vec2
	n.CalculateNormalFast(Vec2{0, 0}, Vec2{2, 0})
	assert.Equal(t, Vec2{0, 2}, n)

	n.CalculateNormal(Vec2{0, 0}, Vec2{2, 0})
	assert.Equal(t, Vec2{0, 1}, n)

	var v Vec2
	v.SumScaled(Vec2{1, 1}, 2, Vec2{3, -1})
	assert.Equal(t, Vec2{7, -1}, v)

	v.Reverse()
	assert.Equal(t, Vec2{-7, 1}, v)

	assert.InDelta(t, 5.0, Vec2{3, 4}.Length(), testEpsilon)
	assert.InDelta(t, 5.0, Vec2{0, 0}.Distance(Vec2{3, 4}), testEpsilon)
}

func TestNormalizeZeroVector(t *testing.T) {
	v2 := Vec2{}
	v2.Normalize()
	assert.True(t, math32.IsNaN(v2.X))

	v3 := Vec3{}
	v3.Normalize()
	assert.True(t, math32.IsNaN(v3.X))
}

func TestVec3Operations(t *testing.T) {
	tests := []struct {
		name     string
		actual   func() Vec3
		expected Vec3
	}{
		{
			name: "cross product follows the right hand rule",
			actual: func() Vec3 {
				var v Vec3
				v.CrossProduct(AbsoluteX(), AbsoluteY())
				return v
			},
			expected: AbsoluteZ(),
		},
		{
			name: "linear interpolation",
			actual: func() Vec3 {
				var v Vec3
				v.LinearInterpolation(Vec3{}, Vec3{10, -4, 0}, 0.25)
				return v
			},
			expected: Vec3{2.5, -1, 0},
		},
		{
			name: "interpolation is not clamped",
			actual: func() Vec3 {
				var v Vec3
				v.LinearInterpolation(Vec3{}, Vec3{1, 0, 0}, 2)
				return v
			},
			expected: Vec3{2, 0, 0},
		},
		{
			name: "projection on an axis",
			actual: func() Vec3 {
				var v Vec3
				v.Project(Vec3{2, 2, 0}, AbsoluteX())
				return v
			},
			expected: Vec3{2, 0, 0},
		},
		{
			name: "reverse",
			actual: func() Vec3 {
				v := Vec3{1, -2, 3}
				v.Reverse()
				return v
			},
			expected: Vec3{-1, 2, -3},
		},
		{
			name: "normalize",
			actual: func() Vec3 {
				v := Vec3{0, 3, 4}
				v.Normalize()
				return v
			},
			expected: Vec3{0, 0.6, 0.8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec3InDelta(t, tt.expected, tt.actual(), testEpsilon)
		})
	}
}

func TestVec3Conversions(t *testing.T) {
	v := NewVec3(1, 2, 3)
	assert.Equal(t, Vec4{1, 2, 3, 1}, v.ToVec4(1))
	assert.Equal(t, v, NewVec3FromVec4(Vec4{1, 2, 3, 9}))
	assert.True(t, v.Compare(Vec3{1.00001, 2, 3}, testEpsilon))
	assert.False(t, v.IsEqual(Vec3{1.00001, 2, 3}))
}

func TestMakeOrthonormalBasis(t *testing.T) {
	t.Run("skewed input", func(t *testing.T) {
		x, y, z := Vec3{2, 0, 0}, Vec3{1, 1, 0}, Vec3{}
		require.NoError(t, MakeOrthonormalBasis(&x, &y, &z))

		assertVec3InDelta(t, AbsoluteX(), x, testEpsilon)
		assertVec3InDelta(t, AbsoluteY(), y, testEpsilon)
		assertVec3InDelta(t, AbsoluteZ(), z, testEpsilon)
	})

	t.Run("arbitrary input is orthonormal and right handed", func(t *testing.T) {
		x, y, z := Vec3{0.3, -1.2, 2}, Vec3{4, 0.1, -0.5}, Vec3{}
		require.NoError(t, MakeOrthonormalBasis(&x, &y, &z))

		assert.InDelta(t, 0, x.Dot(y), testEpsilon)
		assert.InDelta(t, 0, y.Dot(z), testEpsilon)
		assert.InDelta(t, 0, z.Dot(x), testEpsilon)
		assert.InDelta(t, 1, x.Length(), testEpsilon)
		assertVec3InDelta(t, z, x.Cross(y), testEpsilon)
	})

	t.Run("parallel input", func(t *testing.T) {
		x, y, z := Vec3{1, 0, 0}, Vec3{-3, 0, 0}, Vec3{7, 7, 7}
		err := MakeOrthonormalBasis(&x, &y, &z)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrParallelBasis))
		assert.True(t, errors.Is(err, core.ErrInvalidOperation))

		assert.Equal(t, Vec3{1, 0, 0}, x)
		assert.Equal(t, Vec3{-3, 0, 0}, y)
		assert.Equal(t, Vec3{7, 7, 7}, z)
	})
}

func TestVec4(t *testing.T) {
	var v Vec4
	v.Sum(Vec4{1, 2, 3, 4}, Vec4{1, 1, 1, 1})
	assert.Equal(t, Vec4{2, 3, 4, 5}, v)

	v.Subtract(v, Vec4{2, 3, 4, 5})
	assert.Equal(t, Vec4{}, v)

	assert.Equal(t, float32(30), Vec4{1, 2, 3, 4}.Dot(Vec4{1, 2, 3, 4}))
	assert.Equal(t, Vec3{1, 2, 3}, Vec4{1, 2, 3, 4}.ToVec3())
}

func TestVec6(t *testing.T) {
	var v Vec6
	v.From(Vec3{1, 2, 3}, Vec3{4, 5, 6})
	assert.Equal(t, [6]float32{1, 2, 3, 4, 5, 6}, v.Data)
	assert.Equal(t, Vec3{1, 2, 3}, v.Linear())
	assert.Equal(t, Vec3{4, 5, 6}, v.Angular())
	assert.Equal(t, float32(91), v.Dot(v))

	var scaled Vec6
	scaled.SumScaled(v, -1, v)
	assert.Equal(t, Vec6{}, scaled)

	scaled.MultiplyScalar(v, 2)
	assert.Equal(t, NewVec6(2, 4, 6, 8, 10, 12), scaled)
}
