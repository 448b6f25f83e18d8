package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestAABBStates(t *testing.T) {
	box := NewAABB()
	assert.Equal(t, AABBEmpty, box.State())
	assert.Equal(t, Vec3{K_FLOAT_MAX, K_FLOAT_MAX, K_FLOAT_MAX}, box.Min)
	assert.Equal(t, Vec3{-K_FLOAT_MAX, -K_FLOAT_MAX, -K_FLOAT_MAX}, box.Max)
	assert.Equal(t, float32(-1), box.Width())

	box.AddVertex(Vec3{1, 2, 3})
	assert.Equal(t, AABBPoint, box.State())
	assert.Equal(t, Vec3{1, 2, 3}, box.Min)
	assert.Equal(t, float32(-1), box.Width())
	assert.Equal(t, float32(-1), box.Height())
	assert.Equal(t, float32(-1), box.Depth())

	box.AddVertex(Vec3{0, 4, 3})
	assert.Equal(t, AABBBox, box.State())
	assert.Equal(t, float32(1), box.Width())
	assert.Equal(t, float32(2), box.Height())
	assert.Equal(t, float32(0), box.Depth())
}

func TestAABBSecondVertexOrdering(t *testing.T) {
	p := Vec3{1, 5, 2}
	q := Vec3{3, 0, 2}

	tests := []struct {
		name   string
		points []Vec3
	}{
		{name: "p then q", points: []Vec3{p, q}},
		{name: "q then p", points: []Vec3{q, p}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewAABB()
			for _, point := range tt.points {
				box.AddVertex(point)
			}
			assert.Equal(t, Vec3{1, 0, 2}, box.Min)
			assert.Equal(t, Vec3{3, 5, 2}, box.Max)
		})
	}
}

func TestAABBContainsEveryVertex(t *testing.T) {
	RandomizeWithSeed(7)
	box := NewAABB()
	points := make([]Vec3, 0, 64)
	for i := 0; i < 64; i++ {
		point := RandomBetweenVec3(Vec3{-10, -10, -10}, Vec3{10, 10, 10})
		points = append(points, point)
		box.AddVertex(point)
	}

	for _, point := range points {
		assert.True(t, box.IsOverlapedPoint(point), "%v outside %v", point, box)
	}
}

func TestAABBQueries(t *testing.T) {
	box := NewAABBFromExtents(Extents3D{Min: Vec3{0, 0, 0}, Max: Vec3{2, 2, 2}})
	assert.Equal(t, Vec3{1, 1, 1}, box.Center())
	assert.InDelta(t, math32.Sqrt(3), box.SphereRadius(), testEpsilon)
	assert.Equal(t, Extents3D{Min: Vec3{0, 0, 0}, Max: Vec3{2, 2, 2}}, box.Extents())

	tests := []struct {
		name     string
		other    Extents3D
		expected bool
	}{
		{name: "inside", other: Extents3D{Min: Vec3{0.5, 0.5, 0.5}, Max: Vec3{1, 1, 1}}, expected: true},
		{name: "partial", other: Extents3D{Min: Vec3{1, 1, 1}, Max: Vec3{3, 3, 3}}, expected: true},
		{name: "touching", other: Extents3D{Min: Vec3{2, 0, 0}, Max: Vec3{3, 1, 1}}, expected: true},
		{name: "apart on x", other: Extents3D{Min: Vec3{2.5, 0, 0}, Max: Vec3{3, 1, 1}}, expected: false},
		{name: "apart on z", other: Extents3D{Min: Vec3{0, 0, -3}, Max: Vec3{1, 1, -1}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := NewAABBFromExtents(tt.other)
			assert.Equal(t, tt.expected, box.IsOverlaped(other))
			assert.Equal(t, tt.expected, other.IsOverlaped(box))
		})
	}

	assert.True(t, box.IsOverlapedPoint(Vec3{2, 0, 1}))
	assert.False(t, box.IsOverlapedPoint(Vec3{2, -0.1, 1}))
}

func TestAABBTransform(t *testing.T) {
	box := NewAABBFromExtents(Extents3D{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}})

	moved := box.Transformed(NewMat4Translation(Vec3{10, 0, -5}))
	assert.Equal(t, Vec3{9, -1, -6}, moved.Min)
	assert.Equal(t, Vec3{11, 1, -4}, moved.Max)
	assert.Equal(t, AABBBox, moved.State())

	// an eighth of a turn around y grows the box to the rotated corners
	rotated := box.Transformed(NewMat4EulerY(K_QUARTER_PI))
	assert.InDelta(t, -K_SQRT_TWO, rotated.Min.X, testEpsilon)
	assert.InDelta(t, K_SQRT_TWO, rotated.Max.Z, testEpsilon)
	assert.InDelta(t, 2, rotated.Height(), testEpsilon)
}
