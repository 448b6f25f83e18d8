package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func box(min, max Vec3) AABB {
	return NewAABBFromExtents(Extents3D{Min: min, Max: max})
}

func TestProjectionClipPlanesVisibility(t *testing.T) {
	projection := NewMat4Perspective(DegToRad(90), 1, 1, 100)
	planes := NewProjectionClipPlanes(projection)

	tests := []struct {
		name     string
		bounds   AABB
		expected bool
	}{
		{name: "between the eye and the near plane", bounds: box(Vec3{-0.1, -0.1, -0.75}, Vec3{0.1, 0.1, -0.25}), expected: false},
		{name: "straddling the origin", bounds: box(Vec3{-1, -1, -10}, Vec3{1, 1, 1}), expected: true},
		{name: "in front", bounds: box(Vec3{-1, -1, -11}, Vec3{1, 1, -9}), expected: true},
		{name: "behind the viewer", bounds: box(Vec3{-1, -1, 5}, Vec3{1, 1, 6}), expected: false},
		{name: "beyond the far plane", bounds: box(Vec3{-1, -1, -300}, Vec3{1, 1, -200}), expected: false},
		{name: "left of the frustum", bounds: box(Vec3{-50, -1, -11}, Vec3{-20, 1, -9}), expected: false},
		{name: "above the frustum", bounds: box(Vec3{-1, 20, -11}, Vec3{1, 50, -9}), expected: false},
		{name: "partially inside", bounds: box(Vec3{5, -1, -11}, Vec3{50, 1, -9}), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, planes.IsVisible(tt.bounds))
		})
	}
}

func TestProjectionClipPlanesMask(t *testing.T) {
	planes := NewProjectionClipPlanes(NewMat4Perspective(DegToRad(90), 1, 1, 100))

	assert.Equal(t, uint8(0), planes.PlaneTest(Vec3{0, 0, -10}))
	assert.Equal(t, uint8(1<<ClipNear), planes.PlaneTest(Vec3{0, 0, -0.5}))
	assert.Equal(t, uint8(1<<ClipFar), planes.PlaneTest(Vec3{0, 0, -150}))
	assert.Equal(t, uint8(1<<ClipLeft), planes.PlaneTest(Vec3{-20, 0, -10}))
	assert.Equal(t, uint8(1<<ClipRight), planes.PlaneTest(Vec3{20, 0, -10}))
	assert.Equal(t, uint8(1<<ClipTop), planes.PlaneTest(Vec3{0, 20, -10}))
	assert.Equal(t, uint8(1<<ClipBottom), planes.PlaneTest(Vec3{0, -20, -10}))
}

func TestProjectionClipPlanesWithView(t *testing.T) {
	view := NewMat4LookAt(Vec3{0, 0, 10}, Vec3{}, AbsoluteY())
	projection := NewMat4Perspective(DegToRad(60), 16.0/9.0, 0.1, 50)
	planes := NewProjectionClipPlanes(view.Mul(projection))

	assert.True(t, planes.IsVisible(box(Vec3{-1, -1, -1}, Vec3{1, 1, 1})))
	assert.False(t, planes.IsVisible(box(Vec3{-1, -1, 11}, Vec3{1, 1, 12})))
}
