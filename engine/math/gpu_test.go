package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func TestF32Layout(t *testing.T) {
	m := NewMat4Translation(Vec3{1, 2, 3})
	blob := m.F32()
	assert.Equal(t, float32(1), blob[12])
	assert.Equal(t, float32(2), blob[13])
	assert.Equal(t, float32(3), blob[14])
	assert.Equal(t, m, NewMat4FromF32(blob))

	rotation := NewMat3Identity()
	rotation.SetX(Vec3{0, 1, 0})
	assert.Equal(t, rotation, NewMat3FromF32(rotation.F32()))

	assert.Equal(t, f32.Vec3{1, 2, 3}, Vec3{1, 2, 3}.F32())
	assert.Equal(t, Vec2{4, 5}, NewVec2FromF32(f32.Vec2{4, 5}))
	assert.Equal(t, Vec3{1, 2, 3}, NewVec3FromF32(Vec3{1, 2, 3}.F32()))
	assert.Equal(t, Vec4{1, 2, 3, 4}, NewVec4FromF32(Vec4{1, 2, 3, 4}.F32()))
	assert.Equal(t, f32.Vec2{4, 5}, Vec2{4, 5}.F32())
	assert.Equal(t, f32.Vec4{0.1, 0.2, 0.3, 1}, ColorRGB{0.1, 0.2, 0.3, 1}.F32())
}
