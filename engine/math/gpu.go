package math

import "golang.org/x/image/math/f32"

// The f32 types share the memory layout of the types below, so uniform
// buffers can be filled with a plain copy. Mat4 rows hold the basis axes with
// the translation in the last row, which is what column-major shader code
// expects byte for byte.

func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

func NewVec2FromF32(v f32.Vec2) Vec2 {
	return Vec2{X: v[0], Y: v[1]}
}

func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

func NewVec3FromF32(v f32.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

func NewVec4FromF32(v f32.Vec4) Vec4 {
	return Vec4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

func (m Mat3) F32() f32.Mat3 {
	return f32.Mat3(m.Data)
}

func NewMat3FromF32(m f32.Mat3) Mat3 {
	return Mat3{Data: [9]float32(m)}
}

func (mt Mat4) F32() f32.Mat4 {
	return f32.Mat4(mt.Data)
}

func NewMat4FromF32(m f32.Mat4) Mat4 {
	return Mat4{Data: [16]float32(m)}
}

// F32 packs a colour as RGBA.
func (c ColorRGB) F32() f32.Vec4 {
	return f32.Vec4{c.R, c.G, c.B, c.A}
}
