package math

import "github.com/chewxy/math32"

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Identity()
	return out_matrix
}

// At returns the element at row, col.
func (mt Mat4) At(row, col int) float32 {
	return mt.Data[row*4+col]
}

func (mt *Mat4) Set(row, col int, value float32) {
	mt.Data[row*4+col] = value
}

func (mt *Mat4) Identity() {
	mt.Data = [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (mt *Mat4) Zeros() {
	mt.Data = [16]float32{}
}

func (mt *Mat4) SetX(x Vec3) { mt.setRow(0, x) }
func (mt *Mat4) SetY(y Vec3) { mt.setRow(1, y) }
func (mt *Mat4) SetZ(z Vec3) { mt.setRow(2, z) }
func (mt *Mat4) SetW(w Vec3) { mt.setRow(3, w) }

func (mt Mat4) X() Vec3 { return mt.row(0) }
func (mt Mat4) Y() Vec3 { return mt.row(1) }
func (mt Mat4) Z() Vec3 { return mt.row(2) }
func (mt Mat4) W() Vec3 { return mt.row(3) }

// setRow writes the first three elements of a row; column 3 is untouched.
func (mt *Mat4) setRow(row int, v Vec3) {
	mt.Data[row*4+0] = v.X
	mt.Data[row*4+1] = v.Y
	mt.Data[row*4+2] = v.Z
}

func (mt Mat4) row(row int) Vec3 {
	return Vec3{mt.Data[row*4+0], mt.Data[row*4+1], mt.Data[row*4+2]}
}

/**
 * @brief Writes the rotation of a quaternion of any non-zero length into the
 * upper-left 3x3 block. Everything else is left as is.
 */
func (mt *Mat4) SetRotation(q Quaternion) {
	var r Mat3
	r.FromQuat(q)
	mt.setRotation(r)
}

// SetRotationFast is SetRotation for unit quaternions.
func (mt *Mat4) SetRotationFast(q Quaternion) {
	var r Mat3
	r.FromQuatFast(q)
	mt.setRotation(r)
}

func (mt *Mat4) setRotation(r Mat3) {
	mt.SetX(r.X())
	mt.SetY(r.Y())
	mt.SetZ(r.Z())
}

// SetOrigin writes the translation row, leaving the W column untouched.
func (mt *Mat4) SetOrigin(origin Vec3) {
	mt.SetW(origin)
}

func (mt *Mat4) TranslateTo(x, y, z float32) {
	mt.SetW(Vec3{x, y, z})
}

/**
 * @brief Builds a rigid transform from a rotation and an origin.
 */
func (mt *Mat4) From(q Quaternion, origin Vec3) {
	mt.SetRotation(q)
	mt.SetOrigin(origin)
	mt.clearProjection()
}

func (mt *Mat4) FromFast(q Quaternion, origin Vec3) {
	mt.SetRotationFast(q)
	mt.SetOrigin(origin)
	mt.clearProjection()
}

func (mt *Mat4) FromMat3(rotation Mat3, origin Vec3) {
	mt.setRotation(rotation)
	mt.SetW(origin)
	mt.clearProjection()
}

/**
 * @brief Builds a transform whose Z axis is zDirection, see Mat3.FromZDirection.
 * Only element [3][3] of the W column is written.
 */
func (mt *Mat4) FromZDirection(zDirection, origin Vec3) {
	xAxis, yAxis := basisFromZ(zDirection)
	mt.SetX(xAxis)
	mt.SetY(yAxis)
	mt.SetZ(zDirection)
	mt.SetW(origin)
	mt.Data[15] = 1.0
}

func (mt *Mat4) clearProjection() {
	mt.Data[3], mt.Data[7], mt.Data[11] = 0.0, 0.0, 0.0
	mt.Data[15] = 1.0
}

/**
 * @brief Resets the matrix to a translation.
 */
func (mt *Mat4) Translation(x, y, z float32) {
	mt.Identity()
	mt.Data[12] = x
	mt.Data[13] = y
	mt.Data[14] = z
}

/**
 * @brief Resets the matrix to a rotation around the X axis.
 */
func (mt *Mat4) RotationX(angle float32) {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	mt.Identity()
	mt.Data[5] = c
	mt.Data[6] = s
	mt.Data[9] = -s
	mt.Data[10] = c
}

/**
 * @brief Resets the matrix to a rotation around the Y axis.
 */
func (mt *Mat4) RotationY(angle float32) {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	mt.Identity()
	mt.Data[0] = c
	mt.Data[2] = -s
	mt.Data[8] = s
	mt.Data[10] = c
}

/**
 * @brief Resets the matrix to a rotation around the Z axis.
 */
func (mt *Mat4) RotationZ(angle float32) {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	mt.Identity()
	mt.Data[0] = c
	mt.Data[1] = s
	mt.Data[4] = -s
	mt.Data[5] = c
}

// RotationXY stores RotationX(pitch) * RotationY(yaw).
func (mt *Mat4) RotationXY(pitch, yaw float32) {
	var x, y Mat4
	x.RotationX(pitch)
	y.RotationY(yaw)
	mt.Multiply(x, y)
}

// RotationXYZ stores (RotationX(pitch) * RotationY(yaw)) * RotationZ(roll).
func (mt *Mat4) RotationXYZ(pitch, yaw, roll float32) {
	var x, y, z, temp Mat4
	x.RotationX(pitch)
	y.RotationY(yaw)
	z.RotationZ(roll)
	temp.Multiply(x, y)
	mt.Multiply(temp, z)
}

/**
 * @brief Resets the matrix to a scale.
 */
func (mt *Mat4) Scale(x, y, z float32) {
	mt.Identity()
	mt.Data[0] = x
	mt.Data[5] = y
	mt.Data[10] = z
}

/**
 * @brief Stores the rotation of source with every axis re-normalized, no
 * translation and no projection. Skewed axes stay skewed.
 */
func (mt *Mat4) ClearRotation(source Mat4) {
	var r Mat3
	r.ClearRotationMat4(source)
	mt.clearRotation(r)
}

func (mt *Mat4) ClearRotationMat3(source Mat3) {
	var r Mat3
	r.ClearRotation(source)
	mt.clearRotation(r)
}

func (mt *Mat4) clearRotation(r Mat3) {
	mt.setRotation(r)
	mt.Data[3], mt.Data[7], mt.Data[11] = 0.0, 0.0, 0.0
	mt.Data[12], mt.Data[13], mt.Data[14] = 0.0, 0.0, 0.0
	mt.Data[15] = 1.0
}

// ClearScale returns the length of each axis. Only meaningful without shear.
func (mt Mat4) ClearScale() Vec3 {
	return Vec3{mt.X().Length(), mt.Y().Length(), mt.Z().Length()}
}

/**
 * @brief Stores the inverse of source using 2x2 and 3x3 sub-determinants.
 * A singular matrix yields Inf/NaN elements.
 */
func (mt *Mat4) Inverse(source Mat4) {
	s := func(row, col int) float32 { return source.Data[row*4+col] }

	// 2x2 sub-determinants required to calculate 4x4 determinant
	det2_01_01 := s(0, 0)*s(1, 1) - s(1, 0)*s(0, 1)
	det2_01_02 := s(0, 0)*s(2, 1) - s(2, 0)*s(0, 1)
	det2_01_03 := s(0, 0)*s(3, 1) - s(3, 0)*s(0, 1)
	det2_01_12 := s(1, 0)*s(2, 1) - s(2, 0)*s(1, 1)
	det2_01_13 := s(1, 0)*s(3, 1) - s(3, 0)*s(1, 1)
	det2_01_23 := s(2, 0)*s(3, 1) - s(3, 0)*s(2, 1)

	// 3x3 sub-determinants required to calculate 4x4 determinant
	det3_201_012 := s(0, 2)*det2_01_12 - s(1, 2)*det2_01_02 + s(2, 2)*det2_01_01
	det3_201_013 := s(0, 2)*det2_01_13 - s(1, 2)*det2_01_03 + s(3, 2)*det2_01_01
	det3_201_023 := s(0, 2)*det2_01_23 - s(2, 2)*det2_01_03 + s(3, 2)*det2_01_02
	det3_201_123 := s(1, 2)*det2_01_23 - s(2, 2)*det2_01_13 + s(3, 2)*det2_01_12

	inverseDeterminant := 1.0 / (-det3_201_123*s(0, 3) + det3_201_023*s(1, 3) - det3_201_013*s(2, 3) + det3_201_012*s(3, 3))

	// remaining 2x2 sub-determinants
	det2_03_01 := s(0, 0)*s(1, 3) - s(1, 0)*s(0, 3)
	det2_03_02 := s(0, 0)*s(2, 3) - s(2, 0)*s(0, 3)
	det2_03_03 := s(0, 0)*s(3, 3) - s(3, 0)*s(0, 3)
	det2_03_12 := s(1, 0)*s(2, 3) - s(2, 0)*s(1, 3)
	det2_03_13 := s(1, 0)*s(3, 3) - s(3, 0)*s(1, 3)
	det2_03_23 := s(2, 0)*s(3, 3) - s(3, 0)*s(2, 3)

	det2_13_01 := s(0, 1)*s(1, 3) - s(1, 1)*s(0, 3)
	det2_13_02 := s(0, 1)*s(2, 3) - s(2, 1)*s(0, 3)
	det2_13_03 := s(0, 1)*s(3, 3) - s(3, 1)*s(0, 3)
	det2_13_12 := s(1, 1)*s(2, 3) - s(2, 1)*s(1, 3)
	det2_13_13 := s(1, 1)*s(3, 3) - s(3, 1)*s(1, 3)
	det2_13_23 := s(2, 1)*s(3, 3) - s(3, 1)*s(2, 3)

	// remaining 3x3 sub-determinants
	det3_203_012 := s(0, 2)*det2_03_12 - s(1, 2)*det2_03_02 + s(2, 2)*det2_03_01
	det3_203_013 := s(0, 2)*det2_03_13 - s(1, 2)*det2_03_03 + s(3, 2)*det2_03_01
	det3_203_023 := s(0, 2)*det2_03_23 - s(2, 2)*det2_03_03 + s(3, 2)*det2_03_02
	det3_203_123 := s(1, 2)*det2_03_23 - s(2, 2)*det2_03_13 + s(3, 2)*det2_03_12

	det3_213_012 := s(0, 2)*det2_13_12 - s(1, 2)*det2_13_02 + s(2, 2)*det2_13_01
	det3_213_013 := s(0, 2)*det2_13_13 - s(1, 2)*det2_13_03 + s(3, 2)*det2_13_01
	det3_213_023 := s(0, 2)*det2_13_23 - s(2, 2)*det2_13_03 + s(3, 2)*det2_13_02
	det3_213_123 := s(1, 2)*det2_13_23 - s(2, 2)*det2_13_13 + s(3, 2)*det2_13_12

	det3_301_012 := s(0, 3)*det2_01_12 - s(1, 3)*det2_01_02 + s(2, 3)*det2_01_01
	det3_301_013 := s(0, 3)*det2_01_13 - s(1, 3)*det2_01_03 + s(3, 3)*det2_01_01
	det3_301_023 := s(0, 3)*det2_01_23 - s(2, 3)*det2_01_03 + s(3, 3)*det2_01_02
	det3_301_123 := s(1, 3)*det2_01_23 - s(2, 3)*det2_01_13 + s(3, 3)*det2_01_12

	mt.Data = [16]float32{
		-det3_213_123 * inverseDeterminant,
		+det3_213_023 * inverseDeterminant,
		-det3_213_013 * inverseDeterminant,
		+det3_213_012 * inverseDeterminant,

		+det3_203_123 * inverseDeterminant,
		-det3_203_023 * inverseDeterminant,
		+det3_203_013 * inverseDeterminant,
		-det3_203_012 * inverseDeterminant,

		+det3_301_123 * inverseDeterminant,
		-det3_301_023 * inverseDeterminant,
		+det3_301_013 * inverseDeterminant,
		-det3_301_012 * inverseDeterminant,

		-det3_201_123 * inverseDeterminant,
		+det3_201_023 * inverseDeterminant,
		-det3_201_013 * inverseDeterminant,
		+det3_201_012 * inverseDeterminant,
	}
}

/**
 * @brief Stores a*b under the row vector convention: v*(a*b) == (v*a)*b.
 */
func (mt *Mat4) Multiply(a, b Mat4) {
	var out [16]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = a.Data[row*4+0]*b.Data[0*4+col] +
				a.Data[row*4+1]*b.Data[1*4+col] +
				a.Data[row*4+2]*b.Data[2*4+col] +
				a.Data[row*4+3]*b.Data[3*4+col]
		}
	}
	mt.Data = out
}

/**
 * @brief Returns the result of multiplying matrix_0 and matrix_1.
 *
 * @param matrix_0 The first matrix to be multiplied.
 * @param matrix_1 The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}
	out_matrix.Multiply(mt, other)
	return out_matrix
}

// MultiplyVectorMatrix returns v*M (row vector convention).
func (mt Mat4) MultiplyVectorMatrix(v Vec4) Vec4 {
	d := mt.Data
	return Vec4{
		X: v.X*d[0] + v.Y*d[4] + v.Z*d[8] + v.W*d[12],
		Y: v.X*d[1] + v.Y*d[5] + v.Z*d[9] + v.W*d[13],
		Z: v.X*d[2] + v.Y*d[6] + v.Z*d[10] + v.W*d[14],
		W: v.X*d[3] + v.Y*d[7] + v.Z*d[11] + v.W*d[15],
	}
}

// MultiplyMatrixVector returns M*v (column vector convention).
func (mt Mat4) MultiplyMatrixVector(v Vec4) Vec4 {
	d := mt.Data
	return Vec4{
		X: d[0]*v.X + d[1]*v.Y + d[2]*v.Z + d[3]*v.W,
		Y: d[4]*v.X + d[5]*v.Y + d[6]*v.Z + d[7]*v.W,
		Z: d[8]*v.X + d[9]*v.Y + d[10]*v.Z + d[11]*v.W,
		W: d[12]*v.X + d[13]*v.Y + d[14]*v.Z + d[15]*v.W,
	}
}

/**
 * @brief Transforms a direction through the upper-left 3x3 block. No
 * inverse-transpose is applied, so non-uniform scale skews normals.
 */
func (mt Mat4) MultiplyAsNormal(v Vec3) Vec3 {
	d := mt.Data
	return Vec3{
		X: v.X*d[0] + v.Y*d[4] + v.Z*d[8],
		Y: v.X*d[1] + v.Y*d[5] + v.Z*d[9],
		Z: v.X*d[2] + v.Y*d[6] + v.Z*d[10],
	}
}

// MultiplyAsPoint transforms a position (implicit w = 1).
func (mt Mat4) MultiplyAsPoint(v Vec3) Vec3 {
	d := mt.Data
	return Vec3{
		X: v.X*d[0] + v.Y*d[4] + v.Z*d[8] + d[12],
		Y: v.X*d[1] + v.Y*d[5] + v.Z*d[9] + d[13],
		Z: v.X*d[2] + v.Y*d[6] + v.Z*d[10] + d[14],
	}
}

func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if math32.Abs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := NewMat4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (near_clip - far_clip)

	out_matrix.Data[0] = -2.0 * lr
	out_matrix.Data[5] = -2.0 * bt
	out_matrix.Data[10] = 2.0 * nf

	out_matrix.Data[12] = (left + right) * lr
	out_matrix.Data[13] = (top + bottom) * bt
	out_matrix.Data[14] = (far_clip + near_clip) * nf
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix looking down -Z.
 *
 * @param fov_radians The vertical field of view in radians.
 * @param aspect_ratio The aspect ratio (width / height).
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	half_tan_fov := math32.Tan(fov_radians * 0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0 / (aspect_ratio * half_tan_fov)
	out_matrix.Data[5] = 1.0 / half_tan_fov
	out_matrix.Data[10] = -((far_clip + near_clip) / (far_clip - near_clip))
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = -((2.0 * far_clip * near_clip) / (far_clip - near_clip))
	return out_matrix
}

/**
 * @brief Creates and returns a view matrix looking at target from position.
 *
 * @param position The position of the viewer.
 * @param target The position to "look at".
 * @param up The up vector, must not be parallel to target - position.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	out_matrix := Mat4{}
	z_axis := target.Sub(position).Normalized()
	x_axis := z_axis.Cross(up).Normalized()
	y_axis := x_axis.Cross(z_axis)

	out_matrix.Data[0] = x_axis.X
	out_matrix.Data[1] = y_axis.X
	out_matrix.Data[2] = -z_axis.X
	out_matrix.Data[4] = x_axis.Y
	out_matrix.Data[5] = y_axis.Y
	out_matrix.Data[6] = -z_axis.Y
	out_matrix.Data[8] = x_axis.Z
	out_matrix.Data[9] = y_axis.Z
	out_matrix.Data[10] = -z_axis.Z
	out_matrix.Data[12] = -x_axis.Dot(position)
	out_matrix.Data[13] = -y_axis.Dot(position)
	out_matrix.Data[14] = z_axis.Dot(position)
	out_matrix.Data[15] = 1.0

	return out_matrix
}

// Transpose stores the transpose of source (rows -> columns).
func (mt *Mat4) Transpose(source Mat4) {
	var out [16]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = source.Data[row*4+col]
		}
	}
	mt.Data = out
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func NewMat4Transposed(matrix Mat4) Mat4 {
	out_matrix := Mat4{}
	out_matrix.Transpose(matrix)
	return out_matrix
}

// Inversed returns the inverse as a new matrix.
func (mt Mat4) Inversed() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Inverse(mt)
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := Mat4{}
	out_matrix.Translation(position.X, position.Y, position.Z)
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := Mat4{}
	out_matrix.Scale(scale.X, scale.Y, scale.Z)
	return out_matrix
}

func NewMat4EulerX(angle_radians float32) Mat4 {
	out_matrix := Mat4{}
	out_matrix.RotationX(angle_radians)
	return out_matrix
}

func NewMat4EulerY(angle_radians float32) Mat4 {
	out_matrix := Mat4{}
	out_matrix.RotationY(angle_radians)
	return out_matrix
}

func NewMat4EulerZ(angle_radians float32) Mat4 {
	out_matrix := Mat4{}
	out_matrix.RotationZ(angle_radians)
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations,
 * applied in that order.
 */
func NewMat4EulerXYZ(x_radians, y_radians, z_radians float32) Mat4 {
	out_matrix := Mat4{}
	out_matrix.RotationXYZ(x_radians, y_radians, z_radians)
	return out_matrix
}

/**
 * @brief Returns a forward vector relative to the provided view matrix.
 */
func (mt Mat4) Forward() Vec3 {
	return Vec3{-mt.Data[2], -mt.Data[6], -mt.Data[10]}.Normalized()
}

func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[1], mt.Data[5], mt.Data[9]}.Normalized()
}

func (mt Mat4) Down() Vec3 {
	return Vec3{-mt.Data[1], -mt.Data[5], -mt.Data[9]}.Normalized()
}

func (mt Mat4) Left() Vec3 {
	return Vec3{-mt.Data[0], -mt.Data[4], -mt.Data[8]}.Normalized()
}

func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[4], mt.Data[8]}.Normalized()
}
