package math

import "github.com/chewxy/math32"

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0},
 *   {0, 1, 0},
 *   {0, 0, 1}
 * }
 */
func NewMat3Identity() Mat3 {
	out := Mat3{}
	out.Identity()
	return out
}

// At returns the element at row, col.
func (m Mat3) At(row, col int) float32 {
	return m.Data[row*3+col]
}

func (m *Mat3) Set(row, col int, value float32) {
	m.Data[row*3+col] = value
}

func (m *Mat3) Identity() {
	m.Data = [9]float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func (m *Mat3) Zeros() {
	m.Data = [9]float32{}
}

func (m *Mat3) SetX(x Vec3) { m.setRow(0, x) }
func (m *Mat3) SetY(y Vec3) { m.setRow(1, y) }
func (m *Mat3) SetZ(z Vec3) { m.setRow(2, z) }

func (m Mat3) X() Vec3 { return m.row(0) }
func (m Mat3) Y() Vec3 { return m.row(1) }
func (m Mat3) Z() Vec3 { return m.row(2) }

func (m *Mat3) setRow(row int, v Vec3) {
	m.Data[row*3+0] = v.X
	m.Data[row*3+1] = v.Y
	m.Data[row*3+2] = v.Z
}

func (m Mat3) row(row int) Vec3 {
	return Vec3{m.Data[row*3+0], m.Data[row*3+1], m.Data[row*3+2]}
}

/**
 * @brief Builds the rotation matrix of a quaternion of any non-zero length.
 */
func (m *Mat3) FromQuat(q Quaternion) {
	m.FromQuatFast(q)
	m.MultiplyScalar(*m, 1.0/q.SquaredLength())
}

/**
 * @brief Builds the rotation matrix of a unit quaternion.
 */
func (m *Mat3) FromQuatFast(q Quaternion) {
	rr := q.R * q.R
	ra2 := q.R * q.A * 2.0
	rb2 := q.R * q.B * 2.0
	rc2 := q.R * q.C * 2.0

	aa := q.A * q.A
	ab2 := q.A * q.B * 2.0
	ac2 := q.A * q.C * 2.0

	bb := q.B * q.B
	bc2 := q.B * q.C * 2.0

	cc := q.C * q.C

	m.Data = [9]float32{
		rr + aa - bb - cc, rc2 + ab2, ac2 - rb2,
		ab2 - rc2, rr - aa + bb - cc, ra2 + bc2,
		rb2 + ac2, bc2 - ra2, rr - aa - bb + cc,
	}
}

// FromMat4 copies the upper-left 3x3 block.
func (m *Mat3) FromMat4(source Mat4) {
	m.SetX(source.X())
	m.SetY(source.Y())
	m.SetZ(source.Z())
}

/**
 * @brief Builds an orthonormal basis whose Z axis is zDirection. The seed
 * axis is world X unless zDirection leans towards it (dot >= 0.5), then
 * world Y is used.
 */
func (m *Mat3) FromZDirection(zDirection Vec3) {
	xAxis, yAxis := basisFromZ(zDirection)
	m.SetX(xAxis)
	m.SetY(yAxis)
	m.SetZ(zDirection)
}

func basisFromZ(zDirection Vec3) (xAxis, yAxis Vec3) {
	var tmp Vec3
	if zDirection.Dot(AbsoluteX()) < 0.5 {
		tmp.CrossProduct(zDirection, AbsoluteX())
		xAxis.CrossProduct(tmp, zDirection)
		xAxis.Normalize()
		yAxis.CrossProduct(zDirection, xAxis)
		return xAxis, yAxis
	}

	tmp.CrossProduct(zDirection, AbsoluteY())
	yAxis.CrossProduct(zDirection, tmp)
	yAxis.Normalize()
	xAxis.CrossProduct(yAxis, zDirection)
	return xAxis, yAxis
}

/**
 * @brief Stores the inverse through the adjugate. A singular matrix yields
 * Inf/NaN elements.
 */
func (m *Mat3) Inverse(source Mat3) {
	s := source.Data
	m00, m01, m02 := s[0], s[1], s[2]
	m10, m11, m12 := s[3], s[4], s[5]
	m20, m21, m22 := s[6], s[7], s[8]

	determinant := m00 * (m11*m22 - m21*m12)
	determinant -= m01 * (m10*m22 - m20*m12)
	determinant += m02 * (m10*m21 - m20*m11)

	invDeterminant := 1.0 / determinant

	m.Data = [9]float32{
		invDeterminant * (m11*m22 - m21*m12),
		invDeterminant * (m02*m21 - m22*m01),
		invDeterminant * (m01*m12 - m11*m02),

		invDeterminant * (m12*m20 - m22*m10),
		invDeterminant * (m00*m22 - m20*m02),
		invDeterminant * (m02*m10 - m12*m00),

		invDeterminant * (m10*m21 - m20*m11),
		invDeterminant * (m01*m20 - m21*m00),
		invDeterminant * (m00*m11 - m10*m01),
	}
}

func (m *Mat3) Transpose(source Mat3) {
	s := source.Data
	m.Data = [9]float32{
		s[0], s[3], s[6],
		s[1], s[4], s[7],
		s[2], s[5], s[8],
	}
}

/**
 * @brief Re-normalizes each axis independently. Skewed axes stay skewed.
 */
func (m *Mat3) ClearRotation(source Mat3) {
	x, y, z := source.X(), source.Y(), source.Z()
	m.SetX(x.MulScalar(1.0 / x.Length()))
	m.SetY(y.MulScalar(1.0 / y.Length()))
	m.SetZ(z.MulScalar(1.0 / z.Length()))
}

func (m *Mat3) ClearRotationMat4(source Mat4) {
	var upper Mat3
	upper.FromMat4(source)
	m.ClearRotation(upper)
}

// SkewSymmetric builds [v]x so that MultiplyMatrixVector(x) == v × x.
func (m *Mat3) SkewSymmetric(v Vec3) {
	m.Data = [9]float32{
		0.0, -v.Z, v.Y,
		v.Z, 0.0, -v.X,
		-v.Y, v.X, 0.0,
	}
}

func (m *Mat3) Sum(a, b Mat3) {
	for i := range m.Data {
		m.Data[i] = a.Data[i] + b.Data[i]
	}
}

func (m *Mat3) Subtract(a, b Mat3) {
	for i := range m.Data {
		m.Data[i] = a.Data[i] - b.Data[i]
	}
}

func (m *Mat3) MultiplyScalar(a Mat3, factor float32) {
	for i := range m.Data {
		m.Data[i] = a.Data[i] * factor
	}
}

/**
 * @brief Stores a*b under the row vector convention: v*(a*b) == (v*a)*b.
 */
func (m *Mat3) Multiply(a, b Mat3) {
	var out [9]float32
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = a.Data[row*3+0]*b.Data[0*3+col] +
				a.Data[row*3+1]*b.Data[1*3+col] +
				a.Data[row*3+2]*b.Data[2*3+col]
		}
	}
	m.Data = out
}

// MultiplyVectorMatrix returns v*M (row vector convention).
func (m Mat3) MultiplyVectorMatrix(v Vec3) Vec3 {
	d := m.Data
	return Vec3{
		X: v.X*d[0] + v.Y*d[3] + v.Z*d[6],
		Y: v.X*d[1] + v.Y*d[4] + v.Z*d[7],
		Z: v.X*d[2] + v.Y*d[5] + v.Z*d[8],
	}
}

// MultiplyMatrixVector returns M*v (column vector convention).
func (m Mat3) MultiplyMatrixVector(v Vec3) Vec3 {
	d := m.Data
	return Vec3{
		X: d[0]*v.X + d[1]*v.Y + d[2]*v.Z,
		Y: d[3]*v.X + d[4]*v.Y + d[5]*v.Z,
		Z: d[6]*v.X + d[7]*v.Y + d[8]*v.Z,
	}
}

func (m Mat3) Compare(other Mat3, tolerance float32) bool {
	for i := range m.Data {
		if math32.Abs(m.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}
