package math

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/spaghettifunk/gxmath/engine/core"
)

// quaternion extraction branches, in tie-break priority order
const (
	solutionAlpha uint8 = iota
	solutionBetta
	solutionGamma
	solutionYotta
)

func NewQuaternion(r, a, b, c float32) Quaternion {
	return Quaternion{R: r, A: a, B: b, C: c}
}

/**
 * @brief Creates an identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{R: 1.0}
}

/**
 * @brief Creates a quaternion from the given axis and angle. The axis is
 * expected to be normalized.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	q := Quaternion{}
	q.FromAxisAngle(axis, angle)
	return q
}

func (q *Quaternion) Init(r, a, b, c float32) {
	q.R = r
	q.A = a
	q.B = b
	q.C = c
}

func (q *Quaternion) Identity() {
	q.R = 1.0
	q.A, q.B, q.C = 0.0, 0.0, 0.0
}

func (q Quaternion) SquaredLength() float32 {
	return q.R*q.R + q.A*q.A + q.B*q.B + q.C*q.C
}

/**
 * @brief Normalizes the quaternion in place. When the squared length is
 * below K_FLOAT_EPSILON the quaternion is left unmodified and an error is
 * returned.
 */
func (q *Quaternion) Normalize() error {
	squaredLength := q.SquaredLength()
	if math32.Abs(squaredLength) < K_FLOAT_EPSILON {
		return errors.Wrapf(core.ErrDegenerateQuaternion, "quaternion normalize: squared length %g", squaredLength)
	}
	q.MultiplyScalar(*q, 1.0/math32.Sqrt(squaredLength))
	return nil
}

/**
 * @brief Stores the inverse of a general quaternion. A quaternion too close
 * to zero has no inverse, identity is stored instead.
 */
func (q *Quaternion) Inverse(source Quaternion) {
	squaredLength := source.SquaredLength()
	if math32.Abs(squaredLength) <= K_FLOAT_EPSILON {
		q.Identity()
		return
	}

	inverseSquaredLength := 1.0 / squaredLength
	q.R = source.R * inverseSquaredLength
	q.A = -source.A * inverseSquaredLength
	q.B = -source.B * inverseSquaredLength
	q.C = -source.C * inverseSquaredLength
}

// InverseFast stores the conjugate, which is the inverse of a unit quaternion.
func (q *Quaternion) InverseFast(source Quaternion) {
	*q = source.Conjugate()
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{R: q.R, A: -q.A, B: -q.B, C: -q.C}
}

func (q *Quaternion) FromAxisAngleXYZ(x, y, z, angle float32) {
	halfAngle := 0.5 * angle
	sinom := math32.Sin(halfAngle)

	q.R = math32.Cos(halfAngle)
	q.A = x * sinom
	q.B = y * sinom
	q.C = z * sinom
}

func (q *Quaternion) FromAxisAngle(axis Vec3, angle float32) {
	q.FromAxisAngleXYZ(axis.X, axis.Y, axis.Z, angle)
}

/**
 * @brief Extracts the rotation of a matrix that may carry scale. Each axis is
 * re-normalized first; skew is not removed.
 */
func (q *Quaternion) FromMat3(rotation Mat3) {
	var pure Mat3
	pure.ClearRotation(rotation)
	q.FromMat3Fast(pure)
}

func (q *Quaternion) FromMat4(rotation Mat4) {
	var pure Mat3
	pure.ClearRotationMat4(rotation)
	q.FromMat3Fast(pure)
}

func (q *Quaternion) FromMat4Fast(rotation Mat4) {
	var pure Mat3
	pure.FromMat4(rotation)
	q.FromMat3Fast(pure)
}

/**
 * @brief Extracts the rotation of a pure orthonormal rotation matrix. All four
 * candidate solutions are exact in theory; the one with the largest factor
 * under the square root is the most precise.
 */
func (q *Quaternion) FromMat3Fast(m Mat3) {
	m00, m11, m22 := m.At(0, 0), m.At(1, 1), m.At(2, 2)

	factorAlpha := m00 + m11 + m22 + 1.0
	factorBetta := m00 - m11 - m22 + 1.0
	factorGamma := -m00 + m11 - m22 + 1.0
	factorYotta := -m00 - m11 + m22 + 1.0

	var solution uint8
	if factorAlpha > factorBetta {
		if factorAlpha > factorGamma {
			if factorAlpha > factorYotta {
				solution = solutionAlpha
			} else {
				solution = solutionYotta
			}
		} else if factorGamma > factorYotta {
			solution = solutionGamma
		} else {
			solution = solutionYotta
		}
	} else if factorBetta > factorGamma {
		if factorBetta > factorYotta {
			solution = solutionBetta
		} else {
			solution = solutionYotta
		}
	} else if factorGamma > factorYotta {
		solution = solutionGamma
	} else {
		solution = solutionYotta
	}

	switch solution {
	case solutionAlpha:
		phi := 0.5 * math32.Sqrt(factorAlpha)
		omega := 1.0 / (4.0 * phi)

		q.R = phi
		q.A = omega * (m.At(1, 2) - m.At(2, 1))
		q.B = omega * (m.At(2, 0) - m.At(0, 2))
		q.C = omega * (m.At(0, 1) - m.At(1, 0))

	case solutionBetta:
		phi := 0.5 * math32.Sqrt(factorBetta)
		omega := 1.0 / (4.0 * phi)

		q.R = omega * (m.At(1, 2) - m.At(2, 1))
		q.A = phi
		q.B = omega * (m.At(0, 1) + m.At(1, 0))
		q.C = omega * (m.At(0, 2) + m.At(2, 0))

	case solutionGamma:
		phi := 0.5 * math32.Sqrt(factorGamma)
		omega := 1.0 / (4.0 * phi)

		q.R = omega * (m.At(2, 0) - m.At(0, 2))
		q.A = omega * (m.At(0, 1) + m.At(1, 0))
		q.B = phi
		q.C = omega * (m.At(1, 2) + m.At(2, 1))

	case solutionYotta:
		phi := 0.5 * math32.Sqrt(factorYotta)
		omega := 1.0 / (4.0 * phi)

		q.R = omega * (m.At(0, 1) - m.At(1, 0))
		q.A = omega * (m.At(0, 2) + m.At(2, 0))
		q.B = omega * (m.At(1, 2) + m.At(2, 1))
		q.C = phi
	}
}

/**
 * @brief Stores the Hamilton product a*b. Applying the result rotates by b
 * first, then by a.
 */
func (q *Quaternion) Multiply(a, b Quaternion) {
	q.R = a.R*b.R - a.A*b.A - a.B*b.B - a.C*b.C
	q.A = a.R*b.A + a.A*b.R + a.B*b.C - a.C*b.B
	q.B = a.R*b.B - a.A*b.C + a.B*b.R + a.C*b.A
	q.C = a.R*b.C + a.A*b.B - a.B*b.A + a.C*b.R
}

func (q *Quaternion) MultiplyScalar(source Quaternion, scale float32) {
	q.R = source.R * scale
	q.A = source.A * scale
	q.B = source.B * scale
	q.C = source.C * scale
}

func (q *Quaternion) Sum(a, b Quaternion) {
	q.R = a.R + b.R
	q.A = a.A + b.A
	q.B = a.B + b.B
	q.C = a.C + b.C
}

func (q *Quaternion) Subtract(a, b Quaternion) {
	q.R = a.R - b.R
	q.A = a.A - b.A
	q.B = a.B - b.B
	q.C = a.C - b.C
}

/**
 * @brief Multiplies the provided quaternions and returns a*b.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out := Quaternion{}
	out.Multiply(q, other)
	return out
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.R*other.R + q.A*other.A + q.B*other.B + q.C*other.C
}

/**
 * @brief Spherical linear interpolation along the shorter arc. t <= 0 and
 * t >= 1 return the end points as they are; nearly identical end points
 * fall back to linear weights.
 */
func (q *Quaternion) Slerp(start, finish Quaternion, t float32) {
	if t <= 0.0 {
		*q = start
		return
	}
	if t >= 1.0 {
		*q = finish
		return
	}

	cosom := start.Dot(finish)
	temp := finish
	if cosom < 0.0 {
		temp = Quaternion{-finish.R, -finish.A, -finish.B, -finish.C}
		cosom = -cosom
	}

	var scale0, scale1 float32
	if (1.0 - cosom) > K_FLOAT_EPSILON {
		omega := math32.Acos(cosom)
		sinom := 1.0 / math32.Sin(omega)
		scale0 = math32.Sin((1.0-t)*omega) * sinom
		scale1 = math32.Sin(t*omega) * sinom
	} else {
		scale0 = 1.0 - t
		scale1 = t
	}

	q.R = start.R*scale0 + temp.R*scale1
	q.A = start.A*scale0 + temp.A*scale1
	q.B = start.B*scale0 + temp.B*scale1
	q.C = start.C*scale0 + temp.C*scale1
}

/**
 * @brief Returns the rotation axis and angle in radians. Near the identity
 * rotation the axis is the raw imaginary part, which is close to zero.
 */
func (q Quaternion) AxisAngle() (axis Vec3, angle float32) {
	if math32.Abs(q.R) > 1.0 {
		// |r| > 1 only happens through drift, never on a degenerate quaternion
		_ = q.Normalize()
	}

	angle = 2.0 * math32.Acos(q.R)
	axis = Vec3{q.A, q.B, q.C}

	s := math32.Sqrt(1.0 - q.R*q.R)
	if s < K_FLOAT_EPSILON {
		return axis, angle
	}

	axis.MultiplyScalar(axis, 1.0/s)
	return axis, angle
}

/**
 * @brief Rotates v. Works for quaternions of any non-zero length.
 */
func (q Quaternion) Transform(v Vec3) Vec3 {
	out := q.TransformFast(v)
	out.MultiplyScalar(out, 1.0/q.SquaredLength())
	return out
}

/**
 * @brief Rotates v by a unit quaternion. A non-unit quaternion silently
 * scales the result.
 */
func (q Quaternion) TransformFast(v Vec3) Vec3 {
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

	return Vec3{
		X: v.X*(rr+aa-bb-cc) + v.Y*(ab2-rc2) + v.Z*(rb2+ac2),
		Y: v.X*(rc2+ab2) + v.Y*(rr-aa+bb-cc) + v.Z*(bc2-ra2),
		Z: v.X*(ac2-rb2) + v.Y*(ra2+bc2) + v.Z*(rr-aa-bb+cc),
	}
}

/**
 * @brief Creates a rotation matrix from the given quaternion.
 */
func (q Quaternion) ToMat4() Mat4 {
	out := NewMat4Identity()
	out.SetRotation(q)
	return out
}

func (q Quaternion) IsEqual(other Quaternion) bool {
	return q.R == other.R && q.A == other.A && q.B == other.B && q.C == other.C
}
