package math

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/spaghettifunk/gxmath/engine/core"
)

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{
		X: vector.X,
		Y: vector.Y,
		Z: vector.Z,
	}
}

/**
 * @brief Returns a new Vec4 using vector as the x, y and z components and w for w.
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

// AbsoluteX returns the world X axis.
func AbsoluteX() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

// AbsoluteY returns the world Y axis.
func AbsoluteY() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

// AbsoluteZ returns the world Z axis.
func AbsoluteZ() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

func (v *Vec3) Init(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

func (v *Vec3) Reverse() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

// Sum stores a + b.
func (v *Vec3) Sum(a, b Vec3) {
	v.X = a.X + b.X
	v.Y = a.Y + b.Y
	v.Z = a.Z + b.Z
}

// SumScaled stores a + bScale*b.
func (v *Vec3) SumScaled(a Vec3, bScale float32, b Vec3) {
	v.X = a.X + bScale*b.X
	v.Y = a.Y + bScale*b.Y
	v.Z = a.Z + bScale*b.Z
}

func (v *Vec3) Subtract(a, b Vec3) {
	v.X = a.X - b.X
	v.Y = a.Y - b.Y
	v.Z = a.Z - b.Z
}

// Multiply stores the component-wise product of a and b.
func (v *Vec3) Multiply(a, b Vec3) {
	v.X = a.X * b.X
	v.Y = a.Y * b.Y
	v.Z = a.Z * b.Z
}

func (v *Vec3) MultiplyScalar(a Vec3, factor float32) {
	v.X = a.X * factor
	v.Y = a.Y * factor
	v.Z = a.Z * factor
}

// CrossProduct stores a × b. a and b arrive as copies, so v may be either of them.
func (v *Vec3) CrossProduct(a, b Vec3) {
	v.X = a.Y*b.Z - a.Z*b.Y
	v.Y = a.Z*b.X - a.X*b.Z
	v.Z = a.X*b.Y - a.Y*b.X
}

/**
 * @brief Normalizes the vector in place. A zero vector yields Inf/NaN components.
 */
func (v *Vec3) Normalize() {
	v.MultiplyScalar(*v, 1.0/v.Length())
}

/**
 * @brief Stores start + t*(finish - start). t is not clamped.
 */
func (v *Vec3) LinearInterpolation(start, finish Vec3, t float32) {
	var difference Vec3
	difference.Subtract(finish, start)
	v.SumScaled(start, t, difference)
}

/**
 * @brief Projects vector onto axis. axis is expected to be unit length.
 */
func (v *Vec3) Project(vector, axis Vec3) {
	normalVector := vector
	normalVector.Normalize()
	factor := vector.Length() * axis.Dot(normalVector)
	v.MultiplyScalar(axis, factor)
}

/**
 * @brief Builds an orthonormal basis in place. baseX keeps its direction,
 * adjustedY is re-derived to be orthogonal and adjustedZ = baseX × adjustedY.
 * Parallel inputs leave the vectors untouched and return an error.
 */
func MakeOrthonormalBasis(baseX, adjustedY, adjustedZ *Vec3) error {
	var z Vec3
	z.CrossProduct(*baseX, *adjustedY)

	if z.SquaredLength() == 0.0 {
		return errors.Wrapf(core.ErrParallelBasis, "make orthonormal basis: x=%v y=%v", *baseX, *adjustedY)
	}

	*adjustedZ = z
	adjustedY.CrossProduct(*adjustedZ, *baseX)

	baseX.Normalize()
	adjustedY.Normalize()
	adjustedZ.Normalize()
	return nil
}

/**
 * @brief Adds vector_1 to vector_0 and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

/**
 * @brief Subtracts vector_1 from vector_0 and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

/**
 * @brief Multiplies vector_0 by vector_1 and returns a copy of the result.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

/**
 * @brief Multiplies all elements of vector_0 by scalar and returns a copy of the result.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

/**
 * @brief Divides vector_0 by vector_1 and returns a copy of the result.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
	}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) SquaredLength() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.SquaredLength())
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 */
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

/**
 * @brief Returns the dot product between the provided vectors.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	out := Vec3{}
	out.CrossProduct(v, other)
	return out
}

// IsEqual compares components exactly, without tolerance.
func (v Vec3) IsEqual(other Vec3) bool {
	if v.X != other.X {
		return false
	}
	if v.Y != other.Y {
		return false
	}
	return v.Z == other.Z
}

/**
 * @brief Compares all elements of vector_0 and vector_1 and ensures the difference
 * is less than tolerance.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}
	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if math32.Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between vector_0 and vector_1.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

func (v Vec3) SquaredDistance(other Vec3) float32 {
	return v.Sub(other).SquaredLength()
}

/**
 * @brief Transform v by m as a point (w = 1).
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	return m.MultiplyAsPoint(v)
}
