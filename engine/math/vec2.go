package math

import "github.com/chewxy/math32"

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{X: 1.0, Y: 1.0}
}

func (v *Vec2) Init(x, y float32) {
	v.X = x
	v.Y = y
}

// Sum stores a + b.
func (v *Vec2) Sum(a, b Vec2) {
	v.X = a.X + b.X
	v.Y = a.Y + b.Y
}

// SumScaled stores a + bScale*b.
func (v *Vec2) SumScaled(a Vec2, bScale float32, b Vec2) {
	v.X = a.X + bScale*b.X
	v.Y = a.Y + bScale*b.Y
}

func (v *Vec2) Subtract(a, b Vec2) {
	v.X = a.X - b.X
	v.Y = a.Y - b.Y
}

// Multiply stores the component-wise product of a and b.
func (v *Vec2) Multiply(a, b Vec2) {
	v.X = a.X * b.X
	v.Y = a.Y * b.Y
}

func (v *Vec2) MultiplyScalar(a Vec2, factor float32) {
	v.X = a.X * factor
	v.Y = a.Y * factor
}

func (v *Vec2) Reverse() {
	v.X = -v.X
	v.Y = -v.Y
}

/**
 * @brief Normalizes the vector in place. A zero vector yields Inf/NaN components.
 */
func (v *Vec2) Normalize() {
	v.MultiplyScalar(*v, 1.0/v.Length())
}

// CalculateNormalFast stores the left perpendicular of the segment a->b
// without normalizing it.
func (v *Vec2) CalculateNormalFast(a, b Vec2) {
	v.X = a.Y - b.Y
	v.Y = b.X - a.X
}

func (v *Vec2) CalculateNormal(a, b Vec2) {
	v.CalculateNormalFast(a, b)
	v.Normalize()
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec2) SquaredLength() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.SquaredLength())
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 */
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// IsEqual compares components exactly.
func (v Vec2) IsEqual(other Vec2) bool {
	return v.X == other.X && v.Y == other.Y
}

/**
 * @brief Compares all elements of vector_0 and vector_1 and ensures the difference
 * is less than tolerance.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}
	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between vector_0 and vector_1.
 */
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}
