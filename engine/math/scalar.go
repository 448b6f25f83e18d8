package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float32 = 0.70710678118654752440
	/**
	 * @brief A multiplier used to convert degrees to radians. Truncated on
	 * purpose so conversions match data authored with the engine tools.
	 */
	K_DEG2RAD_MULTIPLIER float32 = 0.0174533
	/** @brief A multiplier used to convert radians to degrees. Truncated as above. */
	K_RAD2DEG_MULTIPLIER float32 = 57.295779
	/** @brief Tolerance used by quaternion and interpolation degeneracy checks. */
	K_FLOAT_EPSILON float32 = 1.0e-4
	/** @brief Largest finite float32, used as the "no value" sentinel. */
	K_FLOAT_MAX float32 = math32.MaxFloat32
)

const (
	colorToFloat      float32 = 0.00392157
	hsvaFactor        float32 = 0.016666
	hsvaToRGBAFloat   float32 = 0.01
	rgbaToUbyteFactor float32 = 255.0
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// Convert3DSMax maps a position from the 3ds Max coordinate system
// (Z up, right handed) to the engine one (Y up).
func Convert3DSMax(x, y, z float32) Vec3 {
	return Vec3{X: -x, Y: z, Z: -y}
}

// Euler holds Tait-Bryan angles in radians.
type Euler struct {
	Pitch float32
	Yaw   float32
	Roll  float32
}

func NewEuler(pitch, yaw, roll float32) Euler {
	return Euler{Pitch: pitch, Yaw: yaw, Roll: roll}
}

// Matrix builds the rotation with the pitch, yaw, roll composition order of
// Mat4.RotationXYZ.
func (e Euler) Matrix() Mat4 {
	m := Mat4{}
	m.RotationXYZ(e.Pitch, e.Yaw, e.Roll)
	return m
}
