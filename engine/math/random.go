package math

import (
	"time"

	"golang.org/x/exp/rand"
)

// randMax mirrors the 15 bit range of the platform generator the
// normalisation factor below was tuned for.
const (
	randMax        int32   = 32767
	inverseRandMax float32 = 3.05185e-5
)

/**
 * @brief Seeds the process-wide generator from the wall clock. Call it once
 * at startup.
 */
func Randomize() {
	rand.Seed(uint64(time.Now().UnixNano()))
}

// RandomizeWithSeed makes the random helpers reproducible.
func RandomizeWithSeed(seed uint64) {
	rand.Seed(seed)
}

/**
 * @brief Returns a random value in the range [0, 1).
 */
func RandomNormalized() float32 {
	return float32(rand.Int31n(randMax)) * inverseRandMax
}

/**
 * @brief Returns a random value between from and to.
 */
func RandomBetween(from, to float32) float32 {
	delta := to - from
	return from + delta*RandomNormalized()
}

// RandomBetweenVec3 applies RandomBetween per component.
func RandomBetweenVec3(from, to Vec3) Vec3 {
	return Vec3{
		X: RandomBetween(from.X, to.X),
		Y: RandomBetween(from.Y, to.Y),
		Z: RandomBetween(from.Z, to.Z),
	}
}
