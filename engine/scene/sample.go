package scene

import "github.com/spaghettifunk/gxmath/engine/math"

// Sample is a random world point and whether the camera can see it.
type Sample struct {
	Point   math.Vec3
	Visible bool
}

// Bounds is the box around every object in world space.
func (s *Scene) Bounds() math.AABB {
	bounds := math.NewAABB()
	for _, o := range s.Objects {
		for _, corner := range o.WorldCorners() {
			bounds.AddVertex(corner)
		}
	}
	return bounds
}

/**
 * @brief Draws n uniform points inside Bounds and classifies each against the
 * view frustum. Seed the generator with math.RandomizeWithSeed for
 * reproducible output.
 */
func (s *Scene) Sample(n int) []Sample {
	if n <= 0 || len(s.Objects) == 0 {
		return nil
	}

	bounds := s.Bounds()
	planes := s.Camera.ClipPlanes()

	samples := make([]Sample, n)
	for i := range samples {
		point := math.RandomBetweenVec3(bounds.Min, bounds.Max)
		samples[i] = Sample{Point: point, Visible: planes.PlaneTest(point) == 0}
	}
	return samples
}

// CountVisible counts the samples inside the frustum.
func CountVisible(samples []Sample) int {
	count := 0
	for _, s := range samples {
		if s.Visible {
			count++
		}
	}
	return count
}
