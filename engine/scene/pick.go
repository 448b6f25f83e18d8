package scene

import "github.com/spaghettifunk/gxmath/engine/math"

// Hit is the nearest intersection of a picking ray with the scene.
type Hit struct {
	ID string
	/** @brief Distance from the camera along the ray. */
	T     float32
	Point math.Vec3
	/** @brief Weights of the hit triangle corners. */
	Barycentric math.Vec3
	/** @brief The corners of the hit triangle in world space. */
	Triangle [3]math.Vec3
}

// boxTriangles indexes math.AABB.Corners, two triangles per face.
var boxTriangles = [12][3]int{
	{0, 1, 2}, {0, 2, 3}, // min z
	{4, 6, 5}, {4, 7, 6}, // max z
	{0, 5, 1}, {0, 4, 5}, // min x
	{3, 2, 6}, {3, 6, 7}, // max x
	{0, 3, 7}, {0, 7, 4}, // min y
	{1, 5, 6}, {1, 6, 2}, // max y
}

/**
 * @brief Casts a ray through the pixel (x, y) and returns the closest object
 * box it hits within the camera far distance.
 */
func (s *Scene) Pick(x, y uint16) (Hit, bool) {
	c := s.Camera
	origin, direction := math.GetRayFromViewer(x, y, c.Width, c.Height, c.Eye(), c.ViewProjection())

	best := Hit{T: c.Far}
	found := false
	for _, o := range s.Objects {
		corners := o.WorldCorners()
		for _, tri := range boxTriangles {
			a, b, cc := corners[tri[0]], corners[tri[1]], corners[tri[2]]
			t, hit := math.RayTriangleIntersection3D(origin, direction, c.Far, a, b, cc)
			if !hit || (found && t >= best.T) {
				continue
			}
			point := origin.Add(direction.MulScalar(t))
			best = Hit{
				ID:          o.ID,
				T:           t,
				Point:       point,
				Barycentric: math.GetBarycentricCoords(point, a, b, cc),
				Triangle:    [3]math.Vec3{a, b, cc},
			}
			found = true
		}
	}
	return best, found
}
