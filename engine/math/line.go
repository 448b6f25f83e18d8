package math

// LineRelationship classifies two 2D lines.
type LineRelationship uint8

const (
	LineIntersection LineRelationship = iota
	LineOverlap
	LineNoIntersection
)

func (r LineRelationship) String() string {
	switch r {
	case LineIntersection:
		return "intersection"
	case LineOverlap:
		return "overlap"
	case LineNoIntersection:
		return "no intersection"
	}
	return "unknown"
}

/**
 * @brief Intersects the line through a0, a1 with the line through b0, b1.
 * Parallelism is detected with an exact zero test. Collinear lines report
 * LineOverlap with a0 as the point, parallel disjoint lines report
 * LineNoIntersection with (K_FLOAT_MAX, K_FLOAT_MAX).
 */
func LineIntersection2D(a0, a1, b0, b1 Vec2) (Vec2, LineRelationship) {
	var alpha Vec2
	alpha.Subtract(a1, a0)

	var betta Vec2
	betta.Subtract(b1, b0)

	yotta := Vec2{X: -alpha.Y, Y: alpha.X}
	omega := yotta.Dot(betta)

	if omega == 0.0 {
		gamma := b0
		if a0.IsEqual(b0) {
			gamma = b1
		}

		var zetta Vec2
		zetta.Subtract(gamma, a0)
		zetta.Normalize()

		alpha.Normalize()

		eta := alpha.Dot(zetta)
		if eta == 1.0 || eta == -1.0 {
			return a0, LineOverlap
		}

		return Vec2{X: K_FLOAT_MAX, Y: K_FLOAT_MAX}, LineNoIntersection
	}

	var phi Vec2
	phi.Subtract(b0, a0)

	var point Vec2
	point.SumScaled(b0, -phi.Dot(yotta)/omega, betta)
	return point, LineIntersection
}
