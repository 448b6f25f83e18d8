package math

import "github.com/chewxy/math32"

/**
 * @brief Intersects a ray with the triangle (a, b, c).
 *
 * @param origin The ray origin.
 * @param direction The ray direction, expected to be normalized.
 * @param maxLength Hits farther than this along the ray are rejected.
 * @return The ray parameter of the hit and true, or 0 and false on a miss.
 */
func RayTriangleIntersection3D(origin, direction Vec3, maxLength float32, a, b, c Vec3) (float32, bool) {
	plane := Plane{}
	plane.From(a, b, c)

	normal := plane.Normal()
	t := (plane.D + normal.Dot(origin)) / -normal.Dot(direction)
	// negated so a NaN distance from a zero area triangle or a ray lying in
	// the plane is rejected
	if !(t >= 0.0 && t <= maxLength) {
		return 0.0, false
	}

	point := origin.Add(direction.MulScalar(t))

	// project on the axis pair where the triangle has the largest area
	var first, second int
	absA, absB, absC := math32.Abs(plane.A), math32.Abs(plane.B), math32.Abs(plane.C)
	selector := 2
	if absA > absB {
		if absA > absC {
			selector = 0
		}
	} else if absB > absC {
		selector = 1
	}
	switch selector {
	case 0:
		first, second = 1, 2
	case 1:
		first, second = 2, 0
	default:
		first, second = 0, 1
	}

	u0 := axis(point, first) - axis(a, first)
	v0 := axis(point, second) - axis(a, second)
	u1 := axis(b, first) - axis(a, first)
	v1 := axis(b, second) - axis(a, second)
	u2 := axis(c, first) - axis(a, first)
	v2 := axis(c, second) - axis(a, second)

	gamma := 1.0 / (u1*v2 - v1*u2)
	alpha := (u0*v2 - v0*u2) * gamma
	if !(alpha >= 0.0 && alpha <= 1.0) {
		return 0.0, false
	}

	betta := (u1*v0 - v1*u0) * gamma
	if !(betta >= 0.0 && betta <= 1.0 && alpha+betta <= 1.0) {
		return 0.0, false
	}

	return t, true
}

func axis(v Vec3, index int) float32 {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

/**
 * @brief Returns the weights (x, y, z) of a, b and c such that
 * point == x*a + y*b + z*c. A zero area triangle yields Inf/NaN.
 */
func GetBarycentricCoords(point, a, b, c Vec3) Vec3 {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := point.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denominator := 1.0 / (d00*d11 - d01*d01)

	out := Vec3{}
	out.Y = (d11*d20 - d01*d21) * denominator
	out.Z = (d00*d21 - d01*d20) * denominator
	out.X = 1.0 - out.Y - out.Z
	return out
}

/**
 * @brief Computes the tangent and bitangent of one triangle corner from the
 * UV gradients. vertexID picks the corner: 0 uses (0, 1, 2), 1 uses (1, 2, 0)
 * and anything else (2, 0, 1).
 *
 * @param vertexID The corner the frame is computed for.
 * @param positions The three triangle positions.
 * @param uvs The three texture coordinates, same order as positions.
 * @return Normalized tangent and bitangent.
 */
func GetTangentBitangent(vertexID uint8, positions [3]Vec3, uvs [3]Vec2) (tangent, bitangent Vec3) {
	var i0, i1, i2 int
	switch vertexID {
	case 0:
		i0, i1, i2 = 0, 1, 2
	case 1:
		i0, i1, i2 = 1, 2, 0
	default:
		i0, i1, i2 = 2, 0, 1
	}

	a := positions[i1].Sub(positions[i0])
	b := positions[i2].Sub(positions[i0])
	dUVa := uvs[i1].Sub(uvs[i0])
	dUVb := uvs[i2].Sub(uvs[i0])

	factor := 1.0 / (dUVa.X*dUVb.Y - dUVb.X*dUVa.Y)

	tangent = a.MulScalar(dUVb.Y).Sub(b.MulScalar(dUVa.Y)).MulScalar(factor)
	tangent.Normalize()

	bitangent = b.MulScalar(dUVa.X).Sub(a.MulScalar(dUVb.X)).MulScalar(factor)
	bitangent.Normalize()
	return tangent, bitangent
}

/**
 * @brief Builds the world space ray going from the viewer through the pixel
 * (x, y) of a width x height viewport.
 *
 * @param viewer The world position of the viewer, used as ray origin.
 * @param viewProjection The view * projection matrix of the viewer.
 * @return The ray origin and its normalized direction.
 */
func GetRayFromViewer(x, y, width, height uint16, viewer Vec3, viewProjection Mat4) (origin, direction Vec3) {
	halfWidth := float32(width) * 0.5
	halfHeight := float32(height) * 0.5

	pointCVV := Vec4{
		X: (float32(x) - halfWidth) / halfWidth,
		Y: (float32(y) - halfHeight) / halfHeight,
		Z: 1.0,
		W: 1.0,
	}

	inverse := Mat4{}
	inverse.Inverse(viewProjection)

	world := inverse.MultiplyVectorMatrix(pointCVV)
	inverseW := 1.0 / world.W
	target := Vec3{world.X * inverseW, world.Y * inverseW, world.Z * inverseW}

	return viewer, target.Sub(viewer).Normalized()
}
