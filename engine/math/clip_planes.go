package math

// Indices of the planes of a ProjectionClipPlanes.
const (
	ClipLeft = iota
	ClipRight
	ClipTop
	ClipBottom
	ClipNear
	ClipFar
	clipPlaneCount
)

/**
 * @brief The six frustum planes of a projection or view-projection matrix,
 * normals pointing inside.
 */
type ProjectionClipPlanes struct {
	Planes [clipPlaneCount]Plane
}

func NewProjectionClipPlanes(m Mat4) ProjectionClipPlanes {
	planes := ProjectionClipPlanes{}
	planes.From(m)
	return planes
}

/**
 * @brief Extracts the planes as column combinations of the row-vector matrix:
 * col3 ± col0, col3 ± col1 and col3 ± col2. Planes are not normalized.
 */
func (p *ProjectionClipPlanes) From(m Mat4) {
	column := func(col int) Vec4 {
		return Vec4{m.At(0, col), m.At(1, col), m.At(2, col), m.At(3, col)}
	}
	c0, c1, c2, c3 := column(0), column(1), column(2), column(3)

	p.Planes[ClipLeft] = planeFromVec4(c3.Add(c0))
	p.Planes[ClipRight] = planeFromVec4(c3.Sub(c0))
	p.Planes[ClipTop] = planeFromVec4(c3.Sub(c1))
	p.Planes[ClipBottom] = planeFromVec4(c3.Add(c1))
	p.Planes[ClipNear] = planeFromVec4(c3.Add(c2))
	p.Planes[ClipFar] = planeFromVec4(c3.Sub(c2))
}

func planeFromVec4(v Vec4) Plane {
	return Plane{A: v.X, B: v.Y, C: v.Z, D: v.W}
}

// PlaneTest returns a mask with bit i set when v is behind plane i.
func (p ProjectionClipPlanes) PlaneTest(v Vec3) uint8 {
	var flags uint8
	for i, plane := range p.Planes {
		if plane.ClassifyVertex(v) == PlaneBehind {
			flags |= 1 << uint(i)
		}
	}
	return flags
}

/**
 * @brief Reports false only when all 8 corners are behind one common plane.
 * Boxes that miss the frustum diagonally may still be reported visible.
 */
func (p ProjectionClipPlanes) IsVisible(bounds AABB) bool {
	flags := uint8(1<<clipPlaneCount - 1)
	for _, corner := range bounds.Corners() {
		flags &= p.PlaneTest(corner)
		if flags == 0 {
			return true
		}
	}
	return flags == 0
}
