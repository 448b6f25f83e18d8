package math

// AABBState tracks how many vertices a bounding box has absorbed.
type AABBState uint8

const (
	// AABBEmpty has no vertices, Min and Max hold the inverted extremes.
	AABBEmpty AABBState = iota
	// AABBPoint holds one vertex in Min. Max is not valid yet.
	AABBPoint
	// AABBBox holds two or more vertices.
	AABBBox
)

/**
 * @brief An axis aligned bounding box built incrementally from vertices.
 * The zero value is not empty, use NewAABB or Empty before adding vertices.
 */
type AABB struct {
	Min   Vec3
	Max   Vec3
	state AABBState
}

func NewAABB() AABB {
	box := AABB{}
	box.Empty()
	return box
}

// NewAABBFromExtents returns a box already holding both corners.
func NewAABBFromExtents(extents Extents3D) AABB {
	box := NewAABB()
	box.AddVertex(extents.Min)
	box.AddVertex(extents.Max)
	return box
}

func (b AABB) State() AABBState {
	return b.state
}

func (b AABB) Extents() Extents3D {
	return Extents3D{Min: b.Min, Max: b.Max}
}

func (b *AABB) Empty() {
	b.Min = Vec3{K_FLOAT_MAX, K_FLOAT_MAX, K_FLOAT_MAX}
	b.Max = Vec3{-K_FLOAT_MAX, -K_FLOAT_MAX, -K_FLOAT_MAX}
	b.state = AABBEmpty
}

func (b *AABB) AddVertex(v Vec3) {
	b.AddVertexXYZ(v.X, v.Y, v.Z)
}

/**
 * @brief Merges a vertex into the box. The first vertex is only stored in Min;
 * the second one splits Min and Max per axis; later ones extend the box.
 */
func (b *AABB) AddVertexXYZ(x, y, z float32) {
	switch b.state {
	case AABBEmpty:
		b.Min = Vec3{x, y, z}
		b.state = AABBPoint
	case AABBPoint:
		b.Min.X, b.Max.X = splitAxis(b.Min.X, x)
		b.Min.Y, b.Max.Y = splitAxis(b.Min.Y, y)
		b.Min.Z, b.Max.Z = splitAxis(b.Min.Z, z)
		b.state = AABBBox
	default:
		b.Min.X, b.Max.X = extendAxis(b.Min.X, b.Max.X, x)
		b.Min.Y, b.Max.Y = extendAxis(b.Min.Y, b.Max.Y, y)
		b.Min.Z, b.Max.Z = extendAxis(b.Min.Z, b.Max.Z, z)
	}
}

func splitAxis(stored, value float32) (min, max float32) {
	if stored > value {
		return value, stored
	}
	return stored, value
}

func extendAxis(min, max, value float32) (float32, float32) {
	if min > value {
		return value, max
	}
	if max < value {
		return min, value
	}
	return min, max
}

/**
 * @brief Stores the tight box of the 8 corners of source run through m.
 */
func (b *AABB) Transform(source AABB, m Mat4) {
	corners := source.Corners()
	b.Empty()
	for _, corner := range corners {
		b.AddVertex(m.MultiplyAsPoint(corner))
	}
}

// Transformed returns the box transformed by m, see Transform.
func (b AABB) Transformed(m Mat4) AABB {
	out := AABB{}
	out.Transform(b, m)
	return out
}

// Corners lists the 8 corners, min Z face first.
func (b AABB) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
	}
}

// IsOverlaped reports whether the two boxes intersect, touching included.
func (b AABB) IsOverlaped(other AABB) bool {
	if b.Min.X > other.Max.X || b.Max.X < other.Min.X {
		return false
	}
	if b.Min.Y > other.Max.Y || b.Max.Y < other.Min.Y {
		return false
	}
	if b.Min.Z > other.Max.Z || b.Max.Z < other.Min.Z {
		return false
	}
	return true
}

func (b AABB) IsOverlapedPoint(v Vec3) bool {
	if v.X < b.Min.X || v.X > b.Max.X {
		return false
	}
	if v.Y < b.Min.Y || v.Y > b.Max.Y {
		return false
	}
	if v.Z < b.Min.Z || v.Z > b.Max.Z {
		return false
	}
	return true
}

func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Width returns -1 until the box holds two vertices.
func (b AABB) Width() float32 {
	if b.state < AABBBox {
		return -1.0
	}
	return b.Max.X - b.Min.X
}

// Height returns -1 until the box holds two vertices.
func (b AABB) Height() float32 {
	if b.state < AABBBox {
		return -1.0
	}
	return b.Max.Y - b.Min.Y
}

// Depth returns -1 until the box holds two vertices.
func (b AABB) Depth() float32 {
	if b.state < AABBBox {
		return -1.0
	}
	return b.Max.Z - b.Min.Z
}

// SphereRadius is the distance from the center to Min.
func (b AABB) SphereRadius() float32 {
	return b.Center().Distance(b.Min)
}
