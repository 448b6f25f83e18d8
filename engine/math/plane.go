package math

// PlaneClassification is the side of a plane a point lies on.
type PlaneClassification uint8

const (
	PlaneInFront PlaneClassification = iota
	PlaneOn
	PlaneBehind
)

func (c PlaneClassification) String() string {
	switch c {
	case PlaneInFront:
		return "in front"
	case PlaneOn:
		return "on"
	case PlaneBehind:
		return "behind"
	}
	return "unknown"
}

// Plane is the set of points p with A*p.X + B*p.Y + C*p.Z + D == 0.
// (A, B, C) is the normal, not necessarily unit length.
type Plane struct {
	A float32
	B float32
	C float32
	D float32
}

// NewPlane returns the ground plane y == 0 facing up.
func NewPlane() Plane {
	return Plane{A: 0.0, B: 1.0, C: 0.0, D: 0.0}
}

func (p *Plane) Init(a, b, c, d float32) {
	p.A, p.B, p.C, p.D = a, b, c, d
}

// Normal returns (A, B, C).
func (p Plane) Normal() Vec3 {
	return Vec3{p.A, p.B, p.C}
}

/**
 * @brief Builds the plane through three points with a unit normal following
 * the winding (b-a) x (c-a). Collinear points give a NaN plane.
 */
func (p *Plane) From(a, b, c Vec3) {
	normal := b.Sub(a).Cross(c.Sub(a)).Normalized()
	p.A, p.B, p.C = normal.X, normal.Y, normal.Z
	p.D = -normal.Dot(a)
}

/**
 * @brief Builds the plane containing the line start-end and perpendicular to
 * the triangle (start, end, point), oriented so point lies in front. The
 * normal is left unnormalized.
 */
func (p *Plane) FromLineToPoint(start, end, point Vec3) {
	line := end.Sub(start)
	normal := line.Cross(point.Sub(start)).Cross(line)
	p.A, p.B, p.C = normal.X, normal.Y, normal.Z
	p.D = -normal.Dot(start)

	if p.ClassifyVertex(point) == PlaneBehind {
		p.Flip()
	}
}

// Normalize scales the plane to a unit normal, keeping the same point set.
func (p *Plane) Normalize() {
	inverseLength := 1.0 / p.Normal().Length()
	p.A *= inverseLength
	p.B *= inverseLength
	p.C *= inverseLength
	p.D *= inverseLength
}

func (p *Plane) Flip() {
	p.A, p.B, p.C, p.D = -p.A, -p.B, -p.C, -p.D
}

// SignedDistance is the plane equation evaluated at v. It is a true distance
// only for a unit normal.
func (p Plane) SignedDistance(v Vec3) float32 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

func (p Plane) ClassifyVertex(v Vec3) PlaneClassification {
	return p.ClassifyXYZ(v.X, v.Y, v.Z)
}

// ClassifyXYZ uses exact comparison against zero.
func (p Plane) ClassifyXYZ(x, y, z float32) PlaneClassification {
	distance := p.A*x + p.B*y + p.C*z + p.D
	if distance < 0.0 {
		return PlaneBehind
	}
	if distance > 0.0 {
		return PlaneInFront
	}
	return PlaneOn
}
