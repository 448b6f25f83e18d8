package math

func NewVec6(a1, a2, a3, a4, a5, a6 float32) Vec6 {
	v := Vec6{}
	v.Init(a1, a2, a3, a4, a5, a6)
	return v
}

func (v *Vec6) Init(a1, a2, a3, a4, a5, a6 float32) {
	v.Data = [6]float32{a1, a2, a3, a4, a5, a6}
}

// From packs two 3D vectors, typically linear then angular.
func (v *Vec6) From(v1, v2 Vec3) {
	v.Data[0], v.Data[1], v.Data[2] = v1.X, v1.Y, v1.Z
	v.Data[3], v.Data[4], v.Data[5] = v2.X, v2.Y, v2.Z
}

// Linear returns the first half.
func (v Vec6) Linear() Vec3 {
	return Vec3{v.Data[0], v.Data[1], v.Data[2]}
}

// Angular returns the second half.
func (v Vec6) Angular() Vec3 {
	return Vec3{v.Data[3], v.Data[4], v.Data[5]}
}

func (v Vec6) Dot(other Vec6) float32 {
	var sum float32
	for i := 0; i < 6; i++ {
		sum += v.Data[i] * other.Data[i]
	}
	return sum
}

func (v *Vec6) Sum(a, b Vec6) {
	for i := 0; i < 6; i++ {
		v.Data[i] = a.Data[i] + b.Data[i]
	}
}

func (v *Vec6) SumScaled(a Vec6, bScale float32, b Vec6) {
	for i := 0; i < 6; i++ {
		v.Data[i] = a.Data[i] + bScale*b.Data[i]
	}
}

func (v *Vec6) MultiplyScalar(a Vec6, factor float32) {
	for i := 0; i < 6; i++ {
		v.Data[i] = a.Data[i] * factor
	}
}
