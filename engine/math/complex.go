package math

import (
	m "math"

	"github.com/pkg/errors"

	"github.com/spaghettifunk/gxmath/engine/core"
)

// PreciseComplex is a double precision complex number R + I*i.
type PreciseComplex struct {
	R, I float64
}

func NewPreciseComplex(real, imaginary float64) PreciseComplex {
	return PreciseComplex{R: real, I: imaginary}
}

func (z *PreciseComplex) Init(real, imaginary float64) {
	z.R = real
	z.I = imaginary
}

func (z PreciseComplex) Length() float64 {
	return m.Sqrt(z.SquaredLength())
}

func (z PreciseComplex) SquaredLength() float64 {
	return z.R*z.R + z.I*z.I
}

/**
 * @brief Raises z to an integer power in place. z^0 is 1; for (0+0i)^0 z is
 * still set to 1 but ErrUndefinedPower is returned.
 */
func (z *PreciseComplex) Power(power uint32) error {
	if power == 0 {
		zero := z.R == 0.0 && z.I == 0.0
		z.R = 1.0
		z.I = 0.0
		if zero {
			return errors.Wrap(core.ErrUndefinedPower, "complex power")
		}
		return nil
	}

	base := *z
	for ; power > 1; power-- {
		*z = z.Mul(base)
	}
	return nil
}

func (z PreciseComplex) Add(other PreciseComplex) PreciseComplex {
	return PreciseComplex{z.R + other.R, z.I + other.I}
}

func (z PreciseComplex) Sub(other PreciseComplex) PreciseComplex {
	return PreciseComplex{z.R - other.R, z.I - other.I}
}

func (z PreciseComplex) Mul(other PreciseComplex) PreciseComplex {
	return PreciseComplex{z.R*other.R - z.I*other.I, z.R*other.I + z.I*other.R}
}

func (z PreciseComplex) MulScalar(a float64) PreciseComplex {
	return PreciseComplex{z.R * a, z.I * a}
}

func (z PreciseComplex) DivScalar(a float64) PreciseComplex {
	inv := 1.0 / a
	return PreciseComplex{z.R * inv, z.I * inv}
}

func (z PreciseComplex) Complex128() complex128 {
	return complex(z.R, z.I)
}
