package math

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/gxmath/engine/core"
)

func TestPreciseComplexPower(t *testing.T) {
	tests := []struct {
		name     string
		z        PreciseComplex
		power    uint32
		expected PreciseComplex
	}{
		{name: "power zero", z: PreciseComplex{3, -2}, power: 0, expected: PreciseComplex{1, 0}},
		{name: "power one", z: PreciseComplex{3, -2}, power: 1, expected: PreciseComplex{3, -2}},
		{name: "square", z: PreciseComplex{1, 1}, power: 2, expected: PreciseComplex{0, 2}},
		{name: "cube", z: PreciseComplex{1, 1}, power: 3, expected: PreciseComplex{-2, 2}},
		{name: "i to the fourth", z: PreciseComplex{0, 1}, power: 4, expected: PreciseComplex{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := tt.z
			require.NoError(t, z.Power(tt.power))
			assert.InDelta(t, tt.expected.R, z.R, 1e-12)
			assert.InDelta(t, tt.expected.I, z.I, 1e-12)
		})
	}
}

func TestPreciseComplexZeroToZero(t *testing.T) {
	z := NewPreciseComplex(0, 0)
	err := z.Power(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUndefinedPower))
	assert.True(t, errors.Is(err, core.ErrInvalidOperation))
	assert.Equal(t, PreciseComplex{1, 0}, z)
}

func TestPreciseComplexArithmetic(t *testing.T) {
	a := NewPreciseComplex(1, 2)
	b := NewPreciseComplex(3, -1)

	assert.Equal(t, PreciseComplex{4, 1}, a.Add(b))
	assert.Equal(t, PreciseComplex{-2, 3}, a.Sub(b))
	assert.Equal(t, PreciseComplex{5, 5}, a.Mul(b))
	assert.Equal(t, PreciseComplex{2, 4}, a.MulScalar(2))
	assert.Equal(t, PreciseComplex{0.5, 1}, a.DivScalar(2))
	assert.Equal(t, complex(1, 2)*complex(3, -1), a.Mul(b).Complex128())

	assert.InDelta(t, 5.0, NewPreciseComplex(3, 4).Length(), 1e-12)
	assert.InDelta(t, 25.0, NewPreciseComplex(3, 4).SquaredLength(), 1e-12)
}
