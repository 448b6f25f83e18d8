package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMathErrorsAreInvalidOperations(t *testing.T) {
	for _, err := range []error{
		ErrDegenerateQuaternion,
		ErrParallelBasis,
		ErrInvalidHue,
		ErrInvalidColor,
		ErrUndefinedPower,
	} {
		assert.True(t, errors.Is(err, ErrInvalidOperation), err.Error())
	}
	assert.False(t, errors.Is(ErrInvalidScene, ErrInvalidOperation))
}
