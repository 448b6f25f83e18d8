package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperation is the class of every precondition violation
	// reported by the math package.
	ErrInvalidOperation = errors.New("invalid operation")

	ErrDegenerateQuaternion = fmt.Errorf("%w: quaternion length is too close to zero", ErrInvalidOperation)
	ErrParallelBasis        = fmt.Errorf("%w: basis vectors are parallel", ErrInvalidOperation)
	ErrInvalidHue           = fmt.Errorf("%w: hue is not a finite number", ErrInvalidOperation)
	ErrInvalidColor         = fmt.Errorf("%w: colour channel is not a number", ErrInvalidOperation)
	ErrUndefinedPower       = fmt.Errorf("%w: (0+0i)^0 is undefined", ErrInvalidOperation)

	ErrInvalidScene = errors.New("invalid scene")
)
