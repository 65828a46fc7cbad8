package euclid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a vector cannot be built from the
	// given input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyCoordinates is returned when a vector is built from no
	// coordinates.
	ErrEmptyCoordinates = fmt.Errorf("%w: the coordinates must be nonempty", ErrInvalidArgument)

	// ErrNonNumeric is returned when the input is not a sequence of finite
	// numbers.
	ErrNonNumeric = fmt.Errorf("%w: the coordinates must be a sequence of finite numbers", ErrInvalidArgument)

	// ErrOverflow is returned when arithmetic on finite coordinates produces
	// a NaN or an infinity.
	ErrOverflow = fmt.Errorf("%w: the result is not finite", ErrNonNumeric)

	// ErrZeroVector is returned when the zero vector is normalized.
	ErrZeroVector = errors.New("cannot normalize the zero vector")

	// ErrAngleWithZeroVector is returned when an angle involves the zero vector.
	ErrAngleWithZeroVector = errors.New("cannot compute an angle with the zero vector")
)

// ErrDimensionMismatch indicates that the operands of a binary operation
// differ in dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an operation that is only defined for a
// fixed dimension.
type ErrInvalidDimension struct {
	Op        string
	Dimension int
	Required  int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension for %s: requires %d, got %d", e.Op, e.Required, e.Dimension)
}

// CheckDimensions returns an *ErrDimensionMismatch unless a and b are
// equal positive dimensions.
func CheckDimensions(a, b int) error {
	if a == 0 || b == 0 {
		return ErrEmptyCoordinates
	}
	if a != b {
		return &ErrDimensionMismatch{Expected: a, Actual: b}
	}
	return nil
}
