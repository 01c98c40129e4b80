package array

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when a validity bitmap does not cover the values.
var ErrLengthMismatch = errors.New("array: validity length does not match values length")

// ErrValidityLength reports the lengths of a mismatched values/validity pair.
//
// It unwraps to ErrLengthMismatch.
type ErrValidityLength struct {
	Values   int
	Validity int
}

func (e *ErrValidityLength) Error() string {
	return fmt.Sprintf("array: %d values but validity of length %d", e.Values, e.Validity)
}

func (e *ErrValidityLength) Unwrap() error { return ErrLengthMismatch }
