// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"
)

// ErrDimensionOutOfRange indicates a dimension index p outside [0, Len()).
var ErrDimensionOutOfRange = errors.New("simplex: dimension out of range")

// ErrIndexOutOfRange indicates a simplex or vertex position outside its collection.
var ErrIndexOutOfRange = errors.New("simplex: index out of range")

// ErrTooLarge indicates a complex would exceed the vertex or simplex limit
// it is being built under.
var ErrTooLarge = errors.New("simplex: complex exceeds size limit")

// ErrInvalidSimplex indicates an assembled simplex with the wrong vertex
// count, unsorted or out-of-range indices, or a duplicate Key.
var ErrInvalidSimplex = errors.New("simplex: invalid simplex")

// simplexErrorf prefixes err with the method name, keeping errors.Is working.
func simplexErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
