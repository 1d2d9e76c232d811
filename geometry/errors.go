// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates two points of different dimensionality
	// were combined (distance, cloud validation).
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")

	// ErrEmptyPoint indicates a point without coordinates.
	ErrEmptyPoint = errors.New("geometry: point has no coordinates")
)

// geometryErrorf wraps err with a method tag and formatted context.
// The sentinel stays reachable through errors.Is.
func geometryErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
