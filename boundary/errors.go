// SPDX-License-Identifier: MIT
// Package boundary: sentinel error set.
// Every message is prefixed with "boundary: ..." and callers match with
// errors.Is; context is attached with boundaryErrorf at the outer call.

package boundary

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative side.
	ErrBadShape = errors.New("boundary: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("boundary: index out of range")

	// ErrNonBinary indicates an attempt to store a value other than 0 or 1.
	ErrNonBinary = errors.New("boundary: value is not in GF(2)")

	// ErrNilMatrix indicates a nil *Matrix or nil *simplex.Complex argument.
	ErrNilMatrix = errors.New("boundary: nil input")

	// ErrDimension indicates a boundary dimension p outside [1, Len()).
	ErrDimension = errors.New("boundary: no boundary map in this dimension")

	// ErrMissingFace indicates a face of a stored simplex is not stored one
	// dimension lower. The complex is not downward-closed.
	ErrMissingFace = errors.New("boundary: face missing from complex")
)

// Operation tags for error wrapping.
const (
	opNewMatrix = "NewMatrix"
	opAt        = "At"
	opSet       = "Set"
	opBuild     = "Build"
	opMatrices  = "Matrices"
	opReduce    = "Reduce"
	opRanks     = "Ranks"
)

// boundaryErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func boundaryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
