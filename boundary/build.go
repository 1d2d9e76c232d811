// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"

	"github.com/katalvlaran/homology/simplex"
)

// Build returns the boundary matrix ∂_p of c for 1 ≤ p < c.Len().
//
// Stage 1 (Validate): c non-nil, p in range.
// Stage 2 (Prepare): allocate |K_{p−1}|×|K_p| zeros.
// Stage 3 (Execute): for each column simplex, drop one vertex at a time and
// look the face up by Key in K_{p−1}; set that row to 1.
//
// The face test is an explicit codimension-1 lookup, so it does not depend on
// how the complex was assembled.
//
// Errors: ErrNilMatrix, ErrDimension, ErrMissingFace.
// Complexity: O(|K_p|·p²) plus allocation.
func Build(c *simplex.Complex, p int) (*Matrix, error) {
	if c == nil {
		return nil, boundaryErrorf(opBuild, ErrNilMatrix)
	}
	if p < 1 || p >= c.Len() {
		return nil, boundaryErrorf(opBuild, fmt.Errorf("p=%d with %d dimensions: %w", p, c.Len(), ErrDimension))
	}

	m, err := NewMatrix(c.Count(p-1), c.Count(p))
	if err != nil {
		return nil, boundaryErrorf(opBuild, err)
	}

	cols, err := c.Dim(p)
	if err != nil {
		return nil, boundaryErrorf(opBuild, err)
	}
	for j, s := range cols {
		for _, f := range s.Faces() {
			i, ok := c.IndexOf(f)
			if !ok {
				return nil, boundaryErrorf(opBuild, fmt.Errorf("face %v of %v: %w", f, s, ErrMissingFace))
			}
			m.data[i*m.c+j] = 1
		}
	}

	return m, nil
}

// Matrices returns all boundary matrices of c. Index 0 is nil (there is no
// ∂_0); index p holds ∂_p for 1 ≤ p < c.Len().
// Complexity: Σ_p of Build.
func Matrices(c *simplex.Complex) ([]*Matrix, error) {
	if c == nil {
		return nil, boundaryErrorf(opMatrices, ErrNilMatrix)
	}
	out := make([]*Matrix, c.Len())
	for p := 1; p < c.Len(); p++ {
		m, err := Build(c, p)
		if err != nil {
			return nil, boundaryErrorf(opMatrices, err)
		}
		out[p] = m
	}

	return out, nil
}
