// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"

	"github.com/katalvlaran/homology/geometry"
)

const methodAssemble = "Assemble"

// Assemble builds a Complex from an explicit vertex set and explicit higher
// simplices: levels[0] becomes Dim(1), levels[1] Dim(2) and so on. Dim(0) is
// every vertex of points, in order; points are not deduplicated.
//
// Each simplex of levels[k] must hold k+2 strictly ascending indices into
// points, and no Key may repeat within a level. A level must be non-empty.
// Assemble does not check that faces are present one dimension lower;
// boundary.Build reports a missing face with boundary.ErrMissingFace.
//
// Errors: geometry.ErrEmptyPoint, geometry.ErrDimensionMismatch,
// ErrInvalidSimplex.
func Assemble(points []geometry.Point, r float64, levels ...[]Simplex) (*Complex, error) {
	if _, err := geometry.ValidateCloud(points); err != nil {
		return nil, simplexErrorf(methodAssemble, err)
	}
	n := len(points)
	verts := make([]geometry.Point, n)
	copy(verts, points)
	c := &Complex{
		radius:   r,
		vertices: verts,
		dims:     [][]Simplex{make([]Simplex, n)},
		index:    []map[Key]int{make(map[Key]int, n)},
	}
	for i := 0; i < n; i++ {
		s := Simplex{i}
		c.dims[0][i] = s
		c.index[0][s.Key()] = i
	}

	for k, level := range levels {
		p := k + 1
		if len(level) == 0 {
			return nil, simplexErrorf(methodAssemble, fmt.Errorf("dimension %d is empty: %w", p, ErrInvalidSimplex))
		}
		own := make([]Simplex, len(level))
		idx := make(map[Key]int, len(level))
		for i, s := range level {
			if err := checkSimplex(s, p, n); err != nil {
				return nil, simplexErrorf(methodAssemble, err)
			}
			key := s.Key()
			if _, dup := idx[key]; dup {
				return nil, simplexErrorf(methodAssemble, fmt.Errorf("duplicate %v: %w", s, ErrInvalidSimplex))
			}
			idx[key] = i
			own[i] = s.clone()
		}
		c.dims = append(c.dims, own)
		c.index = append(c.index, idx)
	}

	return c, nil
}

// checkSimplex verifies s has p+1 ascending indices in [0, n).
func checkSimplex(s Simplex, p, n int) error {
	if len(s) != p+1 {
		return fmt.Errorf("%v in dimension %d: %w", s, p, ErrInvalidSimplex)
	}
	for i, v := range s {
		if v < 0 || v >= n || (i > 0 && v <= s[i-1]) {
			return fmt.Errorf("%v over %d vertices: %w", s, n, ErrInvalidSimplex)
		}
	}

	return nil
}
