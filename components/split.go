// SPDX-License-Identifier: MIT

package components

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/homology/betti"
	"github.com/katalvlaran/homology/geometry"
	"github.com/katalvlaran/homology/simplex"
)

var (
	// ErrConsistency indicates the derived components disagree with β_0 or do
	// not cover the vertex set exactly. It signals a broken complex upstream.
	ErrConsistency = errors.New("components: partition inconsistent with complex")

	// ErrNilComplex indicates a nil *simplex.Complex argument.
	ErrNilComplex = errors.New("components: nil complex")
)

// Partition groups the vertex indices of c by connectivity through Dim(1).
// Groups appear in the order their smallest vertex index is encountered, and
// each group lists its indices ascending.
//
// Steps:
//  1. One singleton set per vertex.
//  2. Union the endpoints of every edge.
//  3. Sweep vertices in index order, bucketing by root.
//
// Complexity: O(V + E·α(V)).
func Partition(c *simplex.Complex) ([][]int, error) {
	if c == nil {
		return nil, fmt.Errorf("Partition: %w", ErrNilComplex)
	}
	n := c.Count(0)
	d := newDSU(n)
	if c.Len() > 1 {
		edges, err := c.Dim(1)
		if err != nil {
			return nil, fmt.Errorf("Partition: %w", err)
		}
		for _, e := range edges {
			d.union(e[0], e[1])
		}
	}

	slot := make(map[int]int, n) // root -> group position
	var groups [][]int
	for v := 0; v < n; v++ {
		root := d.find(v)
		g, ok := slot[root]
		if !ok {
			g = len(groups)
			slot[root] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], v)
	}

	return groups, nil
}

// Split returns the connected components of c as independent complexes built
// at c.Radius(), ordered by their leftmost vertex (ties keep encounter order).
// b must be the Betti vector of c.
//
// If b.At(0) ≤ 1 the split is the identity: the result is []*Complex{c}.
//
// Errors:
//   - ErrNilComplex.
//   - ErrConsistency: group count ≠ β_0, or the groups do not cover Dim(0)
//     exactly once each. Nothing is returned alongside it.
func Split(c *simplex.Complex, b betti.Vector) ([]*simplex.Complex, error) {
	if c == nil {
		return nil, fmt.Errorf("Split: %w", ErrNilComplex)
	}
	if b.At(0) <= 1 {
		return []*simplex.Complex{c}, nil
	}

	groups, err := Partition(c)
	if err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}
	if err = verify(groups, c.Count(0), b.At(0)); err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}

	type part struct {
		complex  *simplex.Complex
		leftmost float64
	}
	parts := make([]part, len(groups))
	for g, idx := range groups {
		pts := make([]geometry.Point, len(idx))
		for k, v := range idx {
			if pts[k], err = c.Vertex(v); err != nil {
				return nil, fmt.Errorf("Split: %w", err)
			}
		}
		sub, buildErr := simplex.Build(pts, c.Radius())
		if buildErr != nil {
			return nil, fmt.Errorf("Split: component %d: %w", g, buildErr)
		}
		parts[g] = part{complex: sub, leftmost: Leftmost(sub)}
	}

	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].leftmost < parts[j].leftmost
	})

	out := make([]*simplex.Complex, len(parts))
	for i, p := range parts {
		out[i] = p.complex
	}

	return out, nil
}

// SplitComplex computes the Betti vector of c and then calls Split.
func SplitComplex(c *simplex.Complex) ([]*simplex.Complex, error) {
	if c == nil {
		return nil, fmt.Errorf("SplitComplex: %w", ErrNilComplex)
	}
	b, err := betti.Compute(c)
	if err != nil {
		return nil, fmt.Errorf("SplitComplex: %w", err)
	}

	return Split(c, b)
}

// Leftmost returns the smallest first coordinate among the vertices of c,
// or +Inf for an empty complex.
func Leftmost(c *simplex.Complex) float64 {
	lo := math.Inf(1)
	for _, p := range c.Vertices() {
		if x := p.Coord(0); x < lo {
			lo = x
		}
	}

	return lo
}

// verify checks the partition post-conditions: want groups, and every vertex
// 0..n−1 appearing in exactly one group.
func verify(groups [][]int, n, want int) error {
	if len(groups) != want {
		return fmt.Errorf("%d components, betti[0]=%d: %w", len(groups), want, ErrConsistency)
	}
	seen := make([]bool, n)
	covered := 0
	for g, idx := range groups {
		for _, v := range idx {
			if v < 0 || v >= n || seen[v] {
				return fmt.Errorf("component %d: vertex %d: %w", g, v, ErrConsistency)
			}
			seen[v] = true
			covered++
		}
	}
	if covered != n {
		return fmt.Errorf("covered %d of %d vertices: %w", covered, n, ErrConsistency)
	}

	return nil
}
