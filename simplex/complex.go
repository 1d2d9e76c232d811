// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homology/geometry"
)

// Complex is an immutable simplicial complex built from a vertex set and a
// radius. dims[p] holds the p-simplices in construction order; index[p] maps
// each Key to its position in dims[p].
type Complex struct {
	radius   float64
	vertices []geometry.Point
	dims     [][]Simplex
	index    []map[Key]int
}

// Radius returns the radius the complex was built with.
func (c *Complex) Radius() float64 { return c.radius }

// Len returns the number of stored dimensions: the index of the first empty
// dimension, with dimension 0 always present.
func (c *Complex) Len() int { return len(c.dims) }

// Count returns |Dim(p)|, or 0 for any p outside [0, Len()).
func (c *Complex) Count(p int) int {
	if p < 0 || p >= len(c.dims) {
		return 0
	}

	return len(c.dims[p])
}

// Counts returns |Dim(p)| for every stored p.
func (c *Complex) Counts() []int {
	out := make([]int, len(c.dims))
	for p := range c.dims {
		out[p] = len(c.dims[p])
	}

	return out
}

// Dim returns a deep copy of the p-simplices in construction order.
func (c *Complex) Dim(p int) ([]Simplex, error) {
	if p < 0 || p >= len(c.dims) {
		return nil, simplexErrorf("Dim", fmt.Errorf("p=%d of %d: %w", p, len(c.dims), ErrDimensionOutOfRange))
	}
	out := make([]Simplex, len(c.dims[p]))
	for i, s := range c.dims[p] {
		out[i] = s.clone()
	}

	return out, nil
}

// At returns a copy of the i-th p-simplex.
func (c *Complex) At(p, i int) (Simplex, error) {
	if p < 0 || p >= len(c.dims) {
		return nil, simplexErrorf("At", fmt.Errorf("p=%d of %d: %w", p, len(c.dims), ErrDimensionOutOfRange))
	}
	if i < 0 || i >= len(c.dims[p]) {
		return nil, simplexErrorf("At", fmt.Errorf("i=%d of %d: %w", i, len(c.dims[p]), ErrIndexOutOfRange))
	}

	return c.dims[p][i].clone(), nil
}

// IndexOf returns the position of s within Dim(s.Dim()).
// Complexity: O(p) for the key plus one map lookup.
func (c *Complex) IndexOf(s Simplex) (int, bool) {
	p := s.Dim()
	if p < 0 || p >= len(c.index) {
		return 0, false
	}
	i, ok := c.index[p][s.Key()]

	return i, ok
}

// Vertices returns the vertex set in index order. Points are immutable, so
// the slice is fresh but its elements are shared safely.
func (c *Complex) Vertices() []geometry.Point {
	out := make([]geometry.Point, len(c.vertices))
	copy(out, c.vertices)

	return out
}

// Vertex returns the point at vertex index i.
func (c *Complex) Vertex(i int) (geometry.Point, error) {
	if i < 0 || i >= len(c.vertices) {
		return geometry.Point{}, simplexErrorf("Vertex", fmt.Errorf("i=%d of %d: %w", i, len(c.vertices), ErrIndexOutOfRange))
	}

	return c.vertices[i], nil
}

// Points resolves the vertex indices of s to points.
func (c *Complex) Points(s Simplex) ([]geometry.Point, error) {
	out := make([]geometry.Point, len(s))
	for k, v := range s {
		p, err := c.Vertex(v)
		if err != nil {
			return nil, err
		}
		out[k] = p
	}

	return out, nil
}

// String summarizes the complex as "Complex(r=0.6; |K0|=3 |K1|=3 |K2|=1)".
func (c *Complex) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Complex(r=%g;", c.radius)
	for p, d := range c.dims {
		fmt.Fprintf(&sb, " |K%d|=%d", p, len(d))
	}
	sb.WriteByte(')')

	return sb.String()
}
