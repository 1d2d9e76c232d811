// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"fmt"

	"github.com/katalvlaran/homology/geometry"
)

const methodBuild = "Build"

// Limits caps the size of a complex under construction. A zero field means
// no limit.
type Limits struct {
	// MaxVertices bounds |Dim(0)| after deduplication.
	MaxVertices int
	// MaxSimplices bounds the total number of simplices over all dimensions,
	// vertices included.
	MaxSimplices int
}

// Build constructs the proximity complex of points at radius r with no size
// limit. It is BuildContext with context.Background() and zero Limits.
func Build(points []geometry.Point, r float64) (*Complex, error) {
	return BuildContext(context.Background(), points, r, Limits{})
}

// BuildContext constructs the proximity complex of points at radius r.
//
// Steps:
//  1. Validate: every point has the same dimensionality n ≥ 1.
//  2. Dedup exact duplicates (first occurrence wins); Dim(0) = S.
//  3. Precompute the closeness relation d(a,b) ≤ 2r once for all pairs.
//  4. Dim(1): pairs (a,b) with a < b in vertex order that are near.
//  5. For p = 1, 2, …: extend each p-simplex σ with each vertex v ∉ σ that is
//     near to every vertex of σ; keep σ ∪ {v} unless its Key is already
//     present in Dim(p+1).
//  6. Stop at the first empty dimension; it is not stored.
//
// ctx is checked between rows of the closeness relation and between the
// simplices being extended; lim is checked as each simplex is added, so an
// oversized complex is abandoned as soon as it crosses the limit.
//
// A radius ≤ 0 (or NaN) is not an error: no pair qualifies and the complex is
// the bare vertex set.
//
// Errors:
//   - geometry.ErrEmptyPoint, geometry.ErrDimensionMismatch.
//   - ErrTooLarge when lim is exceeded.
//   - ctx.Err() once ctx is done.
//
// Complexity: O(N²·n) for closeness plus O(Σ_p |Dim(p)|·N·p) for extension.
func BuildContext(ctx context.Context, points []geometry.Point, r float64, lim Limits) (*Complex, error) {
	if err := ctx.Err(); err != nil {
		return nil, simplexErrorf(methodBuild, err)
	}
	// 1. Validate the cloud shape.
	if _, err := geometry.ValidateCloud(points); err != nil {
		return nil, simplexErrorf(methodBuild, err)
	}

	// 2. Vertex set.
	verts := geometry.Dedup(points)
	n := len(verts)
	if lim.MaxVertices > 0 && n > lim.MaxVertices {
		return nil, simplexErrorf(methodBuild, fmt.Errorf("%d vertices, limit %d: %w", n, lim.MaxVertices, ErrTooLarge))
	}
	b := newBudget(lim.MaxSimplices)
	if err := b.take(n); err != nil {
		return nil, simplexErrorf(methodBuild, err)
	}
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

	// 3. Closeness relation, symmetric, irreflexive.
	near, err := closeness(ctx, verts, 2*r)
	if err != nil {
		return nil, simplexErrorf(methodBuild, err)
	}

	// 4. Edges, each unordered pair once.
	var edges []Simplex
	for a := 0; a < n; a++ {
		for j := a + 1; j < n; j++ {
			if !near[a][j] {
				continue
			}
			if err = b.take(1); err != nil {
				return nil, simplexErrorf(methodBuild, err)
			}
			edges = append(edges, Simplex{a, j})
		}
	}
	if len(edges) == 0 {
		return c, nil
	}
	c.push(edges)

	// 5. Extend dimension by dimension until nothing survives.
	for p := 1; ; p++ {
		next, idx, err := extend(ctx, c.dims[p], near, b)
		if err != nil {
			return nil, simplexErrorf(methodBuild, err)
		}
		if len(next) == 0 {
			break
		}
		c.dims = append(c.dims, next)
		c.index = append(c.index, idx)
	}

	return c, nil
}

// budget counts simplices against Limits.MaxSimplices.
type budget struct {
	limit, used int
}

func newBudget(limit int) *budget { return &budget{limit: limit} }

// take charges k simplices, failing once the total exceeds the limit.
func (b *budget) take(k int) error {
	b.used += k
	if b.limit > 0 && b.used > b.limit {
		return fmt.Errorf("more than %d simplices: %w", b.limit, ErrTooLarge)
	}

	return nil
}

// push appends a dimension whose simplices are already unique.
func (c *Complex) push(level []Simplex) {
	idx := make(map[Key]int, len(level))
	for i, s := range level {
		idx[s.Key()] = i
	}
	c.dims = append(c.dims, level)
	c.index = append(c.index, idx)
}

// extend produces the (p+1)-simplices reachable from level by adding one
// vertex that is near to every vertex already present.
func extend(ctx context.Context, level []Simplex, near [][]bool, b *budget) ([]Simplex, map[Key]int, error) {
	var (
		out []Simplex
		idx = make(map[Key]int)
		n   = len(near)
	)
	for _, s := range level {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		for v := 0; v < n; v++ {
			if s.Contains(v) || !closeToAll(near, s, v) {
				continue
			}
			cand := s.With(v)
			k := cand.Key()
			if _, dup := idx[k]; dup {
				continue
			}
			if err := b.take(1); err != nil {
				return nil, nil, err
			}
			idx[k] = len(out)
			out = append(out, cand)
		}
	}

	return out, idx, nil
}

// closeToAll reports whether v is near to every vertex of s.
func closeToAll(near [][]bool, s Simplex, v int) bool {
	for _, u := range s {
		if !near[u][v] {
			return false
		}
	}

	return true
}

// closeness returns the N×N relation d(a,b) ≤ threshold for a ≠ b.
func closeness(ctx context.Context, verts []geometry.Point, threshold float64) ([][]bool, error) {
	n := len(verts)
	near := make([][]bool, n)
	for a := range near {
		near[a] = make([]bool, n)
	}
	for a := 0; a < n; a++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for b := a + 1; b < n; b++ {
			d, err := geometry.Distance(verts[a], verts[b])
			if err != nil {
				return nil, err
			}
			if d <= threshold {
				near[a][b] = true
				near[b][a] = true
			}
		}
	}

	return near, nil
}
