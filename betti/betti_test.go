package betti_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/homology/betti"
	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/geometry"
	"github.com/katalvlaran/homology/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compute builds the complex of pts at radius r and returns its Betti vector.
func compute(t *testing.T, pts []geometry.Point, r float64) betti.Vector {
	t.Helper()
	c, err := simplex.Build(pts, r)
	require.NoError(t, err)
	b, err := betti.Compute(c)
	require.NoError(t, err)

	return b
}

func triangle(dx float64) []geometry.Point {
	return []geometry.Point{
		geometry.NewPoint(dx, 0),
		geometry.NewPoint(dx+1, 0),
		geometry.NewPoint(dx+0.5, math.Sqrt(3)/2),
	}
}

func ring(n int, cx float64) []geometry.Point {
	pts := make([]geometry.Point, n)
	for k := 0; k < n; k++ {
		a := 2 * math.Pi * float64(k) / float64(n)
		pts[k] = geometry.NewPoint(cx+math.Cos(a), math.Sin(a))
	}

	return pts
}

// TestCompute_Scenarios covers the reference point clouds.
func TestCompute_Scenarios(t *testing.T) {
	tetra := []geometry.Point{
		geometry.NewPoint(0, 0, 0),
		geometry.NewPoint(1, 0, 0),
		geometry.NewPoint(0, 1, 0),
		geometry.NewPoint(0, 0, 1),
	}
	cases := []struct {
		name string
		pts  []geometry.Point
		r    float64
		want betti.Vector
	}{
		{"filled triangle", triangle(0), 0.6, betti.Vector{1, 0, 0}},
		{"empty ring", ring(8, 0), 0.5, betti.Vector{1, 1}},
		{"two triangles", append(triangle(0), triangle(10)...), 0.6, betti.Vector{2, 0, 0}},
		{"single point", []geometry.Point{geometry.NewPoint(2, 2)}, 0.6, betti.Vector{1}},
		{"tetrahedron", tetra, 0.8, betti.Vector{1, 0, 0, 0}},
		{"empty set", nil, 0.6, betti.Vector{0}},
		{"isolated points", triangle(0), 0.1, betti.Vector{3}},
		{"two rings", append(ring(8, 0), ring(8, 5)...), 0.5, betti.Vector{2, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, compute(t, tc.pts, tc.r))
		})
	}
}

// TestVector_At: dimensions the complex never reaches read as zero.
func TestVector_At(t *testing.T) {
	b := compute(t, ring(8, 0), 0.5)
	assert.Equal(t, 1, b.Components())
	assert.Equal(t, 1, b.Holes())
	assert.Equal(t, 0, b.At(2))
	assert.Equal(t, 0, b.At(-1))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "[1 1]", b.String())

	single := compute(t, []geometry.Point{geometry.NewPoint(0)}, 1)
	for p := 1; p < 6; p++ {
		assert.Equal(t, 0, single.At(p))
	}
}

// TestCompute_ComponentCountProperty: β_0 ≥ 1 iff the vertex set is non-empty.
func TestCompute_ComponentCountProperty(t *testing.T) {
	for n := 0; n < 10; n++ {
		b := compute(t, ring(n, 0), 0.3)
		if n == 0 {
			assert.Equal(t, 0, b.Components())
			continue
		}
		assert.GreaterOrEqual(t, b.Components(), 1, "n=%d", n)
	}
}

// TestFromRanks_Errors covers shape mismatch and inconsistent ranks.
func TestFromRanks_Errors(t *testing.T) {
	_, err := betti.FromRanks([]int{3, 3}, []int{0})
	assert.ErrorIs(t, err, betti.ErrRankShape)

	_, err = betti.FromRanks([]int{3, 3}, []int{0, 4})
	assert.ErrorIs(t, err, betti.ErrNegative)

	v, err := betti.FromRanks([]int{3, 3, 1}, []int{0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, betti.Vector{1, 0, 0}, v)
}

// TestComputeContext: cancellation and a broken complex both surface as
// wrapped errors.
func TestComputeContext(t *testing.T) {
	pts := []geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(1, 0), geometry.NewPoint(0.5, 1)}
	c, err := simplex.Build(pts, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = betti.ComputeContext(ctx, c)
	assert.ErrorIs(t, err, context.Canceled)

	open, err := simplex.Assemble(pts, 1, []simplex.Simplex{{0, 1}}, []simplex.Simplex{{0, 1, 2}})
	require.NoError(t, err)
	_, err = betti.Compute(open)
	assert.ErrorIs(t, err, boundary.ErrMissingFace)
}
