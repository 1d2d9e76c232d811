package simplex_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/homology/geometry"
	"github.com/katalvlaran/homology/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle returns three points at mutual distance 1.
func triangle(dx float64) []geometry.Point {
	return []geometry.Point{
		geometry.NewPoint(dx+0, 0),
		geometry.NewPoint(dx+1, 0),
		geometry.NewPoint(dx+0.5, math.Sqrt(3)/2),
	}
}

// ring returns n points evenly spaced on the unit circle.
func ring(n int) []geometry.Point {
	pts := make([]geometry.Point, n)
	for k := 0; k < n; k++ {
		a := 2 * math.Pi * float64(k) / float64(n)
		pts[k] = geometry.NewPoint(math.Cos(a), math.Sin(a))
	}

	return pts
}

// TestBuild_Triangle: all three edges and the single 2-simplex are present,
// and construction stops at dimension 3.
func TestBuild_Triangle(t *testing.T) {
	c, err := simplex.Build(triangle(0), 0.6)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int{3, 3, 1}, c.Counts())
	assert.Equal(t, 0.6, c.Radius())

	edges, err := c.Dim(1)
	require.NoError(t, err)
	assert.Equal(t, []simplex.Simplex{{0, 1}, {0, 2}, {1, 2}}, edges)

	tri, err := c.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, simplex.Simplex{0, 1, 2}, tri)
}

// TestBuild_RingHasNoTriangles: only neighbours on the ring are within 2r.
func TestBuild_RingHasNoTriangles(t *testing.T) {
	c, err := simplex.Build(ring(8), 0.5)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 8, c.Count(1))
	assert.Equal(t, 0, c.Count(2), "beyond Len() counts read as zero")
}

// TestBuild_Tetrahedron: four mutually close points fill a 3-simplex.
func TestBuild_Tetrahedron(t *testing.T) {
	pts := []geometry.Point{
		geometry.NewPoint(0, 0, 0),
		geometry.NewPoint(1, 0, 0),
		geometry.NewPoint(0, 1, 0),
		geometry.NewPoint(0, 0, 1),
	}
	c, err := simplex.Build(pts, 0.8)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 6, 4, 1}, c.Counts())
	top, err := c.At(3, 0)
	require.NoError(t, err)
	assert.Equal(t, simplex.Simplex{0, 1, 2, 3}, top)
}

// TestBuild_Degenerate covers the empty set, a single vertex and r ≤ 0.
func TestBuild_Degenerate(t *testing.T) {
	empty, err := simplex.Build(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, empty.Len(), "Dim(0) is always present")
	assert.Equal(t, 0, empty.Count(0))

	single, err := simplex.Build([]geometry.Point{geometry.NewPoint(3, 4)}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, single.Counts())

	for _, r := range []float64{0, -1, math.NaN()} {
		c, err := simplex.Build(triangle(0), r)
		require.NoError(t, err, "radius %v is degenerate, not invalid", r)
		assert.Equal(t, []int{3}, c.Counts(), "radius %v", r)
	}
}

// TestBuild_DedupsVertices: duplicated input points collapse to one vertex.
func TestBuild_DedupsVertices(t *testing.T) {
	pts := append(triangle(0), geometry.NewPoint(0, 0))
	c, err := simplex.Build(pts, 0.6)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 1}, c.Counts())
}

// TestBuild_ShapeErrors: mixed dimensionality is reported with context.
func TestBuild_ShapeErrors(t *testing.T) {
	_, err := simplex.Build([]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(1)}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "Build")
}

// TestBuild_DownwardClosed: every codimension-1 face of every stored simplex
// is stored one dimension lower.
func TestBuild_DownwardClosed(t *testing.T) {
	pts := append(ring(8), geometry.NewPoint(0, 0), geometry.NewPoint(0.3, 0.1))
	c, err := simplex.Build(pts, 0.55)
	require.NoError(t, err)

	for p := 1; p < c.Len(); p++ {
		level, err := c.Dim(p)
		require.NoError(t, err)
		for _, s := range level {
			for _, f := range s.Faces() {
				_, ok := c.IndexOf(f)
				assert.True(t, ok, "face %v of %v missing", f, s)
			}
		}
	}
}

// TestComplex_Accessors covers bounds errors and the copy semantics of Dim.
func TestComplex_Accessors(t *testing.T) {
	c, err := simplex.Build(triangle(0), 0.6)
	require.NoError(t, err)

	_, err = c.Dim(3)
	assert.ErrorIs(t, err, simplex.ErrDimensionOutOfRange)
	_, err = c.At(1, 3)
	assert.ErrorIs(t, err, simplex.ErrIndexOutOfRange)
	_, err = c.Vertex(-1)
	assert.ErrorIs(t, err, simplex.ErrIndexOutOfRange)

	edges, _ := c.Dim(1)
	edges[0][0] = 2
	again, _ := c.At(1, 0)
	assert.Equal(t, simplex.Simplex{0, 1}, again, "Dim must return a deep copy")

	pts, err := c.Points(simplex.Simplex{0, 1})
	require.NoError(t, err)
	assert.True(t, pts[1].Equal(geometry.NewPoint(1, 0)))
	assert.Equal(t, "Complex(r=0.6; |K0|=3 |K1|=3 |K2|=1)", c.String())
}

// TestSimplex_Helpers covers Key, Contains, With and Faces.
func TestSimplex_Helpers(t *testing.T) {
	s := simplex.Simplex{1, 4, 7}
	assert.Equal(t, simplex.Key("1,4,7"), s.Key())
	assert.Equal(t, 2, s.Dim())
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(5))
	assert.Equal(t, simplex.Simplex{0, 1, 4, 7}, s.With(0))
	assert.Equal(t, simplex.Simplex{1, 4, 5, 7}, s.With(5))
	assert.Equal(t, simplex.Simplex{1, 4, 7, 9}, s.With(9))
	assert.Equal(t, []simplex.Simplex{{4, 7}, {1, 7}, {1, 4}}, s.Faces())
	assert.Nil(t, simplex.Simplex{3}.Faces())
}

// cluster returns k points within a 0.01-wide strip; at any radius above
// 0.005 every subset is a simplex, 2^k − 1 in total.
func cluster(k int) []geometry.Point {
	pts := make([]geometry.Point, k)
	for i := range pts {
		pts[i] = geometry.NewPoint(float64(i)*0.01/float64(k), 0)
	}

	return pts
}

// TestBuildContext_Cancelled: a done context stops construction of a
// connected cloud before any work.
func TestBuildContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := simplex.BuildContext(ctx, cluster(16), 10, simplex.Limits{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, c)
}

// TestBuildContext_Limits: vertex and simplex caps abort construction with
// ErrTooLarge, and a cap that is exactly met is accepted.
func TestBuildContext_Limits(t *testing.T) {
	ctx := context.Background()

	// 8 vertices + 8 edges.
	c, err := simplex.BuildContext(ctx, ring(8), 0.5, simplex.Limits{MaxVertices: 8, MaxSimplices: 16})
	require.NoError(t, err)
	assert.Equal(t, []int{8, 8}, c.Counts())

	_, err = simplex.BuildContext(ctx, ring(8), 0.5, simplex.Limits{MaxSimplices: 15})
	assert.ErrorIs(t, err, simplex.ErrTooLarge)

	_, err = simplex.BuildContext(ctx, ring(8), 0.5, simplex.Limits{MaxVertices: 7})
	assert.ErrorIs(t, err, simplex.ErrTooLarge)
	assert.Contains(t, err.Error(), "8 vertices, limit 7")

	// 2^18 − 1 simplices would be built without the cap.
	_, err = simplex.BuildContext(ctx, cluster(18), 10, simplex.Limits{MaxSimplices: 1000})
	assert.ErrorIs(t, err, simplex.ErrTooLarge)
}

// TestAssemble covers explicit construction and its shape checks.
func TestAssemble(t *testing.T) {
	pts := triangle(0)
	c, err := simplex.Assemble(pts, 0.6,
		[]simplex.Simplex{{0, 1}, {1, 2}, {0, 2}},
		[]simplex.Simplex{{0, 1, 2}},
	)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 1}, c.Counts())
	i, ok := c.IndexOf(simplex.Simplex{0, 2})
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	// Faces are not checked here.
	open, err := simplex.Assemble(pts, 0.6, []simplex.Simplex{{0, 1}}, []simplex.Simplex{{0, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 1}, open.Counts())

	bad := [][]simplex.Simplex{
		{{0}},
		{{1, 0}},
		{{0, 3}},
		{{0, 1}, {0, 1}},
		{},
	}
	for _, level := range bad {
		_, err = simplex.Assemble(pts, 0.6, level)
		assert.ErrorIs(t, err, simplex.ErrInvalidSimplex, "%v", level)
	}

	_, err = simplex.Assemble([]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(1)}, 1)
	assert.ErrorIs(t, err, geometry.ErrDimensionMismatch)
}
