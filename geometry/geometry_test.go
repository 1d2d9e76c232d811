package geometry_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/homology/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistance_Basic checks a 3-4-5 triangle and the zero distance.
func TestDistance_Basic(t *testing.T) {
	p := geometry.NewPoint(0, 0)
	q := geometry.NewPoint(3, 4)

	d, err := geometry.Distance(p, q)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	d, err = geometry.Distance(q, q)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "distance to itself must be zero")
}

// TestDistance_Symmetric verifies d(p,q) == d(q,p) in R³.
func TestDistance_Symmetric(t *testing.T) {
	p := geometry.NewPoint(1, -2, 0.5)
	q := geometry.NewPoint(-3, 4, 2)

	a, err := geometry.Distance(p, q)
	require.NoError(t, err)
	b, err := geometry.Distance(q, p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.InDelta(t, math.Sqrt(16+36+2.25), a, 1e-12)
}

// TestDistance_DimensionMismatch ensures mismatched points are reported, not coerced.
func TestDistance_DimensionMismatch(t *testing.T) {
	_, err := geometry.Distance(geometry.NewPoint(1, 2), geometry.NewPoint(1, 2, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "2 vs 3")
}

// TestNewPoint_Immutable verifies the constructor and Coords both copy.
func TestNewPoint_Immutable(t *testing.T) {
	src := []float64{1, 2}
	p := geometry.NewPoint(src...)
	src[0] = 99
	assert.Equal(t, 1.0, p.Coord(0), "mutating the source must not leak into the point")

	c := p.Coords()
	c[1] = 42
	assert.Equal(t, 2.0, p.Coord(1), "mutating Coords() must not leak into the point")
	assert.Equal(t, 2, p.Dim())
	assert.Equal(t, "(1, 2)", p.String())
}

// TestValidateCloud covers the empty cloud, an empty point and a mixed cloud.
func TestValidateCloud(t *testing.T) {
	dim, err := geometry.ValidateCloud(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, dim)

	dim, err = geometry.ValidateCloud([]geometry.Point{geometry.NewPoint(1, 1), geometry.NewPoint(2, 2)})
	require.NoError(t, err)
	assert.Equal(t, 2, dim)

	_, err = geometry.ValidateCloud([]geometry.Point{geometry.NewPoint(1, 1), geometry.NewPoint()})
	assert.ErrorIs(t, err, geometry.ErrEmptyPoint)

	_, err = geometry.ValidateCloud([]geometry.Point{geometry.NewPoint(1, 1), geometry.NewPoint(1)})
	assert.ErrorIs(t, err, geometry.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "index 1")
}

// TestDedup keeps the first occurrence and the original order.
func TestDedup(t *testing.T) {
	in := []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 0),
		geometry.NewPoint(0, 0),
		geometry.NewPoint(math.Copysign(0, -1), 0), // -0 folds into +0
		geometry.NewPoint(0, 1),
	}
	out := geometry.Dedup(in)
	require.Len(t, out, 3)
	assert.True(t, out[0].Equal(geometry.NewPoint(0, 0)))
	assert.True(t, out[1].Equal(geometry.NewPoint(1, 0)))
	assert.True(t, out[2].Equal(geometry.NewPoint(0, 1)))
	assert.Len(t, in, 5, "input must stay untouched")
}

// TestPoint_JSON encodes as a coordinate array and decodes back.
func TestPoint_JSON(t *testing.T) {
	raw, err := json.Marshal([]geometry.Point{geometry.NewPoint(1.5, -2), {}})
	require.NoError(t, err)
	assert.JSONEq(t, `[[1.5,-2],[]]`, string(raw))

	var pts []geometry.Point
	require.NoError(t, json.Unmarshal([]byte(`[[0,1],[2,3,4]]`), &pts))
	require.Len(t, pts, 2)
	assert.True(t, pts[1].Equal(geometry.NewPoint(2, 3, 4)))

	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &pts[0]))
}

// TestFromSlices converts rows and copies them.
func TestFromSlices(t *testing.T) {
	rows := [][]float64{{0, 0}, {1, 2}}
	pts := geometry.FromSlices(rows)
	rows[1][0] = 9
	require.Len(t, pts, 2)
	assert.Equal(t, "(1, 2)", pts[1].String())
	assert.Empty(t, geometry.FromSlices(nil))
}
