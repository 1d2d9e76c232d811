// SPDX-License-Identifier: MIT

package geometry

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Point is an immutable tuple of real coordinates.
// The zero value is a point with no coordinates and is rejected by ValidateCloud.
type Point struct {
	coords []float64 // owned copy, never exposed
}

// NewPoint returns a Point holding a copy of coords.
// Complexity: O(n).
func NewPoint(coords ...float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)

	return Point{coords: c}
}

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p.coords) }

// Coord returns the i-th coordinate. It panics on an out-of-range index,
// like a slice access would.
func (p Point) Coord(i int) float64 { return p.coords[i] }

// Coords returns a copy of all coordinates.
func (p Point) Coords() []float64 {
	c := make([]float64, len(p.coords))
	copy(c, p.coords)

	return c
}

// Equal reports whether p and q have the same dimensionality and identical
// coordinates.
func (p Point) Equal(q Point) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i := range p.coords {
		if p.coords[i] != q.coords[i] {
			return false
		}
	}

	return true
}

// String renders the point as "(x, y, ...)" using the shortest exact
// float representation.
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}

// MarshalJSON encodes the point as a bare coordinate array.
func (p Point) MarshalJSON() ([]byte, error) {
	if p.coords == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(p.coords)
}

// UnmarshalJSON decodes a coordinate array.
func (p *Point) UnmarshalJSON(data []byte) error {
	var c []float64
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*p = NewPoint(c...)

	return nil
}

// FromSlices converts raw coordinate rows into points, one per row.
func FromSlices(rows [][]float64) []Point {
	out := make([]Point, len(rows))
	for i, r := range rows {
		out[i] = NewPoint(r...)
	}

	return out
}

// key is a hashable identity for exact-duplicate detection.
func (p Point) key() string {
	var sb strings.Builder
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteByte(',')
		}
		if c == 0 {
			c = 0 // fold -0 into +0
		}
		sb.WriteString(strconv.FormatUint(math.Float64bits(c), 16))
	}

	return sb.String()
}
