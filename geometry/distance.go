// SPDX-License-Identifier: MIT

package geometry

import "math"

const (
	methodDistance      = "Distance"
	methodValidateCloud = "ValidateCloud"
)

// Distance returns the Euclidean distance between p and q.
// Stage 1 (Validate): both points must have the same dimensionality.
// Stage 2 (Execute): accumulate squared differences, take the square root.
// Complexity: O(n).
func Distance(p, q Point) (float64, error) {
	if len(p.coords) != len(q.coords) {
		return 0, geometryErrorf(methodDistance, ErrDimensionMismatch, "%d vs %d", len(p.coords), len(q.coords))
	}

	var sum, d float64
	for i := range p.coords {
		d = p.coords[i] - q.coords[i]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// ValidateCloud checks that every point has at least one coordinate and that
// all points share the dimensionality of the first one.
// It returns that dimensionality (0 for an empty cloud).
// Complexity: O(N).
func ValidateCloud(points []Point) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}
	dim := points[0].Dim()
	for i, p := range points {
		if p.Dim() == 0 {
			return 0, geometryErrorf(methodValidateCloud, ErrEmptyPoint, "index %d", i)
		}
		if p.Dim() != dim {
			return 0, geometryErrorf(methodValidateCloud, ErrDimensionMismatch, "index %d: %d vs %d", i, p.Dim(), dim)
		}
	}

	return dim, nil
}

// Dedup returns points with exact duplicates removed. The first occurrence
// wins and relative order is preserved. The input slice is not modified.
// Complexity: O(N·n) expected.
func Dedup(points []Point) []Point {
	seen := make(map[string]struct{}, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		k := p.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}

	return out
}
