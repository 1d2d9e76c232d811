// Package geometry provides the point primitives the simplicial complex is
// built from: immutable points in Rⁿ and the Euclidean distance between them.
//
// What:
//
//   - Point stores a fixed tuple of float64 coordinates (n ≥ 1).
//   - Distance returns the Euclidean norm of the coordinate-wise difference.
//   - ValidateCloud checks that a whole vertex set shares one dimensionality.
//   - Dedup removes exact duplicates while preserving first-seen order.
//
// Errors:
//
//   - ErrDimensionMismatch: two points (or a point and the cloud) differ in n.
//   - ErrEmptyPoint: a point carries no coordinates.
//
// Complexity:
//
//   - Distance: O(n).
//   - ValidateCloud: O(N·1).
//   - Dedup: O(N·n) expected (hash on the formatted coordinates).
package geometry
