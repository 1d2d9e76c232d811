// Package components splits a simplicial complex into its connected
// components, each rebuilt as an independent complex at the same radius and
// ordered left to right.
//
// What:
//
//   - Partition groups vertex indices by 1-skeleton connectivity using a
//     disjoint-set forest (path compression + union by rank).
//   - Split checks the partition against β_0, rebuilds one complex per group
//     and sorts them by the smallest first coordinate among their vertices.
//
// Why rebuild instead of extract:
//
//	A component is re-derived from its vertex subset alone, so it owns its
//	points and simplices outright; no index or slice aliases the parent.
//
// Errors:
//
//   - ErrConsistency: the number of groups differs from β_0, or the groups
//     do not cover the vertex set exactly. Split returns no partial result.
//   - ErrNilComplex: nil input.
//
// Complexity:
//
//   - Partition: O(V + E·α(V)).
//   - Split: Partition + one simplex.Build per component + O(c log c) sort.
package components
