// Package boundary assembles the boundary matrices of a simplicial complex
// over GF(2) and reduces them to extract their ranks.
//
// What:
//
//   - Matrix is a dense, row-major 0/1 matrix; addition is XOR.
//   - Build(c, p) returns ∂_p: rows are the (p−1)-simplices, columns the
//     p-simplices, entry 1 iff the row simplex is a codimension-1 face of the
//     column simplex.
//   - Reduce performs row/column elimination into a diagonal normal form with
//     ones on the prefix 0..rank−1; Rank returns that prefix length.
//
// Determinism:
//
//	Pivots are chosen as the first 1 found in a row-major scan of the
//	unreduced block, so the normal form (not just the rank) is reproducible.
//
// Errors:
//
//   - ErrBadShape, ErrOutOfRange, ErrNonBinary: matrix construction/access.
//   - ErrDimension: no boundary matrix exists for the requested p.
//   - ErrMissingFace: a face of a stored simplex is absent (broken complex).
//
// Complexity:
//
//   - Build: O(|K_p|·p²) lookups plus O(|K_{p−1}|·|K_p|) allocation.
//   - Reduce: O(rank·rows·cols).
package boundary
