// Package homology is a small engine for counting the holes in point clouds
// and drawings: it builds a simplicial complex from the points, reduces its
// boundary matrices over GF(2) and reports the Betti numbers.
//
// Pipeline:
//
//	points ──► simplex.Build(points, r) ──► boundary.Ranks(c) ─────► betti.FromRanks
//	                      │                                                │
//	                      └──────────► components.Split(c, β) ◄────────────┘
//
// Two points are joined when their distance is at most 2r; every set of
// pairwise-joined points spans a simplex (the flag complex). β_0 counts
// connected components and β_1 counts holes.
//
// Subpackages:
//
//	geometry/    immutable n-dimensional points and Euclidean distance
//	simplex/     canonical simplices and the per-dimension complex
//	boundary/    GF(2) boundary matrices and their rank by XOR reduction
//	betti/       rank–nullity Betti vectors
//	components/  union-find split into left-to-right components
//	gridgraph/   raster drawings: ink detection, strokes, block reduction
//	pipeline/    one-call analysis with concurrent per-component work
//
// Quick example, a square of side 1 at r = 0.5:
//
//	A───B
//	│   │     β = [1 1]: one component, one hole.
//	D───C
//
// The homology command (cmd/homology) exposes the engine as a CLI and as an
// HTTP service:
//
//	go install github.com/katalvlaran/homology/cmd/homology@latest
package homology
