// Package gridgraph treats a 2D grid of pixel values as the input surface
// of the homology pipeline: it validates the grid, finds contiguous strokes,
// and quantizes foreground pixels into a vertex set.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold;
//     cells with value ≥ LandThreshold are foreground ("ink").
//   - FromImage / DecodePNG turn a picture into such a grid: dark pixels
//     become 1, light pixels 0.
//   - ConnectedComponents lists contiguous foreground regions ("strokes").
//   - BlockReduce cuts the grid into b×b blocks and returns one vertex per
//     block that contains ink, in block coordinates.
//
// Why:
//
//   - A drawing of a few hundred thousand pixels becomes a few hundred
//     vertices, which keeps simplicial complex construction tractable.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - BlockReduce:         O(W×H) worst case, early exit per block.
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered foreground.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadBlockSize: block size b ≤ 0.
package gridgraph
