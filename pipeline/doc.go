// Package pipeline is the one-call entry point of the engine: it builds the
// complex of a point cloud, computes its Betti vector and, when the cloud
// falls apart into several pieces, the Betti vector of every connected
// component in left-to-right order.
//
// What:
//
//   - Analyze / AnalyzeContext: points + radius → *Result.
//   - AnalyzeGrid: pixel grid + block size + radius → *Result, via
//     gridgraph.BlockReduce.
//
// Options:
//
//   - WithSplit(bool): compute per-component results (default true).
//   - WithWorkers(n): number of components analyzed concurrently (default 1).
//   - WithMaxVertices(n), WithMaxSimplices(n): size caps enforced while the
//     complex is built; exceeding one returns simplex.ErrTooLarge.
//
// Cancellation:
//
//	AnalyzeContext and AnalyzeGrid check ctx while building the complex,
//	between pivot steps of every reduction and before each component. A done
//	ctx ends the run with ctx.Err() wrapped.
//
// Concurrency:
//
//	Components are independent complexes. Their Betti vectors are computed by
//	an errgroup bounded by WithWorkers and written to distinct slots, so the
//	output order never depends on scheduling.
//
// Errors:
//
//	Errors from geometry, simplex, boundary, betti, components and gridgraph
//	are returned wrapped; match them with errors.Is.
package pipeline
