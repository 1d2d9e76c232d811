// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/homology/betti"
	"github.com/katalvlaran/homology/components"
	"github.com/katalvlaran/homology/geometry"
	"github.com/katalvlaran/homology/gridgraph"
	"github.com/katalvlaran/homology/simplex"
)

// Result is the outcome of one analysis.
type Result struct {
	// Complex is the full complex; it is not serialized.
	Complex *simplex.Complex `json:"-"`
	// Radius echoes the construction radius.
	Radius float64 `json:"radius"`
	// Vertices is |K_0| after deduplication.
	Vertices int `json:"vertices"`
	// Counts holds |K_p| per stored dimension.
	Counts []int `json:"counts"`
	// Betti is the Betti vector of the whole complex.
	Betti betti.Vector `json:"betti"`
	// Components lists per-component results left to right. It holds a
	// single entry for a connected non-empty cloud and is empty when the
	// split was disabled or the cloud is empty.
	Components []ComponentResult `json:"components,omitempty"`
	// Strokes is the number of contiguous ink regions; set by AnalyzeGrid only.
	Strokes int `json:"strokes,omitempty"`
}

// ComponentResult describes one connected component.
type ComponentResult struct {
	Index    int              `json:"index"`
	Leftmost float64          `json:"leftmost"`
	Vertices []geometry.Point `json:"vertices"`
	Betti    betti.Vector     `json:"betti"`
}

// Holes returns β_1 of every component, left to right.
func (r *Result) Holes() []int {
	out := make([]int, len(r.Components))
	for i, c := range r.Components {
		out[i] = c.Betti.Holes()
	}

	return out
}

// Analyze is AnalyzeContext with context.Background().
func Analyze(points []geometry.Point, radius float64, opts ...Option) (*Result, error) {
	return AnalyzeContext(context.Background(), points, radius, opts...)
}

// AnalyzeContext builds the complex of points at radius, computes its Betti
// vector and, unless WithSplit(false), the per-component breakdown.
//
// Stages:
//  1. simplex.BuildContext under the WithMaxVertices / WithMaxSimplices
//     limits (validates and deduplicates the cloud).
//  2. betti.ComputeContext on the whole complex.
//  3. components.Split driven by β_0, then betti.ComputeContext per component
//     on at most WithWorkers goroutines.
//
// ctx is checked before and inside every stage; once it is done the
// analysis stops and ctx.Err() is returned wrapped.
func AnalyzeContext(ctx context.Context, points []geometry.Point, radius float64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := simplex.BuildContext(ctx, points, radius, cfg.limits)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	b, err := betti.ComputeContext(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	res := &Result{
		Complex:  c,
		Radius:   c.Radius(),
		Vertices: c.Count(0),
		Counts:   c.Counts(),
		Betti:    b,
	}
	if !cfg.split || b.Components() == 0 {
		return res, nil
	}

	parts, err := components.Split(c, b)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	res.Components, err = analyzeParts(ctx, parts, b, cfg.workers)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return res, nil
}

// analyzeParts fills one ComponentResult per part. A single part is the
// whole complex, whose Betti vector is already known.
func analyzeParts(ctx context.Context, parts []*simplex.Complex, whole betti.Vector, workers int) ([]ComponentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]ComponentResult, len(parts))
	if len(parts) == 1 {
		out[0] = componentResult(0, parts[0], whole)

		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range parts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			pb, err := betti.ComputeContext(gctx, p)
			if err != nil {
				return fmt.Errorf("component %d: %w", i, err)
			}
			out[i] = componentResult(i, p, pb)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func componentResult(i int, c *simplex.Complex, b betti.Vector) ComponentResult {
	return ComponentResult{
		Index:    i,
		Leftmost: components.Leftmost(c),
		Vertices: c.Vertices(),
		Betti:    b,
	}
}

// AnalyzeGrid reduces g into block-sized vertices and analyzes them at radius
// (measured in block units). Result.Strokes reports the number of contiguous
// ink regions of g under its connectivity.
func AnalyzeGrid(ctx context.Context, g *gridgraph.GridGraph, block int, radius float64, opts ...Option) (*Result, error) {
	pts, err := gridgraph.BlockReduce(g, block)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	res, err := AnalyzeContext(ctx, pts, radius, opts...)
	if err != nil {
		return nil, err
	}
	res.Strokes = len(g.ConnectedComponents())

	return res, nil
}
