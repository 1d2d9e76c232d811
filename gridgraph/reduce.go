// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/homology/geometry"
)

// BlockReduce partitions the grid into b×b blocks and returns one vertex per
// block that holds at least one foreground cell. The vertex for the block
// covering cells [x·b, (x+1)·b) × [y·b, (y+1)·b) is the point (x, y).
//
// Trailing cells that do not fill a whole block are discarded, so a grid
// narrower or shorter than b yields no vertices. Points are emitted row by
// row, top to bottom, left to right within a row.
//
// Errors: ErrBadBlockSize if b ≤ 0.
// Complexity: O(W×H) worst case.
func BlockReduce(gg *GridGraph, b int) ([]geometry.Point, error) {
	if b <= 0 {
		return nil, fmt.Errorf("BlockReduce: b=%d: %w", b, ErrBadBlockSize)
	}
	h, w := gg.Height/b, gg.Width/b
	var pts []geometry.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gg.blockHasInk(x*b, y*b, b) {
				pts = append(pts, geometry.NewPoint(float64(x), float64(y)))
			}
		}
	}

	return pts, nil
}

// blockHasInk scans the b×b block whose top-left cell is (x0,y0).
func (gg *GridGraph) blockHasInk(x0, y0, b int) bool {
	for y := y0; y < y0+b; y++ {
		row := gg.CellValues[y]
		for x := x0; x < x0+b; x++ {
			if row[x] >= gg.LandThreshold {
				return true
			}
		}
	}

	return false
}
