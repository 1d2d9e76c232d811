// SPDX-License-Identifier: MIT

package boundary

import (
	"context"

	"github.com/katalvlaran/homology/simplex"
)

// Reduce brings a copy of m into GF(2) diagonal normal form and returns it
// together with its rank. m itself is not modified.
//
// Steps, for x = 0 .. min(rows, cols)−1:
//  1. Scan rows ≥ x, cols ≥ x in row-major order for the first 1 at (k, l).
//     If there is none, every remaining entry is 0: stop with rank = x.
//  2. Swap row k into row x and column l into column x.
//  3. XOR row x into every row below it with a 1 in column x.
//  4. XOR column x into every column right of it with a 1 in row x.
//
// The result has ones exactly on the diagonal prefix 0..rank−1.
//
// Errors: ErrNilMatrix.
// Complexity: O(rank·rows·cols).
func Reduce(m *Matrix) (*Matrix, int, error) {
	return reduce(context.Background(), m)
}

// reduce is Reduce with ctx checked before every pivot step.
func reduce(ctx context.Context, m *Matrix) (*Matrix, int, error) {
	if m == nil {
		return nil, 0, boundaryErrorf(opReduce, ErrNilMatrix)
	}
	a := m.Clone()
	limit := a.r
	if a.c < limit {
		limit = a.c
	}

	var x int
	for x = 0; x < limit; x++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, boundaryErrorf(opReduce, err)
		}
		k, l, found := a.firstOne(x)
		if !found {
			break
		}
		a.SwapRows(x, k)
		a.SwapCols(x, l)

		for i := x + 1; i < a.r; i++ {
			if a.data[i*a.c+x] == 1 {
				a.XorRowInto(i, x)
			}
		}
		for j := x + 1; j < a.c; j++ {
			if a.data[x*a.c+j] == 1 {
				a.XorColInto(j, x)
			}
		}
	}

	return a, x, nil
}

// Rank returns the GF(2) rank of m.
func Rank(m *Matrix) (int, error) {
	_, r, err := Reduce(m)

	return r, err
}

// Ranks returns rank ∂_p for every p in [1, c.Len()); index 0 is 0.
// Complexity: Σ_p of Build + Reduce.
func Ranks(c *simplex.Complex) ([]int, error) {
	return RanksContext(context.Background(), c)
}

// RanksContext is Ranks that builds one ∂_p at a time and gives up with
// ctx.Err() between matrices and between pivot steps.
func RanksContext(ctx context.Context, c *simplex.Complex) ([]int, error) {
	if c == nil {
		return nil, boundaryErrorf(opRanks, ErrNilMatrix)
	}
	ranks := make([]int, c.Len())
	for p := 1; p < c.Len(); p++ {
		if err := ctx.Err(); err != nil {
			return nil, boundaryErrorf(opRanks, err)
		}
		m, err := Build(c, p)
		if err != nil {
			return nil, boundaryErrorf(opRanks, err)
		}
		if _, ranks[p], err = reduce(ctx, m); err != nil {
			return nil, boundaryErrorf(opRanks, err)
		}
	}

	return ranks, nil
}

// firstOne returns the first 1 in the block rows ≥ x, cols ≥ x, row-major.
func (m *Matrix) firstOne(x int) (row, col int, found bool) {
	for i := x; i < m.r; i++ {
		base := i * m.c
		for j := x; j < m.c; j++ {
			if m.data[base+j] == 1 {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}
