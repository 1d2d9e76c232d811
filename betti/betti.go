// SPDX-License-Identifier: MIT

// Package betti derives Betti numbers over GF(2) from the chain-group sizes
// of a complex and the ranks of its boundary maps.
//
// For a complex with dimension count d, chain-group sizes n_p = |K_p| and
// boundary ranks r_p = rank ∂_p (1 ≤ p < d):
//
//	z_0 = n_0,  z_p = n_p − r_p          (cycle-group rank)
//	b_p = r_{p+1},  b_{d−1} = 0          (boundary-group rank)
//	β_p = z_p − b_p
//
// which is rank–nullity applied to each ∂_p.
package betti

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/simplex"
)

var (
	// ErrRankShape indicates counts and ranks of different lengths.
	ErrRankShape = errors.New("betti: counts and ranks differ in length")

	// ErrNegative indicates a negative cycle or Betti rank: the inputs do not
	// come from a chain complex.
	ErrNegative = errors.New("betti: negative rank")
)

// Vector holds β_p for each stored dimension p.
type Vector []int

// At returns β_p, or 0 for any p the complex does not reach.
func (v Vector) At(p int) int {
	if p < 0 || p >= len(v) {
		return 0
	}

	return v[p]
}

// Components returns β_0, the number of connected components.
func (v Vector) Components() int { return v.At(0) }

// Holes returns β_1, the number of independent 1-dimensional holes.
func (v Vector) Holes() int { return v.At(1) }

// Len returns the number of stored dimensions.
func (v Vector) Len() int { return len(v) }

// String renders the vector as "[1 0 0]".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, b := range v {
		parts[i] = strconv.Itoa(b)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// FromRanks computes the Betti vector from counts[p] = |K_p| and
// ranks[p] = rank ∂_p (ranks[0] is ignored).
//
// Errors: ErrRankShape, ErrNegative (wrapped with the offending p).
// Complexity: O(d).
func FromRanks(counts, ranks []int) (Vector, error) {
	if len(counts) != len(ranks) {
		return nil, fmt.Errorf("FromRanks: %d counts, %d ranks: %w", len(counts), len(ranks), ErrRankShape)
	}
	d := len(counts)
	out := make(Vector, d)
	for p := 0; p < d; p++ {
		z := counts[p]
		if p > 0 {
			z -= ranks[p]
		}
		b := 0
		if p+1 < d {
			b = ranks[p+1]
		}
		if z < 0 || z-b < 0 {
			return nil, fmt.Errorf("FromRanks: p=%d z=%d b=%d: %w", p, z, b, ErrNegative)
		}
		out[p] = z - b
	}

	return out, nil
}

// Compute reduces every boundary map of c and returns its Betti vector.
// An empty complex yields [0].
func Compute(c *simplex.Complex) (Vector, error) {
	return ComputeContext(context.Background(), c)
}

// ComputeContext is Compute that returns ctx.Err() once ctx is done.
func ComputeContext(ctx context.Context, c *simplex.Complex) (Vector, error) {
	ranks, err := boundary.RanksContext(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	return FromRanks(c.Counts(), ranks)
}
