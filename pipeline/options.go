// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/homology/simplex"
)

// Option customizes an analysis run by mutating its config.
// Option constructors validate and panic on meaningless inputs; Analyze
// itself never panics.
type Option func(*config)

type config struct {
	split   bool
	workers int
	limits  simplex.Limits
}

func defaultConfig() config {
	return config{split: true, workers: 1}
}

// WithSplit toggles the per-component breakdown. With false, Result.Components
// is left empty.
func WithSplit(on bool) Option {
	return func(c *config) {
		c.split = on
	}
}

// WithWorkers bounds the number of components analyzed concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("pipeline: WithWorkers(%d): need n ≥ 1", n))
	}

	return func(c *config) {
		c.workers = n
	}
}

// WithMaxVertices rejects clouds with more than n distinct points with
// simplex.ErrTooLarge. Zero means no limit (the default). Panics if n < 0.
func WithMaxVertices(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("pipeline: WithMaxVertices(%d): need n ≥ 0", n))
	}

	return func(c *config) {
		c.limits.MaxVertices = n
	}
}

// WithMaxSimplices abandons construction with simplex.ErrTooLarge once the
// complex holds more than n simplices. Zero means no limit (the default).
// Panics if n < 0.
func WithMaxSimplices(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("pipeline: WithMaxSimplices(%d): need n ≥ 0", n))
	}

	return func(c *config) {
		c.limits.MaxSimplices = n
	}
}
