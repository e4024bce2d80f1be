// SPDX-License-Identifier: MIT
// Package: jitter
//
// options.go — functional options for ModifyCellSize.
//
// Option constructors panic on meaningless values (NaN bounds, min > max);
// ModifyCellSize itself never panics.

package jitter

import "math"

// Defaults match the historical call signature
// modifyCellSize(probability=10, changeMin=-1, changeMax=1).
const (
	DefaultProbability = 10.0
	DefaultChangeMin   = -1.0
	DefaultChangeMax   = 1.0
)

// Option customizes a jitter call.
type Option func(*config)

type config struct {
	probability float64 // percent, compared against u ∈ [1, 100)
	changeMin   float64 // percent of axis length
	changeMax   float64 // percent of axis length
}

func newConfig(opts ...Option) config {
	cfg := config{
		probability: DefaultProbability,
		changeMin:   DefaultChangeMin,
		changeMax:   DefaultChangeMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithProbability sets the per-component perturbation probability in
// percent. Panics on NaN.
func WithProbability(percent float64) Option {
	if math.IsNaN(percent) {
		panic("jitter: WithProbability(NaN)")
	}
	return func(c *config) {
		c.probability = percent
	}
}

// WithChangeRange sets the bounds of a perturbation as percentages of the
// axis length. Panics on NaN/Inf or minPercent > maxPercent.
func WithChangeRange(minPercent, maxPercent float64) Option {
	if math.IsNaN(minPercent) || math.IsNaN(maxPercent) ||
		math.IsInf(minPercent, 0) || math.IsInf(maxPercent, 0) {
		panic("jitter: WithChangeRange(non-finite)")
	}
	if minPercent > maxPercent {
		panic("jitter: WithChangeRange(min > max)")
	}
	return func(c *config) {
		c.changeMin, c.changeMax = minPercent, maxPercent
	}
}
