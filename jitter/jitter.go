// SPDX-License-Identifier: MIT
// Package: jitter
//
// jitter.go — ModifyCellSize.
//
// Determinism: for a fixed source the draw order is fixed: row-major over
// (i, j); one trial draw per component, plus one magnitude draw when the
// trial hits.

package jitter

import (
	"fmt"
	"math"

	"github.com/CaptainDasheng/random-exchange-atoms/record"
)

const methodModifyCellSize = "ModifyCellSize"

// Bounds of the trial draw, in percent.
const (
	trialLow  = 1.0
	trialHigh = 100.0
)

// Float64Source draws uniform floats in [0, 1). *rand.Rand implements it.
type Float64Source interface {
	Float64() float64
}

// ModifyCellSize perturbs rec's lattice matrix in place and returns rec.
// On error the matrix is left untouched.
func ModifyCellSize(rec *record.Record, src Float64Source, opts ...Option) (*record.Record, error) {
	if err := rec.ValidateMatrix(); err != nil {
		return rec, fmt.Errorf("%s: %w", methodModifyCellSize, err)
	}
	if src == nil {
		return rec, fmt.Errorf("%s: %w", methodModifyCellSize, ErrNeedRandSource)
	}
	cfg := newConfig(opts...)

	m := rec.Lattice.Matrix
	lengths := AxisLengths(m)

	lo, hi := cfg.changeMin/100.0, cfg.changeMax/100.0
	for i := range m {
		for j := range m[i] {
			if uniform(src, trialLow, trialHigh) < cfg.probability {
				m[i][j] += lengths[i] * uniform(src, lo, hi)
			}
		}
	}
	return rec, nil
}

// AxisLengths returns the Euclidean length of each matrix row.
func AxisLengths(m [][]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3 && i < len(m); i++ {
		var sum float64
		for _, v := range m[i] {
			sum += v * v
		}
		out[i] = math.Sqrt(sum)
	}
	return out
}

// uniform returns a value in [lo, hi).
func uniform(src Float64Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
