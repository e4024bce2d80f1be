// SPDX-License-Identifier: MIT
// Package: exchange
//
// errors.go — sentinel errors for the atom exchanger.
//
// Priority: nil record → rng → swap count → site count → index range.

package exchange

import "errors"

var (
	// ErrNoSites indicates Run was invoked on a record with zero sites:
	// no index can be drawn. Precondition violation, not retryable.
	ErrNoSites = errors.New("exchange: no sites to draw from")

	// ErrOutOfRange indicates a swap index outside [0, n-1].
	ErrOutOfRange = errors.New("exchange: site index out of range")

	// ErrNegativeSwaps indicates a negative swap count.
	ErrNegativeSwaps = errors.New("exchange: swap count must be >= 0")

	// ErrNeedRandSource indicates a nil IndexSource.
	ErrNeedRandSource = errors.New("exchange: index source is required")
)
