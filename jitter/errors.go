// SPDX-License-Identifier: MIT
// Package: jitter
//
// errors.go — sentinel errors for lattice jitter. Malformed matrices
// surface as record.ErrMalformedRecord.

package jitter

import "errors"

// ErrNeedRandSource indicates a nil Float64Source.
var ErrNeedRandSource = errors.New("jitter: random source is required")
