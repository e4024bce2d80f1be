// SPDX-License-Identifier: MIT
// Package: session
//
// errors.go — sentinel errors for perturbation sessions. Errors from the
// engine packages are wrapped with the session method name and keep their
// own sentinels (exchange.ErrNoSites, record.ErrMalformedRecord,
// format.ErrUnsupportedFormat).

package session

import "errors"

var (
	// ErrNotInitialized indicates a record operation while the record is
	// missing or stale (after enlargement).
	ErrNotInitialized = errors.New("session: record not initialized")

	// ErrStaleSnapshot indicates Restore was given a record that does not
	// describe the current structure, e.g. one taken before enlargement.
	ErrStaleSnapshot = errors.New("session: snapshot does not match structure")

	// ErrNilStructure indicates New was given a nil structure.
	ErrNilStructure = errors.New("session: nil structure")
)
