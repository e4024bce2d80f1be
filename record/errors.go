// SPDX-License-Identifier: MIT
// Package: record
//
// errors.go — sentinel errors for flat structure records.

package record

import "errors"

// ErrMalformedRecord indicates a record whose lattice matrix is not 3×3,
// whose sites list is empty, or whose sites carry unusable fields.
// Fatal to the call; the caller must fix how the record was built.
var ErrMalformedRecord = errors.New("record: malformed record")

// ErrNilRecord indicates a nil *Record was passed where one is required.
var ErrNilRecord = errors.New("record: nil record")
