// SPDX-License-Identifier: MIT
// Package: format
//
// errors.go — the unsupported-format error variant.

package format

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat matches every *UnsupportedFormatError.
var ErrUnsupportedFormat = errors.New("format: unsupported format")

// Direction names which side of the boundary rejected a format.
type Direction string

const (
	DirectionParse Direction = "parse"
	DirectionRead  Direction = "read"
	DirectionWrite Direction = "write"
)

// UnsupportedFormatError is the tagged error for a format tag the
// collaborators do not implement.
type UnsupportedFormatError struct {
	Requested string
	Direction Direction
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("format: unsupported format %q (%s)", e.Requested, e.Direction)
}

// Is makes errors.Is(err, ErrUnsupportedFormat) hold.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

func unsupported(requested string, dir Direction) error {
	return &UnsupportedFormatError{Requested: requested, Direction: dir}
}
