// SPDX-License-Identifier: MIT
// Package: record
//
// yaml.go — YAML encoding of records. Invalidated fields are written as
// explicit nulls so a reader can see what was cleared.

package record

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes r to w as a YAML document.
func Encode(w io.Writer, r *Record) error {
	if r == nil {
		return ErrNilRecord
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML record from rd and validates it.
func Decode(rd io.Reader) (*Record, error) {
	var r Record
	if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("Decode: %v: %w", err, ErrMalformedRecord)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
