// SPDX-License-Identifier: MIT
// Package: session
//
// session.go — Session: structure + record + injected source and logger.
//
// Failure policy: every method validates before it mutates, so a failed
// call leaves the record as it was. Callers needing atomicity across
// several calls use Record (a snapshot) and Restore.

package session

import (
	"fmt"
	"log/slog"

	"github.com/CaptainDasheng/random-exchange-atoms/exchange"
	"github.com/CaptainDasheng/random-exchange-atoms/format"
	"github.com/CaptainDasheng/random-exchange-atoms/jitter"
	"github.com/CaptainDasheng/random-exchange-atoms/record"
	"github.com/CaptainDasheng/random-exchange-atoms/structure"
	"github.com/CaptainDasheng/random-exchange-atoms/supercell"
)

// Session perturbs one structure over its lifetime.
type Session struct {
	st    *structure.Structure
	rec   *record.Record
	state State
	cfg   sessionConfig
	log   *slog.Logger
}

// New takes ownership of st, enlarges it when WithMinSites asks for more
// sites, and initializes the record.
func New(st *structure.Structure, opts ...Option) (*Session, error) {
	if st == nil {
		return nil, ErrNilStructure
	}
	cfg := newSessionConfig(opts...)
	s := &Session{st: st, state: StateConstructed, cfg: cfg, log: cfg.logger}
	s.log.Debug("session constructed", "sites", st.SiteCount(), "formula", st.Formula())

	if cfg.minSites > 0 {
		if _, err := s.Enlarge(cfg.minSites); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	s.Initialize()
	return s, nil
}

// Open reads path in format f and starts a session on the result.
func Open(path string, f format.Format, opts ...Option) (*Session, error) {
	st, err := format.ReadFile(path, f)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	return New(st, opts...)
}

// Enlarge grows the structure to at least minSites sites. When the
// structure changed the record is stale and the session waits for
// Initialize.
func (s *Session) Enlarge(minSites int) (bool, error) {
	before := s.st.SiteCount()
	modified, err := supercell.Enlarge(s.st, minSites)
	if modified {
		s.rec = nil
		s.state = StateEnlarged
	}
	if err != nil {
		return modified, fmt.Errorf("Enlarge: %w", err)
	}
	if modified {
		s.log.Info("structure enlarged",
			"from_sites", before, "to_sites", s.st.SiteCount(), "lengths", s.st.Lengths())
	}
	return modified, nil
}

// Initialize re-derives the record from the current structure, dropping
// any perturbation applied so far. It returns s for chaining.
func (s *Session) Initialize() *Session {
	s.rec = record.FromStructure(s.st)
	s.state = StateInitialized
	s.log.Debug("record initialized", "sites", len(s.rec.Sites))
	return s
}

// RunExchange performs n random species swaps and sorts the sites.
func (s *Session) RunExchange(n int) error {
	if err := s.requireRecord("RunExchange"); err != nil {
		return err
	}
	if err := exchange.Run(s.rec, n, s.cfg.src); err != nil {
		return fmt.Errorf("RunExchange: %w", err)
	}
	s.state = StateExchanged
	s.log.Debug("species exchanged", "swaps", n, "sites", len(s.rec.Sites))
	return nil
}

// ModifyCellSize jitters the lattice matrix of the record.
func (s *Session) ModifyCellSize(opts ...jitter.Option) error {
	if err := s.requireRecord("ModifyCellSize"); err != nil {
		return err
	}
	if _, err := jitter.ModifyCellSize(s.rec, s.cfg.src, opts...); err != nil {
		return fmt.Errorf("ModifyCellSize: %w", err)
	}
	s.state = StateJittered
	s.log.Debug("cell jittered", "lengths", jitter.AxisLengths(s.rec.Lattice.Matrix))
	return nil
}

// Export reconstructs a typed structure from the record and writes it to
// path in format f. Unsupported formats fail before any file is opened.
// The record itself is only read.
func (s *Session) Export(f format.Format, path string) error {
	if !f.Writable() {
		return fmt.Errorf("Export: %w", &format.UnsupportedFormatError{
			Requested: f.String(), Direction: format.DirectionWrite,
		})
	}
	if err := s.requireRecord("Export"); err != nil {
		return err
	}
	st, err := structure.FromRecord(s.rec)
	if err != nil {
		return fmt.Errorf("Export: %w", err)
	}
	if err := format.WriteFile(path, st, f); err != nil {
		return fmt.Errorf("Export: %w", err)
	}
	s.state = StateExported
	s.log.Info("structure exported", "format", f.String(), "path", path, "formula", st.Formula())
	return nil
}

// ExportBase writes the current typed structure (not the record), e.g. the
// enlarged base cell before perturbation.
func (s *Session) ExportBase(f format.Format, path string) error {
	if err := format.WriteFile(path, s.st, f); err != nil {
		return fmt.Errorf("ExportBase: %w", err)
	}
	s.log.Info("base structure exported", "format", f.String(), "path", path)
	return nil
}

// Record returns a snapshot of the current record, or nil when the
// record is stale.
func (s *Session) Record() *record.Record {
	if !s.state.hasRecord() {
		return nil
	}
	return s.rec.Clone()
}

// Restore replaces the current record with a copy of snap, e.g. to undo a
// failed multi-step cycle. A session waiting for Initialize after
// enlargement refuses with ErrNotInitialized, and a snapshot whose site
// count differs from the structure's is refused with ErrStaleSnapshot.
func (s *Session) Restore(snap *record.Record) error {
	if s.state == StateEnlarged {
		return fmt.Errorf("Restore: state %s: %w", s.state, ErrNotInitialized)
	}
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("Restore: %w", err)
	}
	if len(snap.Sites) != s.st.SiteCount() {
		return fmt.Errorf("Restore: snapshot has %d sites, structure has %d: %w",
			len(snap.Sites), s.st.SiteCount(), ErrStaleSnapshot)
	}
	s.rec = snap.Clone()
	s.state = StateInitialized
	return nil
}

// Structure returns the typed structure the session owns.
func (s *Session) Structure() *structure.Structure {
	return s.st
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

func (s *Session) requireRecord(method string) error {
	if s.rec == nil || !s.state.hasRecord() {
		return fmt.Errorf("%s: state %s: %w", method, s.state, ErrNotInitialized)
	}
	return nil
}
