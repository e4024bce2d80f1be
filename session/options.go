// SPDX-License-Identifier: MIT
// Package: session
//
// options.go — functional options for New/Open.
//
// Contract:
//   • Options mutate a private sessionConfig; later options win.
//   • Constructors panic on nil arguments (programmer error); methods never panic.
//   • Without WithSeed/WithRand/WithSource the source is seeded from the clock.

package session

import (
	"log/slog"
	"math/rand"
)

// Source is the randomness a session needs: index draws for the
// exchanger and uniform floats for the jitter. *rand.Rand implements it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Option customizes a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	src      Source
	logger   *slog.Logger
	minSites int // 0 disables enlargement at construction
}

func newSessionConfig(opts ...Option) sessionConfig {
	cfg := sessionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.New(rand.NewSource(rand.Int63()))
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithSeed uses a math/rand source seeded with seed (reproducible runs).
func WithSeed(seed int64) Option {
	return func(c *sessionConfig) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("session: WithRand(nil)")
	}
	return func(c *sessionConfig) {
		c.src = r
	}
}

// WithSource uses any Source, typically a scripted one in tests.
// Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("session: WithSource(nil)")
	}
	return func(c *sessionConfig) {
		c.src = src
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(c *sessionConfig) {
		c.logger = l
	}
}

// WithMinSites enlarges the structure at construction until it has at
// least n sites. n <= 0 disables enlargement.
func WithMinSites(n int) Option {
	return func(c *sessionConfig) {
		c.minSites = n
	}
}
