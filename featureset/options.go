// SPDX-License-Identifier: MIT
// Package: nhdbn/featureset
//
// options.go — functional options for stochastic operations.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     operations themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through config.

package featureset

import (
	"golang.org/x/exp/rand" // gonum-compatible seedable RNG
)

// Option customizes a stochastic operation by mutating a config instance
// before any draw happens.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates the knobs consumed by GenerateInitial and the moves.
// Passed by value; immutable once resolved.
type config struct {
	// RNG for uniform draws; nil means "no source supplied" and stochastic
	// operations fail with ErrNeedRandSource.
	rng *rand.Rand

	// narrowExchange restores the historical exchange pool that excludes
	// only the removed id (see WithNarrowExchange).
	narrowExchange bool
}

// newConfig applies options in order (last-wins) over strict defaults:
// no RNG, true-swap exchange semantics.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit caller-owned RNG. Each sampler chain must
// own exactly one generator; sharing one across chains correlates them and
// races on its state. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("featureset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a fresh generator from the given seed (deterministic).
// Convenient in tests and examples; inside a sampler loop prefer WithRand
// with a generator created once per chain.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNarrowExchange makes Exchange draw its replacement from all ids in
// [1..numFeatures] except the removed one — the historical pool, which may
// still contain the set's remaining members, so a colliding draw shrinks
// the canonical set by one. The default pool excludes the whole
// pre-removal set, so the result always keeps |Π| members.
//
// Pick the mode your sampler's detailed-balance arithmetic assumes and
// keep it fixed for the whole run.
func WithNarrowExchange() Option {
	return func(c *config) {
		c.narrowExchange = true
	}
}
