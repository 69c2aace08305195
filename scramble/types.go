// SPDX-License-Identifier: MIT
// Package: puzzle/scramble
//
// types.go — functional options and sentinel errors for the generator.
//
// Contract (strict):
//   - Option constructors validate and panic on meaningless inputs;
//     FromGoal itself never panics.
//   - Determinism is explicit: seeding goes through WithSeed or
//     WithRand, an unseeded run draws from the wall clock.

package scramble

import (
	"errors"
	"math/rand"
)

// ErrBadSteps is returned when a negative walk length is requested.
var ErrBadSteps = errors.New("scramble: steps must be non-negative")

// Options configures a single FromGoal run.
type Options struct {
	// Rng drives the walk; nil means a wall-clock seeded source.
	Rng *rand.Rand
}

// Option configures FromGoal via functional arguments.
type Option func(*Options)

// DefaultOptions returns the standard configuration: no RNG attached, so
// the walk seeds itself from the wall clock.
func DefaultOptions() Options {
	return Options{Rng: nil}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for the walk.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("scramble: WithRand(nil)")
	}

	return func(o *Options) {
		o.Rng = r
	}
}
