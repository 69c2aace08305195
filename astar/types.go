// SPDX-License-Identifier: MIT
// Package: puzzle/astar
//
// types.go — sentinel errors, functional options and the Solution result.
//
// Contract (strict):
//   - Sentinels classify outcomes: ErrUnsolvable is an answer about the
//     input, not a failure of the engine.
//   - Invalid option values are recorded during option application and
//     surfaced from Solve as ErrOptionViolation.
//   - Hook and context defaults are never nil; the engine calls them
//     unconditionally.

package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcinwilkdev/puzzle/board"
)

// Sentinel errors of the search engine.
var (
	// ErrNilHeuristic is returned when Solve receives no estimator.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrUnsolvable classifies a start configuration whose parity puts
	// the goal in the unreachable half of the state space. No search is
	// attempted and the heuristic is never consulted.
	ErrUnsolvable = errors.New("astar: configuration cannot reach the goal")

	// ErrVisitedLimit is returned when the finalized-state budget set by
	// WithMaxVisited runs out before the goal is found.
	ErrVisitedLimit = errors.New("astar: visited-state budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Solution is an optimal answer: the blank's moves from the start to the
// goal, and how many configurations the search finalized on the way.
type Solution struct {
	// Steps is the move sequence; replaying it on the start configuration
	// reaches the goal in the minimum possible number of moves. Empty
	// (never nil) when the start already is the goal.
	Steps []board.Direction

	// Visited counts finalized configurations, the dominant cost driver.
	// A goal start still counts itself: Visited is at least 1.
	Visited int
}

// Options configures a single Solve run.
type Options struct {
	// Ctx allows cancellation and deadlines; polled once per finalized
	// configuration.
	Ctx context.Context

	// OnVisit fires for every finalized configuration with its depth
	// (the exact move count from the start). Returning an error aborts
	// the search and propagates the error, wrapped.
	OnVisit func(b board.Board, depth int) error

	// MaxVisited, if > 0, caps the number of finalized configurations.
	// Reaching the cap without finding the goal yields ErrVisitedLimit.
	// 0 disables the cap.
	MaxVisited int

	// internal error recorded during option parsing
	err error
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// DefaultOptions returns the standard configuration: background context,
// no-op visit hook, no visited cap.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(board.Board, int) error { return nil },
		MaxVisited: 0,
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback observing every finalized
// configuration; returning an error from it stops the search.
func WithOnVisit(fn func(b board.Board, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxVisited bounds the search effort.
//
//	n > 0:  finalize at most n configurations
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxVisited(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxVisited cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxVisited = 0
		default:
			o.MaxVisited = n
		}
	}
}
