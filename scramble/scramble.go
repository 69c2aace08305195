// SPDX-License-Identifier: MIT
// Package: puzzle/scramble
//
// scramble.go — the backward random walk.

package scramble

import (
	"math/rand"
	"time"

	"github.com/marcinwilkdev/puzzle/board"
)

// FromGoal walks the blank `steps` random moves out of the solved board
// and returns the resulting configuration. Every move is legal and the
// walk never immediately undoes the previous move, so the result is
// always solvable and its optimal solution is at most `steps` long
// (shorter when the walk self-intersects).
//
// Returns ErrBadSteps for negative steps; side validation surfaces from
// board.Goal. steps == 0 yields the solved board itself.
//
// Complexity: O(steps · N²) time, O(1) space beyond the walk itself.
func FromGoal(side, steps int, opts ...Option) (board.Board, error) {
	// 1) Validate inputs before touching the RNG.
	if steps < 0 {
		return board.Board{}, ErrBadSteps
	}
	b, err := board.Goal(side)
	if err != nil {
		return board.Board{}, err
	}

	// 2) Build options; an unseeded run draws from the wall clock.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 3) Walk. Excluding the inverse of the previous move keeps at least
	//    one candidate everywhere: even a corner offers two moves.
	var prev board.Direction
	for i := 0; i < steps; i++ {
		moves := b.Moves()
		candidates := moves[:0]
		for _, mv := range moves {
			if i > 0 && mv.Dir == prev.Opposite() {
				continue
			}
			candidates = append(candidates, mv)
		}
		pick := candidates[rng.Intn(len(candidates))]
		b, prev = pick.Board, pick.Dir
	}

	return b, nil
}
