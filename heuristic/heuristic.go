// SPDX-License-Identifier: MIT
// Package: puzzle/heuristic
//
// heuristic.go — the estimate capability.

package heuristic

import (
	"errors"

	"github.com/marcinwilkdev/puzzle/board"
)

// ErrBadSide indicates a heuristic side outside the supported 2..4 range.
var ErrBadSide = errors.New("heuristic: side must be between 2 and 4")

// Heuristic estimates the remaining move count from a configuration.
//
// Contract:
//   - Estimate returns a non-negative lower bound on the true distance
//     to the goal (admissibility), and exactly 0 at the goal.
//   - Implementations are read-only after construction and safe for
//     concurrent use.
//   - Estimating a board of a different side than the heuristic was
//     built for is a programmer error; implementations panic.
type Heuristic interface {
	Estimate(b board.Board) int
}
