// SPDX-License-Identifier: MIT
// Package: puzzle/heuristic
//
// manhattan.go — the Manhattan-sum lower bound.
//
// Contract (strict):
//   - The value→goal-cell table is computed once at construction.
//   - Estimate touches every cell exactly once and never allocates.
//   - The blank contributes nothing: each move relocates exactly one
//     tile by one cell, so the tile sum alone is admissible.

package heuristic

import (
	"github.com/marcinwilkdev/puzzle/board"
)

// maxTiles caps the goal table at the 4×4 tile count.
const maxTiles = 15

// Manhattan is the Manhattan-sum heuristic for one board side.
// The zero value is invalid; construct with NewManhattan.
type Manhattan struct {
	side uint8
	// goal[v-1] is the home cell of tile v: row (v-1)/N, column (v-1)%N.
	goal [maxTiles]board.Coord
}

// NewManhattan precomputes the goal table for the given side.
// Returns ErrBadSide outside 2..4.
// Complexity: O(N²) once; Estimate is allocation-free afterwards.
func NewManhattan(side int) (*Manhattan, error) {
	if side < 2 || side > 4 {
		return nil, ErrBadSide
	}

	m := &Manhattan{side: uint8(side)}
	for v := 0; v < side*side-1; v++ {
		m.goal[v] = board.Coord{Row: uint8(v / side), Col: uint8(v % side)}
	}

	return m, nil
}

// Estimate sums each tile's Manhattan distance to its home cell.
// Panics when b was built for a different side.
// Complexity: O(N²), no allocation.
func (m *Manhattan) Estimate(b board.Board) int {
	if b.Side() != int(m.side) {
		panic("heuristic: board side mismatch")
	}

	sum := 0
	for r := uint8(0); r < m.side; r++ {
		for c := uint8(0); c < m.side; c++ {
			here := board.Coord{Row: r, Col: c}
			if v := b.Tile(here); v != 0 {
				sum += here.ManhattanDistance(m.goal[v-1])
			}
		}
	}

	return sum
}
