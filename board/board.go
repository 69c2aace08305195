// SPDX-License-Identifier: MIT
// Package: puzzle/board
//
// board.go — the packed board state: construction, validation, accessors
// and move generation.
//
// Encoding (strict):
//   - One uint64 holds the whole board, 4 bits per cell, row-major.
//   - A cell holding tile v stores v-1; the blank stores blankNibble (0b1111).
//   - Equality, hashing and copying are therefore O(1); Board is a plain
//     comparable value and is held by value everywhere (map keys, heaps).

package board

import "fmt"

// Cell field width and the reserved blank marker.
const (
	nibbleBits  = 4      // bits per cell in the packed word
	nibbleMask  = 0xF    // mask of one cell field
	blankNibble = 0b1111 // reserved marker for the blank cell
)

// minSide and maxSide bound the supported board sides. The 4-bit field
// caps the cell count at 16 (maxSide² cells must fit a 64-bit word).
const (
	minSide = 2
	maxSide = 4
)

// goalFor packs the solved configuration for the given side: cell i holds
// tile i+1, the last cell holds the blank.
func goalFor(side uint8) uint64 {
	n := uint(side) * uint(side)
	var cells uint64
	for i := uint(0); i < n-1; i++ {
		cells |= uint64(i) << (nibbleBits * i)
	}
	cells |= blankNibble << (nibbleBits * (n - 1))

	return cells
}

// goalCells caches the solved encoding per side, indexed by side.
var goalCells = [maxSide + 1]uint64{
	minSide:     goalFor(2),
	minSide + 1: goalFor(3),
	maxSide:     goalFor(4),
}

// Board is one immutable configuration of a sliding-tile puzzle: a
// bijection from the N×N cells to {1..N²-1} ∪ {blank}. The zero value is
// invalid; obtain Boards from New, Goal, Parse or a Move.
//
// Board is comparable: == compares full configurations in O(1), and
// Boards are valid map keys.
type Board struct {
	side  uint8
	cells uint64
}

// New validates the cell assignment and packs it into a Board. A zero
// value in rows denotes the blank.
//
// Validation order:
//  1. len(rows) must be in 2..4 (ErrBadSide).
//  2. every row must have len(rows) cells (ErrNotSquare).
//  3. exactly one blank (ErrTwoBlanks when more).
//  4. the remaining values must be a permutation of 1..N²-1
//     (ErrNotPermutation).
//
// Complexity: O(N²) time, O(N²) space for the validation table.
func New(rows [][]uint8) (Board, error) {
	// 1) Side range comes first: it bounds every later index.
	side := len(rows)
	if side < minSide || side > maxSide {
		return Board{}, ErrBadSide
	}

	// 2) Squareness before any value checks.
	for _, row := range rows {
		if len(row) != side {
			return Board{}, ErrNotSquare
		}
	}

	// 3) Count blanks and value occurrences in one scan.
	n := side * side
	seen := make([]int, n) // seen[v-1] counts tile v; out-of-range rejected below
	blanks := 0
	for _, row := range rows {
		for _, v := range row {
			switch {
			case v == 0:
				blanks++
			case int(v) >= 1 && int(v) <= n-1:
				seen[v-1]++
			default:
				return Board{}, ErrNotPermutation
			}
		}
	}
	if blanks > 1 {
		return Board{}, ErrTwoBlanks
	}

	// 4) Exactly-one-blank plus every tile exactly once.
	if blanks != 1 {
		return Board{}, ErrNotPermutation
	}
	for v := 0; v < n-1; v++ {
		if seen[v] != 1 {
			return Board{}, ErrNotPermutation
		}
	}

	// 5) Pack: tile v stores v-1, the blank stores blankNibble.
	var cells uint64
	idx := uint(0)
	for _, row := range rows {
		for _, v := range row {
			if v == 0 {
				cells |= blankNibble << (nibbleBits * idx)
			} else {
				cells |= uint64(v-1) << (nibbleBits * idx)
			}
			idx++
		}
	}

	return Board{side: uint8(side), cells: cells}, nil
}

// Goal returns the solved configuration for the given side.
// Returns ErrBadSide outside 2..4.
// Complexity: O(1).
func Goal(side int) (Board, error) {
	if side < minSide || side > maxSide {
		return Board{}, ErrBadSide
	}

	return Board{side: uint8(side), cells: goalCells[side]}, nil
}

// Side returns the board side N.
func (b Board) Side() int { return int(b.side) }

// nibble returns the raw 4-bit field of cell index i (row-major).
func (b Board) nibble(i uint) uint8 {
	return uint8(b.cells>>(nibbleBits*i)) & nibbleMask
}

// Tile returns the tile value at c, or 0 for the blank.
// Panics when c lies outside the board; coordinates from NewCoord or
// from this package's own accessors are always in range.
// Complexity: O(1).
func (b Board) Tile(c Coord) uint8 {
	if c.Row >= b.side || c.Col >= b.side {
		panic("board: Tile coordinate out of range")
	}
	v := b.nibble(uint(c.Row)*uint(b.side) + uint(c.Col))
	if v == blankNibble {
		return 0
	}

	return v + 1
}

// Cells unpacks the configuration into rows of values, 0 for the blank.
// The result is a fresh allocation; mutating it does not affect b.
// Complexity: O(N²).
func (b Board) Cells() [][]uint8 {
	side := int(b.side)
	rows := make([][]uint8, side)
	for r := 0; r < side; r++ {
		rows[r] = make([]uint8, side)
		for c := 0; c < side; c++ {
			rows[r][c] = b.Tile(Coord{Row: uint8(r), Col: uint8(c)})
		}
	}

	return rows
}

// BlankCoord returns the coordinate of the blank cell.
// Complexity: O(N²) scan of the packed word.
func (b Board) BlankCoord() Coord {
	n := uint(b.side) * uint(b.side)
	for i := uint(0); i < n; i++ {
		if b.nibble(i) == blankNibble {
			return Coord{Row: uint8(i / uint(b.side)), Col: uint8(i % uint(b.side))}
		}
	}
	panic("board: no blank cell in packed state")
}

// IsGoal reports whether every tile is in ascending row-major order with
// the blank in the final cell.
// Complexity: O(1) comparison against the precomputed solved encoding.
func (b Board) IsGoal() bool {
	return b.cells == goalCells[b.side]
}

// Moves returns the legal successor moves in Up, Down, Left, Right order,
// omitting directions that would carry the blank off the board. Each Move
// holds the configuration with the blank and the neighbour tile swapped.
// Complexity: O(N²) to locate the blank, O(1) per move.
func (b Board) Moves() []Move {
	blank := b.BlankCoord()
	moves := make([]Move, 0, 4)
	if !blank.atTopEdge() {
		moves = append(moves, Move{Dir: Up, Board: b.moveBlank(blank, Up)})
	}
	if !blank.atBottomEdge(b.side) {
		moves = append(moves, Move{Dir: Down, Board: b.moveBlank(blank, Down)})
	}
	if !blank.atLeftEdge() {
		moves = append(moves, Move{Dir: Left, Board: b.moveBlank(blank, Left)})
	}
	if !blank.atRightEdge(b.side) {
		moves = append(moves, Move{Dir: Right, Board: b.moveBlank(blank, Right)})
	}

	return moves
}

// MoveBlank applies a single blank move in direction d.
// Returns ErrIllegalMove when the move would leave the board; b itself is
// never mutated.
// Complexity: O(N²) to locate the blank, O(1) for the swap.
func (b Board) MoveBlank(d Direction) (Board, error) {
	blank := b.BlankCoord()
	legal := true
	switch d {
	case Up:
		legal = !blank.atTopEdge()
	case Down:
		legal = !blank.atBottomEdge(b.side)
	case Left:
		legal = !blank.atLeftEdge()
	case Right:
		legal = !blank.atRightEdge(b.side)
	}
	if !legal {
		return Board{}, fmt.Errorf("%w: %s from (%d,%d)", ErrIllegalMove, d, blank.Row, blank.Col)
	}

	return b.moveBlank(blank, d), nil
}

// moveBlank swaps the blank at the given coordinate with the neighbour
// cell in direction d. The caller guarantees the move stays on the board.
func (b Board) moveBlank(blank Coord, d Direction) Board {
	dRow, dCol := d.Delta()
	target := Coord{Row: uint8(int(blank.Row) + dRow), Col: uint8(int(blank.Col) + dCol)}

	bi := uint(blank.Row)*uint(b.side) + uint(blank.Col)
	ti := uint(target.Row)*uint(b.side) + uint(target.Col)
	v := uint64(b.nibble(ti))

	cells := b.cells
	cells &^= uint64(nibbleMask) << (nibbleBits * bi)
	cells |= v << (nibbleBits * bi)
	cells &^= uint64(nibbleMask) << (nibbleBits * ti)
	cells |= uint64(blankNibble) << (nibbleBits * ti)

	return Board{side: b.side, cells: cells}
}
