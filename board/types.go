// SPDX-License-Identifier: MIT
// Package: puzzle/board
//
// types.go — directions, coordinates, moves and sentinel errors for
// sliding-tile board states.
//
// Contract (strict):
//   - Coord and Direction are plain value types; comparison is ==.
//   - Direction describes the motion of the BLANK, never of a tile.
//   - Opposite is involutive: d.Opposite().Opposite() == d.
//   - Sentinel errors are the only failure vocabulary of this package;
//     callers branch with errors.Is.

package board

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by board constructors and operations.
var (
	// ErrBadSide indicates a board side outside the supported 2..4 range.
	// The packed encoding spends 4 bits per cell, so a 64-bit word holds
	// at most 16 cells.
	ErrBadSide = errors.New("board: side must be between 2 and 4")

	// ErrNotSquare indicates that the cell assignment rows do not form an
	// N×N grid.
	ErrNotSquare = errors.New("board: assignment is not square")

	// ErrTwoBlanks indicates that more than one cell was marked blank.
	ErrTwoBlanks = errors.New("board: more than one blank cell")

	// ErrNotPermutation indicates that the non-blank values do not form a
	// permutation of 1..N²-1.
	ErrNotPermutation = errors.New("board: values are not a permutation")

	// ErrCoordOutOfBounds indicates a coordinate outside [0, side).
	ErrCoordOutOfBounds = errors.New("board: coordinate out of bounds")

	// ErrIllegalMove indicates a blank move that would leave the board.
	ErrIllegalMove = errors.New("board: illegal blank move")

	// ErrNoBrackets indicates textual input without a [...] envelope.
	ErrNoBrackets = errors.New("board: missing brackets in textual form")

	// ErrElementCount indicates a textual element count that is not a
	// supported square (4, 9 or 16 cells).
	ErrElementCount = errors.New("board: element count is not a supported square")

	// ErrBadNumber indicates a textual cell entry that is neither empty
	// (the blank) nor a decimal number.
	ErrBadNumber = errors.New("board: unparsable cell value")
)

// Direction is the direction the blank travels during a move.
type Direction uint8

// The four blank directions, in the canonical successor order.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the inverse direction. Applying a move and then its
// opposite restores the original configuration; path reconstruction
// relies on this involution.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta reports the row and column displacement of the blank for d.
// Complexity: O(1).
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Coord is a 2-D cell position on an N×N board, row-major, zero-based.
// The zero value is the top-left cell.
type Coord struct {
	Row, Col uint8
}

// NewCoord validates row and col against side and returns the coordinate.
// Returns ErrCoordOutOfBounds outside [0, side).
// Complexity: O(1).
func NewCoord(row, col, side int) (Coord, error) {
	if row < 0 || col < 0 || row >= side || col >= side {
		return Coord{}, fmt.Errorf("%w: (%d,%d) on side %d", ErrCoordOutOfBounds, row, col, side)
	}

	return Coord{Row: uint8(row), Col: uint8(col)}, nil
}

// ManhattanDistance returns |Δrow| + |Δcol| between c and o.
// Complexity: O(1).
func (c Coord) ManhattanDistance(o Coord) int {
	return absDiff(c.Row, o.Row) + absDiff(c.Col, o.Col)
}

// atTopEdge reports whether no cell exists above c.
func (c Coord) atTopEdge() bool { return c.Row == 0 }

// atBottomEdge reports whether no cell exists below c on a board of the
// given side.
func (c Coord) atBottomEdge(side uint8) bool { return c.Row == side-1 }

// atLeftEdge reports whether no cell exists left of c.
func (c Coord) atLeftEdge() bool { return c.Col == 0 }

// atRightEdge reports whether no cell exists right of c on a board of the
// given side.
func (c Coord) atRightEdge(side uint8) bool { return c.Col == side-1 }

// blankHome is the goal cell of the blank: bottom-right.
func blankHome(side uint8) Coord {
	return Coord{Row: side - 1, Col: side - 1}
}

// absDiff returns |a-b| for unsigned cell indices.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}

	return int(b - a)
}

// Move pairs a blank direction with the configuration it produces.
type Move struct {
	Dir   Direction
	Board Board
}
