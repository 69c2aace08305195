// Package board_test contains unit tests for board construction,
// the packed encoding, move generation and the solvability test.
package board_test

import (
	"testing"

	"github.com/marcinwilkdev/puzzle/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds a Board from rows and fails the test on error.
func mustNew(t *testing.T, rows [][]uint8) board.Board {
	t.Helper()
	b, err := board.New(rows)
	require.NoError(t, err, "fixture board must construct")

	return b
}

// goal4Rows is the solved 4×4 assignment, blank last.
func goal4Rows() [][]uint8 {
	return [][]uint8{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 0},
	}
}

// ------------------------------------------------------------------------
// 1. Validation Tests: construction rejects malformed assignments.
// ------------------------------------------------------------------------

func TestNew_BadSide(t *testing.T) {
	_, err := board.New([][]uint8{{0}})
	assert.ErrorIs(t, err, board.ErrBadSide, "1×1 board must be rejected")

	_, err = board.New([][]uint8{
		{1, 2, 3, 4, 5},
		{6, 7, 8, 9, 10},
		{11, 12, 13, 14, 15},
		{16, 17, 18, 19, 20},
		{21, 22, 23, 24, 0},
	})
	assert.ErrorIs(t, err, board.ErrBadSide, "5×5 exceeds the 4-bit cell budget")
}

func TestNew_NotSquare(t *testing.T) {
	_, err := board.New([][]uint8{
		{1, 2},
		{3, 0, 4},
	})
	assert.ErrorIs(t, err, board.ErrNotSquare)
}

func TestNew_TwoBlanks(t *testing.T) {
	_, err := board.New([][]uint8{
		{1, 0},
		{3, 0},
	})
	assert.ErrorIs(t, err, board.ErrTwoBlanks)
}

func TestNew_NotPermutation(t *testing.T) {
	// Duplicate tile value.
	_, err := board.New([][]uint8{
		{1, 1},
		{3, 0},
	})
	assert.ErrorIs(t, err, board.ErrNotPermutation, "duplicate tile")

	// Value outside 1..N²-1.
	_, err = board.New([][]uint8{
		{1, 9},
		{3, 0},
	})
	assert.ErrorIs(t, err, board.ErrNotPermutation, "tile value out of range")

	// No blank at all.
	_, err = board.New([][]uint8{
		{1, 2},
		{3, 3},
	})
	assert.ErrorIs(t, err, board.ErrNotPermutation, "missing blank")
}

func TestNewCoord_Bounds(t *testing.T) {
	c, err := board.NewCoord(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), c.Row)
	assert.Equal(t, uint8(3), c.Col)

	_, err = board.NewCoord(4, 0, 4)
	assert.ErrorIs(t, err, board.ErrCoordOutOfBounds)
	_, err = board.NewCoord(0, -1, 4)
	assert.ErrorIs(t, err, board.ErrCoordOutOfBounds)
}

// ------------------------------------------------------------------------
// 2. Encoding Tests: the packed word and its accessors.
// ------------------------------------------------------------------------

func TestNew_PacksRowMajorNibbles(t *testing.T) {
	// Cell i stores value-1; the blank stores 0b1111. For the solved 2×2
	// board the packed word is 1111_0010_0001_0000.
	b := mustNew(t, [][]uint8{
		{1, 2},
		{3, 0},
	})
	assert.Equal(t, uint64(0b1111_0010_0001_0000), board.PackedCells(b))
}

func TestBoard_TileAndCells(t *testing.T) {
	rows := [][]uint8{
		{1, 4, 2},
		{3, 0, 5},
		{6, 7, 8},
	}
	b := mustNew(t, rows)

	assert.Equal(t, 3, b.Side())
	assert.Equal(t, rows, b.Cells(), "decode must reproduce the assignment")
	assert.Equal(t, uint8(4), b.Tile(board.Coord{Row: 0, Col: 1}))
	assert.Equal(t, uint8(0), b.Tile(board.Coord{Row: 1, Col: 1}), "blank reads as 0")
	assert.Equal(t, board.Coord{Row: 1, Col: 1}, b.BlankCoord())
}

func TestCoord_ManhattanDistance(t *testing.T) {
	a := board.Coord{Row: 0, Col: 3}
	b := board.Coord{Row: 2, Col: 1}
	assert.Equal(t, 4, a.ManhattanDistance(b))
	assert.Equal(t, 4, b.ManhattanDistance(a), "distance is symmetric")
	assert.Equal(t, 0, a.ManhattanDistance(a))
}

func TestDirection_Opposite(t *testing.T) {
	for _, d := range []board.Direction{board.Up, board.Down, board.Left, board.Right} {
		assert.Equal(t, d, d.Opposite().Opposite(), "Opposite must be involutive")
	}
	assert.Equal(t, board.Down, board.Up.Opposite())
	assert.Equal(t, board.Right, board.Left.Opposite())
}

// ------------------------------------------------------------------------
// 3. Goal & Solvability Tests.
// ------------------------------------------------------------------------

func TestGoal_IsGoal(t *testing.T) {
	for side := 2; side <= 4; side++ {
		g, err := board.Goal(side)
		require.NoError(t, err)
		assert.True(t, g.IsGoal(), "Goal(%d) must satisfy IsGoal", side)
		assert.True(t, g.IsSolvable(), "the goal is trivially solvable")
	}

	_, err := board.Goal(5)
	assert.ErrorIs(t, err, board.ErrBadSide)
}

func TestGoal_MatchesNew(t *testing.T) {
	g, err := board.Goal(4)
	require.NoError(t, err)
	assert.Equal(t, mustNew(t, goal4Rows()), g)
}

func TestIsSolvable_AdjacentSwapIsNot(t *testing.T) {
	// Swapping one adjacent tile pair flips permutation parity while the
	// blank stays home: unreachable.
	b := mustNew(t, [][]uint8{
		{1, 2, 4, 3},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 0},
	})
	assert.False(t, b.IsSolvable())
	assert.False(t, b.IsGoal())
}

func TestIsSolvable_SingleMoveStates(t *testing.T) {
	g, err := board.Goal(4)
	require.NoError(t, err)
	for _, mv := range g.Moves() {
		assert.True(t, mv.Board.IsSolvable(), "one move from goal stays solvable (%s)", mv.Dir)
	}
}

func TestIsSolvable_ShiftedColumnCase(t *testing.T) {
	b := mustNew(t, [][]uint8{
		{0, 2, 3, 4},
		{1, 6, 7, 8},
		{5, 10, 11, 12},
		{9, 13, 14, 15},
	})
	assert.True(t, b.IsSolvable())
}

func TestIsSolvable_3x3Swap(t *testing.T) {
	b := mustNew(t, [][]uint8{
		{1, 2, 3},
		{4, 5, 6},
		{8, 7, 0},
	})
	assert.False(t, b.IsSolvable())
}

// ------------------------------------------------------------------------
// 4. Move Tests: successor generation and single blank moves.
// ------------------------------------------------------------------------

func TestMoves_CornerOrderAndCount(t *testing.T) {
	// Blank in the bottom-right corner: only Up and Left, in that order.
	g, err := board.Goal(4)
	require.NoError(t, err)
	moves := g.Moves()
	require.Len(t, moves, 2)
	assert.Equal(t, board.Up, moves[0].Dir)
	assert.Equal(t, board.Left, moves[1].Dir)
}

func TestMoves_CenterHasFour(t *testing.T) {
	b := mustNew(t, [][]uint8{
		{1, 4, 2},
		{3, 0, 5},
		{6, 7, 8},
	})
	moves := b.Moves()
	require.Len(t, moves, 4)
	dirs := []board.Direction{moves[0].Dir, moves[1].Dir, moves[2].Dir, moves[3].Dir}
	assert.Equal(t, []board.Direction{board.Up, board.Down, board.Left, board.Right}, dirs)
}

func TestMoves_SwapSemantics(t *testing.T) {
	// One Right move away from the 4×4 goal: blank at (3,2), 15 at (3,3).
	b := mustNew(t, [][]uint8{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 0, 15},
	})
	moves := b.Moves()
	var right *board.Move
	for i := range moves {
		if moves[i].Dir == board.Right {
			right = &moves[i]
			break
		}
	}
	require.NotNil(t, right, "Right must be legal from (3,2)")
	assert.True(t, right.Board.IsGoal(), "blank and 15 swap into the goal")
}

func TestMoveBlank_RoundTrip(t *testing.T) {
	b := mustNew(t, goal4Rows())

	up, err := b.MoveBlank(board.Up)
	require.NoError(t, err)
	assert.NotEqual(t, b, up)
	assert.Equal(t, uint8(12), up.Tile(board.Coord{Row: 3, Col: 3}), "tile 12 drops into the old blank cell")

	back, err := up.MoveBlank(board.Up.Opposite())
	require.NoError(t, err)
	assert.Equal(t, b, back, "a move and its opposite must cancel")
}

func TestMoveBlank_Illegal(t *testing.T) {
	b := mustNew(t, goal4Rows())
	_, err := b.MoveBlank(board.Down)
	assert.ErrorIs(t, err, board.ErrIllegalMove)
	_, err = b.MoveBlank(board.Right)
	assert.ErrorIs(t, err, board.ErrIllegalMove)
}

func TestMoves_ImmutableReceiver(t *testing.T) {
	b := mustNew(t, goal4Rows())
	_ = b.Moves()
	_, err := b.MoveBlank(board.Up)
	require.NoError(t, err)
	assert.True(t, b.IsGoal(), "moves must never mutate the receiver")
}
