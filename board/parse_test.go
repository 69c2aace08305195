// Package board_test: textual round-trip tests for String and Parse.
package board_test

import (
	"testing"

	"github.com/marcinwilkdev/puzzle/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Rendering Tests.
// ------------------------------------------------------------------------

func TestString_GoalForms(t *testing.T) {
	g3, err := board.Goal(3)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3, 4, 5, 6, 7, 8, ]", g3.String())

	g4, err := board.Goal(4)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, ]", g4.String())
}

func TestString_BlankMidList(t *testing.T) {
	b := mustNew(t, [][]uint8{
		{1, 4, 2},
		{3, 0, 5},
		{6, 7, 8},
	})
	assert.Equal(t, "[1, 4, 2, 3, , 5, 6, 7, 8]", b.String())
}

// ------------------------------------------------------------------------
// 2. Parsing Tests.
// ------------------------------------------------------------------------

func TestParse_InfersSide(t *testing.T) {
	b, err := board.Parse("[1, 2, 3, ]")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Side())
	assert.True(t, b.IsGoal())

	b, err = board.Parse("[1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,]")
	require.NoError(t, err)
	assert.Equal(t, 4, b.Side())
	assert.True(t, b.IsGoal())
}

func TestParse_WhitespaceAndPadding(t *testing.T) {
	b, err := board.Parse("  [ 1 ,2,  3,   ]  ")
	require.NoError(t, err)
	assert.True(t, b.IsGoal())
}

func TestParse_Errors(t *testing.T) {
	_, err := board.Parse("1, 2, 3, ")
	assert.ErrorIs(t, err, board.ErrNoBrackets, "missing envelope")

	_, err = board.Parse("]1, 2, 3, [")
	assert.ErrorIs(t, err, board.ErrNoBrackets, "reversed envelope")

	_, err = board.Parse("[1, 2, 3, 4, ]")
	assert.ErrorIs(t, err, board.ErrElementCount, "five cells fit no square board")

	_, err = board.Parse("[1, 2, x, ]")
	assert.ErrorIs(t, err, board.ErrBadNumber)

	_, err = board.Parse("[1, 2, 0, ]")
	assert.ErrorIs(t, err, board.ErrBadNumber, "the blank is an empty field, not 0")

	_, err = board.Parse("[1, 2, , ]")
	assert.ErrorIs(t, err, board.ErrTwoBlanks)

	_, err = board.Parse("[1, 1, 3, ]")
	assert.ErrorIs(t, err, board.ErrNotPermutation)
}

// ------------------------------------------------------------------------
// 3. Round-Trip Tests.
// ------------------------------------------------------------------------

func TestRoundTrip_TextAndCells(t *testing.T) {
	fixtures := []string{
		"[1, 2, 3, ]",
		"[1, 4, 2, 3, , 5, 6, 7, 8]",
		"[, 2, 3, 4, 1, 6, 7, 8, 5, 10, 11, 12, 9, 13, 14, 15]",
		"[1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, , 15]",
	}
	for _, text := range fixtures {
		b, err := board.Parse(text)
		require.NoError(t, err, "fixture %q", text)
		assert.Equal(t, text, b.String(), "text round-trip")

		again, err := board.New(b.Cells())
		require.NoError(t, err)
		assert.Equal(t, b, again, "Cells→New round-trip")
	}
}
