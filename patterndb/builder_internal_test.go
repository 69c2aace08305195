// Package patterndb: internal tests for the reduced-space transition
// semantics and the table bookkeeping.
package patterndb

import (
	"context"
	"testing"

	"github.com/marcinwilkdev/puzzle/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Group parameter tests.
// ------------------------------------------------------------------------

func TestGroup_Validate(t *testing.T) {
	assert.NoError(t, Group{First: 1}.validate())
	assert.NoError(t, Group{First: 12}.validate(), "tiles 12..15 are all real")
	assert.NoError(t, Group{First: 13, IgnoreLast: true}.validate(), "phantom member may sit on the blank home")

	assert.ErrorIs(t, Group{First: 0}.validate(), ErrBadGroup)
	assert.ErrorIs(t, Group{First: 13}.validate(), ErrBadGroup, "tile 16 does not exist")
	assert.ErrorIs(t, Group{First: 14, IgnoreLast: true}.validate(), ErrBadGroup)
}

func TestTableSize(t *testing.T) {
	assert.Equal(t, 16*15*14*13, tableSize(Group{First: 1}))
	assert.Equal(t, 16*15*14, tableSize(Group{First: 13, IgnoreLast: true}))
}

// ------------------------------------------------------------------------
// 2. Transition tests: blank motion over the reduced space.
// ------------------------------------------------------------------------

func TestSolvedState_HomeCells(t *testing.T) {
	st := solvedState(Group{First: 5})
	assert.Equal(t, [GroupSize]board.Coord{
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
	}, st.tiles)
	assert.Equal(t, board.Coord{Row: 3, Col: 3}, st.blank)
}

func TestNext_BlankOnlyMoveIsFree(t *testing.T) {
	// Group 1..4 lives in row 0; the blank starts at (3,3) far away.
	st := solvedState(Group{First: 1})

	nxt, moved, ok := st.next(board.Up, false)
	require.True(t, ok)
	assert.False(t, moved, "no tracked tile at (2,3)")
	assert.Equal(t, board.Coord{Row: 2, Col: 3}, nxt.blank)
	assert.Equal(t, st.tiles, nxt.tiles, "tiles hold still")
}

func TestNext_DisplacingATrackedTile(t *testing.T) {
	// Put the blank directly below tile 2's home cell (0,1).
	st := solvedState(Group{First: 1})
	st.blank = board.Coord{Row: 1, Col: 1}

	nxt, moved, ok := st.next(board.Up, false)
	require.True(t, ok)
	assert.True(t, moved, "tile 2 sits on the target cell")
	assert.Equal(t, board.Coord{Row: 0, Col: 1}, nxt.blank)
	assert.Equal(t, board.Coord{Row: 1, Col: 1}, nxt.tiles[1], "tile 2 drops into the vacated cell")
}

func TestNext_OffBoard(t *testing.T) {
	st := solvedState(Group{First: 1})
	_, _, ok := st.next(board.Down, false)
	assert.False(t, ok, "blank already on the bottom edge")
	_, _, ok = st.next(board.Right, false)
	assert.False(t, ok, "blank already on the right edge")
}

func TestNext_PhantomMemberPassThrough(t *testing.T) {
	// Ignore-last group: member 3 "lives" on the blank home (3,3). Walk
	// the blank away and back; the phantom must never move.
	st := solvedState(Group{First: 13, IgnoreLast: true})
	away, moved, ok := st.next(board.Up, true)
	require.True(t, ok)
	assert.False(t, moved)

	back, moved, ok := away.next(board.Down, true)
	require.True(t, ok)
	assert.False(t, moved, "re-entering the phantom cell is free")
	assert.Equal(t, board.Coord{Row: 3, Col: 3}, back.tiles[GroupSize-1], "phantom stays put")
	assert.Equal(t, st, back)
}

func TestNext_RealTileBeatsPhantomOnSameCell(t *testing.T) {
	// A real tile may wander onto the phantom's cell; displacing it must
	// hit the real member, not the phantom.
	st := solvedState(Group{First: 13, IgnoreLast: true})
	st.tiles[0] = board.Coord{Row: 3, Col: 3} // tile 13 parked on the blank home
	st.blank = board.Coord{Row: 2, Col: 3}

	nxt, moved, ok := st.next(board.Down, true)
	require.True(t, ok)
	assert.True(t, moved, "the real tile 13 is displaced")
	assert.Equal(t, board.Coord{Row: 2, Col: 3}, nxt.tiles[0])
	assert.Equal(t, board.Coord{Row: 3, Col: 3}, nxt.tiles[GroupSize-1], "phantom unaffected")
}

// ------------------------------------------------------------------------
// 3. Full-enumeration tests (skipped with -short).
// ------------------------------------------------------------------------

func TestBuild_ExactTableSizes(t *testing.T) {
	if testing.Short() {
		t.Skip("full group enumeration: skipped with -short")
	}

	ordinary, err := Build(context.Background(), Group{First: 1})
	require.NoError(t, err)
	assert.Equal(t, 16*15*14*13, ordinary.Len(), "every ordered 4-tile placement is reachable")

	last, err := Build(context.Background(), Group{First: 13, IgnoreLast: true})
	require.NoError(t, err)
	assert.Equal(t, 16*15*14, last.Len(), "three keyed members for the final group")
}

func TestBuild_Deterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("full group enumeration: skipped with -short")
	}

	a, err := Build(context.Background(), Group{First: 5})
	require.NoError(t, err)
	b, err := Build(context.Background(), Group{First: 5})
	require.NoError(t, err)
	assert.Equal(t, a.dist, b.dist, "enumeration must be reproducible")
}

func TestBuild_SolvedKeyIsZero(t *testing.T) {
	if testing.Short() {
		t.Skip("full group enumeration: skipped with -short")
	}

	g := Group{First: 9}
	db, err := Build(context.Background(), g)
	require.NoError(t, err)

	d, ok := db.Distance(KeyFor(solvedState(g).tiles, false))
	require.True(t, ok)
	assert.Zero(t, d, "home arrangement costs nothing")
}

// ------------------------------------------------------------------------
// 4. Corruption handling.
// ------------------------------------------------------------------------

func TestEstimate_MissPanics(t *testing.T) {
	// Hand-assemble a heuristic with empty tables: any lookup must abort
	// loudly rather than return a silently wrong bound.
	d := &DisjointDatabases{}
	for i, g := range canonicalGroups {
		d.databases[i] = &Database{group: g, dist: map[Key]uint8{}}
	}
	goal, err := board.Goal(4)
	require.NoError(t, err)

	assert.Panics(t, func() { _ = d.Estimate(goal) })
}

func TestEstimate_SideMismatchPanics(t *testing.T) {
	d := &DisjointDatabases{}
	for i, g := range canonicalGroups {
		d.databases[i] = &Database{group: g, dist: map[Key]uint8{}}
	}
	small, err := board.Goal(3)
	require.NoError(t, err)

	assert.Panics(t, func() { _ = d.Estimate(small) })
}
