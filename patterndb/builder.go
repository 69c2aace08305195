// SPDX-License-Identifier: MIT
// Package: puzzle/patterndb
//
// builder.go — exhaustive enumeration of one group's reduced state space.
//
// Algorithm (strict):
//   - Vertices are (tracked tile coordinates, blank coordinate); edges
//     are the four blank moves restricted to the board.
//   - An edge costs 1 displacement iff it relocates a tracked tile;
//     blank-only moves cost 0. The enumeration is therefore a
//     0/1-weighted shortest-distance sweep, not a plain BFS: the
//     frontier is a min-heap on displacement count with the lazy
//     decrease-key policy (duplicates pushed, stale entries skipped).
//   - Distances settle in non-decreasing order, so the first settled
//     vertex carrying a Key fixes that Key's exact minimum.

package patterndb

import (
	"container/heap"
	"context"

	"github.com/marcinwilkdev/puzzle/board"
)

// blankDirections is the canonical edge order of the enumeration.
var blankDirections = [...]board.Direction{board.Up, board.Down, board.Left, board.Right}

// Database is one group's exact displacement table, immutable once built.
type Database struct {
	group Group
	dist  map[Key]uint8
}

// Group returns the parameters this table was built for.
func (db *Database) Group() Group { return db.group }

// Len returns the number of reachable group configurations.
func (db *Database) Len() int { return len(db.dist) }

// Distance returns the minimum displacement count for k and whether k is
// a reachable configuration.
// Complexity: O(1).
func (db *Database) Distance(k Key) (uint8, bool) {
	v, ok := db.dist[k]

	return v, ok
}

// groupState is one vertex of the reduced space. It is a comparable
// value and serves directly as the visited-map key: tracking visits per
// Key instead would conflate states that differ only in blank position.
type groupState struct {
	tiles [GroupSize]board.Coord
	blank board.Coord
}

// solvedState places the tracked members on their home cells and the
// blank on its own home. For an ignore-last group the fourth member's
// "home" coincides with the blank home.
func solvedState(g Group) groupState {
	var st groupState
	for i := 0; i < GroupSize; i++ {
		cell := int(g.First) - 1 + i
		st.tiles[i] = board.Coord{Row: uint8(cell / side), Col: uint8(cell % side)}
	}
	st.blank = board.Coord{Row: side - 1, Col: side - 1}

	return st
}

// next returns the vertex after the blank travels d, whether a tracked
// member was displaced, and whether the move stays on the board.
func (s groupState) next(d board.Direction, ignoreLast bool) (groupState, bool, bool) {
	dRow, dCol := d.Delta()
	row, col := int(s.blank.Row)+dRow, int(s.blank.Col)+dCol
	if row < 0 || row >= side || col < 0 || col >= side {
		return groupState{}, false, false
	}

	target := board.Coord{Row: uint8(row), Col: uint8(col)}
	out := s
	out.blank = target
	moved := false
	for i := range out.tiles {
		if out.tiles[i] != target {
			continue
		}
		if ignoreLast && i == GroupSize-1 {
			break // the phantom member never moves; the blank passes through
		}
		out.tiles[i] = s.blank // displaced into the cell the blank vacated
		moved = true

		break
	}

	return out, moved, true
}

// shiftNode is a frontier entry: a vertex and its displacement count.
type shiftNode struct {
	state  groupState
	shifts int
}

// nodePQ is a min-heap of *shiftNode ordered by displacement count.
// Lazy decrease-key: improvements push duplicates, stale entries are
// skipped on pop against the dist map.
type nodePQ []*shiftNode

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].shifts < pq[j].shifts }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*shiftNode)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// Build enumerates every reachable arrangement of one group and returns
// the exact table of minimum displacement counts.
//
// The sweep starts from the solved arrangement and runs until the
// frontier empties; the reachable space is finite (bounded by board
// permutations), so termination is unconditional. Cancellation is
// polled once per dequeue.
//
// Complexity: O(S log S) time and O(S) space for S reachable vertices
// (16·15·14·13·12 ≈ 5·10⁵ for an ordinary group). A full build takes
// seconds; callers wanting all four groups should prefer New, which
// builds them concurrently and caches the result.
func Build(ctx context.Context, g Group) (*Database, error) {
	// 1) Validate inputs before any allocation.
	if err := g.validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 2) Seed the frontier with the solved arrangement at zero shifts.
	start := solvedState(g)
	table := make(map[Key]uint8, tableSize(g))
	dist := map[groupState]int{start: 0}
	pq := make(nodePQ, 0, 1024)
	heap.Init(&pq)
	heap.Push(&pq, &shiftNode{state: start, shifts: 0})

	// 3) Settle vertices in non-decreasing displacement order.
	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n := heap.Pop(&pq).(*shiftNode)
		if n.shifts > dist[n.state] {
			continue // stale duplicate
		}

		// 4) The first settled vertex carrying a Key fixes its minimum.
		k := KeyFor(n.state.tiles, g.IgnoreLast)
		if _, ok := table[k]; !ok {
			table[k] = uint8(n.shifts)
		}

		// 5) Relax the four blank moves.
		for _, d := range blankDirections {
			nxt, movedTile, ok := n.state.next(d, g.IgnoreLast)
			if !ok {
				continue
			}
			ns := n.shifts
			if movedTile {
				ns++
			}
			if cur, seen := dist[nxt]; !seen || ns < cur {
				dist[nxt] = ns
				heap.Push(&pq, &shiftNode{state: nxt, shifts: ns})
			}
		}
	}

	return &Database{group: g, dist: table}, nil
}
