// SPDX-License-Identifier: MIT
// Package: puzzle/astar
//
// astar.go — the A* engine over packed board values.
//
// Algorithm (strict):
//   - Frontier: min-heap on f = g + h; ties prefer the smaller h, which
//     favors the deeper of two equally promising configurations.
//   - Lazy re-insertion: successors are pushed without decrease-key and
//     a popped configuration that is already finalized is skipped.
//   - Finalization order is optimal under an admissible, consistent
//     heuristic, so the first finalized goal carries the minimum depth
//     and the provenance direction recorded at finalization is a valid
//     optimal predecessor link.

package astar

import (
	"container/heap"
	"fmt"

	"github.com/marcinwilkdev/puzzle/board"
	"github.com/marcinwilkdev/puzzle/heuristic"
)

// searchNode is a frontier entry: a configuration, its exact depth g,
// its estimate h and the move that produced it.
type searchNode struct {
	state board.Board
	g     int
	h     int
	dir   board.Direction // meaningless for the start configuration
}

// nodePQ is a min-heap of *searchNode on f = g + h, ties on smaller h.
type nodePQ []*searchNode

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	fi, fj := pq[i].g+pq[i].h, pq[j].g+pq[j].h
	if fi != fj {
		return fi < fj
	}

	return pq[i].h < pq[j].h
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*searchNode)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// runner holds the mutable state of a single Solve execution.
type runner struct {
	opts    Options
	h       heuristic.Heuristic
	start   board.Board
	done    map[board.Board]bool            // finalized configurations
	prov    map[board.Board]board.Direction // move that entered each finalized configuration
	pq      nodePQ
	visited int
}

// Solve searches for a shortest move sequence taking b to its goal,
// guided by h. It accepts functional options to customize behavior
// (WithContext, WithOnVisit, WithMaxVisited).
//
// Returns:
//
//   - *Solution with the optimal Steps and the Visited count, or
//   - ErrNilHeuristic, ErrOptionViolation for invalid input,
//   - ErrUnsolvable when the goal is unreachable from b (decided by the
//     parity test alone; the heuristic is never called in that case),
//   - ErrVisitedLimit when the WithMaxVisited budget runs out,
//   - the context error on cancellation, or any visit-hook error.
//
// Optimality holds for any admissible, consistent heuristic; both the
// Manhattan sum and the disjoint pattern databases qualify.
//
// Complexity: O(S log S) time and O(S) space for S visited
// configurations; S depends on the start depth and the heuristic's
// strength far more than on the board side.
func Solve(b board.Board, h heuristic.Heuristic, opts ...Option) (*Solution, error) {
	// 1) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate the estimator.
	if h == nil {
		return nil, ErrNilHeuristic
	}

	// 3) Parity gate: half the permutation space cannot reach the goal.
	//    Deciding this up front costs O(N²) and spares both the frontier
	//    allocation and every heuristic call.
	if !b.IsSolvable() {
		return nil, ErrUnsolvable
	}

	// 4) Seed the frontier with the start configuration.
	r := &runner{
		opts:  o,
		h:     h,
		start: b,
		done:  make(map[board.Board]bool, 1024),
		prov:  make(map[board.Board]board.Direction, 1024),
		pq:    make(nodePQ, 0, 1024),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &searchNode{state: b, g: 0, h: h.Estimate(b)})

	return r.search()
}

// search finalizes configurations in non-decreasing f order until the
// goal is finalized.
func (r *runner) search() (*Solution, error) {
	for r.pq.Len() > 0 {
		// cancellation check (once per finalization attempt)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		// 1) Pop the most promising entry; drop stale duplicates.
		n := heap.Pop(&r.pq).(*searchNode)
		if r.done[n.state] {
			continue
		}

		// 2) Finalize: the depth g is now exact. Record provenance and
		//    count the configuration before the goal test, so a goal
		//    start reports Visited == 1.
		r.done[n.state] = true
		if n.state != r.start {
			r.prov[n.state] = n.dir
		}
		r.visited++
		if err := r.opts.OnVisit(n.state, n.g); err != nil {
			return nil, fmt.Errorf("astar: OnVisit error at depth %d: %w", n.g, err)
		}

		// 3) Goal test on the finalized configuration.
		if n.state.IsGoal() {
			return r.route(n.state), nil
		}

		// 4) Budget gate after the goal test: finding the goal on the
		//    last allowed finalization still succeeds.
		if r.opts.MaxVisited > 0 && r.visited >= r.opts.MaxVisited {
			return nil, ErrVisitedLimit
		}

		// 5) Expand: push every non-finalized successor at depth g+1.
		r.expand(n)
	}

	// A solvable configuration always reaches the goal; an empty
	// frontier here means corrupted successor generation.
	panic("astar: frontier exhausted on a solvable configuration")
}

// expand pushes the successors of a freshly finalized configuration.
func (r *runner) expand(n *searchNode) {
	for _, mv := range n.state.Moves() {
		if r.done[mv.Board] {
			continue
		}
		heap.Push(&r.pq, &searchNode{
			state: mv.Board,
			g:     n.g + 1,
			h:     r.h.Estimate(mv.Board),
			dir:   mv.Dir,
		})
	}
}

// route reconstructs the move sequence by walking the provenance chain
// backwards from the goal, undoing each recorded move, then reversing.
func (r *runner) route(goal board.Board) *Solution {
	steps := make([]board.Direction, 0, 32)
	for cur := goal; cur != r.start; {
		d, ok := r.prov[cur]
		if !ok {
			panic(fmt.Sprintf("astar: provenance missing for %s", cur))
		}
		prev, err := cur.MoveBlank(d.Opposite())
		if err != nil {
			panic(fmt.Sprintf("astar: recorded move %s cannot be undone at %s", d, cur))
		}
		steps = append(steps, d)
		cur = prev
	}

	// reverse to get start → goal order
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return &Solution{Steps: steps, Visited: r.visited}
}
