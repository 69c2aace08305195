// Package puzzle is an optimal sliding-tile puzzle toolkit: packed
// board values, admissible heuristics and A* search with provably
// shortest answers.
//
// 🚀 What is puzzle?
//
//	A solver for the 15-puzzle and its smaller relatives (side 2..4)
//	that brings together:
//		• Packed states: one uint64 per board, O(1) copy/compare/hash
//		• Parity screening: unsolvable starts rejected before any search
//		• Heuristics: Manhattan distance and disjoint pattern databases
//		• Precomputation: exact sub-puzzle tables, built concurrently
//		  and cached on disk as a CBOR blob
//		• Search: A* with lazy re-insertion, hooks and cancellation
//		• Generation: seeded random-walk scrambles with a difficulty dial
//
// ✨ Why choose puzzle?
//
//   - Optimal, not just fast – every returned sequence is a shortest one
//   - Value semantics – boards travel through maps and heaps allocation-free
//   - Extensible – any admissible estimator plugs into the search engine
//   - Observable – visit hooks and visited-state counters, no hidden state
//
// Under the hood, everything is organized under five subpackages and one
// binary:
//
//	board/     — coordinates, directions, packed configurations, parsing
//	heuristic/ — the estimator capability + the Manhattan bound
//	patterndb/ — disjoint pattern databases: build, cache, estimate
//	astar/     — the optimal search engine
//	scramble/  — backward random-walk state generation
//	cmd/puzzle — CLI: solve one state, or bench both heuristics
//
// Quick example:
//
//	b, _ := board.Parse("[1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, , 15]")
//	m, _ := heuristic.NewManhattan(4)
//	sol, _ := astar.Solve(b, m)
//	fmt.Println(sol.Steps) // [Right]
//
//	go get github.com/marcinwilkdev/puzzle
package puzzle
