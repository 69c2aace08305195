// Package astar finds provably shortest move sequences for sliding-tile
// puzzles with best-first search over packed board values.
//
// 🚀 What is astar?
//
//	Solve(b, h) explores configurations in non-decreasing f = g + h
//	order, where g is the exact depth and h an admissible estimate of
//	the remaining moves:
//	  • Solve    — validation, parity gate, then the search loop
//	  • Solution — the optimal step sequence plus the visited count
//	  • Options  — context cancellation, a per-visit hook, a visited cap
//
// ✨ Why A*?
//
//   - Plain breadth-first search finalizes every configuration at depth
//     < d before one at depth d; a strong admissible heuristic prunes
//     whole subtrees of that frontier without risking optimality.
//   - The engine is heuristic-agnostic: anything satisfying
//     heuristic.Heuristic slots in, from the Manhattan sum to the
//     disjoint pattern databases.
//
// Guarantees:
//
//   - Steps is minimal in length for any admissible, consistent h.
//   - Unsolvable inputs are rejected by the parity test before the
//     frontier exists: ErrUnsolvable is the branch for "no sequence
//     exists", never a search failure.
//   - Visited counts finalized configurations only; stale heap
//     duplicates are skipped unseen and uncounted.
//
// Complexity: O(S log S) time, O(S) space for S finalized
// configurations. The practical driver is the heuristic: on hard 4×4
// starts the pattern databases visit orders of magnitude fewer
// configurations than the Manhattan sum.
package astar
