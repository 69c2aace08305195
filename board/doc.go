// Package board models sliding-tile puzzle configurations (the
// generalized 15-puzzle, side 2..4) as compact immutable values.
//
// 🚀 What is board?
//
//	One Board packs a full N×N configuration into a single uint64:
//	4 bits per cell, row-major, tile v stored as v-1 and the blank as
//	the reserved 0b1111 marker. Configurations therefore copy, compare
//	and hash in O(1) and travel by value through maps and heaps:
//	  • New / Goal / Parse — validated construction
//	  • Moves / MoveBlank  — successor generation (blank motion)
//	  • IsGoal / IsSolvable — goal test and the parity reachability test
//	  • String / Parse     — bracketed textual round-trip
//
// ✨ Why a packed word?
//
//   - Search visits millions of configurations; value semantics remove
//     every allocation and pointer chase from the hot path.
//   - The 4-bit field bounds the addressable board at 16 cells, which is
//     exactly the 15-puzzle ceiling this module supports.
//
// Invariants:
//
//   - Exactly one blank; the tiles form a permutation of 1..N²-1.
//     Both are enforced at construction, never re-checked during search.
//   - Moves never mutate: each move yields a fresh Board value.
//   - Direction describes the blank's travel; Opposite is involutive and
//     path reconstruction walks moves backwards through it.
//
// Complexity: all accessors O(1) or O(N²) with N ≤ 4; no heap allocation
// outside Cells, Moves and String.
package board
