// Package scramble generates solvable puzzle configurations by walking
// the blank backwards out of the solved board.
//
// A walk of k non-undoing random moves yields a configuration whose
// optimal solution is at most k moves, which makes k a usable difficulty
// dial: the bench harness sweeps it to compare heuristics on
// progressively harder starts. Because only legal moves are applied, the
// result is solvable by construction; no parity repair is ever needed.
//
// Determinism is opt-in through WithSeed or WithRand; an unseeded call
// draws from the wall clock and produces a fresh scramble per run.
package scramble
