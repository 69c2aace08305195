// SPDX-License-Identifier: MIT
// Package: puzzle/board
//
// parity.go — the permutation-parity solvability test.
//
// Theorem (15-puzzle solvability): flatten the configuration row-major
// into a sequence over 1..N² with the blank counted as N². The goal is
// reachable iff the parity of that permutation agrees with the parity of
// the blank's Manhattan distance from its home cell (both even or both
// odd). Every blank move is a transposition that also changes the blank
// distance by one, so the agreement is invariant under moves and holds
// for the goal itself.

package board

// IsSolvable reports whether the goal configuration is reachable from b
// via blank moves. Search must consult this before expanding anything:
// an unsolvable start would otherwise exhaust the full half of the state
// space.
// Complexity: O(N²) time, O(N²) space for the cycle walk.
func (b Board) IsSolvable() bool {
	// 1) Flatten to a 1-indexed permutation with the blank as N².
	n := int(b.side) * int(b.side)
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		v := b.nibble(uint(i))
		if v == blankNibble {
			perm[i] = n
		} else {
			perm[i] = int(v) + 1
		}
	}

	// 2) Parity of the permutation vs. parity of the blank's home distance.
	evenPerm := isEvenPermutation(perm)
	evenDist := b.BlankCoord().ManhattanDistance(blankHome(b.side))%2 == 0

	return evenPerm == evenDist
}

// isEvenPermutation reports the parity of a permutation of 1..len(perm)
// by cycle decomposition: a cycle of length L contributes L-1
// transpositions.
func isEvenPermutation(perm []int) bool {
	seen := make([]bool, len(perm)+1) // 1-indexed values
	swaps := 0
	for start := 1; start <= len(perm); start++ {
		if seen[start] {
			continue
		}
		// Walk the cycle containing start, counting its length.
		for v := start; !seen[v]; v = perm[v-1] {
			seen[v] = true
			swaps++
		}
		swaps-- // length L counted above; the cycle costs L-1 swaps
	}

	return swaps%2 == 0
}
