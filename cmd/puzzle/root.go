// SPDX-License-Identifier: MIT
// Package: puzzle/cmd/puzzle
//
// root.go — the command tree.

package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd assembles the puzzle command tree: solve for single states,
// bench for the heuristic comparison harness.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "puzzle",
		Short: "Optimal sliding-tile puzzle solver",
		Long: `puzzle finds provably shortest solutions for sliding-tile puzzles
(the 15-puzzle and its smaller relatives) with A* search guided by either
the Manhattan distance or precomputed disjoint pattern databases.`,
		SilenceUsage: true,
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())

	return root
}
