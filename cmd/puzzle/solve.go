// SPDX-License-Identifier: MIT
// Package: puzzle/cmd/puzzle
//
// solve.go — solve a single state, given or freshly scrambled.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcinwilkdev/puzzle/astar"
	"github.com/marcinwilkdev/puzzle/board"
	"github.com/marcinwilkdev/puzzle/heuristic"
	"github.com/marcinwilkdev/puzzle/patterndb"
	"github.com/marcinwilkdev/puzzle/scramble"
)

// Heuristic selector values.
const (
	heuristicManhattan = "manhattan"
	heuristicDisjoint  = "disjoint"
)

// defaultSide is the board generated scrambles use; explicit states may
// be any supported side.
const defaultSide = 4

// defaultScrambleSteps matches the walk length used when no state is
// given on the command line.
const defaultScrambleSteps = 100

// solveOptions carries the solve flags.
type solveOptions struct {
	heuristic string
	scramble  int
	seed      int64
	dbPath    string
	rebuildDB bool
}

func newSolveCmd() *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve [state]",
		Short: "Find a shortest solution for one state",
		Long: `Solve finds a provably shortest move sequence for the given state,
written as bracketed row-major tiles with an empty slot for the blank,
e.g. "[1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, , 15]".
Without a state argument a fresh 4×4 scramble of --scramble moves is
solved instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.heuristic, "heuristic", heuristicManhattan,
		fmt.Sprintf("search heuristic: %s or %s", heuristicManhattan, heuristicDisjoint))
	flags.IntVar(&opts.scramble, "scramble", defaultScrambleSteps,
		"walk length of the generated state when no state argument is given")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for the generated state (default: wall clock)")
	flags.StringVar(&opts.dbPath, "db-path", patterndb.DefaultDatabasePath,
		"pattern-database cache location (disjoint heuristic only)")
	flags.BoolVar(&opts.rebuildDB, "rebuild-db", false,
		"rebuild the pattern databases even when a cache exists")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *solveOptions, args []string) error {
	// 1) Resolve the start configuration.
	var b board.Board
	var err error
	if len(args) == 1 {
		b, err = board.Parse(args[0])
		if err != nil {
			return fmt.Errorf("parse state %q: %w", args[0], err)
		}
	} else {
		var walkOpts []scramble.Option
		if cmd.Flags().Changed("seed") {
			walkOpts = append(walkOpts, scramble.WithSeed(opts.seed))
		}
		b, err = scramble.FromGoal(defaultSide, opts.scramble, walkOpts...)
		if err != nil {
			return err
		}
	}

	// 2) Build the requested heuristic.
	h, err := buildHeuristic(cmd, opts.heuristic, opts.dbPath, opts.rebuildDB, b.Side())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initial puzzle state: %s\n", b)

	// 3) Search. An unsolvable state is an answer, not a failure.
	sol, err := astar.Solve(b, h, astar.WithContext(cmd.Context()))
	if errors.Is(err, astar.ErrUnsolvable) {
		fmt.Fprintln(out, "State unsolvable.")

		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Solution steps: %v\n", sol.Steps)
	fmt.Fprintf(out, "Solution len: %d\n", len(sol.Steps))
	fmt.Fprintf(out, "Number of visited states: %d\n", sol.Visited)

	return nil
}

// buildHeuristic maps the selector flag to a ready estimator.
func buildHeuristic(cmd *cobra.Command, name, dbPath string, rebuild bool, side int) (heuristic.Heuristic, error) {
	switch name {
	case heuristicManhattan:
		return heuristic.NewManhattan(side)
	case heuristicDisjoint:
		if side != defaultSide {
			return nil, fmt.Errorf("the %s heuristic supports %d×%d boards only (got %d×%d)",
				heuristicDisjoint, defaultSide, defaultSide, side, side)
		}
		popts := []patterndb.Option{
			patterndb.WithPath(dbPath),
			patterndb.WithContext(cmd.Context()),
		}
		if rebuild {
			popts = append(popts, patterndb.WithRebuild())
		}

		return patterndb.New(popts...)
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want %s or %s)",
			name, heuristicManhattan, heuristicDisjoint)
	}
}
