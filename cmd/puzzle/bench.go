// SPDX-License-Identifier: MIT
// Package: puzzle/cmd/puzzle
//
// bench.go — the heuristic comparison harness.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcinwilkdev/puzzle/astar"
	"github.com/marcinwilkdev/puzzle/board"
	"github.com/marcinwilkdev/puzzle/heuristic"
	"github.com/marcinwilkdev/puzzle/patterndb"
	"github.com/marcinwilkdev/puzzle/scramble"
)

// Difficulty sweep: walk lengths 10, 15, …, 70.
const (
	benchStepsStart     = 10
	benchStepsIncrement = 5
	benchStepsLevels    = 13
)

// defaultBenchIterations is the number of scrambles solved per level.
const defaultBenchIterations = 100

// benchOptions carries the bench flags.
type benchOptions struct {
	iterations int
	seed       int64
	dbPath     string
	rebuildDB  bool
}

func newBenchCmd() *cobra.Command {
	opts := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare heuristics on generated scrambles",
		Long: `Bench sweeps scramble difficulties from 10 to 70 walk moves and, for
each generated state, solves it with both the Manhattan distance (MD) and
the disjoint pattern databases (DD), printing per-solve solution length,
visited-state count and wall time in milliseconds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.iterations, "iterations", defaultBenchIterations,
		"scrambles solved per difficulty level")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for the generated states (default: wall clock)")
	flags.StringVar(&opts.dbPath, "db-path", patterndb.DefaultDatabasePath,
		"pattern-database cache location")
	flags.BoolVar(&opts.rebuildDB, "rebuild-db", false,
		"rebuild the pattern databases even when a cache exists")

	return cmd
}

func runBench(cmd *cobra.Command, opts *benchOptions) error {
	// 1) Validate flags.
	if opts.iterations < 1 {
		return fmt.Errorf("iterations must be positive (got %d)", opts.iterations)
	}

	// 2) Build both heuristics up front; the database build or load is
	//    paid once for the whole sweep.
	manhattan, err := heuristic.NewManhattan(defaultSide)
	if err != nil {
		return err
	}
	popts := []patterndb.Option{
		patterndb.WithPath(opts.dbPath),
		patterndb.WithContext(cmd.Context()),
	}
	if opts.rebuildDB {
		popts = append(popts, patterndb.WithRebuild())
	}
	databases, err := patterndb.New(popts...)
	if err != nil {
		return err
	}

	// 3) One RNG stream for the whole sweep: consecutive scrambles
	//    differ, and a fixed --seed reproduces the full run.
	seed := opts.seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Heuristic | Solution length | Visited states | Runtime")

	for level := 0; level < benchStepsLevels; level++ {
		steps := benchStepsStart + level*benchStepsIncrement
		for i := 0; i < opts.iterations; i++ {
			state, err := scramble.FromGoal(defaultSide, steps, scramble.WithRand(rng))
			if err != nil {
				return err
			}
			if err := benchState(cmd, out, state, manhattan, databases); err != nil {
				return err
			}
		}
	}

	return nil
}

// benchState solves one state with both heuristics and prints one line
// per solve.
func benchState(cmd *cobra.Command, out io.Writer, state board.Board, md, dd heuristic.Heuristic) error {
	mdStart := time.Now()
	mdSol, err := astar.Solve(state, md, astar.WithContext(cmd.Context()))
	if err != nil {
		return fmt.Errorf("manhattan solve of %s: %w", state, err)
	}
	mdRuntime := time.Since(mdStart)

	ddStart := time.Now()
	ddSol, err := astar.Solve(state, dd, astar.WithContext(cmd.Context()))
	if err != nil {
		return fmt.Errorf("disjoint solve of %s: %w", state, err)
	}
	ddRuntime := time.Since(ddStart)

	fmt.Fprintf(out, "MD: %d %d %d\n", len(mdSol.Steps), mdSol.Visited, mdRuntime.Milliseconds())
	fmt.Fprintf(out, "DD: %d %d %d\n", len(ddSol.Steps), ddSol.Visited, ddRuntime.Milliseconds())

	return nil
}
