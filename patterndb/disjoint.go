// SPDX-License-Identifier: MIT
// Package: puzzle/patterndb
//
// disjoint.go — the composed heuristic over the four canonical tables.
//
// Contract (strict):
//   - The canonical partition covers all fifteen tiles: groups starting
//     at 1, 5, 9 and 13, the last one keyed on three tiles only.
//   - Estimate is a pure sum of four exact sub-problem distances; the
//     groups are disjoint, so the sum stays admissible and consistent.
//   - A lookup miss is a broken invariant (every reachable arrangement
//     was enumerated at build time) and panics.

package patterndb

import (
	"context"
	"fmt"

	"github.com/marcinwilkdev/puzzle/board"
	"golang.org/x/sync/errgroup"
)

// canonicalGroups partitions the fifteen tiles; the final group's fourth
// member is the blank's home cell.
var canonicalGroups = [groupCount]Group{
	{First: 1},
	{First: 5},
	{First: 9},
	{First: 13, IgnoreLast: true},
}

// DisjointDatabases is the pattern-database heuristic for the 15-puzzle:
// one exact displacement table per canonical group. Immutable once
// constructed and safe for concurrent use.
type DisjointDatabases struct {
	databases [groupCount]*Database
}

// New returns the composed heuristic, loading the cache blob when a
// valid one exists and enumerating from scratch otherwise.
//
// Load is opportunistic: a missing file, a decode failure, a version or
// layout mismatch, or wrong table sizes all silently degrade to a fresh
// build (which then refreshes the blob, best-effort). A fresh build runs
// the four independent group enumerations concurrently; budget seconds
// of CPU for the first run.
func New(opts ...Option) (*DisjointDatabases, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Opportunistic cache read.
	if !cfg.Rebuild && cfg.Path != "" {
		if d, err := load(cfg.Path); err == nil {
			return d, nil
		}
	}

	// 2) Fresh enumeration of all four groups.
	d, err := build(cfg.Ctx)
	if err != nil {
		return nil, err
	}

	// 3) Best-effort cache write; the blob is a cache, not a contract.
	if cfg.Path != "" {
		d.save(cfg.Path)
	}

	return d, nil
}

// build enumerates the canonical groups concurrently. The groups share
// no state, so the only coordination is error propagation.
func build(ctx context.Context) (*DisjointDatabases, error) {
	d := &DisjointDatabases{}
	eg, ctx := errgroup.WithContext(ctx)
	for i, g := range canonicalGroups {
		i, g := i, g
		eg.Go(func() error {
			db, err := Build(ctx, g)
			if err != nil {
				return err
			}
			d.databases[i] = db

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return d, nil
}

// Database returns the table of canonical group i (0..3); it exists for
// diagnostics and tests.
func (d *DisjointDatabases) Database(i int) *Database {
	return d.databases[i]
}

// Estimate partitions the configuration's tiles into the build-time
// groups, keys each group's coordinates and sums the four exact
// distances. Panics on a non-4×4 board or on a lookup miss (the latter
// means a corrupt table and must abort loudly: a silently wrong value
// would break search optimality).
// Complexity: O(N²), no allocation.
func (d *DisjointDatabases) Estimate(b board.Board) int {
	if b.Side() != side {
		panic("patterndb: board side mismatch")
	}

	// 1) Positions by value: member j of group i is tile i·4+j+1. The
	//    phantom member of the last group keeps the zero coordinate; the
	//    Key ignores it.
	var pos [groupCount][GroupSize]board.Coord
	for r := uint8(0); r < side; r++ {
		for c := uint8(0); c < side; c++ {
			v := b.Tile(board.Coord{Row: r, Col: c})
			if v == 0 {
				continue
			}
			pos[(v-1)/GroupSize][(v-1)%GroupSize] = board.Coord{Row: r, Col: c}
		}
	}

	// 2) Sum the exact sub-problem distances.
	sum := 0
	for i, db := range d.databases {
		k := KeyFor(pos[i], db.group.IgnoreLast)
		v, ok := db.dist[k]
		if !ok {
			panic(fmt.Sprintf("patterndb: no distance for key %#06x in group %d", uint16(k), i))
		}
		sum += int(v)
	}

	return sum
}
