// SPDX-License-Identifier: MIT
// Package: puzzle/patterndb
//
// types.go — keys, groups, configuration options and sentinel errors for
// the disjoint pattern databases.
//
// Contract (strict):
//   - A Key encodes WHERE the tracked tiles sit, never where the blank
//     sits: many full enumeration states map to one Key and only the
//     first (minimum) displacement count is retained.
//   - Option constructors validate eagerly; invalid values panic.
//   - The databases are specific to the 4×4 board (the 15-puzzle).

package patterndb

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcinwilkdev/puzzle/board"
)

// side fixes the board these databases describe: the 15-puzzle.
const side = 4

// GroupSize is the number of tracked members per disjoint group.
const GroupSize = 4

// groupCount partitions the fifteen tiles into four groups of four, the
// last one completed by the blank's home cell.
const groupCount = 4

// DefaultDatabasePath is where New looks for and persists the cache blob.
const DefaultDatabasePath = "15_puzzle_heuristic_database.data"

// blobVersion tags the persisted format; load rejects any other version.
const blobVersion = 1

// Sentinel errors of the patterndb package.
var (
	// ErrBadGroup indicates group parameters whose members fall outside
	// the board's tiles.
	ErrBadGroup = errors.New("patterndb: group members out of range")
)

// Group parametrizes one disjoint-group build.
type Group struct {
	// First is the lowest tile value the group tracks; the group covers
	// First..First+3.
	First uint8

	// IgnoreLast marks the final group: its fourth member is the blank's
	// home cell rather than a real tile, so it is excluded from the Key
	// and never moves during enumeration.
	IgnoreLast bool
}

// validate bounds the member range: real tiles stop at N²-1, the phantom
// member of an ignore-last group may sit on the blank home cell N².
func (g Group) validate() error {
	limit := side*side - 1
	if g.IgnoreLast {
		limit = side * side
	}
	last := int(g.First) + GroupSize - 1
	if g.First < 1 || last > limit {
		return fmt.Errorf("%w: tiles %d..%d", ErrBadGroup, g.First, last)
	}

	return nil
}

// members is the number of tiles that participate in the Key.
func (g Group) members() int {
	if g.IgnoreLast {
		return GroupSize - 1
	}

	return GroupSize
}

// Key is a packed pattern-group configuration: member i's cell index
// (row·4+col) occupies bits 4i..4i+3. The last member is omitted for an
// ignore-last group. The blank's position is deliberately absent.
type Key uint16

// KeyFor packs the tracked tiles' coordinates into their lookup Key.
// Complexity: O(1).
func KeyFor(tiles [GroupSize]board.Coord, ignoreLast bool) Key {
	members := GroupSize
	if ignoreLast {
		members--
	}
	var k Key
	for i := 0; i < members; i++ {
		cell := uint16(tiles[i].Row)*side + uint16(tiles[i].Col)
		k |= Key(cell) << (4 * uint(i))
	}

	return k
}

// tableSize is the exact reachable-key count for a group: ordered
// placements of its keyed members over the N² cells.
func tableSize(g Group) int {
	size := 1
	cells := side * side
	for i := 0; i < g.members(); i++ {
		size *= cells - i
	}

	return size
}

// Options configures New.
//
// Path    – cache blob location; empty disables both load and save.
// Rebuild – skip the load attempt and always enumerate afresh.
// Ctx     – cancels in-flight builds.
type Options struct {
	Path    string
	Rebuild bool
	Ctx     context.Context
}

// Option mutates Options functionally.
type Option func(*Options)

// DefaultOptions returns the standard configuration: load from
// DefaultDatabasePath when present, build and persist otherwise, no
// cancellation.
func DefaultOptions() Options {
	return Options{
		Path:    DefaultDatabasePath,
		Rebuild: false,
		Ctx:     context.Background(),
	}
}

// WithPath overrides the cache blob location. An empty path keeps the
// databases in memory only: no load attempt, no save.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithRebuild forces a fresh enumeration even when a cache blob exists.
// The result still overwrites the blob unless the path is empty.
func WithRebuild() Option {
	return func(o *Options) {
		o.Rebuild = true
	}
}

// WithContext sets a custom context for cancelling builds.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
