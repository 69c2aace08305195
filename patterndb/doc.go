// Package patterndb builds and serves disjoint pattern databases, the
// strong admissible heuristic for the 15-puzzle.
//
// 🚀 What is a disjoint pattern database?
//
//	Partition the fifteen tiles into four groups of four (the last group
//	borrows the blank's home cell as its fourth member). For each group,
//	enumerate every placement of its tiles over the board and record the
//	exact minimum number of GROUP-tile displacements needed to bring
//	them home, counting blank moves that displace no group tile as free.
//	At search time the four table lookups are summed: the groups are
//	disjoint, so no move is counted twice and the sum is an admissible,
//	consistent lower bound that dominates the Manhattan sum.
//
// ✨ Why precompute?
//
//   - A 15-puzzle search expands millions of states; an exact
//     sub-problem distance per lookup buys orders of magnitude fewer
//     expansions than per-tile geometry.
//   - The tables depend on nothing but the board geometry: build once,
//     reuse forever. New persists them as a CBOR blob
//     (DefaultDatabasePath) and reloads in milliseconds.
//
// Enumeration (Build):
//
//	Vertices are (group-tile coordinates, blank coordinate); edges are
//	the four blank moves; an edge costs one displacement only when it
//	relocates a group tile. The sweep is a 0/1-weighted shortest-path
//	enumeration from the solved arrangement over a min-heap frontier
//	with lazy decrease-key. Visited bookkeeping is per full vertex; each
//	Key records the first (minimum) displacement count among its
//	vertices. Ordinary groups settle 16·15·14·13 = 43680 keys, the
//	ignore-last group 16·15·14 = 3360.
//
// Contracts:
//
//   - DisjointDatabases satisfies the heuristic capability: Estimate is
//     read-only, allocation-free and safe for concurrent use.
//   - A lookup miss at estimate time panics: the tables are exhaustive
//     by construction, so a miss means corruption, and a silently wrong
//     bound would break search optimality.
//   - Cache loading never fails the caller: version, layout or size
//     mismatches degrade to a fresh concurrent rebuild (seconds of CPU).
//
// AI-Hints:
//
//   - Use New(WithPath("")) in tests to keep tables in memory and avoid
//     touching the working directory.
//   - WithRebuild() is the recovery path for a corrupt or stale blob;
//     the refreshed blob is written back automatically.
//   - Build(ctx, Group{...}) exposes single-group enumeration for
//     diagnostics; production callers want New.
package patterndb
