// SPDX-License-Identifier: MIT
// Package: puzzle/patterndb
//
// persist.go — the CBOR cache blob.
//
// The blob carries a format version, the board side and the group layout
// next to the tables; load validates all of them plus the exact table
// sizes. Validation failures are indistinguishable from a missing file
// to callers of New: both degrade to a fresh build.

package patterndb

import (
	"errors"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// errStaleCache marks a structurally valid blob built for a different
// version or layout.
var errStaleCache = errors.New("patterndb: cache blob does not match the current layout")

// blob is the on-disk layout.
type blob struct {
	Version int         `cbor:"version"`
	Side    int         `cbor:"side"`
	Groups  []groupBlob `cbor:"groups"`
}

// groupBlob is one group's table with its build parameters.
type groupBlob struct {
	First      uint8         `cbor:"first"`
	IgnoreLast bool          `cbor:"ignore_last"`
	Distances  map[Key]uint8 `cbor:"distances"`
}

// load reads and validates a cache blob. Every mismatch is an error;
// New treats any error here as "no usable cache".
func load(path string) (*DisjointDatabases, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b blob
	if err = cbor.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("patterndb: decode cache: %w", err)
	}

	// Version, side and group count must match exactly.
	if b.Version != blobVersion || b.Side != side || len(b.Groups) != groupCount {
		return nil, errStaleCache
	}

	d := &DisjointDatabases{}
	for i, g := range b.Groups {
		want := canonicalGroups[i]
		// Layout and exact table sizes guard against a stale blob that
		// decodes cleanly.
		if g.First != want.First || g.IgnoreLast != want.IgnoreLast {
			return nil, errStaleCache
		}
		if len(g.Distances) != tableSize(want) {
			return nil, errStaleCache
		}
		d.databases[i] = &Database{group: want, dist: g.Distances}
	}

	return d, nil
}

// save writes the cache blob. Failures are deliberately dropped: the
// blob is an opportunistic cache and the in-memory tables are already
// complete.
func (d *DisjointDatabases) save(path string) {
	b := blob{
		Version: blobVersion,
		Side:    side,
		Groups:  make([]groupBlob, 0, groupCount),
	}
	for _, db := range d.databases {
		b.Groups = append(b.Groups, groupBlob{
			First:      db.group.First,
			IgnoreLast: db.group.IgnoreLast,
			Distances:  db.dist,
		})
	}

	raw, err := cbor.Marshal(b)
	if err != nil {
		return
	}
	_ = os.WriteFile(path, raw, 0o644)
}
