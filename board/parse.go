// SPDX-License-Identifier: MIT
// Package: puzzle/board
//
// parse.go — textual round-trip of a configuration.
//
// Format: row-major cell values inside one bracket pair, comma-separated,
// the blank rendered as an empty field. The 3×3 goal reads
// "[1, 2, 3, 4, 5, 6, 7, 8, ]". Parse(b.String()) == b for every valid b.

package board

import (
	"fmt"
	"strconv"
	"strings"
)

// sideForCount maps a cell count to its board side; only perfect squares
// of supported sides parse.
var sideForCount = map[int]int{4: 2, 9: 3, 16: 4}

// String renders the configuration in the bracketed textual form.
// Complexity: O(N²).
func (b Board) String() string {
	n := int(b.side) * int(b.side)
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		if v := b.nibble(uint(i)); v != blankNibble {
			parts[i] = strconv.Itoa(int(v) + 1)
		}
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Parse decodes the bracketed textual form into a Board. The side is
// inferred from the element count (4, 9 or 16 cells); an empty field is
// the blank.
//
// Errors: ErrNoBrackets for a missing [...] envelope, ErrElementCount for
// an unsupported cell count, ErrBadNumber for an unparsable entry, then
// New's validation errors (ErrTwoBlanks, ErrNotPermutation).
// Complexity: O(N²).
func Parse(s string) (Board, error) {
	// 1) Locate the bracket envelope; anything outside it is ignored.
	open := strings.IndexByte(s, '[')
	closing := strings.LastIndexByte(s, ']')
	if open < 0 || closing < open {
		return Board{}, ErrNoBrackets
	}

	// 2) Split the body on commas; the count fixes the side.
	fields := strings.Split(s[open+1:closing], ",")
	side, ok := sideForCount[len(fields)]
	if !ok {
		return Board{}, fmt.Errorf("%w: %d elements", ErrElementCount, len(fields))
	}

	// 3) Decode each field: empty is the blank, otherwise a positive tile
	//    number. An explicit "0" is rejected; the blank has no numeral.
	rows := make([][]uint8, side)
	for r := range rows {
		rows[r] = make([]uint8, side)
	}
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue // blank cell, already zero
		}
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 || v > 255 {
			return Board{}, fmt.Errorf("%w: %q", ErrBadNumber, f)
		}
		rows[i/side][i%side] = uint8(v)
	}

	// 4) Full validation and packing are New's job.
	return New(rows)
}
