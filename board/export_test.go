// SPDX-License-Identifier: MIT
// Package: puzzle/board
//
// export_test.go — test-only access to the packed representation.

package board

// PackedCells exposes the raw packed word to the external test package.
func PackedCells(b Board) uint64 { return b.cells }
