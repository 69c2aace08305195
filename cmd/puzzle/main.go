// SPDX-License-Identifier: MIT
// Package: puzzle/cmd/puzzle
//
// main.go — entry point of the puzzle binary.

// The puzzle command solves sliding-tile puzzles optimally and compares
// heuristics on generated scrambles.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
