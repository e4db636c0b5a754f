// SPDX-License-Identifier: MIT
// Package: knapsack
//
// validate.go — input checks run before the DP kernel.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input; only sentinel errors from errors.go.
//   - O(n) worst case, no allocations.

package knapsack

import (
	"fmt"
	"math"
)

// MaxScratchCells bounds the int cells one Solve call may allocate:
// 2·(W+1) for TwoColumns, (n+1)·(W+1) for FullTable. 1<<27 cells is 1 GiB
// of 64-bit ints.
const MaxScratchCells = 1 << 27

// validateAll verifies options, capacity and items in that order and returns
// the first violation found.
//
// Complexity: O(n).
func validateAll(capacity int, items []Item, opts Options) error {
	var err error

	// Stage 1: options-only sanity.
	if err = validateOptions(opts); err != nil {
		return err
	}

	// Stage 2: capacity.
	if capacity < 0 {
		return fmt.Errorf("capacity %d: %w", capacity, ErrNegativeCapacity)
	}

	// Stage 3: scratch size for the chosen layout.
	if err = validateScratch(capacity, len(items), opts.MemoryMode); err != nil {
		return err
	}

	// Stage 4: items, first offending index wins.
	var j int
	for j = range items {
		if items[j].Value < 0 || items[j].Weight < 0 {
			return fmt.Errorf("item %d (value=%d, weight=%d): %w",
				j+1, items[j].Value, items[j].Weight, ErrNegativeItem)
		}
	}

	return nil
}

// validateOptions accepts only the declared memory modes.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.MemoryMode {
	case TwoColumns, FullTable:
		return nil
	default:
		return fmt.Errorf("%s: %w", opts.MemoryMode, ErrUnknownMemoryMode)
	}
}

// validateScratch rejects capacities whose DP columns would overflow int or
// exceed MaxScratchCells. Assumes capacity ≥ 0 and a known mode.
//
// Complexity: O(1).
func validateScratch(capacity, n int, mode MemoryMode) error {
	if capacity >= math.MaxInt {
		return fmt.Errorf("capacity %d: %w", capacity, ErrCapacityTooLarge)
	}

	columns := 2
	if mode == FullTable {
		columns = n + 1
	}
	// (W+1)·columns > MaxScratchCells, rearranged to avoid overflow.
	if capacity+1 > MaxScratchCells/columns {
		return fmt.Errorf("capacity %d with %d column(s) needs more than %d cells (%s): %w",
			capacity, columns, MaxScratchCells, mode, ErrCapacityTooLarge)
	}

	return nil
}
