// SPDX-License-Identifier: MIT
// Package: knapsack
//
// errors.go — sentinel errors for the solver.
//
// Error policy:
//   - Only sentinel variables are exported; callers branch with errors.Is.
//   - Call sites attach context (item index, mode value) via %w wrapping.
//   - The kernel itself never fails; every error is raised by validation.

package knapsack

import "errors"

var (
	// ErrNegativeCapacity indicates a capacity W < 0.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNegativeItem indicates an item with a negative value or weight.
	ErrNegativeItem = errors.New("knapsack: item value and weight must be non-negative")

	// ErrCapacityTooLarge indicates a capacity whose DP scratch space would
	// exceed MaxScratchCells for the selected memory mode.
	ErrCapacityTooLarge = errors.New("knapsack: capacity too large")

	// ErrUnknownMemoryMode indicates an Options.MemoryMode outside the declared set.
	ErrUnknownMemoryMode = errors.New("knapsack: unknown memory mode")
)
