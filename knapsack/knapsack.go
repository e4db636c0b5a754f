package knapsack

// Solve — 0/1 knapsack by bottom-up dynamic programming
//
// Description:
//
//	Returns the maximum total value of any subset of items whose total
//	weight does not exceed capacity. Each item is used at most once.
//
// Algorithm Outline (TwoColumns):
//  1. Let W = capacity, n = len(items). Allocate best[0..W] and next[0..W].
//  2. Initialize best[w] = 0 for every w (no items considered yet).
//  3. For j = 1..n with (vj, wj) = items[j-1]:
//     For w = 0..W:
//     if w-wj ≥ 0: next[w] = max(best[w], best[w-wj] + vj)
//     else:        next[w] = best[w]
//     Swap best and next.
//  4. Result = best[W].
//
// The right-hand side only ever reads best, the column for items 1..j-1.
// Reading a column already updated with item j would let the item be
// packed twice (the unbounded variant).
//
// Memory Modes:
//   - TwoColumns — two slices of length W+1 swapped after every item. Memory: O(W).
//   - FullTable  — a (n+1)×(W+1) grid, column j for item prefix 1..j. Memory: O(n·W).
//
// Edge cases:
//   - n == 0 ⇒ 0.
//   - W == 0 ⇒ sum of values of zero-weight items (w-wj ≥ 0 always holds for wj == 0).
//
// Complexity:
//
//	Time   = O(n·W)
//	Memory = O(W) (TwoColumns) or O(n·W) (FullTable)
//
// Errors:
//   - ErrNegativeCapacity  — capacity < 0.
//   - ErrNegativeItem      — some item has a negative value or weight.
//   - ErrCapacityTooLarge  — the DP columns would exceed MaxScratchCells.
//   - ErrUnknownMemoryMode — opts.MemoryMode is not TwoColumns or FullTable.
func Solve(capacity int, items []Item, opts *Options) (int, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateAll(capacity, items, o); err != nil {
		return 0, err
	}

	if o.MemoryMode == FullTable {
		return solveFullTable(capacity, items), nil
	}

	return solveTwoColumns(capacity, items), nil
}

// solveTwoColumns runs the rolling-column recurrence. Inputs are validated.
func solveTwoColumns(capacity int, items []Item) int {
	best := make([]int, capacity+1)
	next := make([]int, capacity+1)

	var w int
	for _, it := range items {
		for w = 0; w <= capacity; w++ {
			if w-it.Weight >= 0 {
				next[w] = max(best[w], best[w-it.Weight]+it.Value)
			} else {
				next[w] = best[w]
			}
		}
		best, next = next, best
	}

	return best[capacity]
}

// solveFullTable fills the whole grid; table[j][w] is the best value using
// items 1..j with total weight ≤ w. Inputs are validated.
func solveFullTable(capacity int, items []Item) int {
	n := len(items)
	table := make([][]int, n+1)
	for j := range table {
		table[j] = make([]int, capacity+1)
	}

	var (
		j, w int
		it   Item
	)
	for j = 1; j <= n; j++ {
		it = items[j-1]
		for w = 0; w <= capacity; w++ {
			if w-it.Weight >= 0 {
				table[j][w] = max(table[j-1][w], table[j-1][w-it.Weight]+it.Value)
			} else {
				table[j][w] = table[j-1][w]
			}
		}
	}

	return table[n][capacity]
}
