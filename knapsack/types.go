package knapsack

import "fmt"

// Item is a single 0/1 item: it is either packed whole or left out.
type Item struct {
	Value  int
	Weight int
}

// Instance is a parsed knapsack problem.
//
// Invariant (enforced by the parser, not here): len(Items) equals the item
// count declared in the input header.
type Instance struct {
	Capacity int
	Items    []Item
}

// Solve runs Solve on the instance's capacity and items.
func (in *Instance) Solve(opts *Options) (int, error) {
	return Solve(in.Capacity, in.Items, opts)
}

// MemoryMode controls how Solve stores its DP table.
//
//   - TwoColumns — keep only the previous and the current column, indexed by
//     capacity. Memory: O(W).
//
//   - FullTable — keep the whole (W+1)×(n+1) grid. Memory: O(n·W).
//     Same result as TwoColumns; kept for cross-checking and for callers who
//     want the classic textbook layout.
type MemoryMode int

const (
	// TwoColumns mode: rolling previous/current columns, O(W) memory.
	TwoColumns MemoryMode = iota

	// FullTable mode: every column retained, O(n·W) memory.
	FullTable
)

// String returns the flag spelling of the mode.
func (m MemoryMode) String() string {
	switch m {
	case TwoColumns:
		return "two-columns"
	case FullTable:
		return "full-table"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// ParseMemoryMode maps a flag spelling back to a MemoryMode.
// Unknown names yield ErrUnknownMemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch s {
	case "two-columns", "":
		return TwoColumns, nil
	case "full-table":
		return FullTable, nil
	default:
		return 0, fmt.Errorf("ParseMemoryMode(%q): %w", s, ErrUnknownMemoryMode)
	}
}

// Options configures Solve.
//
// Fields:
//   - MemoryMode — TwoColumns (default) or FullTable.
type Options struct {
	MemoryMode MemoryMode
}

// DefaultOptions returns the options Solve uses when opts == nil.
func DefaultOptions() Options {
	return Options{MemoryMode: TwoColumns}
}
