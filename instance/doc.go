// Package instance reads 0/1 knapsack instances from line-oriented text.
//
// Format (whitespace-separated integers):
//
//	<capacity> <item_count>
//	<value_1> <weight_1>
//	...
//	<value_n> <weight_n>
//
// Extra tokens after the first two on any line are ignored. Blank data lines
// are skipped. The declared item count is checked only after every line has
// been read, so both too few and too many lines are reported the same way.
//
// Errors are sentinels from errors.go; branch with errors.Is.
package instance
