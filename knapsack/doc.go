// Package knapsack solves the 0/1 knapsack problem with bottom-up dynamic
// programming over capacity × items.
//
// 🚀 What is the 0/1 knapsack problem?
//
//	Given a capacity W and n items, each with a value and a weight, pick a
//	subset whose total weight does not exceed W and whose total value is as
//	large as possible. Every item is either taken whole or left out.
//
// ✨ Key features:
//   - two-column mode: O(W) memory, the previous and current DP column only
//   - full-table mode: the classic (W+1)×(n+1) grid, O(n·W) memory
//   - input hardening: negative capacity, weights and values are rejected
//     before the kernel runs
//   - stateless: every call owns fresh scratch space
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapsack/knapsack"
//
//	items := []knapsack.Item{{Value: 60, Weight: 10}, {Value: 100, Weight: 20}}
//	best, err := knapsack.Solve(50, items, nil) // nil ⇒ DefaultOptions()
//
// Performance:
//
//   - Time:   O(n·W)
//   - Memory: O(W) (TwoColumns) or O(n·W) (FullTable)
//
// The running time is pseudo-polynomial: it grows with the numeric value of
// W, not with the number of bits needed to write it down.
package knapsack
