// Command knapsack reads a 0/1 knapsack instance from a file and prints the
// maximum achievable value.
//
// Usage:
//
//	knapsack [--log-level=warn] [--memory-mode=two-columns] <input-file>
//
// Input format:
//
//	<capacity> <item_count>
//	<value_1> <weight_1>
//	...
package main

import (
	"os"

	"github.com/katalvlaran/knapsack/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
