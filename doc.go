// Package knapsack is the module root for a 0/1 knapsack solver and its
// command-line front end.
//
// Under the hood, everything is organized under these packages:
//
//	knapsack/         — Item, Instance, Options and the DP kernel (Solve)
//	instance/         — line-oriented text parser (Load, Parse)
//	internal/cli/     — flag handling and the parse → solve → print pipeline
//	internal/logging/ — zap logger for diagnostics
//	cmd/knapsack/     — the executable
//
// Quick example, the classic worked instance:
//
//	$ cat in.txt
//	50 3
//	60 10
//	100 20
//	120 30
//	$ knapsack in.txt
//	Knapsack Value: 220
//
//	go install github.com/katalvlaran/knapsack/cmd/knapsack@latest
package knapsack
