// Package cli is the command-line glue: argument check, parse, solve, print.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/internal/logging"
	"github.com/katalvlaran/knapsack/knapsack"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrInvalidArguments indicates a positional argument count other than one.
var ErrInvalidArguments = errors.New("cli: invalid arguments")

// Options holds the parsed flag values.
type Options struct {
	LogLevel   string
	MemoryMode string
}

// Run executes the program with args (without the program name) and returns
// the process exit code. The result line goes to stdout; usage and
// diagnostics go to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	const (
		expectedArgs = 1
		pathArg      = 0
	)

	var opts Options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "%v\n", err)
		printUsage(fs, stderr)
		return ExitUsage
	}
	if fs.NArg() != expectedArgs {
		fmt.Fprintf(stderr, "%v: expected %d input file, got %d argument(s)\n",
			ErrInvalidArguments, expectedArgs, fs.NArg())
		printUsage(fs, stderr)
		return ExitUsage
	}

	log, err := logging.New(opts.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "--log-level: %v\n", err)
		return ExitUsage
	}
	defer func() { _ = log.Sync() }()

	mode, err := knapsack.ParseMemoryMode(opts.MemoryMode)
	if err != nil {
		log.Error("invalid --memory-mode", zap.Error(err))
		return ExitUsage
	}

	path := fs.Arg(pathArg)
	in, err := instance.Load(path)
	if err != nil {
		log.Error("failed to read instance", zap.String("path", path), zap.Error(err))
		return ExitFailure
	}
	log.Debug("instance loaded",
		zap.String("path", path),
		zap.Int("capacity", in.Capacity),
		zap.Int("items", len(in.Items)))

	best, err := in.Solve(&knapsack.Options{MemoryMode: mode})
	if err != nil {
		log.Error("invalid instance", zap.String("path", path), zap.Error(err))
		return ExitFailure
	}
	log.Debug("solved", zap.Stringer("mode", mode), zap.Int("value", best))

	fmt.Fprintf(stdout, "Knapsack Value: %d\n", best)

	return ExitOK
}

// newFlagSet binds the command's flags to opts.
func newFlagSet(opts *Options, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("knapsack", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "diagnostic level: debug, info, warn or error")
	fs.StringVar(&opts.MemoryMode, "memory-mode", knapsack.TwoColumns.String(),
		"DP table layout: two-columns or full-table")
	fs.Usage = func() { printUsage(fs, stderr) }

	return fs
}

func printUsage(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "usage: knapsack [flags] <input-file>\n\nflags:\n%s", fs.FlagUsages())
}
