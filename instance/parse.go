package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/knapsack"
)

// maxLineBytes caps a single input line; longer lines are malformed.
const maxLineBytes = 1 << 20

// Load opens path and parses it with Parse.
//
// Errors:
//   - ErrFileUnreadable    — open or read failure (wraps the *fs.PathError).
//   - ErrMalformedHeader   — first line lacks two integers.
//   - ErrMalformedItemLine — a data line lacks two integers.
//   - ErrItemCountMismatch — item lines ≠ declared count.
func Load(path string) (*knapsack.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Parse reads a knapsack instance from r.
//
// The first line must hold the capacity then the declared item count. Every
// later non-blank line must hold a value then a weight; items keep file order.
// The count check runs after the last line, so a short file and a long file
// both fail with ErrItemCountMismatch.
//
// Complexity: O(input size) time, O(n) memory for the items.
func Parse(r io.Reader) (*knapsack.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	// Header.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("line 1: %w: %w", scanErrKind(err, ErrMalformedHeader), err)
		}
		return nil, fmt.Errorf("line 1: empty input: %w", ErrMalformedHeader)
	}
	capacity, declared, err := parsePair(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("line 1: %w: %w", ErrMalformedHeader, err)
	}

	// Items.
	in := &knapsack.Instance{Capacity: capacity}
	var (
		lineNo = 1
		line   string
		v, w   int
	)
	for sc.Scan() {
		lineNo++
		line = sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, w, err = parsePair(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", lineNo, ErrMalformedItemLine, err)
		}
		in.Items = append(in.Items, knapsack.Item{Value: v, Weight: w})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w: %w", lineNo+1, scanErrKind(err, ErrMalformedItemLine), err)
	}

	if len(in.Items) != declared {
		return nil, fmt.Errorf("declared %d items, read %d: %w", declared, len(in.Items), ErrItemCountMismatch)
	}

	return in, nil
}

// parsePair returns the first two whitespace-separated integers on line.
// Tokens after the second are ignored.
func parsePair(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("want 2 integers, got %d field(s) in %q", len(fields), line)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

// scanErrKind classifies a scanner failure: an over-long line is a content
// problem reported as lineKind, anything else is a read failure.
func scanErrKind(err, lineKind error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return lineKind
	}

	return ErrFileUnreadable
}
