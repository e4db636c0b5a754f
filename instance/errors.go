// SPDX-License-Identifier: MIT
// Package: instance
//
// errors.go — sentinel errors for the parser, one per failure kind.
//
// Error policy:
//   - Callers MUST use errors.Is(err, ErrX) to branch on the kind.
//   - Parse sites wrap with %w and add line numbers or counts.

package instance

import "errors"

var (
	// ErrFileUnreadable indicates the input could not be opened or read.
	ErrFileUnreadable = errors.New("instance: file unreadable")

	// ErrMalformedHeader indicates a missing or non-integer capacity or item count.
	ErrMalformedHeader = errors.New("instance: malformed header line")

	// ErrMalformedItemLine indicates a data line with a missing or non-integer value or weight.
	ErrMalformedItemLine = errors.New("instance: malformed item line")

	// ErrItemCountMismatch indicates the number of item lines differs from the declared count.
	ErrItemCountMismatch = errors.New("instance: item count mismatch")
)
