// Package logging builds the zap logger used for CLI diagnostics.
//
// Library packages never log; they return sentinel errors and the CLI
// reports them through the logger built here.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel indicates a --log-level value outside debug|info|warn|error.
var ErrUnknownLevel = errors.New("logging: unknown level")

// New returns a console logger writing to w at the given level.
//
// Timestamps and caller annotations are omitted so diagnostics are stable
// across runs.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)

	return zap.New(core), nil
}

// ParseLevel converts a level name to a zap level.
//
// Level values: "debug", "info", "warn" (or "warning"), "error".
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%q: %w", level, ErrUnknownLevel)
	}
}
