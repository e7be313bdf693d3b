// Package logging exposes a simple zap logger, with log levels
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LevelDebug logs every step and entry
	LevelDebug = "debug"

	// LevelInfo logs step boundaries and outcomes
	LevelInfo = "info"

	// LevelWarn logs entries that could not be processed
	LevelWarn = "warn"

	// LevelError logs conditions which abort the run
	LevelError = "error"

	// LevelNone disables logging
	LevelNone = "none"
)

// Levels lists every accepted level name.
var Levels = []string{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelNone}

// IsValidLevel reports whether the level name is understood by GetLogger.
func IsValidLevel(level string) bool {
	for _, known := range Levels {
		if level == known {
			return true
		}
	}
	return false
}

// GetLogger returns a zap logger writing JSON lines to w with the specified level
func GetLogger(level string, w io.Writer) (*zap.Logger, error) {
	if level == LevelNone {
		return zap.NewNop(), nil
	}
	if !IsValidLevel(level) {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}
