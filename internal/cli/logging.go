// SPDX-License-Identifier: MIT
// File: logging.go
// Role: zap logger construction for the ugraph command.

package cli

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console-encoded zap logger at the given level writing to w.
// Level names follow zap ("debug", "info", "warn", "error").
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var ws zapcore.WriteSyncer
	switch t := w.(type) {
	case *os.File:
		ws = zapcore.Lock(t)
	case zapcore.WriteSyncer:
		ws = t
	default:
		ws = zapcore.AddSync(w)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, lvl)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Named("ugraph"), nil
}
