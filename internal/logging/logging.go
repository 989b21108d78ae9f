// Package logging builds the zap logger used by the tendril binary.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iw2rmb/tendril/internal/config"
)

// New returns a logger configured by s and a function that flushes and closes
// its output. An empty s.File yields a no-op logger.
func New(s config.Log) (*zap.Logger, func(), error) {
	if s.File == "" {
		return zap.NewNop(), func() {}, nil
	}
	f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := NewWriter(s, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return log, func() {
		_ = log.Sync()
		_ = f.Close()
	}, nil
}

// NewWriter returns a logger writing to w.
func NewWriter(s config.Log, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(s.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch s.Format {
	case "console":
		enc = zapcore.NewConsoleEncoder(ec)
	case "json", "":
		enc = zapcore.NewJSONEncoder(ec)
	default:
		return nil, fmt.Errorf("log format %q", s.Format)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)), nil
}
