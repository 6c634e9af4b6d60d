// Package logging builds the zap loggers used by the CLI and the server.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	// Level is a zap level name ("debug", "info", ...). Empty means info.
	Level string
	// Development switches to the human-readable console encoder.
	Development bool
	// File receives the log output. Empty sends it to stderr unless
	// Discard is set.
	File string
	// Discard returns a no-op logger when File is empty. Interactive
	// programs set it so logs never land on the terminal they draw on.
	Discard bool
}

func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" && opts.Discard {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		l, err := zapcore.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}

	cfg := zap.NewProductionConfig()
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	out := "stderr"
	if opts.File != "" {
		out = opts.File
	}
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{out}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}
	return logger, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
