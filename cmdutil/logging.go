// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LoggingConfig represents a logging configuration, typically read from
// CAL_LOG_ prefixed environment variables.
type LoggingConfig struct {
	Level      int    `env:"LEVEL" envDefault:"0"`
	File       string `env:"FILE"`
	Format     string `env:"FORMAT" envDefault:"text"`
	SourceCode bool   `env:"SOURCE_CODE"`
}

type leveler struct {
	level int
}

func (l leveler) Level() slog.Level {
	switch {
	case l.level <= 0:
		return slog.LevelError
	case l.level == 1:
		return slog.LevelWarn
	case l.level == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Logger represents a logger with an optional closer for the log file
// if one is specified.
type Logger struct {
	*slog.Logger
	f io.Closer
}

func (l *Logger) Close() error {
	return l.f.Close()
}

// LogBuildInfo logs build information using the logger.
func (l *Logger) LogBuildInfo() {
	LogBuildInfo(l.Logger)
}

type noopCloser struct{}

func (noopCloser) Close() error {
	return nil
}

// NewLogger creates a new logger based on the configuration. Logs are
// written to stderr unless File is set, a File of - refers to stdout.
func (c LoggingConfig) NewLogger() (*Logger, error) {
	opts := &slog.HandlerOptions{
		AddSource: c.SourceCode,
		Level:     leveler{level: c.Level},
	}
	var handler slog.Handler
	var closer io.Closer
	var out io.Writer
	switch c.File {
	case "":
		out = os.Stderr
		closer = &noopCloser{}
	case "-":
		out = os.Stdout
		closer = &noopCloser{}
	default:
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", c.File, err)
		}
		closer = f
		out = f
	}
	switch c.Format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text", "":
		handler = slog.NewTextHandler(out, opts)
	default:
		if err := closer.Close(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}
	return &Logger{Logger: slog.New(handler), f: closer}, nil
}

// LogBuildInfo logs build information using the provided logger.
func LogBuildInfo(logger *slog.Logger) {
	bi, ok := ReadBuildInfo()
	if !ok {
		logger.Warn("failed to determine version information")
		return
	}
	logger.Info("build info",
		"go.version", bi.GoVersion,
		"module.version", bi.Version,
		"commit", bi.Revision,
		"build.date", bi.LastCommit,
		"dirty", bi.Dirty)
}
