package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options describes one process's log sinks.
type Options struct {
	Path    string
	Profile string
	// Level applies to the JSON file. Empty means info.
	Level string
	// Console tees warnings and errors to stderr. The TUI owns the terminal
	// and leaves it off.
	Console bool
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// New builds a logger that appends JSON lines to opts.Path. Every entry
// carries the profile name and the process id.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0700); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	enc := encoderConfig()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(file), level)
	if opts.Console {
		stderr := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), zapcore.WarnLevel)
		core = zapcore.NewTee(core, stderr)
	}

	return zap.New(core,
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
		zap.Fields(zap.String("profile", opts.Profile), zap.Int("pid", os.Getpid())),
	), nil
}
