// Package logging builds the program-wide zap logger from the -v/-q flags.
package logging

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const Name = "paddington"

// TraceVerbosity is the first -v count at which Trace lines are emitted.
const TraceVerbosity = 4

var ErrAlreadyInitialized = errors.New("logger already initialized")

type Options struct {
	Quiet      bool
	Verbosity  int
	Encoding   string
	Timestamps bool
	// OutputPaths defaults to stderr.
	OutputPaths []string
}

// Level maps a -v count onto a zap level: none is error, -v warn, -vv info,
// -vvv and beyond debug.
func Level(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.ErrorLevel
	case verbosity == 1:
		return zapcore.WarnLevel
	case verbosity == 2:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New builds a logger named after the program. Quiet yields a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	if opts.Quiet {
		return zap.NewNop(), nil
	}

	encoding := opts.Encoding
	if encoding == "" {
		encoding = "console"
	}
	outputs := opts.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	if encoding == "json" {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	if !opts.Timestamps {
		encoderCfg.TimeKey = zapcore.OmitKey
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(Level(opts.Verbosity)),
		Development:       false,
		DisableCaller:     opts.Verbosity < TraceVerbosity,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.Named(Name), nil
}

// Trace logs at debug level with trace=true, but only when verbosity is at
// least TraceVerbosity.
func Trace(logger *zap.Logger, verbosity int, msg string, fields ...zap.Field) {
	if verbosity < TraceVerbosity {
		return
	}
	logger.Debug(msg, append(fields, zap.Bool("trace", true))...)
}

var installed struct {
	mu   sync.Mutex
	done bool
}

// Install makes logger the process-wide zap logger. It succeeds once per
// process.
func Install(logger *zap.Logger) error {
	installed.mu.Lock()
	defer installed.mu.Unlock()

	if installed.done {
		return ErrAlreadyInitialized
	}
	zap.ReplaceGlobals(logger)
	installed.done = true
	return nil
}
