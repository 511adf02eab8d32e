package cli

import (
	"context"
	"errors"
	"io"

	"github.com/phambaophuc/paddington/internal/config"
	"github.com/phambaophuc/paddington/internal/logging"
	"github.com/phambaophuc/paddington/internal/models"
	"github.com/phambaophuc/paddington/internal/processor"
	"go.uber.org/zap"
)

// Runner wires option parsing, logging and the processing stage. Zero-value
// fields fall back to the production implementations.
type Runner struct {
	Stdout       io.Writer
	LogOutput    []string
	LoadConfig   func() (*config.Config, error)
	Install      func(*zap.Logger) error
	NewProcessor func(out io.Writer, logger *zap.Logger) processor.Processor
}

func (r *Runner) defaults() {
	if r.Stdout == nil {
		r.Stdout = io.Discard
	}
	if r.LoadConfig == nil {
		r.LoadConfig = config.Load
	}
	if r.Install == nil {
		r.Install = logging.Install
	}
	if r.NewProcessor == nil {
		r.NewProcessor = func(out io.Writer, logger *zap.Logger) processor.Processor {
			return processor.NewDescriber(out, logger)
		}
	}
}

// Init parses args and installs the process-wide logger.
func (r *Runner) Init(args []string) (models.CommandOptions, *zap.Logger, error) {
	r.defaults()

	cfg, err := r.LoadConfig()
	if err != nil {
		return models.CommandOptions{}, nil, failure("failed to load configuration: %v", err)
	}

	opts, err := Parse(args, r.Stdout, cfg)
	if err != nil {
		return models.CommandOptions{}, nil, err
	}

	logger, err := logging.New(logging.Options{
		Quiet:       opts.Quiet,
		Verbosity:   opts.Verbose,
		Encoding:    cfg.Log.Encoding,
		Timestamps:  cfg.Log.Timestamps,
		OutputPaths: r.LogOutput,
	})
	if err != nil {
		return models.CommandOptions{}, nil, failure("failed to initialize logging: %v", err)
	}
	if err := r.Install(logger); err != nil {
		return models.CommandOptions{}, nil, failure("failed to initialize logging: %v", err)
	}

	logger.Debug("Configuration loaded",
		zap.Bool("env_file", cfg.EnvFileLoaded),
		zap.String("log_encoding", cfg.Log.Encoding),
	)
	logging.Trace(logger, opts.Verbose, "Options initialized", zap.Stringer("options", opts))

	return opts, logger, nil
}

// Run initializes the program and hands a job to the processing stage. The
// returned error is nil, ErrHelp, or an *ExitError.
func (r *Runner) Run(ctx context.Context, args []string) error {
	opts, logger, err := r.Init(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	job := models.NewJob(opts)
	job.Status = models.StatusProcessing

	err = r.NewProcessor(r.Stdout, logger).Process(ctx, job)
	switch {
	case err == nil:
		job.Status = models.StatusCompleted
	case errors.Is(err, processor.ErrNotImplemented):
		job.Status = models.StatusCompleted
		logger.Warn("Image was not modified", zap.String("id", job.ID), zap.Error(err))
	default:
		job.Status = models.StatusFailed
		job.Error = err.Error()
		logger.Error("Processing failed", zap.String("id", job.ID), zap.Error(err))
		return failure("processing failed: %v", err)
	}

	logger.Info("Job finished", zap.String("id", job.ID), zap.String("status", job.Status))
	return nil
}
