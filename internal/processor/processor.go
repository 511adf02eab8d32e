// Package processor defines the stage that receives a parsed job. The pixel
// transformation itself is not implemented.
package processor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/phambaophuc/paddington/internal/models"
	"github.com/phambaophuc/paddington/pkg/utils"
	"go.uber.org/zap"
)

var ErrNotImplemented = errors.New("image transformation not implemented")

type Processor interface {
	Process(ctx context.Context, job models.Job) error
}

// Describer logs the job and echoes its options to out. It always ends with
// ErrNotImplemented.
type Describer struct {
	out    io.Writer
	logger *zap.Logger
}

func NewDescriber(out io.Writer, logger *zap.Logger) *Describer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Describer{
		out:    out,
		logger: logger,
	}
}

func (d *Describer) Process(ctx context.Context, job models.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.logger.Info("Processing job",
		zap.String("id", job.ID),
		zap.String("mode", string(job.Mode)),
		zap.Stringer("ratio", job.Options.Ratio),
		zap.String("input", job.Options.Input),
		zap.String("output", job.Options.Output),
	)

	for _, path := range []string{job.Options.Input, job.Options.Output} {
		if !utils.LooksLikeImage(path) {
			d.logger.Warn("Path does not have an image extension", zap.String("id", job.ID), zap.String("path", path))
		}
	}

	if !job.Options.Quiet {
		if _, err := fmt.Fprintf(d.out, "Flags: %s\n", job.Options); err != nil {
			return fmt.Errorf("failed to write options: %w", err)
		}
	}

	return fmt.Errorf("%s to %s: %w", job.Mode, job.Options.Ratio, ErrNotImplemented)
}
