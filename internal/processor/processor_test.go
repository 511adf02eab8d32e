package processor

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/phambaophuc/paddington/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testJob(opts models.CommandOptions) models.Job {
	if opts.Input == "" {
		opts.Input = "in.png"
	}
	if opts.Output == "" {
		opts.Output = "out.png"
	}
	return models.NewJob(opts)
}

func TestDescriberProcess(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	out := &bytes.Buffer{}
	d := NewDescriber(out, zap.New(core))

	job := testJob(models.CommandOptions{Ratio: models.Ratio{Width: 16, Height: 9}, Crop: true})
	err := d.Process(context.Background(), job)

	require.ErrorIs(t, err, ErrNotImplemented)
	assert.Contains(t, err.Error(), "crop to 16:9")

	assert.Contains(t, out.String(), "Flags: CommandOptions{ratio: 16:9")
	assert.Contains(t, out.String(), `input: "in.png"`)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, job.ID, fields["id"])
	assert.Equal(t, "crop", fields["mode"])
	assert.Equal(t, "16:9", fields["ratio"])
	assert.Equal(t, "out.png", fields["output"])
}

func TestDescriberWarnsOnNonImagePaths(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	d := NewDescriber(&bytes.Buffer{}, zap.New(core))

	job := testJob(models.CommandOptions{Input: "photo.jpg", Output: "notes.txt"})
	require.ErrorIs(t, d.Process(context.Background(), job), ErrNotImplemented)

	warnings := logs.FilterMessage("Path does not have an image extension").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "notes.txt", warnings[0].ContextMap()["path"])
}

func TestDescriberQuiet(t *testing.T) {
	out := &bytes.Buffer{}
	d := NewDescriber(out, nil)

	err := d.Process(context.Background(), testJob(models.CommandOptions{Quiet: true}))

	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.Contains(t, err.Error(), "pad to 0:0")
	assert.Empty(t, out.String())
}

func TestDescriberCanceled(t *testing.T) {
	out := &bytes.Buffer{}
	d := NewDescriber(out, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, testJob(models.CommandOptions{}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDescriberWriteFailure(t *testing.T) {
	d := NewDescriber(failingWriter{}, nil)

	err := d.Process(context.Background(), testJob(models.CommandOptions{}))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotImplemented)
	assert.Contains(t, err.Error(), "disk full")
}
