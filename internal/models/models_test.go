package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatioString(t *testing.T) {
	assert.Equal(t, "16:9", Ratio{Width: 16, Height: 9}.String())
	assert.Equal(t, "0:0", Ratio{}.String())
	assert.Equal(t, "65535:1", Ratio{Width: 65535, Height: 1}.String())
}

func TestCommandOptionsMode(t *testing.T) {
	assert.Equal(t, ModePad, CommandOptions{}.Mode())
	assert.Equal(t, ModeCrop, CommandOptions{Crop: true}.Mode())
}

func TestNewJob(t *testing.T) {
	opts := CommandOptions{
		Ratio:  Ratio{Width: 4, Height: 3},
		Input:  "in.png",
		Output: "out.png",
		Crop:   true,
	}

	job := NewJob(opts)

	_, err := uuid.Parse(job.ID)
	require.NoError(t, err)
	assert.Equal(t, opts, job.Options)
	assert.Equal(t, ModeCrop, job.Mode)
	assert.Equal(t, StatusPending, job.Status)
	assert.False(t, job.CreatedAt.IsZero())

	assert.NotEqual(t, job.ID, NewJob(opts).ID)
}
