package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID        string         `json:"id"`
	Options   CommandOptions `json:"options"`
	Mode      Mode           `json:"mode"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	Error     string         `json:"error,omitempty"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// NewJob wraps parsed options into a pending job with a fresh ID.
func NewJob(opts CommandOptions) Job {
	return Job{
		ID:        uuid.New().String(),
		Options:   opts,
		Mode:      opts.Mode(),
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
}
