// Package store defines checkpoint persistence for workflow runs.
//
// A checkpoint is the merged workflow state captured right after a node
// completed. Backends exist for memory, SQLite, Redis and PostgreSQL; all
// implement CheckpointStore.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a checkpoint ID does not exist in the store.
var ErrNotFound = errors.New("checkpoint not found")

// Checkpoint is a saved workflow state snapshot taken after one node
// reached a terminal outcome.
type Checkpoint struct {
	ID        string         `json:"id"`
	RunID     string         `json:"run_id"`
	NodeName  string         `json:"node_name"`
	State     map[string]any `json:"state"`
	Timestamp time.Time      `json:"timestamp"`
	Version   int            `json:"version"`
}

// CheckpointStore defines the interface for checkpoint persistence
type CheckpointStore interface {
	// Save stores a checkpoint
	Save(ctx context.Context, checkpoint *Checkpoint) error

	// Load retrieves a checkpoint by ID
	Load(ctx context.Context, checkpointID string) (*Checkpoint, error)

	// List returns all checkpoints for a given run, oldest first
	List(ctx context.Context, runID string) ([]*Checkpoint, error)

	// Delete removes a checkpoint
	Delete(ctx context.Context, checkpointID string) error

	// Clear removes all checkpoints for a run
	Clear(ctx context.Context, runID string) error
}
