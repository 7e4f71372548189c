package graph

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/auroshis/skillgraph/log"
	"github.com/auroshis/skillgraph/store"
)

// checkpointWriter persists a snapshot after each node completes.
// Persistence failures are logged and swallowed: checkpointing is an
// observability aid, not a correctness requirement of the run.
type checkpointWriter struct {
	cs      store.CheckpointStore
	runID   string
	version int
}

func (r *Runnable) newCheckpointWriter() *checkpointWriter {
	if r.checkpoints == nil {
		return nil
	}
	return &checkpointWriter{
		cs:    r.checkpoints,
		runID: uuid.New().String(),
	}
}

func (w *checkpointWriter) save(ctx context.Context, nodeName string, snapshot State) {
	if w == nil {
		return
	}
	w.version++
	cp := &store.Checkpoint{
		ID:        uuid.New().String(),
		RunID:     w.runID,
		NodeName:  nodeName,
		State:     snapshot,
		Timestamp: time.Now(),
		Version:   w.version,
	}
	if err := w.cs.Save(ctx, cp); err != nil {
		log.Warn("checkpoint after node %s not saved: %v", nodeName, err)
	}
}
