// Package memory provides an in-memory CheckpointStore, the default backend
// and the one used in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/auroshis/skillgraph/store"
)

// MemoryCheckpointStore keeps checkpoints in a map guarded by a mutex.
// Contents are lost when the process exits.
type MemoryCheckpointStore struct {
	mu          sync.RWMutex
	checkpoints map[string]*store.Checkpoint
}

var _ store.CheckpointStore = (*MemoryCheckpointStore)(nil)

// NewMemoryCheckpointStore creates an empty in-memory store.
func NewMemoryCheckpointStore() *MemoryCheckpointStore {
	return &MemoryCheckpointStore{
		checkpoints: make(map[string]*store.Checkpoint),
	}
}

// Save stores a checkpoint, overwriting any previous one with the same ID.
func (s *MemoryCheckpointStore) Save(_ context.Context, checkpoint *store.Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *checkpoint
	s.checkpoints[cp.ID] = &cp
	return nil
}

// Load retrieves a checkpoint by ID.
func (s *MemoryCheckpointStore) Load(_ context.Context, checkpointID string) (*store.Checkpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp, ok := s.checkpoints[checkpointID]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *cp
	return &out, nil
}

// List returns all checkpoints for a run ordered by version.
func (s *MemoryCheckpointStore) List(_ context.Context, runID string) ([]*store.Checkpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*store.Checkpoint
	for _, cp := range s.checkpoints {
		if cp.RunID == runID {
			c := *cp
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// RunIDs returns the distinct run IDs present in the store, sorted.
// Mostly useful in tests and debugging tools.
func (s *MemoryCheckpointStore) RunIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	var ids []string
	for _, cp := range s.checkpoints {
		if !seen[cp.RunID] {
			seen[cp.RunID] = true
			ids = append(ids, cp.RunID)
		}
	}
	sort.Strings(ids)
	return ids
}

// Delete removes a checkpoint.
func (s *MemoryCheckpointStore) Delete(_ context.Context, checkpointID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.checkpoints, checkpointID)
	return nil
}

// Clear removes all checkpoints for a run.
func (s *MemoryCheckpointStore) Clear(_ context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, cp := range s.checkpoints {
		if cp.RunID == runID {
			delete(s.checkpoints, id)
		}
	}
	return nil
}
