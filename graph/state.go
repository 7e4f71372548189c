package graph

import (
	"maps"
	"sync"
)

// State is the shared workflow state: a mapping from field name to value.
// Nodes receive a snapshot and return a partial State holding only the
// fields they produce.
type State map[string]any

// Clone returns an independent shallow copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	maps.Copy(out, s)
	return out
}

// String reads a string field. It returns a *StateKeyError if the field
// was never set, and an error if it holds a different type.
func (s State) String(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", &StateKeyError{Key: key}
	}
	str, ok := v.(string)
	if !ok {
		return "", &FieldTypeError{Key: key, Want: "string", Got: v}
	}
	return str, nil
}

// StringSlice reads a []string field. It returns a *StateKeyError if the
// field was never set. A []any holding only strings is accepted, since
// states loaded back from JSON checkpoints lose the concrete slice type.
func (s State) StringSlice(key string) ([]string, error) {
	v, ok := s[key]
	if !ok {
		return nil, &StateKeyError{Key: key}
	}
	switch vv := v.(type) {
	case []string:
		return vv, nil
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			str, ok := item.(string)
			if !ok {
				return nil, &FieldTypeError{Key: key, Want: "[]string", Got: v}
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, &FieldTypeError{Key: key, Want: "[]string", Got: v}
	}
}

// FieldTypeError is returned when a state field holds a value of an
// unexpected type.
type FieldTypeError struct {
	Key  string
	Want string
	Got  any
}

func (e *FieldTypeError) Error() string {
	return "state field \"" + e.Key + "\" is not a " + e.Want
}

// stateStore holds the shared state during a run. The scheduler is the only
// writer, but snapshots may be requested from executor goroutines, so access
// is guarded.
type stateStore struct {
	mu    sync.Mutex
	state State
}

func newStateStore(initial State) *stateStore {
	st := &stateStore{state: make(State, len(initial))}
	maps.Copy(st.state, initial)
	return st
}

// Merge overwrites or sets each field present in the partial update.
func (st *stateStore) Merge(update State) {
	if len(update) == 0 {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	maps.Copy(st.state, update)
}

// Snapshot returns an independent copy of the current state.
func (st *stateStore) Snapshot() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.Clone()
}
