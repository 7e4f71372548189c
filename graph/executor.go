package graph

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/auroshis/skillgraph/log"
)

// ExecutionResult is the per-node outcome of a single run: either a
// successful partial update, or a captured error with the node's declared
// fallback substituted. A node failure never aborts the workflow.
type ExecutionResult struct {
	// Node is the name of the executed node.
	Node string

	// Update is the partial state update to merge: the node's own output
	// on success, its declared fallback on failure.
	Update State

	// Err is the captured work-unit error, nil on success.
	Err error

	// FallbackUsed reports whether Update is the declared fallback.
	FallbackUsed bool

	// Duration is the wall-clock execution time of the work unit.
	Duration time.Duration
}

// executeNode invokes a node's work unit against a state snapshot and
// contains any failure. Errors and panics are logged and converted into the
// node's declared fallback so the rest of the workflow keeps going.
func (r *Runnable) executeNode(ctx context.Context, node Node, snapshot State) ExecutionResult {
	start := time.Now()

	update, err := runContained(ctx, node, snapshot)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("node %s failed after %v: %v", node.Name, elapsed, err)
		if r.debug {
			log.Debug("node %s failure stack:\n%s", node.Name, debug.Stack())
		}
		return ExecutionResult{
			Node:         node.Name,
			Update:       node.Fallback,
			Err:          err,
			FallbackUsed: true,
			Duration:     elapsed,
		}
	}

	log.Info("node %s completed in %v", node.Name, elapsed)
	return ExecutionResult{
		Node:     node.Name,
		Update:   update,
		Duration: elapsed,
	}
}

// runContained calls the work unit with panic recovery, so a panicking node
// is indistinguishable from one returning an error.
func runContained(ctx context.Context, node Node, snapshot State) (update State, err error) {
	defer func() {
		if p := recover(); p != nil {
			update = nil
			err = fmt.Errorf("panic in node %s: %v", node.Name, p)
		}
	}()
	return node.Run(ctx, snapshot)
}
