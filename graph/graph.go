package graph

import (
	"context"
	"fmt"
	"strings"
)

// START is a special marker used as the source of edges whose target nodes
// are runnable immediately, with no predecessors.
const START = "START"

// END is a special marker used as the target of edges from terminal nodes.
const END = "END"

// NodeFunc is the unit of work attached to a node. It receives a snapshot of
// the current workflow state and returns a partial update to merge back.
// Blocking work (LLM generation, tool calls) should honor ctx.
type NodeFunc func(ctx context.Context, state State) (State, error)

// Node represents a node in the workflow graph.
type Node struct {
	// Name is the unique identifier for the node.
	Name string

	// Description describes the functionality of the node.
	Description string

	// Run is the work unit associated with the node.
	Run NodeFunc

	// Fallback is the partial update substituted when Run fails.
	// It is merged verbatim, so it should cover the keys the node
	// normally produces.
	Fallback State
}

// Edge represents a directed edge in the workflow graph.
type Edge struct {
	// From is the name of the node from which the edge originates,
	// or the START marker.
	From string

	// To is the name of the node to which the edge points,
	// or the END marker.
	To string
}

// GraphValidationError reports a structural problem found at compile time:
// a duplicate node name, an edge referencing an undeclared node, or a cycle.
// Execution never starts on a graph that fails validation.
type GraphValidationError struct {
	// Problems lists every defect found, one message per defect.
	Problems []string
}

func (e *GraphValidationError) Error() string {
	return fmt.Sprintf("invalid graph: %s", strings.Join(e.Problems, "; "))
}

// StateKeyError is returned when a node reads a field that no completed
// predecessor (nor the initial state) ever produced. This is a wiring
// defect, not a recoverable runtime condition.
type StateKeyError struct {
	// Key is the missing field name.
	Key string
}

func (e *StateKeyError) Error() string {
	return fmt.Sprintf("state field %q has not been produced", e.Key)
}
