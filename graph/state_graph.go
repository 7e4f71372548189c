package graph

import (
	"fmt"

	"github.com/auroshis/skillgraph/store"
)

// StateGraph is a declarative workflow graph: named nodes plus directed
// edges, including fan-out from START and fan-in to AND-join nodes.
// Build it with AddNode/AddEdge, then Compile it into a Runnable.
type StateGraph struct {
	// nodes is a map of node names to their corresponding Node objects
	nodes map[string]Node

	// order records node insertion order so compiled artifacts
	// (scheduling seeds, diagrams) are deterministic
	order []string

	// edges is a slice of Edge objects representing the connections between nodes
	edges []Edge

	// duplicates records node names declared more than once, reported at Compile time
	duplicates []string
}

// NewStateGraph creates a new empty StateGraph.
func NewStateGraph() *StateGraph {
	return &StateGraph{
		nodes: make(map[string]Node),
	}
}

// AddNode adds a node with the given name, description and work unit.
// fallback is the partial update substituted if the work unit fails; nil
// means the node contributes nothing on failure.
func (g *StateGraph) AddNode(name, description string, fn NodeFunc, fallback State) {
	if _, exists := g.nodes[name]; exists {
		g.duplicates = append(g.duplicates, name)
		return
	}
	g.nodes[name] = Node{
		Name:        name,
		Description: description,
		Run:         fn,
		Fallback:    fallback,
	}
	g.order = append(g.order, name)
}

// AddEdge adds a directed edge between the "from" and "to" nodes.
// Use START as from for entry nodes and END as to for terminal nodes.
func (g *StateGraph) AddEdge(from, to string) {
	g.edges = append(g.edges, Edge{From: from, To: to})
}

// Compile validates the graph and returns a Runnable.
// It fails with a *GraphValidationError if any node name was declared twice,
// an edge references an undeclared node, or the nodes form a cycle.
func (g *StateGraph) Compile() (*Runnable, error) {
	var problems []string

	for _, name := range g.duplicates {
		problems = append(problems, fmt.Sprintf("duplicate node name %q", name))
	}

	for _, e := range g.edges {
		if e.From != START {
			if _, ok := g.nodes[e.From]; !ok {
				problems = append(problems, fmt.Sprintf("edge %s -> %s references undeclared node %q", e.From, e.To, e.From))
			}
		}
		if e.To != END {
			if _, ok := g.nodes[e.To]; !ok {
				problems = append(problems, fmt.Sprintf("edge %s -> %s references undeclared node %q", e.From, e.To, e.To))
			}
		}
		if e.From == START && e.To == END {
			problems = append(problems, "edge START -> END connects no nodes")
		}
	}

	if len(problems) == 0 {
		if cycle := g.findCycle(); len(cycle) > 0 {
			problems = append(problems, fmt.Sprintf("cycle detected: %v", cycle))
		}
	}

	if len(problems) > 0 {
		return nil, &GraphValidationError{Problems: problems}
	}

	return &Runnable{graph: g}, nil
}

// predecessors returns, per node, the names of its predecessor nodes.
// START edges and END targets are excluded; duplicate parallel edges
// between the same pair count once.
func (g *StateGraph) predecessors() map[string][]string {
	preds := make(map[string][]string, len(g.nodes))
	seen := make(map[Edge]bool, len(g.edges))
	for _, e := range g.edges {
		if e.From == START || e.To == END || seen[e] {
			continue
		}
		seen[e] = true
		preds[e.To] = append(preds[e.To], e.From)
	}
	return preds
}

// successors returns, per node, the names of its successor nodes.
func (g *StateGraph) successors() map[string][]string {
	succs := make(map[string][]string, len(g.nodes))
	seen := make(map[Edge]bool, len(g.edges))
	for _, e := range g.edges {
		if e.From == START || e.To == END || seen[e] {
			continue
		}
		seen[e] = true
		succs[e.From] = append(succs[e.From], e.To)
	}
	return succs
}

// findCycle runs a Kahn elimination over the node-to-node edges and returns
// the names left standing when no in-degree ever reaches zero again.
func (g *StateGraph) findCycle() []string {
	indegree := make(map[string]int, len(g.nodes))
	for _, name := range g.order {
		indegree[name] = 0
	}
	succs := g.successors()
	for _, targets := range succs {
		for _, to := range targets {
			indegree[to]++
		}
	}

	var queue []string
	for _, name := range g.order {
		if indegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	removed := 0
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		removed++
		for _, next := range succs[name] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if removed == len(g.nodes) {
		return nil
	}
	var cycle []string
	for _, name := range g.order {
		if indegree[name] > 0 {
			cycle = append(cycle, name)
		}
	}
	return cycle
}

// Runnable is a compiled workflow graph ready to be invoked.
type Runnable struct {
	graph *StateGraph

	// debug enables stack traces in failure logs
	debug bool

	// checkpoints, when set, receives a state snapshot after each node completes
	checkpoints store.CheckpointStore
}

// SetDebug toggles stack-trace logging for contained node failures.
func (r *Runnable) SetDebug(debug bool) {
	r.debug = debug
}

// SetCheckpointStore enables per-node state snapshots. Pass nil to disable.
func (r *Runnable) SetCheckpointStore(cs store.CheckpointStore) {
	r.checkpoints = cs
}
