package graph

import (
	"context"
	"sync"
)

// Invoke executes the compiled graph with the given initial state and
// returns the final state snapshot.
//
// Scheduling is by dependency count: every node whose predecessors have all
// reached a terminal outcome (success or fallback) is dispatched
// concurrently, each receiving a fresh snapshot of the merged state. A node
// with multiple predecessors is an AND-join: it observes every
// predecessor's update (or fallback) merged before it runs. Merges happen
// only in this loop, one at a time, so concurrent completions never lose
// updates. The run ends when every node has completed; node failures are
// contained by the executor and never abort the run.
// The returned error is reserved for future scheduler-level failures;
// structural problems are caught earlier, at Compile time.
func (r *Runnable) Invoke(ctx context.Context, initialState State) (State, error) {
	_, finalState := r.run(ctx, initialState)
	return finalState, nil
}

// InvokeWithResults is Invoke plus the per-node ExecutionResults, keyed by
// node name, for callers that need to know which nodes fell back.
func (r *Runnable) InvokeWithResults(ctx context.Context, initialState State) (State, map[string]ExecutionResult) {
	results, finalState := r.run(ctx, initialState)
	return finalState, results
}

func (r *Runnable) run(ctx context.Context, initialState State) (map[string]ExecutionResult, State) {
	st := newStateStore(initialState)

	nodes := r.graph.nodes
	succs := r.graph.successors()
	preds := r.graph.predecessors()

	indegree := make(map[string]int, len(nodes))
	for _, name := range r.graph.order {
		indegree[name] = len(preds[name])
	}

	ckpt := r.newCheckpointWriter()

	completions := make(chan ExecutionResult, len(nodes))
	var wg sync.WaitGroup

	dispatch := func(name string) {
		node := nodes[name]
		snapshot := st.Snapshot()
		wg.Add(1)
		go func() {
			defer wg.Done()
			completions <- r.executeNode(ctx, node, snapshot)
		}()
	}

	for _, name := range r.graph.order {
		if indegree[name] == 0 {
			dispatch(name)
		}
	}

	results := make(map[string]ExecutionResult, len(nodes))
	for len(results) < len(nodes) {
		res := <-completions
		st.Merge(res.Update)
		results[res.Node] = res
		ckpt.save(ctx, res.Node, st.Snapshot())

		for _, next := range succs[res.Node] {
			indegree[next]--
			if indegree[next] == 0 {
				dispatch(next)
			}
		}
	}
	wg.Wait()

	return results, st.Snapshot()
}
