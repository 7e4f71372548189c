// Package graph provides a small dependency-scheduled workflow engine.
//
// A workflow is declared as named nodes plus directed edges (fan-out from
// START, AND-join fan-in, END at the bottom), compiled with structural
// validation, and executed concurrently: every node whose predecessors have
// finished runs in its own goroutine against a snapshot of the shared state,
// and its partial update is merged back by a single writer.
//
// # Failure containment
//
// Each node declares a fallback update. Any error or panic inside a node's
// work unit is caught, logged, and replaced by that fallback, so a single
// failing node never aborts the workflow: the run always completes with
// best-effort partial results. Only structural problems (duplicate node
// names, dangling edges, cycles) abort, and those are caught at Compile
// time as a *GraphValidationError.
//
// # Example
//
//	g := graph.NewStateGraph()
//	g.AddNode("fetch", "fetch the input", fetchNode, graph.State{"rows": []string{}})
//	g.AddNode("report", "summarize rows", reportNode, nil)
//	g.AddEdge(graph.START, "fetch")
//	g.AddEdge("fetch", "report")
//	g.AddEdge("report", graph.END)
//
//	runnable, err := g.Compile()
//	if err != nil {
//		return err
//	}
//	final, _ := runnable.Invoke(ctx, graph.State{"query": "..."})
package graph
