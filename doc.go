// SkillGraph - Workflow-Graph Execution for Interview Preparation
//
// SkillGraph runs directed workflow graphs of LLM and tool calls with
// concurrent fan-out, AND-join barriers and per-node failure containment.
// It ships with a complete resume / job-description gap-analysis pipeline
// built on that engine.
//
// # Packages
//
//   - graph: graph definition, validation, the scheduler and the node
//     executor. The core of the module.
//   - interview: the gap-analysis pipeline (GitHub analysis, resume skill
//     extraction, JD topic extraction, gap analysis, learning plan, resume
//     tuning) and its report renderer.
//   - llm: the Client interface with OpenAI-compatible (including Gemini)
//     and langchaingo-backed implementations.
//   - tool: the GitHub MCP client and the job-posting fetcher.
//   - store: the CheckpointStore interface with memory, sqlite, redis and
//     postgres backends.
//   - log: the logging surface, with stdlib and golog backends.
//
// # Quick Start
//
// Build a graph and run it:
//
//	g := graph.NewStateGraph()
//	g.AddNode("fetch", "Fetch data", fetchFn, graph.State{"data": ""})
//	g.AddNode("report", "Render report", reportFn, nil)
//	g.AddEdge(graph.START, "fetch")
//	g.AddEdge("fetch", "report")
//	g.AddEdge("report", graph.END)
//
//	runnable, err := g.Compile()
//	if err != nil {
//		// duplicate names, dangling edges or cycles
//	}
//	final, err := runnable.Invoke(ctx, graph.State{"query": "go"})
//
// Nodes that declare a fallback never abort the workflow: when such a node
// fails, its fallback update is merged instead and downstream nodes run on
// the degraded state.
//
// Or run the full gap-analysis pipeline:
//
//	client, _ := llm.NewGeminiClient("")
//	github := tool.NewGitHubMCPClient("")
//	p, _ := interview.NewPipeline(client, github)
//	res, err := p.Run(ctx, interview.Inputs{
//		JobDescription: jd,
//		ResumeText:     resume,
//		GitHubUser:     "auroshis",
//	})
//
// See examples/gap_analysis for a complete command-line front end.
package skillgraph // import "github.com/auroshis/skillgraph"
