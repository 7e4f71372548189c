package interview

import (
	"context"
	"fmt"

	"github.com/auroshis/skillgraph/graph"
	"github.com/auroshis/skillgraph/llm"
	"github.com/auroshis/skillgraph/store"
)

// maxResumeSkills caps the number of skills kept from the resume expert
// response.
const maxResumeSkills = 40

// GitHubAnalyzer derives the topics a user has worked with from their
// repositories. *tool.GitHubMCPClient implements it.
type GitHubAnalyzer interface {
	WorkedTopics(ctx context.Context, user string) ([]string, error)
}

// Pipeline wires the gap-analysis workflow. Collaborators are injected so
// tests can substitute doubles; there are no package-level clients.
type Pipeline struct {
	llm         llm.Client
	github      GitHubAnalyzer
	checkpoints store.CheckpointStore
	debug       bool
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithCheckpointStore persists a state snapshot after each node.
func WithCheckpointStore(cs store.CheckpointStore) PipelineOption {
	return func(p *Pipeline) {
		p.checkpoints = cs
	}
}

// WithDebug enables stack traces in node-failure logs.
func WithDebug(debug bool) PipelineOption {
	return func(p *Pipeline) {
		p.debug = debug
	}
}

// NewPipeline creates the gap-analysis pipeline.
func NewPipeline(llmClient llm.Client, github GitHubAnalyzer, opts ...PipelineOption) (*Pipeline, error) {
	if llmClient == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if github == nil {
		return nil, fmt.Errorf("github analyzer is required")
	}
	p := &Pipeline{
		llm:    llmClient,
		github: github,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// BuildGraph declares the workflow graph:
//
//	START -> github_analysis, resume_expert, jd_extraction   (fan-out)
//	all three -> gap_analysis                                 (AND-join)
//	gap_analysis -> learning_plan, resume_tuning              (fan-out)
//	both -> END
//
// Each external-facing node declares an empty fallback so a provider outage
// degrades the report instead of aborting the run.
func (p *Pipeline) BuildGraph() *graph.StateGraph {
	g := graph.NewStateGraph()

	g.AddNode(NodeGitHubAnalysis, "Derive worked topics from GitHub repos", p.githubAnalysisNode,
		graph.State{FieldWorkedTopics: []string{}})
	g.AddNode(NodeResumeExpert, "Extract skills from the resume", p.resumeExpertNode,
		graph.State{FieldResumeSkills: []string{}})
	g.AddNode(NodeJDExtraction, "Extract required topics from the JD", p.jdExtractionNode,
		graph.State{FieldRequiredTopics: []string{}})
	g.AddNode(NodeGapAnalysis, "Compare candidate skills with requirements", p.gapAnalysisNode,
		graph.State{FieldMissingTopics: []string{}, FieldOverlapTopics: []string{}})
	g.AddNode(NodeLearningPlan, "Draft a learning plan for missing topics", p.learningPlanNode,
		graph.State{FieldLearningPlan: ""})
	g.AddNode(NodeResumeTuning, "Rewrite the resume around overlap topics", p.resumeTuningNode,
		graph.State{FieldTunedResume: ""})

	g.AddEdge(graph.START, NodeGitHubAnalysis)
	g.AddEdge(graph.START, NodeResumeExpert)
	g.AddEdge(graph.START, NodeJDExtraction)

	g.AddEdge(NodeGitHubAnalysis, NodeGapAnalysis)
	g.AddEdge(NodeResumeExpert, NodeGapAnalysis)
	g.AddEdge(NodeJDExtraction, NodeGapAnalysis)

	g.AddEdge(NodeGapAnalysis, NodeLearningPlan)
	g.AddEdge(NodeGapAnalysis, NodeResumeTuning)

	g.AddEdge(NodeLearningPlan, graph.END)
	g.AddEdge(NodeResumeTuning, graph.END)

	return g
}

// Compile builds and validates the workflow graph.
func (p *Pipeline) Compile() (*graph.Runnable, error) {
	runnable, err := p.BuildGraph().Compile()
	if err != nil {
		return nil, err
	}
	runnable.SetDebug(p.debug)
	if p.checkpoints != nil {
		runnable.SetCheckpointStore(p.checkpoints)
	}
	return runnable, nil
}

// Run executes the workflow for the given inputs and returns the typed
// result. Node failures are contained by the engine; the only errors here
// are structural (graph validation) or a wiring defect surfaced while
// reading the final state.
func (p *Pipeline) Run(ctx context.Context, in Inputs) (Result, error) {
	runnable, err := p.Compile()
	if err != nil {
		return Result{}, err
	}

	final, results := runnable.InvokeWithResults(ctx, in.state())
	return resultFromState(final, results)
}
