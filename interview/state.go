// Package interview implements the resume / job-description gap-analysis
// workflow: three analysis nodes fan out from the start, a gap-analysis
// AND-join compares what the candidate has against what the posting wants,
// and two LLM nodes produce a learning plan and a tuned resume.
package interview

import (
	"github.com/auroshis/skillgraph/graph"
)

// Workflow state field names. Each node writes a disjoint subset.
const (
	FieldJobDescription = "job_description"
	FieldResumeText     = "resume_text"
	FieldGitHubUser     = "github_user"
	FieldWorkedTopics   = "worked_topics"
	FieldResumeSkills   = "resume_skills"
	FieldRequiredTopics = "required_topics"
	FieldMissingTopics  = "missing_topics"
	FieldOverlapTopics  = "overlap_topics"
	FieldLearningPlan   = "learning_plan"
	FieldTunedResume    = "tuned_resume"
)

// Node names.
const (
	NodeGitHubAnalysis = "github_analysis"
	NodeResumeExpert   = "resume_expert"
	NodeJDExtraction   = "jd_extraction"
	NodeGapAnalysis    = "gap_analysis"
	NodeLearningPlan   = "learning_plan"
	NodeResumeTuning   = "resume_tuning"
)

// Inputs seed the workflow state.
type Inputs struct {
	JobDescription string
	ResumeText     string
	GitHubUser     string
}

func (in Inputs) state() graph.State {
	return graph.State{
		FieldJobDescription: in.JobDescription,
		FieldResumeText:     in.ResumeText,
		FieldGitHubUser:     in.GitHubUser,
	}
}

// Result is the typed view of the final workflow state.
type Result struct {
	WorkedTopics   []string
	ResumeSkills   []string
	RequiredTopics []string
	MissingTopics  []string
	OverlapTopics  []string
	LearningPlan   string
	TunedResume    string

	// FallbackNodes lists the nodes whose declared fallback was used
	// because their work unit failed. The state fields themselves carry
	// no such marker.
	FallbackNodes []string
}

func resultFromState(final graph.State, results map[string]graph.ExecutionResult) (Result, error) {
	var res Result
	var err error

	if res.WorkedTopics, err = final.StringSlice(FieldWorkedTopics); err != nil {
		return res, err
	}
	if res.ResumeSkills, err = final.StringSlice(FieldResumeSkills); err != nil {
		return res, err
	}
	if res.RequiredTopics, err = final.StringSlice(FieldRequiredTopics); err != nil {
		return res, err
	}
	if res.MissingTopics, err = final.StringSlice(FieldMissingTopics); err != nil {
		return res, err
	}
	if res.OverlapTopics, err = final.StringSlice(FieldOverlapTopics); err != nil {
		return res, err
	}
	if res.LearningPlan, err = final.String(FieldLearningPlan); err != nil {
		return res, err
	}
	if res.TunedResume, err = final.String(FieldTunedResume); err != nil {
		return res, err
	}

	for _, name := range []string{
		NodeGitHubAnalysis, NodeResumeExpert, NodeJDExtraction,
		NodeGapAnalysis, NodeLearningPlan, NodeResumeTuning,
	} {
		if r, ok := results[name]; ok && r.FallbackUsed {
			res.FallbackNodes = append(res.FallbackNodes, name)
		}
	}
	return res, nil
}
