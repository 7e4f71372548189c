package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/auroshis/skillgraph/graph"
)

func (p *Pipeline) githubAnalysisNode(ctx context.Context, state graph.State) (graph.State, error) {
	user, err := state.String(FieldGitHubUser)
	if err != nil {
		return nil, err
	}
	if user == "" {
		// No GitHub account to analyze; contribute nothing rather than fail.
		return graph.State{FieldWorkedTopics: []string{}}, nil
	}

	topics, err := p.github.WorkedTopics(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("github analysis for %s: %w", user, err)
	}
	return graph.State{FieldWorkedTopics: topics}, nil
}

func (p *Pipeline) resumeExpertNode(ctx context.Context, state graph.State) (graph.State, error) {
	resume, err := state.String(FieldResumeText)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are a senior hiring manager and resume expert from a top IT company.

Extract concise skills (technical and non-technical) from the resume.
Output requirements:
- One skill per line
- Each skill: short phrase (max 5 words)
- No headings, no explanations, no numbering
- Max %d skills

Resume:
%s

Skills:`, maxResumeSkills, resume)

	skillsText, err := p.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("resume skill extraction: %w", err)
	}
	return graph.State{FieldResumeSkills: parseSkillList(skillsText, maxResumeSkills)}, nil
}

func (p *Pipeline) jdExtractionNode(ctx context.Context, state graph.State) (graph.State, error) {
	jd, err := state.String(FieldJobDescription)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Extract the key required skills and topics from the following job description.
Return a concise list: one short phrase per line (max 5 words each). No explanations or headings.

%s`, jd)

	topicsText, err := p.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("jd topic extraction: %w", err)
	}
	return graph.State{FieldRequiredTopics: parseSkillList(topicsText, 0)}, nil
}

// gapAnalysisNode is the AND-join over the three analysis nodes. Pure set
// arithmetic, no external calls, so it carries no fallback.
func (p *Pipeline) gapAnalysisNode(_ context.Context, state graph.State) (graph.State, error) {
	workedTopics, err := state.StringSlice(FieldWorkedTopics)
	if err != nil {
		return nil, err
	}
	resumeSkills, err := state.StringSlice(FieldResumeSkills)
	if err != nil {
		return nil, err
	}
	required, err := state.StringSlice(FieldRequiredTopics)
	if err != nil {
		return nil, err
	}

	// Candidate skills come from both analysis sources. Comparison is
	// case-insensitive on trimmed strings; the required-side casing is
	// what surfaces in the output.
	have := make(map[string]bool, len(workedTopics)+len(resumeSkills))
	for _, t := range workedTopics {
		have[normalizeTopic(t)] = true
	}
	for _, t := range resumeSkills {
		have[normalizeTopic(t)] = true
	}

	missing := []string{}
	overlap := []string{}
	seen := make(map[string]bool, len(required))
	for _, topic := range required {
		key := normalizeTopic(topic)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if have[key] {
			overlap = append(overlap, strings.TrimSpace(topic))
		} else {
			missing = append(missing, strings.TrimSpace(topic))
		}
	}

	return graph.State{
		FieldMissingTopics: missing,
		FieldOverlapTopics: overlap,
	}, nil
}

func (p *Pipeline) learningPlanNode(ctx context.Context, state graph.State) (graph.State, error) {
	missing, err := state.StringSlice(FieldMissingTopics)
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 {
		return graph.State{FieldLearningPlan: "No missing topics. You are ready."}, nil
	}

	prompt := fmt.Sprintf(`You are a learning coach with IT industry experience.
Produce a concise learning plan to cover these topics.
Output format:
- Numbered steps (1., 2., ...)
- Each step should be a short action or resource (max 10 words)
- Limit to 6 steps
No additional explanation.

Topics: %s
`, strings.Join(missing, ", "))

	plan, err := p.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("learning plan generation: %w", err)
	}
	return graph.State{FieldLearningPlan: plan}, nil
}

func (p *Pipeline) resumeTuningNode(ctx context.Context, state graph.State) (graph.State, error) {
	resume, err := state.String(FieldResumeText)
	if err != nil {
		return nil, err
	}
	jd, err := state.String(FieldJobDescription)
	if err != nil {
		return nil, err
	}
	overlap, err := state.StringSlice(FieldOverlapTopics)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are a career coach with IT industry experience.
Rewrite the resume concisely to highlight the candidate's strengths: %s.
Requirements:
- Keep bullets short (<= 15 words)
- Emphasize measurable achievements and relevant keywords from the job description
- Return only the revised resume text (no commentary)

Job description context:
%s

Resume:
%s
`, strings.Join(overlap, ", "), jd, resume)

	tuned, err := p.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("resume tuning: %w", err)
	}
	return graph.State{FieldTunedResume: tuned}, nil
}

func normalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}
