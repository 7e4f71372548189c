package interview

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// Report renders a Result for sharing with the candidate.
type Report struct {
	result Result
}

// NewReport wraps a pipeline result for rendering.
func NewReport(result Result) *Report {
	return &Report{result: result}
}

// Markdown renders the full report as a markdown document.
func (r *Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Interview Readiness Report\n\n")

	sb.WriteString("## Matched topics\n\n")
	writeTopicList(&sb, r.result.OverlapTopics)

	sb.WriteString("\n## Missing topics\n\n")
	writeTopicList(&sb, r.result.MissingTopics)

	if r.result.LearningPlan != "" {
		sb.WriteString("\n## Learning plan\n\n")
		sb.WriteString(strings.TrimSpace(r.result.LearningPlan))
		sb.WriteString("\n")
	}

	if r.result.TunedResume != "" {
		sb.WriteString("\n## Tuned resume\n\n")
		sb.WriteString(strings.TrimSpace(r.result.TunedResume))
		sb.WriteString("\n")
	}

	if len(r.result.FallbackNodes) > 0 {
		sb.WriteString(fmt.Sprintf("\n> Partial report: %s did not complete.\n",
			strings.Join(r.result.FallbackNodes, ", ")))
	}
	return sb.String()
}

// HTML renders the report as sanitized HTML. The learning plan and tuned
// resume are LLM output, so the rendered markup goes through a UGC policy
// before it is returned.
func (r *Report) HTML() string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(r.Markdown()))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	htmlBytes := markdown.Render(doc, renderer)

	return string(bluemonday.UGCPolicy().SanitizeBytes(htmlBytes))
}

func writeTopicList(sb *strings.Builder, topics []string) {
	if len(topics) == 0 {
		sb.WriteString("(none)\n")
		return
	}
	for _, t := range topics {
		sb.WriteString("- ")
		sb.WriteString(t)
		sb.WriteString("\n")
	}
}
