package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// LangChainModel adapts any langchaingo llms.Model to the Client interface,
// so providers already wired through langchaingo (OpenAI, Ollama, Anthropic,
// ...) can drive workflow nodes unchanged.
type LangChainModel struct {
	model llms.Model
}

var _ Client = (*LangChainModel)(nil)

// NewLangChainModel wraps a langchaingo model.
func NewLangChainModel(model llms.Model) *LangChainModel {
	return &LangChainModel{model: model}
}

// Generate runs the prompt as a single-turn completion.
func (m *LangChainModel) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, m.model, prompt)
	if err != nil {
		return "", fmt.Errorf("langchain generation failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}
