// Package llm defines the text-generation collaborator workflow nodes call
// into, plus implementations for OpenAI-compatible APIs and langchaingo
// models. Nodes treat Generate failures as their own external-call failures,
// contained by the graph executor.
package llm

import "context"

// Client generates a completion for a single prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerateFunc adapts a plain function to the Client interface, handy for
// test doubles.
type GenerateFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls the wrapped function.
func (f GenerateFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
