package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// GeminiOpenAIBaseURL is Google's OpenAI-compatible endpoint for the Gemini
// models.
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// OpenAIClient is a Client backed by any OpenAI-compatible chat-completion
// API.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	baseURL string
	httpCli *http.Client
}

var _ Client = (*OpenAIClient)(nil)

// OpenAIOption configures an OpenAIClient.
type OpenAIOption func(*OpenAIClient)

// WithModel sets the model name used for completions.
func WithModel(model string) OpenAIOption {
	return func(c *OpenAIClient) {
		c.model = model
	}
}

// WithBaseURL points the client at an alternative OpenAI-compatible
// endpoint, e.g. GeminiOpenAIBaseURL.
func WithBaseURL(baseURL string) OpenAIOption {
	return func(c *OpenAIClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client (timeouts, proxies, test
// transports).
func WithHTTPClient(httpCli *http.Client) OpenAIOption {
	return func(c *OpenAIClient) {
		c.httpCli = httpCli
	}
}

// NewOpenAIClient creates a Client for an OpenAI-compatible API.
// If apiKey is empty, it tries the OPENAI_API_KEY environment variable.
func NewOpenAIClient(apiKey string, opts ...OpenAIOption) (*OpenAIClient, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required (set OPENAI_API_KEY)")
	}

	c := &OpenAIClient{
		model: openai.GPT4oMini,
	}
	for _, opt := range opts {
		opt(c)
	}

	cfg := openai.DefaultConfig(apiKey)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	if c.httpCli != nil {
		cfg.HTTPClient = c.httpCli
	}
	c.client = openai.NewClientWithConfig(cfg)
	return c, nil
}

// NewGeminiClient creates a Client for the Gemini API via its
// OpenAI-compatible endpoint. If apiKey is empty, it tries the
// GEMINI_API_KEY environment variable.
func NewGeminiClient(apiKey string, opts ...OpenAIOption) (*OpenAIClient, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required (set GEMINI_API_KEY)")
	}
	base := []OpenAIOption{
		WithBaseURL(GeminiOpenAIBaseURL),
		WithModel(DefaultGeminiModel),
	}
	return NewOpenAIClient(apiKey, append(base, opts...)...)
}

// Model returns the configured model name.
func (c *OpenAIClient) Model() string {
	return c.model
}

// Generate sends the prompt as a single user message and returns the first
// choice's text.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
