package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel implements llms.Model with a canned response.
type fakeModel struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if len(messages) > 0 && len(messages[0].Parts) > 0 {
		if text, ok := messages[0].Parts[0].(llms.TextContent); ok {
			f.prompt = text.Text
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.reply}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, _ ...llms.CallOption) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func TestLangChainModel_Generate(t *testing.T) {
	fake := &fakeModel{reply: "  - Terraform\n- Ansible\n"}
	m := NewLangChainModel(fake)

	out, err := m.Generate(context.Background(), "list tools")
	require.NoError(t, err)
	assert.Equal(t, "- Terraform\n- Ansible", out)
	assert.Equal(t, "list tools", fake.prompt)
}

func TestLangChainModel_GenerateError(t *testing.T) {
	fake := &fakeModel{err: errors.New("model unavailable")}
	m := NewLangChainModel(fake)

	_, err := m.Generate(context.Background(), "anything")
	assert.ErrorContains(t, err, "langchain generation failed")
}
