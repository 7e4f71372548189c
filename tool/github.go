// Package tool holds the external collaborators workflow nodes call out to:
// the GitHub MCP client and the job-posting fetcher. Acquisition is scoped
// by the caller (connect before use, close on all exit paths); the workflow
// engine never manages these connections itself.
package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

// DefaultGitHubMCPURL is GitHub's hosted MCP endpoint.
const DefaultGitHubMCPURL = "https://api.githubcopilot.com/mcp/"

// ErrNotConnected is returned when Call is used before Connect (or after
// Close).
var ErrNotConnected = fmt.Errorf("github mcp client not connected")

// GitHubMCPClient talks to the GitHub MCP server over streamable HTTP.
type GitHubMCPClient struct {
	baseURL string
	token   string
	session *client.Client
}

// GitHubMCPOption configures a GitHubMCPClient.
type GitHubMCPOption func(*GitHubMCPClient)

// WithMCPBaseURL overrides the MCP endpoint URL.
func WithMCPBaseURL(baseURL string) GitHubMCPOption {
	return func(c *GitHubMCPClient) {
		c.baseURL = baseURL
	}
}

// NewGitHubMCPClient creates a client for the GitHub MCP server.
// If token is empty, it tries the GITHUB_MCP_TOKEN environment variable;
// an empty token is allowed for endpoints that accept anonymous access.
func NewGitHubMCPClient(token string, opts ...GitHubMCPOption) *GitHubMCPClient {
	if token == "" {
		token = os.Getenv("GITHUB_MCP_TOKEN")
	}
	c := &GitHubMCPClient{
		baseURL: DefaultGitHubMCPURL,
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect establishes the MCP session and performs the initialize
// handshake.
func (c *GitHubMCPClient) Connect(ctx context.Context) error {
	if c.session != nil {
		return nil
	}

	var transportOpts []transport.StreamableHTTPCOption
	if c.token != "" {
		transportOpts = append(transportOpts, transport.WithHTTPHeaders(map[string]string{
			"Authorization": "Bearer " + c.token,
		}))
	}

	session, err := client.NewStreamableHttpClient(c.baseURL, transportOpts...)
	if err != nil {
		return fmt.Errorf("failed to create mcp client: %w", err)
	}
	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("failed to start mcp session: %w", err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "skillgraph",
		Version: "0.1.0",
	}
	if _, err := session.Initialize(ctx, initReq); err != nil {
		_ = session.Close()
		return fmt.Errorf("mcp initialize failed: %w", err)
	}

	c.session = session
	return nil
}

// Call invokes a named tool on the MCP server and returns its text content
// concatenated. A tool-reported error becomes a Go error.
func (c *GitHubMCPClient) Call(ctx context.Context, toolName string, params map[string]any) (string, error) {
	if c.session == nil {
		return "", ErrNotConnected
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = toolName
	req.Params.Arguments = params

	result, err := c.session.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("tool %s call failed: %w", toolName, err)
	}

	var sb strings.Builder
	for _, content := range result.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	if result.IsError {
		return "", fmt.Errorf("tool %s returned an error: %s", toolName, sb.String())
	}
	return sb.String(), nil
}

// Close tears down the MCP session. Safe to call when not connected.
func (c *GitHubMCPClient) Close() error {
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

// repoMetadata is the slice of the search_repositories payload the topic
// derivation needs.
type repoMetadata struct {
	Language string   `json:"language"`
	Topics   []string `json:"topics"`
}

// WorkedTopics connects, lists the user's repositories via the MCP
// search_repositories tool, and derives the set of languages and repo
// topics the user has worked with. The session is closed on all paths.
func (c *GitHubMCPClient) WorkedTopics(ctx context.Context, user string) ([]string, error) {
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}
	defer c.Close()

	raw, err := c.Call(ctx, "search_repositories", map[string]any{
		"query": "user:" + user,
	})
	if err != nil {
		return nil, err
	}
	return parseWorkedTopics(raw)
}

// parseWorkedTopics extracts a sorted, de-duplicated topic list from the
// search_repositories JSON payload.
func parseWorkedTopics(raw string) ([]string, error) {
	var payload struct {
		Items []repoMetadata `json:"items"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("unexpected search_repositories payload: %w", err)
	}

	seen := make(map[string]bool)
	var topics []string
	add := func(topic string) {
		topic = strings.TrimSpace(topic)
		if topic == "" || seen[strings.ToLower(topic)] {
			return
		}
		seen[strings.ToLower(topic)] = true
		topics = append(topics, topic)
	}
	for _, repo := range payload.Items {
		add(repo.Language)
		for _, t := range repo.Topics {
			add(t)
		}
	}
	sort.Strings(topics)
	return topics, nil
}
