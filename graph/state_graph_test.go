package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopNode(_ context.Context, _ State) (State, error) {
	return nil, nil
}

func TestCompile_Valid(t *testing.T) {
	g := NewStateGraph()
	g.AddNode("a", "", noopNode, nil)
	g.AddNode("b", "", noopNode, nil)
	g.AddEdge(START, "a")
	g.AddEdge("a", "b")
	g.AddEdge("b", END)

	runnable, err := g.Compile()
	require.NoError(t, err)
	assert.NotNil(t, runnable)
}

func TestCompile_DanglingEdge(t *testing.T) {
	g := NewStateGraph()
	g.AddNode("a", "", noopNode, nil)
	g.AddEdge(START, "a")
	g.AddEdge("a", "ghost")

	_, err := g.Compile()
	var vErr *GraphValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Error(), "ghost")
}

func TestCompile_DuplicateNodeName(t *testing.T) {
	g := NewStateGraph()
	g.AddNode("a", "first", noopNode, nil)
	g.AddNode("a", "second", noopNode, nil)
	g.AddEdge(START, "a")
	g.AddEdge("a", END)

	_, err := g.Compile()
	var vErr *GraphValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Error(), "duplicate")
}

func TestCompile_Cycle(t *testing.T) {
	g := NewStateGraph()
	g.AddNode("a", "", noopNode, nil)
	g.AddNode("b", "", noopNode, nil)
	g.AddNode("c", "", noopNode, nil)
	g.AddEdge(START, "a")
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	_, err := g.Compile()
	var vErr *GraphValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Error(), "cycle")
}

func TestCompile_SelfLoopIsCycle(t *testing.T) {
	g := NewStateGraph()
	g.AddNode("a", "", noopNode, nil)
	g.AddEdge(START, "a")
	g.AddEdge("a", "a")

	_, err := g.Compile()
	var vErr *GraphValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCompile_StartToEndEdge(t *testing.T) {
	g := NewStateGraph()
	g.AddNode("a", "", noopNode, nil)
	g.AddEdge(START, END)
	g.AddEdge(START, "a")

	_, err := g.Compile()
	var vErr *GraphValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCompile_ReportsAllProblems(t *testing.T) {
	g := NewStateGraph()
	g.AddNode("a", "", noopNode, nil)
	g.AddNode("a", "", noopNode, nil)
	g.AddEdge("nope", "a")

	_, err := g.Compile()
	var vErr *GraphValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Problems, 2)
}
