package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawMermaid(t *testing.T) {
	g := NewStateGraph()
	g.AddNode("fetch", "Fetch data", noopNode, State{"rows": []string{}})
	g.AddNode("report", "", noopNode, nil)
	g.AddEdge(START, "fetch")
	g.AddEdge("fetch", "report")
	g.AddEdge("report", END)

	out := NewExporter(g).DrawMermaid()

	assert.True(t, strings.HasPrefix(out, "flowchart TD\n"))
	assert.Contains(t, out, "START --> fetch")
	assert.Contains(t, out, "fetch --> report")
	assert.Contains(t, out, "report --> END")
	// Fallback-carrying nodes are rounded, plain ones square.
	assert.Contains(t, out, `fetch("fetch<br/>Fetch data")`)
	assert.Contains(t, out, `report["report"]`)
}

func TestDrawMermaid_Direction(t *testing.T) {
	g := NewStateGraph()
	g.AddNode("n", "", noopNode, nil)

	out := NewExporter(g).DrawMermaidWithOptions(MermaidOptions{Direction: "LR"})
	assert.True(t, strings.HasPrefix(out, "flowchart LR\n"))
}
