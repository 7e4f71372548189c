package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Exporter renders a StateGraph in diagram formats.
type Exporter struct {
	graph *StateGraph
}

// NewExporter creates a new graph exporter for the given graph.
func NewExporter(g *StateGraph) *Exporter {
	return &Exporter{graph: g}
}

// MermaidOptions defines configuration for Mermaid diagram generation.
type MermaidOptions struct {
	// Direction of the flowchart (e.g., "TD", "LR")
	Direction string
}

// DrawMermaid generates a Mermaid flowchart of the graph, top-down.
func (ge *Exporter) DrawMermaid() string {
	return ge.DrawMermaidWithOptions(MermaidOptions{Direction: "TD"})
}

// DrawMermaidWithOptions generates a Mermaid flowchart with custom options.
// Nodes carrying a fallback are drawn with rounded corners.
func (ge *Exporter) DrawMermaidWithOptions(opts MermaidOptions) string {
	var sb strings.Builder

	direction := opts.Direction
	if direction == "" {
		direction = "TD"
	}
	sb.WriteString(fmt.Sprintf("flowchart %s\n", direction))

	sb.WriteString("    START([\"START\"])\n")
	sb.WriteString("    style START fill:#90EE90\n")
	sb.WriteString("    END([\"END\"])\n")
	sb.WriteString("    style END fill:#FFB6C1\n")

	nodeNames := make([]string, 0, len(ge.graph.nodes))
	for name := range ge.graph.nodes {
		nodeNames = append(nodeNames, name)
	}
	sort.Strings(nodeNames)

	for _, name := range nodeNames {
		node := ge.graph.nodes[name]
		label := name
		if node.Description != "" {
			label = fmt.Sprintf("%s<br/>%s", name, node.Description)
		}
		if node.Fallback != nil {
			sb.WriteString(fmt.Sprintf("    %s(\"%s\")\n", name, label))
		} else {
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", name, label))
		}
	}

	for _, e := range ge.graph.edges {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", e.From, e.To))
	}

	return sb.String()
}
