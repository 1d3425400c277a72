// SPDX-License-Identifier: MIT
// Package: wgraph/core
//
// format.go - human-readable rendering of a Graph.

package core

import (
	"fmt"
	"strings"
)

// String renders the graph as a multi-line report:
//
//	Graph: <name>          (only if a name is set)
//	ID: <id>               (only if id ≥ 0)
//	Description: <text>    (only if a description is set)
//	Nodes: [A, B, C]
//	Vertices: 3, Edges: 2
//	Connected: Yes
//	Edge List:
//	  A--B (weight: 5)
func (g *Graph) String() string {
	var sb strings.Builder

	if g.hasName {
		fmt.Fprintf(&sb, "Graph: %s\n", g.name)
	}
	if g.id >= 0 {
		fmt.Fprintf(&sb, "ID: %d\n", g.id)
	}
	if g.hasDescription {
		fmt.Fprintf(&sb, "Description: %s\n", g.description)
	}
	fmt.Fprintf(&sb, "Nodes: %s\n", FormatLabels(g.labels))
	fmt.Fprintf(&sb, "Vertices: %d, Edges: %d\n", g.n, len(g.edges))
	fmt.Fprintf(&sb, "Connected: %s\n", YesNo(g.IsConnected()))
	sb.WriteString("Edge List:\n")
	for _, e := range g.edges {
		fmt.Fprintf(&sb, "  %s\n", e)
	}

	return sb.String()
}

// FormatLabels renders labels as "[A, B, C]".
func FormatLabels(labels []string) string {
	return "[" + strings.Join(labels, ", ") + "]"
}

// YesNo renders a flag as "Yes" or "No".
func YesNo(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}
