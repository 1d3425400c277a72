// SPDX-License-Identifier: MIT
// Package: wgraph/loader
//
// summary.go - human-readable overview of a loaded document.

package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

const bannerWidth = 60

// PrintSummary writes a banner-framed overview of graphs to w:
//
//	============================================================
//	JSON FILE SUMMARY: <source>
//	============================================================
//	Total graphs: 2
//
//	[ID: 1] Graph 1
//	    Nodes: [A, B, C]
//	    Vertices: 3, Edges: 2, Connected: Yes
//	...
//	============================================================
//
// The output starts with an empty line.
func PrintSummary(w io.Writer, source string, graphs []*core.Graph) error {
	banner := strings.Repeat("=", bannerWidth)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n", banner)
	fmt.Fprintf(&sb, "JSON FILE SUMMARY: %s\n", source)
	fmt.Fprintf(&sb, "%s\n", banner)
	fmt.Fprintf(&sb, "Total graphs: %d\n\n", len(graphs))
	for _, g := range graphs {
		fmt.Fprintf(&sb, "[ID: %d] %s\n", g.ID(), g.Name())
		fmt.Fprintf(&sb, "    Nodes: %s\n", core.FormatLabels(g.Labels()))
		fmt.Fprintf(&sb, "    Vertices: %d, Edges: %d, Connected: %s\n",
			g.VertexCount(), g.EdgeCount(), core.YesNo(g.IsConnected()))
	}
	fmt.Fprintf(&sb, "%s\n", banner)

	_, err := io.WriteString(w, sb.String())
	return err
}

// SummarizeFile reads path and prints its summary with path as the source.
func SummarizeFile(w io.Writer, path string, opts ...Option) error {
	graphs, err := ReadFile(path, opts...)
	if err != nil {
		return err
	}

	return PrintSummary(w, path, graphs)
}
