package loader_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/wgraph/loader"
)

// ExampleRead loads a single named-format graph.
func ExampleRead() {
	doc := `{"id": 7, "nodes": ["A", "B", "C"],
	         "edges": [{"from": "A", "to": "B", "weight": 2}]}`

	graphs, err := loader.Read(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g := graphs[0]
	fmt.Println(g.Name(), g.EdgeCount(), g.IsConnected())
	// Output:
	// Graph 7 1 false
}

// ExamplePrintSummary prints the overview of a multi-graph file.
func ExamplePrintSummary() {
	graphs, err := loader.ReadFile("testdata/multi.json")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = loader.PrintSummary(os.Stdout, "testdata/multi.json", graphs)
	// Output:
	// ============================================================
	// JSON FILE SUMMARY: testdata/multi.json
	// ============================================================
	// Total graphs: 2
	//
	// [ID: 1] Graph 1
	//     Nodes: [A, B, C]
	//     Vertices: 3, Edges: 3, Connected: Yes
	// [ID: 2] Graph 2
	//     Nodes: [X, Y, Z, W]
	//     Vertices: 4, Edges: 1, Connected: No
	// ============================================================
}
