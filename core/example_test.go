package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ExampleGraph demonstrates label-based construction and the text report.
func ExampleGraph() {
	// 1) Three named vertices with metadata:
	g, _ := core.NewLabeledGraph([]string{"A", "B", "C"},
		core.WithName("Graph 1"), core.WithID(1))

	// 2) Connect them by name:
	_ = g.AddEdgeByLabel("A", "B", 4)
	_ = g.AddEdgeByLabel("B", "C", 2)

	fmt.Print(g)

	// Output:
	// Graph: Graph 1
	// ID: 1
	// Nodes: [A, B, C]
	// Vertices: 3, Edges: 2
	// Connected: Yes
	// Edge List:
	//   A--B (weight: 4)
	//   B--C (weight: 2)
}

// ExampleGraph_CountComponents shows components of an index-built graph.
func ExampleGraph_CountComponents() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(3, 4, 1)

	fmt.Println(g.CountComponents(), g.IsConnected())
	fmt.Println(g.Components())

	// Output:
	// 3 false
	// [[0 1] [2] [3 4]]
}

// ExampleGraph_AddEdge shows the sentinel errors returned on bad input.
func ExampleGraph_AddEdge() {
	g, _ := core.NewGraph(2)

	fmt.Println(errors.Is(g.AddEdge(0, 0, 1), core.ErrSelfLoopNotAllowed))
	fmt.Println(errors.Is(g.AddEdge(0, 1, -1), core.ErrInvalidWeight))
	fmt.Println(errors.Is(g.AddEdge(0, 2, 1), core.ErrInvalidVertexIndex))

	// Output:
	// true
	// true
	// true
}
