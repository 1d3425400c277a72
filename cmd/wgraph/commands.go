// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/loader"
)

func runSummary(a *app, args []string) error {
	fs := a.subcommand("summary", "FILE...")
	if err := parse(fs, args, 1, -1); err != nil {
		return err
	}

	failed := false
	for _, path := range fs.Args() {
		if err := loader.SummarizeFile(a.stdout, path, a.loadOpts...); err != nil {
			fmt.Fprintf(a.stderr, "Error reading file: %v\n", err)
			failed = true
		}
	}
	if failed {
		return errReported
	}

	return nil
}

func runShow(a *app, args []string) error {
	fs := a.subcommand("show", "FILE")
	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	graphs, err := loader.ReadFile(fs.Arg(0), a.loadOpts...)
	if err != nil {
		return err
	}
	for i, g := range graphs {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		fmt.Fprint(a.stdout, g.String())
	}

	return nil
}

func runValidate(a *app, args []string) error {
	fs := a.subcommand("validate", "[-build] FILE...")
	build := fs.Bool("build", false, "also load every graph and run its integrity check")
	if err := parse(fs, args, 1, -1); err != nil {
		return err
	}

	failed := false
	for _, path := range fs.Args() {
		err := loader.ValidateFile(path)
		if err == nil && *build {
			err = buildAndCheck(path, a.loadOpts)
		}
		if err != nil {
			a.log.Warn("invalid graph document", zap.String("path", path), zap.Error(err))
			fmt.Fprintf(a.stdout, "%s: INVALID (%v)\n", path, err)
			failed = true
			continue
		}
		fmt.Fprintf(a.stdout, "%s: OK\n", path)
	}
	if failed {
		return errReported
	}

	return nil
}

func buildAndCheck(path string, opts []loader.Option) error {
	graphs, err := loader.ReadFile(path, opts...)
	if err != nil {
		return err
	}
	for _, g := range graphs {
		if err = g.ValidateErr(); err != nil {
			return fmt.Errorf("%s: %w", g.Name(), err)
		}
	}

	return nil
}

func runEncode(a *app, args []string) error {
	fs := a.subcommand("encode", "FILE")
	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	graphs, err := loader.ReadFile(fs.Arg(0), a.loadOpts...)
	if err != nil {
		return err
	}

	return loader.Encode(a.stdout, graphs)
}

func runPath(a *app, args []string) error {
	fs := a.subcommand("path", "[-graph N] FILE FROM TO")
	which := fs.Int("graph", 0, "zero-based position of the graph in FILE")
	if err := parse(fs, args, 3, 3); err != nil {
		return err
	}

	graphs, err := loader.ReadFile(fs.Arg(0), a.loadOpts...)
	if err != nil {
		return err
	}
	if *which < 0 || *which >= len(graphs) {
		return fmt.Errorf("graph %d out of range: %s holds %d graph(s)", *which, fs.Arg(0), len(graphs))
	}
	g := graphs[*which]

	from, to := fs.Arg(1), fs.Arg(2)
	src, ok := g.Index(from)
	if !ok {
		return fmt.Errorf("%s: %q: %w", g.Name(), from, core.ErrUnknownLabel)
	}
	dst, ok := g.Index(to)
	if !ok {
		return fmt.Errorf("%s: %q: %w", g.Name(), to, core.ErrUnknownLabel)
	}

	res, err := bfs.BFS(g, src)
	if err != nil {
		return err
	}
	route, err := res.PathTo(dst)
	if err != nil {
		fmt.Fprintf(a.stdout, "%s: no path from %s to %s\n", g.Name(), from, to)
		return errReported
	}
	fmt.Fprintf(a.stdout, "%s: %s (%d hops)\n", g.Name(), joinLabels(g, route), len(route)-1)

	return nil
}

func runDemo(a *app, args []string) error {
	fs := a.subcommand("demo", "[-n N] [-seed S]")
	n := fs.Int("n", 5, "vertices per generated graph")
	seed := fs.Int64("seed", 1, "weight RNG seed")
	if err := parse(fs, args, 0, 0); err != nil {
		return err
	}

	ring, err := builder.BuildGraph(builder.Cycle(*n),
		builder.WithIDScheme(builder.SymbolIDFn),
		builder.WithSeed(*seed),
		builder.WithUniformWeight(1, 9),
		builder.WithGraphOptions(core.WithID(1), core.WithName("Ring"), core.WithDescription("generated cycle")),
	)
	if err != nil {
		return err
	}
	islands, err := builder.BuildGraph(builder.Disjoint(*n, 2, 1),
		builder.WithIDScheme(builder.PrefixIDFn("v")),
		builder.WithGraphOptions(core.WithID(2), core.WithName("Islands"), core.WithDescription("three components")),
	)
	if err != nil {
		return err
	}

	for _, g := range []*core.Graph{ring, islands} {
		fmt.Fprint(a.stdout, g.String())

		res, err := bfs.BFS(g, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "BFS from %s: %s\n", mustLabel(g, 0), joinLabels(g, res.Order))
		fmt.Fprintf(a.stdout, "Components: %d\n", g.CountComponents())
		for _, comp := range g.Components() {
			fmt.Fprintf(a.stdout, "  %s\n", core.FormatLabels(labelsOf(g, comp)))
		}
		fmt.Fprintln(a.stdout)
	}

	return nil
}

func labelsOf(g *core.Graph, vertices []int) []string {
	out := make([]string, len(vertices))
	for i, v := range vertices {
		out[i] = mustLabel(g, v)
	}

	return out
}

func joinLabels(g *core.Graph, vertices []int) string {
	return strings.Join(labelsOf(g, vertices), " -> ")
}

// mustLabel returns the label of an index produced by g itself.
func mustLabel(g *core.Graph, v int) string {
	label, err := g.Label(v)
	if err != nil {
		panic(err)
	}

	return label
}
