// SPDX-License-Identifier: MIT
// Package builder provides deterministic topology constructors that produce
// ready-made core.Graph values: fixtures for tests, benchmarks and demos.
//
// Usage:
//
//	g, err := builder.BuildGraph(builder.Cycle(6),
//	    builder.WithIDScheme(builder.SymbolIDFn),
//	    builder.WithSeed(42),
//	    builder.WithUniformWeight(1, 10),
//	    builder.WithGraphOptions(core.WithName("ring")),
//	)
//
// Constructors:
//
//	Empty(n)          n isolated vertices           (n ≥ 1)
//	Path(n)           0–1–…–(n-1)                    (n ≥ 2)
//	Cycle(n)          path plus (n-1)–0              (n ≥ 3)
//	Star(n)           center 0, leaves 1..n-1        (n ≥ 2)
//	Complete(n)       every pair i<j                 (n ≥ 1)
//	Disjoint(p...)    one path per part              (len(p) ≥ 1, p[k] ≥ 1)
//
// Determinism: labels come from the IDFn in index order, edges are emitted
// in a fixed order, and weights are reproducible for a fixed seed.
//
// Errors: ErrTooFewVertices for size violations, ErrConstructFailed when
// core rejects an edge or label table (the core sentinel is wrapped too, so
// errors.Is(err, core.ErrDuplicateLabel) works through a builder error).
package builder
