// SPDX-License-Identifier: MIT

// Package builder assembles core.Graph fixtures deterministically.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): the single orchestrator. It creates a
//     graph, resolves BuilderOptions into an immutable builderConfig and runs
//     each Constructor in order.
//   - Constructors:
//     – Edges:        an explicit list of weighted undirected edges.
//     – Reference:    the six-vertex A–F example network.
//     – FromYAML:     a YAML (or JSON) document of vertices and edges.
//     – RandomSparse: an Erdős–Rényi-like graph for property tests.
//   - Options: WithSeed, WithRand, WithIDScheme, WithWeightFn.
//   - Weight distributions: ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless inputs; constructors return
//     sentinel errors wrapped with method context and never panic.
//   - No I/O: FromYAML decodes bytes already in memory.
package builder
