// Package cfg provides a directed graph with stable node and edge identity,
// used as the input representation for control-flow analysis.
//
// # Overview
//
// A [Graph] holds string-labeled nodes and directed edges between them.
// Unlike a general-purpose graph container, cfg preserves the insertion
// order of both nodes and edges; every query ([Graph.Nodes], [Graph.Sources],
// [Graph.Successors]) iterates in that order. Downstream analyses rely on
// this to produce byte-identical results across runs.
//
// Self-loops are allowed. Duplicate directed edges collapse into one, per
// the input contract for region analysis.
//
// # Basic Usage
//
//	g := cfg.New()
//	g.AddNode("entry")
//	g.AddNode("body")
//	g.AddEdge("entry", "body")
//
// Query the structure with [Graph.Successors], [Graph.Predecessors],
// [Graph.Sources], and [Graph.Sinks].
//
// # Adjacency Mappings
//
// External callers that already hold a node→(out, in) mapping can use
// [FromAdjacency], which additionally verifies that the two directions
// mirror each other and rejects empty graphs. [Graph.ToAdjacency] is the
// inverse.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. Read-only use from
// multiple goroutines is fine once construction has finished.
package cfg
