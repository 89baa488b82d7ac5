// Package graphio provides serialization for control-flow graphs and
// analysis results.
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "nodes": [{"id": "S"}, {"id": "A"}],
//	  "edges": [{"from": "S", "to": "A"}]
//	}
//
// Hand-written graphs can also be expressed in TOML (see [ReadGraphTOML]);
// [ReadGraphFile] dispatches on the file extension. Analysis results
// serialize through [ResultDoc], which carries the augmented graph, arcs
// with their equivalence classes, and the regions in PST pre-order.
//
// Common operations:
//
//	g, _ := graphio.ReadGraphFile("cfg.json")   // File → Graph
//	graphio.WriteGraphFile(g, "out.json")       // Graph → File
//	data, _ := graphio.MarshalResult(res)       // Result → []byte
//
// All output is deterministic: node and edge order follows the graph's
// insertion order, and region order follows the PST pre-order.
package graphio
