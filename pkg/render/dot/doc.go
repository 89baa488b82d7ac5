// Package dot emits Graphviz DOT for analysis results and renders it to
// SVG or PNG.
//
// Three views are available:
//
//   - [CFG]: the augmented control-flow graph, synthetic nodes dashed
//   - [PST]: the program structure tree, one node per region
//   - [Regions]: the control-flow graph with regions as nested clusters
//
// The cluster view places every graph node in its leaf-most region, so the
// clusters nest exactly like the PST. All emitters are deterministic.
package dot
