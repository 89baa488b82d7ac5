// Package sese computes the canonical decomposition of a rooted directed
// graph into single-entry/single-exit regions and arranges them into the
// program structure tree (PST).
//
// # Overview
//
// The implementation follows the Johnson–Pearson–Pingali construction: the
// input graph is augmented with a super-entry and super-exit where needed
// and closed with a virtual back edge, an undirected view preserves the
// identity of every directed edge as an arc, and a single depth-first
// search over that view assigns every arc a cycle-equivalence class using
// per-node bracket lists. Two arcs share a class exactly when every cycle
// through one also passes through the other; consecutive class members
// delimit the canonical regions, which nest into the PST. The
// cycle-equivalence computation runs in O(|V|+|E|); region synthesis and
// PST assembly sort arcs and regions and materialize every region's full
// node set, so their cost also grows with the total size of those sets.
//
// # Usage
//
//	g := cfg.New()
//	// ... add nodes and edges ...
//	res, err := sese.Analyze(g)
//	if err != nil {
//	    return err
//	}
//	for _, r := range res.Regions {
//	    fmt.Println(r.ID, r.Nodes)
//	}
//
// [Analyze] is a pure function. The input graph is never modified; the
// augmented graph is returned in the result so that consumers (DOT
// emitters, the HTTP API) need not re-run augmentation.
//
// # Determinism
//
// All iteration follows the insertion order of the input graph, so region
// ids, node sets, and the parent relation are identical across runs. Region
// ids number the PST in pre-order, with the root region as id 0.
//
// # Unreachable nodes
//
// Augmentation connects every source to the super-entry and every sink to
// the super-exit, so isolated islands that contain a source or a sink are
// reachable in the undirected view and analyzed normally. Nodes of an
// island with neither (a pure cycle) stay disconnected; they are listed in
// [Result.Unreachable], excluded from all regions, and noted in
// [Result.Warnings].
package sese
