package sese

import (
	"fmt"

	"github.com/klintqinami/sese-regions/pkg/cfg"
	"github.com/klintqinami/sese-regions/pkg/serr"
)

// NodeInfo records the depth-first traversal data for one node, kept in the
// result for debugging and visualization.
type NodeInfo struct {
	Enter     int // discovery index
	Leave     int // highest discovery index in the node's subtree
	ParentArc int // tree arc to the DFS parent, -1 at the entry
}

// Result is the complete output of a region analysis.
//
// Graph is the augmented graph (after super-entry/super-exit insertion,
// without the virtual back edge, which appears only as the synthetic arc in
// Arcs). Regions are in pre-order over the program structure tree: parents
// precede children and the root region, which spans every reachable node,
// is always Regions[0].
type Result struct {
	Graph       *cfg.Graph
	Entry, Exit string
	Arcs        []Arc
	Regions     []Region
	DFS         map[string]NodeInfo
	Unreachable []string
	Warnings    []string
}

// Analyze computes the canonical SESE decomposition and program structure
// tree of g. It is a pure function: g is not modified, no I/O happens, and
// the same input always produces the identical result.
//
// Errors carry serr codes: INVALID_INPUT for an empty graph or a reserved
// label collision, INTERNAL_INVARIANT when a post-analysis consistency
// check fails.
func Analyze(g *cfg.Graph) (*Result, error) {
	if g == nil || g.NodeCount() == 0 {
		return nil, serr.E(serr.ErrInvalidInput, "analyze", "graph has no nodes")
	}

	aug, entry, exit, warnings, err := augment(g)
	if err != nil {
		return nil, err
	}

	a := newAnalyzer(aug, entry, exit)
	a.dfs()
	a.computeClasses()
	if err := a.checkClassified(); err != nil {
		return nil, err
	}
	drafts, err := a.synthesizeRegions()
	if err != nil {
		return nil, err
	}
	regions, err := a.assemble(drafts)
	if err != nil {
		return nil, err
	}

	var unreachable []string
	for i, label := range a.labels {
		if a.dfsnum[i] < 0 {
			unreachable = append(unreachable, label)
		}
	}
	if len(unreachable) > 0 {
		warnings = append(warnings, fmt.Sprintf("%d node(s) unreachable from %s; excluded from regions", len(unreachable), entry))
	}

	dfs := make(map[string]NodeInfo, len(a.byDfs))
	for _, n := range a.byDfs {
		dfs[a.labels[n]] = NodeInfo{
			Enter:     a.dfsnum[n],
			Leave:     a.leave[n],
			ParentArc: a.parentArc[n],
		}
	}

	return &Result{
		Graph:       aug,
		Entry:       entry,
		Exit:        exit,
		Arcs:        a.arcs,
		Regions:     regions,
		DFS:         dfs,
		Unreachable: unreachable,
		Warnings:    warnings,
	}, nil
}

// Region returns the region with the given id.
func (r *Result) Region(id int) (Region, bool) {
	if id < 0 || id >= len(r.Regions) {
		return Region{}, false
	}
	return r.Regions[id], true
}

// Children returns the ids of the regions whose parent is id, in pre-order.
func (r *Result) Children(id int) []int {
	var out []int
	for _, reg := range r.Regions {
		if reg.Parent == id {
			out = append(out, reg.ID)
		}
	}
	return out
}

// OwnNodes returns the nodes of the region that belong to no child region,
// preserving the region's sorted order. Visualizers use this to emit
// disjoint nested clusters.
func (r *Result) OwnNodes(id int) []string {
	reg, ok := r.Region(id)
	if !ok {
		return nil
	}
	claimed := make(map[string]bool)
	for _, child := range r.Regions {
		if child.Parent != id {
			continue
		}
		for _, n := range child.Nodes {
			claimed[n] = true
		}
	}
	var own []string
	for _, n := range reg.Nodes {
		if !claimed[n] {
			own = append(own, n)
		}
	}
	return own
}

// ArcClasses returns the arc→class mapping for every classified arc.
func (r *Result) ArcClasses() map[int]int {
	out := make(map[int]int, len(r.Arcs))
	for _, a := range r.Arcs {
		if a.Class >= 0 {
			out[a.ID] = a.Class
		}
	}
	return out
}
