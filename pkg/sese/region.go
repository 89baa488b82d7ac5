package sese

import (
	"slices"

	"github.com/klintqinami/sese-regions/pkg/serr"
)

// Region is a single-entry/single-exit region of the augmented graph.
//
// Entry and Exit are arc ids into Result.Arcs. Nodes is the full (inclusive)
// set of node labels contained in the region, sorted lexicographically;
// nodes of nested child regions are included, so parent sets always contain
// child sets. Parent is the id of the smallest strictly containing region,
// or -1 for the root.
//
// Degenerate regions represent single-arc equivalence classes (self-loops
// and lone back arcs): Entry equals Exit and Nodes is empty.
type Region struct {
	ID         int
	Entry      int
	Exit       int
	Nodes      []string
	Parent     int
	Degenerate bool
}

// regionDraft is a region before PST assembly renumbers it.
type regionDraft struct {
	entry, exit int
	nodes       []int // node indices, ascending dfsnum
	degenerate  bool
	disc        int // traversal order of the delimiting arc, for child ordering
}

// synthesizeRegions buckets arcs by equivalence class and cuts each class
// chain into canonical regions.
//
// Within a class, arcs are ordered by traversal discovery, which places
// them top-down along the DFS tree path they share; every consecutive pair
// delimits one region. The pair ending at the synthetic back arc is not
// emitted: that boundary belongs to the root region, which is created
// directly and contains every reachable node. Single-arc classes produce a
// degenerate region when the arc is a backedge (a self-loop or a lone loop
// arc); a single-arc class on a tree arc is a bridge and bounds nothing.
func (a *analyzer) synthesizeRegions() ([]*regionDraft, error) {
	classArcs := make([][]int, a.nclass)
	byDisc := make([]int, 0, len(a.arcs))
	for id := range a.arcs {
		if a.disc[id] >= 0 {
			byDisc = append(byDisc, id)
		}
	}
	slices.SortFunc(byDisc, func(x, y int) int { return a.disc[x] - a.disc[y] })
	for _, id := range byDisc {
		if c := a.arcs[id].Class; c >= 0 {
			classArcs[c] = append(classArcs[c], id)
		}
	}

	root := &regionDraft{
		entry: a.syn,
		exit:  a.syn,
		nodes: slices.Clone(a.byDfs),
		disc:  -1,
	}
	drafts := []*regionDraft{root}

	for _, arcs := range classArcs {
		if len(arcs) == 1 {
			aid := arcs[0]
			if a.arcs[aid].Back && !a.arcs[aid].Synthetic {
				drafts = append(drafts, &regionDraft{
					entry:      aid,
					exit:       aid,
					degenerate: true,
					disc:       a.disc[aid],
				})
			}
			continue
		}
		for i := 0; i+1 < len(arcs); i++ {
			x, y := arcs[i], arcs[i+1]
			if a.arcs[y].Synthetic {
				continue
			}
			if a.arcs[x].Back || a.arcs[x].Synthetic {
				return nil, serr.E(serr.ErrInvariant, "regions",
					"class chain has interior backedge %s", a.arcs[x])
			}
			d, err := a.pairRegion(x, y)
			if err != nil {
				return nil, err
			}
			drafts = append(drafts, d)
		}
	}
	return drafts, nil
}

// pairRegion builds the region delimited by two consecutive class members.
// x is the arc nearer the root; its subtree slice, minus the slice below y,
// is the region's node set.
func (a *analyzer) pairRegion(x, y int) (*regionDraft, error) {
	hx := a.childOf(x)
	var nodes []int
	if a.arcs[y].Back {
		nodes = slices.Clone(a.byDfs[a.dfsnum[hx] : a.leave[hx]+1])
	} else {
		hy := a.childOf(y)
		if a.dfsnum[hy] <= a.dfsnum[hx] || a.leave[hy] > a.leave[hx] {
			return nil, serr.E(serr.ErrInvariant, "regions",
				"class members %s and %s are not nested on the DFS tree", a.arcs[x], a.arcs[y])
		}
		nodes = append(nodes, a.byDfs[a.dfsnum[hx]:a.dfsnum[hy]]...)
		nodes = append(nodes, a.byDfs[a.leave[hy]+1:a.leave[hx]+1]...)
	}

	entry, exit := x, y
	inside := make(map[int]bool, len(nodes))
	for _, nd := range nodes {
		inside[nd] = true
	}
	// Canonical orientation: the entry arc points into the region in the
	// original direction, the exit arc points out of it.
	if !inside[a.index[a.arcs[x].To]] && inside[a.index[a.arcs[y].To]] {
		entry, exit = y, x
	}
	return &regionDraft{entry: entry, exit: exit, nodes: nodes, disc: a.disc[x]}, nil
}
