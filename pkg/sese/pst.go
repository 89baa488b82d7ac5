package sese

import (
	"slices"
	"sort"

	"github.com/klintqinami/sese-regions/pkg/serr"
)

// assemble nests the region drafts into the program structure tree and
// returns the regions in pre-order, parents before children, with ids
// renumbered to match that order (root is always id 0).
//
// Region node sets form a laminar family: any two are nested or disjoint.
// Sweeping the drafts from largest to smallest while tracking, per node,
// the smallest region seen so far makes each draft's parent the current
// owner of any of its nodes. Degenerate regions (empty node sets) attach
// to the innermost region owning their arc's source node.
func (a *analyzer) assemble(drafts []*regionDraft) ([]Region, error) {
	order := make([]int, len(drafts))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(x, y int) int {
		if d := len(drafts[y].nodes) - len(drafts[x].nodes); d != 0 {
			return d
		}
		return drafts[x].disc - drafts[y].disc
	})

	owner := make([]int, len(a.labels))
	for i := range owner {
		owner[i] = -1
	}
	parent := make([]int, len(drafts))
	for i := range parent {
		parent[i] = -1
	}

	for _, ri := range order {
		d := drafts[ri]
		if d.degenerate {
			continue
		}
		rep := d.nodes[0]
		if p := owner[rep]; p >= 0 {
			if len(drafts[p].nodes) <= len(d.nodes) {
				return nil, serr.E(serr.ErrInvariant, "pst",
					"region containment is not strict between %s and %s",
					a.arcs[d.entry], a.arcs[drafts[p].entry])
			}
			parent[ri] = p
		}
		for _, nd := range d.nodes {
			owner[nd] = ri
		}
	}
	for ri, d := range drafts {
		if !d.degenerate {
			continue
		}
		src := a.index[a.arcs[d.entry].From]
		parent[ri] = owner[src]
	}

	children := make([][]int, len(drafts))
	rootCount := 0
	for ri := range drafts {
		if p := parent[ri]; p >= 0 {
			children[p] = append(children[p], ri)
		} else {
			rootCount++
		}
	}
	if rootCount != 1 || parent[0] != -1 {
		return nil, serr.E(serr.ErrInvariant, "pst", "program structure tree has %d roots", rootCount)
	}
	for _, cs := range children {
		slices.SortFunc(cs, func(x, y int) int {
			if d := drafts[x].disc - drafts[y].disc; d != 0 {
				return d
			}
			return x - y
		})
	}

	// Pre-order emission with renumbered ids.
	regions := make([]Region, 0, len(drafts))
	newID := make([]int, len(drafts))
	stack := []int{0}
	for len(stack) > 0 {
		ri := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d := drafts[ri]
		id := len(regions)
		newID[ri] = id
		p := -1
		if parent[ri] >= 0 {
			p = newID[parent[ri]]
		}
		labels := make([]string, len(d.nodes))
		for i, nd := range d.nodes {
			labels[i] = a.labels[nd]
		}
		sort.Strings(labels)
		regions = append(regions, Region{
			ID:         id,
			Entry:      d.entry,
			Exit:       d.exit,
			Nodes:      labels,
			Parent:     p,
			Degenerate: d.degenerate,
		})
		// Push children in reverse so the first child is visited first.
		for i := len(children[ri]) - 1; i >= 0; i-- {
			stack = append(stack, children[ri][i])
		}
	}
	return regions, nil
}
