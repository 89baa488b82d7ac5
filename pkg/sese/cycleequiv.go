package sese

import (
	"github.com/klintqinami/sese-regions/pkg/cfg"
	"github.com/klintqinami/sese-regions/pkg/serr"
)

const (
	unclassified = -1
	infinity     = int(^uint(0) >> 1)
)

// analyzer carries all per-run state of the cycle-equivalence computation.
// Node labels are mapped to dense indices once; everything after that works
// on ints.
type analyzer struct {
	g      *cfg.Graph
	labels []string
	index  map[string]int
	entry  int
	exit   int

	arcs []Arc
	ends [][2]int // arc id -> endpoint node indices
	adj  [][]int  // node -> incident arc ids, in edge insertion order
	syn  int      // arc id of the synthetic back arc

	// DFS results
	dfsnum    []int // discovery index, -1 while unvisited; doubles as enter time
	leave     []int // highest dfsnum in the node's subtree
	parentArc []int // tree arc to the parent, -1 at the root
	byDfs     []int // dfsnum -> node index
	disc      []int // arc id -> traversal order, -1 if never traversed

	children  [][]int // node -> tree arc ids to children, in traversal order
	backsFrom [][]int // node -> backedges leaving this node toward an ancestor
	backsTo   [][]int // node -> backedges arriving from a descendant
	selfArcs  [][]int // node -> self-loop arc ids

	brackets []*bracket   // arc id -> bracket, for pushed backedges
	capsTo   [][]*bracket // node -> capping brackets expiring here
	blist    []bracketList
	hi       []int

	nclass int
}

func newAnalyzer(g *cfg.Graph, entry, exit string) *analyzer {
	labels := g.Nodes()
	a := &analyzer{
		g:      g,
		labels: labels,
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		a.index[l] = i
	}
	a.entry = a.index[entry]
	a.exit = a.index[exit]

	edges := g.Edges()
	a.arcs = make([]Arc, 0, len(edges)+1)
	a.ends = make([][2]int, 0, len(edges)+1)
	a.adj = make([][]int, len(labels))
	for _, e := range edges {
		a.addArc(e.From, e.To, false)
	}
	a.syn = a.addArc(exit, entry, true)

	n, m := len(labels), len(a.arcs)
	a.dfsnum = make([]int, n)
	a.leave = make([]int, n)
	a.parentArc = make([]int, n)
	a.disc = make([]int, m)
	for i := range a.dfsnum {
		a.dfsnum[i] = -1
		a.parentArc[i] = -1
	}
	for i := range a.disc {
		a.disc[i] = -1
	}
	a.children = make([][]int, n)
	a.backsFrom = make([][]int, n)
	a.backsTo = make([][]int, n)
	a.selfArcs = make([][]int, n)
	a.brackets = make([]*bracket, m)
	a.capsTo = make([][]*bracket, n)
	a.blist = make([]bracketList, n)
	a.hi = make([]int, n)
	return a
}

func (a *analyzer) addArc(from, to string, synthetic bool) int {
	id := len(a.arcs)
	u, v := a.index[from], a.index[to]
	a.arcs = append(a.arcs, Arc{ID: id, From: from, To: to, Synthetic: synthetic, Class: unclassified})
	a.ends = append(a.ends, [2]int{u, v})
	a.adj[u] = append(a.adj[u], id)
	if v != u {
		a.adj[v] = append(a.adj[v], id)
	}
	return id
}

// dfs runs the undirected depth-first search from the entry node with an
// explicit stack, so recursion depth never limits graph size. Every arc is
// traversed exactly once, at its first encounter: an arc to an unvisited
// node becomes a tree arc, an arc to a visited node is a backedge from the
// deeper endpoint to an ancestor (undirected DFS produces no cross edges),
// and the later encounter from the ancestor's side is skipped.
func (a *analyzer) dfs() {
	type frame struct {
		node int
		scan int
	}
	traversed := make([]bool, len(a.arcs))
	clock, order := 0, 0

	visit := func(v int) {
		a.dfsnum[v] = clock
		a.byDfs = append(a.byDfs, v)
		clock++
	}

	visit(a.entry)
	stack := []frame{{node: a.entry}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.scan >= len(a.adj[f.node]) {
			a.leave[f.node] = clock - 1
			stack = stack[:len(stack)-1]
			continue
		}
		aid := a.adj[f.node][f.scan]
		f.scan++
		if traversed[aid] {
			continue
		}
		traversed[aid] = true
		a.disc[aid] = order
		order++

		u, v := a.ends[aid][0], a.ends[aid][1]
		if u == v {
			a.arcs[aid].Back = true
			a.selfArcs[f.node] = append(a.selfArcs[f.node], aid)
			continue
		}
		m := u + v - f.node
		if a.dfsnum[m] < 0 {
			a.children[f.node] = append(a.children[f.node], aid)
			a.parentArc[m] = aid
			visit(m)
			stack = append(stack, frame{node: m})
		} else {
			a.arcs[aid].Back = true
			a.backsFrom[f.node] = append(a.backsFrom[f.node], aid)
			a.backsTo[m] = append(a.backsTo[m], aid)
		}
	}
}

func (a *analyzer) newClass() int {
	c := a.nclass
	a.nclass++
	return c
}

// childOf returns the child endpoint of a tree arc.
func (a *analyzer) childOf(arc int) int {
	u, v := a.ends[arc][0], a.ends[arc][1]
	if a.parentArc[u] == arc {
		return u
	}
	return v
}

// otherEnd returns the endpoint of arc that is not n.
func (a *analyzer) otherEnd(arc, n int) int {
	return a.ends[arc][0] + a.ends[arc][1] - n
}

// computeClasses walks the DFS tree bottom-up (descending dfsnum, so every
// child is handled before its parent) and assigns a cycle-equivalence class
// to each arc, maintaining per-node bracket lists.
//
// At each node the bracket lists of the children are spliced together,
// brackets that expire here are removed, the node's own backedges are
// pushed, and a capping bracket separates the classes of siblings whose
// subtrees both reach above this node. The tree arc to the parent takes the
// class recorded on the topmost bracket; a fresh class is allocated whenever
// that bracket is seen on top with a different list size. A topmost lone
// bracket makes its backedge equivalent to the tree arc.
func (a *analyzer) computeClasses() {
	for i := len(a.byDfs) - 1; i >= 0; i-- {
		n := a.byDfs[i]

		// Self-loops span no tree edge; each is its own class.
		for _, aid := range a.selfArcs[n] {
			a.arcs[aid].Class = a.newClass()
		}

		hi0 := infinity
		for _, aid := range a.backsFrom[n] {
			if d := a.dfsnum[a.otherEnd(aid, n)]; d < hi0 {
				hi0 = d
			}
		}
		hi1, hi2 := infinity, infinity
		for _, ca := range a.children[n] {
			h := a.hi[a.childOf(ca)]
			if h < hi1 {
				hi1, hi2 = h, hi1
			} else if h < hi2 {
				hi2 = h
			}
		}
		a.hi[n] = min(hi0, hi1)

		bl := &a.blist[n]
		for _, ca := range a.children[n] {
			bl.concat(&a.blist[a.childOf(ca)])
		}
		for _, d := range a.capsTo[n] {
			bl.remove(d)
		}
		for _, aid := range a.backsTo[n] {
			bl.remove(a.brackets[aid])
			if a.arcs[aid].Class == unclassified {
				a.arcs[aid].Class = a.newClass()
			}
		}
		for _, aid := range a.backsFrom[n] {
			b := &bracket{arc: aid}
			a.brackets[aid] = b
			bl.push(b)
		}
		// A second child whose subtree reaches above n needs a capping
		// bracket so the sibling subtrees do not share classes. The
		// target must be a proper ancestor; a subtree whose backedges
		// stay below n contributes nothing to any enclosing cycle.
		if hi2 < hi0 && hi2 < a.dfsnum[n] {
			d := &bracket{arc: -1}
			a.capsTo[a.byDfs[hi2]] = append(a.capsTo[a.byDfs[hi2]], d)
			bl.push(d)
		}

		pa := a.parentArc[n]
		if pa < 0 {
			continue
		}
		b := bl.top()
		if b == nil {
			// The tree arc to the parent is a bridge: no cycle
			// contains it, so it is equivalent to nothing.
			a.arcs[pa].Class = a.newClass()
			continue
		}
		if b.recentSize != bl.size {
			b.recentSize = bl.size
			b.recentClass = a.newClass()
		}
		a.arcs[pa].Class = b.recentClass
		if b.recentSize == 1 && !b.capping() {
			a.arcs[b.arc].Class = a.arcs[pa].Class
		}
	}
}

// checkClassified verifies that every arc between reachable nodes received a
// class. A violation means the bracket bookkeeping went wrong.
func (a *analyzer) checkClassified() error {
	for id := range a.arcs {
		u, v := a.ends[id][0], a.ends[id][1]
		if a.dfsnum[u] < 0 || a.dfsnum[v] < 0 {
			continue
		}
		if a.arcs[id].Class == unclassified {
			return serr.E(serr.ErrInvariant, "classify", "arc %s left unclassified", a.arcs[id])
		}
	}
	return nil
}
