package sese

import (
	"fmt"

	"github.com/klintqinami/sese-regions/pkg/cfg"
	"github.com/klintqinami/sese-regions/pkg/serr"
)

// Reserved labels for the synthetic nodes inserted by augmentation.
const (
	EntryLabel = "__entry__"
	ExitLabel  = "__exit__"
)

// augment returns a copy of in that has a single entry and a single exit.
//
// If the graph has exactly one source it becomes the entry; otherwise a
// synthetic EntryLabel node is inserted with an edge to every source, in
// the graph's node order. Sinks are handled symmetrically with ExitLabel.
// A graph with no sources at all (every node on a cycle) gets a synthesized
// entry edge to its first-inserted node, and a warning records the choice;
// likewise for a graph with no sinks.
//
// The virtual back edge exit→entry is not part of the returned graph; the
// undirected view adds it as the synthetic arc.
func augment(in *cfg.Graph) (g *cfg.Graph, entry, exit string, warnings []string, err error) {
	g = in.Clone()
	sources := g.Sources()
	sinks := g.Sinks()
	first := g.Nodes()[0]

	switch {
	case len(sources) == 1:
		entry = sources[0]
	default:
		if g.HasNode(EntryLabel) {
			return nil, "", "", nil, serr.E(serr.ErrInvalidInput, "augment",
				"reserved label %q already present in the graph", EntryLabel)
		}
		entry = EntryLabel
		if err := g.AddNode(entry); err != nil {
			return nil, "", "", nil, serr.Wrap(serr.ErrInvariant, "augment", err, "insert entry node")
		}
		if len(sources) == 0 {
			warnings = append(warnings, fmt.Sprintf("graph has no source node; synthesized entry edge %s→%s", entry, first))
			sources = []string{first}
		}
		for _, s := range sources {
			if err := g.AddEdge(entry, s); err != nil {
				return nil, "", "", nil, serr.Wrap(serr.ErrInvariant, "augment", err, "connect entry to %s", s)
			}
		}
	}

	switch {
	case len(sinks) == 1:
		exit = sinks[0]
	default:
		if g.HasNode(ExitLabel) {
			return nil, "", "", nil, serr.E(serr.ErrInvalidInput, "augment",
				"reserved label %q already present in the graph", ExitLabel)
		}
		exit = ExitLabel
		if err := g.AddNode(exit); err != nil {
			return nil, "", "", nil, serr.Wrap(serr.ErrInvariant, "augment", err, "insert exit node")
		}
		if len(sinks) == 0 {
			warnings = append(warnings, fmt.Sprintf("graph has no sink node; synthesized exit edge %s→%s", first, exit))
			sinks = []string{first}
		}
		for _, s := range sinks {
			if err := g.AddEdge(s, exit); err != nil {
				return nil, "", "", nil, serr.Wrap(serr.ErrInvariant, "augment", err, "connect %s to exit", s)
			}
		}
	}

	return g, entry, exit, warnings, nil
}
