package graphio

import (
	"github.com/BurntSushi/toml"

	"github.com/klintqinami/sese-regions/pkg/cfg"
	"github.com/klintqinami/sese-regions/pkg/serr"
)

// tomlGraph is the on-disk shape of a hand-written adjacency file:
//
//	nodes = ["S", "A", "T"]
//
//	[[edge]]
//	from = "S"
//	to   = "A"
//
//	[[edge]]
//	from = "A"
//	to   = "T"
//
// The nodes list is optional; nodes referenced only by edges are created in
// edge order.
type tomlGraph struct {
	Nodes []string `toml:"nodes"`
	Edges []Edge   `toml:"edge"`
}

// ReadGraphTOML decodes a graph from TOML adjacency data.
func ReadGraphTOML(data []byte) (*cfg.Graph, error) {
	var tg tomlGraph
	if err := toml.Unmarshal(data, &tg); err != nil {
		return nil, serr.Wrap(serr.ErrBadFormat, "decode", err, "TOML graph")
	}
	doc := Document{Edges: tg.Edges}
	for _, id := range tg.Nodes {
		doc.Nodes = append(doc.Nodes, Node{ID: id})
	}
	return doc.ToGraph()
}
