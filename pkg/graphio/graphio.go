package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klintqinami/sese-regions/pkg/cfg"
	"github.com/klintqinami/sese-regions/pkg/serr"
)

// Node is the serialized form of a graph node.
type Node struct {
	ID string `json:"id" toml:"id"`
}

// Edge represents a directed edge in the serialized graph.
type Edge struct {
	From string `json:"from" toml:"from"`
	To   string `json:"to" toml:"to"`
}

// Document is the canonical node-link serialization of a control-flow
// graph. Node and edge order is preserved, so a round-trip through
// [FromGraph] and [Document.ToGraph] reproduces the graph exactly.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// FromGraph converts a graph to its serialization form.
func FromGraph(g *cfg.Graph) Document {
	doc := Document{
		Nodes: make([]Node, 0, g.NodeCount()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for _, id := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, Node{ID: id})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To})
	}
	return doc
}

// ToGraph converts the document to a graph. Nodes referenced only by edges
// are created implicitly, in edge order after the declared nodes.
func (d Document) ToGraph() (*cfg.Graph, error) {
	g := cfg.New()
	for _, n := range d.Nodes {
		if err := g.AddNode(n.ID); err != nil {
			return nil, serr.Wrap(serr.ErrInvalidInput, "decode", err, "node %q", n.ID)
		}
	}
	for _, e := range d.Edges {
		for _, id := range []string{e.From, e.To} {
			if !g.HasNode(id) {
				if err := g.AddNode(id); err != nil {
					return nil, serr.Wrap(serr.ErrInvalidInput, "decode", err, "node %q", id)
				}
			}
		}
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, serr.Wrap(serr.ErrInvalidInput, "decode", err, "edge %s→%s", e.From, e.To)
		}
	}
	if g.NodeCount() == 0 {
		return nil, serr.E(serr.ErrInvalidInput, "decode", "graph has no nodes")
	}
	return g, nil
}

// MarshalGraph converts a graph to indented JSON bytes.
func MarshalGraph(g *cfg.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a graph as JSON to an io.Writer.
func WriteGraph(g *cfg.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return serr.Wrap(serr.ErrBadFormat, "encode", err, "graph")
	}
	return nil
}

// WriteGraphFile writes a graph to a JSON file, creating or truncating it
// with os.Create.
func WriteGraphFile(g *cfg.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a JSON graph from an io.Reader.
func ReadGraph(r io.Reader) (*cfg.Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, serr.Wrap(serr.ErrBadFormat, "decode", err, "graph")
	}
	return doc.ToGraph()
}

// ReadGraphFile reads a graph from a file, dispatching on the extension:
// .toml files use the TOML adjacency format, everything else is JSON.
func ReadGraphFile(path string) (*cfg.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(serr.ErrNotFound, "read", err, "%s", path)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ReadGraphTOML(data)
	}
	return ReadGraph(bytes.NewReader(data))
}
