package graphio

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/klintqinami/sese-regions/pkg/serr"
	"github.com/klintqinami/sese-regions/pkg/sese"
)

// ArcDoc is the serialized form of an undirected arc.
type ArcDoc struct {
	ID        int    `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Synthetic bool   `json:"synthetic,omitempty"`
	Back      bool   `json:"back,omitempty"`
	Class     int    `json:"class"`
}

// RegionDoc is the serialized form of a SESE region. Parent is null for the
// root region.
type RegionDoc struct {
	ID         int      `json:"id"`
	EntryArc   int      `json:"entry_arc"`
	ExitArc    int      `json:"exit_arc"`
	Nodes      []string `json:"nodes"`
	Parent     *int     `json:"parent_id"`
	Degenerate bool     `json:"degenerate,omitempty"`
}

// DFSDoc carries per-node traversal data for debugging.
type DFSDoc struct {
	Enter     int `json:"enter"`
	Leave     int `json:"leave"`
	ParentArc int `json:"parent_arc"`
}

// ResultDoc is the full serialization of an analysis result. Regions keep
// their pre-order: parents always precede children.
type ResultDoc struct {
	Entry       string            `json:"entry"`
	Exit        string            `json:"exit"`
	Augmented   Document          `json:"augmented"`
	Arcs        []ArcDoc          `json:"arcs"`
	Regions     []RegionDoc       `json:"regions"`
	DFS         map[string]DFSDoc `json:"dfs,omitempty"`
	Unreachable []string          `json:"unreachable,omitempty"`
	Warnings    []string          `json:"warnings,omitempty"`
}

// FromResult converts an analysis result to its serialization form.
func FromResult(res *sese.Result) ResultDoc {
	doc := ResultDoc{
		Entry:       res.Entry,
		Exit:        res.Exit,
		Augmented:   FromGraph(res.Graph),
		Arcs:        make([]ArcDoc, len(res.Arcs)),
		Regions:     make([]RegionDoc, len(res.Regions)),
		Unreachable: res.Unreachable,
		Warnings:    res.Warnings,
	}
	for i, a := range res.Arcs {
		doc.Arcs[i] = ArcDoc{
			ID:        a.ID,
			From:      a.From,
			To:        a.To,
			Synthetic: a.Synthetic,
			Back:      a.Back,
			Class:     a.Class,
		}
	}
	for i, r := range res.Regions {
		rd := RegionDoc{
			ID:         r.ID,
			EntryArc:   r.Entry,
			ExitArc:    r.Exit,
			Nodes:      r.Nodes,
			Degenerate: r.Degenerate,
		}
		if r.Parent >= 0 {
			parent := r.Parent
			rd.Parent = &parent
		}
		doc.Regions[i] = rd
	}
	if len(res.DFS) > 0 {
		doc.DFS = make(map[string]DFSDoc, len(res.DFS))
		for n, info := range res.DFS {
			doc.DFS[n] = DFSDoc{Enter: info.Enter, Leave: info.Leave, ParentArc: info.ParentArc}
		}
	}
	return doc
}

// MarshalResult converts a result to indented JSON bytes.
func MarshalResult(res *sese.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteResult(res, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteResult writes a result as JSON to an io.Writer.
func WriteResult(res *sese.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromResult(res)); err != nil {
		return serr.Wrap(serr.ErrBadFormat, "encode", err, "result")
	}
	return nil
}
