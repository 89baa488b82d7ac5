package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klintqinami/sese-regions/pkg/cfg"
	"github.com/klintqinami/sese-regions/pkg/serr"
	"github.com/klintqinami/sese-regions/pkg/sese"
)

func diamond(t *testing.T) *cfg.Graph {
	t.Helper()
	g := cfg.New()
	for _, n := range []string{"S", "A", "B", "C", "D", "T"} {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	for _, e := range [][2]string{{"S", "A"}, {"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "T"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	return g
}

func TestGraphRoundTrip(t *testing.T) {
	g := diamond(t)

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	back, err := ReadGraph(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	if !reflect.DeepEqual(back.Nodes(), g.Nodes()) {
		t.Errorf("nodes differ after round-trip: %v", back.Nodes())
	}
	if !reflect.DeepEqual(back.Edges(), g.Edges()) {
		t.Errorf("edges differ after round-trip")
	}
}

func TestReadGraph_ImplicitNodes(t *testing.T) {
	input := `{"edges": [{"from": "a", "to": "b"}, {"from": "b", "to": "c"}]}`
	g, err := ReadGraph(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	if got := g.Nodes(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("implicit nodes = %v, want [a b c]", got)
	}
}

func TestReadGraph_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Garbage", "not json"},
		{"EmptyGraph", `{"nodes": [], "edges": []}`},
		{"DuplicateNode", `{"nodes": [{"id": "a"}, {"id": "a"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadGraph(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ReadGraph(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestReadGraphTOML(t *testing.T) {
	input := `
nodes = ["S", "A", "T"]

[[edge]]
from = "S"
to = "A"

[[edge]]
from = "A"
to = "T"
`
	g, err := ReadGraphTOML([]byte(input))
	if err != nil {
		t.Fatalf("ReadGraphTOML: %v", err)
	}
	if got := g.Nodes(); !reflect.DeepEqual(got, []string{"S", "A", "T"}) {
		t.Errorf("nodes = %v", got)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("edges = %d, want 2", g.EdgeCount())
	}
}

func TestReadGraphFile_Dispatch(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "g.json")
	if err := WriteGraphFile(diamond(t), jsonPath); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}
	if _, err := ReadGraphFile(jsonPath); err != nil {
		t.Errorf("ReadGraphFile(json): %v", err)
	}

	tomlPath := filepath.Join(dir, "g.toml")
	if err := os.WriteFile(tomlPath, []byte("[[edge]]\nfrom = \"a\"\nto = \"b\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := ReadGraphFile(tomlPath)
	if err != nil {
		t.Fatalf("ReadGraphFile(toml): %v", err)
	}
	if g.NodeCount() != 2 {
		t.Errorf("toml graph nodes = %d, want 2", g.NodeCount())
	}

	if _, err := ReadGraphFile(filepath.Join(dir, "missing.json")); !errors.Is(err, serr.ErrNotFound) {
		t.Errorf("missing file error = %v, want ErrNotFound", err)
	}
}

func TestMarshalResult(t *testing.T) {
	res, err := sese.Analyze(diamond(t))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	data, err := MarshalResult(res)
	if err != nil {
		t.Fatalf("MarshalResult: %v", err)
	}

	var doc ResultDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Entry != "S" || doc.Exit != "T" {
		t.Errorf("entry/exit = %s/%s", doc.Entry, doc.Exit)
	}
	if len(doc.Regions) != len(res.Regions) {
		t.Fatalf("regions = %d, want %d", len(doc.Regions), len(res.Regions))
	}
	if doc.Regions[0].Parent != nil {
		t.Errorf("root parent = %v, want null", *doc.Regions[0].Parent)
	}
	for _, r := range doc.Regions[1:] {
		if r.Parent == nil {
			t.Errorf("region %d has null parent", r.ID)
		}
	}
	// One synthetic arc, carrying the root class.
	synthetic := 0
	for _, a := range doc.Arcs {
		if a.Synthetic {
			synthetic++
		}
	}
	if synthetic != 1 {
		t.Errorf("synthetic arcs = %d, want 1", synthetic)
	}
}
