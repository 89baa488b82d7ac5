package cfg

import (
	"errors"
	"reflect"
	"testing"
)

func TestGraph_AddNode(t *testing.T) {
	g := New()
	if err := g.AddNode("a"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(""); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(\"\") = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode("a"); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("duplicate AddNode = %v, want ErrDuplicateNodeID", err)
	}
}

func TestGraph_AddEdge(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")

	if err := g.AddEdge("x", "b"); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge unknown source = %v", err)
	}
	if err := g.AddEdge("a", "x"); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge unknown target = %v", err)
	}

	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	// Duplicate edges collapse into one.
	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("duplicate AddEdge: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}

	// Self-loops are allowed.
	if err := g.AddEdge("a", "a"); err != nil {
		t.Fatalf("self-loop AddEdge: %v", err)
	}
	if !g.HasEdge("a", "a") {
		t.Errorf("self-loop missing")
	}
}

func TestGraph_InsertionOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"z", "m", "a"} {
		g.AddNode(id)
	}
	g.AddEdge("z", "a")
	g.AddEdge("m", "a")

	if got := g.Nodes(); !reflect.DeepEqual(got, []string{"z", "m", "a"}) {
		t.Errorf("Nodes() = %v, want insertion order", got)
	}
	if got := g.Sources(); !reflect.DeepEqual(got, []string{"z", "m"}) {
		t.Errorf("Sources() = %v, want [z m]", got)
	}
	if got := g.Predecessors("a"); !reflect.DeepEqual(got, []string{"z", "m"}) {
		t.Errorf("Predecessors(a) = %v, want edge order", got)
	}
}

func TestGraph_SourcesAndSinks(t *testing.T) {
	g := New()
	for _, id := range []string{"s", "a", "t"} {
		g.AddNode(id)
	}
	g.AddEdge("s", "a")
	g.AddEdge("a", "t")

	if got := g.Sources(); !reflect.DeepEqual(got, []string{"s"}) {
		t.Errorf("Sources = %v", got)
	}
	if got := g.Sinks(); !reflect.DeepEqual(got, []string{"t"}) {
		t.Errorf("Sinks = %v", got)
	}
	if g.OutDegree("s") != 1 || g.InDegree("t") != 1 || g.InDegree("s") != 0 {
		t.Errorf("degree queries wrong")
	}
}

func TestGraph_Clone(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge("a", "b")

	c := g.Clone()
	c.AddNode("c")
	c.AddEdge("b", "c")

	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("clone mutation leaked into original")
	}
	if c.NodeCount() != 3 || c.EdgeCount() != 2 {
		t.Errorf("clone incomplete: %d nodes, %d edges", c.NodeCount(), c.EdgeCount())
	}
}

func TestFromAdjacency(t *testing.T) {
	tests := []struct {
		name    string
		order   []string
		adj     map[string]Adjacency
		wantErr error
	}{
		{
			name:  "Consistent",
			order: []string{"a", "b"},
			adj: map[string]Adjacency{
				"a": {Out: []string{"b"}},
				"b": {In: []string{"a"}},
			},
		},
		{
			name:    "Empty",
			order:   nil,
			adj:     nil,
			wantErr: ErrEmptyGraph,
		},
		{
			name:  "MissingIncoming",
			order: []string{"a", "b"},
			adj: map[string]Adjacency{
				"a": {Out: []string{"b"}},
				"b": {},
			},
			wantErr: ErrInconsistentAdjacency,
		},
		{
			name:  "PhantomIncoming",
			order: []string{"a", "b"},
			adj: map[string]Adjacency{
				"a": {},
				"b": {In: []string{"a"}},
			},
			wantErr: ErrInconsistentAdjacency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromAdjacency(tt.order, tt.adj)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromAdjacency = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromAdjacency: %v", err)
			}
			order, adj := g.ToAdjacency()
			round, err := FromAdjacency(order, adj)
			if err != nil {
				t.Fatalf("round-trip: %v", err)
			}
			if !reflect.DeepEqual(round.Edges(), g.Edges()) {
				t.Errorf("round-trip edges differ")
			}
		})
	}
}
