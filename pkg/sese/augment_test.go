package sese

import (
	"errors"
	"reflect"
	"testing"

	"github.com/klintqinami/sese-regions/pkg/cfg"
	"github.com/klintqinami/sese-regions/pkg/serr"
)

func TestAugment_UniqueSourceAndSink(t *testing.T) {
	g := build(t, []string{"S", "A", "T"}, [][2]string{{"S", "A"}, {"A", "T"}})
	aug, entry, exit, warns, err := augment(g)
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if entry != "S" || exit != "T" {
		t.Errorf("entry/exit = %s/%s, want S/T", entry, exit)
	}
	if aug.NodeCount() != 3 || aug.EdgeCount() != 2 {
		t.Errorf("augmentation changed the graph: %d nodes, %d edges", aug.NodeCount(), aug.EdgeCount())
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
}

func TestAugment_DoesNotMutateInput(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "C"}, {"B", "C"}})
	aug, _, _, _, err := augment(g)
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if g.NodeCount() != 3 {
		t.Errorf("input graph mutated: %v", g.Nodes())
	}
	if aug.NodeCount() != 4 {
		t.Errorf("augmented graph nodes = %d, want 4", aug.NodeCount())
	}
}

func TestAugment_MultiSourceOrder(t *testing.T) {
	// Super-entry edges must follow the original node order.
	g := build(t, []string{"b", "a", "c"}, [][2]string{{"b", "c"}, {"a", "c"}})
	aug, entry, _, _, err := augment(g)
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if entry != EntryLabel {
		t.Fatalf("entry = %s, want %s", entry, EntryLabel)
	}
	if got := aug.Successors(EntryLabel); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("super-entry successors = %v, want [b a]", got)
	}
}

func TestAugment_MultiSink(t *testing.T) {
	g := build(t, []string{"S", "A", "B"}, [][2]string{{"S", "A"}, {"S", "B"}})
	aug, _, exit, _, err := augment(g)
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if exit != ExitLabel {
		t.Fatalf("exit = %s, want %s", exit, ExitLabel)
	}
	if got := aug.Predecessors(ExitLabel); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("super-exit predecessors = %v, want [A B]", got)
	}
}

func TestAugment_ReservedCollision(t *testing.T) {
	g := build(t,
		[]string{"S", "A", ExitLabel, "B"},
		[][2]string{{"S", "A"}, {"S", ExitLabel}, {"S", "B"}},
	)
	_, _, _, _, err := augment(g)
	if !errors.Is(err, serr.ErrInvalidInput) {
		t.Errorf("augment = %v, want INVALID_INPUT", err)
	}
}

func TestAugment_SinklessCycle(t *testing.T) {
	g := build(t, []string{"S", "A", "B"}, [][2]string{{"S", "A"}, {"A", "B"}, {"B", "A"}})
	aug, _, exit, warns, err := augment(g)
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if exit != ExitLabel {
		t.Errorf("exit = %s, want %s", exit, ExitLabel)
	}
	// The synthesized exit edge leaves the first-inserted node.
	if !aug.HasEdge("S", ExitLabel) {
		t.Errorf("synthesized exit edge missing: %v", aug.Edges())
	}
	if len(warns) != 1 {
		t.Errorf("warnings = %v, want exactly one", warns)
	}
}

func TestAugment_SingleIsolatedNode(t *testing.T) {
	g := cfg.New()
	_ = g.AddNode("only")
	_, entry, exit, _, err := augment(g)
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if entry != "only" || exit != "only" {
		t.Errorf("entry/exit = %s/%s, want only/only", entry, exit)
	}
}
