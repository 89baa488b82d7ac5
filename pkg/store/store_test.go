package store

import (
	"testing"

	"github.com/klintqinami/sese-regions/pkg/graphio"
)

func TestNewRecord(t *testing.T) {
	doc := graphio.ResultDoc{Entry: "S", Exit: "T"}

	a := NewRecord(doc, "hash-1")
	b := NewRecord(doc, "hash-1")

	if a.ID == "" || b.ID == "" {
		t.Fatalf("record ids empty")
	}
	if a.ID == b.ID {
		t.Errorf("record ids collide: %s", a.ID)
	}
	if a.GraphHash != "hash-1" {
		t.Errorf("graph hash = %s", a.GraphHash)
	}
	if a.CreatedAt.IsZero() {
		t.Errorf("created_at not set")
	}
	if a.Result.Entry != "S" {
		t.Errorf("result not carried: %+v", a.Result)
	}
}
