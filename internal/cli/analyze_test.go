package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klintqinami/sese-regions/pkg/graphio"
	"github.com/klintqinami/sese-regions/pkg/sese"
)

func TestRunAnalyze_FileToFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "g.json")
	output := filepath.Join(dir, "out.json")

	g, err := buildExample([][2]string{{"S", "A"}, {"A", "T"}})
	if err != nil {
		t.Fatalf("buildExample: %v", err)
	}
	if err := graphio.WriteGraphFile(g, input); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	c := New(io.Discard, LogInfo)
	if err := c.runAnalyze(input, output); err != nil {
		t.Fatalf("runAnalyze: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc graphio.ResultDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if doc.Entry != "S" || doc.Exit != "T" {
		t.Errorf("entry/exit = %s/%s", doc.Entry, doc.Exit)
	}
}

func TestRunAnalyze_MissingInput(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if err := c.runAnalyze(filepath.Join(t.TempDir(), "missing.json"), ""); err == nil {
		t.Errorf("runAnalyze succeeded on missing input")
	}
}

func TestRunExamples(t *testing.T) {
	dir := t.TempDir()
	c := New(io.Discard, LogInfo)
	if err := c.runExamples(dir); err != nil {
		t.Fatalf("runExamples: %v", err)
	}

	// Every written example must load and analyze cleanly.
	for _, ex := range exampleGraphs {
		path := filepath.Join(dir, ex.name+".json")
		g, err := graphio.ReadGraphFile(path)
		if err != nil {
			t.Errorf("read %s: %v", path, err)
			continue
		}
		if _, err := sese.Analyze(g); err != nil {
			t.Errorf("analyze %s: %v", ex.name, err)
		}
	}
}
