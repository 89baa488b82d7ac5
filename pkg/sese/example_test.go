package sese_test

import (
	"fmt"

	"github.com/klintqinami/sese-regions/pkg/cfg"
	"github.com/klintqinami/sese-regions/pkg/sese"
)

func ExampleAnalyze() {
	// A diamond: one branch region per path, nested in the diamond region.
	g := cfg.New()
	for _, n := range []string{"S", "A", "B", "C", "D", "T"} {
		_ = g.AddNode(n)
	}
	for _, e := range [][2]string{{"S", "A"}, {"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "T"}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, _ := sese.Analyze(g)
	for _, r := range res.Regions {
		fmt.Println(r.ID, r.Parent, r.Nodes)
	}
	// Output:
	// 0 -1 [A B C D S T]
	// 1 0 [A B C D]
	// 2 1 [B]
	// 3 1 [C]
}

func ExampleAnalyze_multiSource() {
	// Two sources force a super-entry node into the augmented graph.
	g := cfg.New()
	for _, n := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(n)
	}
	for _, e := range [][2]string{{"A", "C"}, {"B", "C"}, {"C", "D"}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, _ := sese.Analyze(g)
	fmt.Println("entry:", res.Entry)
	fmt.Println("exit:", res.Exit)
	// Output:
	// entry: __entry__
	// exit: D
}
