package dot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/klintqinami/sese-regions/pkg/sese"
)

// Options configures DOT emission.
type Options struct {
	// Detailed adds DFS numbers to node labels and class ids to edge
	// labels. When false, only the plain structure is shown.
	Detailed bool
}

// CFG converts the augmented control-flow graph of a result to Graphviz DOT.
// The synthetic entry and exit nodes are drawn with dashed outlines.
func CFG(res *sese.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph cfg {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, n := range res.Graph.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n, strings.Join(nodeAttrs(res, n, opts), ", "))
	}
	buf.WriteString("\n")
	writeEdges(&buf, res, opts, "  ")

	buf.WriteString("}\n")
	return buf.String()
}

// PST converts the program structure tree of a result to Graphviz DOT.
// Each region is one node labeled with its id, bounding arcs, and node set.
func PST(res *sese.Result, _ Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pst {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=rounded];\n")
	buf.WriteString("\n")

	for _, r := range res.Regions {
		label := fmt.Sprintf("R%d\\n%s .. %s", r.ID, res.Arcs[r.Entry], res.Arcs[r.Exit])
		if len(r.Nodes) > 0 {
			label += "\\n{" + strings.Join(r.Nodes, ", ") + "}"
		}
		attrs := fmt.Sprintf("label=%q", label)
		if r.Degenerate {
			attrs += ", style=\"rounded,dashed\""
		}
		fmt.Fprintf(&buf, "  r%d [%s];\n", r.ID, attrs)
	}
	buf.WriteString("\n")
	for _, r := range res.Regions {
		if r.Parent >= 0 {
			fmt.Fprintf(&buf, "  r%d -> r%d;\n", r.Parent, r.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Regions converts the augmented graph to DOT with every region rendered as
// a nested cluster. Each node appears in exactly one cluster: the leaf-most
// region containing it. Degenerate regions contribute no cluster.
func Regions(res *sese.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph regions {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	if len(res.Regions) > 0 {
		writeCluster(&buf, res, res.Regions[0].ID, opts, "  ")
	}
	buf.WriteString("\n")
	writeEdges(&buf, res, opts, "  ")

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, res *sese.Result, id int, opts Options, indent string) {
	r, _ := res.Region(id)
	fmt.Fprintf(buf, "%ssubgraph cluster_r%d {\n", indent, id)
	fmt.Fprintf(buf, "%s  label=\"R%d\";\n", indent, id)
	for _, n := range res.OwnNodes(id) {
		fmt.Fprintf(buf, "%s  %q [%s];\n", indent, n, strings.Join(nodeAttrs(res, n, opts), ", "))
	}
	for _, child := range res.Children(r.ID) {
		if c, _ := res.Region(child); c.Degenerate {
			continue
		}
		writeCluster(buf, res, child, opts, indent+"  ")
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

func nodeAttrs(res *sese.Result, n string, opts Options) []string {
	label := n
	if opts.Detailed {
		if info, ok := res.DFS[n]; ok {
			label = fmt.Sprintf("%s\n[%d,%d]", n, info.Enter, info.Leave)
		}
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n == sese.EntryLabel || n == sese.ExitLabel {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

func writeEdges(buf *bytes.Buffer, res *sese.Result, opts Options, indent string) {
	for _, a := range res.Arcs {
		if a.Synthetic {
			continue
		}
		if opts.Detailed {
			fmt.Fprintf(buf, "%s%q -> %q [label=\"c%d\"];\n", indent, a.From, a.To, a.Class)
		} else {
			fmt.Fprintf(buf, "%s%q -> %q;\n", indent, a.From, a.To)
		}
	}
}
