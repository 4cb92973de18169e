package diagram

import (
	"fmt"
	"strings"
)

// RenderDOT serializes a graph as Graphviz DOT, one subgraph cluster per
// category, in graph order. Output is byte-stable for identical graphs.
func RenderDOT(graph Graph) string {
	var builder strings.Builder
	builder.WriteString("digraph architecture {\n")
	builder.WriteString("  rankdir=LR;\n")
	builder.WriteString("  node [shape=box, style=rounded];\n")

	clusterIndex := 0
	currentCategory := ""
	open := false
	for _, node := range graph.Nodes {
		if node.Category != currentCategory {
			if open {
				builder.WriteString("  }\n")
			}
			fmt.Fprintf(&builder, "  subgraph cluster_%d {\n", clusterIndex)
			fmt.Fprintf(&builder, "    label=%s;\n", quote(node.Category))
			clusterIndex++
			currentCategory = node.Category
			open = true
		}
		fmt.Fprintf(&builder, "    %s [label=%s];\n", quote(node.ID), quote(node.Label))
	}
	if open {
		builder.WriteString("  }\n")
	}

	for _, edge := range graph.Edges {
		fmt.Fprintf(&builder, "  %s -> %s;\n", quote(edge.Source), quote(edge.Target))
	}
	builder.WriteString("}\n")
	return builder.String()
}

func quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	return `"` + escaped + `"`
}
