// Package diagram turns a selection into a node/edge graph following the
// fixed category flow of the designer, plus a deterministic Graphviz DOT
// rendering of that graph.
package diagram

import (
	"fmt"

	schemadesign "archplan/core/schema/v1/design"
)

// Node is one component instance. IDs follow the "<category>_<index>"
// convention so a category with several components yields several nodes.
type Node struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Edge is one directed component-to-component connection.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is an immutable rendering of one selection.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// categoryFlow is the fixed data/control flow between categories. Component
// edges expand each pair to the full bipartite set between the two
// categories' nodes.
var categoryFlow = [][2]string{
	{schemadesign.KeyAPILayer, schemadesign.KeyAgenticAI},
	{schemadesign.KeyAgenticAI, schemadesign.KeyRAGStack},
	{schemadesign.KeyRAGStack, schemadesign.KeyLLMServing},
	{schemadesign.KeyIngestion, schemadesign.KeyProcessing},
	{schemadesign.KeyProcessing, schemadesign.KeyStorage},
	{schemadesign.KeyStorage, schemadesign.KeyRAGStack},
	{schemadesign.KeyMLOps, schemadesign.KeyLLMServing},
	{schemadesign.KeyCICD, schemadesign.KeyAPILayer},
	{schemadesign.KeyDRResilience, schemadesign.KeyStorage},
}

// Build produces the graph for one selection. Node order follows category
// order, edge order follows the fixed category flow; identical selections
// produce identical graphs.
func Build(selection schemadesign.Selection) Graph {
	categories := selection.Categories()
	countByKey := make(map[string]int, len(categories))

	nodes := make([]Node, 0, 32)
	for _, category := range categories {
		countByKey[category.Key] = len(category.Components)
		for index, component := range category.Components {
			nodes = append(nodes, Node{
				ID:       nodeID(category.Key, index),
				Label:    fmt.Sprintf("%s\n(%s)", component, category.Key),
				Category: category.Key,
			})
		}
	}

	edges := make([]Edge, 0, 64)
	for _, flow := range categoryFlow {
		sourceCount := countByKey[flow[0]]
		targetCount := countByKey[flow[1]]
		for sourceIndex := 0; sourceIndex < sourceCount; sourceIndex++ {
			for targetIndex := 0; targetIndex < targetCount; targetIndex++ {
				edges = append(edges, Edge{
					Source: nodeID(flow[0], sourceIndex),
					Target: nodeID(flow[1], targetIndex),
				})
			}
		}
	}

	return Graph{Nodes: nodes, Edges: edges}
}

func nodeID(category string, index int) string {
	return fmt.Sprintf("%s_%d", category, index)
}
