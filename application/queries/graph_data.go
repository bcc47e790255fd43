package queries

import (
	"docgraph/domain/core/aggregates"
)

// GraphData is the wire-contract document handed to the visualization layer.
// Field names and shapes are dictated by the consumer schema (integer node
// ids, camel-cased symbolSize, snake-cased is_index, stringified ids on link
// endpoints) and must be reproduced exactly.
type GraphData struct {
	Nodes map[string]GraphNode `json:"nodes"`
	Links []GraphLink          `json:"links"`
}

// GraphNode is the exported node record, keyed by identity key in GraphData
type GraphNode struct {
	ID         int    `json:"id"`
	SymbolSize int    `json:"symbolSize"`
	IsIndex    bool   `json:"is_index"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
}

// GraphLink is the exported directed link record
type GraphLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// NewGraphData projects a finished graph aggregate onto the wire contract
func NewGraphData(g *aggregates.Graph) *GraphData {
	data := &GraphData{
		Nodes: make(map[string]GraphNode, g.NodeCount()),
		Links: make([]GraphLink, 0, g.LinkCount()),
	}

	for _, node := range g.Nodes() {
		data.Nodes[node.Key().String()] = GraphNode{
			ID:         node.ID(),
			SymbolSize: node.Size(),
			IsIndex:    node.IsIndex(),
			Title:      node.Title(),
			URL:        node.URL(),
		}
	}

	for _, link := range g.Links() {
		data.Links = append(data.Links, GraphLink{
			Source: link.Source,
			Target: link.Target,
		})
	}

	return data
}

// GetGraphDataQuery requests the current run's wire-contract graph document
type GetGraphDataQuery struct{}

// Validate validates the query
func (q GetGraphDataQuery) Validate() error {
	return nil
}
