package queries

import "errors"

// NodeView is the detailed per-node read model served by the HTTP surface
type NodeView struct {
	ID         int    `json:"id"`
	Key        string `json:"key"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	IsIndex    bool   `json:"is_index"`
	SymbolSize int    `json:"symbolSize"`
}

// GetNodeQuery requests one node by its dense integer id
type GetNodeQuery struct {
	NodeID int `json:"node_id"`
}

// Validate validates the query
func (q GetNodeQuery) Validate() error {
	if q.NodeID < 0 {
		return errors.New("node id cannot be negative")
	}
	return nil
}

// ListNodesQuery requests all nodes of the current run in id order
type ListNodesQuery struct{}

// Validate validates the query
func (q ListNodesQuery) Validate() error {
	return nil
}
