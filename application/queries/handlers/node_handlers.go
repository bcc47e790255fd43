package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"docgraph/application/queries"
	"docgraph/application/queries/bus"
	"docgraph/application/services"
	"docgraph/domain/core/entities"
	pkgerrors "docgraph/pkg/errors"
)

func nodeView(node *entities.Node) queries.NodeView {
	return queries.NodeView{
		ID:         node.ID(),
		Key:        node.Key().String(),
		Title:      node.Title(),
		URL:        node.URL(),
		IsIndex:    node.IsIndex(),
		SymbolSize: node.Size(),
	}
}

// GetNodeHandler serves a single node read model
type GetNodeHandler struct {
	holder *services.GraphHolder
	logger *zap.Logger
}

// NewGetNodeHandler creates a node handler
func NewGetNodeHandler(holder *services.GraphHolder, logger *zap.Logger) *GetNodeHandler {
	return &GetNodeHandler{holder: holder, logger: logger}
}

// Handle executes the node query
func (h *GetNodeHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetNodeQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	result, err := h.holder.Get()
	if err != nil {
		return nil, err
	}

	node, ok := result.Graph.NodeByID(q.NodeID)
	if !ok {
		return nil, pkgerrors.NewNotFoundError("node")
	}

	return nodeView(node), nil
}

// ListNodesHandler serves all nodes of the current run in id order
type ListNodesHandler struct {
	holder *services.GraphHolder
	logger *zap.Logger
}

// NewListNodesHandler creates a list handler
func NewListNodesHandler(holder *services.GraphHolder, logger *zap.Logger) *ListNodesHandler {
	return &ListNodesHandler{holder: holder, logger: logger}
}

// Handle executes the list query
func (h *ListNodesHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.ListNodesQuery); !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	result, err := h.holder.Get()
	if err != nil {
		return nil, err
	}

	nodes := result.Graph.Nodes()
	views := make([]queries.NodeView, 0, len(nodes))
	for _, node := range nodes {
		views = append(views, nodeView(node))
	}

	return views, nil
}

// StatsHandler serves summary statistics for the current run
type StatsHandler struct {
	holder *services.GraphHolder
	logger *zap.Logger
}

// NewStatsHandler creates a stats handler
func NewStatsHandler(holder *services.GraphHolder, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{holder: holder, logger: logger}
}

// Handle executes the stats query
func (h *StatsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.GetStatsQuery); !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	result, err := h.holder.Get()
	if err != nil {
		return nil, err
	}

	return queries.StatsResult{
		RunID:           result.RunID,
		Namespace:       result.Namespace,
		BuiltAt:         result.BuiltAt,
		DurationMillis:  result.Duration.Milliseconds(),
		NodeCount:       result.Graph.NodeCount(),
		LinkCount:       result.Graph.LinkCount(),
		UnresolvedCount: result.Unresolved,
		ClusterCount:    len(result.Graph.Clusters()),
		Density:         result.Graph.Density(),
	}, nil
}
