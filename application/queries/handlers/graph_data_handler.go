package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"docgraph/application/queries"
	"docgraph/application/queries/bus"
	"docgraph/application/services"
)

// GraphDataHandler serves the wire-contract graph document for the current run
type GraphDataHandler struct {
	holder *services.GraphHolder
	logger *zap.Logger
}

// NewGraphDataHandler creates a graph data handler
func NewGraphDataHandler(holder *services.GraphHolder, logger *zap.Logger) *GraphDataHandler {
	return &GraphDataHandler{holder: holder, logger: logger}
}

// Handle executes the graph data query
func (h *GraphDataHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.GetGraphDataQuery); !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	result, err := h.holder.Get()
	if err != nil {
		return nil, err
	}

	data := queries.NewGraphData(result.Graph)

	h.logger.Debug("Graph data served",
		zap.String("runID", result.RunID),
		zap.Int("nodes", len(data.Nodes)),
		zap.Int("links", len(data.Links)),
	)

	return data, nil
}
