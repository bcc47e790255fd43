package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"docgraph/application/commands"
	"docgraph/application/commands/bus"
	"docgraph/application/services"
)

// RebuildGraphHandler runs the assembler and publishes the new build
type RebuildGraphHandler struct {
	assembler *services.AssemblerService
	holder    *services.GraphHolder
	logger    *zap.Logger
}

// NewRebuildGraphHandler creates a rebuild handler
func NewRebuildGraphHandler(
	assembler *services.AssemblerService,
	holder *services.GraphHolder,
	logger *zap.Logger,
) *RebuildGraphHandler {
	return &RebuildGraphHandler{
		assembler: assembler,
		holder:    holder,
		logger:    logger,
	}
}

// Handle executes the rebuild command
func (h *RebuildGraphHandler) Handle(ctx context.Context, cmd bus.Command) error {
	rebuild, ok := cmd.(commands.RebuildGraphCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	result, err := h.assembler.Assemble(ctx)
	if err != nil {
		h.logger.Error("Graph rebuild failed",
			zap.String("reason", rebuild.Reason),
			zap.Error(err),
		)
		return err
	}

	h.holder.Set(result)

	h.logger.Info("Graph rebuilt",
		zap.String("runID", result.RunID),
		zap.String("reason", rebuild.Reason),
		zap.Int("nodes", result.Graph.NodeCount()),
		zap.Int("links", result.Graph.LinkCount()),
	)

	return nil
}
