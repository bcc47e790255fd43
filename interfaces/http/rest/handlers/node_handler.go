package handlers

import (
	"net/http"
	"strconv"

	"docgraph/application/queries"
	querybus "docgraph/application/queries/bus"
	"docgraph/pkg/common"
	"docgraph/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NodeHandler serves per-node read endpoints
type NodeHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *NodeHandler {
	return &NodeHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetNode handles GET /nodes/{nodeID}
func (h *NodeHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "nodeID")
	nodeID, err := strconv.Atoi(raw)
	if err != nil || nodeID < 0 {
		common.RespondError(w, http.StatusBadRequest, string(errors.ErrorTypeValidation), "node id must be a non-negative integer")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetNodeQuery{NodeID: nodeID})
	if err != nil {
		h.logger.Debug("Failed to get node",
			zap.Int("nodeID", nodeID),
			zap.Error(err),
		)
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListNodes handles GET /nodes
func (h *NodeHandler) ListNodes(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListNodesQuery{})
	if err != nil {
		h.logger.Error("Failed to list nodes", zap.Error(err))
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
