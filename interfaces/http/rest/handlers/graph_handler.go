package handlers

import (
	"net/http"

	"docgraph/application/queries"
	querybus "docgraph/application/queries/bus"
	"docgraph/pkg/common"
	"docgraph/pkg/errors"

	"go.uber.org/zap"
)

// GraphHandler serves graph-level read endpoints
type GraphHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetGraphData handles GET /graph-data.
//
// The payload is written unwrapped: its shape is the document consumed
// by frontend graph renderers, so the usual response envelope would
// break consumers.
func (h *GraphHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphDataQuery{})
	if err != nil {
		h.logger.Error("Failed to get graph data", zap.Error(err))
		respondAppError(w, err)
		return
	}

	common.RespondRaw(w, http.StatusOK, result)
}

// GetStats handles GET /stats
func (h *GraphHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetStatsQuery{})
	if err != nil {
		h.logger.Error("Failed to get stats", zap.Error(err))
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// respondAppError maps an application error to an HTTP error response
func respondAppError(w http.ResponseWriter, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		common.RespondError(w, appErr.HTTPStatus, string(appErr.Type), appErr.Message)
		return
	}
	common.RespondError(w, http.StatusInternalServerError, string(errors.ErrorTypeInternal), "internal error")
}
