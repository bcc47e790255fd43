package handlers

import (
	"encoding/json"
	"net/http"

	"docgraph/application/commands"
	commandbus "docgraph/application/commands/bus"
	"docgraph/pkg/common"

	"go.uber.org/zap"
)

// RebuildHandler triggers graph reassembly over the document source
type RebuildHandler struct {
	commandBus *commandbus.CommandBus
	logger     *zap.Logger
}

// NewRebuildHandler creates a new rebuild handler
func NewRebuildHandler(commandBus *commandbus.CommandBus, logger *zap.Logger) *RebuildHandler {
	return &RebuildHandler{
		commandBus: commandBus,
		logger:     logger,
	}
}

// Rebuild handles POST /rebuild. The body is optional.
func (h *RebuildHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	var cmd commands.RebuildGraphCommand
	if r.Body != nil {
		// A malformed or empty body is tolerated, the reason is advisory only.
		_ = json.NewDecoder(r.Body).Decode(&cmd)
	}
	if cmd.Reason == "" {
		cmd.Reason = "api request"
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to rebuild graph",
			zap.String("reason", cmd.Reason),
			zap.Error(err),
		)
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusAccepted, map[string]string{
		"status": "rebuilt",
		"reason": cmd.Reason,
	})
}
