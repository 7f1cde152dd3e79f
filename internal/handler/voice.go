package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/farm-assistant/internal/ai"
	"github.com/sakif/farm-assistant/internal/apperror"
	"github.com/sakif/farm-assistant/internal/model"
	"github.com/sakif/farm-assistant/internal/repository"
	"github.com/sakif/farm-assistant/internal/request"
)

// VoiceHandler serves the general-purpose voice assistant endpoint. Speech
// capture and synthesis live in the browser — by the time a query reaches
// this handler it's plain text.
type VoiceHandler struct {
	gateway    *ai.Service
	activities repository.ActivityRepository
	logger     *slog.Logger
}

// NewVoiceHandler creates a VoiceHandler.
func NewVoiceHandler(gateway *ai.Service, activities repository.ActivityRepository, logger *slog.Logger) *VoiceHandler {
	return &VoiceHandler{
		gateway:    gateway,
		activities: activities,
		logger:     logger,
	}
}

// HandleQuery processes POST /api/voice-query.
func (h *VoiceHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var req request.Query
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid voice query body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if fields := req.Validate(); fields != nil {
		writeError(w, apperror.Invalid(fields))
		return
	}

	response, err := h.gateway.VoiceQuery(r.Context(), req.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	recordActivity(r.Context(), h.activities, h.logger, model.Activity{
		UserID:      req.UserID,
		Type:        model.ActivityVoice,
		Title:       "Voice query processed",
		Description: req.Query,
		Icon:        "fas fa-microphone",
	})

	writeJSON(w, http.StatusOK, map[string]string{"response": response})
}
