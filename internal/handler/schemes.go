package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/farm-assistant/internal/apperror"
	"github.com/sakif/farm-assistant/internal/model"
	"github.com/sakif/farm-assistant/internal/repository"
	"github.com/sakif/farm-assistant/internal/request"
	"github.com/sakif/farm-assistant/internal/service"
)

// SchemesHandler serves the government scheme catalog, search, and the
// keyword recommendation.
type SchemesHandler struct {
	schemes    *service.SchemesService
	activities repository.ActivityRepository
	logger     *slog.Logger
}

// NewSchemesHandler creates a SchemesHandler.
func NewSchemesHandler(schemes *service.SchemesService, activities repository.ActivityRepository, logger *slog.Logger) *SchemesHandler {
	return &SchemesHandler{
		schemes:    schemes,
		activities: activities,
		logger:     logger,
	}
}

// HandleList processes GET /api/schemes. An optional ?category= filters to
// an exact category match.
func (h *SchemesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		writeJSON(w, http.StatusOK, h.schemes.ByCategory(category))
		return
	}
	writeJSON(w, http.StatusOK, h.schemes.List())
}

// HandleSearch processes GET /api/schemes/search?q=.
func (h *SchemesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, apperror.ValidationFailed("q", "search query is required"))
		return
	}

	writeJSON(w, http.StatusOK, h.schemes.Search(query))
}

// HandleRecommend processes POST /api/schemes/recommend.
func (h *SchemesHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	var req request.Query
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid scheme recommendation body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if fields := req.Validate(); fields != nil {
		writeError(w, apperror.Invalid(fields))
		return
	}

	recommendation := h.schemes.Recommend(req.Query)

	recordActivity(r.Context(), h.activities, h.logger, model.Activity{
		UserID:      req.UserID,
		Type:        model.ActivityScheme,
		Title:       "Scheme recommendation requested",
		Description: "Query: " + req.Query,
		Icon:        "fas fa-landmark",
	})

	writeJSON(w, http.StatusOK, map[string]string{"recommendation": recommendation})
}
