package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sakif/farm-assistant/internal/model"
	"github.com/sakif/farm-assistant/internal/repository"
)

// recordActivity appends a history feed entry, best-effort. Feed writes are
// bookkeeping around an already-successful response — a storage hiccup gets
// logged, never surfaced to the caller. No-op when UserID is empty.
func recordActivity(ctx context.Context, repo repository.ActivityRepository, logger *slog.Logger, activity model.Activity) {
	if activity.UserID == "" {
		return
	}
	if err := repo.CreateActivity(ctx, &activity); err != nil {
		logger.Warn("failed to record activity",
			slog.String("userId", activity.UserID),
			slog.String("type", activity.Type),
			slog.String("error", err.Error()),
		)
	}
}

// ActivityHandler serves the per-user history feed.
type ActivityHandler struct {
	activities repository.ActivityRepository
	logger     *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(activities repository.ActivityRepository, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{activities: activities, logger: logger}
}

// HandleListByUser processes GET /api/activities/{userId}. An id with no
// activity yields an empty list — the feed doesn't care whether the user
// exists.
func (h *ActivityHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "user id is required"})
		return
	}

	activities, err := h.activities.ListActivitiesByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list activities",
			slog.String("userId", userID),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activities)
}
