// Package handler contains the HTTP layer: one handler struct per
// capability area, each following the same skeleton — decode, validate,
// call the service or AI gateway, optionally record activity, write JSON.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/sakif/farm-assistant/internal/ai"
	"github.com/sakif/farm-assistant/internal/apperror"
	"github.com/sakif/farm-assistant/internal/model"
	"github.com/sakif/farm-assistant/internal/repository"
	"github.com/sakif/farm-assistant/internal/request"
)

// dataURIPrefix matches the "data:image/jpeg;base64," wrapper browsers put
// on canvas/file-reader output. The gateway wants bare base64.
var dataURIPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// DiagnoseHandler serves crop disease diagnosis from leaf photos.
type DiagnoseHandler struct {
	gateway    *ai.Service
	scans      repository.ScanRepository
	activities repository.ActivityRepository
	logger     *slog.Logger
}

// NewDiagnoseHandler creates a DiagnoseHandler.
func NewDiagnoseHandler(gateway *ai.Service, scans repository.ScanRepository, activities repository.ActivityRepository, logger *slog.Logger) *DiagnoseHandler {
	return &DiagnoseHandler{
		gateway:    gateway,
		scans:      scans,
		activities: activities,
		logger:     logger,
	}
}

// HandleDiagnose processes POST /api/diagnose-disease.
//
// Side effects only happen after a successful diagnosis AND only when the
// caller supplied a userId: one DiseaseScan row and one "scan" activity.
// A failed diagnosis records nothing; a missing userId is not an error.
func (h *DiagnoseHandler) HandleDiagnose(w http.ResponseWriter, r *http.Request) {
	var req request.DiagnoseDisease
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid diagnose request body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	if fields := req.Validate(); fields != nil {
		writeError(w, apperror.Invalid(fields))
		return
	}

	imageData := dataURIPrefix.ReplaceAllString(req.ImageData, "")

	diagnosis, err := h.gateway.DiagnoseDisease(r.Context(), imageData)
	if err != nil {
		writeError(w, err)
		return
	}

	if req.UserID != "" {
		scan := &model.DiseaseScan{
			UserID:     req.UserID,
			ImageData:  imageData,
			Diagnosis:  diagnosis.Disease,
			Confidence: diagnosis.Confidence,
			Remedies:   diagnosis.Remedies,
		}
		if err := h.scans.CreateScan(r.Context(), scan); err != nil {
			h.logger.Warn("failed to record disease scan",
				slog.String("userId", req.UserID),
				slog.String("error", err.Error()),
			)
		}

		recordActivity(r.Context(), h.activities, h.logger, model.Activity{
			UserID:      req.UserID,
			Type:        model.ActivityScan,
			Title:       "Disease scan completed",
			Description: diagnosis.Disease + " detected in crop",
			Icon:        "fas fa-camera",
		})
	}

	writeJSON(w, http.StatusOK, diagnosis)
}
