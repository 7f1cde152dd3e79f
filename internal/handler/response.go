package handler

// RESPONSE HELPERS:
// Every endpoint sends JSON through these two functions so the wire format
// stays uniform:
//
//	success     → the payload itself
//	any failure → {"error": <message or field-error map>}
//
// The error body is what the mobile client switches on: a string for
// lookup/upstream failures, a {field: [messages]} map for validation
// failures so messages can be attached to form inputs.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/farm-assistant/internal/apperror"
)

// ErrorResponse is the standard error envelope. Error is either a string or
// an apperror.FieldErrors map.
type ErrorResponse struct {
	Error any `json:"error"`
}

// writeJSON sends a JSON response with the given status code. Headers must
// be set before the first body write, hence the fixed order here.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — all we can do is log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to its HTTP status and error body.
//
// The mapping is the whole error-handling policy of the API surface:
//
//	ErrValidation → 400, field-error map (or message when no fields)
//	ErrNotFound   → 404, message
//	ErrUpstream   → 500, the stable capability message (cause was already
//	                logged where it happened; it never reaches the client)
//	anything else → 500, generic message
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperror.ErrValidation):
			if appErr.Fields != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: appErr.Fields})
			} else {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
			}
			return
		case errors.Is(err, apperror.ErrNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: appErr.Message})
			return
		case errors.Is(err, apperror.ErrUpstream):
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: appErr.Message})
			return
		}
	}

	// Unknown error — never expose internal details to the client.
	slog.Error("unexpected error reached the dispatcher", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "an internal error occurred"})
}
