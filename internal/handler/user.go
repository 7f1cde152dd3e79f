package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/farm-assistant/internal/apperror"
	"github.com/sakif/farm-assistant/internal/model"
	"github.com/sakif/farm-assistant/internal/repository"
	"github.com/sakif/farm-assistant/internal/request"
)

// UserHandler serves farmer account registration and lookup.
type UserHandler struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users repository.UserRepository, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// HandleRegister processes POST /api/users.
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid registration body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if fields := req.Validate(); fields != nil {
		writeError(w, apperror.Invalid(fields))
		return
	}

	user := &model.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Location:  req.Location,
		Language:  req.Language,
	}
	if err := h.users.CreateUser(r.Context(), user); err != nil {
		h.logger.Error("failed to create user", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	h.logger.Info("user registered", slog.String("id", user.ID))
	writeJSON(w, http.StatusCreated, user)
}

// HandleGet processes GET /api/users/{id}.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, apperror.ValidationFailed("id", "user id is required"))
		return
	}

	user, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
