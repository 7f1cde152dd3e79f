package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/farm-assistant/internal/apperror"
	"github.com/sakif/farm-assistant/internal/request"
	"github.com/sakif/farm-assistant/internal/service"
)

// WeatherHandler serves current conditions plus farming advice.
type WeatherHandler struct {
	weather *service.WeatherService
	logger  *slog.Logger
}

// NewWeatherHandler creates a WeatherHandler.
func NewWeatherHandler(weather *service.WeatherService, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{weather: weather, logger: logger}
}

// HandleCurrent processes GET /api/weather?location=. The service never
// fails (synthetic fallback), so after validation this is always a 200.
func (h *WeatherHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	req := request.Weather{Location: r.URL.Query().Get("location")}
	if fields := req.Validate(); fields != nil {
		writeError(w, apperror.Invalid(fields))
		return
	}

	writeJSON(w, http.StatusOK, h.weather.Current(r.Context(), req.Location))
}
