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
	"github.com/sakif/farm-assistant/internal/service"
)

// MarketHandler serves the price catalog (local data) and the AI-backed
// insight/analysis endpoints.
type MarketHandler struct {
	market     *service.MarketService
	gateway    *ai.Service
	activities repository.ActivityRepository
	logger     *slog.Logger
}

// NewMarketHandler creates a MarketHandler.
func NewMarketHandler(market *service.MarketService, gateway *ai.Service, activities repository.ActivityRepository, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{
		market:     market,
		gateway:    gateway,
		activities: activities,
		logger:     logger,
	}
}

// HandleListPrices processes GET /api/market-prices.
func (h *MarketHandler) HandleListPrices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.market.List())
}

// HandleGetPrice processes GET /api/market-prices/{crop}. The lookup is
// case-insensitive; a miss is a 404.
func (h *MarketHandler) HandleGetPrice(w http.ResponseWriter, r *http.Request) {
	crop := r.PathValue("crop")

	price, err := h.market.PriceFor(crop)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, price)
}

// HandleCropInsight processes GET /api/market-prices/{crop}/insight — the
// trend-derived sentence computed from catalog data, no model involved.
func (h *MarketHandler) HandleCropInsight(w http.ResponseWriter, r *http.Request) {
	crop := r.PathValue("crop")
	writeJSON(w, http.StatusOK, map[string]string{"insight": h.market.InsightFor(crop)})
}

// HandleInsight processes POST /api/market-insight: free-text question to
// the model, plain sentence back, "market" activity when a userId came
// along.
func (h *MarketHandler) HandleInsight(w http.ResponseWriter, r *http.Request) {
	var req request.Query
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid market insight body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if fields := req.Validate(); fields != nil {
		writeError(w, apperror.Invalid(fields))
		return
	}

	insight, err := h.gateway.MarketInsight(r.Context(), req.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	recordActivity(r.Context(), h.activities, h.logger, model.Activity{
		UserID:      req.UserID,
		Type:        model.ActivityMarket,
		Title:       "Market analysis requested",
		Description: "Analysis for: " + req.Query,
		Icon:        "fas fa-chart-line",
	})

	writeJSON(w, http.StatusOK, map[string]string{"insight": insight})
}

// HandleAnalysis processes POST /api/market-analysis: the structured
// variant with predictions and recommendations.
func (h *MarketHandler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req request.Query
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid market analysis body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if fields := req.Validate(); fields != nil {
		writeError(w, apperror.Invalid(fields))
		return
	}

	analysis, err := h.gateway.MarketAnalysis(r.Context(), req.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	recordActivity(r.Context(), h.activities, h.logger, model.Activity{
		UserID:      req.UserID,
		Type:        model.ActivityMarket,
		Title:       "Market analysis generated",
		Description: "In-depth analysis for: " + req.Query,
		Icon:        "fas fa-chart-pie",
	})

	writeJSON(w, http.StatusOK, analysis)
}
