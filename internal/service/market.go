// Package service contains the business logic layer of the application.
//
// Services know nothing about HTTP — handlers translate requests into plain
// method calls and domain errors back into status codes. Each service is
// built once in server.New and injected where it's needed, never reached
// through package-level state, so tests can build isolated instances.
package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/farm-assistant/internal/apperror"
	"github.com/sakif/farm-assistant/internal/model"
)

// MarketService serves the mandi price catalog and derives trend insights
// from it.
//
// The catalog is fixed at construction — in production this would be fed
// from a commodity price API, and the constructor signature is shaped so
// that swap only touches this file.
type MarketService struct {
	catalog []model.MarketPrice
	logger  *slog.Logger
}

// NewMarketService creates a MarketService with the built-in catalog.
func NewMarketService(logger *slog.Logger) *MarketService {
	return &MarketService{
		catalog: defaultCatalog(),
		logger:  logger,
	}
}

// defaultCatalog is the placeholder price feed. Prices are paise per kg at
// Bangalore Mandi.
func defaultCatalog() []model.MarketPrice {
	return []model.MarketPrice{
		{Crop: "Tomato", Price: 2500, Unit: "kg", Market: "Bangalore Mandi", Trend: model.TrendUp, TrendPercentage: 5},
		{Crop: "Onion", Price: 1800, Unit: "kg", Market: "Bangalore Mandi", Trend: model.TrendDown, TrendPercentage: -3},
		{Crop: "Rice", Price: 3200, Unit: "kg", Market: "Bangalore Mandi", Trend: model.TrendUp, TrendPercentage: 2},
		{Crop: "Wheat", Price: 2800, Unit: "kg", Market: "Bangalore Mandi", Trend: model.TrendStable, TrendPercentage: 0},
		{Crop: "Maize", Price: 2200, Unit: "kg", Market: "Bangalore Mandi", Trend: model.TrendUp, TrendPercentage: 4},
	}
}

// List returns the full catalog in load order.
func (s *MarketService) List() []model.MarketPrice {
	// Copy so callers can't mutate the catalog through the returned slice.
	prices := make([]model.MarketPrice, len(s.catalog))
	copy(prices, s.catalog)
	return prices
}

// PriceFor looks up a crop by name, case-insensitively. Returns
// apperror.ErrNotFound when the crop isn't in the catalog.
func (s *MarketService) PriceFor(cropName string) (*model.MarketPrice, error) {
	for _, p := range s.catalog {
		if strings.EqualFold(p.Crop, cropName) {
			price := p
			return &price, nil
		}
	}
	return nil, apperror.NotFound("crop", cropName)
}

// InsightFor derives a one-sentence recommendation from the crop's price
// trend. A catalog miss yields a "no data" sentence rather than an error —
// the insight is advisory text, not a lookup.
func (s *MarketService) InsightFor(cropName string) string {
	price, err := s.PriceFor(cropName)
	if err != nil {
		return "No market data available for this crop."
	}

	switch price.Trend {
	case model.TrendUp:
		return fmt.Sprintf(
			"%s prices are trending increasing by %d%% this week. Consider selling your harvest in the next 2-3 days for maximum profit.",
			price.Crop, price.TrendPercentage)
	case model.TrendDown:
		// The stored percentage is signed; the sentence names its magnitude.
		pct := price.TrendPercentage
		if pct < 0 {
			pct = -pct
		}
		return fmt.Sprintf(
			"%s prices are decreasing by %d%% this week. You may want to hold off selling or consider alternative crops for next season.",
			price.Crop, pct)
	default:
		return fmt.Sprintf(
			"%s prices are stable this week. Good time for steady sales at current market rates.",
			price.Crop)
	}
}
