package service

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/sakif/farm-assistant/internal/model"
)

// outboundTimeout bounds both weather provider calls. On timeout the live
// path fails like any other fetch error and the synthetic fallback answers.
const outboundTimeout = 30 * time.Second

// WeatherService reports current conditions plus derived farming advice.
//
// LIVE VS SYNTHETIC:
// With an OpenWeatherMap API key configured, Current fetches live conditions
// and a multi-day forecast. Without a key, or on any fetch failure, it falls
// back to a seasonal synthetic generator so the app always has something to
// show a farmer standing in a field with flaky connectivity. The advice
// derivation is shared by both paths.
type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger

	// Injected for tests: now drives the season, roll the jitter.
	now  func() time.Time
	roll func() float64
}

// NewWeatherService creates a WeatherService. An empty apiKey disables the
// live path entirely.
func NewWeatherService(apiKey string, logger *slog.Logger) *WeatherService {
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		client:  &http.Client{Timeout: outboundTimeout},
		logger:  logger,
		now:     time.Now,
		roll:    rand.Float64,
	}
}

// Current returns the weather report for a location. It never fails — the
// synthetic generator is the error path.
func (s *WeatherService) Current(ctx context.Context, location string) model.Weather {
	if s.apiKey == "" {
		return s.synthetic(location)
	}

	weather, err := s.fetchLive(ctx, location)
	if err != nil {
		s.logger.Warn("live weather fetch failed, using synthetic data",
			slog.String("location", location),
			slog.String("error", err.Error()),
		)
		return s.synthetic(location)
	}
	return *weather
}

// synthetic builds a plausible report from the calendar and the location
// string. Baselines are seasonal for recognised regions; bounded jitter
// keeps repeated calls from looking frozen.
func (s *WeatherService) synthetic(location string) model.Weather {
	month := s.now().Month()
	isKarnataka := strings.Contains(strings.ToLower(location), "karnataka")
	isMonsoon := month >= time.June && month <= time.October
	isWinter := month >= time.November || month <= time.March

	baseTemp := 25.0
	humidity := 60.0
	rainfall := 0.0
	condition := "Partly Cloudy"

	if isKarnataka {
		switch {
		case isMonsoon:
			baseTemp = 24
			humidity = 85
			rainfall = 15 + s.roll()*20
			condition = "Rainy"
		case isWinter:
			baseTemp = 22
			humidity = 55
			rainfall = 0
			condition = "Clear"
		default:
			baseTemp = 28
			humidity = 70
			rainfall = 2
			condition = "Partly Cloudy"
		}
	}

	// Jitter: ±3°C, ±10 humidity points clamped to [30,95], and a 0.5–1.5×
	// rainfall multiplier clamped at zero.
	temperature := int(math.Round(baseTemp + s.roll()*6 - 3))
	finalHumidity := int(math.Round(humidity + s.roll()*20 - 10))
	finalHumidity = min(95, max(30, finalHumidity))
	finalRainfall := math.Round(rainfall*(0.5+s.roll())*10) / 10
	finalRainfall = math.Max(0, finalRainfall)

	if location == "" {
		location = "Karnataka, India"
	}

	return model.Weather{
		Location:    location,
		Temperature: temperature,
		Humidity:    finalHumidity,
		Rainfall:    finalRainfall,
		Condition:   condition,
		Advice:      farmingAdvice(temperature, finalHumidity, finalRainfall, condition),
	}
}

// farmingAdvice concatenates independently gated advisory clauses in a fixed
// order: temperature band, humidity band, rainfall band, then a storm
// warning last. No clause suppresses another — a hot, humid, stormy day gets
// all four sentences.
func farmingAdvice(temp, humidity int, rainfall float64, condition string) string {
	var clauses []string

	switch {
	case temp > 35:
		clauses = append(clauses, "Very hot weather. Provide shade for crops and increase irrigation frequency.")
	case temp > 30:
		clauses = append(clauses, "Hot weather. Water crops early morning or evening to prevent heat stress.")
	case temp < 15:
		clauses = append(clauses, "Cool weather. Protect sensitive crops from cold. Reduce watering frequency.")
	default:
		clauses = append(clauses, "Favorable temperature for most crops.")
	}

	if humidity > 80 {
		clauses = append(clauses, "High humidity increases risk of fungal diseases. Ensure good air circulation.")
	} else if humidity < 40 {
		clauses = append(clauses, "Low humidity may stress plants. Consider light misting in evening.")
	}

	switch {
	case rainfall > 10:
		clauses = append(clauses, "Heavy rainfall expected. Ensure proper drainage to prevent waterlogging.")
	case rainfall > 2:
		clauses = append(clauses, "Moderate rainfall expected. Good for irrigation savings.")
	default:
		clauses = append(clauses, "Little to no rainfall. Plan irrigation accordingly.")
	}

	if strings.Contains(strings.ToLower(condition), "storm") {
		clauses = append(clauses, "Storm warning! Secure crops and equipment. Avoid outdoor farm work.")
	}

	return strings.Join(clauses, " ")
}
