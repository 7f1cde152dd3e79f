package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/sakif/farm-assistant/internal/model"
)

// Wire shapes for the OpenWeatherMap /weather and /forecast responses.
// The API returns much more — we only unmarshal what the report needs.
type owCurrent struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

type owForecast struct {
	List []owForecastEntry `json:"list"`
}

type owForecastEntry struct {
	Dt   int64 `json:"dt"` // unix seconds
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Rain struct {
		ThreeHours float64 `json:"3h"`
	} `json:"rain"`
}

// fetchLive performs the two provider calls (current conditions + 5-day
// forecast in 3-hour steps) and assembles the report.
func (s *WeatherService) fetchLive(ctx context.Context, location string) (*model.Weather, error) {
	var current owCurrent
	if err := s.getJSON(ctx, "/weather", location, &current); err != nil {
		return nil, fmt.Errorf("current conditions: %w", err)
	}

	var forecast owForecast
	if err := s.getJSON(ctx, "/forecast", location, &forecast); err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	condition := ""
	if len(current.Weather) > 0 {
		condition = current.Weather[0].Main
	}

	temperature := int(math.Round(current.Main.Temp))
	humidity := current.Main.Humidity

	// Expected rain over the next 24 hours = the first eight 3-hour steps.
	rainfall := 0.0
	for i, entry := range forecast.List {
		if i >= 8 {
			break
		}
		rainfall += entry.Rain.ThreeHours
	}
	rainfall = math.Round(rainfall*10) / 10

	return &model.Weather{
		Location:    current.Name + ", " + current.Sys.Country,
		Temperature: temperature,
		Humidity:    humidity,
		Rainfall:    rainfall,
		Condition:   mapCondition(condition),
		Advice:      farmingAdvice(temperature, humidity, rainfall, condition),
		Forecast:    aggregateForecast(forecast.List),
	}, nil
}

func (s *WeatherService) getJSON(ctx context.Context, path, location string, out any) error {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// aggregateForecast collapses 3-hourly entries into per-day summaries:
// average temperature and humidity, summed rainfall, and the day's most
// frequent condition label. Days appear in first-seen order.
func aggregateForecast(entries []owForecastEntry) []model.DayForecast {
	type dayAccum struct {
		temps      []float64
		humidities []float64
		conditions []string
		rainfall   float64
	}

	if len(entries) > 35 {
		entries = entries[:35] // 5 days of 3-hour steps
	}

	var order []string
	days := map[string]*dayAccum{}
	for _, entry := range entries {
		date := time.Unix(entry.Dt, 0).UTC().Format("Mon Jan 02 2006")
		day, ok := days[date]
		if !ok {
			day = &dayAccum{}
			days[date] = day
			order = append(order, date)
		}
		day.temps = append(day.temps, entry.Main.Temp)
		day.humidities = append(day.humidities, entry.Main.Humidity)
		if len(entry.Weather) > 0 {
			day.conditions = append(day.conditions, entry.Weather[0].Main)
		}
		day.rainfall += entry.Rain.ThreeHours
	}

	forecast := make([]model.DayForecast, 0, len(order))
	for _, date := range order {
		day := days[date]
		forecast = append(forecast, model.DayForecast{
			Date:        date,
			Temperature: int(math.Round(mean(day.temps))),
			Condition:   mapCondition(mostFrequent(day.conditions)),
			Rainfall:    math.Round(day.rainfall*10) / 10,
			Humidity:    int(math.Round(mean(day.humidities))),
		})
	}
	return forecast
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// mostFrequent picks the label occurring most often. Ties resolve by a
// stable sort on ascending frequency followed by taking the last element —
// arbitrary, but deterministic for a given input order.
func mostFrequent(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	counts := map[string]int{}
	for _, l := range labels {
		counts[l]++
	}
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.SliceStable(sorted, func(i, j int) bool {
		return counts[sorted[i]] < counts[sorted[j]]
	})
	return sorted[len(sorted)-1]
}

// mapCondition translates provider condition labels to the friendlier names
// the app displays. Unknown labels pass through.
func mapCondition(condition string) string {
	switch condition {
	case "Clear":
		return "Sunny"
	case "Clouds":
		return "Cloudy"
	case "Rain":
		return "Rainy"
	case "Drizzle":
		return "Light Rain"
	case "Thunderstorm":
		return "Stormy"
	case "Snow":
		return "Snowy"
	case "Mist":
		return "Misty"
	case "Fog":
		return "Foggy"
	default:
		return condition
	}
}
