package model

// Weather is the current-conditions report returned by /api/weather,
// whether it came from the live provider or the synthetic fallback.
// Forecast is only populated on the live path.
type Weather struct {
	Location    string        `json:"location"`
	Temperature int           `json:"temperature"` // °C
	Humidity    int           `json:"humidity"`    // percent
	Rainfall    float64       `json:"rainfall"`    // mm expected over the next 24h
	Condition   string        `json:"condition"`   // e.g. "Rainy", "Partly Cloudy"
	Advice      string        `json:"advice"`      // derived farming advice
	Forecast    []DayForecast `json:"forecast,omitempty"`
}

// DayForecast is one aggregated day of the multi-day forecast.
type DayForecast struct {
	Date        string  `json:"date"`
	Temperature int     `json:"temperature"`
	Condition   string  `json:"condition"`
	Rainfall    float64 `json:"rainfall"`
	Humidity    int     `json:"humidity"`
}
