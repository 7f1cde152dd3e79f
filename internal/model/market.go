package model

// Price trend directions.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// MarketPrice is one row of the mandi price catalog.
//
// WHY PRICE IN PAISE?
// Prices are stored in the minor currency unit (paise) as integers, never as
// floats. 2500 means ₹25.00/kg. Floating-point money invites rounding bugs;
// the client divides by 100 for display.
type MarketPrice struct {
	Crop            string `json:"crop"`
	Price           int    `json:"price"` // paise per unit
	Unit            string `json:"unit"`
	Market          string `json:"market"`
	Trend           string `json:"trend"`           // up | down | stable
	TrendPercentage int    `json:"trendPercentage"` // signed, e.g. -3 for a 3% fall
}
