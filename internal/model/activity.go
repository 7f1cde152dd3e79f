package model

import "time"

// Activity types recorded in the history feed. Weather lookups currently
// don't log an activity (no user id travels with the request) but the tag is
// reserved for when the client starts sending one.
const (
	ActivityScan    = "scan"
	ActivityMarket  = "market"
	ActivityScheme  = "scheme"
	ActivityVoice   = "voice"
	ActivityWeather = "weather"
)

// Activity is one logged user action, shown newest-first in the app's
// history feed. Append-only — nothing in the API mutates or deletes one.
type Activity struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"` // one of the Activity* constants
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"` // Font Awesome class used by the feed UI
	CreatedAt   time.Time `json:"createdAt"`
}

// DiseaseScan is the stored result of one diagnosis call. The raw image is
// kept (base64, prefix stripped) so the feed can show a thumbnail later.
type DiseaseScan struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"userId"`
	ImageData  string    `json:"imageData"`
	Diagnosis  string    `json:"diagnosis"`
	Confidence int       `json:"confidence"` // 0-100
	Remedies   []string  `json:"remedies"`
	ScanDate   time.Time `json:"scanDate"`
}
