package model

// Scheme eligibility statuses surfaced in the catalog.
const (
	SchemeEligible    = "eligible"
	SchemeUnderReview = "under_review"
	SchemeNotEligible = "not_eligible"
)

// Scheme is one government support scheme in the static catalog.
type Scheme struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Amount          string   `json:"amount"` // benefit as display text, e.g. "₹6,000/year"
	Eligibility     []string `json:"eligibility"`
	ApplicationLink string   `json:"applicationLink"`
	Category        string   `json:"category"`
	Status          string   `json:"status"` // eligible | under_review | not_eligible
}
