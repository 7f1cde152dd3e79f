package service

import (
	"log/slog"
	"strings"

	"github.com/sakif/farm-assistant/internal/model"
)

// SchemesService serves the government scheme catalog and a keyword-based
// recommendation over it.
type SchemesService struct {
	schemes []model.Scheme
	logger  *slog.Logger
}

// recommendationRule pairs a keyword group with its canned recommendation.
// Rules are checked in slice order and the first match wins — a query about
// both income and irrigation gets the income answer.
type recommendationRule struct {
	keywords []string
	response string
}

// NewSchemesService creates a SchemesService with the built-in catalog.
func NewSchemesService(logger *slog.Logger) *SchemesService {
	return &SchemesService{
		schemes: defaultSchemes(),
		logger:  logger,
	}
}

func defaultSchemes() []model.Scheme {
	return []model.Scheme{
		{
			ID:          1,
			Name:        "PM-KISAN Scheme",
			Description: "Direct income support of ₹6,000 per year to eligible farmer families",
			Amount:      "₹6,000/year",
			Eligibility: []string{
				"Small and marginal farmers",
				"Landholding up to 2 hectares",
				"Valid Aadhaar card",
			},
			ApplicationLink: "https://pmkisan.gov.in/",
			Category:        "income_support",
			Status:          model.SchemeEligible,
		},
		{
			ID:          2,
			Name:        "Drip Irrigation Subsidy",
			Description: "Up to 50% subsidy on drip irrigation systems",
			Amount:      "50% subsidy",
			Eligibility: []string{
				"Farmers with irrigation facilities",
				"Minimum 0.5 hectare land",
				"No previous subsidy claimed",
			},
			ApplicationLink: "https://pmksy.gov.in/",
			Category:        "subsidy",
			Status:          model.SchemeUnderReview,
		},
		{
			ID:          3,
			Name:        "Crop Insurance Scheme",
			Description: "Comprehensive risk solution for crop loss coverage",
			Amount:      "Up to ₹2 lakh coverage",
			Eligibility: []string{
				"All farmers (loanee and non-loanee)",
				"Coverage for pre-sowing to post-harvest",
				"Premium varies by crop",
			},
			ApplicationLink: "https://pmfby.gov.in/",
			Category:        "insurance",
			Status:          model.SchemeEligible,
		},
		{
			ID:          4,
			Name:        "Soil Health Card Scheme",
			Description: "Free soil testing and nutrient recommendations",
			Amount:      "Free service",
			Eligibility: []string{
				"All farmers",
				"Valid land documents",
			},
			ApplicationLink: "https://soilhealth.dac.gov.in/",
			Category:        "advisory",
			Status:          model.SchemeEligible,
		},
	}
}

// recommendationRules in priority order: income beats irrigation beats
// insurance beats soil.
func recommendationRules() []recommendationRule {
	return []recommendationRule{
		{
			keywords: []string{"income", "money", "support"},
			response: "Based on your query, I recommend the PM-KISAN Scheme which provides ₹6,000 per year direct income support to eligible farmers.",
		},
		{
			keywords: []string{"irrigation", "water", "drip"},
			response: "For irrigation needs, the Drip Irrigation Subsidy scheme offers up to 50% subsidy on drip irrigation systems.",
		},
		{
			keywords: []string{"insurance", "crop loss", "protection"},
			response: "The Crop Insurance Scheme provides comprehensive coverage for crop losses with coverage up to ₹2 lakh.",
		},
		{
			keywords: []string{"soil", "fertilizer", "nutrients"},
			response: "The Soil Health Card Scheme provides free soil testing and nutrient recommendations to optimize your crop yield.",
		},
	}
}

// List returns the full catalog in load order.
func (s *SchemesService) List() []model.Scheme {
	schemes := make([]model.Scheme, len(s.schemes))
	copy(schemes, s.schemes)
	return schemes
}

// Search returns schemes whose name, description, or category contains the
// query, case-insensitively, in catalog order.
func (s *SchemesService) Search(query string) []model.Scheme {
	q := strings.ToLower(query)
	results := []model.Scheme{}
	for _, scheme := range s.schemes {
		if strings.Contains(strings.ToLower(scheme.Name), q) ||
			strings.Contains(strings.ToLower(scheme.Description), q) ||
			strings.Contains(strings.ToLower(scheme.Category), q) {
			results = append(results, scheme)
		}
	}
	return results
}

// ByCategory returns schemes matching the category exactly.
func (s *SchemesService) ByCategory(category string) []model.Scheme {
	results := []model.Scheme{}
	for _, scheme := range s.schemes {
		if scheme.Category == category {
			results = append(results, scheme)
		}
	}
	return results
}

// Recommend scans the free-text query for keyword groups in priority order
// and returns the first matching canned sentence. Queries matching nothing
// get a generic multi-scheme summary.
func (s *SchemesService) Recommend(query string) string {
	q := strings.ToLower(query)
	for _, rule := range recommendationRules() {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.response
			}
		}
	}
	return "I found several relevant schemes. The PM-KISAN scheme provides direct income support, while other schemes offer subsidies for irrigation, crop insurance, and soil health services."
}
