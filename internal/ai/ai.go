// Package ai wraps the external generative model behind a narrow gateway.
//
// SHAPE OF THE PACKAGE:
// Completer is the only thing that talks to the network — two methods, raw
// text in and raw text out. Service layers the four product capabilities on
// top of it (diagnosis, insight, analysis, voice) and owns all parsing and
// error normalization. Handlers depend on Service; tests swap Completer for
// a canned-response fake and never touch the network.
package ai

import (
	"context"
	"log/slog"

	"github.com/sakif/farm-assistant/internal/apperror"
	"github.com/tidwall/gjson"
)

// Completer is the raw completion interface over the generative model.
type Completer interface {
	// CompleteText sends an instruction prompt plus free-text input and
	// returns the model's text reply.
	CompleteText(ctx context.Context, prompt, input string) (string, error)
	// CompleteVision sends an instruction prompt plus a base64 JPEG and
	// returns the model's text reply.
	CompleteVision(ctx context.Context, prompt, imageBase64 string) (string, error)
}

// Diagnosis is the structured result of a crop disease scan.
type Diagnosis struct {
	Disease    string   `json:"disease"`
	Confidence int      `json:"confidence"` // 0-100
	Remedies   []string `json:"remedies"`
	Severity   string   `json:"severity"` // High | Medium | Low, derived from confidence
}

// CropPrediction is one per-crop forecast inside a market analysis.
type CropPrediction struct {
	Crop           string `json:"crop"`
	PredictedPrice string `json:"predicted_price"`
	Trend          string `json:"trend"`
}

// MarketAnalysis is the structured result of an in-depth market query.
type MarketAnalysis struct {
	Analysis        string           `json:"analysis"`
	Predictions     []CropPrediction `json:"predictions"`
	Recommendations []string         `json:"recommendations"`
}

// Service exposes the four AI-backed capabilities. Every failure — upstream
// call or response parsing — is logged with its cause and surfaced as an
// apperror.Upstream with a stable, capability-specific message.
type Service struct {
	model  Completer
	logger *slog.Logger
}

// NewService creates an AI gateway service over the given model.
func NewService(model Completer, logger *slog.Logger) *Service {
	return &Service{model: model, logger: logger}
}

// DiagnoseDisease runs the vision prompt over a base64 crop image and
// normalizes the reply into a Diagnosis.
func (s *Service) DiagnoseDisease(ctx context.Context, imageBase64 string) (*Diagnosis, error) {
	const capability = "diagnose disease"

	text, err := s.model.CompleteVision(ctx, promptDiagnoseDisease, imageBase64)
	if err != nil {
		s.logger.Error("disease diagnosis call failed", slog.String("error", err.Error()))
		return nil, apperror.Upstream(capability, err)
	}

	doc, err := ExtractJSON(text)
	if err != nil {
		s.logger.Error("disease diagnosis returned unparseable text",
			slog.String("error", err.Error()),
			slog.Int("reply_length", len(text)),
		)
		return nil, apperror.Upstream(capability, err)
	}

	// gjson tolerates the model quoting numbers ("85" vs 85), which the
	// diagnosis prompt's example actively encourages it to do.
	confidence := int(gjson.Get(doc, "confidence").Int())
	confidence = min(100, max(0, confidence))

	remedies := []string{}
	for _, r := range gjson.Get(doc, "remedies").Array() {
		remedies = append(remedies, r.String())
	}

	return &Diagnosis{
		Disease:    gjson.Get(doc, "disease").String(),
		Confidence: confidence,
		Remedies:   remedies,
		Severity:   severityFor(confidence),
	}, nil
}

// MarketInsight answers a free-text market question with a plain sentence.
func (s *Service) MarketInsight(ctx context.Context, query string) (string, error) {
	text, err := s.model.CompleteText(ctx, promptMarketInsight, query)
	if err != nil {
		s.logger.Error("market insight call failed", slog.String("error", err.Error()))
		return "", apperror.Upstream("get market insight", err)
	}
	return text, nil
}

// MarketAnalysis answers a free-text market question with a structured
// analysis: narrative, per-crop predictions, and recommendations.
func (s *Service) MarketAnalysis(ctx context.Context, query string) (*MarketAnalysis, error) {
	const capability = "generate market analysis"

	text, err := s.model.CompleteText(ctx, promptMarketAnalysis, query)
	if err != nil {
		s.logger.Error("market analysis call failed", slog.String("error", err.Error()))
		return nil, apperror.Upstream(capability, err)
	}

	doc, err := ExtractJSON(text)
	if err != nil {
		s.logger.Error("market analysis returned unparseable text", slog.String("error", err.Error()))
		return nil, apperror.Upstream(capability, err)
	}

	predictions := []CropPrediction{}
	for _, p := range gjson.Get(doc, "predictions").Array() {
		predictions = append(predictions, CropPrediction{
			Crop:           p.Get("crop").String(),
			PredictedPrice: p.Get("predicted_price").String(),
			Trend:          p.Get("trend").String(),
		})
	}

	recommendations := []string{}
	for _, r := range gjson.Get(doc, "recommendations").Array() {
		recommendations = append(recommendations, r.String())
	}

	return &MarketAnalysis{
		Analysis:        gjson.Get(doc, "analysis").String(),
		Predictions:     predictions,
		Recommendations: recommendations,
	}, nil
}

// VoiceQuery answers a transcribed voice question with plain text.
func (s *Service) VoiceQuery(ctx context.Context, query string) (string, error) {
	text, err := s.model.CompleteText(ctx, promptVoiceQuery, query)
	if err != nil {
		s.logger.Error("voice query call failed", slog.String("error", err.Error()))
		return "", apperror.Upstream("process voice query", err)
	}
	return text, nil
}

// severityFor maps the model's confidence score to the severity badge shown
// on the scan result card.
func severityFor(confidence int) string {
	switch {
	case confidence >= 70:
		return "High"
	case confidence >= 40:
		return "Medium"
	default:
		return "Low"
	}
}
