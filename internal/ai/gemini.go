package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultModel is the generative model used when GEMINI_MODEL is unset.
const DefaultModel = "gemini-1.5-flash"

// geminiTimeout bounds every model call. A timed-out call fails like any
// other upstream error — single attempt, no retries.
const geminiTimeout = 30 * time.Second

// GeminiClient implements Completer against the Generative Language REST
// API. It talks plain HTTP rather than pulling in a vendor SDK — the two
// request shapes we need are a dozen lines of structs.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiClient creates a client for the given API key and model name.
// An empty model selects DefaultModel.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{Timeout: geminiTimeout},
	}
}

var _ Completer = (*GeminiClient)(nil)

// Request wire shapes. Parts either carry text or inline image bytes.
type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

func (c *GeminiClient) CompleteText(ctx context.Context, prompt, input string) (string, error) {
	return c.generate(ctx, []geminiPart{
		{Text: prompt},
		{Text: input},
	})
}

func (c *GeminiClient) CompleteVision(ctx context.Context, prompt, imageBase64 string) (string, error) {
	return c.generate(ctx, []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{MimeType: "image/jpeg", Data: imageBase64}},
	})
}

// generate posts the parts to the generateContent endpoint and returns the
// first candidate's text.
func (c *GeminiClient) generate(ctx context.Context, parts []geminiPart) (string, error) {
	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: calling model: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		// Don't include the response body — it can echo request content.
		return "", fmt.Errorf("gemini: model returned status %d", resp.StatusCode)
	}

	// The reply nests the text several levels deep; gjson's path syntax
	// beats declaring the whole candidate structure for one field.
	text := gjson.GetBytes(respBody, "candidates.0.content.parts.0.text").String()
	if text == "" {
		return "", fmt.Errorf("gemini: empty completion in response")
	}

	return text, nil
}
