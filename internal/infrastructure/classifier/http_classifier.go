package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ecosort/internal/domain/entity"
)

// HTTPClassifier calls the external AI classification endpoint with an
// inline-encoded image and returns the resolved category and confidence.
// Single-shot per user action; no retry or backoff.
type HTTPClassifier struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClassifier(endpoint, apiKey string, timeout time.Duration) *HTTPClassifier {
	return &HTTPClassifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type classifyRequest struct {
	Image string `json:"image"`
}

type classifyResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *HTTPClassifier) Classify(ctx context.Context, imageBase64 string) (*entity.ClassificationResult, error) {
	payload, err := json.Marshal(classifyRequest{Image: imageBase64})
	if err != nil {
		return nil, fmt.Errorf("failed to encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, string(body))
	}

	var result classifyResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("classifier error %d: %s", result.Error.Code, result.Error.Message)
	}

	return &entity.ClassificationResult{
		Category:   entity.WasteCategory(result.Category),
		Confidence: result.Confidence,
	}, nil
}
