// Package upstream wraps the outbound call to the HuggingFace inference API
// that performs the actual translation.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/talait/translate-api/internal/model"
)

var defaultEndpoints = map[model.Direction]string{
	model.DirectionFrEn: "https://router.huggingface.co/hf-inference/models/Helsinki-NLP/opus-mt-fr-en",
	model.DirectionEnFr: "https://router.huggingface.co/hf-inference/models/Helsinki-NLP/opus-mt-en-fr",
}

var ErrUnknownDirection = errors.New("unknown translation direction")

// ProviderError carries a non-success upstream status code and the raw
// response body. It is a first-class result the caller inspects, not a
// transport fault.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("translation provider returned %d: %s", e.StatusCode, e.Body)
}

// Result is one element of the provider's response. Depending on the model
// family the translated text arrives under translation_text or
// generated_text; both are read.
type Result struct {
	TranslationText string `json:"translation_text"`
	GeneratedText   string `json:"generated_text"`
}

// Client calls the translation provider. The bearer token is attached to
// every outbound request.
type Client struct {
	httpClient *http.Client
	token      string
	endpoints  map[model.Direction]string
}

// NewClient creates a Client with the given bearer token and request timeout.
func NewClient(token string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
		endpoints:  defaultEndpoints,
	}
}

// Translate sends text to the model endpoint for the given direction. A
// non-success status is returned as a *ProviderError; a success status
// yields the parsed result list unmodified. Single round trip, no retries.
func (c *Client) Translate(ctx context.Context, text string, direction model.Direction) ([]Result, error) {
	url, ok := c.endpoints[direction]
	if !ok {
		return nil, ErrUnknownDirection
	}

	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling translation provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var results []Result
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decoding provider response: %w", err)
	}

	return results, nil
}
