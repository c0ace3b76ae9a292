package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/talait/translate-api/internal/model"
)

func newTestClient(serverURL string) *Client {
	c := NewClient("test-token", time.Second)
	c.endpoints = map[model.Direction]string{
		model.DirectionFrEn: serverURL,
	}
	return c
}

func TestTranslateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization header = %q, want %q", got, "Bearer test-token")
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		if payload["inputs"] != "Bonjour" {
			t.Errorf("inputs = %q, want %q", payload["inputs"], "Bonjour")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"translation_text":"Hello"}]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	results, err := c.Translate(context.Background(), "Bonjour", model.DirectionFrEn)
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Translate() returned %d results, want 1", len(results))
	}
	if results[0].TranslationText != "Hello" {
		t.Errorf("TranslationText = %q, want %q", results[0].TranslationText, "Hello")
	}
}

func TestTranslateProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"model is loading"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Translate(context.Background(), "Bonjour", model.DirectionFrEn)

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Translate() error = %v, want *ProviderError", err)
	}
	if provErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want %d", provErr.StatusCode, http.StatusServiceUnavailable)
	}
	if provErr.Body != `{"error":"model is loading"}` {
		t.Errorf("Body = %q, want raw upstream body", provErr.Body)
	}
}

func TestTranslateUnknownDirection(t *testing.T) {
	c := newTestClient("http://unused")

	_, err := c.Translate(context.Background(), "Bonjour", model.Direction("de-en"))
	if !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("Translate() error = %v, want ErrUnknownDirection", err)
	}
}

func TestTranslateMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Translate(context.Background(), "Bonjour", model.DirectionFrEn)
	if err == nil {
		t.Error("Translate() expected error for malformed response body")
	}
}

func TestTranslateTransportFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(srv.URL)
	_, err := c.Translate(context.Background(), "Bonjour", model.DirectionFrEn)
	if err == nil {
		t.Error("Translate() expected error for unreachable provider")
	}
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		t.Error("transport fault should not be a *ProviderError")
	}
}
