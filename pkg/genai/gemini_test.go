package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/momentum-hq/momentum-backend/pkg/config"
)

func newTestClient(baseURL string) *GeminiClient {
	return NewGeminiClient(&config.GeminiConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gemini-2.0-flash",
		Timeout: 5 * time.Second,
	})
}

func TestGenerateContent_CandidatesShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.0-flash:generateContent") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Fatal("missing api key")
		}
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "generated text"}},
				}},
			},
		})
	}))
	defer ts.Close()

	out, err := newTestClient(ts.URL).GenerateContent(context.Background(), "hello")
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}
	if out != "generated text" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGenerateContent_TopLevelTextShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "plain text"})
	}))
	defer ts.Close()

	out, err := newTestClient(ts.URL).GenerateContent(context.Background(), "hello")
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}
	if out != "plain text" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota"}}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GenerateContent(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error should carry status code, got %v", err)
	}
}

func TestGenerateContent_UnexpectedShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GenerateContent(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error for empty response body")
	}
}
