package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "test-key", Model: "gemini-flash", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}
	return p
}

func geminiReply(text, finishReason string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
			"finishReason": finishReason,
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 33, "candidatesTokenCount": 21, "totalTokenCount": 54},
		"modelVersion":  "gemini-2.0-flash-001",
	}
}

func TestGeminiProvider_HappyPath(t *testing.T) {
	var path string
	var body map[string]any
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiReply(validExplanation, "STOP"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You explain ranking statistics.",
		Prompt:    "Explain this round.",
		Schema:    explanationTestSchema,
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != validExplanation {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 33 || resp.Usage.OutputTokens != 21 || resp.Model != "gemini-2.0-flash-001" {
		t.Errorf("resp = %+v", resp)
	}
	if !strings.HasSuffix(path, "/models/gemini-2.0-flash:generateContent") {
		t.Errorf("path = %q, want the resolved model", path)
	}
	if _, ok := body["systemInstruction"]; !ok {
		t.Error("request did not carry the system instruction")
	}
}

func TestGeminiProvider_Truncated(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiReply(`{"headline":"Vol`, "MAX_TOKENS"))
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "x", Schema: explanationTestSchema})
	if !IsKind(err, KindTruncated) {
		t.Fatalf("err = %v, want truncated", err)
	}
}

func TestGeminiProvider_HTTPErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorKind
	}{
		{"rate limited", http.StatusTooManyRequests, KindRateLimited},
		{"bad key", http.StatusForbidden, KindRejected},
		{"server error", http.StatusServiceUnavailable, KindUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"code": tt.status, "message": "nope", "status": "ERROR"},
				})
			})

			_, err := p.Generate(context.Background(), Request{Prompt: "x"})
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if e.Kind != tt.want || e.Provider != "gemini" {
				t.Errorf("kind = %s provider = %s, want %s", e.Kind, e.Provider, tt.want)
			}
		})
	}
}

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiAliases); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a round",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"verdict":  map[string]any{"type": "string", "enum": []any{"perfect", "close", "off"}},
			"ranks": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []string{"headline", "verdict"},
	}

	s := geminiSchema(def)
	if s.Type != genai.TypeObject || s.Description != "a round" {
		t.Fatalf("schema = %+v", s)
	}
	if len(s.Properties) != 3 {
		t.Fatalf("got %d properties, want 3", len(s.Properties))
	}
	if s.Properties["headline"].Type != genai.TypeString {
		t.Errorf("headline type = %s", s.Properties["headline"].Type)
	}
	if got := s.Properties["verdict"].Enum; len(got) != 3 || got[0] != "perfect" {
		t.Errorf("verdict enum = %v", got)
	}
	if s.Properties["ranks"].Type != genai.TypeArray || s.Properties["ranks"].Items.Type != genai.TypeInteger {
		t.Errorf("ranks = %+v", s.Properties["ranks"])
	}
	if len(s.Required) != 2 || s.Required[1] != "verdict" {
		t.Errorf("required = %v", s.Required)
	}
}
