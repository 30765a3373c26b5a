package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "test-key", Model: "claude-haiku", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	return p
}

func anthropicMessage(text, stopReason string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stopReason,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	var body map[string]any
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage("```json\n"+validExplanation+"\n```", "end_turn"))
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
	if resp.Usage.InputTokens != 50 || resp.Usage.OutputTokens != 30 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.Model != "claude-haiku-4-5-20251001" {
		t.Errorf("model = %q", resp.Model)
	}

	if body["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("request model = %v, want resolved alias", body["model"])
	}
	if _, ok := body["output_config"]; !ok {
		t.Error("request did not carry output_config")
	}
	if _, ok := body["system"]; !ok {
		t.Error("request did not carry the system prompt")
	}
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"headline":"Vol`, "max_tokens"))
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "x", Schema: explanationTestSchema, MaxTokens: 8})
	if !IsKind(err, KindTruncated) {
		t.Fatalf("err = %v, want truncated", err)
	}
}

func TestAnthropicProvider_HTTPErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		retryAfter string
		want       ErrorKind
		wantWait   time.Duration
	}{
		{"rate limited", http.StatusTooManyRequests, "7", KindRateLimited, 7 * time.Second},
		{"bad key", http.StatusUnauthorized, "", KindRejected, 0},
		{"server error", http.StatusInternalServerError, "", KindUnavailable, 0},
		{"overloaded", 529, "", KindUnavailable, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type":  "error",
					"error": map[string]any{"type": "api_error", "message": "nope"},
				})
			})

			_, err := p.Generate(context.Background(), Request{Prompt: "x", MaxTokens: 8})
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if e.Kind != tt.want || e.Provider != "anthropic" {
				t.Errorf("kind = %s provider = %s, want %s", e.Kind, e.Provider, tt.want)
			}
			if e.RetryAfter != tt.wantWait {
				t.Errorf("RetryAfter = %s, want %s", e.RetryAfter, tt.wantWait)
			}
		})
	}
}

func TestAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestAnthropicModelAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, anthropicAliases); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-sonnet"})
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	if info := p.Info(); info.Provider != "anthropic" || info.Model != "claude-sonnet-4-20250514" {
		t.Errorf("info = %+v", info)
	}
}
