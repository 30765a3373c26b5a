package llm

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMock_PlaysScriptThenSynthesizes(t *testing.T) {
	m := NewMock(MockReply{Content: json.RawMessage(`"scripted"`), Usage: Usage{InputTokens: 3}})

	first, err := m.Generate(context.Background(), Request{Schema: explanationTestSchema})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if string(first.Content) != `"scripted"` || first.Usage.InputTokens != 3 {
		t.Errorf("first = %+v", first)
	}

	second, err := m.Generate(context.Background(), Request{Prompt: "explain", Schema: explanationTestSchema})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(second.Content, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]string{"headline": "mock headline", "explanation": "mock explanation", "tip": "mock tip"}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
	if err := schemas.check(explanationTestSchema, second.Content); err != nil {
		t.Errorf("synthesized reply does not fit the schema: %v", err)
	}

	if n := len(m.Requests()); n != 2 {
		t.Errorf("recorded %d requests, want 2", n)
	}
}

func TestMock_PlaceholderShapes(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{"type": "string", "enum": []any{"close", "off"}},
			"level":   map[string]any{"type": "string", "enum": []string{"high", "low"}},
			"ranks":   map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
			"perfect": map[string]any{"type": "boolean"},
		},
	}
	got, ok := placeholder("", def).(map[string]any)
	if !ok {
		t.Fatalf("placeholder = %T, want object", got)
	}
	if got["verdict"] != "close" || got["level"] != "high" || got["perfect"] != false {
		t.Errorf("placeholder = %v", got)
	}
	if ranks, ok := got["ranks"].([]any); !ok || len(ranks) != 1 || ranks[0] != 0 {
		t.Errorf("ranks = %v", got["ranks"])
	}
}

func TestMock_NoScriptNoSchema(t *testing.T) {
	_, err := NewMock().Generate(context.Background(), Request{Prompt: "x"})
	if !IsKind(err, KindUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

func TestMock_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMock().Generate(ctx, Request{Schema: explanationTestSchema}); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
