package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// explanationTestSchema mirrors the shape coach asks for.
var explanationTestSchema = &Schema{
	Name: "round-explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline":    map[string]any{"type": "string"},
			"explanation": map[string]any{"type": "string"},
			"tip":         map[string]any{"type": "string"},
		},
		"required":             []any{"headline", "explanation", "tip"},
		"additionalProperties": false,
	},
}

const validExplanation = `{"headline":"Volume wins","explanation":"200 votes beat 20.","tip":"Check n."}`

// stubBackend replays one completion.
type stubBackend struct {
	c   completion
	err error
	got Request
}

func (s *stubBackend) complete(_ context.Context, req Request) (completion, error) {
	s.got = req
	return s.c, s.err
}

func (s *stubBackend) info() Info { return Info{Provider: "stub", Model: "stub-1"} }

func TestStructured_ValidReply(t *testing.T) {
	b := &stubBackend{c: completion{text: validExplanation, model: "stub-1-0520", usage: Usage{InputTokens: 10, OutputTokens: 5}}}
	p := &structured{b: b}

	resp, err := p.Generate(context.Background(), Request{Prompt: "explain", Schema: explanationTestSchema})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != validExplanation {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Model != "stub-1-0520" || resp.Usage.Total() != 15 {
		t.Errorf("resp = %+v", resp)
	}
	if b.got.Prompt != "explain" {
		t.Errorf("backend saw prompt %q", b.got.Prompt)
	}
}

func TestStructured_ModelFallsBackToInfo(t *testing.T) {
	p := &structured{b: &stubBackend{c: completion{text: validExplanation}}}
	resp, err := p.Generate(context.Background(), Request{Schema: explanationTestSchema})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Model != "stub-1" {
		t.Errorf("model = %q, want stub-1", resp.Model)
	}
}

func TestStructured_PlainText(t *testing.T) {
	p := &structured{b: &stubBackend{c: completion{text: `say "hi"`}}}
	resp, err := p.Generate(context.Background(), Request{Prompt: "greet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var s string
	if err := json.Unmarshal(resp.Content, &s); err != nil || s != `say "hi"` {
		t.Errorf("content = %s (%v)", resp.Content, err)
	}
}

func TestStructured_Failures(t *testing.T) {
	tests := []struct {
		name        string
		c           completion
		want        ErrorKind
		wantContent bool
	}{
		{"truncated", completion{text: `{"headline":"Vol`, truncated: true}, KindTruncated, true},
		{"empty", completion{text: "  "}, KindInvalidOutput, false},
		{"not json", completion{text: "Volume wins."}, KindInvalidOutput, true},
		{"missing field", completion{text: `{"headline":"x","tip":"y"}`}, KindInvalidOutput, true},
		{"extra field", completion{text: `{"headline":"x","explanation":"y","tip":"z","score":1}`}, KindInvalidOutput, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &structured{b: &stubBackend{c: tt.c}}
			_, err := p.Generate(context.Background(), Request{Schema: explanationTestSchema})
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if e.Kind != tt.want || e.Provider != "stub" {
				t.Errorf("kind = %s provider = %s, want %s", e.Kind, e.Provider, tt.want)
			}
			if tt.wantContent && len(e.Content) == 0 {
				t.Error("error dropped the offending reply")
			}
		})
	}
}

func TestStructured_BackendErrorPassesThrough(t *testing.T) {
	want := &Error{Kind: KindRateLimited, Provider: "stub"}
	p := &structured{b: &stubBackend{err: want}}
	_, err := p.Generate(context.Background(), Request{Schema: explanationTestSchema})
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{validExplanation, validExplanation},
		{"```json\n" + validExplanation + "\n```", validExplanation},
		{"```\n" + validExplanation + "\n```\n", validExplanation},
		{"  " + validExplanation + "\n", validExplanation},
		{"```", ""},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRequestPurposeDefault(t *testing.T) {
	if got := (Request{}).purpose(); got != PurposeExplanation {
		t.Errorf("purpose = %q, want %q", got, PurposeExplanation)
	}
	if got := (Request{Purpose: "summary"}).purpose(); got != "summary" {
		t.Errorf("purpose = %q, want summary", got)
	}
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{0, KindUnavailable},
		{400, KindRejected},
		{401, KindRejected},
		{404, KindRejected},
		{408, KindUnavailable},
		{429, KindRateLimited},
		{500, KindUnavailable},
		{529, KindUnavailable},
	}
	for _, tt := range tests {
		e := statusError("stub", tt.status, errors.New("boom"))
		if e.Kind != tt.want {
			t.Errorf("status %d: kind = %s, want %s", tt.status, e.Kind, tt.want)
		}
		if !IsKind(e, tt.want) {
			t.Errorf("status %d: IsKind false", tt.status)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	e := &Error{Kind: KindRateLimited, Provider: "openai", Err: errors.New("slow down")}
	if got := e.Error(); got != "openai: rate limited: slow down" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&Error{Kind: KindTruncated, Provider: "gemini"}).Error(); got != "gemini: output truncated" {
		t.Errorf("Error() = %q", got)
	}
}
