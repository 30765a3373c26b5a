// Package llm asks hosted language models for structured JSON. feedrank uses
// it for one thing: explaining a scored round in plain words.
package llm

import (
	"context"
	"encoding/json"
)

// PurposeExplanation labels requests that explain a scored round. It is the
// purpose recorded when a Request leaves Purpose empty.
const PurposeExplanation = "explanation"

// Provider sends single-turn prompts to a model.
type Provider interface {
	// Generate returns the model's reply. When req.Schema is set the reply
	// has been checked against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info names the backend and model serving requests.
	Info() Info
}

// Info identifies a provider in logs and the event log.
type Info struct {
	Provider string // anthropic, openai, gemini, openrouter or mock
	Model    string
}

// Request is one system prompt plus one user prompt.
type Request struct {
	// Purpose labels the request in the event log.
	Purpose string

	System string
	Prompt string

	// Schema, when set, asks the backend for JSON matching it.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// purpose returns the event-log label for r.
func (r Request) purpose() string {
	if r.Purpose == "" {
		return PurposeExplanation
	}
	return r.Purpose
}

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is sent to backends that want one, e.g. "round-explanation".
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a model reply.
type Response struct {
	// Content is the JSON document when a schema was requested, otherwise
	// the reply text encoded as a JSON string.
	Content json.RawMessage
	Usage   Usage
	// Model is the model that answered, which may be more specific than
	// Info().Model.
	Model string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total is input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}
