package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockReply is one scripted Mock answer.
type MockReply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// Mock is an offline Provider. It plays scripted replies in order; once the
// script runs out it fills the request's schema with placeholder values, so
// FEEDRANK_LLM_PROVIDER=mock produces a well-formed explanation every round.
// Scripted content is returned as given, without schema checks.
type Mock struct {
	mu       sync.Mutex
	script   []MockReply
	requests []Request
}

// NewMock returns a Mock that plays replies before synthesizing.
func NewMock(replies ...MockReply) *Mock {
	return &Mock{script: replies}
}

func (m *Mock) Info() Info { return Info{Provider: "mock", Model: "mock"} }

func (m *Mock) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	var (
		next     MockReply
		scripted bool
	)
	if len(m.script) > 0 {
		next, m.script, scripted = m.script[0], m.script[1:], true
	}
	m.mu.Unlock()

	if scripted {
		if next.Err != nil {
			return nil, next.Err
		}
		return &Response{Content: next.Content, Usage: next.Usage, Model: "mock"}, nil
	}

	if req.Schema == nil {
		return nil, &Error{Kind: KindUnavailable, Provider: "mock", Err: errors.New("no scripted reply")}
	}
	content, err := json.Marshal(placeholder("", req.Schema.Definition))
	if err != nil {
		return nil, &Error{Kind: KindInvalidOutput, Provider: "mock", Err: err}
	}
	return &Response{
		Content: content,
		Usage:   Usage{InputTokens: len(req.System) + len(req.Prompt), OutputTokens: len(content)},
		Model:   "mock",
	}, nil
}

// Requests returns every request seen so far.
func (m *Mock) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

// placeholder builds a value of the shape def describes. Strings read
// "mock <field>" and enums take their first member.
func placeholder(name string, def map[string]any) any {
	if enum, ok := def["enum"].([]any); ok && len(enum) > 0 {
		return enum[0]
	}
	if enum := stringList(def["enum"]); len(enum) > 0 {
		return enum[0]
	}
	switch def["type"] {
	case "object":
		obj := map[string]any{}
		props, _ := def["properties"].(map[string]any)
		for field, v := range props {
			sub, _ := v.(map[string]any)
			obj[field] = placeholder(field, sub)
		}
		return obj
	case "array":
		items, _ := def["items"].(map[string]any)
		return []any{placeholder(name, items)}
	case "integer", "number":
		return 0
	case "boolean":
		return false
	default:
		if name == "" {
			return "mock"
		}
		return "mock " + name
	}
}
