package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// completion is a backend's raw reply.
type completion struct {
	text      string
	model     string
	usage     Usage
	truncated bool
}

// backend is the SDK-specific half of a provider: it sends the request and
// reports what came back.
type backend interface {
	complete(ctx context.Context, req Request) (completion, error)
	info() Info
}

// structured turns backend replies into Responses. Every SDK provider in
// this package is a structured around its backend.
type structured struct {
	b backend
}

func (s *structured) Info() Info { return s.b.info() }

func (s *structured) Generate(ctx context.Context, req Request) (*Response, error) {
	c, err := s.b.complete(ctx, req)
	if err != nil {
		return nil, err
	}
	info := s.b.info()

	model := c.model
	if model == "" {
		model = info.Model
	}
	resp := &Response{Usage: c.usage, Model: model}

	if req.Schema == nil {
		text, err := json.Marshal(c.text)
		if err != nil {
			return nil, &Error{Kind: KindInvalidOutput, Provider: info.Provider, Err: err}
		}
		resp.Content = text
		return resp, nil
	}

	body := json.RawMessage(stripFences(c.text))
	if c.truncated {
		return nil, &Error{Kind: KindTruncated, Provider: info.Provider, Content: body}
	}
	if len(body) == 0 {
		return nil, &Error{Kind: KindInvalidOutput, Provider: info.Provider, Err: errors.New("empty reply")}
	}
	if err := schemas.check(req.Schema, body); err != nil {
		return nil, &Error{Kind: KindInvalidOutput, Provider: info.Provider, Content: body, Err: err}
	}
	resp.Content = body
	return resp, nil
}

// stripFences removes a Markdown code fence around a JSON reply, which some
// models add even when asked for bare JSON.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:] // drop the language tag line
	} else {
		text = ""
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// resolveModel maps a short alias such as "claude-haiku" to a model ID;
// anything else passes through unchanged.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
