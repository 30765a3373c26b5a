package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openAIBackend speaks the Chat Completions API. OpenRouter reuses it with a
// different base URL and name.
type openAIBackend struct {
	client *openai.Client
	model  string
	name   string
}

// NewOpenAIProvider builds a Provider on Chat Completions. BaseURL points it
// at any compatible server.
func NewOpenAIProvider(cfg OpenAIConfig) (Provider, error) {
	b, err := newOpenAIBackend("openai", cfg.APIKey, cfg.Model, cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	return &structured{b: b}, nil
}

func newOpenAIBackend(name, key, model, baseURL string) (*openAIBackend, error) {
	if key == "" {
		return nil, missingKey(name)
	}
	config := openai.DefaultConfig(key)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &openAIBackend{
		client: openai.NewClientWithConfig(config),
		model:  model,
		name:   name,
	}, nil
}

func (b *openAIBackend) info() Info {
	return Info{Provider: b.name, Model: b.model}
}

func (b *openAIBackend) complete(ctx context.Context, req Request) (completion, error) {
	chat := openai.ChatCompletionRequest{
		Model:               b.model,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
	if req.System != "" {
		chat.Messages = append(chat.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	chat.Messages = append(chat.Messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return completion{}, fmt.Errorf("encode schema %s: %w", req.Schema.Name, err)
		}
		chat.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        req.Schema.Name,
				Description: req.Schema.Description,
				Schema:      json.RawMessage(def),
				Strict:      true,
			},
		}
	}

	resp, err := b.client.CreateChatCompletion(ctx, chat)
	if err != nil {
		return completion{}, b.classify(err)
	}
	if len(resp.Choices) == 0 {
		return completion{}, &Error{Kind: KindInvalidOutput, Provider: b.name, Err: errors.New("reply has no choices")}
	}

	choice := resp.Choices[0]
	return completion{
		text:  choice.Message.Content,
		model: resp.Model,
		usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
		truncated: choice.FinishReason == openai.FinishReasonLength,
	}, nil
}

func (b *openAIBackend) classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(b.name, apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(b.name, reqErr.HTTPStatusCode, err)
	}
	return statusError(b.name, 0, err)
}
