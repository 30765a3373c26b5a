package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrNotConfigured is returned by NewProviderFromEnv when no API key is
// available from either FEEDRANK_* or the standard provider variables.
var ErrNotConfigured = errors.New("no LLM API key configured")

// NewProvider builds the configured provider and wraps it so calls go
// through retry, then the event log, then the backend. events may be nil.
func NewProvider(ctx context.Context, cfg Config, events EventLog, log logrus.FieldLogger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMock()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := base
	if events != nil {
		p = WithEventLog(p, events, log)
	}
	return WithRetry(p, cfg.Retry, cfg.Timeout, log), nil
}

// NewProviderFromEnv builds a Provider from FEEDRANK_* variables, falling
// back to DiscoverConfig when no FEEDRANK_*_API_KEY is set.
func NewProviderFromEnv(ctx context.Context, events EventLog, log logrus.FieldLogger) (Provider, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if !cfg.HasExplicitKey() && cfg.Provider != "mock" {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, ErrNotConfigured
		}
		discovered.Retry = cfg.Retry
		discovered.Timeout = cfg.Timeout
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events, log)
}
