package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"FEEDRANK_LLM_PROVIDER", "FEEDRANK_ANTHROPIC_API_KEY", "FEEDRANK_OPENAI_API_KEY",
		"FEEDRANK_GEMINI_API_KEY", "FEEDRANK_OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	def := DefaultConfig()
	if cfg.Provider != def.Provider {
		t.Errorf("Provider = %q, want %q", cfg.Provider, def.Provider)
	}
	if cfg.Anthropic.Model != def.Anthropic.Model || cfg.Gemini.Model != def.Gemini.Model {
		t.Errorf("models = %q/%q, want defaults", cfg.Anthropic.Model, cfg.Gemini.Model)
	}
	if cfg.Retry != def.Retry {
		t.Errorf("Retry = %+v, want %+v", cfg.Retry, def.Retry)
	}
	if cfg.Timeout != def.Timeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, def.Timeout)
	}
	if cfg.HasExplicitKey() {
		t.Error("expected no explicit key")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("FEEDRANK_LLM_PROVIDER", "openai")
	t.Setenv("FEEDRANK_OPENAI_API_KEY", "sk-test")
	t.Setenv("FEEDRANK_OPENAI_MODEL", "gpt-4.1-mini")
	t.Setenv("FEEDRANK_LLM_RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("FEEDRANK_LLM_TIMEOUT", "5s")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4.1-mini" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Errorf("MaxAttempts = %d, want 5", cfg.Retry.MaxAttempts)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigFromEnv_InvalidDuration(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("FEEDRANK_LLM_TIMEOUT", "soon")

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no config without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovered config")
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "o-key" {
		t.Errorf("discovered %q, want openai", cfg.Provider)
	}
}

func TestNewProviderFromEnv(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	t.Run("no keys", func(t *testing.T) {
		clearProviderEnv(t)
		_, err := NewProviderFromEnv(context.Background(), nil, logger)
		if !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("mock provider", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("FEEDRANK_LLM_PROVIDER", "mock")
		p, err := NewProviderFromEnv(context.Background(), nil, logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := (Info{Provider: "mock", Model: "mock"}); p.Info() != want {
			t.Errorf("info = %+v, want %+v", p.Info(), want)
		}
	})

	t.Run("explicit key without provider match", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("FEEDRANK_GEMINI_API_KEY", "g-key")
		_, err := NewProviderFromEnv(context.Background(), nil, logger)
		if err == nil {
			t.Fatal("expected validation error for anthropic without key")
		}
	})

	t.Run("discovered key", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("OPENAI_API_KEY", "o-key")
		p, err := NewProviderFromEnv(context.Background(), nil, logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Info().Provider != "openai" {
			t.Errorf("provider = %q, want openai", p.Info().Provider)
		}
	})
}

func TestNewProvider_MockRecordsEvents(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	events := &recordingLog{}
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, events, logger)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	resp, err := p.Generate(context.Background(), Request{Prompt: "explain", Schema: explanationTestSchema})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := schemas.check(explanationTestSchema, resp.Content); err != nil {
		t.Errorf("mock reply does not fit the schema: %v", err)
	}
	if len(events.events) != 1 || events.events[0].Purpose != PurposeExplanation || !events.events[0].Success {
		t.Errorf("events = %+v", events.events)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"anthropic without key", func(c *Config) {}, true},
		{"anthropic with key", func(c *Config) { c.Anthropic.APIKey = "k" }, false},
		{"openrouter without key", func(c *Config) { c.Provider = "openrouter" }, true},
		{"mock", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown", func(c *Config) { c.Provider = "palm" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
