package llm

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider builds a Provider on OpenRouter's OpenAI-compatible
// API. Model names such as "google/gemini-2.0-flash-exp" pass through as is.
func NewOpenRouterProvider(cfg OpenRouterConfig) (Provider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	b, err := newOpenAIBackend("openrouter", cfg.APIKey, cfg.Model, baseURL)
	if err != nil {
		return nil, err
	}
	return &structured{b: b}, nil
}
