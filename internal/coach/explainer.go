package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/llm"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/wilson"
)

// Input describes a scored round.
type Input struct {
	Set       catalog.ExampleSet
	Submitted []ranking.ScoredItem // learner's order
	Actual    []ranking.ScoredItem // best to worst
	Result    ranking.ScoreResult
	// Confidence is the level Actual was ranked at. Zero means the default.
	Confidence wilson.Confidence
}

// Explanation is shown on the results view.
type Explanation struct {
	Headline string
	Body     string
	Tip      string
	// Generated is true when the text came from an LLM.
	Generated bool
}

// Explainer turns a scored round into an Explanation. Implementations
// never fail; they degrade to the set's key insight.
type Explainer interface {
	Explain(ctx context.Context, in Input) Explanation
}

// StaticExplainer explains with the set's key insight.
type StaticExplainer struct{}

func (StaticExplainer) Explain(_ context.Context, in Input) Explanation {
	return staticExplanation(in)
}

func staticExplanation(in Input) Explanation {
	headline := "Not quite the Wilson order"
	if in.Result.Perfect() {
		headline = "Perfect ranking!"
	}
	body := in.Set.KeyInsight
	if body == "" && in.Set.Concept != nil {
		body = in.Set.Concept.Insight()
	}
	return Explanation{Headline: headline, Body: body, Tip: Hint(in.Set)}
}

// LLMExplainer asks an LLM for a tailored explanation.
type LLMExplainer struct {
	provider llm.Provider
	cfg      Config
	log      logrus.FieldLogger
}

// NewLLMExplainer creates an explainer backed by provider.
func NewLLMExplainer(provider llm.Provider, cfg Config, log logrus.FieldLogger) *LLMExplainer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LLMExplainer{provider: provider, cfg: cfg, log: log}
}

type explanationOutput struct {
	Headline    string `json:"headline"`
	Explanation string `json:"explanation"`
	Tip         string `json:"tip"`
}

// Explain falls back to the static explanation on any provider or parse
// error.
func (e *LLMExplainer) Explain(ctx context.Context, in Input) Explanation {
	out, err := e.generate(ctx, in)
	if err != nil {
		e.log.WithError(err).WithField("example_id", in.Set.ID).Warn("explanation fell back to key insight")
		return staticExplanation(in)
	}
	return out
}

func (e *LLMExplainer) generate(ctx context.Context, in Input) (Explanation, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}
	req := llm.Request{
		Purpose:     llm.PurposeExplanation,
		System:      explainSystemPrompt(in.Confidence),
		Prompt:      buildExplainUserMessage(in),
		Schema:      ExplanationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return Explanation{}, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Explanation{}, fmt.Errorf("parse explanation response: %w", err)
	}
	if out.Explanation == "" {
		return Explanation{}, errors.New("empty explanation")
	}

	return Explanation{
		Headline:  out.Headline,
		Body:      out.Explanation,
		Tip:       out.Tip,
		Generated: true,
	}, nil
}
