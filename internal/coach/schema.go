package coach

import "github.com/feedrank/feedrank/internal/llm"

// ExplanationSchema defines the JSON schema for a round explanation.
var ExplanationSchema = &llm.Schema{
	Name:        "round-explanation",
	Description: "A short explanation of why the Wilson score order differs from the learner's order",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-line takeaway (4-10 words)",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "2-4 sentences referring to the actual vote counts",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "One sentence the learner can apply next round",
			},
		},
		"required":             []any{"headline", "explanation", "tip"},
		"additionalProperties": false,
	},
}
