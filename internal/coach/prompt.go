package coach

import (
	"fmt"
	"strings"

	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/wilson"
)

func explainSystemPrompt(c wilson.Confidence) string {
	if c == 0 {
		c = wilson.DefaultConfidence
	}
	return fmt.Sprintf("You coach people learning how online ratings should be ranked. "+
		"Items are ranked by the lower bound of the Wilson score interval at %s confidence, "+
		"which rewards both a high approval rate and a large number of votes. "+
		"Be concrete, friendly and brief.", c)
}

func buildExplainUserMessage(in Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Concept: %s\n", in.Set.Concept.Title()))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", in.Set.Difficulty.DisplayName()))

	b.WriteString("\nItems (best to worst by Wilson score):\n")
	for _, it := range in.Actual {
		b.WriteString(fmt.Sprintf("- item %d: %d up / %d down, %.1f%% approval, Wilson %.3f, rank %d\n",
			it.ID, it.Upvotes, it.Downvotes, it.Ratio()*100, it.WilsonScore, it.ActualRank))
	}

	b.WriteString("\nLearner's order (best first): ")
	b.WriteString(joinIDs(in.Submitted))
	b.WriteString(fmt.Sprintf("\nScore: %d of %d points, %d of %d exact\n",
		in.Result.TotalScore, in.Result.MaxScore, in.Result.ExactMatches, len(in.Actual)))

	b.WriteString(fmt.Sprintf("\nKey idea to reinforce: %s\n", in.Set.KeyInsight))

	b.WriteString(`
Instructions:
1. If the learner's order was perfect, congratulate them and restate why the order holds.
2. Otherwise name the item they misplaced most and explain, using its vote counts, why Wilson ranks it differently.
3. Do not use LaTeX or formulas. Plain text only.`)

	return b.String()
}

func joinIDs(items []ranking.ScoredItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%d", it.ID)
	}
	return strings.Join(parts, ", ")
}
