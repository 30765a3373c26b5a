package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/llm"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/wilson"
)

func rankRecords(t *testing.T, records []ranking.VoteRecord) []ranking.ScoredItem {
	t.Helper()
	items, err := ranking.Rank(records, wilson.Confidence95)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	return items
}

func curatedItems(t *testing.T, id int) (catalog.ExampleSet, []ranking.ScoredItem) {
	t.Helper()
	set, ok := catalog.ByID(id)
	if !ok {
		t.Fatalf("curated set %d not found", id)
	}
	return set, rankRecords(t, set.VoteRecords)
}

func scoredInput(t *testing.T, id int, order []int) Input {
	t.Helper()
	set, items := curatedItems(t, id)
	submitted, err := ranking.Arrange(items, order)
	if err != nil {
		t.Fatalf("arrange: %v", err)
	}
	result, err := ranking.NewScorer(ranking.DefaultWeights()).Score(submitted)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	return Input{Set: set, Submitted: submitted, Actual: ranking.ByActualRank(items), Result: result}
}

func TestHintPerConcept(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range catalog.Concepts() {
		h := Hint(catalog.ExampleSet{Concept: c})
		if h == "" {
			t.Errorf("%s: empty hint", c.Name())
		}
		if seen[h] {
			t.Errorf("%s: hint shared with another concept", c.Name())
		}
		seen[h] = true
	}
	if Hint(catalog.ExampleSet{}) == "" {
		t.Error("expected a generic hint for a set without concept")
	}
}

func TestIssues(t *testing.T) {
	small := rankRecords(t, []ranking.VoteRecord{
		{ID: 1, Upvotes: 5, Downvotes: 0},
		{ID: 2, Upvotes: 150, Downvotes: 10},
	})

	tests := []struct {
		name  string
		items func() []ranking.ScoredItem
		order []int
		want  []string // substrings, one per expected issue
	}{
		{
			name:  "naive order on similar ratios",
			items: func() []ranking.ScoredItem { _, it := curatedItems(t, 5); return it },
			order: []int{1, 2, 3},
			want:  []string{"order by percentage"},
		},
		{
			name:  "wilson order on similar ratios",
			items: func() []ranking.ScoredItem { _, it := curatedItems(t, 5); return it },
			order: []int{2, 3, 1},
		},
		{
			name:  "tiny sample on top",
			items: func() []ranking.ScoredItem { _, it := curatedItems(t, 1); return it },
			order: []int{1, 2, 3},
			want:  []string{"only 3 votes", "order by percentage"},
		},
		{
			name:  "perfect score above large sample",
			items: func() []ranking.ScoredItem { return small },
			order: []int{1, 2},
			want:  []string{"only 5 votes", "perfect score comes from just 5 votes", "order by percentage"},
		},
		{
			name:  "large sample first",
			items: func() []ranking.ScoredItem { return small },
			order: []int{2, 1},
		},
		{
			name:  "partial order skips naive check",
			items: func() []ranking.ScoredItem { _, it := curatedItems(t, 5); return it },
			order: []int{1, 2},
		},
		{
			name:  "empty order",
			items: func() []ranking.ScoredItem { return small },
			order: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Issues(tt.items(), tt.order)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d issues %q, want %d", len(got), got, len(tt.want))
			}
			for i, w := range tt.want {
				if !strings.Contains(got[i], w) {
					t.Errorf("issue %d = %q, want it to mention %q", i, got[i], w)
				}
			}
		})
	}
}

func TestStaticExplainer(t *testing.T) {
	perfect := StaticExplainer{}.Explain(context.Background(), scoredInput(t, 5, []int{2, 3, 1}))
	if perfect.Headline != "Perfect ranking!" {
		t.Errorf("headline = %q", perfect.Headline)
	}
	if perfect.Generated {
		t.Error("static explanation marked generated")
	}

	in := scoredInput(t, 5, []int{1, 2, 3})
	miss := StaticExplainer{}.Explain(context.Background(), in)
	if miss.Body != in.Set.KeyInsight {
		t.Errorf("body = %q, want key insight", miss.Body)
	}
	if miss.Tip != Hint(in.Set) {
		t.Errorf("tip = %q, want concept hint", miss.Tip)
	}
}

func TestLLMExplainer_Success(t *testing.T) {
	content, _ := json.Marshal(map[string]string{
		"headline":    "Volume beat the 95%",
		"explanation": "Item 2 has 200 votes, so its 89% is far more certain than 95% from 20.",
		"tip":         "Check the vote totals first.",
	})
	mock := llm.NewMock(llm.MockReply{Content: content})
	e := NewLLMExplainer(mock, DefaultConfig(), nil)

	got := e.Explain(context.Background(), scoredInput(t, 5, []int{1, 2, 3}))
	if !got.Generated || got.Headline != "Volume beat the 95%" || got.Tip == "" {
		t.Fatalf("explanation = %+v", got)
	}

	reqs := mock.Requests()
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	req := reqs[0]
	if req.Purpose != llm.PurposeExplanation {
		t.Errorf("purpose = %q, want %q", req.Purpose, llm.PurposeExplanation)
	}
	if req.Schema != ExplanationSchema {
		t.Error("request did not use the explanation schema")
	}
	for _, want := range []string{"Concept: Similar Ratios", "item 2: 178 up / 22 down", "Learner's order (best first): 1, 2, 3", "Score: 2 of 9 points"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, req.Prompt)
		}
	}
}

func TestLLMExplainer_PromptNamesConfidence(t *testing.T) {
	tests := []struct {
		name string
		c    wilson.Confidence
		want string
	}{
		{"unset", 0, "at 95% confidence"},
		{"95", wilson.Confidence95, "at 95% confidence"},
		{"90", wilson.Confidence90, "at 90% confidence"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMock()
			in := scoredInput(t, 5, []int{1, 2, 3})
			in.Confidence = tt.c
			NewLLMExplainer(mock, DefaultConfig(), nil).Explain(context.Background(), in)

			reqs := mock.Requests()
			if len(reqs) != 1 {
				t.Fatalf("got %d requests, want 1", len(reqs))
			}
			if !strings.Contains(reqs[0].System, tt.want) {
				t.Errorf("system prompt missing %q:\n%s", tt.want, reqs[0].System)
			}
		})
	}
}

func TestLLMExplainer_UnscriptedMock(t *testing.T) {
	e := NewLLMExplainer(llm.NewMock(), DefaultConfig(), nil)

	got := e.Explain(context.Background(), scoredInput(t, 5, []int{1, 2, 3}))
	if !got.Generated {
		t.Fatalf("explanation = %+v, want generated", got)
	}
	if got.Headline != "mock headline" || got.Body != "mock explanation" || got.Tip != "mock tip" {
		t.Errorf("explanation = %+v", got)
	}
}

func TestLLMExplainer_FallsBack(t *testing.T) {
	tests := []struct {
		name  string
		reply llm.MockReply
	}{
		{"provider error", llm.MockReply{Err: &llm.Error{Kind: llm.KindUnavailable, Provider: "mock", Err: errors.New("down")}}},
		{"malformed content", llm.MockReply{Content: json.RawMessage(`"not an object"`)}},
		{"empty explanation", llm.MockReply{Content: json.RawMessage(`{"headline":"x","explanation":"","tip":"y"}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			e := NewLLMExplainer(llm.NewMock(tt.reply), DefaultConfig(), logger)

			in := scoredInput(t, 5, []int{1, 2, 3})
			got := e.Explain(context.Background(), in)
			if got.Generated {
				t.Error("fallback marked generated")
			}
			if got.Body != in.Set.KeyInsight {
				t.Errorf("body = %q, want key insight", got.Body)
			}
			if len(hook.Entries) != 1 || hook.LastEntry().Level != logrus.WarnLevel {
				t.Errorf("expected one warning, got %d entries", len(hook.Entries))
			}
		})
	}
}

func TestTutorial(t *testing.T) {
	steps := Tutorial()
	if len(steps) != 5 {
		t.Fatalf("got %d steps, want 5", len(steps))
	}
	if steps[0].Title != "Welcome to Feed Rank!" || steps[4].Title != "Your Challenge" {
		t.Errorf("unexpected titles %q ... %q", steps[0].Title, steps[4].Title)
	}
	steps[0].Title = "changed"
	if Tutorial()[0].Title == "changed" {
		t.Error("Tutorial returned shared storage")
	}
}
