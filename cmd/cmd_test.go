package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/store"
	"github.com/feedrank/feedrank/internal/wilson"
)

func openTempStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "feedrank.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestParseVotePair(t *testing.T) {
	rec, err := parseVotePair(3, "19:1")
	require.NoError(t, err)
	assert.Equal(t, ranking.VoteRecord{ID: 3, Upvotes: 19, Downvotes: 1}, rec)

	for _, bad := range []string{"19", "a:1", "1:b", "-1:2"} {
		_, err := parseVotePair(1, bad)
		assert.Error(t, err, bad)
	}

	_, err = parseVotePair(1, "-1:2")
	assert.ErrorIs(t, err, ranking.ErrInvalidVoteCounts)
}

func TestPrintScores_SmallSampleLoses(t *testing.T) {
	var buf bytes.Buffer
	records := []ranking.VoteRecord{
		{ID: 1, Upvotes: 19, Downvotes: 1},
		{ID: 2, Upvotes: 178, Downvotes: 22},
	}
	require.NoError(t, printScores(&buf, records, wilson.Confidence95))

	out := buf.String()
	assert.Contains(t, out, "By percentage:  #1 > #2")
	assert.Contains(t, out, "By Wilson:      #2 > #1")
	assert.Contains(t, out, "The orders disagree")
	assert.Contains(t, out, "95% interval")
}

func TestPrintScores_Agreement(t *testing.T) {
	var buf bytes.Buffer
	records := []ranking.VoteRecord{
		{ID: 1, Upvotes: 90, Downvotes: 10},
		{ID: 2, Upvotes: 10, Downvotes: 90},
	}
	require.NoError(t, printScores(&buf, records, wilson.Confidence90))
	assert.NotContains(t, buf.String(), "disagree")
	assert.Contains(t, buf.String(), "90% interval")
}

func TestPrintCurated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCurated(&buf, ""))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(catalog.Curated())+2)

	buf.Reset()
	require.NoError(t, printCurated(&buf, catalog.Advanced))
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n")[2:] {
		assert.Contains(t, line, "advanced")
	}
}

func TestPrintSet(t *testing.T) {
	set := catalog.New(newRand(7), catalog.DefaultSynthConfig()).Synthesize(catalog.SampleSize{}, catalog.Beginner)

	var buf bytes.Buffer
	require.NoError(t, printSet(&buf, set, wilson.Confidence95))
	out := buf.String()
	assert.Contains(t, out, "Sample Size (generated)")
	assert.Contains(t, out, set.KeyInsight)
	assert.Contains(t, out, "By Wilson:")
}

func TestNewRand_Deterministic(t *testing.T) {
	a, b := newRand(42), newRand(42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestPrintHistoryAndStats(t *testing.T) {
	s := openTempStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, printHistory(ctx, &buf, repo, 10))
	assert.Contains(t, buf.String(), "No rounds played yet.")

	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{SessionID: "s1", Action: "start"}))
	require.NoError(t, repo.AppendRoundEvent(ctx, store.RoundEventData{
		SessionID: "s1", Round: 1, ExampleID: 1, Title: "Small Sample Trap",
		Difficulty: "beginner", Concept: "sample_size",
		ItemCount: 3, ExactMatches: 3, Score: 9, MaxScore: 9, Perfect: true, Streak: 1,
		SubmittedOrder: []int{2, 1, 3}, ActualOrder: []int{2, 1, 3},
	}))

	buf.Reset()
	require.NoError(t, printHistory(ctx, &buf, repo, 10))
	assert.Contains(t, buf.String(), "2,1,3")
	assert.Contains(t, buf.String(), "9/9")
	assert.Contains(t, buf.String(), "★")

	buf.Reset()
	require.NoError(t, printStats(ctx, &buf, repo))
	out := buf.String()
	assert.Contains(t, out, "sample_size")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "beginner")
	assert.Contains(t, out, "(open)")
}

func TestPrintLLMEvents(t *testing.T) {
	events := []store.LLMRequestRecord{
		{ID: 1, LLMRequestEventData: store.LLMRequestEventData{Purpose: "explanation", Model: "gpt-4o-mini", Success: true}},
		{ID: 2, LLMRequestEventData: store.LLMRequestEventData{Purpose: "other", Model: "claude-haiku"}},
	}

	var buf bytes.Buffer
	printLLMEvents(&buf, events, "explanation")
	assert.Contains(t, buf.String(), "gpt-4o-mini")
	assert.NotContains(t, buf.String(), "claude-haiku")

	buf.Reset()
	printLLMEvents(&buf, events, "missing")
	assert.Equal(t, "No LLM events found.\n", buf.String())
}

func TestPrintLLMEvent(t *testing.T) {
	var buf bytes.Buffer
	printLLMEvent(&buf, store.LLMRequestRecord{
		ID: 4,
		LLMRequestEventData: store.LLMRequestEventData{
			Provider: "openai", Model: "gpt-4o-mini", Purpose: "explanation",
			ErrorMessage: "rate limited", RequestBody: `{"prompt":"x"}`,
		},
	})
	out := buf.String()
	assert.Contains(t, out, "Error:     rate limited")
	assert.Contains(t, out, `{"prompt":"x"}`)
	assert.Contains(t, out, "(not captured)")
}

func TestPrintLLMUsage(t *testing.T) {
	s := openTempStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, printLLMUsage(ctx, &buf, repo))
	assert.Contains(t, buf.String(), "No LLM usage recorded yet.")

	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "explanation",
		InputTokens: 1000, OutputTokens: 200, LatencyMs: 300, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "mock", Model: "mystery-model", Purpose: "explanation",
		InputTokens: 10, OutputTokens: 5, Success: true,
	}))

	buf.Reset()
	require.NoError(t, printLLMUsage(ctx, &buf, repo))
	out := buf.String()
	assert.Contains(t, out, "explanation")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: mystery-model")
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.0012))
	assert.Equal(t, "$1.50", formatCost(1.5))
}

func TestResetRequiresConfirmation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "feedrank.db")
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"reset", "--db", dbPath})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		_ = resetCmd.Flags().Set("yes", "false")
		_ = rootCmd.PersistentFlags().Set("db", "")
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Re-run with --yes")
	assert.FileExists(t, dbPath)

	rootCmd.SetArgs([]string{"reset", "--db", dbPath, "--yes"})
	require.NoError(t, rootCmd.Execute())
	assert.NoFileExists(t, dbPath)
}
