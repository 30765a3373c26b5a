package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if s.EventRepo() == nil {
		t.Fatal("expected non-nil event repo")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedrank.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"round_events", "session_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestRoundEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rounds := []RoundEventData{
		{SessionID: "s1", Round: 1, ExampleID: 1, Difficulty: "beginner", Concept: "sample_size",
			ItemCount: 3, ExactMatches: 3, Score: 9, MaxScore: 9, Perfect: true, Streak: 1,
			SubmittedOrder: []int{2, 3, 1}, ActualOrder: []int{2, 3, 1}},
		{SessionID: "s1", Round: 2, ExampleID: 3, Difficulty: "beginner", Concept: "perfect_scores",
			ItemCount: 3, ExactMatches: 1, Score: 5, MaxScore: 9,
			SubmittedOrder: []int{3, 1, 2}, ActualOrder: []int{3, 2, 1}},
		{SessionID: "s1", Round: 3, ExampleID: 11, Difficulty: "intermediate", Concept: "sample_size",
			Synthesized: true, ItemCount: 3, ExactMatches: 0, Score: 2, MaxScore: 9,
			SubmittedOrder: []int{1, 2, 3}, ActualOrder: []int{2, 3, 1}},
	}
	for _, r := range rounds {
		if err := repo.AppendRoundEvent(ctx, r); err != nil {
			t.Fatalf("append round %d: %v", r.Round, err)
		}
	}

	recent, err := repo.RecentRounds(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent rounds: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d rounds, want 2", len(recent))
	}
	if recent[0].Round != 3 || recent[1].Round != 2 {
		t.Errorf("rounds = %d, %d, want newest first", recent[0].Round, recent[1].Round)
	}
	if !recent[0].Synthesized || recent[0].ActualOrder[0] != 2 {
		t.Errorf("round 3 = %+v", recent[0])
	}
	if recent[0].Sequence <= recent[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", recent[1].Sequence, recent[0].Sequence)
	}

	after, err := repo.RecentRounds(ctx, QueryOpts{After: recent[1].Sequence})
	if err != nil {
		t.Fatalf("recent rounds after: %v", err)
	}
	if len(after) != 1 || after[0].Round != 3 {
		t.Errorf("after filter returned %+v", after)
	}

	concepts, err := repo.ConceptStats(ctx)
	if err != nil {
		t.Fatalf("concept stats: %v", err)
	}
	if len(concepts) != 2 {
		t.Fatalf("got %d concepts, want 2", len(concepts))
	}
	ss := concepts[1]
	if ss.Concept != "sample_size" || ss.Rounds != 2 || ss.Perfect != 1 || ss.ExactMatches != 3 || ss.Items != 6 {
		t.Errorf("sample_size stats = %+v", ss)
	}
	if ss.Accuracy() != 0.5 {
		t.Errorf("accuracy = %f, want 0.5", ss.Accuracy())
	}

	diffs, err := repo.DifficultyStats(ctx)
	if err != nil {
		t.Fatalf("difficulty stats: %v", err)
	}
	if len(diffs) != 2 || diffs[0].Difficulty != "beginner" || diffs[0].Score != 14 || diffs[0].MaxScore != 18 {
		t.Errorf("difficulty stats = %+v", diffs)
	}
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "a", Action: "start"},
		{SessionID: "a", Action: "reset", RoundsPlayed: 4, TotalScore: 10, MaxPossibleScore: 12, BestStreak: 2},
		{SessionID: "b", Action: "start"},
		{SessionID: "b", Action: "end", RoundsPlayed: 1, TotalScore: 3, MaxPossibleScore: 3, BestStreak: 1},
		{SessionID: "c", Action: "start"},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %s/%s: %v", e.SessionID, e.Action, err)
		}
	}

	sessions, err := repo.Sessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}
	if sessions[0].SessionID != "c" || sessions[0].EndAction != "" {
		t.Errorf("newest session = %+v", sessions[0])
	}
	if a := sessions[2]; a.SessionID != "a" || a.EndAction != "reset" || a.RoundsPlayed != 4 || a.BestStreak != 2 {
		t.Errorf("session a = %+v", a)
	}

	limited, err := repo.Sessions(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("sessions limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d sessions, want 1", len(limited))
	}

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "d", Action: "pause"}); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "explanation", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true,
			RequestBody: `{"system":"..."}`, ResponseBody: `{"headline":"..."}`},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "explanation", InputTokens: 120, OutputTokens: 40, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "explanation", InputTokens: 80, LatencyMs: 300, Success: false, ErrorMessage: "rate limited"},
	}
	for _, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].Model != "gpt-4o-mini" || events[0].Success {
		t.Errorf("newest event = %+v", events[0])
	}

	first, err := repo.GetLLMEvent(ctx, events[2].ID)
	if err != nil {
		t.Fatalf("get LLM event: %v", err)
	}
	if first == nil || first.RequestBody == "" || first.ResponseBody == "" {
		t.Errorf("first event = %+v, want captured bodies", first)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 || byPurpose[0].Calls != 3 || byPurpose[0].InputTokens != 300 || byPurpose[0].AvgLatencyMs != 300 {
		t.Errorf("usage by purpose = %+v", byPurpose)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "claude-sonnet-4-5" || byModel[0].OutputTokens != 90 {
		t.Errorf("usage by model = %+v", byModel)
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feedrank.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendSessionEvent(context.Background(), SessionEventData{SessionID: "x", Action: "start"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	if err := Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("database still exists: %v", err)
	}
	if err := Remove(path); err != nil {
		t.Errorf("removing a missing database should succeed: %v", err)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("FEEDRANK_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "custom", "x.db") {
		t.Errorf("path = %q", p)
	}

	t.Setenv("FEEDRANK_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "feedrank", "feedrank.db") {
		t.Errorf("path = %q", p)
	}
	if _, err := os.Stat(filepath.Dir(p)); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
}
