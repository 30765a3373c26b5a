package catalog

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/wilson"
)

func newTestCatalog(seed uint64) *Catalog {
	return New(rand.New(rand.NewPCG(seed, seed+1)), DefaultSynthConfig())
}

func TestCurated_Coverage(t *testing.T) {
	perDifficulty := map[Difficulty]int{}
	concepts := map[string]bool{}
	ids := map[int]bool{}

	for _, s := range Curated() {
		if ids[s.ID] {
			t.Errorf("duplicate curated id %d", s.ID)
		}
		ids[s.ID] = true
		perDifficulty[s.Difficulty]++
		concepts[s.Concept.Name()] = true

		if len(s.VoteRecords) != 3 {
			t.Errorf("set %d has %d records, want 3", s.ID, len(s.VoteRecords))
		}
		if s.KeyInsight == "" {
			t.Errorf("set %d has no key insight", s.ID)
		}
		if s.Synthesized {
			t.Errorf("set %d is marked synthesized", s.ID)
		}
	}

	for _, d := range AllDifficulties() {
		if perDifficulty[d] < 2 {
			t.Errorf("difficulty %s has %d curated sets, want at least 2", d, perDifficulty[d])
		}
	}
	for _, c := range Concepts() {
		if !concepts[c.Name()] {
			t.Errorf("concept %s has no curated set", c.Name())
		}
	}
}

func TestCurated_NaiveAndWilsonDisagree(t *testing.T) {
	for _, s := range Curated() {
		items, err := ranking.Rank(s.VoteRecords, wilson.Confidence95)
		if err != nil {
			t.Fatalf("set %d: %v", s.ID, err)
		}
		if !ranking.Disagrees(items) {
			t.Errorf("set %d (%s): naive and Wilson orders agree", s.ID, s.Title)
		}
	}
}

func TestCurated_ReturnsCopies(t *testing.T) {
	sets := Curated()
	sets[0].VoteRecords[0].Upvotes = 9999

	again := Curated()
	if again[0].VoteRecords[0].Upvotes == 9999 {
		t.Error("mutating a returned set changed the catalog")
	}
}

func TestPickCurated_MatchesDifficulty(t *testing.T) {
	c := newTestCatalog(7)
	for _, d := range AllDifficulties() {
		for i := 0; i < 50; i++ {
			s := c.PickCurated(d)
			if s.Difficulty != d {
				t.Fatalf("PickCurated(%s) returned set %d at %s", d, s.ID, s.Difficulty)
			}
		}
	}
}

func TestPickCurated_CoversAllMatches(t *testing.T) {
	c := newTestCatalog(11)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		seen[c.PickCurated(Intermediate).ID] = true
	}
	if want := len(ForDifficulty(Intermediate)); len(seen) != want {
		t.Errorf("saw %d distinct intermediate sets, want %d", len(seen), want)
	}
}

func TestPickCurated_FallsBackToFirstSet(t *testing.T) {
	c := newTestCatalog(3)
	s := c.PickCurated(Difficulty("expert"))
	if s.ID != curatedSets[0].ID {
		t.Errorf("fallback returned set %d, want %d", s.ID, curatedSets[0].ID)
	}
}

func TestByID(t *testing.T) {
	s, ok := ByID(5)
	if !ok {
		t.Fatal("set 5 not found")
	}
	if s.VoteRecords[1].Upvotes != 178 {
		t.Errorf("set 5 item 2 upvotes = %d, want 178", s.VoteRecords[1].Upvotes)
	}
	if _, ok := ByID(-1); ok {
		t.Error("expected no set for id -1")
	}
}

func TestSynthesize_Shape(t *testing.T) {
	c := newTestCatalog(42)
	for _, concept := range Concepts() {
		for _, d := range AllDifficulties() {
			s := c.Synthesize(concept, d)

			if !s.Synthesized {
				t.Errorf("%s/%s: not marked synthesized", concept.Name(), d)
			}
			if s.Concept.Name() != concept.Name() || s.Difficulty != d {
				t.Errorf("%s/%s: got %s/%s", concept.Name(), d, s.Concept.Name(), s.Difficulty)
			}
			if s.KeyInsight != concept.Insight() {
				t.Errorf("%s: key insight not taken from concept", concept.Name())
			}
			if len(s.VoteRecords) != 3 {
				t.Fatalf("%s/%s: %d records, want 3", concept.Name(), d, len(s.VoteRecords))
			}

			ids := map[int]bool{}
			for _, r := range s.VoteRecords {
				if err := r.Validate(); err != nil {
					t.Errorf("%s/%s: %v", concept.Name(), d, err)
				}
				if r.Total() == 0 {
					t.Errorf("%s/%s: item %d has no votes", concept.Name(), d, r.ID)
				}
				ids[r.ID] = true
			}
			if len(ids) != 3 {
				t.Errorf("%s/%s: item ids not unique: %v", concept.Name(), d, s.VoteRecords)
			}
		}
	}
}

func TestSynthesize_FreshIDs(t *testing.T) {
	c := newTestCatalog(5)
	first := c.Synthesize(SampleSize{}, Beginner)
	second := c.Synthesize(SampleSize{}, Beginner)

	if first.ID == second.ID {
		t.Errorf("synthesized sets share id %d", first.ID)
	}
	if first.ID <= maxCuratedID() {
		t.Errorf("synthesized id %d collides with curated range", first.ID)
	}
}

func TestSynthesize_MostlyDisagrees(t *testing.T) {
	c := newTestCatalog(99)
	for _, concept := range Concepts() {
		disagree := 0
		const rounds = 40
		for i := 0; i < rounds; i++ {
			s := c.Synthesize(concept, Intermediate)
			items, err := ranking.Rank(s.VoteRecords, wilson.Confidence95)
			if err != nil {
				t.Fatalf("%s: %v", concept.Name(), err)
			}
			if ranking.Disagrees(items) {
				disagree++
			}
		}
		if disagree < rounds*3/4 {
			t.Errorf("%s: only %d/%d synthesized sets teach anything", concept.Name(), disagree, rounds)
		}
	}
}

func TestSynthesize_DeterministicWithSeed(t *testing.T) {
	a := newTestCatalog(1234).Synthesize(HighVolume{}, Advanced)
	b := newTestCatalog(1234).Synthesize(HighVolume{}, Advanced)

	for i := range a.VoteRecords {
		if a.VoteRecords[i] != b.VoteRecords[i] {
			t.Fatalf("same seed produced %v and %v", a.VoteRecords, b.VoteRecords)
		}
	}
}

func TestPerfectScores_HasPerfectItems(t *testing.T) {
	c := newTestCatalog(8)
	s := c.Synthesize(PerfectScores{}, Beginner)
	perfect := 0
	for _, r := range s.VoteRecords {
		if r.Downvotes == 0 {
			perfect++
		}
	}
	if perfect < 2 {
		t.Errorf("perfect_scores set has %d flawless items, want at least 2: %v", perfect, s.VoteRecords)
	}
}

func TestDraftVotes(t *testing.T) {
	tests := []struct {
		d        draft
		up, down int
	}{
		{draft{volume: 10, ratio: 0.96}, 10, 0},
		{draft{volume: 10, ratio: 0.94}, 9, 1},
		{draft{volume: 200, ratio: 0.89}, 178, 22},
		{draft{volume: 5, ratio: 1.2}, 5, 0},
		{draft{volume: 5, ratio: -0.1}, 0, 5},
	}
	for _, tt := range tests {
		up, down := tt.d.votes()
		if up != tt.up || down != tt.down {
			t.Errorf("votes(%+v) = %d/%d, want %d/%d", tt.d, up, down, tt.up, tt.down)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" Advanced ")
	if err != nil || d != Advanced {
		t.Errorf("ParseDifficulty = %q, %v", d, err)
	}
	if _, err := ParseDifficulty("expert"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("err = %v, want ErrUnknownDifficulty", err)
	}
}

func TestParseConcept(t *testing.T) {
	c, err := ParseConcept("similar-ratios")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(SimilarRatios); !ok {
		t.Errorf("ParseConcept returned %T", c)
	}
	if _, err := ParseConcept("luck"); !errors.Is(err, ErrUnknownConcept) {
		t.Errorf("err = %v, want ErrUnknownConcept", err)
	}
}

func TestSynthConfig_Validate(t *testing.T) {
	if err := DefaultSynthConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg := DefaultSynthConfig()
	cfg.SimilarRatios.BaseRatio = Range{Min: 0.9, Max: 0.8}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for inverted ratio range")
	}

	cfg = DefaultSynthConfig()
	cfg.HighVolume.SmallVolume = IntRange{Min: 0, Max: 10}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero volume")
	}

	cfg = DefaultSynthConfig()
	cfg.MaxAttempts = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero attempts")
	}
}
