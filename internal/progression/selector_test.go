package progression

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/feedrank/feedrank/internal/catalog"
)

// fixedRand returns the same draws every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) IntN(int) int     { return r.n }
func (r fixedRand) Float64() float64 { return r.f }

// fakeSource records what was requested.
type fakeSource struct {
	curated      catalog.ExampleSet
	pickedAt     catalog.Difficulty
	synthCalls   int
	synthConcept catalog.Concept
}

func (f *fakeSource) PickCurated(d catalog.Difficulty) catalog.ExampleSet {
	f.pickedAt = d
	s := f.curated
	s.Difficulty = d
	return s
}

func (f *fakeSource) Synthesize(c catalog.Concept, d catalog.Difficulty) catalog.ExampleSet {
	f.synthCalls++
	f.synthConcept = c
	return catalog.ExampleSet{ID: 500, Concept: c, Difficulty: d, Synthesized: true}
}

func TestNextDifficulty_Schedule(t *testing.T) {
	tests := []struct {
		name        string
		rounds      int
		consecutive int
		draw        float64
		want        catalog.Difficulty
	}{
		{"first round", 0, 0, 0.0, catalog.Beginner},
		{"early rounds", 1, 0, 0.0, catalog.Beginner},
		{"early rounds upper edge", 2, 1, 0.0, catalog.Beginner},
		{"fast track early", 2, 2, 0.99, catalog.Intermediate},
		{"fast track before advanced threshold", 4, 3, 0.99, catalog.Intermediate},
		{"fast track advanced", 5, 2, 0.99, catalog.Advanced},
		{"fast track late", 12, 4, 0.0, catalog.Advanced},
		{"mixed low draw", 3, 0, 0.2, catalog.Intermediate},
		{"mixed high draw", 6, 1, 0.7, catalog.Beginner},
		{"mixed boundary draw", 4, 0, 0.5, catalog.Beginner},
		{"late low draw", 7, 0, 0.1, catalog.Advanced},
		{"late high draw", 20, 1, 0.3, catalog.Intermediate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(DefaultPolicy(), &fakeSource{}, fixedRand{f: tt.draw})
			if got := s.NextDifficulty(tt.rounds, tt.consecutive); got != tt.want {
				t.Errorf("NextDifficulty(%d, %d) = %s, want %s", tt.rounds, tt.consecutive, got, tt.want)
			}
		})
	}
}

func TestNextDifficulty_Distribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 42))
	s := NewSelector(DefaultPolicy(), &fakeSource{}, rng)

	const n = 20000
	mixed := map[catalog.Difficulty]int{}
	late := map[catalog.Difficulty]int{}
	for i := 0; i < n; i++ {
		mixed[s.NextDifficulty(4, 0)]++
		late[s.NextDifficulty(9, 0)]++
	}

	if mixed[catalog.Advanced] != 0 {
		t.Errorf("mixed phase produced %d advanced rounds", mixed[catalog.Advanced])
	}
	if frac := float64(mixed[catalog.Intermediate]) / n; math.Abs(frac-0.5) > 0.02 {
		t.Errorf("mixed intermediate fraction = %.3f, want about 0.5", frac)
	}

	if late[catalog.Beginner] != 0 {
		t.Errorf("late phase produced %d beginner rounds", late[catalog.Beginner])
	}
	if frac := float64(late[catalog.Advanced]) / n; math.Abs(frac-0.3) > 0.02 {
		t.Errorf("late advanced fraction = %.3f, want about 0.3", frac)
	}
}

func TestNextExample_ServesCurated(t *testing.T) {
	src := &fakeSource{curated: catalog.ExampleSet{ID: 1, Concept: catalog.SampleSize{}}}
	s := NewSelector(DefaultPolicy(), src, fixedRand{f: 0.9})

	got := s.NextExample(0, 0, nil)
	if got.ID != 1 || got.Synthesized {
		t.Errorf("got set %d (synthesized=%v), want curated set 1", got.ID, got.Synthesized)
	}
	if src.pickedAt != catalog.Beginner {
		t.Errorf("picked at %s, want beginner", src.pickedAt)
	}
	if src.synthCalls != 0 {
		t.Errorf("synthesized %d times, want 0", src.synthCalls)
	}
}

func TestNextExample_SynthesizesByRate(t *testing.T) {
	src := &fakeSource{curated: catalog.ExampleSet{ID: 1, Concept: catalog.SampleSize{}}}
	s := NewSelector(DefaultPolicy(), src, fixedRand{f: 0.1})

	got := s.NextExample(10, 0, nil)
	if !got.Synthesized {
		t.Fatal("expected a synthesized set")
	}
	if got.Difficulty != catalog.Advanced {
		t.Errorf("difficulty = %s, want advanced", got.Difficulty)
	}
}

func TestNextExample_TargetsUnmasteredConcept(t *testing.T) {
	src := &fakeSource{curated: catalog.ExampleSet{ID: 1, Concept: catalog.SampleSize{}}}
	// Rotation starts at the first concept; the draw is low enough to synthesize.
	s := NewSelector(DefaultPolicy(), src, fixedRand{f: 0.1, n: 0})

	mastered := map[string]bool{
		catalog.SampleSize{}.Name():    true,
		catalog.PerfectScores{}.Name(): true,
	}
	got := s.NextExample(1, 1, mastered)
	if got.Concept.Name() != (catalog.SimilarRatios{}).Name() {
		t.Errorf("synthesized concept = %s, want similar_ratios", got.Concept.Name())
	}
}

func TestNextExample_RotationStartIsRandom(t *testing.T) {
	src := &fakeSource{curated: catalog.ExampleSet{ID: 1, Concept: catalog.SampleSize{}}}
	s := NewSelector(DefaultPolicy(), src, fixedRand{f: 0.1, n: 3})

	got := s.NextExample(1, 0, nil)
	if got.Concept.Name() != (catalog.HighVolume{}).Name() {
		t.Errorf("synthesized concept = %s, want high_volume", got.Concept.Name())
	}
}

func TestNextExample_AvoidsMasteredCuratedConcept(t *testing.T) {
	src := &fakeSource{curated: catalog.ExampleSet{ID: 1, Concept: catalog.SampleSize{}}}
	// High draw would normally serve the curated set.
	s := NewSelector(DefaultPolicy(), src, fixedRand{f: 0.9, n: 0})

	got := s.NextExample(1, 0, map[string]bool{"sample_size": true})
	if !got.Synthesized {
		t.Fatal("expected synthesis when the curated concept is already mastered")
	}
	if got.Concept.Name() == "sample_size" {
		t.Error("synthesized a mastered concept")
	}
}

func TestNextExample_AllMasteredKeepsCurated(t *testing.T) {
	src := &fakeSource{curated: catalog.ExampleSet{ID: 1, Concept: catalog.SampleSize{}}}
	s := NewSelector(DefaultPolicy(), src, fixedRand{f: 0.9})

	mastered := map[string]bool{}
	for _, c := range catalog.Concepts() {
		mastered[c.Name()] = true
	}
	got := s.NextExample(8, 0, mastered)
	if got.Synthesized {
		t.Error("expected the curated set once every concept is mastered")
	}
}

func TestNextExample_WithRealCatalog(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	cat := catalog.New(rng, catalog.DefaultSynthConfig())
	s := NewSelector(DefaultPolicy(), cat, rng)

	for rounds := 0; rounds < 30; rounds++ {
		set := s.NextExample(rounds, 0, nil)
		if len(set.VoteRecords) != 3 {
			t.Fatalf("round %d: %d records", rounds, len(set.VoteRecords))
		}
		if set.KeyInsight == "" {
			t.Fatalf("round %d: set %d has no key insight", rounds, set.ID)
		}
		if rounds == 0 && set.Difficulty != catalog.Beginner {
			t.Errorf("first round difficulty = %s, want beginner", set.Difficulty)
		}
	}
}

func TestPolicy_Validate(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}

	p := DefaultPolicy()
	p.AdvancedRate = 1.5
	if err := p.Validate(); err == nil {
		t.Error("expected error for rate above 1")
	}

	p = DefaultPolicy()
	p.MixedUntil = 1
	if err := p.Validate(); err == nil {
		t.Error("expected error for mixed_until below beginner_until")
	}

	for _, at := range []int{0, -3} {
		p = DefaultPolicy()
		p.FastTrackAdvancedAt = at
		if err := p.Validate(); err == nil {
			t.Errorf("expected error for fast_track_advanced_at = %d", at)
		}
	}
}
