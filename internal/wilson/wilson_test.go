package wilson

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerBound_ZeroVotes(t *testing.T) {
	for _, c := range []Confidence{Confidence95, Confidence90} {
		lb, err := LowerBound(0, 0, c)
		require.NoError(t, err)
		assert.Equal(t, 0.0, lb, "confidence %s", c)
	}
}

func TestLowerBound_KnownValues(t *testing.T) {
	tests := []struct {
		up, down uint64
		want     float64
	}{
		{19, 1, 0.763864},
		{178, 22, 0.839072},
		{5, 0, 0.565509},
		{15, 0, 0.796111},
		{99, 1, 0.945512},
		{2, 0, 0.342372},
	}

	for _, tt := range tests {
		got, err := LowerBound(tt.up, tt.down, Confidence95)
		require.NoError(t, err)
		if math.Abs(got-tt.want) > 1e-5 {
			t.Errorf("LowerBound(%d, %d) = %.6f, want %.6f", tt.up, tt.down, got, tt.want)
		}
	}
}

func TestLowerBound_BoundedByRatio(t *testing.T) {
	for up := uint64(0); up <= 40; up++ {
		for down := uint64(0); down <= 40; down++ {
			if up+down == 0 {
				continue
			}
			lb, err := LowerBound(up, down, Confidence95)
			require.NoError(t, err)
			ratio := Ratio(up, down)
			if lb < 0 || lb > ratio {
				t.Fatalf("LowerBound(%d, %d) = %f, want within [0, %f]", up, down, lb, ratio)
			}
		}
	}
}

func TestLowerBound_MonotonicInVolume(t *testing.T) {
	pairs := [][2]uint64{{1, 1}, {4, 1}, {19, 1}, {1, 0}, {1, 3}, {9, 1}}
	for _, p := range pairs {
		prev := -1.0
		for k := uint64(1); k <= 100; k++ {
			lb := MustLowerBound(p[0]*k, p[1]*k)
			if lb <= prev {
				t.Fatalf("ratio %d:%d, scale %d: %f not above %f", p[0], p[1], k, lb, prev)
			}
			prev = lb
		}
		if ratio := Ratio(p[0], p[1]); prev >= ratio {
			t.Errorf("ratio %d:%d: bound %f should stay below %f", p[0], p[1], prev, ratio)
		}
	}
}

func TestLowerBound_SampleSizeBeatsPercentage(t *testing.T) {
	small := MustLowerBound(19, 1)
	large := MustLowerBound(178, 22)
	assert.Less(t, small, large, "95 percent of 20 must rank below 89 percent of 200")
}

func TestLowerBound_PerfectScoresDifferBySampleSize(t *testing.T) {
	assert.Less(t, MustLowerBound(5, 0), MustLowerBound(15, 0))
}

func TestLowerBound_NinetyPercentIsLessPessimistic(t *testing.T) {
	lb95, err := LowerBound(19, 1, Confidence95)
	require.NoError(t, err)
	lb90, err := LowerBound(19, 1, Confidence90)
	require.NoError(t, err)
	assert.Greater(t, lb90, lb95)
}

func TestLowerBound_UnsupportedConfidence(t *testing.T) {
	_, err := LowerBound(10, 2, Confidence(0.99))
	if !errors.Is(err, ErrUnsupportedConfidence) {
		t.Fatalf("err = %v, want ErrUnsupportedConfidence", err)
	}
}

func TestParseConfidence(t *testing.T) {
	c, err := ParseConfidence(0.95)
	require.NoError(t, err)
	assert.Equal(t, Confidence95, c)

	c, err = ParseConfidence(0.90)
	require.NoError(t, err)
	assert.Equal(t, Confidence90, c)

	_, err = ParseConfidence(0.8)
	assert.ErrorIs(t, err, ErrUnsupportedConfidence)
}

func TestInterval(t *testing.T) {
	b, err := Interval(178, 22, Confidence95)
	require.NoError(t, err)

	assert.Equal(t, uint64(200), b.SampleSize)
	assert.InDelta(t, 0.89, b.PointEstimate, 1e-12)
	assert.InDelta(t, MustLowerBound(178, 22), b.LowerBound, 1e-12)
	assert.InDelta(t, 0.926228, b.UpperBound, 1e-5)
	assert.InDelta(t, b.UpperBound-b.LowerBound, b.ConfidenceRange, 1e-12)
	assert.Less(t, b.LowerBound, b.PointEstimate)
	assert.Greater(t, b.UpperBound, b.PointEstimate)
}

func TestInterval_Empty(t *testing.T) {
	b, err := Interval(0, 0, Confidence90)
	require.NoError(t, err)
	assert.Equal(t, Bounds{}, b)
}

func TestInterval_AllDownvotesStaysInRange(t *testing.T) {
	b, err := Interval(0, 7, Confidence95)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.LowerBound)
	assert.Greater(t, b.UpperBound, 0.0)
}

func TestInterval_ContainsPointEstimateAtEdges(t *testing.T) {
	for _, c := range []Confidence{Confidence95, Confidence90} {
		for n := uint64(1); n <= 200; n++ {
			none, err := Interval(0, n, c)
			require.NoError(t, err)
			if none.LowerBound != 0 {
				t.Fatalf("%s: Interval(0, %d).LowerBound = %g, want exactly 0", c, n, none.LowerBound)
			}

			all, err := Interval(n, 0, c)
			require.NoError(t, err)
			if all.UpperBound != 1 {
				t.Fatalf("%s: Interval(%d, 0).UpperBound = %g, want exactly 1", c, n, all.UpperBound)
			}
			if all.LowerBound > all.PointEstimate {
				t.Fatalf("%s: Interval(%d, 0).LowerBound = %g above %g", c, n, all.LowerBound, all.PointEstimate)
			}
		}
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(0, 0))
	assert.Equal(t, 1.0, Ratio(3, 0))
	assert.InDelta(t, 0.95, Ratio(19, 1), 1e-12)
}
