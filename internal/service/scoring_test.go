package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
)

// fixedSource replays a canned sequence of floats, repeating the last value.
type fixedSource struct {
	values []float64
	index  int
}

func (s *fixedSource) NextFloat() float64 {
	if s.index >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.index]
	s.index++
	return v
}

func TestGenerateScoresDeterministicWithFixedSeed(t *testing.T) {
	// resume = round1(6.0 + (1/3.5)*3.5) = 7.0, psych = round1(6.0 + (2/3)*3.0) = 8.0
	gen := NewScoreGenerator(&fixedSource{values: []float64{1.0 / 3.5, 2.0 / 3.0}})

	scores, verdict := gen.GenerateScores()
	require.Equal(t, 7.0, scores.Resume)
	require.Equal(t, 8.0, scores.Psych)
	require.Equal(t, 75, scores.Composite)
	require.Equal(t, models.VerdictConditional, verdict)
}

func TestGenerateScoresStaysWithinBands(t *testing.T) {
	for _, u := range []float64{0, 0.25, 0.5, 0.75, 0.999999} {
		gen := NewScoreGenerator(&fixedSource{values: []float64{u, u}})
		scores, verdict := gen.GenerateScores()

		require.GreaterOrEqual(t, scores.Resume, 6.0)
		require.LessOrEqual(t, scores.Resume, 9.5)
		require.GreaterOrEqual(t, scores.Psych, 6.0)
		require.LessOrEqual(t, scores.Psych, 9.0)
		require.Equal(t, models.CompositeScore(scores.Resume, scores.Psych), scores.Composite)
		require.Equal(t, models.VerdictFor(scores.Composite), verdict)
	}
}

func TestVerdictBandsAtBoundaries(t *testing.T) {
	cases := []struct {
		resume, psych float64
		composite     int
		verdict       string
	}{
		{6.9, 6.9, 69, models.VerdictNoGo},
		{7.0, 7.0, 70, models.VerdictConditional},
		{8.4, 8.4, 84, models.VerdictConditional},
		{8.5, 8.5, 85, models.VerdictGo},
	}

	for _, tc := range cases {
		require.Equal(t, tc.composite, models.CompositeScore(tc.resume, tc.psych))
		require.Equal(t, tc.verdict, models.VerdictFor(tc.composite))
	}
}

func TestRequisitionIDFormat(t *testing.T) {
	gen := NewScoreGenerator(&fixedSource{values: []float64{0}})
	gen.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	require.Equal(t, "REQ-2025-1000", gen.NewRequisitionID())

	gen = NewScoreGenerator(&fixedSource{values: []float64{0.999999}})
	require.Regexp(t, regexp.MustCompile(`^REQ-\d{4}-\d{4}$`), gen.NewRequisitionID())
}

func TestCandidateIDFormat(t *testing.T) {
	gen := NewScoreGenerator(&fixedSource{values: []float64{0}})
	require.Equal(t, "cand-100", gen.NewCandidateID())

	gen = NewScoreGenerator(&fixedSource{values: []float64{0.999999}})
	require.Regexp(t, regexp.MustCompile(`^cand-\d{3}$`), gen.NewCandidateID())
}

func TestDefaultSourceProducesUnitIntervalValues(t *testing.T) {
	source := NewRandomSource()
	for i := 0; i < 100; i++ {
		v := source.NextFloat()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}
