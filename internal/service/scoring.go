package service

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
)

// RandomSource abstracts the entropy behind score and id generation so tests
// can supply a deterministic sequence.
type RandomSource interface {
	NextFloat() float64
}

type mathRandSource struct {
	rng *rand.Rand
}

func (s mathRandSource) NextFloat() float64 {
	return s.rng.Float64()
}

// NewRandomSource returns a time-seeded source backed by math/rand.
func NewRandomSource() RandomSource {
	return mathRandSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ScoreGenerator simulates the one-time AI assessment pass and mints the
// human-readable requisition and candidate ids. Ids are not checked for
// collisions, matching the demo's accepted collision odds.
type ScoreGenerator struct {
	source RandomSource
	now    func() time.Time
}

// NewScoreGenerator constructs a generator. A nil source falls back to a
// time-seeded one.
func NewScoreGenerator(source RandomSource) *ScoreGenerator {
	if source == nil {
		source = NewRandomSource()
	}
	return &ScoreGenerator{source: source, now: time.Now}
}

// GenerateScores produces resume/psych sub-scores in their fixed bands, the
// blended composite, and the verdict derived from it.
func (g *ScoreGenerator) GenerateScores() (models.CandidateScores, string) {
	resume := roundOneDecimal(6.0 + g.source.NextFloat()*3.5)
	psych := roundOneDecimal(6.0 + g.source.NextFloat()*3.0)
	composite := models.CompositeScore(resume, psych)

	return models.CandidateScores{
		Resume:    resume,
		Psych:     psych,
		Composite: composite,
	}, models.VerdictFor(composite)
}

// NewRequisitionID mints an id of the form REQ-<year>-<1000..9999>.
func (g *ScoreGenerator) NewRequisitionID() string {
	num := 1000 + int(g.source.NextFloat()*9000)
	return fmt.Sprintf("REQ-%d-%04d", g.now().Year(), num)
}

// NewCandidateID mints an id of the form cand-<100..999>.
func (g *ScoreGenerator) NewCandidateID() string {
	return fmt.Sprintf("cand-%d", 100+int(g.source.NextFloat()*900))
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
