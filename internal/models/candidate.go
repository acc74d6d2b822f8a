package models

import "math"

// Pipeline stages in order. Rejected exists as a display label only; no
// transition in the pipeline produces it.
const (
	StageSourced     = "Sourced"
	StageScreened    = "Screened"
	StageInterviewL1 = "Interview L1"
	StageInterviewL2 = "Interview L2"
	StageOffer       = "Offer"
	StageRejected    = "Rejected"
)

// Stages lists the pipeline sequence a candidate moves through.
var Stages = []string{StageSourced, StageScreened, StageInterviewL1, StageInterviewL2, StageOffer}

// Verdict values derived from the composite score.
const (
	VerdictGo          = "Go"
	VerdictConditional = "Conditional"
	VerdictNoGo        = "No-Go"
)

// CandidateScores carries the one-time assessment results. Resume and psych
// are on a 0-10 scale with one decimal, composite on 0-100.
type CandidateScores struct {
	Resume    float64 `json:"resume"`
	Psych     float64 `json:"psych"`
	Composite int     `json:"composite"`
}

// Candidate represents one applicant attached to exactly one position.
// Scores and verdict are assigned at creation and never recomputed.
type Candidate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Email     string          `json:"email"`
	Stage     string          `json:"stage"`
	Scores    CandidateScores `json:"scores"`
	Verdict   string          `json:"verdict"`
	AddedDate string          `json:"addedDate"`
}

// CompositeScore blends the two sub-scores into the 0-100 composite.
func CompositeScore(resume, psych float64) int {
	return int(math.Round(((resume + psych) / 2) * 10))
}

// VerdictFor maps a composite score onto the hiring recommendation.
func VerdictFor(composite int) string {
	switch {
	case composite >= 85:
		return VerdictGo
	case composite >= 70:
		return VerdictConditional
	default:
		return VerdictNoGo
	}
}

// ValidStage reports whether stage is one of the pipeline stages or the
// out-of-band rejected label.
func ValidStage(stage string) bool {
	if stage == StageRejected {
		return true
	}
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
