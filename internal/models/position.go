package models

// Position levels accepted at creation time.
const (
	LevelJunior    = "Junior"
	LevelMid       = "Mid"
	LevelSenior    = "Senior"
	LevelExecutive = "Executive"
)

// Position statuses.
const (
	StatusActive = "Active"
	StatusClosed = "Closed"
)

// JD choice markers recording how the description was produced.
const (
	JDChoiceCreate = "create"
	JDChoiceUpload = "upload"
)

// Risk and SLA labels applied to new requisitions.
const (
	RiskFlagNewOpening = "New Opening"
	RiskLevelNew       = "new"
	SLAOnTrack         = "On Track"
	SLALevelSuccess    = "success"
)

// JobDescription is the structured document attached to a position. It is
// replaced wholesale, never edited field by field.
type JobDescription struct {
	Purpose          string   `json:"purpose"`
	Education        []string `json:"education"`
	Experience       []string `json:"experience"`
	Responsibilities []string `json:"responsibilities"`
	Skills           []string `json:"skills"`
}

// PositionStats is a denormalized summary derived from the candidate list.
// It is recomputed on every candidate mutation and must never drift from it.
type PositionStats struct {
	Candidates int     `json:"candidates"`
	AvgScore   float64 `json:"avgScore"`
	SLA        string  `json:"sla"`
	RiskFlags  int     `json:"riskFlags"`
}

// Position represents one open job requisition and owns its candidate list.
// Candidates are scoped to the position and never shared across requisitions.
type Position struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Level       string          `json:"level"`
	Location    string          `json:"location"`
	Department  string          `json:"department"`
	Status      string          `json:"status"`
	JDChoice    string          `json:"jdChoice,omitempty"`
	JD          *JobDescription `json:"jd"`
	Stats       PositionStats   `json:"stats"`
	Candidates  int             `json:"candidates"`
	Shortlisted int             `json:"shortlisted"`
	RiskFlag    string          `json:"riskFlag,omitempty"`
	RiskLevel   string          `json:"riskLevel,omitempty"`
	SLA         string          `json:"sla"`
	SLALevel    string          `json:"slaLevel"`
	Updated     string          `json:"updated"`
	CandidateList []Candidate `json:"candidatesList"`
}

// RecomputeStats rebuilds the derived summary from the candidate list.
func (p *Position) RecomputeStats() {
	p.Candidates = len(p.CandidateList)
	p.Stats.Candidates = len(p.CandidateList)
	p.Stats.SLA = p.SLA

	if p.RiskFlag != "" {
		p.Stats.RiskFlags = 1
	} else {
		p.Stats.RiskFlags = 0
	}

	if len(p.CandidateList) == 0 {
		p.Stats.AvgScore = 0
		return
	}

	total := 0
	for _, c := range p.CandidateList {
		total += c.Scores.Composite
	}
	avg := float64(total) / float64(len(p.CandidateList)) / 10
	p.Stats.AvgScore = roundToTenth(avg)
}

// IsActive reports whether the requisition is still open.
func (p Position) IsActive() bool {
	return p.Status == StatusActive
}
