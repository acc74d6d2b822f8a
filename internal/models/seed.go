package models

var seedJD = JobDescription{
	Purpose: "Lead the development of scalable backend systems and distributed architectures. " +
		"Collaborate with cross-functional teams to define technical strategy and deliver " +
		"high-impact solutions that power our core platform.",
	Education: []string{
		"Bachelor's degree in Computer Science, Engineering, or related field",
		"Master's degree preferred but not required",
	},
	Experience: []string{
		"6+ years of software engineering experience",
		"Strong background in cloud platforms (AWS, GCP, or Azure)",
		"Experience leading technical teams of 3+ engineers",
		"Track record of delivering production systems at scale",
	},
	Responsibilities: []string{
		"Design and implement microservices architecture",
		"Mentor junior engineers and conduct code reviews",
		"Drive technical decisions and architecture proposals",
		"Collaborate with Product and Design on feature specs",
		"Ensure system reliability with monitoring and alerting",
		"Contribute to hiring and team growth initiatives",
	},
	Skills: []string{
		"Kubernetes", "Machine Learning", "Event-driven Architecture", "GraphQL",
		"CI/CD Pipelines", "System Design", "TypeScript", "PostgreSQL",
	},
}

func seedJDWithPurpose(purpose string) *JobDescription {
	jd := seedJD
	jd.Purpose = purpose
	return &jd
}

var seedEngineeringCandidates = []Candidate{
	{ID: "cand-101", Name: "James Morrison", Role: "Senior Dev @ TechCorp", Email: "james@techcorp.com", Stage: StageInterviewL2, Scores: CandidateScores{Resume: 8.2, Psych: 7.8, Composite: 80}, Verdict: VerdictGo, AddedDate: "2024-12-10"},
	{ID: "cand-102", Name: "Priya Sharma", Role: "Staff Engineer @ InnovateTech", Email: "priya@innovatetech.com", Stage: StageInterviewL2, Scores: CandidateScores{Resume: 9.1, Psych: 8.5, Composite: 88}, Verdict: VerdictGo, AddedDate: "2024-12-08"},
	{ID: "cand-103", Name: "Alex Chen", Role: "Backend Lead @ DataFlow", Email: "alex@dataflow.io", Stage: StageScreened, Scores: CandidateScores{Resume: 7.4, Psych: 7.1, Composite: 73}, Verdict: VerdictConditional, AddedDate: "2024-12-12"},
	{ID: "cand-104", Name: "Sarah Williams", Role: "SDE III @ CloudBase", Email: "sarah@cloudbase.com", Stage: StageSourced, Scores: CandidateScores{Resume: 6.8, Psych: 6.5, Composite: 67}, Verdict: VerdictNoGo, AddedDate: "2024-12-14"},
	{ID: "cand-105", Name: "Rahul Patel", Role: "Principal Eng @ ScaleUp", Email: "rahul@scaleup.io", Stage: StageInterviewL1, Scores: CandidateScores{Resume: 8.7, Psych: 8.0, Composite: 84}, Verdict: VerdictConditional, AddedDate: "2024-12-11"},
}

// SeedPositions returns the built-in example requisitions the store falls
// back to when nothing usable is persisted. Callers receive a fresh copy and
// may mutate it freely.
func SeedPositions() []Position {
	positions := []Position{
		{
			ID:            "REQ-2024-0042",
			Title:         "Senior Software Engineer",
			Level:         LevelSenior,
			Location:      "San Francisco, CA",
			Department:    "Engineering",
			Status:        StatusActive,
			JDChoice:      JDChoiceCreate,
			JD:            seedJDWithPurpose(seedJD.Purpose),
			Stats:         PositionStats{Candidates: 24, AvgScore: 7.9, SLA: "At Risk", RiskFlags: 1},
			Candidates:    24,
			Shortlisted:   6,
			RiskFlag:      "Long time-to-fill",
			RiskLevel:     "high",
			SLA:           "At Risk",
			SLALevel:      "warning",
			Updated:       "2024-12-15",
			CandidateList: append([]Candidate(nil), seedEngineeringCandidates...),
		},
		{
			ID:         "REQ-2024-0039",
			Title:      "Product Manager",
			Level:      LevelSenior,
			Location:   "New York, NY",
			Department: "Product",
			Status:     StatusActive,
			JDChoice:   JDChoiceCreate,
			JD: seedJDWithPurpose("Drive product strategy and roadmap for key business verticals. " +
				"Work with engineering and design to ship features that delight users and move core metrics."),
			Stats:       PositionStats{Candidates: 18, AvgScore: 8.1, SLA: SLAOnTrack, RiskFlags: 0},
			Candidates:  18,
			Shortlisted: 4,
			SLA:         SLAOnTrack,
			SLALevel:    SLALevelSuccess,
			Updated:     "2024-12-14",
			CandidateList: []Candidate{
				{ID: "cand-201", Name: "Emily Zhang", Role: "Sr PM @ MetaVerse", Email: "emily@metaverse.com", Stage: StageInterviewL1, Scores: CandidateScores{Resume: 8.5, Psych: 7.9, Composite: 82}, Verdict: VerdictGo, AddedDate: "2024-12-09"},
				{ID: "cand-202", Name: "David Kim", Role: "Product Lead @ Stripe", Email: "david@stripe.com", Stage: StageScreened, Scores: CandidateScores{Resume: 7.8, Psych: 7.2, Composite: 75}, Verdict: VerdictConditional, AddedDate: "2024-12-11"},
			},
		},
		{
			ID:         "REQ-2024-0045",
			Title:      "UX Designer",
			Level:      LevelMid,
			Location:   "Remote",
			Department: "Design",
			Status:     StatusActive,
			JDChoice:   JDChoiceUpload,
			JD: seedJDWithPurpose("Create intuitive, accessible, and beautiful user experiences across " +
				"web and mobile platforms. Conduct research, prototype solutions, and collaborate closely with engineering."),
			Stats:         PositionStats{Candidates: 8, AvgScore: 7.2, SLA: SLAOnTrack, RiskFlags: 1},
			Candidates:    8,
			Shortlisted:   3,
			RiskFlag:      "Low pipeline",
			RiskLevel:     "medium",
			SLA:           SLAOnTrack,
			SLALevel:      SLALevelSuccess,
			Updated:       "2024-12-13",
			CandidateList: []Candidate{},
		},
	}
	return positions
}
