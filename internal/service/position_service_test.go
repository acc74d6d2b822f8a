package service

import (
	"context"
	"regexp"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/repository"
)

func newTestPositionService(t *testing.T, source RandomSource) (PositionService, repository.PositionRepository) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := repository.NewPositionRepository(client, "", zerolog.Nop())

	svc, err := NewPositionService(context.Background(), repo, NewScoreGenerator(source), zerolog.Nop())
	require.NoError(t, err)
	return svc, repo
}

func TestListReturnsSeedNewestFirst(t *testing.T) {
	svc, _ := newTestPositionService(t, nil)

	positions := svc.List(context.Background(), "")
	require.Len(t, positions, 3)
	// Seed order reversed: the last stored requisition comes first.
	require.Equal(t, "REQ-2024-0045", positions[0].ID)
	require.Equal(t, "REQ-2024-0042", positions[2].ID)
}

func TestListFiltersByStatus(t *testing.T) {
	svc, _ := newTestPositionService(t, nil)
	ctx := context.Background()

	_, err := svc.ToggleStatus(ctx, "REQ-2024-0042")
	require.NoError(t, err)

	active := svc.List(ctx, models.StatusActive)
	require.Len(t, active, 2)
	closed := svc.List(ctx, models.StatusClosed)
	require.Len(t, closed, 1)
	require.Equal(t, "REQ-2024-0042", closed[0].ID)
}

func TestCreatePositionDefaults(t *testing.T) {
	svc, _ := newTestPositionService(t, nil)

	position, err := svc.Create(context.Background(), PositionInput{
		Title:      "Data Scientist",
		Department: "Analytics",
		Location:   "Remote",
		Level:      models.LevelMid,
	})
	require.NoError(t, err)

	require.Regexp(t, regexp.MustCompile(`^REQ-\d{4}-\d{4}$`), position.ID)
	require.Equal(t, models.StatusActive, position.Status)
	require.Equal(t, 0, position.Stats.Candidates)
	require.Equal(t, models.RiskFlagNewOpening, position.RiskFlag)
	require.Equal(t, models.RiskLevelNew, position.RiskLevel)
	require.Equal(t, models.SLAOnTrack, position.SLA)
	require.Nil(t, position.JD)
	require.Empty(t, position.JDChoice)

	// Newest first.
	positions := svc.List(context.Background(), "")
	require.Len(t, positions, 4)
	require.Equal(t, position.ID, positions[0].ID)
}

func TestCreateRejectsBlankTitleWithoutMutation(t *testing.T) {
	svc, _ := newTestPositionService(t, nil)

	_, err := svc.Create(context.Background(), PositionInput{Title: "   "})
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Len(t, svc.List(context.Background(), ""), 3)
}

func TestAddCandidateKeepsStatsConsistent(t *testing.T) {
	source := &fixedSource{values: []float64{0.5}}
	svc, _ := newTestPositionService(t, source)
	ctx := context.Background()

	position, err := svc.Create(ctx, PositionInput{Title: "Data Scientist", Department: "Analytics", Location: "Remote", Level: models.LevelMid})
	require.NoError(t, err)

	updated, candidate, err := svc.AddCandidate(ctx, position.ID, CandidateInput{
		Name:  "Morgan Reyes",
		Role:  "ML Engineer @ LabCo",
		Email: "morgan@labco.io",
	})
	require.NoError(t, err)

	require.Regexp(t, regexp.MustCompile(`^cand-\d{3}$`), candidate.ID)
	require.Equal(t, models.StageSourced, candidate.Stage)
	require.Equal(t, 1, updated.Stats.Candidates)
	require.Len(t, updated.CandidateList, 1)

	for i := 0; i < 4; i++ {
		updated, _, err = svc.AddCandidate(ctx, position.ID, CandidateInput{Name: "Extra Candidate"})
		require.NoError(t, err)
		require.Equal(t, len(updated.CandidateList), updated.Stats.Candidates)
	}
	require.Equal(t, 5, updated.Stats.Candidates)
}

func TestAddCandidateFixedSeedScenario(t *testing.T) {
	// Create consumes one float for the requisition id, then the candidate
	// pass: resume, psych, candidate id.
	source := &fixedSource{values: []float64{0.5, 1.0 / 3.5, 2.0 / 3.0, 0.5}}
	svc, _ := newTestPositionService(t, source)
	ctx := context.Background()

	position, err := svc.Create(ctx, PositionInput{Title: "Data Scientist", Department: "Analytics", Location: "Remote", Level: models.LevelMid})
	require.NoError(t, err)

	_, candidate, err := svc.AddCandidate(ctx, position.ID, CandidateInput{Name: "Morgan Reyes"})
	require.NoError(t, err)
	require.Equal(t, 7.0, candidate.Scores.Resume)
	require.Equal(t, 8.0, candidate.Scores.Psych)
	require.Equal(t, 75, candidate.Scores.Composite)
	require.Equal(t, models.VerdictConditional, candidate.Verdict)
}

func TestAddCandidateUnknownPositionIsNotFound(t *testing.T) {
	svc, _ := newTestPositionService(t, nil)

	_, _, err := svc.AddCandidate(context.Background(), "REQ-0000-0000", CandidateInput{Name: "Ghost"})
	require.ErrorIs(t, err, ErrPositionNotFound)
}

func TestAddCandidateRejectsUnknownStage(t *testing.T) {
	svc, _ := newTestPositionService(t, nil)

	_, _, err := svc.AddCandidate(context.Background(), "REQ-2024-0042", CandidateInput{Name: "X", Stage: "Hired"})
	require.ErrorIs(t, err, ErrInvalidStage)
}

func TestToggleStatusFlipsAndPersists(t *testing.T) {
	svc, repo := newTestPositionService(t, nil)
	ctx := context.Background()

	position, err := svc.ToggleStatus(ctx, "REQ-2024-0039")
	require.NoError(t, err)
	require.Equal(t, models.StatusClosed, position.Status)

	position, err = svc.ToggleStatus(ctx, "REQ-2024-0039")
	require.NoError(t, err)
	require.Equal(t, models.StatusActive, position.Status)

	_, err = svc.ToggleStatus(ctx, "REQ-0000-0000")
	require.ErrorIs(t, err, ErrPositionNotFound)

	// The whole collection was written through; a fresh load sees it.
	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 3)
}

func TestAttachJobDescription(t *testing.T) {
	svc, repo := newTestPositionService(t, nil)
	ctx := context.Background()

	jd := models.JobDescription{
		Purpose:          "Ship the data platform.",
		Education:        []string{"BSc"},
		Experience:       []string{"5 years"},
		Responsibilities: []string{"Own pipelines"},
		Skills:           []string{"Go"},
	}

	position, err := svc.AttachJobDescription(ctx, "REQ-2024-0045", jd, models.JDChoiceCreate)
	require.NoError(t, err)
	require.NotNil(t, position.JD)
	require.Equal(t, "Ship the data platform.", position.JD.Purpose)
	require.Equal(t, models.JDChoiceCreate, position.JDChoice)

	_, err = svc.AttachJobDescription(ctx, "REQ-0000-0000", jd, models.JDChoiceCreate)
	require.ErrorIs(t, err, ErrPositionNotFound)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	for _, p := range stored {
		if p.ID == "REQ-2024-0045" {
			require.Equal(t, "Ship the data platform.", p.JD.Purpose)
		}
	}
}

func TestRecordJDChoiceWithoutDocument(t *testing.T) {
	svc, _ := newTestPositionService(t, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, PositionInput{Title: "Recruiter"})
	require.NoError(t, err)

	position, err := svc.RecordJDChoice(ctx, created.ID, models.JDChoiceUpload)
	require.NoError(t, err)
	require.Equal(t, models.JDChoiceUpload, position.JDChoice)
	// Choice recorded first, document filled in later: both halves can exist alone.
	require.Nil(t, position.JD)
}

func TestStateSurvivesServiceRestart(t *testing.T) {
	svc, repo := newTestPositionService(t, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, PositionInput{Title: "Platform Engineer", Department: "Infra"})
	require.NoError(t, err)

	reloaded, err := NewPositionService(ctx, repo, NewScoreGenerator(nil), zerolog.Nop())
	require.NoError(t, err)

	found, err := reloaded.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Platform Engineer", found.Title)
}
