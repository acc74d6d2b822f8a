package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/observability"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/repository"
)

// ErrPositionNotFound is returned when a position id does not resolve. No
// mutation takes place on the miss.
var ErrPositionNotFound = errors.New("position not found")

// ErrInvalidStage is returned when a candidate stage is outside the pipeline.
var ErrInvalidStage = errors.New("invalid pipeline stage")

// PositionInput carries the fields needed to open a requisition.
type PositionInput struct {
	Title      string
	Department string
	Location   string
	Level      string
}

// CandidateInput carries the caller-supplied candidate fields; scores and ids
// are assigned by the store.
type CandidateInput struct {
	Name  string
	Role  string
	Email string
	Stage string
}

// PositionService owns the requisition collection. All mutation funnels
// through one instance against the in-memory snapshot, and every mutation is
// followed by a wholesale write-through of the collection.
type PositionService interface {
	List(ctx context.Context, status string) []models.Position
	Get(ctx context.Context, id string) (models.Position, error)
	Create(ctx context.Context, input PositionInput) (models.Position, error)
	AttachJobDescription(ctx context.Context, id string, jd models.JobDescription, choice string) (models.Position, error)
	RecordJDChoice(ctx context.Context, id string, choice string) (models.Position, error)
	ToggleStatus(ctx context.Context, id string) (models.Position, error)
	AddCandidate(ctx context.Context, id string, input CandidateInput) (models.Position, models.Candidate, error)
}

type positionService struct {
	mu        sync.Mutex
	positions []models.Position

	repo   repository.PositionRepository
	scores *ScoreGenerator
	now    func() time.Time
	logger zerolog.Logger
}

// NewPositionService constructs the store, loading the persisted collection
// (or the seed set) up front.
func NewPositionService(ctx context.Context, repo repository.PositionRepository, scores *ScoreGenerator, logger zerolog.Logger) (PositionService, error) {
	positions, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if scores == nil {
		scores = NewScoreGenerator(nil)
	}

	return &positionService{
		positions: positions,
		repo:      repo,
		scores:    scores,
		now:       time.Now,
		logger:    logger.With().Str("component", "position_service").Logger(),
	}, nil
}

// List returns positions newest first, optionally filtered by status.
func (s *positionService) List(ctx context.Context, status string) []models.Position {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Position, 0, len(s.positions))
	for i := len(s.positions) - 1; i >= 0; i-- {
		p := s.positions[i]
		if status != "" && p.Status != status {
			continue
		}
		result = append(result, clonePosition(p))
	}
	return result
}

func (s *positionService) Get(ctx context.Context, id string) (models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Position{}, ErrPositionNotFound
	}
	return clonePosition(s.positions[idx]), nil
}

func (s *positionService) Create(ctx context.Context, input PositionInput) (models.Position, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Position{}, ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	position := models.Position{
		ID:            s.scores.NewRequisitionID(),
		Title:         title,
		Level:         strings.TrimSpace(input.Level),
		Location:      strings.TrimSpace(input.Location),
		Department:    strings.TrimSpace(input.Department),
		Status:        models.StatusActive,
		RiskFlag:      models.RiskFlagNewOpening,
		RiskLevel:     models.RiskLevelNew,
		SLA:           models.SLAOnTrack,
		SLALevel:      models.SLALevelSuccess,
		Updated:       s.today(),
		CandidateList: []models.Candidate{},
	}
	position.RecomputeStats()

	s.positions = append(s.positions, position)
	if err := s.persist(ctx); err != nil {
		return models.Position{}, err
	}

	observability.PipelineMutations().WithLabelValues("create_position").Inc()
	s.logger.Info().Str("position_id", position.ID).Str("title", title).Msg("position created")
	return clonePosition(position), nil
}

func (s *positionService) AttachJobDescription(ctx context.Context, id string, jd models.JobDescription, choice string) (models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Position{}, ErrPositionNotFound
	}

	document := jd
	s.positions[idx].JD = &document
	s.positions[idx].JDChoice = choice
	s.positions[idx].Updated = s.today()
	if err := s.persist(ctx); err != nil {
		return models.Position{}, err
	}

	observability.PipelineMutations().WithLabelValues("attach_jd").Inc()
	return clonePosition(s.positions[idx]), nil
}

// RecordJDChoice stores how the document will be produced without attaching
// one. The upload path remains inert beyond this marker.
func (s *positionService) RecordJDChoice(ctx context.Context, id string, choice string) (models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Position{}, ErrPositionNotFound
	}

	s.positions[idx].JDChoice = choice
	s.positions[idx].Updated = s.today()
	if err := s.persist(ctx); err != nil {
		return models.Position{}, err
	}
	return clonePosition(s.positions[idx]), nil
}

func (s *positionService) ToggleStatus(ctx context.Context, id string) (models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Position{}, ErrPositionNotFound
	}

	if s.positions[idx].Status == models.StatusActive {
		s.positions[idx].Status = models.StatusClosed
	} else {
		s.positions[idx].Status = models.StatusActive
	}
	s.positions[idx].Updated = s.today()
	if err := s.persist(ctx); err != nil {
		return models.Position{}, err
	}

	observability.PipelineMutations().WithLabelValues("toggle_status").Inc()
	return clonePosition(s.positions[idx]), nil
}

func (s *positionService) AddCandidate(ctx context.Context, id string, input CandidateInput) (models.Position, models.Candidate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Position{}, models.Candidate{}, ErrEmptyInput
	}

	stage := strings.TrimSpace(input.Stage)
	if stage == "" {
		stage = models.StageSourced
	}
	if !models.ValidStage(stage) {
		return models.Position{}, models.Candidate{}, ErrInvalidStage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Position{}, models.Candidate{}, ErrPositionNotFound
	}

	scores, verdict := s.scores.GenerateScores()
	candidate := models.Candidate{
		ID:        s.scores.NewCandidateID(),
		Name:      name,
		Role:      strings.TrimSpace(input.Role),
		Email:     strings.TrimSpace(input.Email),
		Stage:     stage,
		Scores:    scores,
		Verdict:   verdict,
		AddedDate: s.today(),
	}

	s.positions[idx].CandidateList = append(s.positions[idx].CandidateList, candidate)
	s.positions[idx].RecomputeStats()
	s.positions[idx].Updated = s.today()
	if err := s.persist(ctx); err != nil {
		return models.Position{}, models.Candidate{}, err
	}

	observability.PipelineMutations().WithLabelValues("add_candidate").Inc()
	s.logger.Info().
		Str("position_id", id).
		Str("candidate_id", candidate.ID).
		Int("composite", candidate.Scores.Composite).
		Str("verdict", candidate.Verdict).
		Msg("candidate added")
	return clonePosition(s.positions[idx]), candidate, nil
}

// persist writes the whole collection through to storage. Callers hold the
// lock; a failed write leaves the in-memory snapshot authoritative for the
// next attempt.
func (s *positionService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.positions); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist positions")
		return err
	}
	return nil
}

func (s *positionService) indexOf(id string) int {
	for i := range s.positions {
		if s.positions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *positionService) today() string {
	return s.now().Format("2006-01-02")
}

func clonePosition(p models.Position) models.Position {
	clone := p
	clone.CandidateList = append([]models.Candidate(nil), p.CandidateList...)
	if p.JD != nil {
		jd := *p.JD
		clone.JD = &jd
	}
	return clone
}
