package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/observability"
)

var (
	// ErrSessionNotFound is returned when a question session id does not
	// resolve, usually because it expired or the caller navigated away.
	ErrSessionNotFound = errors.New("question session not found")
	// ErrQuestionNotFound is returned when a question id misses. The working
	// set is left untouched.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrInvalidCategory is returned for categories outside the closed set.
	ErrInvalidCategory = errors.New("invalid question category")
	// ErrInvalidReorder is returned when a reorder is not a permutation of
	// the category's current questions.
	ErrInvalidReorder = errors.New("reorder must be a permutation of the category")
)

// questionCatalog returns the fixed 18-question catalog, identical on every
// call. This simulates the AI generation pass for the demo.
func questionCatalog() []models.Question {
	return []models.Question{
		{ID: "t1", Text: "Describe your experience with the primary technologies mentioned in the job description.", Category: models.CategoryTechnical},
		{ID: "t2", Text: "How do you approach debugging complex technical issues?", Category: models.CategoryTechnical},
		{ID: "t3", Text: "What's your process for learning new technologies quickly?", Category: models.CategoryTechnical},

		{ID: "b1", Text: "Tell me about a time when you had to meet a tight deadline. How did you handle it?", Category: models.CategoryBehavioral},
		{ID: "b2", Text: "Describe a situation where you had to work with a difficult team member.", Category: models.CategoryBehavioral},
		{ID: "b3", Text: "Give an example of when you went above and beyond for a project.", Category: models.CategoryBehavioral},

		{ID: "ps1", Text: "Walk me through your approach to solving a complex problem you've faced.", Category: models.CategoryProblemSolving},
		{ID: "ps2", Text: "How do you prioritize tasks when everything seems urgent?", Category: models.CategoryProblemSolving},
		{ID: "ps3", Text: "Describe a time when you had to make a decision with incomplete information.", Category: models.CategoryProblemSolving},

		{ID: "cf1", Text: "What type of work environment helps you do your best work?", Category: models.CategoryCulturalFit},
		{ID: "cf2", Text: "How do you handle feedback, both giving and receiving?", Category: models.CategoryCulturalFit},
		{ID: "cf3", Text: "What motivates you in your professional career?", Category: models.CategoryCulturalFit},

		{ID: "l1", Text: "Describe your leadership style and how it has evolved.", Category: models.CategoryLeadership},
		{ID: "l2", Text: "Tell me about a time you mentored someone. What was the outcome?", Category: models.CategoryLeadership},
		{ID: "l3", Text: "How do you handle conflicts within your team?", Category: models.CategoryLeadership},

		{ID: "c1", Text: "How do you ensure clear communication in a remote/hybrid environment?", Category: models.CategoryCommunication},
		{ID: "c2", Text: "Describe a time when you had to explain a complex concept to a non-technical audience.", Category: models.CategoryCommunication},
		{ID: "c3", Text: "How do you approach giving constructive criticism?", Category: models.CategoryCommunication},
	}
}

type questionSession struct {
	questions []models.Question
	touched   time.Time
	nextSeq   int
}

// QuestionService manages session-scoped interview question sets. Sets live
// only in process memory; navigating away and regenerating starts from the
// fixed catalog again.
type QuestionService interface {
	Generate(ctx context.Context, jobDescription string) (string, []models.Question, error)
	Questions(sessionID string) ([]models.Question, error)
	Edit(sessionID, questionID, text string) ([]models.Question, error)
	Delete(sessionID, questionID string) ([]models.Question, error)
	Reorder(sessionID, category string, order []string) ([]models.Question, error)
	AddToCategory(sessionID, category, text string) (models.Question, error)
	ExportText(sessionID string) (string, error)
	CopyAllText(sessionID string) (string, error)
}

type questionService struct {
	mu       sync.Mutex
	sessions map[string]*questionSession

	delay  time.Duration
	ttl    time.Duration
	policy *bluemonday.Policy
	now    func() time.Time
	logger zerolog.Logger
}

// NewQuestionService constructs the service. delay is the simulated AI
// generation wait; ttl bounds how long an idle session is kept.
func NewQuestionService(delay, ttl time.Duration, logger zerolog.Logger) QuestionService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &questionService{
		sessions: make(map[string]*questionSession),
		delay:    delay,
		ttl:      ttl,
		policy:   bluemonday.StrictPolicy(),
		now:      time.Now,
		logger:   logger.With().Str("component", "question_service").Logger(),
	}
}

// Generate waits out the simulated processing delay and opens a new session
// holding the fixed catalog. A cancelled context discards the result so a
// stale completion never materializes after the caller has moved on.
func (s *questionService) Generate(ctx context.Context, jobDescription string) (string, []models.Question, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return "", nil, ErrEmptyInput
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		case <-timer.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	sessionID := uuid.NewString()
	s.sessions[sessionID] = &questionSession{
		questions: questionCatalog(),
		touched:   s.now(),
		nextSeq:   1,
	}

	observability.QuestionGenerations().Inc()
	s.logger.Info().Str("session_id", sessionID).Msg("question set generated")
	return sessionID, questionCatalog(), nil
}

func (s *questionService) Questions(sessionID string) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return append([]models.Question(nil), session.questions...), nil
}

// Edit replaces the text of the matching question. Category and id never
// change.
func (s *questionService) Edit(sessionID, questionID, text string) ([]models.Question, error) {
	cleaned := strings.TrimSpace(s.policy.Sanitize(text))
	if cleaned == "" {
		return nil, ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}

	for i := range session.questions {
		if session.questions[i].ID == questionID {
			session.questions[i].Text = cleaned
			return append([]models.Question(nil), session.questions...), nil
		}
	}
	return nil, ErrQuestionNotFound
}

func (s *questionService) Delete(sessionID, questionID string) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}

	for i := range session.questions {
		if session.questions[i].ID == questionID {
			session.questions = append(session.questions[:i], session.questions[i+1:]...)
			return append([]models.Question(nil), session.questions...), nil
		}
	}
	return nil, ErrQuestionNotFound
}

// Reorder replaces the ordering of one category's questions. The new order
// must be a permutation of exactly the questions currently in that category;
// other categories are untouched.
func (s *questionService) Reorder(sessionID, category string, order []string) ([]models.Question, error) {
	if !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}

	current := make(map[string]models.Question)
	for _, q := range session.questions {
		if q.Category == category {
			current[q.ID] = q
		}
	}
	if len(order) != len(current) {
		return nil, ErrInvalidReorder
	}

	reordered := make([]models.Question, 0, len(order))
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		q, ok := current[id]
		if !ok || seen[id] {
			return nil, ErrInvalidReorder
		}
		seen[id] = true
		reordered = append(reordered, q)
	}

	rebuilt := make([]models.Question, 0, len(session.questions))
	for _, q := range session.questions {
		if q.Category != category {
			rebuilt = append(rebuilt, q)
		}
	}
	session.questions = append(rebuilt, reordered...)

	return append([]models.Question(nil), session.questions...), nil
}

// AddToCategory appends a new question to the end of the category's list,
// with a session-unique id.
func (s *questionService) AddToCategory(sessionID, category, text string) (models.Question, error) {
	if !models.ValidCategory(category) {
		return models.Question{}, ErrInvalidCategory
	}
	cleaned := strings.TrimSpace(s.policy.Sanitize(text))
	if cleaned == "" {
		return models.Question{}, ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionLocked(sessionID)
	if err != nil {
		return models.Question{}, err
	}

	question := models.Question{
		ID:       fmt.Sprintf("custom-%d", session.nextSeq),
		Text:     cleaned,
		Category: category,
	}
	session.nextSeq++
	session.questions = append(session.questions, question)

	return question, nil
}

// ExportText renders every non-empty category in declared order as a heading
// followed by a numbered list, categories separated by one blank line.
func (s *questionService) ExportText(sessionID string) (string, error) {
	questions, err := s.Questions(sessionID)
	if err != nil {
		return "", err
	}
	return renderQuestionOutline(questions), nil
}

// CopyAllText returns the same rendering as ExportText; the two differ only
// in destination (clipboard versus file) at the HTTP boundary.
func (s *questionService) CopyAllText(sessionID string) (string, error) {
	return s.ExportText(sessionID)
}

func (s *questionService) sessionLocked(sessionID string) (*questionSession, error) {
	s.sweepLocked()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.touched = s.now()
	return session, nil
}

func (s *questionService) sweepLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, session := range s.sessions {
		if session.touched.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func renderQuestionOutline(questions []models.Question) string {
	var blocks []string
	for _, category := range models.QuestionCategories {
		var lines []string
		for _, q := range questions {
			if q.Category == category {
				lines = append(lines, fmt.Sprintf("%d. %s", len(lines)+1, q.Text))
			}
		}
		if len(lines) == 0 {
			continue
		}
		heading := category + "\n" + strings.Repeat("=", len(category))
		blocks = append(blocks, heading+"\n"+strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
