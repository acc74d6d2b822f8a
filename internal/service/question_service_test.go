package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
)

func newQuestionSession(t *testing.T) (QuestionService, string) {
	t.Helper()

	svc := NewQuestionService(0, time.Hour, zerolog.Nop())
	sessionID, questions, err := svc.Generate(context.Background(), "Senior Software Engineer, Go and distributed systems.")
	require.NoError(t, err)
	require.Len(t, questions, 18)
	return svc, sessionID
}

func TestGenerateReturnsFixedCatalogEveryTime(t *testing.T) {
	svc := NewQuestionService(0, time.Hour, zerolog.Nop())

	_, first, err := svc.Generate(context.Background(), "some jd")
	require.NoError(t, err)
	_, second, err := svc.Generate(context.Background(), "another jd")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Len(t, first, 18)

	perCategory := map[string]int{}
	for _, q := range first {
		perCategory[q.Category]++
	}
	require.Len(t, perCategory, 6)
	for _, category := range models.QuestionCategories {
		require.Equal(t, 3, perCategory[category])
	}
}

func TestGenerateRejectsBlankJobDescription(t *testing.T) {
	svc := NewQuestionService(0, time.Hour, zerolog.Nop())

	_, _, err := svc.Generate(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestGenerateHonoursCancelledContext(t *testing.T) {
	svc := NewQuestionService(50*time.Millisecond, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.Generate(ctx, "some jd")
	require.ErrorIs(t, err, context.Canceled)
}

func TestEditChangesTextOnly(t *testing.T) {
	svc, sessionID := newQuestionSession(t)

	questions, err := svc.Edit(sessionID, "t2", "Walk through a production incident you debugged end to end.")
	require.NoError(t, err)

	var edited models.Question
	for _, q := range questions {
		if q.ID == "t2" {
			edited = q
		}
	}
	require.Equal(t, "Walk through a production incident you debugged end to end.", edited.Text)
	require.Equal(t, models.CategoryTechnical, edited.Category)
}

func TestEditUnknownIDIsRejectedWithoutMutation(t *testing.T) {
	svc, sessionID := newQuestionSession(t)

	_, err := svc.Edit(sessionID, "nope", "whatever")
	require.ErrorIs(t, err, ErrQuestionNotFound)

	questions, err := svc.Questions(sessionID)
	require.NoError(t, err)
	require.Len(t, questions, 18)
}

func TestDeleteRemovesQuestion(t *testing.T) {
	svc, sessionID := newQuestionSession(t)

	questions, err := svc.Delete(sessionID, "b1")
	require.NoError(t, err)
	require.Len(t, questions, 17)
	for _, q := range questions {
		require.NotEqual(t, "b1", q.ID)
	}
}

func TestReorderIsPermutationWithinCategory(t *testing.T) {
	svc, sessionID := newQuestionSession(t)

	questions, err := svc.Reorder(sessionID, models.CategoryTechnical, []string{"t3", "t1", "t2"})
	require.NoError(t, err)

	var technical []string
	for _, q := range questions {
		if q.Category == models.CategoryTechnical {
			technical = append(technical, q.ID)
		}
	}
	require.Equal(t, []string{"t3", "t1", "t2"}, technical)

	// Other categories keep their membership and order.
	var behavioral []string
	for _, q := range questions {
		if q.Category == models.CategoryBehavioral {
			behavioral = append(behavioral, q.ID)
		}
	}
	require.Equal(t, []string{"b1", "b2", "b3"}, behavioral)

	// Multiset of ids is unchanged overall.
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	sort.Strings(ids)
	require.Len(t, ids, 18)
	require.Contains(t, ids, "t1")
	require.Contains(t, ids, "t2")
	require.Contains(t, ids, "t3")
}

func TestReorderRejectsNonPermutations(t *testing.T) {
	svc, sessionID := newQuestionSession(t)

	_, err := svc.Reorder(sessionID, models.CategoryTechnical, []string{"t1", "t2"})
	require.ErrorIs(t, err, ErrInvalidReorder)

	_, err = svc.Reorder(sessionID, models.CategoryTechnical, []string{"t1", "t2", "b1"})
	require.ErrorIs(t, err, ErrInvalidReorder)

	_, err = svc.Reorder(sessionID, models.CategoryTechnical, []string{"t1", "t1", "t2"})
	require.ErrorIs(t, err, ErrInvalidReorder)

	questions, err := svc.Questions(sessionID)
	require.NoError(t, err)
	require.Len(t, questions, 18)
}

func TestAddToCategoryAppendsWithUniqueID(t *testing.T) {
	svc, sessionID := newQuestionSession(t)

	first, err := svc.AddToCategory(sessionID, models.CategoryLeadership, "How do you delegate under pressure?")
	require.NoError(t, err)
	second, err := svc.AddToCategory(sessionID, models.CategoryLeadership, "Describe a hiring decision you regretted.")
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, models.CategoryLeadership, first.Category)

	questions, err := svc.Questions(sessionID)
	require.NoError(t, err)
	require.Len(t, questions, 20)
	require.Equal(t, second.ID, questions[len(questions)-1].ID)
}

func TestAddToCategoryRejectsBlankText(t *testing.T) {
	svc, sessionID := newQuestionSession(t)

	_, err := svc.AddToCategory(sessionID, models.CategoryTechnical, "   ")
	require.ErrorIs(t, err, ErrEmptyInput)

	questions, err := svc.Questions(sessionID)
	require.NoError(t, err)
	require.Len(t, questions, 18)
}

func TestAddToCategoryRejectsUnknownCategory(t *testing.T) {
	svc, sessionID := newQuestionSession(t)

	_, err := svc.AddToCategory(sessionID, "Trivia", "What is the airspeed velocity of an unladen swallow?")
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestExportTextSkipsEmptyCategoriesAndNumbersFromOne(t *testing.T) {
	svc, sessionID := newQuestionSession(t)

	// Keep two Technical questions and one Leadership question.
	for _, id := range []string{"t3", "b1", "b2", "b3", "ps1", "ps2", "ps3", "cf1", "cf2", "cf3", "l1", "l2", "c1", "c2", "c3"} {
		_, err := svc.Delete(sessionID, id)
		require.NoError(t, err)
	}

	text, err := svc.ExportText(sessionID)
	require.NoError(t, err)

	blocks := strings.Split(text, "\n\n")
	require.Len(t, blocks, 2)
	require.True(t, strings.HasPrefix(blocks[0], "Technical\n=========\n1. "))
	require.Contains(t, blocks[0], "\n2. ")
	require.True(t, strings.HasPrefix(blocks[1], "Leadership\n==========\n1. "))
	require.NotContains(t, text, "Behavioral")
	require.NotContains(t, text, "Cultural Fit")
}

func TestCopyAllTextMatchesExport(t *testing.T) {
	svc, sessionID := newQuestionSession(t)

	exported, err := svc.ExportText(sessionID)
	require.NoError(t, err)
	copied, err := svc.CopyAllText(sessionID)
	require.NoError(t, err)
	require.Equal(t, exported, copied)
}

func TestSessionExpiryReturnsNotFound(t *testing.T) {
	svc := NewQuestionService(0, time.Nanosecond, zerolog.Nop())
	sessionID, _, err := svc.Generate(context.Background(), "some jd")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = svc.Questions(sessionID)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUnknownSessionIsNotFound(t *testing.T) {
	svc := NewQuestionService(0, time.Hour, zerolog.Nop())

	_, err := svc.Questions("missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}
