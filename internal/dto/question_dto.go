package dto

import (
	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
)

// QuestionGenerateRequest starts a question session from a job description.
type QuestionGenerateRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,min=10"`
}

// QuestionEditRequest replaces a question's text.
type QuestionEditRequest struct {
	Text string `json:"text" validate:"required"`
}

// QuestionAddRequest appends a question to a category.
type QuestionAddRequest struct {
	Category string `json:"category" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

// QuestionReorderRequest replaces the ordering of one category's questions.
// Order must be a permutation of the category's current question ids.
type QuestionReorderRequest struct {
	Category string   `json:"category" validate:"required"`
	Order    []string `json:"order" validate:"required,min=1"`
}

// QuestionResponse is the serialized representation of one question.
type QuestionResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// QuestionSessionResponse carries a session id and its current working set.
type QuestionSessionResponse struct {
	SessionID  string             `json:"sessionId"`
	Questions  []QuestionResponse `json:"questions"`
	Categories []string           `json:"categories"`
}

// NewQuestionResponseSlice converts models into DTOs.
func NewQuestionResponseSlice(questions []models.Question) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, QuestionResponse{ID: q.ID, Text: q.Text, Category: q.Category})
	}
	return responses
}

// NewQuestionSessionResponse builds the session payload returned after
// generation and after each mutation.
func NewQuestionSessionResponse(sessionID string, questions []models.Question) QuestionSessionResponse {
	return QuestionSessionResponse{
		SessionID:  sessionID,
		Questions:  NewQuestionResponseSlice(questions),
		Categories: append([]string(nil), models.QuestionCategories...),
	}
}
