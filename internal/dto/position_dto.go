package dto

import (
	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
)

// PositionCreateRequest describes the payload for opening a requisition.
type PositionCreateRequest struct {
	Title      string `json:"title" validate:"required,min=2"`
	Department string `json:"department" validate:"omitempty,min=2"`
	Location   string `json:"location" validate:"omitempty,min=2"`
	Level      string `json:"level" validate:"omitempty,oneof=Junior Mid Senior Executive"`
}

// CandidateCreateRequest describes the payload for attaching a candidate to a
// position. Scores are not accepted from the client; the store assigns them.
type CandidateCreateRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Role  string `json:"role" validate:"omitempty"`
	Email string `json:"email" validate:"omitempty,email"`
	Stage string `json:"stage" validate:"omitempty"`
}

// JDAttachRequest describes the JD intake submission. Mode "paste" wraps the
// provided text; mode "template" expands the position title.
type JDAttachRequest struct {
	Mode string `json:"mode" validate:"required,oneof=paste template"`
	Text string `json:"text" validate:"omitempty"`
}

// JDChoiceRequest records which intake path the user picked.
type JDChoiceRequest struct {
	Choice string `json:"choice" validate:"required,oneof=create upload"`
}

// CandidateResponse is the serialized representation returned to API clients.
type CandidateResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Role      string                 `json:"role"`
	Email     string                 `json:"email"`
	Stage     string                 `json:"stage"`
	Scores    models.CandidateScores `json:"scores"`
	Verdict   string                 `json:"verdict"`
	AddedDate string                 `json:"addedDate"`
}

// PositionResponse is the serialized representation of a requisition.
type PositionResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Level       string                 `json:"level"`
	Location    string                 `json:"location"`
	Department  string                 `json:"department"`
	Status      string                 `json:"status"`
	JDChoice    string                 `json:"jdChoice,omitempty"`
	JD          *models.JobDescription `json:"jd"`
	Stats       models.PositionStats   `json:"stats"`
	Shortlisted int                    `json:"shortlisted"`
	RiskFlag    string                 `json:"riskFlag,omitempty"`
	RiskLevel   string                 `json:"riskLevel,omitempty"`
	SLA         string                 `json:"sla"`
	SLALevel    string                 `json:"slaLevel"`
	Updated     string                 `json:"updated"`
	Candidates  []CandidateResponse    `json:"candidates"`
}

// NewCandidateResponse converts a model into a DTO.
func NewCandidateResponse(model models.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:        model.ID,
		Name:      model.Name,
		Role:      model.Role,
		Email:     model.Email,
		Stage:     model.Stage,
		Scores:    model.Scores,
		Verdict:   model.Verdict,
		AddedDate: model.AddedDate,
	}
}

// NewPositionResponse converts a model into a DTO.
func NewPositionResponse(model models.Position) PositionResponse {
	candidates := make([]CandidateResponse, 0, len(model.CandidateList))
	for _, candidate := range model.CandidateList {
		candidates = append(candidates, NewCandidateResponse(candidate))
	}

	return PositionResponse{
		ID:          model.ID,
		Title:       model.Title,
		Level:       model.Level,
		Location:    model.Location,
		Department:  model.Department,
		Status:      model.Status,
		JDChoice:    model.JDChoice,
		JD:          model.JD,
		Stats:       model.Stats,
		Shortlisted: model.Shortlisted,
		RiskFlag:    model.RiskFlag,
		RiskLevel:   model.RiskLevel,
		SLA:         model.SLA,
		SLALevel:    model.SLALevel,
		Updated:     model.Updated,
		Candidates:  candidates,
	}
}

// NewPositionResponseSlice converts a slice of models into DTOs.
func NewPositionResponseSlice(positions []models.Position) []PositionResponse {
	responses := make([]PositionResponse, 0, len(positions))
	for _, position := range positions {
		responses = append(responses, NewPositionResponse(position))
	}
	return responses
}
