package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/dto"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/service"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/utils"
)

// PositionHandler exposes the requisition pipeline endpoints.
type PositionHandler struct {
	positions service.PositionService
	jd        *service.JDGenerator
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewPositionHandler constructs a position handler.
func NewPositionHandler(positions service.PositionService, jd *service.JDGenerator, validate *validator.Validate, logger zerolog.Logger) *PositionHandler {
	return &PositionHandler{
		positions: positions,
		jd:        jd,
		validate:  validate,
		logger:    logger.With().Str("component", "position_handler").Logger(),
	}
}

// Register wires position routes.
func (h *PositionHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Post("/", h.create)
	router.Get("/:id", h.get)
	router.Patch("/:id/status", h.toggleStatus)
	router.Put("/:id/jd", h.attachJD)
	router.Post("/:id/jd/choice", h.recordJDChoice)
	router.Post("/:id/candidates", h.addCandidate)
}

func (h *PositionHandler) list(c *fiber.Ctx) error {
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && status != models.StatusActive && status != models.StatusClosed {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid status filter")
	}

	positions := h.positions.List(c.Context(), status)
	return utils.SendSuccess(c, "positions retrieved", dto.NewPositionResponseSlice(positions))
}

func (h *PositionHandler) get(c *fiber.Ctx) error {
	position, err := h.positions.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, "position retrieved", dto.NewPositionResponse(position))
}

func (h *PositionHandler) create(c *fiber.Ctx) error {
	var req dto.PositionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err, "title is required"))
	}

	position, err := h.positions.Create(c.Context(), service.PositionInput{
		Title:      req.Title,
		Department: req.Department,
		Location:   req.Location,
		Level:      req.Level,
	})
	if err != nil {
		requestLogger(h.logger, c).Warn().Err(err).Msg("failed to create position")
		return sendServiceError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "position created", dto.NewPositionResponse(position))
}

func (h *PositionHandler) toggleStatus(c *fiber.Ctx) error {
	position, err := h.positions.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, "position status updated", dto.NewPositionResponse(position))
}

func (h *PositionHandler) attachJD(c *fiber.Ctx) error {
	var req dto.JDAttachRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "mode must be paste or template")
	}

	id := c.Params("id")

	var (
		document models.JobDescription
		err      error
	)
	switch req.Mode {
	case "paste":
		document, err = h.jd.FromPastedText(req.Text)
	case "template":
		var position models.Position
		position, err = h.positions.Get(c.Context(), id)
		if err == nil {
			document, err = h.jd.FromTitle(position.Title)
		}
	}
	if err != nil {
		return sendServiceError(c, err)
	}

	position, err := h.positions.AttachJobDescription(c.Context(), id, document, models.JDChoiceCreate)
	if err != nil {
		return sendServiceError(c, err)
	}

	requestLogger(h.logger, c).Info().Str("position_id", id).Str("mode", req.Mode).Msg("job description attached")
	return utils.SendSuccess(c, "job description saved", dto.NewPositionResponse(position))
}

// recordJDChoice stores the intake path only. The upload path stays inert:
// no file is accepted or parsed, the choice is just remembered.
func (h *PositionHandler) recordJDChoice(c *fiber.Ctx) error {
	var req dto.JDChoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "choice must be create or upload")
	}

	position, err := h.positions.RecordJDChoice(c.Context(), c.Params("id"), req.Choice)
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, "jd choice recorded", dto.NewPositionResponse(position))
}

func (h *PositionHandler) addCandidate(c *fiber.Ctx) error {
	var req dto.CandidateCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "name is required")
	}

	position, candidate, err := h.positions.AddCandidate(c.Context(), c.Params("id"), service.CandidateInput{
		Name:  req.Name,
		Role:  req.Role,
		Email: req.Email,
		Stage: req.Stage,
	})
	if err != nil {
		return sendServiceError(c, err)
	}

	payload := fiber.Map{
		"candidate": dto.NewCandidateResponse(candidate),
		"position":  dto.NewPositionResponse(position),
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "candidate added", payload)
}
