package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/dto"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/service"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/utils"
)

// ExportFilename is the download name for the plain-text question export.
const ExportFilename = "interview-questions.txt"

// QuestionHandler exposes the interview question session endpoints.
type QuestionHandler struct {
	questions service.QuestionService
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewQuestionHandler constructs a question handler.
func NewQuestionHandler(questions service.QuestionService, validate *validator.Validate, logger zerolog.Logger) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
		validate:  validate,
		logger:    logger.With().Str("component", "question_handler").Logger(),
	}
}

// Register wires question routes. generateLimiter may be nil.
func (h *QuestionHandler) Register(router fiber.Router, generateLimiter fiber.Handler) {
	if generateLimiter == nil {
		generateLimiter = func(c *fiber.Ctx) error { return c.Next() }
	}

	router.Post("/generate", generateLimiter, h.generate)
	router.Get("/:session", h.list)
	router.Post("/:session", h.add)
	router.Put("/:session/reorder", h.reorder)
	router.Patch("/:session/:id", h.edit)
	router.Delete("/:session/:id", h.remove)
	router.Get("/:session/export", h.export)
	router.Get("/:session/copy", h.copyAll)
}

// generate holds the request for the simulated processing window, then opens
// a session with the canned catalog. Client disconnects cancel the wait and
// no session is created.
func (h *QuestionHandler) generate(c *fiber.Ctx) error {
	var req dto.QuestionGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err, "job description is required"))
	}

	sessionID, questions, err := h.questions.Generate(c.Context(), req.JobDescription)
	if err != nil {
		requestLogger(h.logger, c).Warn().Err(err).Msg("question generation did not complete")
		return sendServiceError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "questions generated",
		dto.NewQuestionSessionResponse(sessionID, questions))
}

func (h *QuestionHandler) list(c *fiber.Ctx) error {
	sessionID := c.Params("session")
	questions, err := h.questions.Questions(sessionID)
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, "questions retrieved", dto.NewQuestionSessionResponse(sessionID, questions))
}

func (h *QuestionHandler) edit(c *fiber.Ctx) error {
	var req dto.QuestionEditRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "text is required")
	}

	sessionID := c.Params("session")
	questions, err := h.questions.Edit(sessionID, c.Params("id"), req.Text)
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, "question updated", dto.NewQuestionSessionResponse(sessionID, questions))
}

func (h *QuestionHandler) remove(c *fiber.Ctx) error {
	sessionID := c.Params("session")
	questions, err := h.questions.Delete(sessionID, c.Params("id"))
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, "question deleted", dto.NewQuestionSessionResponse(sessionID, questions))
}

func (h *QuestionHandler) reorder(c *fiber.Ctx) error {
	var req dto.QuestionReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "category and order are required")
	}

	sessionID := c.Params("session")
	questions, err := h.questions.Reorder(sessionID, req.Category, req.Order)
	if err != nil {
		return sendServiceError(c, err)
	}
	return utils.SendSuccess(c, "questions reordered", dto.NewQuestionSessionResponse(sessionID, questions))
}

func (h *QuestionHandler) add(c *fiber.Ctx) error {
	var req dto.QuestionAddRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "category and text are required")
	}

	sessionID := c.Params("session")
	question, err := h.questions.AddToCategory(sessionID, req.Category, req.Text)
	if err != nil {
		return sendServiceError(c, err)
	}

	questions, err := h.questions.Questions(sessionID)
	if err != nil {
		return sendServiceError(c, err)
	}

	payload := fiber.Map{
		"question": dto.QuestionResponse{ID: question.ID, Text: question.Text, Category: question.Category},
		"session":  dto.NewQuestionSessionResponse(sessionID, questions),
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "question added", payload)
}

// export serves the plain-text outline as a file download.
func (h *QuestionHandler) export(c *fiber.Ctx) error {
	text, err := h.questions.ExportText(c.Params("session"))
	if err != nil {
		return sendServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+ExportFilename+`"`)
	return c.SendString(text)
}

// copyAll serves the same outline inline for the clipboard.
func (h *QuestionHandler) copyAll(c *fiber.Ctx) error {
	text, err := h.questions.CopyAllText(c.Params("session"))
	if err != nil {
		return sendServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(text)
}
