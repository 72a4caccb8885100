package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pulsar1812/code-hunt/internal/middleware"
	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/service"
)

type AnswerHandler struct {
	svc *service.AnswerService
}

func NewAnswerHandler(svc *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{svc: svc}
}

// Create handles POST /api/answers
func (h *AnswerHandler) Create(c fiber.Ctx) error {
	var req model.CreateAnswerRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if req.QuestionID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "questionId is required")
	}
	if req.AuthorID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "authorId is required")
	}

	a, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// ListByQuestion handles GET /api/questions/:id/answers
func (h *AnswerHandler) ListByQuestion(c fiber.Ctx) error {
	questionID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.ListByQuestion(c.Context(), questionID, c.Query("sortBy"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete handles DELETE /api/answers/:id
func (h *AnswerHandler) Delete(c fiber.Ctx) error {
	answerID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), answerID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
