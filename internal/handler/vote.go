package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pulsar1812/code-hunt/internal/middleware"
	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/service"
)

type VoteHandler struct {
	svc *service.VoteService
}

func NewVoteHandler(svc *service.VoteService) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// VoteQuestion handles POST /api/questions/:id/vote
func (h *VoteHandler) VoteQuestion(c fiber.Ctx) error {
	return h.cast(c, model.ContentQuestion)
}

// VoteAnswer handles POST /api/answers/:id/vote
func (h *VoteHandler) VoteAnswer(c fiber.Ctx) error {
	return h.cast(c, model.ContentAnswer)
}

func (h *VoteHandler) cast(c fiber.Ctx, itemType string) error {
	itemID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.VoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	// Voting requires a real voter identity; anonymous casts are rejected
	// before the engine is reached.
	if req.UserID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "userId is required")
	}
	if req.Direction == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "direction is required")
	}

	res, err := h.svc.Cast(c.Context(), itemType, itemID, req.UserID, req.Direction)
	if err != nil {
		return respondError(c, err)
	}

	Metrics.VotesTotal.WithLabelValues(itemType, req.Direction).Inc()
	return c.JSON(res)
}
