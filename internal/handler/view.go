package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pulsar1812/code-hunt/internal/middleware"
	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/service"
)

type ViewHandler struct {
	svc *service.InteractionService
}

func NewViewHandler(svc *service.InteractionService) *ViewHandler {
	return &ViewHandler{svc: svc}
}

// Record handles POST /api/questions/:id/view. Anonymous calls carry no
// userId and only bump the counter.
func (h *ViewHandler) Record(c fiber.Ctx) error {
	questionID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.ViewRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.UserID != nil && *req.UserID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "userId must be a positive integer")
	}

	if err := h.svc.RecordView(c.Context(), questionID, req.UserID); err != nil {
		return respondError(c, err)
	}

	Metrics.ViewsTotal.Inc()
	return c.JSON(fiber.Map{"success": true})
}
