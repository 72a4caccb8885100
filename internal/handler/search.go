package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pulsar1812/code-hunt/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Global handles GET /api/search?q=&type=
func (h *SearchHandler) Global(c fiber.Ctx) error {
	results, err := h.svc.Global(c.Context(), c.Query("q"), c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"results": results})
}
