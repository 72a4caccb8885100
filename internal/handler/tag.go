package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pulsar1812/code-hunt/internal/middleware"
	"github.com/pulsar1812/code-hunt/internal/service"
)

type TagHandler struct {
	svc       *service.TagService
	questions *service.QuestionService
}

func NewTagHandler(svc *service.TagService, questions *service.QuestionService) *TagHandler {
	return &TagHandler{svc: svc, questions: questions}
}

// List handles GET /api/tags
func (h *TagHandler) List(c fiber.Ctx) error {
	page, pageSize := middleware.ParsePage(c)

	resp, err := h.svc.List(c.Context(), c.Query("q"), c.Query("filter"), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Popular handles GET /api/tags/popular
func (h *TagHandler) Popular(c fiber.Ctx) error {
	tags, err := h.svc.PopularTop(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"tags": tags})
}

// Questions handles GET /api/tags/:id/questions
func (h *TagHandler) Questions(c fiber.Ctx) error {
	tagID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	page, pageSize := middleware.ParsePage(c)

	resp, tagName, err := h.questions.ByTag(c.Context(), tagID, c.Query("q"), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"questions": resp.Questions,
		"isNext":    resp.IsNext,
		"tagTitle":  tagName,
	})
}

// TopInteracted handles GET /api/users/:id/top-tags
func (h *TagHandler) TopInteracted(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	tags, err := h.svc.TopInteracted(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"tags": tags})
}
