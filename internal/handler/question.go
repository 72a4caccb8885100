package handler

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/pulsar1812/code-hunt/internal/middleware"
	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/service"
)

type QuestionHandler struct {
	svc       *service.QuestionService
	recommend *service.RecommendService
	cache     *service.CacheService
}

func NewQuestionHandler(svc *service.QuestionService, recommend *service.RecommendService, cache *service.CacheService) *QuestionHandler {
	return &QuestionHandler{svc: svc, recommend: recommend, cache: cache}
}

// defaultFeed reports whether the request is the plain first page the feed
// cache stores. Searched, filtered or deeper pages always hit the database.
func defaultFeed(search, filter string, page, pageSize int) bool {
	return search == "" && filter == "" && page == 1 && pageSize == middleware.DefaultPageSize
}

// List handles GET /api/questions — cache-aside on the feed key for the
// default first page.
func (h *QuestionHandler) List(c fiber.Ctx) error {
	page, pageSize := middleware.ParsePage(c)
	search := c.Query("q")
	filter := c.Query("filter")

	cacheable := defaultFeed(search, filter, page, pageSize)
	if cacheable {
		if cached, err := h.cache.GetFeed(c.Context()); err == nil && cached != nil {
			Metrics.CacheHits.Inc()
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(cached)
		}
		Metrics.CacheMisses.Inc()
	}

	resp, err := h.svc.List(c.Context(), search, filter, page, pageSize)
	if err != nil {
		return respondError(c, err)
	}

	if cacheable {
		if err := h.cache.SetFeed(c.Context(), resp); err != nil {
			log.Printf("cache: set feed error: %v", err)
		}
	}
	return c.JSON(resp)
}

// Recommended handles GET /api/questions/recommended?userId=
func (h *QuestionHandler) Recommended(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Query("userId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	page, pageSize := middleware.ParsePage(c)

	resp, err := h.recommend.Recommend(c.Context(), userID, c.Query("q"), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Hot handles GET /api/questions/hot
func (h *QuestionHandler) Hot(c fiber.Ctx) error {
	questions, err := h.svc.Hot(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"questions": questions})
}

// Get handles GET /api/questions/:id — cache-aside on the item key.
func (h *QuestionHandler) Get(c fiber.Ctx) error {
	questionID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if cached, err := h.cache.GetItem(c.Context(), model.ContentQuestion, questionID); err == nil && cached != nil {
		Metrics.CacheHits.Inc()
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}
	Metrics.CacheMisses.Inc()

	q, err := h.svc.Get(c.Context(), questionID)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.cache.SetItem(c.Context(), model.ContentQuestion, questionID, q); err != nil {
		log.Printf("cache: set question %d error: %v", questionID, err)
	}
	return c.JSON(q)
}

// Create handles POST /api/questions
func (h *QuestionHandler) Create(c fiber.Ctx) error {
	var req model.CreateQuestionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	title, errMsg := middleware.ValidateTitle(req.Title)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Title = title

	tags, errMsg := middleware.ValidateTagNames(req.Tags)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Tags = tags

	if req.AuthorID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "authorId is required")
	}

	q, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(q)
}

// Edit handles PUT /api/questions/:id
func (h *QuestionHandler) Edit(c fiber.Ctx) error {
	questionID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.EditQuestionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	title, errMsg := middleware.ValidateTitle(req.Title)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Title = title

	if err := h.svc.Edit(c.Context(), questionID, req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete handles DELETE /api/questions/:id
func (h *QuestionHandler) Delete(c fiber.Ctx) error {
	questionID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), questionID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
