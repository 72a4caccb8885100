package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pulsar1812/code-hunt/internal/middleware"
	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create handles POST /api/users
func (h *UserHandler) Create(c fiber.Ctx) error {
	var req model.CreateUserRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	name, errMsg := middleware.ValidateName(req.Name)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Name = name

	if req.Username == "" || req.Email == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "username and email are required")
	}

	u, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(u)
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	u, err := h.svc.Get(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(u)
}

// List handles GET /api/users
func (h *UserHandler) List(c fiber.Ctx) error {
	page, pageSize := middleware.ParsePage(c)

	resp, err := h.svc.List(c.Context(), c.Query("q"), c.Query("filter"), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Info handles GET /api/users/:id/info
func (h *UserHandler) Info(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.Info(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ToggleSave handles POST /api/users/:id/saved
func (h *UserHandler) ToggleSave(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.SaveQuestionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.QuestionID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "questionId is required")
	}

	saved, err := h.svc.ToggleSave(c.Context(), userID, req.QuestionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "saved": saved})
}

// Saved handles GET /api/users/:id/saved
func (h *UserHandler) Saved(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	page, pageSize := middleware.ParsePage(c)

	resp, err := h.svc.SavedQuestions(c.Context(), userID, c.Query("q"), c.Query("filter"), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Questions handles GET /api/users/:id/questions
func (h *UserHandler) Questions(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	page, pageSize := middleware.ParsePage(c)

	resp, err := h.svc.Questions(c.Context(), userID, page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Answers handles GET /api/users/:id/answers
func (h *UserHandler) Answers(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	page, pageSize := middleware.ParsePage(c)

	resp, err := h.svc.Answers(c.Context(), userID, page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete handles DELETE /api/users/:id
func (h *UserHandler) Delete(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
