package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/pulsar1812/code-hunt/internal/handler"
	"github.com/pulsar1812/code-hunt/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Question *handler.QuestionHandler
	Answer   *handler.AnswerHandler
	Vote     *handler.VoteHandler
	View     *handler.ViewHandler
	User     *handler.UserHandler
	Tag      *handler.TagHandler
	Search   *handler.SearchHandler
	Stats    *handler.StatsHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (outside the API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Question routes. Static segments before :id so "hot" and
	// "recommended" don't parse as ids.
	api.Get("/questions/hot", h.Question.Hot)
	api.Get("/questions/recommended", h.Question.Recommended)
	api.Get("/questions", h.Question.List)
	api.Post("/questions", h.Question.Create)
	api.Get("/questions/:id", h.Question.Get)
	api.Put("/questions/:id", h.Question.Edit)
	api.Delete("/questions/:id", h.Question.Delete)
	api.Post("/questions/:id/view", h.View.Record)
	api.Post("/questions/:id/vote", h.Vote.VoteQuestion)
	api.Get("/questions/:id/answers", h.Answer.ListByQuestion)

	// Answer routes
	api.Post("/answers", h.Answer.Create)
	api.Delete("/answers/:id", h.Answer.Delete)
	api.Post("/answers/:id/vote", h.Vote.VoteAnswer)

	// User routes
	api.Post("/users", h.User.Create)
	api.Get("/users", h.User.List)
	api.Get("/users/:id", h.User.Get)
	api.Delete("/users/:id", h.User.Delete)
	api.Get("/users/:id/info", h.User.Info)
	api.Get("/users/:id/questions", h.User.Questions)
	api.Get("/users/:id/answers", h.User.Answers)
	api.Get("/users/:id/saved", h.User.Saved)
	api.Post("/users/:id/saved", h.User.ToggleSave)
	api.Get("/users/:id/top-tags", h.Tag.TopInteracted)

	// Tag routes
	api.Get("/tags/popular", h.Tag.Popular)
	api.Get("/tags", h.Tag.List)
	api.Get("/tags/:id/questions", h.Tag.Questions)

	// Search and stats
	api.Get("/search", h.Search.Global)
	api.Get("/stats", h.Stats.GetStats)
}
