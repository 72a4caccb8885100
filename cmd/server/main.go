package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/pulsar1812/code-hunt/internal/config"
	"github.com/pulsar1812/code-hunt/internal/db"
	"github.com/pulsar1812/code-hunt/internal/handler"
	"github.com/pulsar1812/code-hunt/internal/middleware"
	"github.com/pulsar1812/code-hunt/internal/repository"
	"github.com/pulsar1812/code-hunt/internal/router"
	"github.com/pulsar1812/code-hunt/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "code-hunt")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(pool)

	// Repositories
	userRepo := repository.NewUserRepo(pool)
	questionRepo := repository.NewQuestionRepo(pool)
	answerRepo := repository.NewAnswerRepo(pool)
	tagRepo := repository.NewTagRepo(pool)
	voteRepo := repository.NewVoteRepo(pool)
	interactionRepo := repository.NewInteractionRepo(pool)

	// Services
	reputationSvc := service.NewReputationService(userRepo)
	interactionSvc := service.NewInteractionService(interactionRepo, questionRepo)
	voteSvc := service.NewVoteService(voteRepo, reputationSvc, cache)
	questionSvc := service.NewQuestionService(questionRepo, tagRepo, interactionSvc, reputationSvc, cache)
	answerSvc := service.NewAnswerService(answerRepo, questionRepo, interactionSvc, reputationSvc, cache)
	recommendSvc := service.NewRecommendService(userRepo, questionRepo, interactionRepo)
	userSvc := service.NewUserService(userRepo, questionRepo, answerRepo)
	tagSvc := service.NewTagService(tagRepo, userRepo, interactionSvc)
	searchSvc := service.NewSearchService(questionRepo, answerRepo, userRepo, tagRepo)

	app := fiber.New(fiber.Config{
		AppName:      "CodeHunt API",
		ServerHeader: "CodeHunt",
	})

	router.Setup(app, &router.Handlers{
		Question: handler.NewQuestionHandler(questionSvc, recommendSvc, cache),
		Answer:   handler.NewAnswerHandler(answerSvc),
		Vote:     handler.NewVoteHandler(voteSvc),
		View:     handler.NewViewHandler(interactionSvc),
		User:     handler.NewUserHandler(userSvc),
		Tag:      handler.NewTagHandler(tagSvc, questionSvc),
		Search:   handler.NewSearchHandler(searchSvc),
		Stats:    handler.NewStatsHandler(userSvc),
		Health:   handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	log.Printf("code-hunt backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
