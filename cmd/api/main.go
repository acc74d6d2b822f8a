package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/config"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/database"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/handler"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/middleware"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/repository"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/router"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	positionRepo := repository.NewPositionRepository(redisClient, cfg.PositionsKey, logger)

	scoreGen := service.NewScoreGenerator(nil)
	positionService, err := service.NewPositionService(context.Background(), positionRepo, scoreGen, logger)
	if err != nil {
		log.Fatalf("failed to initialise position store: %v", err)
	}
	questionService := service.NewQuestionService(cfg.GenerationDelay, cfg.QuestionSessionTTL, logger)
	jdGenerator := service.NewJDGenerator()

	positionHandler := handler.NewPositionHandler(positionService, jdGenerator, validate, logger)
	questionHandler := handler.NewQuestionHandler(questionService, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		PositionHandler: positionHandler,
		QuestionHandler: questionHandler,
		GenerateLimiter: middleware.RateLimit("question-generate", cfg.GenerateRateMax, cfg.GenerateRateWindow),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
