// @title Code Quiz API
// @version 1.0
// @description Serves "guess the output" questions loaded from a Google Sheet.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "codequiz/cmd/api/docs"
	"codequiz/internal/adapter"
	"codequiz/internal/adapter/sheets"
	"codequiz/internal/bank"
	"codequiz/internal/cache"
	"codequiz/internal/config"
	"codequiz/internal/domain"
	"codequiz/internal/handler"
	"codequiz/internal/logger"
	"codequiz/internal/middleware"
	"codequiz/internal/service"
	"codequiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)
		return err
	}
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	sheetsClient, err := sheets.NewGoogleSheetsClient(ctx, cfg.Sheets)
	if err != nil {
		appLogger.Fatal("Failed to create Google Sheets client", zap.Error(err))
	}
	appLogger.Info("Google Sheets client initialized",
		zap.String("spreadsheet_id", cfg.Sheets.SpreadsheetID),
		zap.String("tab", cfg.Sheets.Tab),
		zap.Duration("request_timeout", cfg.Sheets.RequestTimeout),
	)

	// Optional Redis mirror of the last good snapshot
	var snapshotStore domain.SnapshotStore
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, running without snapshot mirror", zap.Error(err))
		} else {
			defer redisClient.Close()
			snapshotStore = adapter.NewCacheSnapshotStore(adapter.NewRedisCacheAdapter(redisClient), cfg.Redis.SnapshotTTL)
			appLogger.Info("Snapshot mirror initialized", zap.String("redis", cfg.Redis.Address))
		}
	} else {
		appLogger.Info("Redis is not configured. Running without snapshot mirror.")
	}

	questionBank := bank.NewCache(sheetsClient, bank.Options{
		SheetID:       cfg.Sheets.SpreadsheetID,
		Tab:           cfg.Sheets.Tab,
		TTL:           cfg.Bank.TTL,
		Aliases:       bank.DefaultAliases.Merge(cfg.Bank.Aliases),
		FetchAttempts: cfg.Bank.FetchAttempts,
		RetryBackoff:  cfg.Bank.RetryBackoff,
		Store:         snapshotStore,
	})

	// Warm the bank. Missing configuration is fatal; a flaky source is not.
	if questions, err := questionBank.Load(ctx, true); err != nil {
		if domain.IsCode(err, domain.CodeConfigurationMissing) {
			appLogger.Fatal("Question bank is not configured", zap.Error(err))
		}
		appLogger.Warn("Initial question bank load failed, will retry on demand",
			zap.Error(err),
			zap.Int("held_questions", len(questions)),
		)
	}

	validator := validation.NewValidator()
	questionService := service.NewQuestionService(questionBank)
	questionHandler := handler.NewQuestionHandler(questionService, validator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, questionHandler, middleware.NewValidationMiddleware(validator))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
