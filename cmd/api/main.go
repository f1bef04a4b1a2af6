package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/momentum-hq/momentum-backend/internal/adapter/handler"
	"github.com/momentum-hq/momentum-backend/internal/adapter/repository"
	"github.com/momentum-hq/momentum-backend/internal/infrastructure/cache"
	"github.com/momentum-hq/momentum-backend/internal/infrastructure/database"
	recallusecase "github.com/momentum-hq/momentum-backend/internal/usecase/recall"
	summaryusecase "github.com/momentum-hq/momentum-backend/internal/usecase/summary"
	"github.com/momentum-hq/momentum-backend/pkg/config"
	"github.com/momentum-hq/momentum-backend/pkg/genai"
	"github.com/momentum-hq/momentum-backend/pkg/mailer"
	"github.com/momentum-hq/momentum-backend/pkg/recall"
	pkgvalidator "github.com/momentum-hq/momentum-backend/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.Migrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; set DB_MIGRATE=true to apply them on boot")
	}

	// Initialize the bot-to-meeting session cache. Redis is preferred; when
	// it is unreachable the in-process cache keeps the webhook path working
	// for single-instance deployments.
	var sessionCache recallusecase.SessionCache
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), using in-memory session cache", err)
		sessionCache = cache.NewMemorySessionCache(cfg.Redis.TTL)
	} else {
		defer redisClient.Close()
		sessionCache = cache.NewRedisSessionCache(redisClient, cfg.Redis.TTL, logger)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	sessionRepo := repository.NewRecallSessionRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	// Initialize external clients
	log.Println("🤖 Initializing Recall.ai and Gemini clients...")
	recallClient := recall.NewClient(&cfg.Recall)
	geminiClient := genai.NewGeminiClient(&cfg.Gemini)
	smtpMailer := mailer.NewSMTPMailer(&cfg.SMTP)

	// Initialize usecases
	log.Println("✨ Initializing services...")
	recallService := recallusecase.NewService(
		recallClient,
		sessionRepo,
		meetingRepo,
		transcriptRepo,
		sessionCache,
		logger,
	)
	extractor := summaryusecase.NewExtractor(geminiClient, logger)
	summaryService := summaryusecase.NewService(
		transcriptRepo,
		summaryRepo,
		meetingRepo,
		extractor,
		smtpMailer,
		logger,
	)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	recordingHandler := handler.NewRecording(recallService, logger)
	webhookHandler := handler.NewWebhook(recallService, cfg.Recall.WebhookSecret, logger)
	summaryHandler := handler.NewSummary(summaryService, meetingRepo, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, recordingHandler, webhookHandler, summaryHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
