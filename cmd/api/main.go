// SleepMitra API
//
// REST API behind the SleepMitra insomnia self-help app.
//
//	@title			SleepMitra API
//	@version		1.0
//	@description	Insomnia severity assessment, sleep diary, CBT-I therapy, FAQ chatbot and specialist booking.
//
//	@BasePath	/v1
//
//	@tag.name			profiles
//	@tag.description	Profile management endpoints
//
//	@tag.name			assessment
//	@tag.description	Insomnia Severity Index wizard
//
//	@tag.name			diary
//	@tag.description	Sleep diary endpoints
//
//	@tag.name			therapy
//	@tag.description	CBT-I therapy progress, plan and insights
//
//	@tag.name			booking
//	@tag.description	Appointment slots and doctor recommendations
//
//	@tag.name			chat
//	@tag.description	FAQ chatbot
//
//	@tag.name			analytics
//	@tag.description	Sample analytics dashboard
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/blaisecz/sleepmitra/internal/api"
	"github.com/blaisecz/sleepmitra/internal/api/handler"
	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/chatbot"
	"github.com/blaisecz/sleepmitra/internal/config"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/langfuse"
	"github.com/blaisecz/sleepmitra/internal/llm"
	"github.com/blaisecz/sleepmitra/internal/logging"
	"github.com/blaisecz/sleepmitra/internal/metrics"
	"github.com/blaisecz/sleepmitra/internal/repository"
	"github.com/blaisecz/sleepmitra/internal/seed"
	"github.com/blaisecz/sleepmitra/internal/service"
	"github.com/blaisecz/sleepmitra/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleepmitra-api", logger)
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}

	// Connect to database
	db, err := config.NewDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Profile{}, &domain.StoreEntry{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database migration completed")

	// Content
	bank, err := assessment.LoadBank(cfg.QuestionBankPath)
	if err != nil {
		logger.Fatal("failed to load question bank", zap.Error(err))
	}
	kb, err := chatbot.Load(cfg.ChatbotKnowledgePath)
	if err != nil {
		logger.Fatal("failed to load chatbot knowledge", zap.Error(err))
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	stateRepo := repository.NewStateRepository(repository.NewKVRepository(db), logger)

	if cfg.Seed {
		logger.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, profileRepo, stateRepo, bank, time.Now(), logger); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      logger,
	})

	// The insights prompt comes from Langfuse when configured, then the
	// local cache, then the built-in default.
	var systemPrompt string
	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.InsightsPromptName,
		PromptLabel: cfg.InsightsPromptLabel,
		CachePath:   cfg.InsightsPromptCached,
		Logger:      logger,
	})
	if err != nil {
		logger.Info("using built-in insights prompt", zap.String("reason", err.Error()))
	} else {
		logger.Info("insights prompt loaded", zap.String("source", string(prompt.Source)), zap.Int("version", prompt.Version))
		systemPrompt = prompt.Text
	}

	// Initialize OpenAI client (may be nil if not configured)
	var insightsLLM llm.InsightsLLM
	if openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel, systemPrompt); openaiClient != nil {
		insightsLLM = openaiClient
	} else {
		logger.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize services
	profileService := service.NewProfileService(profileRepo, cfg.DefaultTimezone)
	assessmentService := service.NewAssessmentService(bank, profileRepo, stateRepo, m, logger)
	diaryService := service.NewDiaryService(profileRepo, stateRepo, m, logger)
	therapyService := service.NewTherapyService(profileRepo, stateRepo, insightsLLM, langfuseClient, logger)
	bookingService := service.NewBookingService(profileRepo, stateRepo)
	chatService := service.NewChatService(kb, cfg.ChatReplyDelay, m, logger)
	analyticsService := service.NewAnalyticsService()

	// Setup router
	router := api.NewRouter(api.Handlers{
		Profile:    handler.NewProfileHandler(profileService),
		Assessment: handler.NewAssessmentHandler(assessmentService),
		Diary:      handler.NewDiaryHandler(diaryService),
		Therapy:    handler.NewTherapyHandler(therapyService, langfuseClient, logger),
		Booking:    handler.NewBookingHandler(bookingService),
		Chat:       handler.NewChatHandler(chatService),
		Analytics:  handler.NewAnalyticsHandler(analyticsService),
	}, logger, m, reg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	langfuseClient.Close()
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
