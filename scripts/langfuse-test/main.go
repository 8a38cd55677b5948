// Sends a sample therapy-insights trace and rating to Langfuse to check
// the credentials in the environment.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/blaisecz/sleepmitra/internal/config"
	"github.com/blaisecz/sleepmitra/internal/langfuse"
	"github.com/blaisecz/sleepmitra/internal/logging"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New("debug", "console")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	fmt.Println("=== Langfuse connection check ===")
	fmt.Printf("Base URL:    %s\n", cfg.LangfuseBaseURL)
	fmt.Printf("Public key:  %s\n", maskKey(cfg.LangfusePublicKey))
	fmt.Printf("Secret key:  %s\n", maskKey(cfg.LangfuseSecretKey))
	fmt.Printf("Environment: %s\n\n", cfg.LangfuseEnv)

	client := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      logger,
	})
	if !client.IsEnabled() {
		logger.Fatal("langfuse client is disabled, check LANGFUSE_* variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "connection-check",
		Name:   "therapy-insights",
		Input: map[string]any{
			"severity":   "moderate",
			"sent_at":    time.Now().Format(time.RFC3339),
			"diary_days": 7,
		},
		Output: map[string]any{"summary": "connection check"},
		Tags:   []string{"check", "manual"},
	})
	if err != nil {
		logger.Fatal("failed to create trace", zap.Error(err))
	}

	if err := client.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    "user_rating",
		Value:   5,
		Comment: "connection check",
	}); err != nil {
		logger.Fatal("failed to create score", zap.Error(err))
	}

	client.Close()

	fmt.Println("Trace and score sent.")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.LangfuseBaseURL, traceID)
}

func maskKey(key string) string {
	switch {
	case key == "":
		return "(empty)"
	case len(key) < 8:
		return "***"
	default:
		return key[:8] + "..."
	}
}
