// Seeds the configured database with the demo profile.
// Usage: go run scripts/seed/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/config"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/logging"
	"github.com/blaisecz/sleepmitra/internal/repository"
	"github.com/blaisecz/sleepmitra/internal/seed"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.NewDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&domain.Profile{}, &domain.StoreEntry{}); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	bank, err := assessment.LoadBank(cfg.QuestionBankPath)
	if err != nil {
		logger.Fatal("failed to load question bank", zap.Error(err))
	}

	profiles := repository.NewProfileRepository(db)
	state := repository.NewStateRepository(repository.NewKVRepository(db), logger)

	if err := seed.Run(context.Background(), profiles, state, bank, time.Now(), logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	fmt.Printf("\nDemo profile ID for testing:\n  %s\n", seed.DemoProfileID)
}
