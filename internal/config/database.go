package config

import (
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"

	"github.com/blaisecz/sleepmitra/internal/logging"
)

const sqlitePrefix = "sqlite://"

// NewDatabase opens PostgreSQL for postgres URLs and SQLite (pure Go
// driver) for "sqlite://<path>" URLs.
func NewDatabase(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{
		Logger: logging.NewGormLogger(log, logLevel),
	}

	var (
		db  *gorm.DB
		err error
	)
	if path, ok := strings.CutPrefix(cfg.DatabaseURL, sqlitePrefix); ok {
		db, err = OpenSQLite(path, gormCfg)
	} else {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	}
	if err != nil {
		return nil, err
	}

	log.Info("database connection established", zap.String("dialect", db.Dialector.Name()))
	return db, nil
}

// OpenSQLite opens a SQLite database at path. ":memory:" databases are
// limited to one connection so every query sees the same data.
func OpenSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	if gormCfg == nil {
		gormCfg = &gorm.Config{Logger: logging.NewGormLogger(nil, logger.Silent)}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	if path == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
	}

	db, err := gorm.Open(&sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, gormCfg)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open gorm sqlite: %w", err)
	}
	return db, nil
}
