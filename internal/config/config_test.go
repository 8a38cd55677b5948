package config

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("CFG_DELAY", "250ms")
	if got := getDuration("CFG_DELAY", time.Second); got != 250*time.Millisecond {
		t.Fatalf("getDuration returned %v, want 250ms", got)
	}

	t.Setenv("CFG_DELAY", "soon")
	if got := getDuration("CFG_DELAY", time.Second); got != time.Second {
		t.Fatalf("getDuration returned %v, want fallback", got)
	}

	t.Setenv("CFG_DELAY", "-1s")
	if got := getDuration("CFG_DELAY", time.Second); got != time.Second {
		t.Fatalf("negative duration not rejected: %v", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	for _, key := range []string{"PORT", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "SEED", "CHAT_REPLY_DELAY", "OPENAI_API_KEY", "OPENAI_INSIGHTS_MODEL", "DEFAULT_TIMEZONE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL != "sqlite://sleepmitra.db" || cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.ChatReplyDelay != 1500*time.Millisecond {
		t.Fatalf("unexpected chat delay default: %v", cfg.ChatReplyDelay)
	}
	if cfg.DefaultTimezone != "Asia/Kolkata" {
		t.Fatalf("unexpected timezone default: %q", cfg.DefaultTimezone)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("CHAT_REPLY_DELAY", "0s")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_INSIGHTS_MODEL", "model")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.ChatReplyDelay != 0 {
		t.Fatalf("chat delay override missing: %v", cfg.ChatReplyDelay)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAIInsightsModel != "model" {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
}

func TestNewDatabase_SQLiteMemory(t *testing.T) {
	cfg := &Config{DatabaseURL: "sqlite://:memory:", LogLevel: "info"}

	db, err := NewDatabase(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	if name := db.Dialector.Name(); name != "sqlite" {
		t.Fatalf("dialect = %q, want sqlite", name)
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite("", nil); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLangfuseEnabled(t *testing.T) {
	cfg := &Config{LangfuseBaseURL: "http://localhost:3000", LangfusePublicKey: "pk"}
	if cfg.LangfuseEnabled() {
		t.Fatal("expected disabled without secret key")
	}
	cfg.LangfuseSecretKey = "sk"
	if !cfg.LangfuseEnabled() {
		t.Fatal("expected enabled with all credentials")
	}
}

func TestGetRatio(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"", 1},
		{"0.25", 0.25},
		{"0", 0},
		{"1.5", 1},
		{"-0.1", 1},
		{"half", 1},
	}
	for _, tt := range tests {
		t.Setenv("CFG_RATIO", tt.value)
		if got := getRatio("CFG_RATIO", 1); got != tt.want {
			t.Errorf("getRatio(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
