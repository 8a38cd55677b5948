package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	LogFormat   string
	Seed        bool

	// Content overrides; empty means the embedded defaults
	QuestionBankPath     string
	ChatbotKnowledgePath string

	ChatReplyDelay  time.Duration
	DefaultTimezone string

	// OpenAI configuration
	OpenAIAPIKey         string
	OpenAIInsightsModel  string
	InsightsPromptName   string
	InsightsPromptLabel  string
	InsightsPromptCached string

	// Langfuse configuration
	LangfuseBaseURL   string
	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseEnv       string

	// Fraction of new traces that are sampled, 0 to 1
	TraceSampleRatio float64
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "sqlite://sleepmitra.db"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		Seed:        getEnv("SEED", "false") == "true",

		QuestionBankPath:     getEnv("QUESTION_BANK_PATH", ""),
		ChatbotKnowledgePath: getEnv("CHATBOT_KNOWLEDGE_PATH", ""),

		ChatReplyDelay:  getDuration("CHAT_REPLY_DELAY", 1500*time.Millisecond),
		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "Asia/Kolkata"),

		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIInsightsModel:  getEnv("OPENAI_INSIGHTS_MODEL", "gpt-4o-mini"),
		InsightsPromptName:   getEnv("INSIGHTS_PROMPT_NAME", ""),
		InsightsPromptLabel:  getEnv("INSIGHTS_PROMPT_LABEL", "production"),
		InsightsPromptCached: getEnv("INSIGHTS_PROMPT_PATH", ""),

		LangfuseBaseURL:   getEnv("LANGFUSE_BASE_URL", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseEnv:       getEnv("LANGFUSE_ENV", "development"),

		TraceSampleRatio: getRatio("TRACE_SAMPLE_RATIO", 1),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a Go duration; invalid or negative values fall back
// to the default.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d < 0 {
		return defaultValue
	}
	return d
}

// getRatio parses a float in [0, 1]; anything else falls back to the
// default.
func getRatio(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil || v < 0 || v > 1 {
		return defaultValue
	}
	return v
}

// LangfuseEnabled reports whether all Langfuse credentials are set.
func (c *Config) LangfuseEnabled() bool {
	return c.LangfuseBaseURL != "" && c.LangfusePublicKey != "" && c.LangfuseSecretKey != ""
}
