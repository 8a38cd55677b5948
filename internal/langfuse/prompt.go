package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type PromptSource string

const (
	SourceLangfuse PromptSource = "langfuse"
	SourceCache    PromptSource = "cache"
)

// Prompt is a system prompt together with where it came from.
type Prompt struct {
	Text    string
	Version int
	Source  PromptSource
}

// PromptLoaderConfig names a managed prompt and an optional local file
// that caches the last fetched version.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	CachePath   string

	Logger *zap.Logger
}

var (
	errNoPromptSource = errors.New("no prompt name or cache file configured")
	errNoSystemPrompt = errors.New("chat prompt has no system message")
)

// LoadPrompt fetches the named prompt from Langfuse and refreshes the cache
// file. When Langfuse is not configured or the fetch fails it reads the
// cache file instead.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if a := newAPI(cfg.BaseURL, cfg.PublicKey, cfg.SecretKey); a != nil && cfg.PromptName != "" {
		p, err := fetchPrompt(ctx, a, cfg.PromptName, cfg.PromptLabel)
		if err == nil {
			if err := writeCache(cfg.CachePath, p.Text); err != nil {
				logger.Warn("failed to cache prompt", zap.String("path", cfg.CachePath), zap.Error(err))
			}
			return p, nil
		}
		logger.Warn("prompt fetch failed", zap.String("prompt", cfg.PromptName), zap.Error(err))
	}

	if cfg.CachePath == "" {
		return Prompt{}, errNoPromptSource
	}
	data, err := os.ReadFile(cfg.CachePath)
	if err != nil {
		return Prompt{}, fmt.Errorf("read cached prompt: %w", err)
	}
	return Prompt{Text: string(data), Source: SourceCache}, nil
}

type promptResponse struct {
	Type    string          `json:"type"`
	Version int             `json:"version"`
	Prompt  json.RawMessage `json:"prompt"`
}

type chatMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

func fetchPrompt(ctx context.Context, a *api, name, label string) (Prompt, error) {
	query := url.Values{}
	if label != "" {
		query.Set("label", label)
	}

	var resp promptResponse
	if err := a.get(ctx, "/api/public/v2/prompts/"+url.PathEscape(name), query, &resp); err != nil {
		return Prompt{}, err
	}

	text, err := promptText(resp)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{Text: text, Version: resp.Version, Source: SourceLangfuse}, nil
}

// promptText returns a text prompt as is. For a chat prompt only the
// system messages are kept, since the insights call builds its own user
// message.
func promptText(resp promptResponse) (string, error) {
	switch resp.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(resp.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatMessage
		if err := json.Unmarshal(resp.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		var parts []string
		for _, m := range messages {
			if m.Type == "placeholder" || m.Role != "system" || strings.TrimSpace(m.Content) == "" {
				continue
			}
			parts = append(parts, m.Content)
		}
		if len(parts) == 0 {
			return "", errNoSystemPrompt
		}
		return strings.Join(parts, "\n\n"), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", resp.Type)
	}
}

func writeCache(path, text string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o600)
}
