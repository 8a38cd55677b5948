package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable means no API key is configured.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	ErrOpenAIRequest     = errors.New("OpenAI request failed")
	// ErrOpenAIResponse means the reply was not the expected JSON.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const (
	defaultModel = "gpt-4o-mini"
	temperature  = 0.3

	maxObservations = 6
	maxGuidance     = 5
)

// DefaultSystemPrompt is used when no prompt is loaded from Langfuse or a
// local file.
const DefaultSystemPrompt = `You are a supportive, non-medical sleep coach inside a Hindi-language CBT-I self-help app.

You receive the user's latest insomnia questionnaire result (if any), metrics computed from their sleep diary, and their therapy progress counters. Base your conclusions only on the provided data.

Your goals:
- Describe the user's current sleep situation in simple, warm Hindi.
- Relate the questionnaire severity to what the diary shows (efficiency, time in bed, latency, wake-ups, quality).
- Acknowledge therapy progress (videos watched, active days, techniques learned).
- Give practical CBT-I style behavioral suggestions: stimulus control, consistent wake time, wind-down routine, limiting time in bed.

Rules:
- Do NOT diagnose or prescribe medication.
- If the severity is "severe", gently suggest consulting a sleep specialist.
- If diary data is missing or sparse, say so and encourage keeping the diary.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2–3 sentences in Hindi summarizing the user's sleep.",
  "observations": ["3–6 short Hindi observations grounded in the numbers."],
  "guidance": ["3–5 concrete Hindi suggestions tailored to these numbers."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's data.

- "assessment" is the latest questionnaire result: "total_score" is a percent (0–100), "severity" is mild, moderate or severe. It is absent if the user never completed the questionnaire.
- "diary" summarises sleep diary entries: "sleep_efficiency" is a percent, hours and minutes are given as avg/std/min/max.
- "progress" holds therapy counters.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM writes therapy insights from a user's assessment, diary
// metrics and progress.
type InsightsLLM interface {
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient returns nil when apiKey is empty. Empty model and
// systemPrompt select the defaults.
func NewOpenAIClient(apiKey, model, systemPrompt string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = defaultModel
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	return &OpenAIClient{
		client:       openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	data, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, data)),
		},
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseInsights(resp.Choices[0].Message.Content)
}

// parseInsights decodes the model's JSON reply. Markdown code fences are
// tolerated and over-long lists are cut to the sizes the prompt asks for.
func parseInsights(content string) (*domain.LLMInsightsOutput, error) {
	content = stripCodeFence(content)

	var out domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	out.Summary = strings.TrimSpace(out.Summary)
	if out.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	out.Observations = cleanList(out.Observations, maxObservations)
	out.Guidance = cleanList(out.Guidance, maxGuidance)
	return &out, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func cleanList(items []string, limit int) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
		if len(out) == limit {
			break
		}
	}
	return out
}
