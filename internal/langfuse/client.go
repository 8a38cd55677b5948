// Package langfuse is a small client for the Langfuse public API. It sends
// traces and scores through the batch ingestion endpoint and loads managed
// prompts. Without credentials every call is a no-op.
package langfuse

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ingestionPath = "/api/public/ingestion"
	queueSize     = 256
	maxBatchSize  = 20
	sendTimeout   = 5 * time.Second
)

// Client records LLM traces and user feedback.
type Client interface {
	IsEnabled() bool
	// CreateTrace queues a trace and returns its ID without waiting for
	// delivery.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore queues a score for an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// Flush blocks until every queued event has been sent or dropped.
	Flush()
	// Close sends what is queued and stops the worker. Events created
	// afterwards are dropped.
	Close()
}

type TraceInput struct {
	ID       string // generated when empty
	UserID   string // profile ID
	Name     string // e.g. "therapy-insights"
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

type ScoreInput struct {
	TraceID string
	Name    string // e.g. "user_rating"
	Value   float64
	Comment string
}

type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
	Logger      *zap.Logger
}

type client struct {
	api         *api
	environment string
	logger      *zap.Logger
	now         func() time.Time

	queue   chan ingestionEvent
	pending sync.WaitGroup
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewClient returns a client that batches events on a background worker.
// A client without full credentials is disabled.
func NewClient(cfg Config) Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("langfuse")

	c := &client{
		api:         newAPI(cfg.BaseURL, cfg.PublicKey, cfg.SecretKey),
		environment: cfg.Environment,
		logger:      logger,
		now:         time.Now,
	}
	if c.api == nil {
		logger.Info("disabled", zap.Bool("base_url_set", cfg.BaseURL != ""), zap.Bool("keys_set", cfg.PublicKey != "" && cfg.SecretKey != ""))
		return c
	}

	c.queue = make(chan ingestionEvent, queueSize)
	c.done = make(chan struct{})
	go c.run()
	logger.Info("enabled", zap.String("base_url", c.api.baseURL), zap.String("env", cfg.Environment))
	return c
}

func (c *client) IsEnabled() bool {
	return c.api != nil
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.IsEnabled() {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.NewString()
	}

	metadata := make(map[string]any, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	if c.environment != "" {
		metadata["environment"] = c.environment
	}

	c.enqueue(c.event("trace-create", traceBody{
		ID:       traceID,
		Name:     in.Name,
		UserID:   in.UserID,
		Input:    in.Input,
		Output:   in.Output,
		Tags:     in.Tags,
		Metadata: metadata,
	}))
	return traceID, nil
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.IsEnabled() {
		return nil
	}

	c.enqueue(c.event("score-create", scoreBody{
		ID:      uuid.NewString(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	}))
	return nil
}

func (c *client) Flush() {
	c.pending.Wait()
}

func (c *client) Close() {
	if !c.IsEnabled() {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.queue)
	c.mu.Unlock()

	<-c.done
}

func (c *client) event(kind string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.NewString(),
		Type:      kind,
		Timestamp: c.now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}
}

// enqueue never blocks the request path; a full queue drops the event.
func (c *client) enqueue(ev ingestionEvent) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		c.logger.Warn("client closed, event dropped", zap.String("event", ev.Type))
		return
	}

	c.pending.Add(1)
	select {
	case c.queue <- ev:
	default:
		c.pending.Done()
		c.logger.Warn("queue full, event dropped", zap.String("event", ev.Type))
	}
}

func (c *client) run() {
	defer close(c.done)
	for ev := range c.queue {
		batch := []ingestionEvent{ev}
	collect:
		for len(batch) < maxBatchSize {
			select {
			case next, ok := <-c.queue:
				if !ok {
					break collect
				}
				batch = append(batch, next)
			default:
				break collect
			}
		}
		c.send(batch)
	}
}

func (c *client) send(batch []ingestionEvent) {
	defer c.pending.Add(-len(batch))

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	var resp ingestionResponse
	if err := c.api.post(ctx, ingestionPath, batchPayload{Batch: batch}, &resp); err != nil {
		c.logger.Warn("batch send failed", zap.Int("events", len(batch)), zap.Error(err))
		return
	}
	for _, e := range resp.Errors {
		c.logger.Warn("event rejected", zap.String("id", e.ID), zap.Int("status", e.Status), zap.String("message", e.Message))
	}
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

// ingestionResponse is the 207 multi-status body of the ingestion API.
type ingestionResponse struct {
	Errors []struct {
		ID      string `json:"id"`
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"errors"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
