package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/sleepmitra/internal/chatbot"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/logging"
	"github.com/blaisecz/sleepmitra/internal/metrics"
	"go.uber.org/zap"
)

type ChatService interface {
	// Reply answers message after the configured typing delay. The delay
	// is cut short only when ctx is cancelled.
	Reply(ctx context.Context, message string) (*domain.ChatResponse, error)
	// Suggestions lists the questions the knowledge base answers exactly.
	Suggestions() []string
}

type chatService struct {
	kb      *chatbot.KnowledgeBase
	delay   time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewChatService(kb *chatbot.KnowledgeBase, delay time.Duration, m *metrics.Metrics, logger *zap.Logger) ChatService {
	if m == nil {
		m = metrics.NewNop()
	}
	logger = logging.OrNop(logger)
	return &chatService{kb: kb, delay: delay, metrics: m, logger: logger}
}

func (s *chatService) Reply(ctx context.Context, message string) (*domain.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: empty message", domain.ErrInvalidInput)
	}

	reply := s.kb.Respond(message)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	s.metrics.ChatReplies.WithLabelValues(string(reply.Match)).Inc()
	s.logger.Debug("chat reply",
		zap.String("match", string(reply.Match)),
		zap.String("rule", reply.Rule),
	)

	return &domain.ChatResponse{
		Answer:      reply.Answer,
		Suggestions: reply.Suggestions,
		MatchedBy:   string(reply.Match),
	}, nil
}

func (s *chatService) Suggestions() []string {
	return s.kb.Questions()
}
