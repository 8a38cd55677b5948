package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaisecz/sleepmitra/internal/chatbot"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/metrics"
)

func newChatService(t *testing.T, delay time.Duration) (ChatService, *metrics.Metrics) {
	t.Helper()
	kb, err := chatbot.Default()
	require.NoError(t, err)
	m := metrics.New(prometheus.NewRegistry())
	return NewChatService(kb, delay, m, nil), m
}

func TestChatService_Reply(t *testing.T) {
	svc, m := newChatService(t, 0)

	resp, err := svc.Reply(context.Background(), "CBT-I क्या है?")
	require.NoError(t, err)
	assert.Equal(t, "exact", resp.MatchedBy)
	assert.NotEmpty(t, resp.Answer)

	resp, err = svc.Reply(context.Background(), "मौसम कैसा है")
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.MatchedBy)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChatReplies.WithLabelValues("exact")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChatReplies.WithLabelValues("fallback")))
}

func TestChatService_Reply_Empty(t *testing.T) {
	svc, _ := newChatService(t, 0)

	_, err := svc.Reply(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChatService_Reply_CancelledDuringDelay(t *testing.T) {
	svc, m := newChatService(t, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Reply(ctx, "CBT-I क्या है?")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, testutil.ToFloat64(m.ChatReplies.WithLabelValues("exact")))
}

func TestChatService_Reply_WaitsForDelay(t *testing.T) {
	svc, _ := newChatService(t, 20*time.Millisecond)

	start := time.Now()
	_, err := svc.Reply(context.Background(), "CBT-I क्या है?")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestChatService_Suggestions(t *testing.T) {
	svc, _ := newChatService(t, 0)

	suggestions := svc.Suggestions()
	assert.Contains(t, suggestions, "नींद की गुणवत्ता कैसे सुधारें?")
	assert.Contains(t, suggestions, "CBT-I क्या है?")
}
