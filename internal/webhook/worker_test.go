package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/drought_response_system/internal/config"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	mu       sync.Mutex
	failures int
	events   []AlertEvent
	calls    int
}

func (s *fakeSink) Name() string { return "fake" }

func (s *fakeSink) Deliver(_ context.Context, event AlertEvent, _ []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failures {
		return errors.New("sink unavailable")
	}
	s.events = append(s.events, event)
	return nil
}

func setupTestWorker(t *testing.T, sinks ...Sink) (*miniredis.Miniredis, *redis.Client, *Worker) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = redisClient.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return mr, redisClient, NewWorker(redisClient, logger, cfg, sinks...)
}

func testEvent() AlertEvent {
	return AlertEvent{
		Event: EventAlertCreated,
		Alert: models.Alert{
			ID:        uuid.New(),
			VillageID: uuid.New(),
			Type:      models.AlertWater,
			Severity:  models.SeverityHigh,
			Message:   "Water point borehole marked non-functional.",
			CreatedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		},
		Timestamp: time.Date(2025, 3, 10, 12, 0, 1, 0, time.UTC),
	}
}

func TestWorker_DeliversPublishedEvent(t *testing.T) {
	// Подготовка
	sink := &fakeSink{}
	_, redisClient, worker := setupTestWorker(t, sink)
	publisher := NewRedisAlertPublisher(redisClient)
	event := testEvent()
	ctx := context.Background()

	// Действие
	require.NoError(t, publisher.Publish(ctx, event))
	processed, err := worker.processNext(ctx, time.Second)

	// Проверки
	require.NoError(t, err)
	assert.True(t, processed)
	require.Len(t, sink.events, 1)
	assert.Equal(t, event.Alert.ID, sink.events[0].Alert.ID)
	assert.Equal(t, EventAlertCreated, sink.events[0].Event)
	assert.True(t, event.Timestamp.Equal(sink.events[0].Timestamp))
}

func TestWorker_EmptyQueue(t *testing.T) {
	sink := &fakeSink{}
	_, _, worker := setupTestWorker(t, sink)

	processed, err := worker.processNext(context.Background(), time.Second)

	require.NoError(t, err)
	assert.False(t, processed)
	assert.Zero(t, sink.calls)
}

func TestWorker_SkipsMalformedPayload(t *testing.T) {
	sink := &fakeSink{}
	mr, _, worker := setupTestWorker(t, sink)
	_, err := mr.Lpush(alertQueueKey, "not json")
	require.NoError(t, err)

	processed, err := worker.processNext(context.Background(), time.Second)

	require.NoError(t, err)
	assert.True(t, processed)
	assert.Zero(t, sink.calls)
}

func TestWorker_RetriesWithBackoff(t *testing.T) {
	sink := &fakeSink{failures: 2}
	_, _, worker := setupTestWorker(t, sink)

	ok := worker.deliver(context.Background(), sink, testEvent(), nil)

	assert.True(t, ok)
	assert.Equal(t, 3, sink.calls)
	assert.Len(t, sink.events, 1)
}

func TestWorker_GivesUpAfterMaxRetries(t *testing.T) {
	sink := &fakeSink{failures: 10}
	_, _, worker := setupTestWorker(t, sink)

	ok := worker.deliver(context.Background(), sink, testEvent(), nil)

	assert.False(t, ok)
	assert.Equal(t, 3, sink.calls)
}

func TestWorker_StopsRetryingOnCancel(t *testing.T) {
	sink := &fakeSink{failures: 10}
	_, _, worker := setupTestWorker(t, sink)
	worker.baseDelay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok := worker.deliver(ctx, sink, testEvent(), nil)

	assert.False(t, ok)
	assert.Equal(t, 1, sink.calls)
}

func TestHTTPSink_SignsPayload(t *testing.T) {
	// Подготовка
	payload := []byte(`{"event":"alert.created"}`)
	var gotSignature, gotEvent string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotEvent = r.Header.Get("X-Webhook-Event")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	sink := NewHTTPSink(server.URL, "secret", time.Second)

	// Действие
	err := sink.Deliver(context.Background(), testEvent(), payload)

	// Проверки
	require.NoError(t, err)
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write(payload)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
	assert.Equal(t, EventAlertCreated, gotEvent)
	assert.Equal(t, payload, gotBody)
}

func TestHTTPSink_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	sink := NewHTTPSink(server.URL, "", time.Second)

	err := sink.Deliver(context.Background(), testEvent(), []byte(`{}`))

	assert.ErrorContains(t, err, "status code 502")
}

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestTelegramSink_SendsFormattedAlert(t *testing.T) {
	sender := &fakeSender{}
	sink := &TelegramSink{bot: sender, chatID: 42}
	event := testEvent()

	err := sink.Deliver(context.Background(), event, nil)

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Contains(t, msg.Text, "🚨 New alert [HIGH] water")
	assert.Contains(t, msg.Text, event.Alert.Message)
	assert.Contains(t, msg.Text, event.Alert.VillageID.String())
}

func TestTelegramSink_SendError(t *testing.T) {
	sink := &TelegramSink{bot: &fakeSender{err: errors.New("forbidden")}, chatID: 42}

	err := sink.Deliver(context.Background(), testEvent(), nil)

	assert.ErrorContains(t, err, "forbidden")
}

func TestFormatAlert_Resolved(t *testing.T) {
	event := testEvent()
	event.Event = EventAlertResolved

	text := FormatAlert(event)

	assert.Contains(t, text, "✅ Alert resolved [HIGH] water")
	assert.Contains(t, text, "2025-03-10 12:00:00")
}
