package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/drought_response_system/internal/config"
	"github.com/sirupsen/logrus"
)

// popTimeout ограничивает одно ожидание BRPOP, чтобы воркер замечал отмену контекста
const popTimeout = 5 * time.Second

// Sink - получатель событий об оповещениях
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event AlertEvent, payload []byte) error
}

// Worker - структура для обработки очереди событий и доставки их получателям
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	sinks       []Sink
	maxRetries  int
	baseDelay   time.Duration
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config, sinks ...Sink) *Worker {
	maxRetries := cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		sinks:       sinks,
		maxRetries:  maxRetries,
		baseDelay:   cfg.WebhookBaseDelay,
	}
}

// Start запускает горутину для обработки очереди событий
func (w *Worker) Start(ctx context.Context) {
	if len(w.sinks) == 0 {
		w.logger.Warn("No alert sinks configured, alert worker is not started")
		return
	}
	w.logger.WithField("sinks", len(w.sinks)).Info("Starting alert worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert worker.")
				return
			default:
				if _, err := w.processNext(ctx, popTimeout); err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, выходим на следующей итерации
					}
					w.logger.WithError(err).Error("Failed to pop alert event from Redis")
					wait(ctx, w.baseDelay) // Ждем перед повторной попыткой
				}
			}
		}
	}()
}

// processNext забирает одно событие из очереди и доставляет его.
// Возвращает false, если за timeout событие не появилось
func (w *Worker) processNext(ctx context.Context, timeout time.Duration) (bool, error) {
	// result[0] - ключ, result[1] - значение
	result, err := w.redisClient.BRPop(ctx, timeout, alertQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	payload := result[1]
	var event AlertEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
		return true, nil
	}

	w.processEvent(ctx, event, []byte(payload))
	return true, nil
}

func (w *Worker) processEvent(ctx context.Context, event AlertEvent, payload []byte) {
	for _, sink := range w.sinks {
		w.deliver(ctx, sink, event, payload)
	}
}

// deliver повторяет доставку с экспоненциальной задержкой
func (w *Worker) deliver(ctx context.Context, sink Sink, event AlertEvent, payload []byte) bool {
	log := w.logger.WithFields(logrus.Fields{
		"sink":     sink.Name(),
		"event":    event.Event,
		"alert_id": event.Alert.ID,
	})
	log.Debug("Processing alert event...")

	delay := w.baseDelay
	for i := 0; i < w.maxRetries; i++ {
		err := sink.Deliver(ctx, event, payload)
		if err == nil {
			log.Info("Alert event delivered successfully.")
			return true
		}
		if i == w.maxRetries-1 {
			log.WithError(err).Warn("Failed to deliver alert event, no retries left")
			break
		}
		log.WithError(err).Warnf("Failed to deliver alert event. Retrying in %v. Retries left: %d", delay, w.maxRetries-1-i)
		if !wait(ctx, delay) {
			return false
		}
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver alert event after %d attempts.", w.maxRetries)
	return false
}

// wait спит d или до отмены ctx. false означает отмену
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
