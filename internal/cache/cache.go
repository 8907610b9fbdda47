// Package cache держит в памяти зеркало пяти коллекций хранилища записей
// и текущую сессию. Все чтения и записи остальной системы идут через Cache.
//
// Запись в зеркало происходит строго после подтверждения хранилищем.
// После каждого видимого изменения подписчики получают ровно одно
// уведомление, синхронно и до возврата результата вызывающему.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/drought_response_system/internal/metrics"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/shenikar/drought_response_system/internal/notifier"
	"github.com/shenikar/drought_response_system/internal/recordstore"
	"github.com/shenikar/drought_response_system/internal/rules"
	"github.com/shenikar/drought_response_system/internal/views"
)

// DefaultTimeout ограничивает каждый вызов хранилища
const DefaultTimeout = 10 * time.Second

// DerivedUpdate - результат обновления, за которым может последовать порожденное оповещение.
// AlertErr - предупреждение: сбой создания оповещения или обновления списка
// оповещений не отменяет основное обновление.
type DerivedUpdate[T any] struct {
	Record   T
	Alert    *models.Alert
	AlertErr error
}

type (
	WaterPointUpdate = DerivedUpdate[models.WaterPoint]
	LivestockUpdate  = DerivedUpdate[models.Livestock]
)

type state struct {
	villages      []models.Village
	waterPoints   []models.WaterPoint
	livestock     []models.Livestock
	ngoActivities []models.NGOActivity
	alerts        []models.Alert
	session       *models.Session
	syncedAt      time.Time
}

type Cache struct {
	store    recordstore.Store
	auth     recordstore.Authenticator
	notifier *notifier.Notifier
	logger   *logrus.Logger
	metrics  *metrics.Recorder
	timeout  time.Duration
	now      func() time.Time

	waterPointRule rules.Rule[models.WaterPoint]
	livestockRule  rules.Rule[models.Livestock]

	// writeMu пропускает одну мутацию за раз, mu защищает только само зеркало
	writeMu sync.Mutex
	mu      sync.RWMutex
	state   state
}

type Option func(*Cache)

func WithLogger(logger *logrus.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(c *Cache) { c.metrics = m }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Cache) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithNotifier(n *notifier.Notifier) Option {
	return func(c *Cache) { c.notifier = n }
}

func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func WithWaterPointRule(rule rules.Rule[models.WaterPoint]) Option {
	return func(c *Cache) { c.waterPointRule = rule }
}

func WithLivestockRule(rule rules.Rule[models.Livestock]) Option {
	return func(c *Cache) { c.livestockRule = rule }
}

// New создает пустой кэш. Данные появляются после LoadAll
func New(store recordstore.Store, auth recordstore.Authenticator, opts ...Option) *Cache {
	c := &Cache{
		store:          store,
		auth:           auth,
		notifier:       notifier.New(),
		logger:         logrus.StandardLogger(),
		timeout:        DefaultTimeout,
		now:            time.Now,
		waterPointRule: rules.WaterPointDegradation,
		livestockRule:  rules.MortalityThreshold(rules.DefaultMortalityThreshold),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange подписывает fn на изменения кэша. Колбэк вызывается синхронно
// внутри мутации, поэтому он может читать кэш, но не должен вызывать
// мутирующие методы напрямую (только из отдельной горутины).
func (c *Cache) OnChange(fn func()) (unsubscribe func()) {
	return c.notifier.Subscribe(fn)
}

// LoadAll загружает все пять коллекций параллельно и заменяет зеркало целиком.
// Если не удалась хотя бы одна загрузка, зеркало не меняется.
func (c *Cache) LoadAll(ctx context.Context) error {
	const op = "load_all"
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	log := c.logger.WithFields(logrus.Fields{
		"component": "cache",
		"method":    "LoadAll",
	})
	log.Debug("Loading all collections")

	var next state
	errs := make([]error, len(models.Kinds))

	var g errgroup.Group
	g.Go(func() (err error) {
		next.villages, err = callStore(ctx, c, "list_villages", c.store.ListVillages)
		errs[0] = err
		return err
	})
	g.Go(func() (err error) {
		next.waterPoints, err = callStore(ctx, c, "list_water_points", c.store.ListWaterPoints)
		errs[1] = err
		return err
	})
	g.Go(func() (err error) {
		next.livestock, err = callStore(ctx, c, "list_livestock", c.store.ListLivestock)
		errs[2] = err
		return err
	})
	g.Go(func() (err error) {
		next.ngoActivities, err = callStore(ctx, c, "list_ngo_activities", c.store.ListNGOActivities)
		errs[3] = err
		return err
	})
	g.Go(func() (err error) {
		next.alerts, err = callStore(ctx, c, "list_alerts", c.store.ListAlerts)
		errs[4] = err
		return err
	})

	if err := g.Wait(); err != nil {
		var failed []models.Kind
		var failures []error
		for i, err := range errs {
			if err != nil {
				failed = append(failed, models.Kinds[i])
				failures = append(failures, fmt.Errorf("%s: %w", models.Kinds[i], err))
			}
		}
		fetchErr := newFetchError(failed, failures, len(models.Kinds))
		log.WithError(fetchErr).Error("Failed to load collections, keeping previous mirror")
		c.metrics.Operation(op, "error")
		return fetchErr
	}

	c.mu.Lock()
	c.state.villages = next.villages
	c.state.waterPoints = next.waterPoints
	c.state.livestock = next.livestock
	c.state.ngoActivities = next.ngoActivities
	c.state.alerts = next.alerts
	c.state.syncedAt = c.now()
	c.mu.Unlock()

	log.WithFields(logrus.Fields{
		"villages":       len(next.villages),
		"water_points":   len(next.waterPoints),
		"livestock":      len(next.livestock),
		"ngo_activities": len(next.ngoActivities),
		"alerts":         len(next.alerts),
	}).Info("All collections loaded")
	c.metrics.Operation(op, "ok")
	c.broadcast()
	return nil
}

// RefreshAlerts перечитывает коллекцию оповещений целиком
func (c *Cache) RefreshAlerts(ctx context.Context) error {
	const op = "refresh_alerts"
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.refreshAlerts(ctx); err != nil {
		c.logger.WithField("method", "RefreshAlerts").WithError(err).Error("Failed to refresh alerts")
		c.metrics.Operation(op, "error")
		return err
	}
	c.metrics.Operation(op, "ok")
	c.broadcast()
	return nil
}

func (c *Cache) CreateVillage(ctx context.Context, village models.Village) (models.Village, error) {
	return create(ctx, c, "create_village", village, c.store.CreateVillage,
		func(s *state, v models.Village) { s.villages = append(s.villages, v) })
}

func (c *Cache) CreateWaterPoint(ctx context.Context, point models.WaterPoint) (models.WaterPoint, error) {
	return create(ctx, c, "create_water_point", point, c.store.CreateWaterPoint,
		func(s *state, v models.WaterPoint) { s.waterPoints = append(s.waterPoints, v) })
}

func (c *Cache) CreateLivestock(ctx context.Context, herd models.Livestock) (models.Livestock, error) {
	return create(ctx, c, "create_livestock", herd, c.store.CreateLivestock,
		func(s *state, v models.Livestock) { s.livestock = append(s.livestock, v) })
}

func (c *Cache) CreateNGOActivity(ctx context.Context, activity models.NGOActivity) (models.NGOActivity, error) {
	return create(ctx, c, "create_ngo_activity", activity, c.store.CreateNGOActivity,
		func(s *state, v models.NGOActivity) { s.ngoActivities = append(s.ngoActivities, v) })
}

func (c *Cache) CreateAlert(ctx context.Context, alert models.Alert) (models.Alert, error) {
	return create(ctx, c, "create_alert", alert, c.store.CreateAlert,
		func(s *state, v models.Alert) { s.alerts = append(s.alerts, v) })
}

// UpdateWaterPointStatus записывает статус точки, затем применяет правило деградации.
// Подписчики получают уведомление после обновления точки и еще одно после
// обновления списка оповещений, если правило сработало.
func (c *Cache) UpdateWaterPointStatus(ctx context.Context, id uuid.UUID, status string, isFunctional bool) (WaterPointUpdate, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	var prev *models.WaterPoint
	if wp, ok := c.WaterPoint(id); ok {
		prev = &wp
	}
	return updateWithRule(ctx, c, "update_water_point_status", prev,
		func(ctx context.Context) (models.WaterPoint, error) {
			return c.store.UpdateWaterPointStatus(ctx, id, status, isFunctional)
		},
		func(s *state, v models.WaterPoint) { s.waterPoints = upsert(s.waterPoints, v, waterPointID) },
		c.waterPointRule)
}

// UpdateLivestock обновляет численность и смертность стада и применяет правило порога смертности
func (c *Cache) UpdateLivestock(ctx context.Context, id uuid.UUID, totalCount int, mortalityRate float64) (LivestockUpdate, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	var prev *models.Livestock
	if herd, ok := c.LivestockRecord(id); ok {
		prev = &herd
	}
	return updateWithRule(ctx, c, "update_livestock", prev,
		func(ctx context.Context) (models.Livestock, error) {
			return c.store.UpdateLivestock(ctx, id, totalCount, mortalityRate)
		},
		func(s *state, v models.Livestock) { s.livestock = upsert(s.livestock, v, livestockID) },
		c.livestockRule)
}

func (c *Cache) UpdateNGOActivityStatus(ctx context.Context, id uuid.UUID, status models.ActivityStatus) (models.NGOActivity, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return write(ctx, c, "update_ngo_activity_status",
		func(ctx context.Context) (models.NGOActivity, error) {
			return c.store.UpdateNGOActivityStatus(ctx, id, status)
		},
		func(s *state, v models.NGOActivity) { s.ngoActivities = upsert(s.ngoActivities, v, ngoActivityID) })
}

// ResolveAlert помечает оповещение решенным. Оповещение должно быть в зеркале.
// Повторный вызов для уже решенного оповещения ничего не меняет: без запроса
// к хранилищу, без уведомления и без ошибки.
func (c *Cache) ResolveAlert(ctx context.Context, id uuid.UUID) (models.Alert, error) {
	const op = "resolve_alert"
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	log := c.logger.WithFields(logrus.Fields{
		"component": "cache",
		"method":    "ResolveAlert",
		"alert_id":  id,
	})

	current, ok := c.Alert(id)
	if !ok {
		err := &WriteError{Kind: WriteNotFound, Op: op, Err: fmt.Errorf("alert %s is not in the local mirror", id)}
		log.WithError(err).Warn("Attempted to resolve an unknown alert")
		c.metrics.Operation(op, "error")
		return models.Alert{}, err
	}
	if current.IsResolved {
		log.Debug("Alert already resolved")
		c.metrics.Operation(op, "noop")
		return current, nil
	}

	if _, err := callStore(ctx, c, op, func(ctx context.Context) (models.Alert, error) {
		return c.store.ResolveAlert(ctx, id)
	}); err != nil {
		writeErr := newWriteError(op, err)
		log.WithError(writeErr).Error("Failed to resolve alert in record store")
		c.metrics.Operation(op, "error")
		return models.Alert{}, writeErr
	}

	c.mu.Lock()
	for i := range c.state.alerts {
		if c.state.alerts[i].ID == id {
			c.state.alerts[i].IsResolved = true
			current = c.state.alerts[i]
		}
	}
	c.mu.Unlock()

	log.Info("Alert resolved")
	c.metrics.Operation(op, "ok")
	c.broadcast()
	return current, nil
}

// Authenticate проверяет учетные данные и запоминает сессию.
// При отказе текущая сессия остается прежней.
func (c *Cache) Authenticate(ctx context.Context, username, password string) (models.Session, error) {
	const op = "authenticate"
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	log := c.logger.WithFields(logrus.Fields{
		"component": "cache",
		"method":    "Authenticate",
		"username":  username,
	})

	user, err := callStore(ctx, c, op, func(ctx context.Context) (models.User, error) {
		return c.auth.Authenticate(ctx, username, password)
	})
	if err != nil {
		authErr := &AuthError{Kind: AuthUnavailable, Err: err}
		if errors.Is(err, recordstore.ErrInvalidCredentials) {
			authErr.Kind = AuthInvalidCredentials
		}
		log.WithError(authErr).Warn("Authentication failed")
		c.metrics.Operation(op, "error")
		return models.Session{}, authErr
	}

	session := models.Session{User: user, AuthenticatedAt: c.now()}
	c.mu.Lock()
	c.state.session = &session
	c.mu.Unlock()

	log.WithField("role", user.Role).Info("User authenticated")
	c.metrics.Operation(op, "ok")
	c.broadcast()
	return session, nil
}

// ClearSession сбрасывает текущую личность
func (c *Cache) ClearSession() {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	c.state.session = nil
	c.mu.Unlock()

	c.metrics.Operation("clear_session", "ok")
	c.broadcast()
}

func (c *Cache) Session() (models.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state.session == nil {
		return models.Session{}, false
	}
	return *c.state.session, true
}

// SyncedAt возвращает время последнего успешного LoadAll
func (c *Cache) SyncedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.syncedAt
}

// refreshAlerts заменяет зеркало оповещений. Вызывающий держит writeMu
func (c *Cache) refreshAlerts(ctx context.Context) error {
	alerts, err := callStore(ctx, c, "list_alerts", c.store.ListAlerts)
	if err != nil {
		return newFetchError([]models.Kind{models.KindAlert}, []error{err}, 1)
	}
	c.mu.Lock()
	c.state.alerts = alerts
	c.mu.Unlock()
	return nil
}

// deriveAlert создает порожденное оповещение и перечитывает оповещения независимо
// от исхода создания: хранилище могло создать и свои. Вызывающий держит writeMu.
func (c *Cache) deriveAlert(ctx context.Context, op string, intent rules.Intent) (*models.Alert, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component":  "cache",
		"operation":  op,
		"village_id": intent.VillageID,
		"alert_type": intent.Type,
	})

	var warnings []error
	created, createErr := callStore(ctx, c, "create_alert", func(ctx context.Context) (models.Alert, error) {
		return c.store.CreateAlert(ctx, intent.Alert())
	})
	if createErr != nil {
		writeErr := newWriteError("create_alert", createErr)
		warnings = append(warnings, writeErr)
		log.WithError(writeErr).Warn("Failed to create derived alert")
		c.metrics.Operation("derive_alert", "error")
	} else {
		log.WithField("alert_id", created.ID).Info("Derived alert created")
		c.metrics.Operation("derive_alert", "ok")
	}

	refreshErr := c.refreshAlerts(ctx)
	switch {
	case refreshErr == nil:
		c.broadcast()
	case createErr == nil:
		// Список не перечитался, но созданное оповещение известно точно
		warnings = append(warnings, refreshErr)
		log.WithError(refreshErr).Warn("Failed to refresh alerts, keeping derived alert locally")
		c.mu.Lock()
		c.state.alerts = upsert(c.state.alerts, created, alertID)
		c.mu.Unlock()
		c.broadcast()
	default:
		warnings = append(warnings, refreshErr)
		log.WithError(refreshErr).Warn("Failed to refresh alerts")
	}

	if createErr != nil {
		return nil, errors.Join(warnings...)
	}
	return &created, errors.Join(warnings...)
}

// broadcast вызывается после того, как зеркало согласовано и mu отпущен
func (c *Cache) broadcast() {
	c.mu.RLock()
	sizes := map[models.Kind]int{
		models.KindVillage:     len(c.state.villages),
		models.KindWaterPoint:  len(c.state.waterPoints),
		models.KindLivestock:   len(c.state.livestock),
		models.KindNGOActivity: len(c.state.ngoActivities),
		models.KindAlert:       len(c.state.alerts),
	}
	c.mu.RUnlock()
	for kind, n := range sizes {
		c.metrics.SetMirrorSize(kind.String(), n)
	}

	c.metrics.Broadcast()
	c.notifier.Broadcast()
}

// callStore выполняет вызов хранилища с ограничением по времени.
// Если хранилище не уважает контекст, результат все равно возвращается по таймауту.
func callStore[T any](ctx context.Context, c *Cache, op string, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	start := time.Now()
	go func() {
		value, err := fn(ctx)
		done <- result{value: value, err: err}
	}()

	select {
	case r := <-done:
		c.metrics.ObserveStore(op, time.Since(start))
		return r.value, r.err
	case <-ctx.Done():
		c.metrics.ObserveStore(op, time.Since(start))
		var zero T
		return zero, fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

func create[T any](ctx context.Context, c *Cache, op string, payload T,
	send func(context.Context, T) (T, error), apply func(*state, T)) (T, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return write(ctx, c, op, func(ctx context.Context) (T, error) {
		return send(ctx, payload)
	}, apply)
}

// write отправляет запись в хранилище и применяет подтвержденный результат. Вызывающий держит writeMu
func write[T any](ctx context.Context, c *Cache, op string,
	send func(context.Context) (T, error), apply func(*state, T)) (T, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "cache",
		"operation": op,
	})

	record, err := callStore(ctx, c, op, send)
	if err != nil {
		writeErr := newWriteError(op, err)
		log.WithError(writeErr).Error("Record store rejected write")
		c.metrics.Operation(op, "error")
		var zero T
		return zero, writeErr
	}

	c.mu.Lock()
	apply(&c.state, record)
	c.mu.Unlock()

	log.Debug("Write applied to mirror")
	c.metrics.Operation(op, "ok")
	c.broadcast()
	return record, nil
}

func updateWithRule[T any](ctx context.Context, c *Cache, op string, prev *T,
	send func(context.Context) (T, error), apply func(*state, T), rule rules.Rule[T]) (DerivedUpdate[T], error) {
	record, err := write(ctx, c, op, send, apply)
	if err != nil {
		return DerivedUpdate[T]{}, err
	}

	result := DerivedUpdate[T]{Record: record}
	if rule == nil {
		return result, nil
	}
	intent := rule(prev, record)
	if intent == nil {
		return result, nil
	}
	result.Alert, result.AlertErr = c.deriveAlert(ctx, op, *intent)
	return result, nil
}

// Snapshot возвращает копию всех коллекций для производных представлений
func (c *Cache) Snapshot() views.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return views.Snapshot{
		Villages:      clone(c.state.villages),
		WaterPoints:   clone(c.state.waterPoints),
		Livestock:     clone(c.state.livestock),
		NGOActivities: clone(c.state.ngoActivities),
		Alerts:        clone(c.state.alerts),
	}
}
