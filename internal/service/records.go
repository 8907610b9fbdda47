package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/shenikar/drought_response_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidReference = errors.New("referenced village does not exist")
	ErrInvalidInput     = errors.New("invalid record")
)

// RecordRepository определяет контракт для работы с бд и кешем коллекций
type RecordRepository interface {
	ListVillages(ctx context.Context) ([]models.Village, error)
	ListWaterPoints(ctx context.Context) ([]models.WaterPoint, error)
	ListLivestock(ctx context.Context) ([]models.Livestock, error)
	ListNGOActivities(ctx context.Context) ([]models.NGOActivity, error)
	ListAlerts(ctx context.Context) ([]models.Alert, error)

	GetVillage(ctx context.Context, id uuid.UUID) (*models.Village, error)
	GetWaterPoint(ctx context.Context, id uuid.UUID) (*models.WaterPoint, error)
	GetLivestock(ctx context.Context, id uuid.UUID) (*models.Livestock, error)
	GetNGOActivity(ctx context.Context, id uuid.UUID) (*models.NGOActivity, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)

	CreateVillage(ctx context.Context, village *models.Village) error
	CreateWaterPoint(ctx context.Context, point *models.WaterPoint) error
	CreateLivestock(ctx context.Context, herd *models.Livestock) error
	CreateNGOActivity(ctx context.Context, activity *models.NGOActivity) error
	CreateAlert(ctx context.Context, alert *models.Alert) error

	UpdateWaterPointStatus(ctx context.Context, id uuid.UUID, status string, isFunctional bool, maintainedAt time.Time) (*models.WaterPoint, error)
	UpdateLivestock(ctx context.Context, id uuid.UUID, totalCount int, mortalityRate float64) (*models.Livestock, error)
	UpdateNGOActivityStatus(ctx context.Context, id uuid.UUID, status models.ActivityStatus) (*models.NGOActivity, error)
	ResolveAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)

	GetCollectionFromCache(ctx context.Context, kind models.Kind) ([]byte, error)
	SetCollectionCache(ctx context.Context, kind models.Kind, payload []byte) error
	InvalidateCollectionCache(ctx context.Context, kind models.Kind) error
}

// RecordService определяет контракт бизнес-логики хранилища записей
type RecordService interface {
	ListVillages(ctx context.Context) ([]models.Village, error)
	ListWaterPoints(ctx context.Context) ([]models.WaterPoint, error)
	ListLivestock(ctx context.Context) ([]models.Livestock, error)
	ListNGOActivities(ctx context.Context) ([]models.NGOActivity, error)
	ListAlerts(ctx context.Context) ([]models.Alert, error)

	GetVillage(ctx context.Context, id uuid.UUID) (*models.Village, error)
	GetWaterPoint(ctx context.Context, id uuid.UUID) (*models.WaterPoint, error)
	GetLivestock(ctx context.Context, id uuid.UUID) (*models.Livestock, error)
	GetNGOActivity(ctx context.Context, id uuid.UUID) (*models.NGOActivity, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)

	CreateVillage(ctx context.Context, village *models.Village) error
	CreateWaterPoint(ctx context.Context, point *models.WaterPoint) error
	CreateLivestock(ctx context.Context, herd *models.Livestock) error
	CreateNGOActivity(ctx context.Context, activity *models.NGOActivity) error
	CreateAlert(ctx context.Context, alert *models.Alert) error

	UpdateWaterPointStatus(ctx context.Context, id uuid.UUID, status string, isFunctional bool) (*models.WaterPoint, error)
	UpdateLivestock(ctx context.Context, id uuid.UUID, totalCount int, mortalityRate float64) (*models.Livestock, error)
	UpdateNGOActivityStatus(ctx context.Context, id uuid.UUID, status models.ActivityStatus) (*models.NGOActivity, error)
	ResolveAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
}

type recordService struct {
	repo      RecordRepository
	logger    *logrus.Logger
	publisher webhook.AlertPublisher
	now       func() time.Time
}

func NewRecordService(repo RecordRepository, logger *logrus.Logger, publisher webhook.AlertPublisher) RecordService {
	return &recordService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *recordService) ListVillages(ctx context.Context) ([]models.Village, error) {
	return listCached(ctx, s, models.KindVillage, s.repo.ListVillages)
}

func (s *recordService) ListWaterPoints(ctx context.Context) ([]models.WaterPoint, error) {
	return listCached(ctx, s, models.KindWaterPoint, s.repo.ListWaterPoints)
}

func (s *recordService) ListLivestock(ctx context.Context) ([]models.Livestock, error) {
	return listCached(ctx, s, models.KindLivestock, s.repo.ListLivestock)
}

func (s *recordService) ListNGOActivities(ctx context.Context) ([]models.NGOActivity, error) {
	return listCached(ctx, s, models.KindNGOActivity, s.repo.ListNGOActivities)
}

func (s *recordService) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	return listCached(ctx, s, models.KindAlert, s.repo.ListAlerts)
}

func (s *recordService) GetVillage(ctx context.Context, id uuid.UUID) (*models.Village, error) {
	return get(ctx, s, models.KindVillage, id, s.repo.GetVillage)
}

func (s *recordService) GetWaterPoint(ctx context.Context, id uuid.UUID) (*models.WaterPoint, error) {
	return get(ctx, s, models.KindWaterPoint, id, s.repo.GetWaterPoint)
}

func (s *recordService) GetLivestock(ctx context.Context, id uuid.UUID) (*models.Livestock, error) {
	return get(ctx, s, models.KindLivestock, id, s.repo.GetLivestock)
}

func (s *recordService) GetNGOActivity(ctx context.Context, id uuid.UUID) (*models.NGOActivity, error) {
	return get(ctx, s, models.KindNGOActivity, id, s.repo.GetNGOActivity)
}

func (s *recordService) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	return get(ctx, s, models.KindAlert, id, s.repo.GetAlert)
}

// CreateVillage создает деревню. Уровень доступа к воде по умолчанию Medium
func (s *recordService) CreateVillage(ctx context.Context, village *models.Village) error {
	if village.WaterAccessLevel == "" {
		village.WaterAccessLevel = models.WaterAccessMedium
	}
	return create(ctx, s, models.KindVillage, village, s.repo.CreateVillage)
}

func (s *recordService) CreateWaterPoint(ctx context.Context, point *models.WaterPoint) error {
	if point.Status == "" {
		point.Status = "functional"
	}
	return create(ctx, s, models.KindWaterPoint, point, s.repo.CreateWaterPoint)
}

func (s *recordService) CreateLivestock(ctx context.Context, herd *models.Livestock) error {
	return create(ctx, s, models.KindLivestock, herd, s.repo.CreateLivestock)
}

// CreateNGOActivity создает мероприятие. По умолчанию сектор WASH и статус ongoing
func (s *recordService) CreateNGOActivity(ctx context.Context, activity *models.NGOActivity) error {
	if activity.Sector == "" {
		activity.Sector = models.SectorWASH
	}
	if activity.Status == "" {
		activity.Status = models.ActivityOngoing
	}
	if activity.EndDate.Before(activity.StartDate) {
		return fmt.Errorf("service: end date precedes start date: %w", ErrInvalidInput)
	}
	return create(ctx, s, models.KindNGOActivity, activity, s.repo.CreateNGOActivity)
}

// CreateAlert создает оповещение и ставит событие в очередь доставки
func (s *recordService) CreateAlert(ctx context.Context, alert *models.Alert) error {
	if alert.Severity == "" {
		alert.Severity = models.SeverityMedium
	}
	alert.IsResolved = false
	if err := create(ctx, s, models.KindAlert, alert, s.repo.CreateAlert); err != nil {
		return err
	}
	s.publish(ctx, webhook.EventAlertCreated, *alert)
	return nil
}

// UpdateWaterPointStatus меняет статус точки и проставляет дату обслуживания
func (s *recordService) UpdateWaterPointStatus(ctx context.Context, id uuid.UUID, status string, isFunctional bool) (*models.WaterPoint, error) {
	return update(ctx, s, models.KindWaterPoint, "UpdateWaterPointStatus", id, func(ctx context.Context) (*models.WaterPoint, error) {
		return s.repo.UpdateWaterPointStatus(ctx, id, status, isFunctional, s.now().UTC())
	})
}

func (s *recordService) UpdateLivestock(ctx context.Context, id uuid.UUID, totalCount int, mortalityRate float64) (*models.Livestock, error) {
	return update(ctx, s, models.KindLivestock, "UpdateLivestock", id, func(ctx context.Context) (*models.Livestock, error) {
		return s.repo.UpdateLivestock(ctx, id, totalCount, mortalityRate)
	})
}

func (s *recordService) UpdateNGOActivityStatus(ctx context.Context, id uuid.UUID, status models.ActivityStatus) (*models.NGOActivity, error) {
	return update(ctx, s, models.KindNGOActivity, "UpdateNGOActivityStatus", id, func(ctx context.Context) (*models.NGOActivity, error) {
		return s.repo.UpdateNGOActivityStatus(ctx, id, status)
	})
}

// ResolveAlert помечает оповещение решенным. Повторное решение не ошибка,
// но событие публикуется только при переходе
func (s *recordService) ResolveAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "records",
		"method":   "ResolveAlert",
		"alert_id": id,
	})

	current, err := s.repo.GetAlert(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to resolve a non-existent alert")
		return nil, fmt.Errorf("service: alert with id %s not found for resolve: %w", id, err)
	}
	if current.IsResolved {
		log.Info("Alert already resolved")
		return current, nil
	}

	alert, err := update(ctx, s, models.KindAlert, "ResolveAlert", id, func(ctx context.Context) (*models.Alert, error) {
		return s.repo.ResolveAlert(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, webhook.EventAlertResolved, *alert)
	return alert, nil
}

// publish ставит событие в очередь. Сбой очереди не отменяет запись
func (s *recordService) publish(ctx context.Context, event string, alert models.Alert) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, webhook.AlertEvent{
		Event:     event,
		Alert:     alert,
		Timestamp: s.now().UTC(),
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "records",
			"event":    event,
			"alert_id": alert.ID,
		}).WithError(err).Warn("Failed to publish alert event")
	}
}

func (s *recordService) invalidate(ctx context.Context, log *logrus.Entry, kind models.Kind) {
	if err := s.repo.InvalidateCollectionCache(ctx, kind); err != nil {
		log.WithError(err).Warn("Failed to invalidate collection cache")
	}
}

func listCached[T any](ctx context.Context, s *recordService, kind models.Kind, fetch func(context.Context) ([]T, error)) ([]T, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "records",
		"method":     "List",
		"collection": kind,
	})

	raw, err := s.repo.GetCollectionFromCache(ctx, kind)
	if err != nil {
		log.WithError(err).Warn("Failed to read collection from cache")
	}
	if raw != nil {
		var cached []T
		if err := json.Unmarshal(raw, &cached); err == nil {
			log.Debug("Collection served from cache")
			return cached, nil
		}
		log.Warn("Ignoring malformed cache entry")
	}

	items, err := fetch(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list collection from repository")
		return nil, fmt.Errorf("service: could not list %s: %w", kind, err)
	}
	if items == nil {
		items = make([]T, 0)
	}

	payload, err := json.Marshal(items)
	if err == nil {
		err = s.repo.SetCollectionCache(ctx, kind, payload)
	}
	if err != nil {
		log.WithError(err).Warn("Failed to cache collection")
	}

	log.WithField("count", len(items)).Info("Collection listed successfully")
	return items, nil
}

func get[T any](ctx context.Context, s *recordService, kind models.Kind, id uuid.UUID, fetch func(context.Context, uuid.UUID) (*T, error)) (*T, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "records",
		"method":     "Get",
		"collection": kind,
		"id":         id,
	})

	record, err := fetch(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get record from repository")
		return nil, fmt.Errorf("service: could not get %s: %w", kind, err)
	}
	return record, nil
}

func create[T any](ctx context.Context, s *recordService, kind models.Kind, record *T, insert func(context.Context, *T) error) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "records",
		"method":     "Create",
		"collection": kind,
	})
	log.Info("Attempting to create a new record")

	if err := insert(ctx, record); err != nil {
		log.WithError(err).Error("Failed to create record in repository")
		return fmt.Errorf("service: could not create %s: %w", kind, err)
	}

	s.invalidate(ctx, log, kind)
	log.Info("Record created successfully")
	return nil
}

func update[T any](ctx context.Context, s *recordService, kind models.Kind, method string, id uuid.UUID, apply func(context.Context) (*T, error)) (*T, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "records",
		"method":     method,
		"collection": kind,
		"id":         id,
	})
	log.Info("Attempting to update record")

	record, err := apply(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to update record in repository")
		return nil, fmt.Errorf("service: could not update %s: %w", kind, err)
	}

	s.invalidate(ctx, log, kind)
	log.Info("Record updated successfully")
	return record, nil
}
