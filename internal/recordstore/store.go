// Package recordstore описывает внешнее хранилище записей, с которым
// синхронизируется кэш, и HTTP-адаптер к нему.
package recordstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shenikar/drought_response_system/internal/models"
)

// Ошибки хранилища. Реализации Store оборачивают их через %w.
var (
	ErrUnreachable    = errors.New("record store unreachable")
	ErrInvalidPayload = errors.New("record store rejected payload")
	ErrNotFound       = errors.New("record not found")
	ErrServerFault    = errors.New("record store fault")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store - контракт хранилища записей для пяти коллекций
type Store interface {
	ListVillages(ctx context.Context) ([]models.Village, error)
	ListWaterPoints(ctx context.Context) ([]models.WaterPoint, error)
	ListLivestock(ctx context.Context) ([]models.Livestock, error)
	ListNGOActivities(ctx context.Context) ([]models.NGOActivity, error)
	ListAlerts(ctx context.Context) ([]models.Alert, error)

	CreateVillage(ctx context.Context, village models.Village) (models.Village, error)
	CreateWaterPoint(ctx context.Context, point models.WaterPoint) (models.WaterPoint, error)
	CreateLivestock(ctx context.Context, herd models.Livestock) (models.Livestock, error)
	CreateNGOActivity(ctx context.Context, activity models.NGOActivity) (models.NGOActivity, error)
	CreateAlert(ctx context.Context, alert models.Alert) (models.Alert, error)

	UpdateWaterPointStatus(ctx context.Context, id uuid.UUID, status string, isFunctional bool) (models.WaterPoint, error)
	UpdateLivestock(ctx context.Context, id uuid.UUID, totalCount int, mortalityRate float64) (models.Livestock, error)
	UpdateNGOActivityStatus(ctx context.Context, id uuid.UUID, status models.ActivityStatus) (models.NGOActivity, error)
	ResolveAlert(ctx context.Context, id uuid.UUID) (models.Alert, error)
}

// Authenticator - внешняя проверка учетных данных без хранения сессий
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}
