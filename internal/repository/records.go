package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/shenikar/drought_response_system/internal/service"
)

// Коды ошибок PostgreSQL
const (
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

const (
	villageColumns     = `id, name, district, region, population, livestock_count, distance_to_water_km, water_access_level, vulnerability_score, is_covered, last_updated`
	waterPointColumns  = `id, village_id, type, status, capacity_m3, is_functional, last_maintenance_date`
	livestockColumns   = `id, village_id, species, total_count, mortality_rate, last_updated`
	ngoActivityColumns = `id, village_id, ngo_name, activity_type, sector, status, start_date, end_date, lat, lng`
	alertColumns       = `id, village_id, type, severity, message, is_resolved, created_at`
)

type RecordRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewRecordRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.RecordRepository {
	return &RecordRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func scanVillage(row pgx.Row, v *models.Village) error {
	return row.Scan(
		&v.ID,
		&v.Name,
		&v.District,
		&v.Region,
		&v.Population,
		&v.LivestockCount,
		&v.DistanceToWaterKm,
		&v.WaterAccessLevel,
		&v.VulnerabilityScore,
		&v.IsCovered,
		&v.LastUpdated,
	)
}

func scanWaterPoint(row pgx.Row, p *models.WaterPoint) error {
	return row.Scan(
		&p.ID,
		&p.VillageID,
		&p.Type,
		&p.Status,
		&p.CapacityM3,
		&p.IsFunctional,
		&p.LastMaintenanceDate,
	)
}

func scanLivestock(row pgx.Row, l *models.Livestock) error {
	return row.Scan(
		&l.ID,
		&l.VillageID,
		&l.Species,
		&l.TotalCount,
		&l.MortalityRate,
		&l.LastUpdated,
	)
}

func scanNGOActivity(row pgx.Row, a *models.NGOActivity) error {
	return row.Scan(
		&a.ID,
		&a.VillageID,
		&a.NGOName,
		&a.ActivityType,
		&a.Sector,
		&a.Status,
		&a.StartDate,
		&a.EndDate,
		&a.Coordinates.Lat,
		&a.Coordinates.Lng,
	)
}

func scanAlert(row pgx.Row, a *models.Alert) error {
	return row.Scan(
		&a.ID,
		&a.VillageID,
		&a.Type,
		&a.Severity,
		&a.Message,
		&a.IsResolved,
		&a.CreatedAt,
	)
}

func (r *RecordRepository) ListVillages(ctx context.Context) ([]models.Village, error) {
	query := `SELECT ` + villageColumns + ` FROM villages ORDER BY name;`
	return queryAll(ctx, r.db, models.KindVillage, query, scanVillage)
}

func (r *RecordRepository) ListWaterPoints(ctx context.Context) ([]models.WaterPoint, error) {
	query := `SELECT ` + waterPointColumns + ` FROM water_points ORDER BY village_id, type;`
	return queryAll(ctx, r.db, models.KindWaterPoint, query, scanWaterPoint)
}

func (r *RecordRepository) ListLivestock(ctx context.Context) ([]models.Livestock, error) {
	query := `SELECT ` + livestockColumns + ` FROM livestock ORDER BY village_id, species;`
	return queryAll(ctx, r.db, models.KindLivestock, query, scanLivestock)
}

func (r *RecordRepository) ListNGOActivities(ctx context.Context) ([]models.NGOActivity, error) {
	query := `SELECT ` + ngoActivityColumns + ` FROM ngo_activities ORDER BY start_date DESC;`
	return queryAll(ctx, r.db, models.KindNGOActivity, query, scanNGOActivity)
}

// ListAlerts возвращает оповещения от новых к старым
func (r *RecordRepository) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts ORDER BY created_at DESC;`
	return queryAll(ctx, r.db, models.KindAlert, query, scanAlert)
}

func (r *RecordRepository) GetVillage(ctx context.Context, id uuid.UUID) (*models.Village, error) {
	query := `SELECT ` + villageColumns + ` FROM villages WHERE id = $1;`
	return queryOne(ctx, r.db, "village", id, query, scanVillage)
}

func (r *RecordRepository) GetWaterPoint(ctx context.Context, id uuid.UUID) (*models.WaterPoint, error) {
	query := `SELECT ` + waterPointColumns + ` FROM water_points WHERE id = $1;`
	return queryOne(ctx, r.db, "water point", id, query, scanWaterPoint)
}

func (r *RecordRepository) GetLivestock(ctx context.Context, id uuid.UUID) (*models.Livestock, error) {
	query := `SELECT ` + livestockColumns + ` FROM livestock WHERE id = $1;`
	return queryOne(ctx, r.db, "livestock", id, query, scanLivestock)
}

func (r *RecordRepository) GetNGOActivity(ctx context.Context, id uuid.UUID) (*models.NGOActivity, error) {
	query := `SELECT ` + ngoActivityColumns + ` FROM ngo_activities WHERE id = $1;`
	return queryOne(ctx, r.db, "ngo activity", id, query, scanNGOActivity)
}

func (r *RecordRepository) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1;`
	return queryOne(ctx, r.db, "alert", id, query, scanAlert)
}

// CreateVillage создает новую запись о деревне в бд
func (r *RecordRepository) CreateVillage(ctx context.Context, v *models.Village) error {
	query := `
		INSERT INTO villages (name, district, region, population, livestock_count, distance_to_water_km,
			water_access_level, vulnerability_score, is_covered)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, last_updated;
	`
	err := r.db.QueryRow(ctx, query,
		v.Name,
		v.District,
		v.Region,
		v.Population,
		v.LivestockCount,
		v.DistanceToWaterKm,
		v.WaterAccessLevel,
		v.VulnerabilityScore,
		v.IsCovered,
	).Scan(&v.ID, &v.LastUpdated)
	if err != nil {
		return mapWriteError("create village", err)
	}
	return nil
}

func (r *RecordRepository) CreateWaterPoint(ctx context.Context, p *models.WaterPoint) error {
	query := `
		INSERT INTO water_points (village_id, type, status, capacity_m3, is_functional, last_maintenance_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		p.VillageID,
		p.Type,
		p.Status,
		p.CapacityM3,
		p.IsFunctional,
		p.LastMaintenanceDate,
	).Scan(&p.ID)
	if err != nil {
		return mapWriteError("create water point", err)
	}
	return nil
}

func (r *RecordRepository) CreateLivestock(ctx context.Context, l *models.Livestock) error {
	query := `
		INSERT INTO livestock (village_id, species, total_count, mortality_rate)
		VALUES ($1, $2, $3, $4) RETURNING id, last_updated;
	`
	err := r.db.QueryRow(ctx, query,
		l.VillageID,
		l.Species,
		l.TotalCount,
		l.MortalityRate,
	).Scan(&l.ID, &l.LastUpdated)
	if err != nil {
		return mapWriteError("create livestock", err)
	}
	return nil
}

func (r *RecordRepository) CreateNGOActivity(ctx context.Context, a *models.NGOActivity) error {
	query := `
		INSERT INTO ngo_activities (village_id, ngo_name, activity_type, sector, status, start_date, end_date, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		a.VillageID,
		a.NGOName,
		a.ActivityType,
		a.Sector,
		a.Status,
		a.StartDate,
		a.EndDate,
		a.Coordinates.Lat,
		a.Coordinates.Lng,
	).Scan(&a.ID)
	if err != nil {
		return mapWriteError("create ngo activity", err)
	}
	return nil
}

func (r *RecordRepository) CreateAlert(ctx context.Context, a *models.Alert) error {
	query := `
		INSERT INTO alerts (village_id, type, severity, message, is_resolved)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		a.VillageID,
		a.Type,
		a.Severity,
		a.Message,
		a.IsResolved,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return mapWriteError("create alert", err)
	}
	return nil
}

// UpdateWaterPointStatus меняет статус и проставляет дату последнего обслуживания
func (r *RecordRepository) UpdateWaterPointStatus(ctx context.Context, id uuid.UUID, status string, isFunctional bool, maintainedAt time.Time) (*models.WaterPoint, error) {
	query := `
		UPDATE water_points SET
			status = $1,
			is_functional = $2,
			last_maintenance_date = $3
		WHERE id = $4
		RETURNING ` + waterPointColumns + `;
	`
	return queryOne(ctx, r.db, "water point", id, query, scanWaterPoint, status, isFunctional, maintainedAt, id)
}

func (r *RecordRepository) UpdateLivestock(ctx context.Context, id uuid.UUID, totalCount int, mortalityRate float64) (*models.Livestock, error) {
	query := `
		UPDATE livestock SET
			total_count = $1,
			mortality_rate = $2,
			last_updated = NOW()
		WHERE id = $3
		RETURNING ` + livestockColumns + `;
	`
	return queryOne(ctx, r.db, "livestock", id, query, scanLivestock, totalCount, mortalityRate, id)
}

func (r *RecordRepository) UpdateNGOActivityStatus(ctx context.Context, id uuid.UUID, status models.ActivityStatus) (*models.NGOActivity, error) {
	query := `
		UPDATE ngo_activities SET
			status = $1
		WHERE id = $2
		RETURNING ` + ngoActivityColumns + `;
	`
	return queryOne(ctx, r.db, "ngo activity", id, query, scanNGOActivity, status, id)
}

// ResolveAlert помечает оповещение решенным. Обратного перехода нет
func (r *RecordRepository) ResolveAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `
		UPDATE alerts SET
			is_resolved = TRUE
		WHERE id = $1
		RETURNING ` + alertColumns + `;
	`
	return queryOne(ctx, r.db, "alert", id, query, scanAlert, id)
}

func collectionCacheKey(kind models.Kind) string {
	return fmt.Sprintf("records:%s", kind)
}

// GetCollectionFromCache пытается получить коллекцию из Redis. nil без ошибки означает промах
func (r *RecordRepository) GetCollectionFromCache(ctx context.Context, kind models.Kind) ([]byte, error) {
	val, err := r.redisClient.Get(ctx, collectionCacheKey(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s from cache: %w", kind, err)
	}
	return val, nil
}

// SetCollectionCache сохраняет сериализованную коллекцию в Redis
func (r *RecordRepository) SetCollectionCache(ctx context.Context, kind models.Kind, payload []byte) error {
	if err := r.redisClient.Set(ctx, collectionCacheKey(kind), payload, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", kind, err)
	}
	return nil
}

// InvalidateCollectionCache удаляет коллекцию из Redis кэша
func (r *RecordRepository) InvalidateCollectionCache(ctx context.Context, kind models.Kind) error {
	if err := r.redisClient.Del(ctx, collectionCacheKey(kind)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate %s cache: %w", kind, err)
	}
	return nil
}

func queryAll[T any](ctx context.Context, db *pgxpool.Pool, kind models.Kind, query string, scan func(pgx.Row, *T) error) ([]T, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var item T
		if err := scan(rows, &item); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", kind, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error %s iteration: %w", kind, err)
	}
	return items, nil
}

func queryOne[T any](ctx context.Context, db *pgxpool.Pool, entity string, id uuid.UUID, query string, scan func(pgx.Row, *T) error, args ...any) (*T, error) {
	if len(args) == 0 {
		args = []any{id}
	}
	var item T
	if err := scan(db.QueryRow(ctx, query, args...), &item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s with id %s: %w", entity, id, service.ErrNotFound)
		}
		return nil, mapWriteError(fmt.Sprintf("query %s", entity), err)
	}
	return &item, nil
}

// mapWriteError переводит нарушения ограничений в ошибки сервиса
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("failed to %s: %w", op, service.ErrInvalidReference)
		case pgCheckViolation:
			return fmt.Errorf("failed to %s: %s: %w", op, pgErr.ConstraintName, service.ErrInvalidInput)
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
