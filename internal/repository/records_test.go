package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/shenikar/drought_response_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (*miniredis.Miniredis, *RecordRepository) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = redisClient.Close() })

	repo := NewRecordRepository(nil, redisClient, 5*time.Minute).(*RecordRepository)
	return mr, repo
}

func TestCollectionCache_Miss(t *testing.T) {
	_, repo := setupTestRepository(t)

	val, err := repo.GetCollectionFromCache(context.Background(), models.KindVillage)

	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCollectionCache_SetGetInvalidate(t *testing.T) {
	// Подготовка
	mr, repo := setupTestRepository(t)
	ctx := context.Background()
	payload := []byte(`[{"id":"00000000-0000-0000-0000-000000000001"}]`)

	// Действие и проверки
	require.NoError(t, repo.SetCollectionCache(ctx, models.KindWaterPoint, payload))
	assert.True(t, mr.Exists("records:water-points"))
	assert.Equal(t, 5*time.Minute, mr.TTL("records:water-points"))

	val, err := repo.GetCollectionFromCache(ctx, models.KindWaterPoint)
	require.NoError(t, err)
	assert.Equal(t, payload, val)

	require.NoError(t, repo.InvalidateCollectionCache(ctx, models.KindWaterPoint))
	assert.False(t, mr.Exists("records:water-points"))
}

func TestCollectionCache_Expires(t *testing.T) {
	mr, repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetCollectionCache(ctx, models.KindAlert, []byte(`[]`)))
	mr.FastForward(6 * time.Minute)

	val, err := repo.GetCollectionFromCache(ctx, models.KindAlert)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCollectionCache_RedisDown(t *testing.T) {
	mr, repo := setupTestRepository(t)
	mr.Close()

	_, err := repo.GetCollectionFromCache(context.Background(), models.KindLivestock)

	assert.ErrorContains(t, err, "failed to get livestock from cache")
}

func TestMapWriteError(t *testing.T) {
	fk := &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "water_points_village_id_fkey"}
	check := &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "ngo_activities_dates_check"}

	assert.ErrorIs(t, mapWriteError("create water point", fk), service.ErrInvalidReference)

	err := mapWriteError("create ngo activity", fmt.Errorf("wrapped: %w", check))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Contains(t, err.Error(), "ngo_activities_dates_check")

	other := mapWriteError("create alert", errors.New("connection reset"))
	assert.NotErrorIs(t, other, service.ErrInvalidInput)
	assert.Contains(t, other.Error(), "connection reset")
}
