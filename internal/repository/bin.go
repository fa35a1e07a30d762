package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/internal/service"
)

const binsCacheKey = "bins:all"

type BinRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewBinRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.BinRepository {
	return &BinRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// SeedBins добавляет демонстрационные контейнеры, не трогая уже существующие
func SeedBins(ctx context.Context, db *pgxpool.Pool, bins []*models.Bin) error {
	query := `
		INSERT INTO bins (id, location, category, fill_percentage, status, latitude, longitude, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, b := range bins {
		batch.Queue(query,
			b.ID,
			b.Location,
			b.Category,
			b.FillPercentage,
			b.Status,
			b.Coordinate.Latitude,
			b.Coordinate.Longitude,
			b.LastUpdated,
		)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to seed bins: %w", err)
	}
	return nil
}

// List возвращает все контейнеры
func (r *BinRepository) List(ctx context.Context) ([]*models.Bin, error) {
	query := `
		SELECT
			id,
			location,
			category,
			fill_percentage,
			status,
			latitude,
			longitude,
			last_updated
		FROM bins
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bins: %w", err)
	}
	defer rows.Close()

	bins := make([]*models.Bin, 0)
	for rows.Next() {
		bin, err := scanBin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bin row: %w", err)
		}
		bins = append(bins, bin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return bins, nil
}

// GetByID возвращает контейнер по его ID
func (r *BinRepository) GetByID(ctx context.Context, id string) (*models.Bin, error) {
	query := `
		SELECT
			id,
			location,
			category,
			fill_percentage,
			status,
			latitude,
			longitude,
			last_updated
		FROM bins
		WHERE id = $1;
	`
	bin, err := scanBin(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bin with id %s: %w", id, models.ErrBinNotFound)
		}
		return nil, fmt.Errorf("failed to get bin by id: %w", err)
	}
	return bin, nil
}

// UpdateFill сохраняет заполненность и статус контейнера
func (r *BinRepository) UpdateFill(ctx context.Context, bin *models.Bin) error {
	query := `
		UPDATE bins SET
			fill_percentage = $1,
			status = $2,
			last_updated = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, bin.FillPercentage, bin.Status, bin.LastUpdated, bin.ID)
	if err != nil {
		return fmt.Errorf("failed to update bin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bin with id %s not updated: %w", bin.ID, models.ErrBinNotFound)
	}
	return nil
}

// GetBinsFromCache пытается получить список контейнеров из Redis.
// При промахе возвращает nil без ошибки.
func (r *BinRepository) GetBinsFromCache(ctx context.Context) ([]*models.Bin, error) {
	val, err := r.redisClient.Get(ctx, binsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bins from cache: %w", err)
	}

	var bins []*models.Bin
	if err := json.Unmarshal(val, &bins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bins from cache: %w", err)
	}
	return bins, nil
}

// SetBinsCache сохраняет список контейнеров в Redis
func (r *BinRepository) SetBinsCache(ctx context.Context, bins []*models.Bin) error {
	val, err := json.Marshal(bins)
	if err != nil {
		return fmt.Errorf("failed to marshal bins for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, binsCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set bins in cache: %w", err)
	}
	return nil
}

// InvalidateBinsCache удаляет список контейнеров из Redis
func (r *BinRepository) InvalidateBinsCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, binsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate bins cache: %w", err)
	}
	return nil
}

func scanBin(row pgx.Row) (*models.Bin, error) {
	bin := &models.Bin{}
	err := row.Scan(
		&bin.ID,
		&bin.Location,
		&bin.Category,
		&bin.FillPercentage,
		&bin.Status,
		&bin.Coordinate.Latitude,
		&bin.Coordinate.Longitude,
		&bin.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return bin, nil
}
