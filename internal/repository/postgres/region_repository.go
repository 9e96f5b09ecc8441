package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain"
	"github.com/ichidan-dokusho/place-api/internal/domain/repository"
	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
)

type regionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRegionRepository(db *DB) repository.RegionRepository {
	return &regionRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *regionRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	query := `
		SELECT id, name, code
		FROM regions
		ORDER BY id
	`

	regions := []domain.Region{}
	if err := r.db.SelectContext(ctx, &regions, query); err != nil {
		r.logger.Error("Failed to list regions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return regions, nil
}

func (r *regionRepository) ListPrefectures(ctx context.Context, regionID *int) ([]domain.Prefecture, error) {
	query := `
		SELECT id, name, code, region_id
		FROM prefectures
		ORDER BY id
	`
	args := []interface{}{}

	if regionID != nil {
		query = `
			SELECT id, name, code, region_id
			FROM prefectures
			WHERE region_id = $1
			ORDER BY id
		`
		args = append(args, *regionID)
	}

	prefectures := []domain.Prefecture{}
	if err := r.db.SelectContext(ctx, &prefectures, query, args...); err != nil {
		r.logger.Error("Failed to list prefectures", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return prefectures, nil
}
