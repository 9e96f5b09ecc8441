package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain"
	"github.com/ichidan-dokusho/place-api/internal/domain/repository"
	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
)

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *stationRepository) ListNames(ctx context.Context, prefectureID *int) ([]string, error) {
	query := `
		SELECT name
		FROM stations
		ORDER BY name
	`
	args := []interface{}{}

	if prefectureID != nil {
		query = `
			SELECT name
			FROM stations
			WHERE prefecture_id = $1
			ORDER BY name
		`
		args = append(args, *prefectureID)
	}

	names := []string{}
	if err := r.db.SelectContext(ctx, &names, query, args...); err != nil {
		r.logger.Error("Failed to list station names", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return names, nil
}

func (r *stationRepository) ListDetailed(ctx context.Context) ([]domain.StationDetail, error) {
	query := `
		SELECT
			s.id, s.name, s.location, s.prefecture_id, s.created_at,
			p.name AS prefecture_name,
			rg.name AS region_name
		FROM stations s
		LEFT JOIN prefectures p ON p.id = s.prefecture_id
		LEFT JOIN regions rg ON rg.id = p.region_id
		ORDER BY s.created_at DESC, s.id DESC
	`

	stations := []domain.StationDetail{}
	if err := r.db.SelectContext(ctx, &stations, query); err != nil {
		r.logger.Error("Failed to list stations with hierarchy", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stations, nil
}

func (r *stationRepository) GetByID(ctx context.Context, id int) (*domain.Station, error) {
	query := `
		SELECT id, name, location, prefecture_id, created_at
		FROM stations
		WHERE id = $1
	`

	var station domain.Station
	err := r.db.GetContext(ctx, &station, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrStationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get station by ID", zap.Int("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &station, nil
}

func (r *stationRepository) GetByName(ctx context.Context, name string) (*domain.Station, error) {
	query := `
		SELECT id, name, location, prefecture_id, created_at
		FROM stations
		WHERE name = $1
	`

	var station domain.Station
	err := r.db.GetContext(ctx, &station, query, name)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get station by name", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &station, nil
}

func (r *stationRepository) Create(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	query := `
		INSERT INTO stations (name, location, prefecture_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, location, prefecture_id, created_at
	`

	var created domain.Station
	err := r.db.GetContext(ctx, &created, query,
		station.Name, station.Location, station.PrefectureID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrDuplicateStationName
		}
		r.logger.Error("Failed to create station", zap.String("name", station.Name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *stationRepository) Update(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	query := `
		UPDATE stations
		SET name = $1, location = $2, prefecture_id = $3
		WHERE id = $4
		RETURNING id, name, location, prefecture_id, created_at
	`

	var updated domain.Station
	err := r.db.GetContext(ctx, &updated, query,
		station.Name, station.Location, station.PrefectureID, station.ID,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrStationNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrDuplicateStationName
		}
		r.logger.Error("Failed to update station", zap.Int("id", station.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &updated, nil
}

func (r *stationRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete station", zap.Int("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrStationNotFound
	}

	return nil
}
