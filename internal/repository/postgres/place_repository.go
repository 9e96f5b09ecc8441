package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain"
	"github.com/ichidan-dokusho/place-api/internal/domain/repository"
	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
)

// placeRepository serves cafes, bookstores and bars. The three tables share
// one shape, so queries are built from kind.Table(), which only ever returns
// a whitelisted identifier.
type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) List(ctx context.Context, kind domain.PlaceKind, station string) ([]domain.Place, error) {
	query := fmt.Sprintf(`
		SELECT id, name, location, station, google_maps_url, walking_time, created_at
		FROM %s
		ORDER BY created_at DESC, id DESC
	`, kind.Table())
	args := []interface{}{}

	if station != "" {
		query = fmt.Sprintf(`
			SELECT id, name, location, station, google_maps_url, walking_time, created_at
			FROM %s
			WHERE station = $1
			ORDER BY created_at DESC, id DESC
		`, kind.Table())
		args = append(args, station)
	}

	places := []domain.Place{}
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		r.logger.Error("Failed to list places",
			zap.String("kind", string(kind)),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

func (r *placeRepository) GetByID(ctx context.Context, kind domain.PlaceKind, id int) (*domain.Place, error) {
	query := fmt.Sprintf(`
		SELECT id, name, location, station, google_maps_url, walking_time, created_at
		FROM %s
		WHERE id = $1
	`, kind.Table())

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID",
			zap.String("kind", string(kind)),
			zap.Int("id", id),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) Create(ctx context.Context, kind domain.PlaceKind, place *domain.Place) (*domain.Place, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, location, station, google_maps_url, walking_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, location, station, google_maps_url, walking_time, created_at
	`, kind.Table())

	var created domain.Place
	err := r.db.GetContext(ctx, &created, query,
		place.Name, place.Location, place.Station, place.GoogleMapsURL, place.WalkingTime,
	)
	if err != nil {
		r.logger.Error("Failed to create place",
			zap.String("kind", string(kind)),
			zap.String("name", place.Name),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *placeRepository) Update(ctx context.Context, kind domain.PlaceKind, place *domain.Place) (*domain.Place, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, location = $2, station = $3, google_maps_url = $4, walking_time = $5
		WHERE id = $6
		RETURNING id, name, location, station, google_maps_url, walking_time, created_at
	`, kind.Table())

	var updated domain.Place
	err := r.db.GetContext(ctx, &updated, query,
		place.Name, place.Location, place.Station, place.GoogleMapsURL, place.WalkingTime, place.ID,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update place",
			zap.String("kind", string(kind)),
			zap.Int("id", place.ID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &updated, nil
}

func (r *placeRepository) Delete(ctx context.Context, kind domain.PlaceKind, id int) error {
	result, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, kind.Table()), id)
	if err != nil {
		r.logger.Error("Failed to delete place",
			zap.String("kind", string(kind)),
			zap.Int("id", id),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrPlaceNotFound
	}

	return nil
}

func (r *placeRepository) CountByStation(ctx context.Context, kind domain.PlaceKind, station string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE station = $1`, kind.Table())

	var count int
	if err := r.db.GetContext(ctx, &count, query, station); err != nil {
		r.logger.Error("Failed to count places by station",
			zap.String("kind", string(kind)),
			zap.String("station", station),
			zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return count, nil
}
