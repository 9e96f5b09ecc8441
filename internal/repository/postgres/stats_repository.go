package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain/repository"
	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// statsTables are the tables reported by the health endpoint.
var statsTables = []string{"regions", "prefectures", "stations", "cafes", "bookstores", "bars"}

func (r *statsRepository) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(statsTables))

	for _, table := range statsTables {
		var count int
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)
		if err := r.db.GetContext(ctx, &count, query); err != nil {
			r.logger.Error("Failed to count rows",
				zap.String("table", table),
				zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		counts[table] = count
	}

	return counts, nil
}
