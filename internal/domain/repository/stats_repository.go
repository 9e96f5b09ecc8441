package repository

import "context"

// StatsRepository backs the health endpoint's row counts.
type StatsRepository interface {
	// Counts returns the row count per table (regions, prefectures, stations,
	// cafes, bookstores, bars).
	Counts(ctx context.Context) (map[string]int, error)
}
