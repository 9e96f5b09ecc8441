package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain"
)

// Schema creation and lookup-data seeding. Everything here is idempotent
// (IF NOT EXISTS guards, insert-if-empty checks, ON CONFLICT DO NOTHING) so
// it can run on every startup and from cmd/seed without coordination.

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS regions (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		code VARCHAR(50) NOT NULL UNIQUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS prefectures (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		code VARCHAR(50) NOT NULL UNIQUE,
		region_id INTEGER REFERENCES regions(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS stations (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		location VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	// prefecture_id arrived after the first stations schema revision.
	`ALTER TABLE stations ADD COLUMN IF NOT EXISTS prefecture_id INTEGER REFERENCES prefectures(id)`,
}

var placeTableTemplate = `CREATE TABLE IF NOT EXISTS %s (
	id SERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	location VARCHAR(255) NOT NULL,
	station VARCHAR(255) NOT NULL,
	google_maps_url TEXT NOT NULL,
	walking_time VARCHAR(10),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// EnsureSchema creates all six tables and applies the additive column
// migrations.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := append([]string{}, schemaStatements...)
	for _, kind := range domain.PlaceKinds() {
		statements = append(statements,
			fmt.Sprintf(placeTableTemplate, kind.Table()),
			// walking_time arrived after the first place schema revision.
			fmt.Sprintf(`ALTER TABLE %s ADD COLUMN IF NOT EXISTS walking_time VARCHAR(10)`, kind.Table()),
		)
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	db.logger.Info("Database schema ensured")
	return nil
}

// SeedLookupData loads regions, prefectures and the built-in station set.
// Regions and prefectures are inserted with explicit ids only when their
// tables are empty; stations are inserted per name, and existing rows that
// predate the hierarchy get their prefecture_id backfilled.
func (db *DB) SeedLookupData(ctx context.Context) error {
	var regionCount int
	if err := db.GetContext(ctx, &regionCount, `SELECT COUNT(*) FROM regions`); err != nil {
		return fmt.Errorf("count regions: %w", err)
	}
	if regionCount == 0 {
		for _, region := range domain.StaticRegions() {
			_, err := db.ExecContext(ctx,
				`INSERT INTO regions (id, name, code) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
				region.ID, region.Name, region.Code,
			)
			if err != nil {
				return fmt.Errorf("seed region %q: %w", region.Name, err)
			}
		}
		db.logger.Info("Seeded regions", zap.Int("count", len(domain.StaticRegions())))
	}

	var prefectureCount int
	if err := db.GetContext(ctx, &prefectureCount, `SELECT COUNT(*) FROM prefectures`); err != nil {
		return fmt.Errorf("count prefectures: %w", err)
	}
	if prefectureCount == 0 {
		for _, pref := range domain.StaticPrefectures(nil) {
			_, err := db.ExecContext(ctx,
				`INSERT INTO prefectures (id, name, code, region_id) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
				pref.ID, pref.Name, pref.Code, pref.RegionID,
			)
			if err != nil {
				return fmt.Errorf("seed prefecture %q: %w", pref.Name, err)
			}
		}
		db.logger.Info("Seeded prefectures", zap.Int("count", len(domain.StaticPrefectures(nil))))
	}

	inserted, backfilled := 0, 0
	for _, station := range domain.SeedStations() {
		prefectureID, ok := domain.PrefectureIDByName(station.PrefectureName)
		if !ok {
			db.logger.Warn("Unknown prefecture in station seed data",
				zap.String("station", station.Name),
				zap.String("prefecture", station.PrefectureName))
			continue
		}

		var existing struct {
			ID           int  `db:"id"`
			PrefectureID *int `db:"prefecture_id"`
		}
		err := db.GetContext(ctx, &existing,
			`SELECT id, prefecture_id FROM stations WHERE name = $1`, station.Name)
		switch {
		case err == nil:
			if existing.PrefectureID == nil {
				_, err := db.ExecContext(ctx,
					`UPDATE stations SET prefecture_id = $1, location = $2 WHERE name = $3`,
					prefectureID, station.Location, station.Name,
				)
				if err != nil {
					return fmt.Errorf("backfill station %q: %w", station.Name, err)
				}
				backfilled++
			}
		case stderrors.Is(err, sql.ErrNoRows):
			_, err := db.ExecContext(ctx,
				`INSERT INTO stations (name, location, prefecture_id) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
				station.Name, station.Location, prefectureID,
			)
			if err != nil {
				return fmt.Errorf("seed station %q: %w", station.Name, err)
			}
			inserted++
		default:
			return fmt.Errorf("check station %q: %w", station.Name, err)
		}
	}

	db.logger.Info("Seeded stations",
		zap.Int("inserted", inserted),
		zap.Int("backfilled", backfilled))

	return nil
}
