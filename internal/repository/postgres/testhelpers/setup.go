// Package testhelpers connects integration tests to a disposable PostgreSQL
// instance. Tests are skipped unless TEST_DB_HOST is set, so the unit suite
// stays runnable without infrastructure.
package testhelpers

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SetupTestDB opens a connection to the test database, retrying while the
// container is still coming up. The connection is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set; skipping PostgreSQL integration tests")
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host,
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_USER", "postgres"),
		envOr("TEST_DB_PASSWORD", "postgres"),
		envOr("TEST_DB_NAME", "place_api_test"),
	)

	var db *sqlx.DB
	var err error
	for attempt := 0; attempt < 10; attempt++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TruncateAll empties every application table and resets the sequences, so
// each test starts from a known-empty database.
func TruncateAll(t *testing.T, db *sqlx.DB) {
	t.Helper()

	tables := []string{"cafes", "bookstores", "bars", "stations", "prefectures", "regions"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf(`TRUNCATE TABLE %s RESTART IDENTITY CASCADE`, table)); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
