package sqlc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"habitat-api/pkg/resource"
)

// Settings configures the connection pool.
type Settings struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// SettingsFromProperties reads the app.db.* properties.
func SettingsFromProperties() Settings {
	return Settings{
		DSN:          resource.GetString("app.db.dsn"),
		MaxOpenConns: resource.GetInt("app.db.max-open-conns"),
		MaxIdleConns: resource.GetInt("app.db.max-idle-conns"),
	}
}

// Open connects to postgres with lib/pq and verifies the connection.
func Open(ctx context.Context, settings Settings) (*sql.DB, error) {
	db, err := sql.Open("postgres", settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(settings.MaxOpenConns)
	db.SetMaxIdleConns(settings.MaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// schema is the ratings table as the sqlc gateway reads it.
const schema = `
CREATE TABLE IF NOT EXISTS neighborhood_ratings (
	id               UUID PRIMARY KEY,
	neighborhood     TEXT NOT NULL,
	district         TEXT NOT NULL DEFAULT '',
	city             TEXT NOT NULL,
	security         SMALLINT NOT NULL CHECK (security BETWEEN 1 AND 10),
	parking          SMALLINT NOT NULL CHECK (parking BETWEEN 1 AND 10),
	family_friendly  SMALLINT NOT NULL CHECK (family_friendly BETWEEN 1 AND 10),
	public_transport SMALLINT NOT NULL CHECK (public_transport BETWEEN 1 AND 10),
	green_spaces     SMALLINT NOT NULL CHECK (green_spaces BETWEEN 1 AND 10),
	services         SMALLINT NOT NULL CHECK (services BETWEEN 1 AND 10),
	comment          TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_neighborhood_ratings_location ON neighborhood_ratings (city, neighborhood);
`

// EnsureSchema creates the ratings table and its index when they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
