package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // Postgres driver
)

func Connect(dsn string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}

	return db, nil
}

// EnsureSchema creates the roster and result tables when missing, so a
// fresh database works without a separate migration step.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS players (
			player_id   INTEGER PRIMARY KEY,
			name        TEXT NOT NULL,
			cp          INTEGER NOT NULL,
			rating_zone TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_players_cp ON players (cp DESC)`,
		`CREATE TABLE IF NOT EXISTS tournament_results (
			id            SERIAL PRIMARY KEY,
			tournament_id TEXT NOT NULL,
			player_id     INTEGER NOT NULL,
			placement     INTEGER NOT NULL,
			match_points  INTEGER NOT NULL,
			wins          INTEGER NOT NULL,
			losses        INTEGER NOT NULL,
			ties          INTEGER NOT NULL,
			resistance    DOUBLE PRECISION NOT NULL,
			recorded_at   TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_tournament ON tournament_results (tournament_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_player ON tournament_results (player_id)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
