package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tcgsim/championship-sim/models"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository persists the immutable roster the simulator draws
// fields from. The engine never touches the database mid-run; rosters
// are loaded up front and treated as read-only input.
type PlayerRepository interface {
	BatchCreate(ctx context.Context, players []*models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	LoadAll(ctx context.Context) ([]*models.Player, error)
	CountByZone(ctx context.Context) (map[models.RatingZone]int, error)
	DeleteAll(ctx context.Context) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) BatchCreate(ctx context.Context, players []*models.Player) error {
	if len(players) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("BatchCreate failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO players (player_id, name, cp, rating_zone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id) DO UPDATE
		SET name = EXCLUDED.name, cp = EXCLUDED.cp, rating_zone = EXCLUDED.rating_zone`)
	if err != nil {
		return fmt.Errorf("BatchCreate failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.CP, string(p.Zone)); err != nil {
			return fmt.Errorf("BatchCreate failed for player %d: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT player_id, name, cp, rating_zone
		FROM players
		WHERE player_id = $1`, id)
	return scanPlayer(row)
}

// LoadAll returns the roster in CP rank order, matching the id
// assignment used at generation time.
func (r *postgresPlayerRepository) LoadAll(ctx context.Context) ([]*models.Player, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT player_id, name, cp, rating_zone
		FROM players
		ORDER BY cp DESC, player_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *postgresPlayerRepository) CountByZone(ctx context.Context) (map[models.RatingZone]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT rating_zone, COUNT(*)
		FROM players
		GROUP BY rating_zone`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.RatingZone]int)
	for rows.Next() {
		var zone string
		var n int
		if err := rows.Scan(&zone, &n); err != nil {
			return nil, err
		}
		counts[models.RatingZone(zone)] = n
	}
	return counts, rows.Err()
}

func (r *postgresPlayerRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM players`)
	return err
}

func scanPlayer(rowScanner interface{ Scan(...any) error }) (*models.Player, error) {
	var (
		id, cp int
		name   string
		zone   string
	)
	if err := rowScanner.Scan(&id, &name, &cp, &zone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return models.NewPlayer(id, name, cp, models.RatingZone(zone)), nil
}
