package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tcgsim/championship-sim/models"
)

var ErrResultNotFound = errors.New("tournament result not found")

// ResultRepository stores finished tournament placements for career
// analytics. Writes are simple batch inserts; there is no further
// transactional coupling with a running simulation.
type ResultRepository interface {
	SaveResult(ctx context.Context, result *models.TournamentResult) error
	LoadPlacements(ctx context.Context, tournamentID string) ([]models.Standing, error)
	PlayerPlacements(ctx context.Context, playerID int) (map[string]int, error)
}

type postgresResultRepository struct {
	db *sql.DB
}

func NewPostgresResultRepository(db *sql.DB) ResultRepository {
	return &postgresResultRepository{db: db}
}

func (r *postgresResultRepository) SaveResult(ctx context.Context, result *models.TournamentResult) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("SaveResult failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tournament_results
		    (tournament_id, player_id, placement, match_points, wins, losses, ties, resistance, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	if err != nil {
		return fmt.Errorf("SaveResult failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, st := range result.FinalStandings {
		_, err := stmt.ExecContext(ctx,
			result.TournamentID, st.PlayerID, st.Rank,
			st.Points, st.Wins, st.Losses, st.Ties, st.Resistance, now)
		if err != nil {
			return fmt.Errorf("SaveResult failed for player %d: %w", st.PlayerID, err)
		}
	}
	return tx.Commit()
}

func (r *postgresResultRepository) LoadPlacements(ctx context.Context, tournamentID string) ([]models.Standing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT player_id, placement, match_points, wins, losses, ties, resistance
		FROM tournament_results
		WHERE tournament_id = $1
		ORDER BY placement ASC`, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standings := make([]models.Standing, 0)
	for rows.Next() {
		var st models.Standing
		if err := rows.Scan(&st.PlayerID, &st.Rank, &st.Points, &st.Wins, &st.Losses, &st.Ties, &st.Resistance); err != nil {
			return nil, err
		}
		standings = append(standings, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(standings) == 0 {
		return nil, ErrResultNotFound
	}
	return standings, nil
}

// PlayerPlacements maps tournament id to final placement for one
// player, the raw material for head-to-head and career reports.
func (r *postgresResultRepository) PlayerPlacements(ctx context.Context, playerID int) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tournament_id, placement
		FROM tournament_results
		WHERE player_id = $1
		ORDER BY recorded_at ASC`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	placements := make(map[string]int)
	for rows.Next() {
		var tid string
		var place int
		if err := rows.Scan(&tid, &place); err != nil {
			return nil, err
		}
		placements[tid] = place
	}
	return placements, rows.Err()
}
