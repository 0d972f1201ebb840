package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/tcgsim/championship-sim/brackets"
	"github.com/tcgsim/championship-sim/config"
	"github.com/tcgsim/championship-sim/engine"
	"github.com/tcgsim/championship-sim/models"
)

// TournamentService drives one full pipeline: field generation, the
// day-1 Swiss phase, the day-2 cut and rounds, and the top-cut
// bracket. Every run returns an explicit result value; the service
// itself keeps no state between runs.
type TournamentService struct {
	logger *slog.Logger
}

func NewTournamentService(logger *slog.Logger) *TournamentService {
	return &TournamentService{logger: logger}
}

// RunTournament generates a fresh field (sized randomly within the
// configured range) and simulates the full event from the given seed.
func (s *TournamentService) RunTournament(ctx context.Context, cfg *config.Config, seed int64) (*models.TournamentResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	size := cfg.FieldSizeMin
	if cfg.FieldSizeMax > cfg.FieldSizeMin {
		size += rng.Intn(cfg.FieldSizeMax - cfg.FieldSizeMin + 1)
	}
	field := engine.GenerateField(rng, size)
	return s.run(ctx, cfg, seed, rng, field)
}

// RunTournamentWithField simulates the full event over a caller-held
// roster, e.g. one loaded from the player database. The roster's
// per-run ledger fields must be zeroed.
func (s *TournamentService) RunTournamentWithField(ctx context.Context, cfg *config.Config, seed int64, field []*models.Player) (*models.TournamentResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	return s.run(ctx, cfg, seed, rng, field)
}

func (s *TournamentService) run(ctx context.Context, cfg *config.Config, seed int64, rng *rand.Rand, field []*models.Player) (*models.TournamentResult, error) {
	if len(field) == 0 {
		return nil, ErrEmptyField
	}
	if len(field) < cfg.TopCutSize {
		return nil, fmt.Errorf("%w: cut %d, field %d", ErrCutTooLarge, cfg.TopCutSize, len(field))
	}

	byID := make(map[int]*models.Player, len(field))
	for _, p := range field {
		byID[p.ID] = p
	}

	model := engine.NewOutcomeModel(cfg.SkillFactor, cfg.TieRate, rng)
	pairer := engine.NewSwissPairer(rng)
	calc := engine.NewStandingsCalculator(cfg.ResistanceFloor)

	result := &models.TournamentResult{
		TournamentID: fmt.Sprintf("tournament_%d", seed),
		Seed:         seed,
		FieldSize:    len(field),
		Composition:  engine.Composition(field, cfg.SkillThreshold),
	}

	round := 0
	playRounds := func(n int) error {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			round++
			pairings, report := pairer.PairRound(field, round)
			engine.PlayPairings(byID, pairings, model)
			result.PairingLog = append(result.PairingLog, pairings...)
			result.Rounds = append(result.Rounds, report)
			result.ForcedRematches += report.ForcedRematches
			if report.ForcedRematches > 0 {
				s.logger.Warn("forced repeat pairings",
					slog.Int("round", round),
					slog.Int("count", report.ForcedRematches))
			}
			s.logger.Debug("round complete",
				slog.Int("round", round),
				slog.Int("matches", report.Matches),
				slog.Int("byes", report.Byes))
		}
		return nil
	}

	if err := playRounds(cfg.Day1Rounds); err != nil {
		return nil, err
	}

	day1Standings := calc.Compute(field)
	advancing, day2Cut := engine.SelectByThreshold(day1Standings, cfg.AdvancePoints)
	if len(advancing) == 0 {
		return nil, ErrNoAdvancement
	}
	result.Day2Cut = day2Cut
	s.logger.Info("day-2 cut applied",
		slog.Int("advancing", day2Cut.Size),
		slog.Int("boundary_rank", day2Cut.BoundaryRank),
		slog.Int("threshold", day2Cut.BoundaryPoints))

	advancingIDs := make(map[int]struct{}, len(advancing))
	for _, p := range advancing {
		advancingIDs[p.ID] = struct{}{}
	}
	for _, p := range field {
		if _, ok := advancingIDs[p.ID]; !ok {
			p.Active = false
		}
	}

	if err := playRounds(cfg.Day2Rounds); err != nil {
		return nil, err
	}

	// Final Swiss standings over the whole pool, so resistance still
	// counts eliminated opponents' records.
	finalAll := calc.Compute(field)
	finalActive := engine.FilterActive(finalAll)

	topSeeds, topCut, err := engine.SelectTopN(finalActive, cfg.TopCutSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCutTooLarge, err)
	}
	result.TopCut = topCut

	bracket, err := brackets.NewSingleElimination(topSeeds)
	if err != nil {
		return nil, err
	}
	champion, err := bracket.Resolve(model)
	if err != nil {
		return nil, err
	}
	result.Champion = champion
	result.BracketRedraws = bracket.Redraws

	// Bracket participants hold placements 1..K; the remaining day-2
	// players follow in Swiss order, then the eliminated field.
	place := cfg.TopCutSize + 1
	for _, st := range finalAll {
		if st.Player.FinalPlacement == 0 {
			st.Player.FinalPlacement = place
			place++
		}
	}

	ordered := make([]*models.Player, len(field))
	copy(ordered, field)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].FinalPlacement < ordered[j].FinalPlacement
	})
	result.FinalStandings = make([]models.Standing, len(ordered))
	for i, p := range ordered {
		result.FinalStandings[i] = models.Standing{
			Rank:       p.FinalPlacement,
			Player:     p,
			PlayerID:   p.ID,
			Points:     p.MatchPoints,
			Wins:       p.Wins,
			Losses:     p.Losses,
			Ties:       p.Ties,
			Resistance: p.Resistance,
		}
	}

	s.logger.Info("tournament complete",
		slog.String("tournament_id", result.TournamentID),
		slog.String("champion", champion.Name),
		slog.Int("champion_cp", champion.CP),
		slog.Int("day2_field", day2Cut.Size),
		slog.Int("forced_rematches", result.ForcedRematches),
		slog.Int("bracket_redraws", result.BracketRedraws))

	return result, nil
}
