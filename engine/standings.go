package engine

import (
	"sort"

	"github.com/tcgsim/championship-sim/models"
)

// DefaultResistanceFloor keeps very weak opposition from dragging a
// tie-break below tournament convention.
const DefaultResistanceFloor = 0.25

// StandingsCalculator produces the total order used for cuts and
// final placements: match points, then resistance, then player id.
// The same snapshot always yields the same order.
type StandingsCalculator struct {
	ResistanceFloor float64
}

func NewStandingsCalculator(floor float64) *StandingsCalculator {
	return &StandingsCalculator{ResistanceFloor: floor}
}

// resistance averages the win percentage of every opponent faced,
// flooring each contribution. Byes contribute nothing: they add no
// opponent to the set.
func (c *StandingsCalculator) resistance(p *models.Player, byID map[int]*models.Player) float64 {
	if len(p.Opponents) == 0 {
		return 0
	}
	sum := 0.0
	for id := range p.Opponents {
		wp := byID[id].WinPercentage()
		if wp < c.ResistanceFloor {
			wp = c.ResistanceFloor
		}
		sum += wp
	}
	return sum / float64(len(p.Opponents))
}

// Compute ranks the given players. Ranks are contiguous from 1; ties
// on points and resistance break on player id, so the output is fully
// determined by the snapshot. Each player's Resistance field is
// refreshed as a side effect.
func (c *StandingsCalculator) Compute(players []*models.Player) []models.Standing {
	byID := make(map[int]*models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	for _, p := range players {
		p.Resistance = c.resistance(p, byID)
	}

	ordered := make([]*models.Player, len(players))
	copy(ordered, players)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.MatchPoints != b.MatchPoints {
			return a.MatchPoints > b.MatchPoints
		}
		if a.Resistance != b.Resistance {
			return a.Resistance > b.Resistance
		}
		return a.ID < b.ID
	})

	standings := make([]models.Standing, len(ordered))
	for i, p := range ordered {
		standings[i] = models.Standing{
			Rank:       i + 1,
			Player:     p,
			PlayerID:   p.ID,
			Points:     p.MatchPoints,
			Wins:       p.Wins,
			Losses:     p.Losses,
			Ties:       p.Ties,
			Resistance: p.Resistance,
		}
	}
	return standings
}

// FilterActive keeps the rows of still-active players and renumbers
// their ranks contiguously from 1, preserving order. Used after the
// day cut, where standings are computed over the whole field so
// resistance still sees eliminated opponents.
func FilterActive(standings []models.Standing) []models.Standing {
	out := make([]models.Standing, 0, len(standings))
	for _, s := range standings {
		if !s.Player.Active {
			continue
		}
		s.Rank = len(out) + 1
		out = append(out, s)
	}
	return out
}
