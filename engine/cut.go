package engine

import (
	"fmt"

	"github.com/tcgsim/championship-sim/models"
)

// SelectByThreshold keeps every player at or above the match-point
// threshold, independent of count (the day-2 cut rule). The report
// records the exact boundary for audit.
func SelectByThreshold(standings []models.Standing, points int) ([]*models.Player, models.CutReport) {
	report := models.CutReport{Rule: "day2_threshold", BoundaryPoints: points}
	selected := make([]*models.Player, 0)
	for _, s := range standings {
		if s.Points < points {
			break
		}
		selected = append(selected, s.Player)
		report.BoundaryRank = s.Rank
	}
	report.Size = len(selected)
	return selected, report
}

// SelectTopN takes exactly n players strictly by rank order (the
// top-cut rule). The field must be at least n strong; a smaller field
// is a configuration error, not a runtime fallback.
func SelectTopN(standings []models.Standing, n int) ([]*models.Player, models.CutReport, error) {
	if n <= 0 {
		return nil, models.CutReport{}, fmt.Errorf("top cut size must be positive, got %d", n)
	}
	if len(standings) < n {
		return nil, models.CutReport{}, fmt.Errorf("top cut of %d requested from a field of %d", n, len(standings))
	}
	selected := make([]*models.Player, n)
	for i := 0; i < n; i++ {
		selected[i] = standings[i].Player
	}
	report := models.CutReport{
		Rule:           "top_cut",
		Size:           n,
		BoundaryRank:   standings[n-1].Rank,
		BoundaryPoints: standings[n-1].Points,
	}
	return selected, report, nil
}
