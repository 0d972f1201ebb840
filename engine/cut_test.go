package engine

import (
	"testing"

	"github.com/tcgsim/championship-sim/models"
)

func standingsWithPoints(points ...int) []models.Standing {
	standings := make([]models.Standing, len(points))
	for i, pts := range points {
		p := models.NewPlayer(i+1, "Player", 1000, models.ZoneNA)
		p.MatchPoints = pts
		standings[i] = models.Standing{Rank: i + 1, Player: p, PlayerID: p.ID, Points: pts}
	}
	return standings
}

func TestSelectByThreshold(t *testing.T) {
	standings := standingsWithPoints(27, 21, 19, 19, 18, 15, 12)

	selected, report := SelectByThreshold(standings, 19)
	if len(selected) != 4 {
		t.Fatalf("selected %d players at >=19 points, want 4", len(selected))
	}
	for _, p := range selected {
		if p.MatchPoints < 19 {
			t.Fatalf("player %d advanced with %d points", p.ID, p.MatchPoints)
		}
	}
	if report.Size != 4 || report.BoundaryRank != 4 || report.BoundaryPoints != 19 {
		t.Fatalf("cut report wrong: %+v", report)
	}
}

func TestSelectByThresholdNobodyQualifies(t *testing.T) {
	selected, report := SelectByThreshold(standingsWithPoints(12, 9, 6), 19)
	if len(selected) != 0 || report.Size != 0 {
		t.Fatalf("expected an empty cut, got %d players", len(selected))
	}
}

func TestSelectTopN(t *testing.T) {
	standings := standingsWithPoints(30, 27, 27, 25, 24, 22, 22, 21, 19, 18)

	for _, n := range []int{2, 4, 8} {
		selected, report, err := SelectTopN(standings, n)
		if err != nil {
			t.Fatalf("top %d: %v", n, err)
		}
		if len(selected) != n {
			t.Fatalf("top %d returned %d players", n, len(selected))
		}
		for i, p := range selected {
			if p.ID != standings[i].PlayerID {
				t.Fatalf("top %d: slot %d holds player %d, want %d", n, i, p.ID, standings[i].PlayerID)
			}
		}
		if report.Size != n || report.BoundaryRank != n || report.BoundaryPoints != standings[n-1].Points {
			t.Fatalf("top %d report wrong: %+v", n, report)
		}
	}
}

func TestSelectTopNErrors(t *testing.T) {
	standings := standingsWithPoints(9, 6, 3)
	if _, _, err := SelectTopN(standings, 0); err == nil {
		t.Fatal("top 0 should fail")
	}
	if _, _, err := SelectTopN(standings, -1); err == nil {
		t.Fatal("negative top cut should fail")
	}
	if _, _, err := SelectTopN(standings, 8); err == nil {
		t.Fatal("top 8 from a field of 3 should fail")
	}
}
