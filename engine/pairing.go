package engine

import (
	"math/rand"
	"sort"

	"github.com/tcgsim/championship-sim/models"
)

// SwissPairer produces one round of legal pairings: players grouped by
// match points, randomized within each group, never repeating an
// opponent unless every alternative is exhausted. Pairing order inside
// a score group comes from the injected source only.
type SwissPairer struct {
	rng *rand.Rand
}

func NewSwissPairer(rng *rand.Rand) *SwissPairer {
	return &SwissPairer{rng: rng}
}

// PairRound partitions the active players into score groups and pairs
// them top group first. A player with no legal opponent in their group
// is pulled down into the next group; once the groups are exhausted,
// leftovers are paired even if that forces a rematch, which is counted
// in the report. With an odd active count the lowest-ranked player
// without a prior bye receives the bye.
func (s *SwissPairer) PairRound(players []*models.Player, round int) ([]models.Pairing, models.RoundReport) {
	active := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if p.Active {
			active = append(active, p)
		}
	}

	report := models.RoundReport{Round: round, ActivePlayers: len(active)}
	if len(active) == 0 {
		return nil, report
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].MatchPoints != active[j].MatchPoints {
			return active[i].MatchPoints > active[j].MatchPoints
		}
		return active[i].ID < active[j].ID
	})

	var byePlayer *models.Player
	if len(active)%2 == 1 {
		byePlayer = chooseByeRecipient(active)
	}

	var groups [][]*models.Player
	for _, p := range active {
		if p == byePlayer {
			continue
		}
		n := len(groups)
		if n == 0 || groups[n-1][0].MatchPoints != p.MatchPoints {
			groups = append(groups, []*models.Player{p})
		} else {
			groups[n-1] = append(groups[n-1], p)
		}
	}

	pairings := make([]models.Pairing, 0, len(active)/2+1)
	var carry []*models.Player
	for _, group := range groups {
		s.rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		// Pulled-down players pair before the group they fell into.
		pool := append(carry, group...)
		carry = nil

		used := make([]bool, len(pool))
		for i := range pool {
			if used[i] {
				continue
			}
			matched := false
			for j := i + 1; j < len(pool); j++ {
				if used[j] || pool[i].HasPlayed(pool[j].ID) {
					continue
				}
				pairings = append(pairings, models.Pairing{Round: round, P1ID: pool[i].ID, P2ID: pool[j].ID})
				used[i], used[j] = true, true
				matched = true
				break
			}
			if !matched {
				carry = append(carry, pool[i])
			}
		}
	}

	// Every group is exhausted; whatever remains pairs up even when
	// that repeats an opponent. The fallback is flagged per pairing
	// and totalled, never silent.
	for len(carry) > 1 {
		a := carry[0]
		k := 1
		for idx := 1; idx < len(carry); idx++ {
			if !a.HasPlayed(carry[idx].ID) {
				k = idx
				break
			}
		}
		b := carry[k]
		rematch := a.HasPlayed(b.ID)
		if rematch {
			report.ForcedRematches++
		}
		pairings = append(pairings, models.Pairing{Round: round, P1ID: a.ID, P2ID: b.ID, Rematch: rematch})
		carry = append(carry[:k], carry[k+1:]...)
		carry = carry[1:]
	}
	if len(carry) == 1 && byePlayer == nil {
		byePlayer = carry[0]
	}

	if byePlayer != nil {
		pairings = append(pairings, models.Pairing{Round: round, P1ID: byePlayer.ID, Bye: true})
		report.Byes = 1
	}
	report.Matches = len(pairings) - report.Byes

	return pairings, report
}

// chooseByeRecipient walks the standings bottom-up for the lowest
// player who has not yet had a bye; if everyone has, the lowest player
// takes a second one.
func chooseByeRecipient(activeDesc []*models.Player) *models.Player {
	for i := len(activeDesc) - 1; i >= 0; i-- {
		if !activeDesc[i].ReceivedBye {
			return activeDesc[i]
		}
	}
	return activeDesc[len(activeDesc)-1]
}

// PlayPairings resolves every pairing with the outcome model and
// applies the results to the players' ledgers. Byes score as wins
// without recording an opponent. Returns the number of matches played.
func PlayPairings(byID map[int]*models.Player, pairings []models.Pairing, model *OutcomeModel) int {
	matches := 0
	for _, pr := range pairings {
		if pr.Bye {
			byID[pr.P1ID].RecordBye(PointsPerWin)
			continue
		}
		a, b := byID[pr.P1ID], byID[pr.P2ID]
		a.AddOpponent(b.ID)
		b.AddOpponent(a.ID)
		switch model.Resolve(a, b) {
		case OutcomeP1Wins:
			a.RecordWin(PointsPerWin)
			b.RecordLoss()
		case OutcomeP2Wins:
			b.RecordWin(PointsPerWin)
			a.RecordLoss()
		case OutcomeTie:
			a.RecordTie(PointsPerTie)
			b.RecordTie(PointsPerTie)
		}
		matches++
	}
	return matches
}
