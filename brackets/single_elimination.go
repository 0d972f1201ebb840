package brackets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tcgsim/championship-sim/engine"
	"github.com/tcgsim/championship-sim/models"
)

// BracketMatch is one resolved node of the elimination tree.
type BracketMatch struct {
	UID          string
	Round        int
	OrderInRound int

	P1     *models.Player
	P2     *models.Player
	Winner *models.Player
	Loser  *models.Player

	// Redraws counts ties re-drawn from the seed stream until a
	// decisive result, as elimination rounds disallow ties.
	Redraws int
}

// Bracket is a single-elimination top cut seeded from final Swiss
// standings. It holds only references into the player pool and is
// discarded once placements are assigned.
type Bracket struct {
	Seeds   []*models.Player
	Matches []*BracketMatch
	Rounds  int
	Redraws int

	slots []*models.Player
}

// NewSingleElimination seeds the bracket from players in rank order
// (seeds[0] is the top seed). A non-power-of-two field gives the top
// seeds first-round byes.
func NewSingleElimination(seeds []*models.Player) (*Bracket, error) {
	n := len(seeds)
	if n < 2 {
		return nil, errors.New("single elimination requires at least 2 players")
	}

	size := nextPowerOfTwo(n)
	order := seedOrder(size)
	slots := make([]*models.Player, size)
	for i, seedNum := range order {
		if seedNum <= n {
			slots[i] = seeds[seedNum-1]
		}
	}

	rounds := 0
	for s := size; s > 1; s /= 2 {
		rounds++
	}

	return &Bracket{
		Seeds:  seeds,
		Rounds: rounds,
		slots:  slots,
	}, nil
}

// Resolve plays the bracket bottom-up and assigns a final placement to
// every participant: champion 1, runner-up 2, then each earlier
// round's losers in seed order, so placements cover the contiguous
// range 1..len(Seeds).
func (b *Bracket) Resolve(model *engine.OutcomeModel) (*models.Player, error) {
	if len(b.Matches) > 0 {
		return nil, errors.New("bracket already resolved")
	}

	current := b.slots
	round := 0
	var losersByRound [][]*models.Player

	for len(current) > 1 {
		round++
		next := make([]*models.Player, 0, len(current)/2)
		var losers []*models.Player
		order := 0

		for i := 0; i < len(current); i += 2 {
			p1, p2 := current[i], current[i+1]
			switch {
			case p1 == nil && p2 == nil:
				next = append(next, nil)
			case p2 == nil:
				next = append(next, p1)
			case p1 == nil:
				next = append(next, p2)
			default:
				order++
				outcome, redraws := model.ResolveDecisive(p1, p2)
				b.Redraws += redraws

				winner, loser := p1, p2
				if outcome == engine.OutcomeP2Wins {
					winner, loser = p2, p1
				}
				b.Matches = append(b.Matches, &BracketMatch{
					UID:          fmt.Sprintf("R%dM%d", round, order),
					Round:        round,
					OrderInRound: order,
					P1:           p1,
					P2:           p2,
					Winner:       winner,
					Loser:        loser,
					Redraws:      redraws,
				})
				next = append(next, winner)
				losers = append(losers, loser)
			}
		}
		losersByRound = append(losersByRound, losers)
		current = next
	}

	champion := current[0]
	if champion == nil {
		return nil, errors.New("bracket resolved to no champion")
	}

	seedIndex := make(map[int]int, len(b.Seeds))
	for i, s := range b.Seeds {
		seedIndex[s.ID] = i
	}

	champion.FinalPlacement = 1
	place := 2
	for r := len(losersByRound) - 1; r >= 0; r-- {
		losers := losersByRound[r]
		sort.Slice(losers, func(i, j int) bool {
			return seedIndex[losers[i].ID] < seedIndex[losers[j].ID]
		})
		for _, l := range losers {
			l.FinalPlacement = place
			place++
		}
	}

	return champion, nil
}
