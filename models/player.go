package models

import "fmt"

type RatingZone string

const (
	ZoneNA    RatingZone = "NA"
	ZoneEU    RatingZone = "EU"
	ZoneLATAM RatingZone = "LATAM"
	ZoneOCE   RatingZone = "OCE"
	ZoneMESA  RatingZone = "MESA"
)

// Player is one entrant in a single tournament run. ID, Name, CP and Zone
// are fixed at field-generation time; everything else is the mutable
// per-run match ledger owned by the tournament engine.
type Player struct {
	ID   int        `json:"player_id" db:"player_id"`
	Name string     `json:"name" db:"name"`
	CP   int        `json:"cp" db:"cp"`
	Zone RatingZone `json:"rating_zone" db:"rating_zone"`

	MatchPoints    int             `json:"match_points"`
	Wins           int             `json:"wins"`
	Losses         int             `json:"losses"`
	Ties           int             `json:"ties"`
	Opponents      map[int]struct{} `json:"-"`
	ReceivedBye    bool            `json:"received_bye"`
	Active         bool            `json:"is_active"`
	FinalPlacement int             `json:"final_placement"`
	Resistance     float64         `json:"resistance"`
}

func NewPlayer(id int, name string, cp int, zone RatingZone) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		CP:        cp,
		Zone:      zone,
		Opponents: make(map[int]struct{}),
		Active:    true,
	}
}

// HasPlayed reports whether the opponent already appears in this
// player's Swiss history. A bye never registers an opponent.
func (p *Player) HasPlayed(opponentID int) bool {
	_, ok := p.Opponents[opponentID]
	return ok
}

func (p *Player) AddOpponent(opponentID int) {
	p.Opponents[opponentID] = struct{}{}
}

func (p *Player) RecordWin(pointsPerWin int) {
	p.Wins++
	p.MatchPoints += pointsPerWin
}

func (p *Player) RecordLoss() {
	p.Losses++
}

func (p *Player) RecordTie(pointsPerTie int) {
	p.Ties++
	p.MatchPoints += pointsPerTie
}

// RecordBye counts as a win worth full points but adds no opponent.
func (p *Player) RecordBye(pointsPerWin int) {
	p.ReceivedBye = true
	p.RecordWin(pointsPerWin)
}

// RoundsPlayed includes byes, since a bye occupies a round slot.
func (p *Player) RoundsPlayed() int {
	return p.Wins + p.Losses + p.Ties
}

// WinPercentage over all rounds played, 0 before the first round.
func (p *Player) WinPercentage() float64 {
	played := p.RoundsPlayed()
	if played == 0 {
		return 0
	}
	return float64(p.Wins) / float64(played)
}

// Record formats the running W-L-T line, e.g. "7-1-1".
func (p *Player) Record() string {
	return fmt.Sprintf("%d-%d-%d", p.Wins, p.Losses, p.Ties)
}
