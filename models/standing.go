package models

// Standing is one row of a computed ranking. It references the pool's
// player record rather than copying the match ledger, so a standing
// can never diverge from the authoritative per-run state.
type Standing struct {
	Rank       int     `json:"rank"`
	Player     *Player `json:"-"`
	PlayerID   int     `json:"player_id"`
	Points     int     `json:"match_points"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Ties       int     `json:"ties"`
	Resistance float64 `json:"resistance"`
}
