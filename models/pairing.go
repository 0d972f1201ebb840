package models

// Pairing is one table assignment for a single Swiss round: an
// unordered pair of player ids, or a lone player receiving the bye.
type Pairing struct {
	Round int  `json:"round"`
	P1ID  int  `json:"p1_id"`
	P2ID  int  `json:"p2_id,omitempty"`
	Bye   bool `json:"bye,omitempty"`

	// Rematch marks a forced repeat pairing, used only when the score
	// groups were exhausted. Never set silently by the engine; round
	// reports carry the total.
	Rematch bool `json:"rematch,omitempty"`
}

// RoundReport summarizes one completed Swiss round for the audit log.
type RoundReport struct {
	Round           int `json:"round"`
	ActivePlayers   int `json:"active_players"`
	Matches         int `json:"matches"`
	Byes            int `json:"byes"`
	ForcedRematches int `json:"forced_rematches"`
}
