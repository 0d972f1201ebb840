package models

// FieldComposition is the skill-threshold breakdown of one generated
// field, computed once per run before any pairing happens.
type FieldComposition struct {
	Total          int     `json:"total"`
	Threshold      int     `json:"threshold"`
	BelowThreshold int     `json:"below_threshold"`
	AboveThreshold int     `json:"above_threshold"`
	BelowPercent   float64 `json:"below_percent"`
	AbovePercent   float64 `json:"above_percent"`
}

// CutReport records the exact boundary of a cut for audit, e.g.
// "day2 cut at rank 187, 19 points".
type CutReport struct {
	Rule           string `json:"rule"`
	Size           int    `json:"size"`
	BoundaryRank   int    `json:"boundary_rank"`
	BoundaryPoints int    `json:"boundary_points"`
}

// TournamentResult is the complete outcome of one tournament run.
// There is no process-wide "current tournament"; callers hold the
// results they care about.
type TournamentResult struct {
	TournamentID string `json:"tournament_id"`
	Seed         int64  `json:"seed"`
	FieldSize    int    `json:"field_size"`

	Composition    FieldComposition `json:"composition"`
	Rounds         []RoundReport    `json:"rounds"`
	PairingLog     []Pairing        `json:"pairing_log"`
	Day2Cut        CutReport        `json:"day2_cut"`
	TopCut         CutReport        `json:"top_cut"`
	FinalStandings []Standing       `json:"final_standings"`
	Champion       *Player          `json:"champion"`

	// Recoverable-condition counters for the run summary.
	ForcedRematches int `json:"forced_rematches"`
	BracketRedraws  int `json:"bracket_redraws"`
}
