// Package season tracks championship-point accrual across a season.
// Only a player's best five major finishes count toward their total;
// a sixth finish replaces the lowest only when it improves on it.
package season

import (
	"sort"
)

// BestFinishLimit is the number of major finishes that count toward a
// season total.
const BestFinishLimit = 5

// Entry is one player's season ledger.
type Entry struct {
	PlayerID int
	Name     string
	LocalsCP int
	Finishes []int // best-first, at most BestFinishLimit
}

// TotalCP is locals plus the counted finishes.
func (e *Entry) TotalCP() int {
	total := e.LocalsCP
	for _, f := range e.Finishes {
		total += f
	}
	return total
}

// Standings holds the season ledger for a set of players.
type Standings struct {
	entries map[int]*Entry
}

func NewStandings() *Standings {
	return &Standings{entries: make(map[int]*Entry)}
}

// Add registers a player with their baseline locals CP. Re-adding an
// existing player is a no-op.
func (s *Standings) Add(playerID int, name string, localsCP int) {
	if _, ok := s.entries[playerID]; ok {
		return
	}
	s.entries[playerID] = &Entry{PlayerID: playerID, Name: name, LocalsCP: localsCP}
}

// ApplyFinish records a major finish worth the given points, applying
// the best-five rule. Returns false when the finish does not change
// the player's counted set (unknown player, zero points, or worse
// than their current fifth-best).
func (s *Standings) ApplyFinish(playerID, pts int) bool {
	e, ok := s.entries[playerID]
	if !ok || pts <= 0 {
		return false
	}
	if len(e.Finishes) < BestFinishLimit {
		e.Finishes = append(e.Finishes, pts)
		sort.Sort(sort.Reverse(sort.IntSlice(e.Finishes)))
		return true
	}
	lowest := e.Finishes[len(e.Finishes)-1]
	if pts <= lowest {
		return false
	}
	e.Finishes[len(e.Finishes)-1] = pts
	sort.Sort(sort.Reverse(sort.IntSlice(e.Finishes)))
	return true
}

// Ranked returns all entries ordered by total CP descending, player id
// ascending for a deterministic order.
func (s *Standings) Ranked() []*Entry {
	out := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].TotalCP(), out[j].TotalCP()
		if ti != tj {
			return ti > tj
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

// RankValue returns the total CP held at the given season rank
// (1-based), or 0 when the ledger is smaller than that.
func (s *Standings) RankValue(rank int) int {
	ranked := s.Ranked()
	if rank < 1 || rank > len(ranked) {
		return 0
	}
	return ranked[rank-1].TotalCP()
}

// Len reports the number of tracked players.
func (s *Standings) Len() int {
	return len(s.entries)
}
