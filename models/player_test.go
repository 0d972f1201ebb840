package models

import "testing"

func TestPlayerLedger(t *testing.T) {
	p := NewPlayer(1, "Entrant", 1200, ZoneNA)
	if !p.Active || p.ReceivedBye || len(p.Opponents) != 0 {
		t.Fatalf("fresh player ledger wrong: %+v", p)
	}

	p.AddOpponent(2)
	p.RecordWin(3)
	p.AddOpponent(3)
	p.RecordLoss()
	p.AddOpponent(4)
	p.RecordTie(1)

	if p.MatchPoints != 4 {
		t.Fatalf("match points %d, want 4", p.MatchPoints)
	}
	if p.RoundsPlayed() != 3 {
		t.Fatalf("rounds played %d, want 3", p.RoundsPlayed())
	}
	if got := p.Record(); got != "1-1-1" {
		t.Fatalf("record %q, want 1-1-1", got)
	}
	if !p.HasPlayed(3) || p.HasPlayed(9) {
		t.Fatal("opponent history wrong")
	}
}

func TestByeCountsAsWin(t *testing.T) {
	p := NewPlayer(1, "Entrant", 1200, ZoneNA)
	p.RecordBye(3)

	if !p.ReceivedBye || p.Wins != 1 || p.MatchPoints != 3 {
		t.Fatalf("bye ledger wrong: %+v", p)
	}
	if p.RoundsPlayed() != 1 {
		t.Fatalf("bye did not occupy a round slot")
	}
	if len(p.Opponents) != 0 {
		t.Fatal("bye registered an opponent")
	}
}

func TestWinPercentage(t *testing.T) {
	p := NewPlayer(1, "Entrant", 1200, ZoneNA)
	if p.WinPercentage() != 0 {
		t.Fatal("win percentage before round one should be 0")
	}
	p.RecordWin(3)
	p.RecordWin(3)
	p.RecordLoss()
	p.RecordTie(1)
	if got := p.WinPercentage(); got != 0.5 {
		t.Fatalf("win percentage %v, want 0.5", got)
	}
}
