package main

import "sync"

// Scoreboard tallies finished games across a process run. It is owned by
// the presentation layer; the engine itself keeps no state between calls.
type Scoreboard struct {
	mu    sync.Mutex
	xWins int
	oWins int
	draws int
}

type ScoreboardSnapshot struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
	Games int `json:"games"`
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

func (s *Scoreboard) Record(status GameStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch status {
	case StatusXWon:
		s.xWins++
	case StatusOWon:
		s.oWins++
	case StatusDraw:
		s.draws++
	}
}

func (s *Scoreboard) Snapshot() ScoreboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ScoreboardSnapshot{
		XWins: s.xWins,
		OWins: s.oWins,
		Draws: s.draws,
		Games: s.xWins + s.oWins + s.draws,
	}
}
