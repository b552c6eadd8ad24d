package main

import (
	"sync"

	"github.com/google/uuid"
)

// GameSession ties one game to its broadcast hub.
type GameSession struct {
	ID         string
	Controller *GameController
	Hub        *Hub
}

// GameService owns all live sessions and the process-wide scoreboard.
type GameService struct {
	mu       sync.Mutex
	sessions map[string]*GameSession
	tallied  map[string]bool
	scores   *Scoreboard
	done     <-chan struct{}
}

func NewGameService(done <-chan struct{}) *GameService {
	return &GameService{
		sessions: make(map[string]*GameSession),
		tallied:  make(map[string]bool),
		scores:   NewScoreboard(),
		done:     done,
	}
}

func (s *GameService) Create(settings GameSettings) *GameSession {
	session := &GameSession{
		ID:         uuid.NewString(),
		Controller: NewGameController(settings),
		Hub:        NewHub(),
	}
	go session.Hub.Run(s.done)
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

func (s *GameService) Get(id string) (*GameSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *GameService) Scores() ScoreboardSnapshot {
	return s.scores.Snapshot()
}

// TickAll drives every session one step and tallies games that just
// finished. Each finished game is counted exactly once, including ones
// ended by a human move outside the tick loop.
func (s *GameService) TickAll() {
	s.mu.Lock()
	sessions := make([]*GameSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.mu.Unlock()

	for _, session := range sessions {
		if session.Controller.Tick() {
			session.Hub.Publish(wsMessage{Type: "status", Payload: mustMarshal(sessionStatus(session))})
		}
		s.tallyIfFinished(session)
	}
}

// RestartSession resets a finished or running game in place and re-arms its
// scoreboard tally.
func (s *GameService) RestartSession(session *GameSession, settings GameSettings) {
	s.mu.Lock()
	delete(s.tallied, session.ID)
	s.mu.Unlock()
	session.Controller.StartGame(settings)
	session.Hub.Publish(wsMessage{Type: "reset", Payload: mustMarshal(sessionStatus(session))})
}

func (s *GameService) tallyIfFinished(session *GameSession) {
	status := session.Controller.State().Status
	switch status {
	case StatusXWon, StatusOWon, StatusDraw:
	default:
		return
	}
	s.mu.Lock()
	already := s.tallied[session.ID]
	if !already {
		s.tallied[session.ID] = true
	}
	s.mu.Unlock()
	if !already {
		s.scores.Record(status)
	}
}
