package main

type PlayerColor int

type GameStatus int

const (
	PlayerX PlayerColor = iota
	PlayerO
)

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusXWon
	StatusOWon
	StatusDraw
)

type GameState struct {
	Board       Board
	ToMove      PlayerColor
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	MoveCount   int
	LastMessage string
	WinningLine []Move
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = Board{}
	if settings.XStarts {
		s.ToMove = PlayerX
	} else {
		s.ToMove = PlayerO
	}
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = Move{X: -1, Y: -1}
	s.MoveCount = 0
	s.LastMessage = ""
	s.WinningLine = nil
}

func (s GameState) Clone() GameState {
	clone := s
	clone.WinningLine = append([]Move(nil), s.WinningLine...)
	return clone
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (p PlayerColor) String() string {
	if p == PlayerX {
		return "X"
	}
	return "O"
}

func statusForWinner(player PlayerColor) GameStatus {
	if player == PlayerX {
		return StatusXWon
	}
	return StatusOWon
}
