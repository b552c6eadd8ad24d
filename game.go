package main

import (
	"errors"
	"time"
)

var ErrNotRunning = errors.New("game not running")

type Game struct {
	settings  GameSettings
	state     GameState
	history   MoveHistory
	xPlayer   IPlayer
	oPlayer   IPlayer
	turnStart time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) History() MoveHistory {
	return g.history
}

// TryApplyMove validates and applies a move for the side to act, records it
// in the history, and advances the game status. The board is only replaced
// once the move is known to be legal, so a rejected move leaves the state
// untouched.
func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, ErrNotRunning.Error()
	}
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()

	next, err := g.state.Board.Apply(move, g.state.ToMove)
	if err != nil {
		g.state.LastMessage = "Illegal move: " + err.Error()
		return false, g.state.LastMessage
	}
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	g.state.Board = next
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.MoveCount++
	g.state.LastMessage = ""
	g.history.Push(HistoryEntry{Move: move, Player: g.state.ToMove, ElapsedMs: elapsedMs, IsAi: isAiMove})

	switch EvaluateOutcome(g.state.Board) {
	case OutcomeXWins, OutcomeOWins:
		g.state.Status = statusForWinner(g.state.ToMove)
		if line, ok := FindWinningLine(g.state.Board); ok {
			g.state.WinningLine = line
		}
		return true, ""
	case OutcomeDraw:
		g.state.Status = StatusDraw
		return true, ""
	}

	g.state.ToMove = otherPlayer(g.state.ToMove)
	g.turnStart = time.Now()
	return true, ""
}

// Tick advances the game by at most one move: a buffered human move if one
// is pending, or the current AI player's choice. Returns true when a move
// was applied.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			move := human.TakePendingMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		return false
	}
	move, err := player.ChooseMove(g.state.Clone())
	if err != nil {
		return false
	}
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerX {
		return g.xPlayer
	}
	return g.oPlayer
}

func (g *Game) createPlayers() {
	if g.settings.XType == PlayerHuman {
		g.xPlayer = NewHumanPlayer()
	} else {
		g.xPlayer = NewAIPlayer(policyFromSettings(g.settings))
	}
	if g.settings.OType == PlayerHuman {
		g.oPlayer = NewHumanPlayer()
	} else {
		g.oPlayer = NewAIPlayer(policyFromSettings(g.settings))
	}
}
