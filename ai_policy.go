package main

import "math/rand"

type PolicyKind int

const (
	// PolicyOptimal always returns the search engine's best move.
	PolicyOptimal PolicyKind = iota
	// PolicyMixed returns the best move with probability MixedProbability,
	// otherwise a uniformly random legal move.
	PolicyMixed
	// PolicyRandom returns a uniformly random legal move without searching.
	PolicyRandom
)

// MovePolicy selects moves at a configurable play strength without touching
// the search engine itself. The random source is injected so Mixed and
// Random are seedable in tests; Optimal never draws from it.
type MovePolicy struct {
	Kind             PolicyKind
	MixedProbability float64
	Search           SearchSettings
	rng              *rand.Rand
}

func NewMovePolicy(kind PolicyKind, mixedProbability float64, seed int64) *MovePolicy {
	return &MovePolicy{
		Kind:             kind,
		MixedProbability: mixedProbability,
		rng:              rand.New(rand.NewSource(seed)),
	}
}

// ChooseMove returns a legal move for player, or ErrNoLegalMoves when the
// board is full or already decided. Callers should check the outcome first.
func (p *MovePolicy) ChooseMove(board Board, player PlayerColor) (Move, error) {
	if EvaluateOutcome(board).Terminal() {
		return Move{}, ErrNoLegalMoves
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return Move{}, ErrNoLegalMoves
	}
	switch p.Kind {
	case PolicyRandom:
		return moves[p.rng.Intn(len(moves))], nil
	case PolicyMixed:
		if p.rng.Float64() >= p.MixedProbability {
			return moves[p.rng.Intn(len(moves))], nil
		}
	}
	result := Search(board, player, p.Search)
	if !result.HasMove {
		return Move{}, ErrNoLegalMoves
	}
	return result.Move, nil
}

func (k PolicyKind) String() string {
	switch k {
	case PolicyMixed:
		return "mixed"
	case PolicyRandom:
		return "random"
	default:
		return "optimal"
	}
}
