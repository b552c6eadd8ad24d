package main

import "time"

type AIPlayer struct {
	policy *MovePolicy
}

func NewAIPlayer(policy *MovePolicy) *AIPlayer {
	if policy == nil {
		policy = policyFromConfig(GetConfig())
	}
	return &AIPlayer{policy: policy}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) ChooseMove(state GameState) (Move, error) {
	config := GetConfig()
	policy := a.policy
	if config.AiLogSearchStats {
		stats := &SearchStats{Start: time.Now()}
		scoped := *policy
		scoped.Search.Stats = stats
		move, err := scoped.ChooseMove(state.Board, state.ToMove)
		if err == nil {
			logSearchStats("choose", stats, SearchResult{Move: move, HasMove: true})
		}
		return move, err
	}
	return policy.ChooseMove(state.Board, state.ToMove)
}

// policyFromSettings builds a per-game policy; zero-valued fields fall back
// to the global config.
func policyFromSettings(settings GameSettings) *MovePolicy {
	config := GetConfig()
	if settings.Difficulty != "" {
		config.AiDifficulty = settings.Difficulty
	}
	if settings.MixedProbability > 0 {
		config.AiMixedProbability = settings.MixedProbability
	}
	if settings.Seed != 0 {
		config.AiSeed = settings.Seed
	}
	return policyFromConfig(config)
}

// policyFromConfig maps the configured difficulty onto a move policy:
// hard plays optimally, medium mixes optimal and random moves, easy plays
// uniformly at random.
func policyFromConfig(config Config) *MovePolicy {
	seed := config.AiSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	kind := PolicyOptimal
	switch config.AiDifficulty {
	case DifficultyMedium:
		kind = PolicyMixed
	case DifficultyEasy:
		kind = PolicyRandom
	}
	policy := NewMovePolicy(kind, config.AiMixedProbability, seed)
	policy.Search.MaxDepth = config.AiMaxDepth
	return policy
}
