package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameSettings struct {
	XType            PlayerType `json:"-"`
	OType            PlayerType `json:"-"`
	XStarts          bool       `json:"x_starts"`
	Difficulty       string     `json:"difficulty"`
	MixedProbability float64    `json:"mixed_probability"`
	Seed             int64      `json:"seed"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		XType:            PlayerHuman,
		OType:            PlayerAI,
		XStarts:          true,
		Difficulty:       DifficultyHard,
		MixedProbability: 0.7,
		Seed:             0,
	}
}
