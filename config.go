package main

import "sync"

const (
	DifficultyHard   = "hard"
	DifficultyMedium = "medium"
	DifficultyEasy   = "easy"
)

type Config struct {
	AiDifficulty       string  `json:"ai_difficulty"`
	AiMixedProbability float64 `json:"ai_mixed_probability"`
	AiSeed             int64   `json:"ai_seed"`
	AiMaxDepth         int     `json:"ai_max_depth"`
	AiLogSearchStats   bool    `json:"ai_log_search_stats"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		AiDifficulty: DifficultyHard,

		// Medium plays the optimal move 70% of the time.
		AiMixedProbability: 0.7,

		// 0 seeds from the clock; tests set explicit seeds.
		AiSeed: 0,

		// 0 searches to terminal positions, always feasible on 3x3.
		AiMaxDepth: 0,

		AiLogSearchStats: false,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
