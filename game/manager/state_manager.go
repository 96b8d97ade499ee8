package manager

import (
	"sync"
)

// GameStats is a copy of the session record.
type GameStats struct {
	HighScore    int
	GamesPlayed  int
	ScoreHistory []int
}

// StateManager keeps the record of finished rounds for the lifetime of the
// process. Nothing is written to disk.
type StateManager struct {
	mu           sync.RWMutex
	highScore    int
	gamesPlayed  int
	scoreHistory []int
	maxHistory   int
}

func NewStateManager(maxHistory int) *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0, maxHistory),
		maxHistory:   maxHistory,
	}
}

// RecordGame adds a finished round's score.
func (sm *StateManager) RecordGame(score int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.gamesPlayed++
	if score > sm.highScore {
		sm.highScore = score
	}
	if sm.maxHistory <= 0 {
		return
	}
	if len(sm.scoreHistory) >= sm.maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.highScore
}

// GetStats returns a copy safe to hold across further rounds.
func (sm *StateManager) GetStats() GameStats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return GameStats{
		HighScore:    sm.highScore,
		GamesPlayed:  sm.gamesPlayed,
		ScoreHistory: history,
	}
}
