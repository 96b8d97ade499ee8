package manager

import "testing"

func TestRecordGame(t *testing.T) {
	sm := NewStateManager(3)

	for _, score := range []int{4, 9, 2, 7} {
		sm.RecordGame(score)
	}

	stats := sm.GetStats()
	if stats.HighScore != 9 || sm.GetHighScore() != 9 {
		t.Errorf("Expected high score 9, got %d", stats.HighScore)
	}
	if stats.GamesPlayed != 4 {
		t.Errorf("Expected 4 games, got %d", stats.GamesPlayed)
	}
	want := []int{9, 2, 7}
	if len(stats.ScoreHistory) != len(want) {
		t.Fatalf("Expected history %v, got %v", want, stats.ScoreHistory)
	}
	for i := range want {
		if stats.ScoreHistory[i] != want[i] {
			t.Errorf("History[%d] = %d, want %d", i, stats.ScoreHistory[i], want[i])
		}
	}

	stats.ScoreHistory[0] = 100
	if sm.GetStats().ScoreHistory[0] != 9 {
		t.Error("GetStats should return a copy")
	}
}
