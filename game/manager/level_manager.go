package manager

import (
	"time"
)

// LevelManager turns score into level and level into tick interval.
type LevelManager struct {
	step      int
	baseDelay time.Duration
	minDelay  time.Duration
	delayStep time.Duration

	level int
	delay time.Duration
}

func NewLevelManager(step int, baseDelay, minDelay, delayStep time.Duration) *LevelManager {
	lm := &LevelManager{
		step:      step,
		baseDelay: baseDelay,
		minDelay:  minDelay,
		delayStep: delayStep,
	}
	lm.Reset()
	return lm
}

// Reset returns to level 1 at the base delay.
func (lm *LevelManager) Reset() {
	lm.level = 1
	lm.delay = lm.DelayFor(1)
}

// ExpectedLevel is floor(score/step)+1.
func (lm *LevelManager) ExpectedLevel(score int) int {
	return score/lm.step + 1
}

// DelayFor is max(minDelay, baseDelay - (level-1)*delayStep).
func (lm *LevelManager) DelayFor(level int) time.Duration {
	d := lm.baseDelay - time.Duration(level-1)*lm.delayStep
	if d < lm.minDelay {
		return lm.minDelay
	}
	return d
}

// Update raises the level to match score. It reports whether the level
// changed; the level never goes down.
func (lm *LevelManager) Update(score int) bool {
	expected := lm.ExpectedLevel(score)
	if expected <= lm.level {
		return false
	}
	lm.level = expected
	lm.delay = lm.DelayFor(expected)
	return true
}

func (lm *LevelManager) Level() int {
	return lm.level
}

func (lm *LevelManager) Delay() time.Duration {
	return lm.delay
}
