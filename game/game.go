package game

import (
	"time"

	"github.com/google/uuid"

	"snakebox/game/entity"
	"snakebox/game/manager"
	"snakebox/game/types"
)

// Logf receives game events. The zero value of a session discards them.
type Logf func(format string, args ...any)

func discard(string, ...any) {}

// Outcome describes what a single tick did.
type Outcome struct {
	Ate       bool
	LevelUp   bool
	Died      bool
	Collision manager.CollisionType
}

// Game is the whole state of one player's board. It has no GUI dependency;
// callers serialize access (see Session).
type Game struct {
	Grid      types.Grid
	RoundID   string
	Steps     int
	StartTime time.Time

	cfg       types.Config
	snake     *entity.Snake
	alive     bool
	collision manager.CollisionType

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	levelMgr     *manager.LevelManager
	stateMgr     *manager.StateManager
	logf         Logf
}

// NewGame builds a game in its initial state. cfg must be valid.
func NewGame(cfg types.Config, logf Logf) *Game {
	if logf == nil {
		logf = discard
	}
	grid := cfg.Grid()
	g := &Game{
		Grid:         grid,
		cfg:          cfg,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, cfg.Seed),
		levelMgr:     manager.NewLevelManager(cfg.LevelStep, cfg.BaseDelay, cfg.MinDelay, cfg.DelayStep),
		stateMgr:     manager.NewStateManager(types.ScoreHistoryN),
		logf:         logf,
	}
	g.Reset()
	return g
}

// Reset puts the snake back on the start tile facing right with no body,
// places new food and returns to level 1. Safe to call at any time.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(g.cfg.Start, types.Right)
	g.foodMgr.GenerateFood()
	g.levelMgr.Reset()
	g.alive = true
	g.collision = manager.NoCollision
	g.Steps = 0
	g.StartTime = time.Now()
	g.RoundID = uuid.NewString()
	g.logf("round %s started, food at %v", g.RoundID, g.foodMgr.GetFood())
}

// Tick advances the board by one step. A dead game does not change.
func (g *Game) Tick() Outcome {
	var out Outcome
	if !g.alive {
		return out
	}
	g.Steps++

	// Eat before moving: the new segment lands on the food tile, which is
	// where the head is now.
	food := g.foodMgr.GetFood()
	if g.collisionMgr.IsFoodCollision(g.snake.Head, food) {
		g.snake.Grow(food)
		g.foodMgr.GenerateFood()
		out.Ate = true
		if g.levelMgr.Update(g.Score()) {
			out.LevelUp = true
			g.logf("round %s reached level %d, delay %v", g.RoundID, g.levelMgr.Level(), g.levelMgr.Delay())
		}
	}

	g.snake.Move()

	if c := g.collisionMgr.CheckCollision(g.snake); c != manager.NoCollision {
		g.alive = false
		g.collision = c
		out.Died = true
		out.Collision = c
		g.stateMgr.RecordGame(g.Score())
		history := g.stateMgr.GetStats().ScoreHistory
		g.logf("round %s over: %s collision at %v, score %d, level %d after %d steps in %v; best %d, average %.1f over last %d",
			g.RoundID, c, g.snake.Head, g.Score(), g.Level(), g.Steps, time.Since(g.StartTime).Round(time.Millisecond),
			g.stateMgr.GetHighScore(), meanScore(history), len(history))
	}
	return out
}

func meanScore(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return float64(total) / float64(len(scores))
}

// Steer requests a new direction for the next tick. Reversing onto the
// direction last moved in is refused. Later requests before the next tick
// replace earlier ones.
func (g *Game) Steer(dir types.Direction) bool {
	return g.snake.SetDirection(dir)
}

func (g *Game) Alive() bool {
	return g.alive
}

// Score is the number of body segments.
func (g *Game) Score() int {
	return g.snake.Len()
}

func (g *Game) Level() int {
	return g.levelMgr.Level()
}

// Delay is the tick interval for the current level.
func (g *Game) Delay() time.Duration {
	return g.levelMgr.Delay()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) GetStats() manager.GameStats {
	return g.stateMgr.GetStats()
}

// Snapshot is a deep copy of everything the renderer draws.
type Snapshot struct {
	RoundID     string
	Grid        types.Grid
	Head        types.Point
	Segments    []types.Point
	Food        types.Point
	Direction   types.Direction
	Score       int
	Level       int
	Delay       time.Duration
	Alive       bool
	Collision   manager.CollisionType
	HighScore   int
	GamesPlayed int
}

func (g *Game) Snapshot() Snapshot {
	snake := g.snake.Clone()
	stats := g.stateMgr.GetStats()
	return Snapshot{
		RoundID:     g.RoundID,
		Grid:        g.Grid,
		Head:        snake.Head,
		Segments:    snake.Segments,
		Food:        g.foodMgr.GetFood(),
		Direction:   snake.Direction,
		Score:       snake.Len(),
		Level:       g.levelMgr.Level(),
		Delay:       g.levelMgr.Delay(),
		Alive:       g.alive,
		Collision:   g.collision,
		HighScore:   stats.HighScore,
		GamesPlayed: stats.GamesPlayed,
	}
}
