package types

import (
	"fmt"
	"time"
)

// Game constants
const (
	TileSize      = 25  // Pixels per tile edge
	BoardPixels   = 600 // Window is a BoardPixels x BoardPixels square
	BaseDelay     = 140 * time.Millisecond
	MinDelay      = 70 * time.Millisecond
	DelayStep     = 10 * time.Millisecond // Interval shaved off per level
	LevelStep     = 5                     // Score needed per level
	StartX        = 4
	StartY        = 4
	ScoreHistoryN = 50 // Scores kept by the session record
)

// Point is a tile coordinate on the board.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width    int // in tiles
	Height   int // in tiles
	TileSize int // in pixels
}

// NewGrid builds a grid covering a widthPx x heightPx canvas.
func NewGrid(widthPx, heightPx, tileSize int) Grid {
	return Grid{
		Width:    widthPx / tileSize,
		Height:   heightPx / tileSize,
		TileSize: tileSize,
	}
}

// InBounds reports whether p lies within [0,Width) x [0,Height).
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// ToPixel returns the top-left pixel of tile p.
func (g Grid) ToPixel(p Point) (int, int) {
	return p.X * g.TileSize, p.Y * g.TileSize
}

// FromPixel returns the tile containing pixel (x, y).
func (g Grid) FromPixel(x, y int) Point {
	return Point{X: floorDiv(x, g.TileSize), Y: floorDiv(y, g.TileSize)}
}

func (g Grid) PixelWidth() int  { return g.Width * g.TileSize }
func (g Grid) PixelHeight() int { return g.Height * g.TileSize }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Config holds everything needed to start a session.
type Config struct {
	WidthPx   int
	HeightPx  int
	TileSize  int
	Start     Point
	BaseDelay time.Duration
	MinDelay  time.Duration
	DelayStep time.Duration
	LevelStep int
	Seed      uint64 // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		WidthPx:   BoardPixels,
		HeightPx:  BoardPixels,
		TileSize:  TileSize,
		Start:     Point{X: StartX, Y: StartY},
		BaseDelay: BaseDelay,
		MinDelay:  MinDelay,
		DelayStep: DelayStep,
		LevelStep: LevelStep,
	}
}

// Grid derives the board from the pixel canvas.
func (c Config) Grid() Grid {
	return NewGrid(c.WidthPx, c.HeightPx, c.TileSize)
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	g := c.Grid()
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("board %dx%d px is smaller than one %d px tile", c.WidthPx, c.HeightPx, c.TileSize)
	}
	if !g.InBounds(c.Start) {
		return fmt.Errorf("start tile %v outside %dx%d board", c.Start, g.Width, g.Height)
	}
	if c.MinDelay <= 0 || c.BaseDelay < c.MinDelay {
		return fmt.Errorf("invalid delays: base %v, min %v", c.BaseDelay, c.MinDelay)
	}
	if c.DelayStep < 0 {
		return fmt.Errorf("delay step must not be negative, got %v", c.DelayStep)
	}
	if c.LevelStep <= 0 {
		return fmt.Errorf("level step must be positive, got %d", c.LevelStep)
	}
	return nil
}
