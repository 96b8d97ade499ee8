package manager

import (
	"snakebox/game/entity"
	"snakebox/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's current head position. Self
// collision is checked first and wins over a wall hit.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.isSelfCollision(snake) {
		return SelfCollision
	}
	if cm.isWallCollision(snake.Head) {
		return WallCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// isSelfCollision compares the head against the already shifted body, so
// the tile the tail just left is free.
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake) bool {
	return snake.Occupies(snake.Head)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
