package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"snakebox/game/types"
)

// FoodManager owns the single food item and the RNG used to place it.
type FoodManager struct {
	grid types.Grid
	food types.Point
	rng  *rand.Rand
}

// NewFoodManager seeds placement from seed, or from the clock when seed is 0.
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	fm := &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
	fm.GenerateFood()
	return fm
}

// GenerateFood moves the food to a uniformly random in-bounds tile. The
// snake's body is not excluded.
func (fm *FoodManager) GenerateFood() types.Point {
	fm.food = types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
	return fm.food
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// PlaceFood puts the food on p, ignoring the RNG.
func (fm *FoodManager) PlaceFood(p types.Point) {
	fm.food = p
}
