package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snakebox/game"
	"snakebox/game/types"
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

// DirectionForKey maps arrow keys and WASD to directions.
func DirectionForKey(key int32) (types.Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}

// EventsFor turns one frame of raw input into session events, keys first
// in the order they were pressed. A click only counts on the restart
// button while the round is over.
func EventsFor(keys []int32, clicked bool, mouse rl.Vector2, alive bool, restart rl.Rectangle) []game.Event {
	var events []game.Event
	for _, k := range keys {
		if d, ok := DirectionForKey(k); ok {
			events = append(events, game.SteerEvent(d))
		}
	}
	if clicked && !alive && rl.CheckCollisionPointRec(mouse, restart) {
		events = append(events, game.RestartEvent())
	}
	return events
}

// PollEvents drains this frame's keyboard queue and mouse state.
func PollEvents(alive bool, restart rl.Rectangle) []game.Event {
	var keys []int32
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		keys = append(keys, k)
	}
	return EventsFor(keys, rl.IsMouseButtonPressed(rl.MouseButtonLeft), rl.GetMousePosition(), alive, restart)
}
