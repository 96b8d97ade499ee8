package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snakebox/game"
	"snakebox/game/types"
)

func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		key  int32
		want types.Direction
		ok   bool
	}{
		{rl.KeyUp, types.Up, true},
		{rl.KeyW, types.Up, true},
		{rl.KeyDown, types.Down, true},
		{rl.KeyS, types.Down, true},
		{rl.KeyLeft, types.Left, true},
		{rl.KeyA, types.Left, true},
		{rl.KeyRight, types.Right, true},
		{rl.KeyD, types.Right, true},
		{rl.KeySpace, types.None, false},
		{rl.KeyP, types.None, false},
		{rl.KeyEscape, types.None, false},
	}
	for _, tt := range tests {
		got, ok := DirectionForKey(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DirectionForKey(%d) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEventsForKeepsKeyOrder(t *testing.T) {
	restart := RestartButtonRect(types.DefaultConfig().Grid())
	keys := []int32{rl.KeyUp, rl.KeyQ, rl.KeyA}

	events := EventsFor(keys, false, rl.NewVector2(0, 0), true, restart)

	want := []game.Event{game.SteerEvent(types.Up), game.SteerEvent(types.Left)}
	if len(events) != len(want) {
		t.Fatalf("Expected %d events, got %v", len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("Event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestEventsForRestartClick(t *testing.T) {
	restart := RestartButtonRect(types.DefaultConfig().Grid())
	inside := rl.NewVector2(restart.X+restart.Width/2, restart.Y+restart.Height/2)
	outside := rl.NewVector2(5, 5)

	tests := []struct {
		name    string
		clicked bool
		mouse   rl.Vector2
		alive   bool
		want    int
	}{
		{"click on button when dead", true, inside, false, 1},
		{"click on button while playing", true, inside, true, 0},
		{"click elsewhere when dead", true, outside, false, 0},
		{"hover without click", false, inside, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := EventsFor(nil, tt.clicked, tt.mouse, tt.alive, restart)
			if len(events) != tt.want {
				t.Fatalf("Expected %d events, got %v", tt.want, events)
			}
			if tt.want == 1 && events[0].Kind != game.EventRestart {
				t.Errorf("Expected a restart event, got %+v", events[0])
			}
		})
	}
}
