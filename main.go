package main

import (
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snakebox/game"
	"snakebox/game/types"
	"snakebox/ui"
)

const windowTitle = "Snake ★"

func traceLogf(format string, args ...any) {
	rl.TraceLog(rl.LogInfo, format, args...)
}

// newSession validates cfg and starts the first round. It needs no window.
func newSession(cfg types.Config, now time.Time) (*game.Session, error) {
	session, err := game.NewSession(cfg, now, game.WithLogger(traceLogf))
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	return session, nil
}

func main() {
	rl.SetTraceLogLevel(rl.LogInfo)

	cfg := types.DefaultConfig()
	session, err := newSession(cfg, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "snakebox: %v\n", err)
		os.Exit(1)
	}
	grid := cfg.Grid()

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(grid.PixelWidth()), int32(grid.PixelHeight()), windowTitle)
	defer rl.CloseWindow()

	// Closing the window is the only way out.
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	theme := ui.LoadTheme()
	defer theme.Unload()
	renderer := ui.NewRenderer(grid, theme)

	rl.TraceLog(rl.LogInfo, "snakebox: %dx%d board, %dpx tiles", grid.Width, grid.Height, grid.TileSize)

	for !rl.WindowShouldClose() {
		now := time.Now()

		// Input, timer and restart all go through the session one at a time
		for _, ev := range ui.PollEvents(session.Snapshot().Alive, renderer.RestartButton()) {
			session.Dispatch(ev, now)
		}
		session.Advance(now)

		renderer.Draw(session.Snapshot())
	}
}
