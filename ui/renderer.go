package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snakebox/game"
	"snakebox/game/types"
)

const (
	buttonWidth  = 120
	buttonHeight = 40
	hudX         = 10
	hudY         = 6
	hudLine      = 20
)

type Renderer struct {
	grid    types.Grid
	theme   *Theme
	restart rl.Rectangle
}

func NewRenderer(grid types.Grid, theme *Theme) *Renderer {
	return &Renderer{
		grid:    grid,
		theme:   theme,
		restart: RestartButtonRect(grid),
	}
}

// RestartButtonRect centers the button horizontally, its top edge on the
// board's middle row of pixels.
func RestartButtonRect(grid types.Grid) rl.Rectangle {
	w, h := grid.PixelWidth(), grid.PixelHeight()
	return rl.NewRectangle(float32(w/2-buttonWidth/2), float32(h/2), buttonWidth, buttonHeight)
}

// RestartButton is where a click restarts a finished round.
func (r *Renderer) RestartButton() rl.Rectangle {
	return r.restart
}

// tileRect is tile p shrunk by inset pixels on every side.
func tileRect(grid types.Grid, p types.Point, inset int) rl.Rectangle {
	x, y := grid.ToPixel(p)
	size := grid.TileSize - 2*inset
	return rl.NewRectangle(float32(x+inset), float32(y+inset), float32(size), float32(size))
}

// hudLines is the text drawn at the top left.
func hudLines(snap game.Snapshot) []string {
	return []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Level: %d", snap.Level),
		fmt.Sprintf("Best: %d", snap.HighScore),
	}
}

// Draw paints one frame from snap. It never touches the game.
func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(r.theme.Background)

	r.drawGrid()

	// Food
	fx, fy := r.grid.ToPixel(snap.Food)
	half := r.grid.TileSize / 2
	rl.DrawCircle(int32(fx+half), int32(fy+half), float32(half-4), r.theme.Food)

	// Head first, body on top of it when they share a tile
	rl.DrawRectangleRounded(tileRect(r.grid, snap.Head, 2), 0.35, 6, r.theme.Head)
	for _, p := range snap.Segments {
		rl.DrawRectangleRounded(tileRect(r.grid, p, 3), 0.3, 6, r.theme.Body)
	}

	for i, line := range hudLines(snap) {
		r.drawText(line, hudX, float32(hudY+i*hudLine), hudFontSize)
	}

	if !snap.Alive {
		r.drawGameOver()
	}

	rl.EndDrawing()
}

func (r *Renderer) drawGrid() {
	w, h := int32(r.grid.PixelWidth()), int32(r.grid.PixelHeight())
	for i := 0; i <= r.grid.Width; i++ {
		x := int32(i * r.grid.TileSize)
		rl.DrawLine(x, 0, x, h, r.theme.Grid)
	}
	for j := 0; j <= r.grid.Height; j++ {
		y := int32(j * r.grid.TileSize)
		rl.DrawLine(0, y, w, y, r.theme.Grid)
	}
}

func (r *Renderer) drawGameOver() {
	w, h := r.grid.PixelWidth(), r.grid.PixelHeight()
	rl.DrawRectangle(0, 0, int32(w), int32(h), r.theme.Overlay)

	msg := "GAME OVER!"
	size := rl.MeasureTextEx(r.theme.Font, msg, titleFontSize, fontSpacing)
	r.drawText(msg, (float32(w)-size.X)/2, float32(h/2-40-titleFontSize), titleFontSize)

	btn := r.restart
	col := r.theme.Button
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), btn) {
		col = r.theme.ButtonHover
	}
	rl.DrawRectangleRec(btn, col)
	rl.DrawRectangleLinesEx(btn, 1, rl.DarkGray)

	label := "Restart"
	ls := rl.MeasureTextEx(r.theme.Font, label, hudFontSize, fontSpacing)
	rl.DrawTextEx(r.theme.Font, label,
		rl.NewVector2(btn.X+(btn.Width-ls.X)/2, btn.Y+(btn.Height-ls.Y)/2),
		hudFontSize, fontSpacing, rl.Black)
}

func (r *Renderer) drawText(text string, x, y, size float32) {
	rl.DrawTextEx(r.theme.Font, text, rl.NewVector2(x, y), size, fontSpacing, r.theme.Text)
}
