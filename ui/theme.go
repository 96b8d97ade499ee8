package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudFontSize   = 16
	titleFontSize = 36
	fontSpacing   = 1
)

// Fonts tried in order for the HUD. Any miss falls back to raylib's
// built-in font.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	`C:\Windows\Fonts\arialbd.ttf`,
}

// Theme holds the look of the board.
type Theme struct {
	Font       rl.Font
	customFont bool

	Background  rl.Color
	Grid        rl.Color
	Food        rl.Color
	Head        rl.Color
	Body        rl.Color
	Text        rl.Color
	Overlay     rl.Color
	Button      rl.Color
	ButtonHover rl.Color
}

// DefaultTheme uses raylib's default font and needs no window.
func DefaultTheme() *Theme {
	return &Theme{
		Background:  rl.Black,
		Grid:        rl.NewColor(40, 40, 40, 255),
		Food:        rl.NewColor(220, 70, 70, 255),
		Head:        rl.NewColor(0, 220, 100, 255),
		Body:        rl.NewColor(0, 180, 80, 255),
		Text:        rl.White,
		Overlay:     rl.NewColor(0, 0, 0, 150),
		Button:      rl.NewColor(225, 225, 225, 255),
		ButtonHover: rl.NewColor(190, 210, 240, 255),
	}
}

// LoadTheme tries to load a system font for the HUD. It must run after
// the window exists. Failures are not errors: the default font is kept.
func LoadTheme() *Theme {
	t := DefaultTheme()
	t.Font = rl.GetFontDefault()
	for _, path := range fontCandidates {
		if !fontFileExists(path) {
			continue
		}
		font := rl.LoadFontEx(path, titleFontSize, nil)
		if font.Texture.ID == 0 {
			rl.TraceLog(rl.LogDebug, "theme: could not load %s", path)
			continue
		}
		t.Font = font
		t.customFont = true
		rl.TraceLog(rl.LogInfo, "theme: using font %s", path)
		return t
	}
	rl.TraceLog(rl.LogDebug, "theme: no system font found, using default")
	return t
}

// fontFileExists guards LoadFontEx, which hands back the default font for
// a missing file; Unload must never free that one.
func fontFileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (t *Theme) Unload() {
	if t.customFont {
		rl.UnloadFont(t.Font)
		t.customFont = false
	}
}
