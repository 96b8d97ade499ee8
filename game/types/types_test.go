package types

import (
	"testing"
	"time"
)

func TestDefaultGrid(t *testing.T) {
	g := DefaultConfig().Grid()

	if g.Width != 24 || g.Height != 24 || g.TileSize != 25 {
		t.Fatalf("Expected 24x24 tiles of 25px, got %+v", g)
	}
	if g.PixelWidth() != 600 || g.PixelHeight() != 600 {
		t.Errorf("Expected 600x600 px, got %dx%d", g.PixelWidth(), g.PixelHeight())
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(600, 600, 25)

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{23, 23}, true},
		{Point{24, 0}, false},
		{Point{0, 24}, false},
		{Point{-1, 5}, false},
		{Point{5, -1}, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.p); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPixelConversion(t *testing.T) {
	g := NewGrid(600, 600, 25)

	x, y := g.ToPixel(Point{4, 7})
	if x != 100 || y != 175 {
		t.Errorf("ToPixel(4,7) = (%d,%d), want (100,175)", x, y)
	}
	if p := g.FromPixel(124, 199); p != (Point{4, 7}) {
		t.Errorf("FromPixel(124,199) = %v, want (4,7)", p)
	}
	if p := g.FromPixel(-1, 0); p != (Point{-1, 0}) {
		t.Errorf("FromPixel(-1,0) = %v, want (-1,0)", p)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tile", func(c *Config) { c.TileSize = 0 }},
		{"tiny board", func(c *Config) { c.WidthPx = 10 }},
		{"start off board", func(c *Config) { c.Start = Point{24, 0} }},
		{"min above base", func(c *Config) { c.MinDelay = 200 * time.Millisecond }},
		{"negative step", func(c *Config) { c.DelayStep = -time.Millisecond }},
		{"zero level step", func(c *Config) { c.LevelStep = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		d        Direction
		delta    Point
		opposite Direction
	}{
		{Up, Point{0, -1}, Down},
		{Down, Point{0, 1}, Up},
		{Left, Point{-1, 0}, Right},
		{Right, Point{1, 0}, Left},
		{None, Point{0, 0}, None},
	}
	for _, tt := range tests {
		if got := tt.d.Delta(); got != tt.delta {
			t.Errorf("%v.Delta() = %v, want %v", tt.d, got, tt.delta)
		}
		if got := tt.d.Opposite(); got != tt.opposite {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, got, tt.opposite)
		}
	}
}
