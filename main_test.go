package main

import (
	"strings"
	"testing"
	"time"

	"snakebox/game/types"
)

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Start = types.Point{X: -1, Y: 0}

	session, err := newSession(cfg, time.Now())
	if err == nil {
		t.Fatal("Expected an error for a start tile off the board")
	}
	if session != nil {
		t.Error("No session should be returned on error")
	}
	if !strings.Contains(err.Error(), "starting session") || !strings.Contains(err.Error(), "start tile") {
		t.Errorf("Unexpected error %q", err)
	}
}
