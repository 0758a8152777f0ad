package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

func newTestApp(t *testing.T) (*app, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)

	provider := engine.NewMockTimeProvider(time.Unix(0, 0))
	return newApp(screen, engine.NewGame(30, 30, 1), provider), provider
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func head(a *app) core.Point {
	return a.game.SnakeBody()[0]
}

func TestAppSelectAndMove(t *testing.T) {
	a, provider := newTestApp(t)

	if !a.handleEvent(runeKey('5')) {
		t.Fatal("Digit must not quit")
	}
	if a.game.Phase() != engine.PhasePlaying {
		t.Fatalf("Expected playing phase, got %v", a.game.Phase())
	}

	// Difficulty 5 moves every 0.18s
	provider.Advance(200 * time.Millisecond)
	a.frame()

	if got := head(a); got != (core.Point{X: 5, Y: 2}) {
		t.Errorf("Expected head at (5,2), got %v", got)
	}
}

func TestAppSteering(t *testing.T) {
	a, provider := newTestApp(t)
	a.handleEvent(runeKey('5'))

	a.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	provider.Advance(200 * time.Millisecond)
	a.frame()

	if got := head(a); got != (core.Point{X: 4, Y: 3}) {
		t.Errorf("Expected head at (4,3), got %v", got)
	}
	if a.game.HeadDirection() != core.DirDown {
		t.Errorf("Expected heading down, got %v", a.game.HeadDirection())
	}
}

func TestAppPauseFreezesSimulation(t *testing.T) {
	a, provider := newTestApp(t)
	a.handleEvent(runeKey('5'))

	a.handleEvent(runeKey('p'))
	if !a.clock.IsPaused() {
		t.Fatal("Expected clock to be paused")
	}

	// Steering is dropped while paused
	a.handleEvent(runeKey('j'))
	provider.Advance(time.Second)
	a.frame()
	if got := head(a); got != (core.Point{X: 4, Y: 2}) {
		t.Errorf("Snake moved while paused, head at %v", got)
	}

	a.handleEvent(runeKey(' '))
	provider.Advance(200 * time.Millisecond)
	a.frame()
	if got := head(a); got != (core.Point{X: 5, Y: 2}) {
		t.Errorf("Expected head at (5,2) after resume, got %v", got)
	}
}

func TestAppQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", runeKey('q')},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t)
			if a.handleEvent(tt.ev) {
				t.Error("Expected quit")
			}
		})
	}
}

func TestAppResize(t *testing.T) {
	a, _ := newTestApp(t)
	a.handleEvent(runeKey('1'))

	sim := a.screen.(tcell.SimulationScreen)
	sim.SetSize(100, 50)
	if !a.handleEvent(tcell.NewEventResize(100, 50)) {
		t.Fatal("Resize must not quit")
	}

	originX, _ := a.renderer.GridOrigin(30)
	if originX != 20 {
		t.Errorf("Expected grid origin 20 after resize, got %d", originX)
	}
}
