package main

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// app binds the screen, the game and the frame clock for the driver loop
type app struct {
	screen   tcell.Screen
	game     *engine.Game
	renderer *render.TerminalRenderer
	keys     *input.KeyTable
	clock    *engine.FrameClock
}

func newApp(screen tcell.Screen, game *engine.Game, provider engine.TimeProvider) *app {
	return &app{
		screen:   screen,
		game:     game,
		renderer: render.NewTerminalRenderer(screen),
		keys:     input.DefaultKeyTable(),
		clock:    engine.NewFrameClock(provider),
	}
}

// handleEvent processes one terminal event, returns false when the player quits
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, intent := a.keys.Translate(ev)
		switch intent {
		case input.IntentQuit:
			return false
		case input.IntentPause:
			paused := a.clock.Toggle()
			log.Printf("session %s paused=%t", a.game.SessionID(), paused)
		case input.IntentGame:
			// Game keys are ignored while paused
			if !a.clock.IsPaused() {
				a.game.OnKey(key)
			}
		}

	case *tcell.EventResize:
		a.renderer.Resize()
		a.screen.Sync()
	}
	return true
}

// frame advances the simulation by the elapsed wall-clock time and draws it
func (a *app) frame() {
	a.game.Update(a.clock.Tick())
	a.renderer.RenderFrame(a.game.Snapshot(), a.clock.IsPaused())
}
