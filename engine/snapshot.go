package engine

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Snapshot is a read-only copy of everything the presentation layer draws.
// Mutating it has no effect on the game.
type Snapshot struct {
	SessionID string
	Round     int

	Width, Height int
	Phase         GamePhase

	Snake      []core.Point // Head first
	Food       core.Point
	FoodExists bool

	Difficulty         int
	DifficultyTier     string
	DifficultySelected bool
	GameOver           bool
	Score              int

	// RestartIn is the seconds left before a new round, zero outside game over
	RestartIn float64
}

// Snapshot captures the current render state
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		SessionID:          g.session.id.String(),
		Round:              g.round.number,
		Width:              g.width,
		Height:             g.height,
		Phase:              g.Phase(),
		Snake:              g.round.snake.Body(),
		Food:               g.round.food,
		FoodExists:         g.round.foodExists,
		Difficulty:         g.session.difficulty,
		DifficultyTier:     DifficultyTier(g.session.difficulty),
		DifficultySelected: g.session.selected,
		GameOver:           g.round.gameOver,
		Score:              g.round.score,
	}

	if g.round.gameOver {
		s.RestartIn = constants.RestartDelay - g.round.waiting
		if s.RestartIn < 0 {
			s.RestartIn = 0
		}
	}
	return s
}
