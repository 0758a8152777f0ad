package engine

import (
	"log"

	"github.com/google/uuid"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
)

// session is the configuration chosen once on the selection screen, kept across rounds
type session struct {
	id         uuid.UUID
	difficulty int
	selected   bool
	started    bool
}

// round is everything a restart rebuilds
type round struct {
	number     int
	snake      *core.Snake
	food       core.Point
	foodExists bool
	gameOver   bool
	waiting    float64         // Seconds since last step, or since game over began
	pending    *core.Direction // Direction to apply on the next step
	score      int             // Food eaten this round
}

// Game is the simulation controller. It is owned by a single driver loop:
// OnKey and Update mutate, Snapshot and the accessors only read.
type Game struct {
	width, height int
	interior      core.Area

	session session
	round   round

	food *FoodSpawner
}

// NewGame creates a game on a fixed width x height grid, waiting for difficulty selection.
// Grids smaller than constants.MinGridSize cannot hold the canonical start layout.
func NewGame(width, height int, seed uint64) *Game {
	interior := core.Interior(width, height)
	g := &Game{
		width:    width,
		height:   height,
		interior: interior,
		session: session{
			id:         uuid.New(),
			difficulty: constants.DefaultDifficulty,
		},
		food: NewFoodSpawner(interior, seed),
	}
	g.newRound()

	log.Printf("Session %s started on %dx%d grid", g.session.id, width, height)
	return g
}

// newRound resets round state to the canonical start layout
func (g *Game) newRound() {
	g.round = round{
		number:     g.round.number + 1,
		snake:      core.NewSnake(constants.SnakeStartX, constants.SnakeStartY),
		food:       core.Point{X: constants.DefaultFoodX, Y: constants.DefaultFoodY},
		foodExists: true,
	}
}

// Phase derives the current state machine phase from session and round flags
func (g *Game) Phase() GamePhase {
	switch {
	case !g.session.selected || !g.session.started:
		return PhaseSelectingDifficulty
	case g.round.gameOver:
		return PhaseGameOver
	default:
		return PhasePlaying
	}
}

// enterPhase applies a validated phase change
func (g *Game) enterPhase(to GamePhase) bool {
	from := g.Phase()
	if !CanTransition(from, to) {
		log.Printf("Rejected phase transition %s -> %s", from, to)
		return false
	}

	switch {
	case from == PhaseSelectingDifficulty && to == PhasePlaying:
		g.session.selected = true
		g.session.started = true
		log.Printf("Session %s: difficulty %d (%s) selected", g.session.id, g.session.difficulty, DifficultyTier(g.session.difficulty))

	case to == PhaseGameOver:
		g.round.gameOver = true
		g.round.waiting = 0
		log.Printf("Session %s: round %d over, length %d, score %d", g.session.id, g.round.number, g.round.snake.Len(), g.round.score)

	case from == PhaseGameOver && to == PhasePlaying:
		g.restart()
		log.Printf("Session %s: round %d started", g.session.id, g.round.number)
	}
	return true
}

// OnKey handles one discrete key press. Keys outside the current phase's vocabulary are ignored.
func (g *Game) OnKey(key input.Key) {
	switch g.Phase() {
	case PhaseSelectingDifficulty:
		d, ok := input.DifficultyForKey(key)
		if !ok {
			return
		}
		g.session.difficulty = d
		g.enterPhase(PhasePlaying)

	case PhaseGameOver:
		// Restart is time driven only

	case PhasePlaying:
		dir, ok := input.DirectionForKey(key)
		if !ok {
			return
		}
		if dir == g.round.snake.HeadDirection().Opposite() {
			return
		}
		g.round.pending = &dir
	}
}

// Update advances the simulation by dt seconds
func (g *Game) Update(dt float64) {
	if !g.session.selected || !g.session.started {
		return
	}

	g.round.waiting += dt

	if g.round.gameOver {
		if g.round.waiting >= constants.RestartDelay {
			g.enterPhase(PhasePlaying)
		}
		return
	}

	if !g.round.foodExists {
		g.addFood()
	}

	if g.round.waiting >= g.MovingPeriod() {
		g.step()
	}
}

// step moves the snake once using the pending direction, or dies
func (g *Game) step() {
	if g.snakeAlive(g.round.pending) {
		g.round.snake.MoveForward(g.round.pending)
		g.checkEating()
	} else {
		g.enterPhase(PhaseGameOver)
	}
	g.round.pending = nil
	g.round.waiting = 0
}

func (g *Game) snakeAlive(dir *core.Direction) bool {
	next := g.round.snake.NextHead(dir)
	if g.round.snake.OverlapTail(next.X, next.Y) {
		return false
	}
	return g.interior.Contains(next)
}

func (g *Game) checkEating() {
	if g.round.foodExists && g.round.snake.HeadPosition() == g.round.food {
		g.round.foodExists = false
		g.round.snake.RestoreTail()
		g.round.score++
	}
}

func (g *Game) addFood() {
	p, ok := g.food.Spawn(g.round.snake)
	if !ok {
		return
	}
	g.round.food = p
	g.round.foodExists = true
}

// restart rebuilds round state, session configuration is untouched
func (g *Game) restart() {
	g.newRound()
}

// MovingPeriod returns the current seconds between steps
func (g *Game) MovingPeriod() float64 {
	return MovingPeriod(g.session.difficulty)
}

// ===== READ ACCESSORS =====

func (g *Game) Width() int  { return g.width }
func (g *Game) Height() int { return g.height }

// Difficulty returns the selected difficulty, or the default before selection
func (g *Game) Difficulty() int { return g.session.difficulty }

func (g *Game) DifficultySelected() bool { return g.session.selected }
func (g *Game) GameStarted() bool        { return g.session.started }
func (g *Game) GameOver() bool           { return g.round.gameOver }
func (g *Game) WaitingTime() float64     { return g.round.waiting }
func (g *Game) Score() int               { return g.round.score }
func (g *Game) Round() int               { return g.round.number }
func (g *Game) SessionID() uuid.UUID     { return g.session.id }

// Food returns the food cell and whether food currently exists
func (g *Game) Food() (core.Point, bool) {
	return g.round.food, g.round.foodExists
}

// SnakeBody returns a copy of the snake cells, head first
func (g *Game) SnakeBody() []core.Point {
	return g.round.snake.Body()
}

func (g *Game) HeadDirection() core.Direction {
	return g.round.snake.HeadDirection()
}
