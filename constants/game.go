package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation delta in seconds (terminal stalls, suspend)
	MaxFrameDelta = 0.25
)

// Simulation Constants
const (
	// BaseMovingPeriod is the seconds between snake steps at difficulty 1
	BaseMovingPeriod = 0.3

	// RestartDelay is the seconds spent in game over before a new round starts
	RestartDelay = 1.0

	// MinDifficulty and MaxDifficulty bound the selectable difficulty
	MinDifficulty = 1
	MaxDifficulty = 10

	// DefaultDifficulty is held until the player selects one
	DefaultDifficulty = 5
)

// Canonical round layout
const (
	// SnakeStartX, SnakeStartY place the head of a new snake, body trails left
	SnakeStartX = 4
	SnakeStartY = 2

	// DefaultFoodX, DefaultFoodY is where food sits at the start of every round
	DefaultFoodX = 6
	DefaultFoodY = 4
)

// Grid Defaults
const (
	DefaultGridWidth  = 30
	DefaultGridHeight = 30

	// MinGridSize keeps the canonical start shape and default food inside the walls
	MinGridSize = 8
)
