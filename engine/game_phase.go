package engine

// GamePhase is the top-level state of the game
type GamePhase int

const (
	PhaseSelectingDifficulty GamePhase = iota
	PhasePlaying
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseSelectingDifficulty:
		return "SelectingDifficulty"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// validTransitions holds every allowed phase change. GameOver always leads back to Playing.
var validTransitions = map[GamePhase][]GamePhase{
	PhaseSelectingDifficulty: {PhasePlaying},
	PhasePlaying:             {PhaseGameOver},
	PhaseGameOver:            {PhasePlaying},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
