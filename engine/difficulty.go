package engine

import "github.com/lixenwraith/vi-snake/constants"

// MovingPeriod returns the seconds between snake steps: 0.3 * (11 - d) / 10.
// Difficulty 1 gives 0.3s, difficulty 10 gives 0.03s. Out of range values are clamped.
func MovingPeriod(difficulty int) float64 {
	d := clampDifficulty(difficulty)
	return constants.BaseMovingPeriod * float64(11-d) / 10.0
}

// DifficultyTier returns the selection screen label for a difficulty
func DifficultyTier(difficulty int) string {
	switch d := clampDifficulty(difficulty); {
	case d <= 3:
		return "Easy"
	case d <= 6:
		return "Medium"
	case d <= 9:
		return "Hard"
	default:
		return "Expert"
	}
}

func clampDifficulty(d int) int {
	if d < constants.MinDifficulty {
		return constants.MinDifficulty
	}
	if d > constants.MaxDifficulty {
		return constants.MaxDifficulty
	}
	return d
}
