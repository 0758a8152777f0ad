package input

import "github.com/lixenwraith/vi-snake/core"

// Key is the canonical, device-independent key identifier consumed by the game
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Number row
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9

	// Numeric keypad
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9

	KeyUnknown
)

// keyToName maps Key constants to display names
var keyToName = map[Key]string{
	KeyNone:    "none",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyDigit0:  "0",
	KeyDigit1:  "1",
	KeyDigit2:  "2",
	KeyDigit3:  "3",
	KeyDigit4:  "4",
	KeyDigit5:  "5",
	KeyDigit6:  "6",
	KeyDigit7:  "7",
	KeyDigit8:  "8",
	KeyDigit9:  "9",
	KeyNumpad0: "kp_0",
	KeyNumpad1: "kp_1",
	KeyNumpad2: "kp_2",
	KeyNumpad3: "kp_3",
	KeyNumpad4: "kp_4",
	KeyNumpad5: "kp_5",
	KeyNumpad6: "kp_6",
	KeyNumpad7: "kp_7",
	KeyNumpad8: "kp_8",
	KeyNumpad9: "kp_9",
	KeyUnknown: "unknown",
}

func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "unknown"
}

// difficultyTable maps both digit families to difficulty levels, 0 selects expert (10)
var difficultyTable = map[Key]int{
	KeyDigit1: 1, KeyNumpad1: 1,
	KeyDigit2: 2, KeyNumpad2: 2,
	KeyDigit3: 3, KeyNumpad3: 3,
	KeyDigit4: 4, KeyNumpad4: 4,
	KeyDigit5: 5, KeyNumpad5: 5,
	KeyDigit6: 6, KeyNumpad6: 6,
	KeyDigit7: 7, KeyNumpad7: 7,
	KeyDigit8: 8, KeyNumpad8: 8,
	KeyDigit9: 9, KeyNumpad9: 9,
	KeyDigit0: 10, KeyNumpad0: 10,
}

var directionTable = map[Key]core.Direction{
	KeyUp:    core.DirUp,
	KeyDown:  core.DirDown,
	KeyLeft:  core.DirLeft,
	KeyRight: core.DirRight,
}

// DifficultyForKey returns the difficulty selected by k, false for non-digit keys
func DifficultyForKey(k Key) (int, bool) {
	d, ok := difficultyTable[k]
	return d, ok
}

// DirectionForKey returns the heading commanded by k, false for non-directional keys
func DirectionForKey(k Key) (core.Direction, bool) {
	d, ok := directionTable[k]
	return d, ok
}
