package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a terminal key produces
type KeyEntry struct {
	Key    Key
	Intent IntentType
}

// KeyTable maps terminal key events to canonical keys and intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings: arrows, vi motions and wasd
// for steering, number row for difficulty
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {KeyNone, IntentQuit},
			tcell.KeyCtrlC:  {KeyNone, IntentQuit},
			tcell.KeyCtrlQ:  {KeyNone, IntentQuit},
			tcell.KeyUp:     {KeyUp, IntentGame},
			tcell.KeyDown:   {KeyDown, IntentGame},
			tcell.KeyLeft:   {KeyLeft, IntentGame},
			tcell.KeyRight:  {KeyRight, IntentGame},
		},

		Runes: map[rune]KeyEntry{
			'q': {KeyNone, IntentQuit},
			' ': {KeyNone, IntentPause},
			'p': {KeyNone, IntentPause},

			// vi motions
			'h': {KeyLeft, IntentGame},
			'j': {KeyDown, IntentGame},
			'k': {KeyUp, IntentGame},
			'l': {KeyRight, IntentGame},

			'w': {KeyUp, IntentGame},
			'a': {KeyLeft, IntentGame},
			's': {KeyDown, IntentGame},
			'd': {KeyRight, IntentGame},
		},
	}

	// Terminals report keypad digits as plain runes, so only the number row is reachable here
	for i := 0; i <= 9; i++ {
		kt.Runes[rune('0'+i)] = KeyEntry{KeyDigit0 + Key(i), IntentGame}
	}

	return kt
}

// Translate converts a tcell key event. Unbound keys are still forwarded to the
// game as KeyUnknown so the game decides how to ignore them.
func (kt *KeyTable) Translate(ev *tcell.EventKey) (Key, IntentType) {
	if ev.Key() == tcell.KeyRune {
		if entry, ok := kt.Runes[ev.Rune()]; ok {
			return entry.Key, entry.Intent
		}
		return KeyUnknown, IntentGame
	}

	if entry, ok := kt.SpecialKeys[ev.Key()]; ok {
		return entry.Key, entry.Intent
	}
	return KeyUnknown, IntentGame
}
