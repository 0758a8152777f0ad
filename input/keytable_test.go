package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

// TestDifficultyTableAliases verifies both digit families map identically
func TestDifficultyTableAliases(t *testing.T) {
	for i := 0; i <= 9; i++ {
		row := KeyDigit0 + Key(i)
		pad := KeyNumpad0 + Key(i)

		want := i
		if i == 0 {
			want = 10
		}

		dRow, okRow := DifficultyForKey(row)
		dPad, okPad := DifficultyForKey(pad)
		if !okRow || !okPad {
			t.Fatalf("Digit %d: expected both %v and %v to select a difficulty", i, row, pad)
		}
		if dRow != want || dPad != want {
			t.Errorf("Digit %d: expected difficulty %d, got row=%d pad=%d", i, want, dRow, dPad)
		}
	}

	for _, k := range []Key{KeyNone, KeyUp, KeyDown, KeyLeft, KeyRight, KeyUnknown} {
		if _, ok := DifficultyForKey(k); ok {
			t.Errorf("Key %v must not select a difficulty", k)
		}
	}
}

// TestDirectionTable verifies only arrow-equivalent keys steer
func TestDirectionTable(t *testing.T) {
	tests := []struct {
		key  Key
		want core.Direction
	}{
		{KeyUp, core.DirUp},
		{KeyDown, core.DirDown},
		{KeyLeft, core.DirLeft},
		{KeyRight, core.DirRight},
	}
	for _, tc := range tests {
		got, ok := DirectionForKey(tc.key)
		if !ok || got != tc.want {
			t.Errorf("DirectionForKey(%v): expected %v, got %v (ok=%v)", tc.key, tc.want, got, ok)
		}
	}

	if _, ok := DirectionForKey(KeyDigit5); ok {
		t.Error("Digit key must not steer")
	}
}

// TestTranslate verifies terminal events map to canonical keys and intents
func TestTranslate(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name   string
		ev     *tcell.EventKey
		key    Key
		intent IntentType
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp, IntentGame},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft, IntentGame},
		{"vi j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), KeyDown, IntentGame},
		{"vi l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), KeyRight, IntentGame},
		{"wasd w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), KeyUp, IntentGame},
		{"digit 7", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), KeyDigit7, IntentGame},
		{"digit 0", tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone), KeyDigit0, IntentGame},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyNone, IntentQuit},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyNone, IntentQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyNone, IntentQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyNone, IntentPause},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), KeyUnknown, IntentGame},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), KeyUnknown, IntentGame},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, intent := kt.Translate(tc.ev)
			if key != tc.key {
				t.Errorf("Expected key %v, got %v", tc.key, key)
			}
			if intent != tc.intent {
				t.Errorf("Expected intent %v, got %v", tc.intent, intent)
			}
		})
	}
}

// TestKeyNames verifies every key has a display name
func TestKeyNames(t *testing.T) {
	for k := KeyNone; k <= KeyUnknown; k++ {
		if _, ok := keyToName[k]; !ok {
			t.Errorf("Key %d has no name", k)
		}
	}
	if KeyNumpad3.String() != "kp_3" {
		t.Errorf("Expected kp_3, got %s", KeyNumpad3.String())
	}
}
