package input

// IntentType discriminates what the driver should do with a terminal event
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit            // Esc, q, Ctrl+Q, Ctrl+C
	IntentPause           // Space, p
	IntentGame            // Forward the translated Key to the game
)

func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentGame:
		return "game"
	default:
		return "none"
	}
}
