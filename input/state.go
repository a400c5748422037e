package input

// Mode selects which binding set the machine consults
type Mode uint8

const (
	// ModeMenu is active while no game is open
	ModeMenu Mode = iota
	// ModeGame routes keys to the open game and its controls
	ModeGame
	// ModeText sends printable keys to the text field (typing game)
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeGame:
		return "game"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}
