package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio-arcade/game"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc in menu, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Menu
	IntentOpen // 1-4

	// Host controls
	IntentClose   // Esc in game
	IntentStart   // s
	IntentConfirm // Enter: start, or flip the memory cursor card
	IntentPause   // p, Space
	IntentRestart // F5

	// Game input
	IntentGameKey    // arrows
	IntentTextEdit   // printable, Backspace, Ctrl+U in text mode
	IntentMouseClick // left button
)

// Intent is one translated terminal event
type Intent struct {
	Type IntentType
	Kind game.Kind // IntentOpen
	Key  game.Key  // IntentGameKey

	// IntentMouseClick, in screen cells
	X, Y int

	// IntentTextEdit source event, applied with EditText
	Event *tcell.EventKey
}
