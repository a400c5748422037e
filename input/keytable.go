package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio-arcade/game"
)

// KeyEntry describes what a key does in one binding set
type KeyEntry struct {
	Intent IntentType
	Key    game.Key  // IntentGameKey
	Kind   game.Kind // IntentOpen
}

// KeyTable maps keys to intents per mode
type KeyTable struct {
	MenuRunes map[rune]KeyEntry
	MenuKeys  map[tcell.Key]KeyEntry

	GameRunes map[rune]KeyEntry
	GameKeys  map[tcell.Key]KeyEntry

	// Text mode only has special keys; runes always edit the field
	TextKeys map[tcell.Key]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		MenuRunes: map[rune]KeyEntry{
			'1': {Intent: IntentOpen, Kind: game.KindSnake},
			'2': {Intent: IntentOpen, Kind: game.KindPong},
			'3': {Intent: IntentOpen, Kind: game.KindMemory},
			'4': {Intent: IntentOpen, Kind: game.KindTyping},
			'q': {Intent: IntentQuit},
			'm': {Intent: IntentToggleMute},
		},
		MenuKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
		},

		GameRunes: map[rune]KeyEntry{
			's': {Intent: IntentStart},
			'p': {Intent: IntentPause},
			' ': {Intent: IntentPause},
			'm': {Intent: IntentToggleMute},
		},
		GameKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Intent: IntentClose},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEnter:  {Intent: IntentConfirm},
			tcell.KeyF5:     {Intent: IntentRestart},
			tcell.KeyUp:     {Intent: IntentGameKey, Key: game.KeyUp},
			tcell.KeyDown:   {Intent: IntentGameKey, Key: game.KeyDown},
			tcell.KeyLeft:   {Intent: IntentGameKey, Key: game.KeyLeft},
			tcell.KeyRight:  {Intent: IntentGameKey, Key: game.KeyRight},
		},

		TextKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Intent: IntentClose},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyF5:     {Intent: IntentRestart},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		MenuRunes: maps.Clone(kt.MenuRunes),
		MenuKeys:  maps.Clone(kt.MenuKeys),
		GameRunes: maps.Clone(kt.GameRunes),
		GameKeys:  maps.Clone(kt.GameKeys),
		TextKeys:  maps.Clone(kt.TextKeys),
	}
}
