package input

import "github.com/lixenwraith/folio-arcade/game"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":        {Intent: IntentQuit},
	"toggle_mute": {Intent: IntentToggleMute},

	"open_snake":  {Intent: IntentOpen, Kind: game.KindSnake},
	"open_pong":   {Intent: IntentOpen, Kind: game.KindPong},
	"open_memory": {Intent: IntentOpen, Kind: game.KindMemory},
	"open_typing": {Intent: IntentOpen, Kind: game.KindTyping},

	"close":   {Intent: IntentClose},
	"start":   {Intent: IntentStart},
	"confirm": {Intent: IntentConfirm},
	"pause":   {Intent: IntentPause},
	"restart": {Intent: IntentRestart},

	"up":    {Intent: IntentGameKey, Key: game.KeyUp},
	"down":  {Intent: IntentGameKey, Key: game.KeyDown},
	"left":  {Intent: IntentGameKey, Key: game.KeyLeft},
	"right": {Intent: IntentGameKey, Key: game.KeyRight},
}

// ActionEntry returns the binding for an action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
