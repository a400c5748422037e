package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine translates tcell events into Intents for the current mode
type Machine struct {
	mode     Mode
	keyTable *KeyTable
}

// NewMachine creates a machine in menu mode; nil table selects the defaults
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{mode: ModeMenu, keyTable: table}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode Mode) {
	m.mode = mode
}

func (m *Machine) Mode() Mode {
	return m.mode
}

// Translate maps one terminal event to an intent; unbound events yield IntentNone
func (m *Machine) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.translateKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			return Intent{Type: IntentMouseClick, X: x, Y: y}
		}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) translateKey(ev *tcell.EventKey) Intent {
	switch m.mode {
	case ModeMenu:
		return m.lookup(ev, m.keyTable.MenuRunes, m.keyTable.MenuKeys)
	case ModeGame:
		return m.lookup(ev, m.keyTable.GameRunes, m.keyTable.GameKeys)
	case ModeText:
		if entry, ok := m.keyTable.TextKeys[ev.Key()]; ok {
			return fromEntry(entry)
		}
		if isTextEdit(ev) {
			return Intent{Type: IntentTextEdit, Event: ev}
		}
	}
	return Intent{}
}

func (m *Machine) lookup(ev *tcell.EventKey, runes map[rune]KeyEntry, keys map[tcell.Key]KeyEntry) Intent {
	if ev.Key() == tcell.KeyRune {
		if entry, ok := runes[ev.Rune()]; ok {
			return fromEntry(entry)
		}
		return Intent{}
	}
	if entry, ok := keys[ev.Key()]; ok {
		return fromEntry(entry)
	}
	return Intent{}
}

func fromEntry(e KeyEntry) Intent {
	return Intent{Type: e.Intent, Kind: e.Kind, Key: e.Key}
}
