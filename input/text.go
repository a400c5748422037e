package input

import (
	"github.com/gdamore/tcell/v2"
)

func isTextEdit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune, tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyCtrlU:
		return true
	}
	return false
}

// EditText applies one key to a single-line field value
// Reports false when the key does not change the value
func EditText(value string, ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return value + string(ev.Rune()), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if value == "" {
			return value, false
		}
		r := []rune(value)
		return string(r[:len(r)-1]), true
	case tcell.KeyCtrlU:
		if value == "" {
			return value, false
		}
		return "", true
	}
	return value, false
}
