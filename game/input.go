package game

// Key is a named key the engines react to
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyEnter:
		return "Enter"
	default:
		return "None"
	}
}

// Input is one of KeyEvent, Click or TextChange
type Input interface {
	isInput()
}

// KeyEvent is a key press or release
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// Click selects a discrete element by index (memory cards)
type Click struct {
	Index int
}

// TextChange carries the full current value of the text field
type TextChange struct {
	Value string
}

func (KeyEvent) isInput()   {}
func (Click) isInput()      {}
func (TextChange) isInput() {}

// Press is shorthand for a key-down event
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Pressed: true}
}

// Release is shorthand for a key-up event
func Release(k Key) KeyEvent {
	return KeyEvent{Key: k, Pressed: false}
}
