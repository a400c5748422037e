package input

import (
	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/engine"
	"github.com/lixenwraith/folio-arcade/game"
)

// HoldTracker turns terminal key presses into press/release pairs
// Terminals report no key-up: a key counts as held until its auto-repeat stops
// arriving, so the release is synthesized when no repeat lands within the window.
// Auto-repeat only repeats the latest key, so a new key releases the previous one
type HoldTracker struct {
	sched engine.Scheduler
	emit  func(game.KeyEvent)
	held  map[game.Key]engine.Handle
}

// NewHoldTracker creates a tracker delivering events to emit on the scheduler's thread
func NewHoldTracker(sched engine.Scheduler, emit func(game.KeyEvent)) *HoldTracker {
	return &HoldTracker{
		sched: sched,
		emit:  emit,
		held:  make(map[game.Key]engine.Handle),
	}
}

// Press emits a press for every key event and re-arms the release timer
// The first press waits out the terminal's initial repeat delay
func (t *HoldTracker) Press(k game.Key) {
	window := constants.KeyHoldInitialWindow
	for other, timer := range t.held {
		if other == k {
			timer.Cancel()
			window = constants.KeyHoldWindow
			continue
		}
		t.release(other)
	}

	t.held[k] = t.sched.After(window, func() {
		t.release(k)
	})
	t.emit(game.Press(k))
}

// Held reports whether k is currently considered down
func (t *HoldTracker) Held(k game.Key) bool {
	_, ok := t.held[k]
	return ok
}

// ReleaseAll releases every held key, used when a game closes
func (t *HoldTracker) ReleaseAll() {
	for k := range t.held {
		t.release(k)
	}
}

func (t *HoldTracker) release(k game.Key) {
	timer, ok := t.held[k]
	if !ok {
		return
	}
	timer.Cancel()
	delete(t.held, k)
	t.emit(game.Release(k))
}
