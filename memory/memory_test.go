package memory

import (
	"testing"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/game/gametest"
)

func started(t *testing.T, seed uint64) (*Engine, *gametest.Harness) {
	t.Helper()
	h := gametest.New(t, seed)
	e := New(h.Ctx)
	e.Start()
	return e, h
}

// pairs maps each symbol to its two card indices
func pairs(e *Engine) map[rune][]int {
	m := make(map[rune][]int)
	for i, c := range e.cards {
		m[c.Symbol] = append(m[c.Symbol], i)
	}
	return m
}

// mismatch returns two indices holding different symbols
func mismatch(e *Engine) (int, int) {
	for j := 1; j < len(e.cards); j++ {
		if e.cards[j].Symbol != e.cards[0].Symbol {
			return 0, j
		}
	}
	return 0, 1
}

// TestDeckHasEveryPair verifies the deck holds each symbol exactly twice
func TestDeckHasEveryPair(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		h := gametest.New(t, seed)
		e := New(h.Ctx)

		p := pairs(e)
		if len(p) != len(Symbols) {
			t.Fatalf("seed %d: %d distinct symbols, want %d", seed, len(p), len(Symbols))
		}
		for s, idx := range p {
			if len(idx) != 2 {
				t.Errorf("seed %d: symbol %q appears %d times", seed, s, len(idx))
			}
		}
		for i, c := range e.cards {
			if c.Revealed || c.Matched {
				t.Errorf("seed %d: card %d dealt face up", seed, i)
			}
		}
	}
}

// TestDealDependsOnSeed verifies the layout comes from the injected RNG
func TestDealDependsOnSeed(t *testing.T) {
	a := New(gametest.New(t, 11).Ctx)
	b := New(gametest.New(t, 11).Ctx)
	if a.cards != b.cards {
		t.Error("same seed produced different decks")
	}
}

// TestMemoryStartsShowingMoves verifies the readout and hidden controls
func TestMemoryStartsShowingMoves(t *testing.T) {
	e, h := started(t, 1)

	if h.Ctx.Readout.Text() != "Moves: 0" {
		t.Errorf("readout = %q", h.Ctx.Readout.Text())
	}
	if e.Controls() != (game.Controls{}) {
		t.Errorf("controls = %+v, want hidden", e.Controls())
	}
	if e.Phase() != game.PhaseRunning {
		t.Errorf("phase = %v", e.Phase())
	}
	if h.Sched.PendingRecurring() != 0 {
		t.Error("memory armed a cadence")
	}
}

// TestMatchingPair verifies a matched pair is permanent and scores 20
func TestMatchingPair(t *testing.T) {
	e, h := started(t, 2)
	idx := pairs(e)[Symbols[0]]

	e.HandleInput(game.Click{Index: idx[0]})
	e.HandleInput(game.Click{Index: idx[1]})

	if e.moves != 1 || h.Ctx.Readout.Text() != "Moves: 1" {
		t.Errorf("moves = %d readout = %q", e.moves, h.Ctx.Readout.Text())
	}

	h.Sched.Advance(constants.MemoryRevealDelay - 1)
	if e.cards[idx[0]].Matched {
		t.Fatal("evaluated before the reveal delay")
	}

	h.Sched.Advance(1)
	for _, i := range idx {
		if !e.cards[i].Matched || !e.cards[i].Revealed {
			t.Errorf("card %d = %+v, want matched", i, e.cards[i])
		}
	}
	if len(e.flipped) != 0 {
		t.Errorf("flipped = %v, want empty", e.flipped)
	}
	if e.session.Score != 20 || len(h.Progress.Awards) != 1 || h.Progress.Awards[0] != 20 {
		t.Errorf("score = %d awards = %v", e.session.Score, h.Progress.Awards)
	}

	// Matched cards can never be flipped again
	e.HandleInput(game.Click{Index: idx[0]})
	if len(e.flipped) != 0 || e.moves != 1 {
		t.Errorf("matched card accepted a click: flipped %v moves %d", e.flipped, e.moves)
	}
}

// TestMismatchedPair verifies differing symbols are hidden again
func TestMismatchedPair(t *testing.T) {
	e, h := started(t, 3)
	a, b := mismatch(e)

	e.HandleInput(game.Click{Index: a})
	e.HandleInput(game.Click{Index: b})
	h.Sched.Advance(constants.MemoryRevealDelay)

	for _, i := range []int{a, b} {
		if e.cards[i].Revealed || e.cards[i].Matched {
			t.Errorf("card %d = %+v, want hidden", i, e.cards[i])
		}
	}
	if len(e.flipped) != 0 {
		t.Errorf("flipped = %v, want empty", e.flipped)
	}
	if len(h.Progress.Awards) != 0 {
		t.Errorf("awards = %v, want none", h.Progress.Awards)
	}
	if e.moves != 1 {
		t.Errorf("moves = %d, want 1", e.moves)
	}
}

// TestClicksIgnoredDuringEvaluation verifies the two-card limit and repeat clicks
func TestClicksIgnoredDuringEvaluation(t *testing.T) {
	e, h := started(t, 4)
	a, b := mismatch(e)

	e.HandleInput(game.Click{Index: a})
	e.HandleInput(game.Click{Index: a})
	if len(e.flipped) != 1 || e.moves != 0 {
		t.Fatalf("repeat click counted: flipped %v moves %d", e.flipped, e.moves)
	}

	e.HandleInput(game.Click{Index: b})
	third := 0
	for third == a || third == b {
		third++
	}
	e.HandleInput(game.Click{Index: third})
	if len(e.flipped) != 2 || e.cards[third].Revealed {
		t.Errorf("third card flipped during evaluation: %v", e.flipped)
	}

	e.HandleInput(game.Click{Index: -1})
	e.HandleInput(game.Click{Index: DeckSize})
	h.Sched.Advance(constants.MemoryRevealDelay)
	if e.moves != 1 {
		t.Errorf("moves = %d, want 1", e.moves)
	}
}

// TestFullBoardWins verifies 8 evaluations clear the board and the win notice follows after 500ms
func TestFullBoardWins(t *testing.T) {
	e, h := started(t, 5)

	evaluations := 0
	for _, s := range Symbols {
		idx := pairs(e)[s]
		e.HandleInput(game.Click{Index: idx[0]})
		e.HandleInput(game.Click{Index: idx[1]})
		h.Sched.Advance(constants.MemoryRevealDelay)
		evaluations++
	}

	if evaluations > 8 || e.matched != DeckSize {
		t.Fatalf("matched %d after %d evaluations", e.matched, evaluations)
	}
	if len(h.Notifier.Messages) != 0 {
		t.Errorf("win notice before delay: %v", h.Notifier.Messages)
	}

	h.Sched.Advance(constants.MemoryWinDelay)
	if h.Notifier.Last() != "You Won! Moves: 8" {
		t.Errorf("notice = %q", h.Notifier.Last())
	}
	if h.Progress.HighScore != 160 {
		t.Errorf("high score = %d, want 160", h.Progress.HighScore)
	}
	if e.Phase() != game.PhaseOver {
		t.Errorf("phase = %v, want Over", e.Phase())
	}

	// A new round deals a fresh deck
	e.Start()
	if e.matched != 0 || e.moves != 0 || h.Ctx.Readout.Text() != "Moves: 0" {
		t.Errorf("restart left matched %d moves %d", e.matched, e.moves)
	}
}

// TestStopCancelsEvaluation verifies a pending evaluation never lands after teardown
func TestStopCancelsEvaluation(t *testing.T) {
	e, h := started(t, 6)
	idx := pairs(e)[Symbols[1]]

	e.HandleInput(game.Click{Index: idx[0]})
	e.HandleInput(game.Click{Index: idx[1]})
	e.Stop()
	h.Sched.Advance(constants.MemoryRevealDelay * 2)

	if e.cards[idx[0]].Matched || len(h.Progress.Awards) != 0 {
		t.Error("evaluation ran after stop")
	}
	if h.Sched.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", h.Sched.Pending())
	}
}

// TestStopCancelsWinNotice verifies closing during the win delay suppresses the notice
func TestStopCancelsWinNotice(t *testing.T) {
	e, h := started(t, 8)
	for _, s := range Symbols {
		idx := pairs(e)[s]
		e.HandleInput(game.Click{Index: idx[0]})
		e.HandleInput(game.Click{Index: idx[1]})
		h.Sched.Advance(constants.MemoryRevealDelay)
	}

	e.Stop()
	h.Sched.Advance(constants.MemoryWinDelay)

	if len(h.Notifier.Messages) != 0 || h.Progress.HighScore != 0 {
		t.Errorf("win landed after stop: %v", h.Notifier.Messages)
	}
}

// TestKeyboardCursor verifies arrows move within the grid and Enter flips
func TestKeyboardCursor(t *testing.T) {
	e, _ := started(t, 9)

	e.HandleInput(game.Press(game.KeyLeft))
	e.HandleInput(game.Press(game.KeyUp))
	if e.cursor != 0 {
		t.Errorf("cursor = %d, want clamped at 0", e.cursor)
	}

	e.HandleInput(game.Press(game.KeyRight))
	e.HandleInput(game.Press(game.KeyDown))
	if e.cursor != 5 {
		t.Errorf("cursor = %d, want 5", e.cursor)
	}

	for i := 0; i < 6; i++ {
		e.HandleInput(game.Press(game.KeyRight))
		e.HandleInput(game.Press(game.KeyDown))
	}
	if e.cursor != DeckSize-1 {
		t.Errorf("cursor = %d, want %d", e.cursor, DeckSize-1)
	}

	e.HandleInput(game.Release(game.KeyEnter))
	if len(e.flipped) != 0 {
		t.Error("key release flipped a card")
	}
	e.HandleInput(game.Press(game.KeyEnter))
	if len(e.flipped) != 1 || e.flipped[0] != DeckSize-1 {
		t.Errorf("flipped = %v", e.flipped)
	}
}
