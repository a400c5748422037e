// Package memory implements the pair-matching card game
package memory

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/engine"
	"github.com/lixenwraith/folio-arcade/game"
)

// Symbols is the card palette; each symbol appears twice in a deck
var Symbols = [...]rune{'♠', '♥', '♦', '♣', '★', '♫', '☀', '☂'}

// DeckSize is the number of cards on the board
const DeckSize = 2 * len(Symbols)

// Card is one board position
type Card struct {
	Symbol   rune
	Revealed bool
	Matched  bool
}

// Snapshot is a read-only copy of the board
type Snapshot struct {
	Cards   []Card
	Flipped []int
	Cursor  int
	Moves   int
	Score   int
	Phase   game.Phase
	Columns int
}

// Engine is the memory match state machine; it has no cadence, only delayed evaluations
type Engine struct {
	ctx     *game.Context
	session *game.Session

	cards   [DeckSize]Card
	flipped []int
	matched int
	moves   int
	cursor  int
	phase   game.Phase

	eval engine.Handle

	statMatches *atomic.Int64
	statMisses  *atomic.Int64
}

// New deals a shuffled deck
func New(ctx *game.Context) *Engine {
	e := &Engine{
		ctx:         ctx,
		session:     game.NewSession(game.KindMemory, ctx.Scheduler, ctx.Log),
		phase:       game.PhaseReady,
		statMatches: ctx.Status.Ints.Get("memory.matches"),
		statMisses:  ctx.Status.Ints.Get("memory.misses"),
	}
	e.deal()
	return e
}

func (e *Engine) Kind() game.Kind        { return game.KindMemory }
func (e *Engine) Session() *game.Session { return e.session }
func (e *Engine) Phase() game.Phase      { return e.phase }

// Controls hides both start and pause
func (e *Engine) Controls() game.Controls { return game.Controls{} }

// deal lays out every symbol twice and shuffles with Fisher-Yates
func (e *Engine) deal() {
	for i, s := range Symbols {
		e.cards[2*i] = Card{Symbol: s}
		e.cards[2*i+1] = Card{Symbol: s}
	}
	e.ctx.Rand.Shuffle(len(e.cards), func(i, j int) {
		e.cards[i], e.cards[j] = e.cards[j], e.cards[i]
	})
	e.flipped = e.flipped[:0]
	e.matched = 0
	e.moves = 0
	e.cursor = 0
	e.session.Score = 0
}

// Start opens the board for clicks; after a win it deals a new deck
func (e *Engine) Start() {
	if !e.session.Alive() {
		return
	}
	switch e.phase {
	case game.PhaseRunning, game.PhasePaused:
		return
	case game.PhaseOver:
		e.deal()
	}
	e.ctx.Readout.SetMoves(e.moves)
	e.phase = game.PhaseRunning
}

// Pause and Resume are no-ops: there is no cadence to cancel
func (e *Engine) Pause()  {}
func (e *Engine) Resume() {}

// Stop cancels a pending evaluation or win notice
func (e *Engine) Stop() {
	if e.eval != nil {
		e.eval.Cancel()
		e.eval = nil
	}
	e.session.Invalidate()
}

func (e *Engine) HandleInput(in game.Input) {
	if e.phase != game.PhaseRunning {
		return
	}

	switch ev := in.(type) {
	case game.Click:
		e.flip(ev.Index)
	case game.KeyEvent:
		if !ev.Pressed {
			return
		}
		e.moveCursor(ev.Key)
	}
}

func (e *Engine) moveCursor(k game.Key) {
	cols := constants.MemoryColumns
	row, col := e.cursor/cols, e.cursor%cols
	rows := DeckSize / cols

	switch k {
	case game.KeyUp:
		row = max(row-1, 0)
	case game.KeyDown:
		row = min(row+1, rows-1)
	case game.KeyLeft:
		col = max(col-1, 0)
	case game.KeyRight:
		col = min(col+1, cols-1)
	case game.KeyEnter:
		e.flip(e.cursor)
		return
	}
	e.cursor = row*cols + col
}

// flip reveals a card; ignored while two cards await evaluation or the card is already up
func (e *Engine) flip(i int) {
	if i < 0 || i >= len(e.cards) || len(e.flipped) >= 2 {
		return
	}
	c := &e.cards[i]
	if c.Matched || c.Revealed {
		return
	}

	c.Revealed = true
	e.flipped = append(e.flipped, i)
	if len(e.flipped) < 2 {
		return
	}

	e.moves++
	e.ctx.Readout.SetMoves(e.moves)
	e.eval = e.session.After(constants.MemoryRevealDelay, e.evaluate)
}

// evaluate resolves the flipped pair and always clears the flipped set
func (e *Engine) evaluate() {
	e.eval = nil
	if len(e.flipped) != 2 {
		e.flipped = e.flipped[:0]
		return
	}
	a, b := &e.cards[e.flipped[0]], &e.cards[e.flipped[1]]
	e.flipped = e.flipped[:0]

	if a.Symbol != b.Symbol {
		a.Revealed, b.Revealed = false, false
		e.statMisses.Add(1)
		e.ctx.Sounds.Play(game.CueMiss)
		return
	}

	a.Matched, b.Matched = true, true
	e.matched += 2
	e.session.Score += constants.MemoryMatchReward
	e.ctx.Progress.AddExperience(constants.MemoryMatchReward)
	e.statMatches.Add(1)
	e.ctx.Sounds.Play(game.CueMatch)

	if e.matched == len(e.cards) {
		e.eval = e.session.After(constants.MemoryWinDelay, e.win)
	}
}

func (e *Engine) win() {
	e.eval = nil
	e.phase = game.PhaseOver

	e.ctx.Progress.RecordScoreIfHighest(e.session.Score)
	e.ctx.Sounds.Play(game.CueWin)
	e.ctx.Notifier.Notify(fmt.Sprintf("You Won! Moves: %d", e.moves), 0)
	e.session.Logger().Info("board cleared",
		zap.Int("moves", e.moves),
		zap.Int("score", e.session.Score))
}

func (e *Engine) Snapshot() Snapshot {
	cards := make([]Card, len(e.cards))
	copy(cards, e.cards[:])
	flipped := make([]int, len(e.flipped))
	copy(flipped, e.flipped)
	return Snapshot{
		Cards:   cards,
		Flipped: flipped,
		Cursor:  e.cursor,
		Moves:   e.moves,
		Score:   e.session.Score,
		Phase:   e.phase,
		Columns: constants.MemoryColumns,
	}
}
