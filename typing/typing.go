// Package typing implements the code snippet typing test
package typing

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/engine"
	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/status"
)

// Snippets is the fixed corpus; each round picks one uniformly, repeats allowed
var Snippets = []string{
	`function hello() { return "world"; }`,
	`const x = arr.map(i => i * 2);`,
	`let result = array.filter(x => x > 0);`,
	`async function getData() { await fetch(); }`,
	`const sum = (a, b) => a + b;`,
	`for (let i = 0; i < 10; i++) { console.log(i); }`,
	`if (condition) { doSomething(); }`,
	`class MyClass extends Base { constructor() {} }`,
}

// WPM converts a completed snippet into words per minute
// Elapsed is clamped to TypingMinElapsed so instant completions stay finite
func WPM(chars int, elapsed time.Duration) int {
	elapsed = max(elapsed, constants.TypingMinElapsed)
	words := float64(chars) / constants.TypingCharsPerWord
	return int(math.Round(words / elapsed.Minutes()))
}

// Snapshot is a read-only copy of the round
type Snapshot struct {
	Target string
	Input  string
	Stats  string
	Score  int
	Done   bool
	Phase  game.Phase
}

// Engine is the typing test; it has no cadence, only the rotation delay after a completion
type Engine struct {
	ctx     *game.Context
	session *game.Session

	target  string
	input   string
	stats   string
	shownAt time.Time
	done    bool
	phase   game.Phase

	rotate engine.Handle

	statCompleted *atomic.Int64
	statBestWPM   *atomic.Int64
	statAvgWPM    *status.AtomicFloat
}

func New(ctx *game.Context) *Engine {
	return &Engine{
		ctx:           ctx,
		session:       game.NewSession(game.KindTyping, ctx.Scheduler, ctx.Log),
		phase:         game.PhaseReady,
		statCompleted: ctx.Status.Ints.Get("typing.completed"),
		statBestWPM:   ctx.Status.Ints.Get("typing.best_wpm"),
		statAvgWPM:    ctx.Status.Floats.Get("typing.avg_wpm"),
	}
}

func (e *Engine) Kind() game.Kind        { return game.KindTyping }
func (e *Engine) Session() *game.Session { return e.session }
func (e *Engine) Phase() game.Phase      { return e.phase }

// Controls shows start as a restart; there is nothing to pause
func (e *Engine) Controls() game.Controls { return game.Controls{Start: true} }

// Start resets score and stats and shows a fresh snippet, also while running
func (e *Engine) Start() {
	if !e.session.Alive() {
		return
	}
	e.cancelRotate()
	e.session.Score = 0
	e.stats = ""
	e.ctx.Readout.SetScore(0)
	e.phase = game.PhaseRunning
	e.next()
}

func (e *Engine) Pause()  {}
func (e *Engine) Resume() {}

func (e *Engine) Stop() {
	e.cancelRotate()
	e.session.Invalidate()
}

func (e *Engine) cancelRotate() {
	if e.rotate != nil {
		e.rotate.Cancel()
		e.rotate = nil
	}
}

// next shows a random snippet, clears the input and restarts the clock
func (e *Engine) next() {
	e.rotate = nil
	e.target = Snippets[e.ctx.Rand.Intn(len(Snippets))]
	e.input = ""
	e.done = false
	e.shownAt = e.session.Now()
}

// HandleInput compares the whole field against the target on every change
// Changes after a completion are dropped until the next snippet appears
func (e *Engine) HandleInput(in game.Input) {
	tc, ok := in.(game.TextChange)
	if !ok || e.phase != game.PhaseRunning || e.done {
		return
	}
	e.input = tc.Value
	if e.input == e.target {
		e.complete()
	}
}

func (e *Engine) complete() {
	elapsed := e.session.Now().Sub(e.shownAt)
	wpm := WPM(utf8.RuneCountInString(e.target), elapsed)

	e.done = true
	e.session.Score += wpm
	e.ctx.Progress.AddExperience(wpm)
	e.ctx.Readout.SetScore(e.session.Score)
	e.stats = fmt.Sprintf("%d WPM - Great job!", wpm)
	e.ctx.Sounds.Play(game.CueMatch)

	n := e.statCompleted.Add(1)
	e.statAvgWPM.Mean(float64(wpm), n)
	if int64(wpm) > e.statBestWPM.Load() {
		e.statBestWPM.Store(int64(wpm))
	}
	e.session.Logger().Debug("snippet completed",
		zap.Int("wpm", wpm),
		zap.Duration("elapsed", elapsed))

	e.rotate = e.session.After(constants.TypingRotateDelay, e.next)
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Target: e.target,
		Input:  e.input,
		Stats:  e.stats,
		Score:  e.session.Score,
		Done:   e.done,
		Phase:  e.phase,
	}
}
