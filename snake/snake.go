// Package snake implements the grid snake engine
package snake

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/core"
	"github.com/lixenwraith/folio-arcade/engine"
	"github.com/lixenwraith/folio-arcade/game"
)

var (
	dirUp    = core.Point{X: 0, Y: -1}
	dirDown  = core.Point{X: 0, Y: 1}
	dirLeft  = core.Point{X: -1, Y: 0}
	dirRight = core.Point{X: 1, Y: 0}
)

// Snapshot is a read-only copy of the engine state
type Snapshot struct {
	Body      []core.Point // head first
	Food      core.Point
	Direction core.Point
	Score     int
	Phase     game.Phase
	Width     int
	Height    int
}

// Engine is the snake simulation
type Engine struct {
	ctx     *game.Context
	session *game.Session
	bounds  core.Area

	body    []core.Point
	food    core.Point
	dir     core.Point
	pending core.Point
	phase   game.Phase
	tick    engine.Handle

	// Telemetry
	statTicks *atomic.Int64
}

// New creates a snake engine in the ready phase
func New(ctx *game.Context) *Engine {
	e := &Engine{
		ctx:     ctx,
		session: game.NewSession(game.KindSnake, ctx.Scheduler, ctx.Log),
		bounds: core.Area{
			Width:  constants.SnakeGridSize,
			Height: constants.SnakeGridSize,
		},
		food:      core.Point{X: constants.SnakeInitialFoodX, Y: constants.SnakeInitialFoodY},
		phase:     game.PhaseReady,
		statTicks: ctx.Status.Ints.Get("snake.ticks"),
	}
	e.reset()
	return e
}

func (e *Engine) Kind() game.Kind        { return game.KindSnake }
func (e *Engine) Session() *game.Session { return e.session }
func (e *Engine) Phase() game.Phase      { return e.phase }

// Controls shows start while not running and pause while running
func (e *Engine) Controls() game.Controls {
	running := e.phase == game.PhaseRunning
	return game.Controls{Start: !running, Pause: running}
}

func (e *Engine) reset() {
	e.body = []core.Point{{X: constants.SnakeStartX, Y: constants.SnakeStartY}}
	e.dir = dirRight
	e.pending = dirRight
	e.session.Score = 0
}

// Start begins a fresh round
func (e *Engine) Start() {
	if !e.session.Alive() || e.phase == game.PhaseRunning {
		return
	}
	e.cancelTick()
	e.reset()
	e.ctx.Readout.SetScore(0)
	e.placeFood()
	e.phase = game.PhaseRunning
	e.tick = e.session.Every(constants.SnakeTickInterval, e.step)
	e.session.Logger().Info("round started")
}

// Pause cancels the tick, keeping the board
func (e *Engine) Pause() {
	if e.phase != game.PhaseRunning {
		return
	}
	e.cancelTick()
	e.phase = game.PhasePaused
}

// Resume re-arms the tick after Pause
func (e *Engine) Resume() {
	if e.phase != game.PhasePaused || !e.session.Alive() {
		return
	}
	e.phase = game.PhaseRunning
	e.tick = e.session.Every(constants.SnakeTickInterval, e.step)
}

// Stop tears the session down
func (e *Engine) Stop() {
	e.cancelTick()
	e.session.Invalidate()
}

func (e *Engine) cancelTick() {
	if e.tick != nil {
		e.tick.Cancel()
		e.tick = nil
	}
}

// HandleInput queues an orthogonal turn for the next tick
// Turns are judged against the direction applied by the last tick, so a reversal
// can never slip in between two queued turns
func (e *Engine) HandleInput(in game.Input) {
	ev, ok := in.(game.KeyEvent)
	if !ok || !ev.Pressed || e.phase != game.PhaseRunning {
		return
	}

	switch ev.Key {
	case game.KeyUp:
		if e.dir.Y == 0 {
			e.pending = dirUp
		}
	case game.KeyDown:
		if e.dir.Y == 0 {
			e.pending = dirDown
		}
	case game.KeyLeft:
		if e.dir.X == 0 {
			e.pending = dirLeft
		}
	case game.KeyRight:
		if e.dir.X == 0 {
			e.pending = dirRight
		}
	}
}

// step advances one tick
func (e *Engine) step() {
	if e.phase != game.PhaseRunning {
		return
	}
	e.statTicks.Add(1)

	e.dir = e.pending
	head := e.body[0].Add(e.dir)

	if !e.bounds.Contains(head) {
		e.gameOver("wall")
		return
	}
	for _, c := range e.body {
		if c == head {
			e.gameOver("self")
			return
		}
	}

	e.body = append(e.body, core.Point{})
	copy(e.body[1:], e.body)
	e.body[0] = head

	if head == e.food {
		e.session.Score += constants.SnakeFoodReward
		e.ctx.Progress.AddExperience(constants.SnakeFoodReward)
		e.ctx.Readout.SetScore(e.session.Score)
		e.ctx.Sounds.Play(game.CuePickup)
		e.placeFood()
		return
	}

	e.body = e.body[:len(e.body)-1]
}

// placeFood picks a uniform random cell, re-rolling a bounded number of times off the body
// then taking the first free cell in row order; a full board leaves food where it is
func (e *Engine) placeFood() {
	for attempt := 0; attempt < constants.SnakeFoodPlacementAttempts; attempt++ {
		p := core.Point{
			X: e.ctx.Rand.Intn(e.bounds.Width),
			Y: e.ctx.Rand.Intn(e.bounds.Height),
		}
		if !e.occupies(p) {
			e.food = p
			return
		}
	}
	for y := 0; y < e.bounds.Height; y++ {
		for x := 0; x < e.bounds.Width; x++ {
			if p := (core.Point{X: x, Y: y}); !e.occupies(p) {
				e.food = p
				return
			}
		}
	}
}

func (e *Engine) occupies(p core.Point) bool {
	for _, c := range e.body {
		if c == p {
			return true
		}
	}
	return false
}

func (e *Engine) gameOver(cause string) {
	e.cancelTick()
	e.phase = game.PhaseOver

	score := e.session.Score
	e.ctx.Progress.RecordScoreIfHighest(score)
	e.ctx.Sounds.Play(game.CueGameOver)
	e.ctx.Notifier.Notify(fmt.Sprintf("Game Over! Score: %d", score), 0)
	e.session.Logger().Info("game over",
		zap.String("cause", cause),
		zap.Int("score", score),
		zap.Int("length", len(e.body)))
}

// Snapshot returns a copy of the state for rendering
func (e *Engine) Snapshot() Snapshot {
	body := make([]core.Point, len(e.body))
	copy(body, e.body)
	return Snapshot{
		Body:      body,
		Food:      e.food,
		Direction: e.dir,
		Score:     e.session.Score,
		Phase:     e.phase,
		Width:     e.bounds.Width,
		Height:    e.bounds.Height,
	}
}
