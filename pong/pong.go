// Package pong implements the paddle game against a reactive opponent
package pong

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/engine"
	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/vmath"
)

// Snapshot is a read-only copy of the court
type Snapshot struct {
	Ball     vmath.Vec2F
	Velocity vmath.Vec2F
	Radius   float64
	Player   vmath.RectF
	Opponent vmath.RectF
	Score    int
	Phase    game.Phase
	Width    float64
	Height   float64
}

// Engine is the pong simulation, all lengths in court pixels
type Engine struct {
	ctx     *game.Context
	session *game.Session

	ball     vmath.Vec2F
	vel      vmath.Vec2F
	player   vmath.RectF
	opponent vmath.RectF

	holdUp   bool
	holdDown bool

	phase game.Phase
	tick  engine.Handle

	// Telemetry
	statTicks   *atomic.Int64
	statRallies *atomic.Int64
}

// New creates a pong engine with paddles centred and the ball at rest in the middle
func New(ctx *game.Context) *Engine {
	paddleY := constants.PongCourtHeight/2 - constants.PongPaddleHeight/2
	e := &Engine{
		ctx:     ctx,
		session: game.NewSession(game.KindPong, ctx.Scheduler, ctx.Log),
		player: vmath.RectF{
			X: constants.PongPlayerX, Y: paddleY,
			W: constants.PongPaddleWidth, H: constants.PongPaddleHeight,
		},
		opponent: vmath.RectF{
			X: constants.PongOpponentX, Y: paddleY,
			W: constants.PongPaddleWidth, H: constants.PongPaddleHeight,
		},
		phase:       game.PhaseReady,
		statTicks:   ctx.Status.Ints.Get("pong.ticks"),
		statRallies: ctx.Status.Ints.Get("pong.hits"),
	}
	e.serve()
	return e
}

func (e *Engine) Kind() game.Kind        { return game.KindPong }
func (e *Engine) Session() *game.Session { return e.session }
func (e *Engine) Phase() game.Phase      { return e.phase }

func (e *Engine) Controls() game.Controls {
	running := e.phase == game.PhaseRunning
	return game.Controls{Start: !running, Pause: running}
}

// serve puts the ball back in the centre with the fixed initial velocity
func (e *Engine) serve() {
	e.ball = vmath.Vec2F{X: constants.PongCourtWidth / 2, Y: constants.PongCourtHeight / 2}
	e.vel = vmath.Vec2F{X: constants.PongBallSpeedX, Y: constants.PongBallSpeedY}
	e.session.Score = 0
}

// Start serves a new ball and clears the score; paddles keep their position
func (e *Engine) Start() {
	if !e.session.Alive() || e.phase == game.PhaseRunning {
		return
	}
	e.cancelTick()
	e.serve()
	e.ctx.Readout.SetScore(0)
	e.phase = game.PhaseRunning
	e.tick = e.session.Every(constants.PongTickInterval, e.step)
	e.session.Logger().Info("round started")
}

func (e *Engine) Pause() {
	if e.phase != game.PhaseRunning {
		return
	}
	e.cancelTick()
	e.phase = game.PhasePaused
}

func (e *Engine) Resume() {
	if e.phase != game.PhasePaused || !e.session.Alive() {
		return
	}
	e.phase = game.PhaseRunning
	e.tick = e.session.Every(constants.PongTickInterval, e.step)
}

// Stop cancels the tick and forgets held keys
func (e *Engine) Stop() {
	e.cancelTick()
	e.holdUp, e.holdDown = false, false
	e.session.Invalidate()
}

func (e *Engine) cancelTick() {
	if e.tick != nil {
		e.tick.Cancel()
		e.tick = nil
	}
}

// HandleInput tracks held paddle keys
// Held state is tracked in every phase so a key held across a pause keeps moving on resume
func (e *Engine) HandleInput(in game.Input) {
	ev, ok := in.(game.KeyEvent)
	if !ok || !e.session.Alive() {
		return
	}
	switch ev.Key {
	case game.KeyUp:
		e.holdUp = ev.Pressed
	case game.KeyDown:
		e.holdDown = ev.Pressed
	}
}

func (e *Engine) step() {
	if e.phase != game.PhaseRunning {
		return
	}
	e.statTicks.Add(1)

	e.movePlayer()
	e.moveOpponent()

	e.ball = vmath.V2FAdd(e.ball, e.vel)
	r := constants.PongBallRadius

	// Walls reflect toward the court so a ball cannot stick to an edge
	if e.ball.Y-r < 0 && e.vel.Y < 0 {
		e.vel = vmath.ReflectAxisY(e.vel)
	} else if e.ball.Y+r > constants.PongCourtHeight && e.vel.Y > 0 {
		e.vel = vmath.ReflectAxisY(e.vel)
	}

	if e.vel.X < 0 && e.touches(e.player, e.ball.X-r) {
		e.vel = vmath.ReflectAxisX(e.vel)
		e.session.Score += constants.PongHitReward
		e.ctx.Progress.AddExperience(constants.PongHitReward)
		e.ctx.Readout.SetScore(e.session.Score)
		e.ctx.Sounds.Play(game.CueHit)
		e.statRallies.Add(1)
	} else if e.vel.X > 0 && e.touches(e.opponent, e.ball.X+r) {
		e.vel = vmath.ReflectAxisX(e.vel)
	}

	if e.ball.X < 0 || e.ball.X > constants.PongCourtWidth {
		e.gameOver()
	}
}

// touches reports a paddle contact: leading edge inside the paddle's horizontal extent
// and the ball's vertical span overlapping the paddle
func (e *Engine) touches(paddle vmath.RectF, edge float64) bool {
	r := constants.PongBallRadius
	return vmath.EdgeWithin(edge, paddle.X, paddle.Right()) &&
		vmath.SpanOverlap(e.ball.Y-r, e.ball.Y+r, paddle.Y, paddle.Bottom())
}

func (e *Engine) movePlayer() {
	dy := 0.0
	if e.holdUp {
		dy -= constants.PongPlayerSpeed
	}
	if e.holdDown {
		dy += constants.PongPlayerSpeed
	}
	e.player.Y = vmath.Clamp(e.player.Y+dy, 0, constants.PongCourtHeight-e.player.H)
}

// moveOpponent steps toward the ball only while the ball is on the opponent's half
func (e *Engine) moveOpponent() {
	if e.ball.X <= constants.PongCourtWidth/2 {
		return
	}
	centre := e.opponent.Y + e.opponent.H/2
	dy := constants.PongOpponentSpeed
	if centre >= e.ball.Y {
		dy = -dy
	}
	e.opponent.Y = vmath.Clamp(e.opponent.Y+dy, 0, constants.PongCourtHeight-e.opponent.H)
}

func (e *Engine) gameOver() {
	e.cancelTick()
	e.phase = game.PhaseOver

	score := e.session.Score
	e.ctx.Progress.RecordScoreIfHighest(score)
	e.ctx.Sounds.Play(game.CueGameOver)
	e.ctx.Notifier.Notify(fmt.Sprintf("Game Over! Score: %d", score), 0)
	e.session.Logger().Info("game over",
		zap.Int("score", score),
		zap.Float64("ball_x", e.ball.X))
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Ball:     e.ball,
		Velocity: e.vel,
		Radius:   constants.PongBallRadius,
		Player:   e.player,
		Opponent: e.opponent,
		Score:    e.session.Score,
		Phase:    e.phase,
		Width:    constants.PongCourtWidth,
		Height:   constants.PongCourtHeight,
	}
}
