// Package host owns the single active game slot
package host

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/memory"
	"github.com/lixenwraith/folio-arcade/pong"
	"github.com/lixenwraith/folio-arcade/snake"
	"github.com/lixenwraith/folio-arcade/status"
	"github.com/lixenwraith/folio-arcade/typing"
)

// State is the host-level view of the active slot
type State uint8

const (
	StateIdle State = iota
	// StateReady has an engine waiting for a start action, including after game over
	StateReady
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// NewEngine constructs the engine for kind; the switch is exhaustive over the closed set
func NewEngine(kind game.Kind, ctx *game.Context) game.Engine {
	switch kind {
	case game.KindSnake:
		return snake.New(ctx)
	case game.KindPong:
		return pong.New(ctx)
	case game.KindMemory:
		return memory.New(ctx)
	case game.KindTyping:
		return typing.New(ctx)
	default:
		return nil
	}
}

// Host mediates start, pause and teardown for at most one engine
type Host struct {
	ctx    *game.Context
	active game.Engine
	log    *zap.Logger

	statOpens *atomic.Int64
	statGame  *status.AtomicString
}

func New(ctx *game.Context) *Host {
	h := &Host{
		ctx:       ctx,
		log:       ctx.Log.Named("host"),
		statOpens: ctx.Status.Ints.Get("host.opens"),
		statGame:  ctx.Status.Strings.Get("host.game"),
	}
	h.statGame.Store("none")
	return h
}

// Open tears down the current engine, then constructs kind and auto-starts it if the kind does so
// Returns nil for an unknown kind, leaving the host idle
func (h *Host) Open(kind game.Kind) game.Engine {
	h.Close()

	e := NewEngine(kind, h.ctx)
	if e == nil {
		return nil
	}
	h.active = e
	h.ctx.Readout.SetScore(0)
	h.statOpens.Add(1)
	h.statGame.Store(kind.String())
	h.log.Info("game opened",
		zap.Stringer("game", kind),
		zap.Stringer("session", e.Session().ID))

	if kind.AutoStart() {
		e.Start()
	}
	return e
}

// Start begins a round from ready or over, or resumes from pause
func (h *Host) Start() {
	if h.active == nil {
		return
	}
	switch h.active.Phase() {
	case game.PhaseReady, game.PhaseOver:
		h.active.Start()
	case game.PhasePaused:
		h.active.Resume()
	}
}

// Restart starts a fresh round regardless of phase; engines that cannot restart mid-round ignore it
func (h *Host) Restart() {
	if h.active == nil {
		return
	}
	h.active.Start()
}

// Pause toggles pause for engines that show a pause control
func (h *Host) Pause() {
	if h.active == nil {
		return
	}
	switch h.active.Phase() {
	case game.PhaseRunning:
		if h.active.Controls().Pause {
			h.active.Pause()
		}
	case game.PhasePaused:
		h.active.Resume()
	}
}

// Close runs the stop hook of the active engine and returns to idle
func (h *Host) Close() {
	if h.active == nil {
		return
	}
	kind := h.active.Kind()
	h.active.Stop()
	h.active = nil
	h.statGame.Store("none")
	h.log.Info("game closed", zap.Stringer("game", kind))
}

// HandleInput forwards to the active engine
func (h *Host) HandleInput(in game.Input) {
	if h.active == nil {
		return
	}
	h.active.HandleInput(in)
}

func (h *Host) State() State {
	if h.active == nil {
		return StateIdle
	}
	switch h.active.Phase() {
	case game.PhaseRunning:
		return StateRunning
	case game.PhasePaused:
		return StatePaused
	default:
		return StateReady
	}
}

// Controls reports which controls to show; hidden while idle
func (h *Host) Controls() game.Controls {
	if h.active == nil {
		return game.Controls{}
	}
	return h.active.Controls()
}

// Active returns the current engine or nil
func (h *Host) Active() game.Engine {
	return h.active
}

// Readout returns the shared score line
func (h *Host) Readout() string {
	return h.ctx.Readout.Text()
}
