// Package app runs the terminal arcade: menu, event dispatch and frame pacing
package app

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/core"
	"github.com/lixenwraith/folio-arcade/engine"
	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/host"
	"github.com/lixenwraith/folio-arcade/input"
	"github.com/lixenwraith/folio-arcade/memory"
	"github.com/lixenwraith/folio-arcade/notify"
	"github.com/lixenwraith/folio-arcade/progress"
	"github.com/lixenwraith/folio-arcade/render"
	"github.com/lixenwraith/folio-arcade/status"
	"github.com/lixenwraith/folio-arcade/typing"
)

// Sounds plays cues and owns the mute switch
type Sounds interface {
	game.Sounds
	ToggleMuted() bool
	Muted() bool
}

// Options are the collaborators built by main
type Options struct {
	Screen    tcell.Screen
	Scheduler engine.Scheduler
	Progress  *progress.Store
	Notices   *notify.Service
	Sounds    Sounds
	Keys      *input.KeyTable
	Palette   render.Palette
	Debug     bool
	Log       *zap.Logger
	Status    *status.Registry
}

// App wires terminal events to the host and draws frames
// Every method except Run must be called on the loop
type App struct {
	screen   tcell.Screen
	store    *progress.Store
	notices  *notify.Service
	sounds   Sounds
	host     *host.Host
	renderer *render.TerminalRenderer
	machine  *input.Machine
	hold     *input.HoldTracker
	status   *status.Registry
	log      *zap.Logger
	quit     func()

	statFrames *atomic.Int64
	statEvents *atomic.Int64
}

func New(opts Options) *App {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	gc := game.Context{
		Scheduler: opts.Scheduler,
		Readout:   game.NewReadout(),
		Log:       log,
		Status:    reg,
	}
	// Typed nil pointers must stay out of the interfaces
	if opts.Progress != nil {
		gc.Progress = opts.Progress
	}
	if opts.Notices != nil {
		gc.Notifier = opts.Notices
	}
	if opts.Sounds != nil {
		gc.Sounds = opts.Sounds
	}
	ctx := gc.WithDefaults()

	a := &App{
		screen:     opts.Screen,
		store:      opts.Progress,
		notices:    opts.Notices,
		sounds:     opts.Sounds,
		host:       host.New(ctx),
		renderer:   render.NewTerminalRenderer(opts.Screen, opts.Palette, opts.Debug),
		machine:    input.NewMachine(opts.Keys),
		status:     reg,
		log:        log.Named("app"),
		quit:       func() {},
		statFrames: reg.Ints.Get("app.frames"),
		statEvents: reg.Ints.Get("app.events"),
	}
	a.hold = input.NewHoldTracker(opts.Scheduler, func(ev game.KeyEvent) {
		a.host.HandleInput(ev)
	})
	return a
}

// Run polls the screen and drives loop until quit or ctx is done
// The loop must be the scheduler the App was built with
func (a *App) Run(ctx context.Context, loop *engine.Loop) error {
	a.quit = loop.Stop

	// Poller exits when the loop stops or the screen is finalized
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			if !loop.Post(func() { a.HandleEvent(ev) }) {
				return
			}
		}
	})

	frames := loop.Every(constants.FrameUpdateInterval, a.Draw)
	defer frames.Cancel()
	loop.Post(a.Draw)

	a.log.Info("arcade started")
	err := loop.Run(ctx)

	// Loop is stopped: nothing else touches game state from here
	a.hold.ReleaseAll()
	a.host.Close()
	a.log.Info("arcade stopped")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// HandleEvent translates one terminal event and applies it
func (a *App) HandleEvent(ev tcell.Event) {
	a.statEvents.Add(1)
	in := a.machine.Translate(ev)

	switch in.Type {
	case input.IntentQuit:
		a.quit()
	case input.IntentToggleMute:
		if a.sounds == nil {
			return
		}
		muted := a.sounds.ToggleMuted()
		a.log.Debug("mute toggled", zap.Bool("muted", muted))
	case input.IntentResize:
		a.screen.Sync()
		a.renderer.Resize()
	case input.IntentOpen:
		a.open(in.Kind)
	case input.IntentClose:
		a.close()
	case input.IntentStart:
		a.host.Start()
	case input.IntentConfirm:
		if _, ok := a.host.Active().(*memory.Engine); ok {
			a.host.HandleInput(game.Press(game.KeyEnter))
			return
		}
		a.host.Start()
	case input.IntentPause:
		a.host.Pause()
	case input.IntentRestart:
		a.host.Restart()
	case input.IntentGameKey:
		a.hold.Press(in.Key)
	case input.IntentTextEdit:
		a.editText(in.Event)
	case input.IntentMouseClick:
		a.click(in.X, in.Y)
	}
}

func (a *App) open(kind game.Kind) {
	a.hold.ReleaseAll()
	if a.host.Open(kind) == nil {
		return
	}
	if kind == game.KindTyping {
		a.machine.SetMode(input.ModeText)
	} else {
		a.machine.SetMode(input.ModeGame)
	}
}

func (a *App) close() {
	a.hold.ReleaseAll()
	a.host.Close()
	a.machine.SetMode(input.ModeMenu)
}

// editText applies the key to the typing field and forwards the full value
func (a *App) editText(ev *tcell.EventKey) {
	t, ok := a.host.Active().(*typing.Engine)
	if !ok || ev == nil {
		return
	}
	value, changed := input.EditText(t.Snapshot().Input, ev)
	if changed {
		a.host.HandleInput(game.TextChange{Value: value})
	}
}

func (a *App) click(x, y int) {
	switch a.host.Active().(type) {
	case nil:
		if kind, ok := a.renderer.MenuItemAt(x, y); ok {
			a.open(kind)
		}
	case *memory.Engine:
		if i, ok := a.renderer.MemoryCardAt(x, y); ok {
			a.host.HandleInput(game.Click{Index: i})
		}
	}
}

// Draw renders one frame from the current state
func (a *App) Draw() {
	a.statFrames.Add(1)

	f := render.Frame{
		Active:   a.host.Active(),
		Readout:  a.host.Readout(),
		Controls: a.host.Controls(),
		State:    a.host.State().String(),
		Muted:    a.sounds != nil && a.sounds.Muted(),
		Debug:    a.status.Lines(),
	}
	if a.store != nil {
		f.Progress = a.store.Snapshot()
	}
	if a.notices != nil {
		f.Notices = a.notices.Active()
	}
	a.renderer.RenderFrame(f)
}

// Host exposes the game slot
func (a *App) Host() *host.Host {
	return a.host
}

// Mode returns the current input mode
func (a *App) Mode() input.Mode {
	return a.machine.Mode()
}
