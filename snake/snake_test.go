package snake

import (
	"testing"
	"time"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/core"
	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/game/gametest"
)

func started(t *testing.T) (*Engine, *gametest.Harness) {
	t.Helper()
	h := gametest.New(t, 99)
	e := New(h.Ctx)
	e.Start()
	// Park food away from the path so ticks do not grow the snake by accident
	e.food = core.Point{X: 0, Y: 0}
	return e, h
}

// TestSnakeReadyState verifies the initial board before start
func TestSnakeReadyState(t *testing.T) {
	h := gametest.New(t, 1)
	e := New(h.Ctx)

	snap := e.Snapshot()
	if snap.Phase != game.PhaseReady {
		t.Errorf("phase = %v, want Ready", snap.Phase)
	}
	if len(snap.Body) != 1 || snap.Body[0] != (core.Point{X: 10, Y: 10}) {
		t.Errorf("body = %v", snap.Body)
	}
	if snap.Food != (core.Point{X: 5, Y: 5}) {
		t.Errorf("food = %v", snap.Food)
	}
	if !e.Controls().Start || e.Controls().Pause {
		t.Errorf("controls = %+v, want start only", e.Controls())
	}
	if h.Sched.PendingRecurring() != 0 {
		t.Error("tick armed before start")
	}
}

// TestSnakeMoves verifies one cell per tick without growth
func TestSnakeMoves(t *testing.T) {
	e, h := started(t)

	h.Sched.Advance(constants.SnakeTickInterval)
	snap := e.Snapshot()
	if snap.Body[0] != (core.Point{X: 11, Y: 10}) || len(snap.Body) != 1 {
		t.Errorf("after one tick body = %v", snap.Body)
	}

	h.Sched.Advance(3 * constants.SnakeTickInterval)
	if got := e.Snapshot().Body[0]; got != (core.Point{X: 14, Y: 10}) {
		t.Errorf("after four ticks head = %v", got)
	}
}

// TestSnakeEatsFood verifies growth by one and a score of exactly 10 per food
func TestSnakeEatsFood(t *testing.T) {
	e, h := started(t)
	e.food = core.Point{X: 11, Y: 10}

	h.Sched.Advance(constants.SnakeTickInterval)

	snap := e.Snapshot()
	if len(snap.Body) != 2 {
		t.Fatalf("length = %d, want 2", len(snap.Body))
	}
	if snap.Body[0] != (core.Point{X: 11, Y: 10}) || snap.Body[1] != (core.Point{X: 10, Y: 10}) {
		t.Errorf("body = %v", snap.Body)
	}
	if snap.Score != 10 {
		t.Errorf("score = %d, want 10", snap.Score)
	}
	if len(h.Progress.Awards) != 1 || h.Progress.Awards[0] != 10 {
		t.Errorf("awards = %v, want [10]", h.Progress.Awards)
	}
	if h.Ctx.Readout.Text() != "Score: 10" {
		t.Errorf("readout = %q", h.Ctx.Readout.Text())
	}
	for _, c := range snap.Body {
		if c == snap.Food {
			t.Errorf("food relocated onto body at %v", c)
		}
	}

	// Next tick moves without further growth
	e.food = core.Point{X: 0, Y: 0}
	h.Sched.Advance(constants.SnakeTickInterval)
	if n := len(e.Snapshot().Body); n != 2 {
		t.Errorf("length after next tick = %d, want 2", n)
	}
}

// TestSnakeWallCollision verifies leaving the grid ends the game
func TestSnakeWallCollision(t *testing.T) {
	e, h := started(t)
	e.session.Score = 30
	e.body = []core.Point{{X: 19, Y: 10}}

	h.Sched.Advance(constants.SnakeTickInterval)

	if e.Phase() != game.PhaseOver {
		t.Fatalf("phase = %v, want Over", e.Phase())
	}
	if h.Notifier.Last() != "Game Over! Score: 30" {
		t.Errorf("notice = %q", h.Notifier.Last())
	}
	if h.Progress.HighScore != 30 {
		t.Errorf("high score = %d, want 30", h.Progress.HighScore)
	}
	if h.Sched.PendingRecurring() != 0 {
		t.Error("tick still armed after game over")
	}
	if !e.Controls().Start {
		t.Error("start control hidden after game over")
	}

	// No further ticks mutate the board
	h.Sched.Advance(10 * constants.SnakeTickInterval)
	if e.Snapshot().Body[0] != (core.Point{X: 19, Y: 10}) {
		t.Error("board changed after game over")
	}
}

// TestSnakeSelfCollision verifies moving into an occupied cell ends the game
func TestSnakeSelfCollision(t *testing.T) {
	e, h := started(t)
	// Head at (5,5) heading down into (5,6), which stays occupied this tick
	e.body = []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}}
	e.dir = core.Point{X: 0, Y: 1}
	e.pending = e.dir

	h.Sched.Advance(constants.SnakeTickInterval)

	if e.Phase() != game.PhaseOver {
		t.Fatalf("phase = %v, want Over", e.Phase())
	}
	if len(h.Notifier.Messages) != 1 {
		t.Errorf("notices = %v", h.Notifier.Messages)
	}
}

// TestSnakeRejectsReversal verifies the opposite direction is ignored on the moving axis
func TestSnakeRejectsReversal(t *testing.T) {
	tests := []struct {
		name    string
		dir     core.Point
		reverse game.Key
	}{
		{"right to left", dirRight, game.KeyLeft},
		{"left to right", dirLeft, game.KeyRight},
		{"up to down", dirUp, game.KeyDown},
		{"down to up", dirDown, game.KeyUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, h := started(t)
			e.dir, e.pending = tt.dir, tt.dir

			e.HandleInput(game.Press(tt.reverse))
			h.Sched.Advance(constants.SnakeTickInterval)

			if e.Snapshot().Direction != tt.dir {
				t.Errorf("direction = %v, want %v", e.Snapshot().Direction, tt.dir)
			}
			if e.Phase() != game.PhaseRunning {
				t.Errorf("phase = %v, reversal should not end the game", e.Phase())
			}
		})
	}
}

// TestSnakeTurnAppliesNextTick verifies a turn is deferred to the tick
func TestSnakeTurnAppliesNextTick(t *testing.T) {
	e, h := started(t)

	e.HandleInput(game.Press(game.KeyUp))
	if e.Snapshot().Direction != dirRight {
		t.Fatal("direction changed mid-tick")
	}

	h.Sched.Advance(constants.SnakeTickInterval)
	snap := e.Snapshot()
	if snap.Direction != dirUp || snap.Body[0] != (core.Point{X: 10, Y: 9}) {
		t.Errorf("after tick dir = %v head = %v", snap.Direction, snap.Body[0])
	}
}

// TestSnakeQueuedTurnsCannotReverse verifies two turns between ticks cannot produce a reversal
func TestSnakeQueuedTurnsCannotReverse(t *testing.T) {
	e, h := started(t)

	e.HandleInput(game.Press(game.KeyUp))
	e.HandleInput(game.Press(game.KeyLeft))
	h.Sched.Advance(constants.SnakeTickInterval)

	if got := e.Snapshot().Direction; got != dirUp {
		t.Errorf("direction = %v, want up", got)
	}
}

// TestSnakeIgnoresInputWhenNotRunning verifies turns are dropped before start
func TestSnakeIgnoresInputWhenNotRunning(t *testing.T) {
	h := gametest.New(t, 1)
	e := New(h.Ctx)

	e.HandleInput(game.Press(game.KeyUp))
	e.HandleInput(game.Release(game.KeyDown))
	e.HandleInput(game.Click{Index: 3})

	if e.pending != dirRight {
		t.Errorf("pending = %v, want right", e.pending)
	}
	if e.Phase() != game.PhaseReady {
		t.Errorf("phase = %v, want Ready", e.Phase())
	}
}

// TestSnakePauseResume verifies the tick stops during pause
func TestSnakePauseResume(t *testing.T) {
	e, h := started(t)

	e.Pause()
	if e.Phase() != game.PhasePaused || h.Sched.PendingRecurring() != 0 {
		t.Fatalf("pause left phase %v and %d ticks", e.Phase(), h.Sched.PendingRecurring())
	}
	h.Sched.Advance(time.Second)
	if e.Snapshot().Body[0] != (core.Point{X: 10, Y: 10}) {
		t.Error("snake moved while paused")
	}

	e.Resume()
	h.Sched.Advance(constants.SnakeTickInterval)
	if e.Snapshot().Body[0] != (core.Point{X: 11, Y: 10}) {
		t.Errorf("head after resume = %v", e.Snapshot().Body[0])
	}
}

// TestSnakeStop verifies teardown cancels the cadence and blocks restart
func TestSnakeStop(t *testing.T) {
	e, h := started(t)

	e.Stop()
	if h.Sched.PendingRecurring() != 0 {
		t.Error("tick armed after stop")
	}
	if e.Session().Alive() {
		t.Error("session alive after stop")
	}

	e.Start()
	if h.Sched.PendingRecurring() != 0 {
		t.Error("start re-armed a stopped engine")
	}
}

// TestSnakeRestart verifies a new round resets score and body
func TestSnakeRestart(t *testing.T) {
	e, h := started(t)
	e.food = core.Point{X: 11, Y: 10}
	h.Sched.Advance(constants.SnakeTickInterval)
	e.body = []core.Point{{X: 19, Y: 10}, {X: 18, Y: 10}}
	h.Sched.Advance(constants.SnakeTickInterval)
	if e.Phase() != game.PhaseOver {
		t.Fatalf("phase = %v", e.Phase())
	}

	e.Start()
	snap := e.Snapshot()
	if snap.Score != 0 || len(snap.Body) != 1 || snap.Direction != dirRight {
		t.Errorf("restart snapshot = %+v", snap)
	}
	if h.Ctx.Readout.Text() != "Score: 0" {
		t.Errorf("readout = %q", h.Ctx.Readout.Text())
	}
	if h.Sched.PendingRecurring() != 1 {
		t.Errorf("PendingRecurring() = %d, want 1", h.Sched.PendingRecurring())
	}
}

// TestPlaceFoodAvoidsBody verifies the re-roll keeps food off the snake
func TestPlaceFoodAvoidsBody(t *testing.T) {
	h := gametest.New(t, 3)
	e := New(h.Ctx)
	e.bounds = core.Area{Width: 2, Height: 1}
	e.body = []core.Point{{X: 0, Y: 0}}

	for i := 0; i < 20; i++ {
		e.placeFood()
		if e.food != (core.Point{X: 1, Y: 0}) {
			t.Fatalf("food = %v, want the only free cell", e.food)
		}
	}
}

// TestPlaceFoodScansCrowdedBoard verifies the scan finds the last free cell when rolls keep missing
func TestPlaceFoodScansCrowdedBoard(t *testing.T) {
	h := gametest.New(t, 11)
	e := New(h.Ctx)

	free := core.Point{X: 13, Y: 17}
	e.body = e.body[:0]
	for y := 0; y < e.bounds.Height; y++ {
		for x := 0; x < e.bounds.Width; x++ {
			if p := (core.Point{X: x, Y: y}); p != free {
				e.body = append(e.body, p)
			}
		}
	}

	for i := 0; i < 5; i++ {
		e.placeFood()
		if e.food != free {
			t.Fatalf("food = %v, want %v", e.food, free)
		}
	}

	// A full board keeps the previous cell
	e.body = append(e.body, free)
	e.placeFood()
	if e.food != free {
		t.Errorf("food = %v on a full board, want unchanged %v", e.food, free)
	}
}
