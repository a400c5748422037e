package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/core"
	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/game/gametest"
	"github.com/lixenwraith/folio-arcade/memory"
	"github.com/lixenwraith/folio-arcade/notify"
	"github.com/lixenwraith/folio-arcade/pong"
	"github.com/lixenwraith/folio-arcade/progress"
	"github.com/lixenwraith/folio-arcade/snake"
	"github.com/lixenwraith/folio-arcade/typing"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)
	return screen
}

// row returns the runes of one screen row as a string
func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func contains(screen tcell.Screen, text string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(row(screen, y), text) {
			return true
		}
	}
	return false
}

// TestRenderMenu verifies the header and the game list
func TestRenderMenu(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen, NewPalette(true), false)

	r.RenderFrame(Frame{Progress: progress.Record{Experience: 120, Level: 2, HighScore: 40}})

	if !strings.Contains(row(screen, 0), "XP 120  Level 2  High Score 40") {
		t.Errorf("header = %q", row(screen, 0))
	}
	for _, k := range game.Kinds {
		if !contains(screen, k.Title()) {
			t.Errorf("menu missing %q", k.Title())
		}
	}

	for i, k := range game.Kinds {
		y := constants.HeaderHeight + 3 + i
		if !strings.Contains(row(screen, y), k.Title()) {
			t.Errorf("row %d = %q, want %q", y, row(screen, y), k.Title())
		}
		got, ok := r.MenuItemAt(5, y)
		if !ok || got != k {
			t.Errorf("MenuItemAt(5, %d) = %v, %v, want %v", y, got, ok, k)
		}
	}
	if _, ok := r.MenuItemAt(5, constants.HeaderHeight+3+len(game.Kinds)); ok {
		t.Error("click below the menu should miss")
	}
}

// TestRenderSnake verifies head, body and food placement
func TestRenderSnake(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen, NewPalette(true), false)
	h := gametest.New(t, 1)
	e := snake.New(h.Ctx)

	r.RenderFrame(Frame{Active: e, Readout: "Score: 0", Controls: e.Controls()})

	hx, hy := snakeCell(core.Point{X: 10, Y: 10})
	if ch, _, _, _ := screen.GetContent(hx, hy); ch != '█' {
		t.Errorf("head cell = %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(hx+1, hy); ch != '█' {
		t.Errorf("head is not two columns wide")
	}
	fx, fy := snakeCell(core.Point{X: 5, Y: 5})
	if ch, _, _, _ := screen.GetContent(fx, fy); ch != '●' {
		t.Errorf("food cell = %q", ch)
	}
	if !contains(screen, "Snake Master") || !contains(screen, "Score: 0") || !contains(screen, "Start [s]") {
		t.Error("title, readout or start control missing")
	}
	if contains(screen, "Pause [p]") {
		t.Error("pause shown before start")
	}
}

// TestRenderPong verifies the court scaling
func TestRenderPong(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen, NewPalette(true), false)
	h := gametest.New(t, 1)
	e := pong.New(h.Ctx)

	r.RenderFrame(Frame{Active: e})

	bx, by := pongCell(300, 200)
	if ch, _, _, _ := screen.GetContent(bx, by); ch != '●' {
		t.Errorf("ball cell (%d,%d) = %q", bx, by, ch)
	}
	px, _ := pongCell(10, 0)
	for y := 150 / constants.PongPixelsPerRow; y < 250/constants.PongPixelsPerRow; y++ {
		if ch, _, _, _ := screen.GetContent(px, gameY+y); ch != '█' {
			t.Errorf("player paddle missing at row %d", y)
		}
	}
}

// TestRenderMemoryAndHitTest verifies faces and that card clicks map back to indices
func TestRenderMemoryAndHitTest(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen, NewPalette(true), false)
	h := gametest.New(t, 1)
	e := memory.New(h.Ctx)
	e.Start()
	e.HandleInput(game.Click{Index: 5})

	r.RenderFrame(Frame{Active: e})

	layout := memoryLayout(memory.DeckSize)
	area := layout.CardRect(5)
	ch, _, _, _ := screen.GetContent(area.X+area.Width/2, area.Y+area.Height/2)
	if ch != e.Snapshot().Cards[5].Symbol {
		t.Errorf("revealed face = %q, want %q", ch, e.Snapshot().Cards[5].Symbol)
	}
	hidden := layout.CardRect(6)
	if ch, _, _, _ := screen.GetContent(hidden.X+hidden.Width/2, hidden.Y+hidden.Height/2); ch != ' ' {
		t.Errorf("hidden card shows %q", ch)
	}

	for i := 0; i < memory.DeckSize; i++ {
		a := layout.CardRect(i)
		if got, ok := r.MemoryCardAt(a.X+a.Width-1, a.Y+a.Height-1); !ok || got != i {
			t.Errorf("MemoryCardAt card %d corner = %d, %v", i, got, ok)
		}
	}
	gap := layout.CardRect(0)
	if _, ok := r.MemoryCardAt(gap.X+gap.Width, gap.Y); ok {
		t.Error("gap between cards hit a card")
	}
}

// TestRenderTyping verifies target, input and stats lines
func TestRenderTyping(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen, NewPalette(false), false)
	h := gametest.New(t, 1)
	e := typing.New(h.Ctx)
	e.Start()
	target := e.Snapshot().Target
	h.Sched.Advance(12 * time.Second)
	e.HandleInput(game.TextChange{Value: target})

	r.RenderFrame(Frame{Active: e})

	if !strings.Contains(row(screen, gameY), target) {
		t.Errorf("target row = %q", row(screen, gameY))
	}
	if !strings.Contains(row(screen, gameY+2), target) {
		t.Errorf("input row = %q", row(screen, gameY+2))
	}
	if !contains(screen, "WPM - Great job!") {
		t.Error("stats missing")
	}
}

// TestRenderNotices verifies toasts are drawn and truncated
func TestRenderNotices(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen, NewPalette(true), false)

	long := strings.Repeat("x", 80)
	r.RenderFrame(Frame{Notices: []notify.Notice{
		{ID: 1, Message: "Level Up! You're now level 2!"},
		{ID: 2, Message: long},
	}})

	if !strings.Contains(row(screen, 1), "Level Up! You're now level 2!") {
		t.Errorf("toast row = %q", row(screen, 1))
	}
	if strings.Contains(row(screen, 3), long) || !strings.Contains(row(screen, 3), "…") {
		t.Errorf("long toast not truncated: %q", row(screen, 3))
	}
}

// TestRenderDebugFooter verifies status lines only show in debug mode
func TestRenderDebugFooter(t *testing.T) {
	screen := newScreen(t)
	lines := []string{"host.game=snake", "snake.ticks=12"}

	NewTerminalRenderer(screen, NewPalette(true), false).RenderFrame(Frame{Debug: lines})
	if contains(screen, "snake.ticks=12") {
		t.Error("debug lines shown without debug")
	}

	NewTerminalRenderer(screen, NewPalette(true), true).RenderFrame(Frame{Debug: lines})
	if !strings.Contains(row(screen, 39), "snake.ticks=12") {
		t.Errorf("last row = %q", row(screen, 39))
	}
}
