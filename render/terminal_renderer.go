// Package render draws the arcade onto a tcell screen
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/memory"
	"github.com/lixenwraith/folio-arcade/notify"
	"github.com/lixenwraith/folio-arcade/pong"
	"github.com/lixenwraith/folio-arcade/progress"
	"github.com/lixenwraith/folio-arcade/snake"
	"github.com/lixenwraith/folio-arcade/typing"
)

// Frame is everything one draw pass needs; built on the event loop
type Frame struct {
	Progress progress.Record
	Active   game.Engine // nil shows the menu
	Readout  string
	Controls game.Controls
	State    string
	Notices  []notify.Notice
	Muted    bool
	Debug    []string // status lines, shown when the renderer is in debug mode
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen  tcell.Screen
	palette Palette
	debug   bool
	width   int
	height  int
}

// NewTerminalRenderer creates a renderer bound to screen
func NewTerminalRenderer(screen tcell.Screen, palette Palette, debug bool) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:  screen,
		palette: palette,
		debug:   debug,
		width:   w,
		height:  h,
	}
}

// Resize updates the cached screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// MemoryCardAt maps a click to a card index using the drawn layout
func (r *TerminalRenderer) MemoryCardAt(x, y int) (int, bool) {
	return memoryLayout(memory.DeckSize).CardAt(x, y)
}

// MenuItemAt maps a click on the menu to the game listed on that row
func (r *TerminalRenderer) MenuItemAt(x, y int) (game.Kind, bool) {
	i := y - menuTop
	if x < gameX || i < 0 || i >= len(game.Kinds) {
		return 0, false
	}
	return game.Kinds[i], true
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.SetStyle(r.palette.Base)
	r.screen.Clear()

	r.drawHeader(f)

	if f.Active == nil {
		r.drawMenu()
	} else {
		bottom := r.drawGame(f.Active)
		r.drawFooter(f, bottom+1)
	}

	r.drawNotices(f.Notices)
	if r.debug {
		r.drawDebug(f.Debug)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawHeader(f Frame) {
	p := r.palette
	x := r.drawText(1, 0, "folio-arcade", p.Title)
	stats := fmt.Sprintf("  XP %d  Level %d  High Score %d", f.Progress.Experience, f.Progress.Level, f.Progress.HighScore)
	x = r.drawText(x, 0, stats, p.Base)
	if f.Muted {
		r.drawText(x+2, 0, "[muted]", p.Dim)
	}

	need := f.Progress.Level * constants.ExperiencePerLevel
	r.drawBar(1, 1, 30, f.Progress.Experience, need)
}

// drawBar shows progress toward the next level threshold
func (r *TerminalRenderer) drawBar(x, y, width, value, limit int) {
	filled := 0
	if limit > 0 {
		filled = min(width, value*width/limit)
	}
	for i := 0; i < width; i++ {
		ch, style := '░', r.palette.Dim
		if i < filled {
			ch, style = '█', r.palette.Good
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawMenu() {
	p := r.palette
	r.drawText(gameX, menuTop-2, "Arcade", p.Title)
	y := menuTop
	for i, k := range game.Kinds {
		r.drawText(gameX, y, fmt.Sprintf("%d", i+1), p.Control)
		r.drawText(gameX+2, y, k.Title(), p.Base)
		y++
	}
	y++
	r.drawText(gameX, y, "m mute   q quit", p.Dim)
}

// drawGame draws the title and board and returns the last row used
func (r *TerminalRenderer) drawGame(e game.Engine) int {
	r.drawText(gameX, constants.HeaderHeight, e.Kind().Title(), r.palette.Title)

	switch g := e.(type) {
	case *snake.Engine:
		return r.drawSnake(g.Snapshot())
	case *pong.Engine:
		return r.drawPong(g.Snapshot())
	case *memory.Engine:
		return r.drawMemory(g.Snapshot())
	case *typing.Engine:
		return r.drawTyping(g.Snapshot())
	}
	return gameY
}

func (r *TerminalRenderer) drawSnake(s snake.Snapshot) int {
	p := r.palette
	r.drawBox(gameX-1, gameY-1, s.Width*constants.SnakeCellWidth+2, s.Height+2, p.Border)

	fx, fy := snakeCell(s.Food)
	r.fillCell(fx, fy, '●', p.Food)
	for i, c := range s.Body {
		x, y := snakeCell(c)
		style := p.Snake
		if i == 0 {
			style = p.Head
		}
		r.fillCell(x, y, '█', style)
	}
	return gameY + s.Height
}

func (r *TerminalRenderer) fillCell(x, y int, ch rune, style tcell.Style) {
	for i := 0; i < constants.SnakeCellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawPong(s pong.Snapshot) int {
	p := r.palette
	cols := int(s.Width) / constants.PongPixelsPerColumn
	rows := int(s.Height) / constants.PongPixelsPerRow
	r.drawBox(gameX-1, gameY-1, cols+2, rows+2, p.Border)

	mid := gameX + cols/2
	for y := gameY; y < gameY+rows; y++ {
		r.screen.SetContent(mid, y, '┆', nil, p.Dim)
	}

	for _, paddle := range []struct{ x, y, h float64 }{
		{s.Player.X, s.Player.Y, s.Player.H},
		{s.Opponent.X, s.Opponent.Y, s.Opponent.H},
	} {
		x, top := pongCell(paddle.x, paddle.y)
		_, bottom := pongCell(paddle.x, paddle.y+paddle.h-1)
		for y := top; y <= bottom; y++ {
			r.screen.SetContent(x, y, '█', nil, p.Paddle)
		}
	}

	if s.Ball.X >= 0 && s.Ball.X < s.Width && s.Ball.Y >= 0 && s.Ball.Y < s.Height {
		x, y := pongCell(s.Ball.X, s.Ball.Y)
		r.screen.SetContent(x, y, '●', nil, p.Ball)
	}
	return gameY + rows
}

func (r *TerminalRenderer) drawMemory(s memory.Snapshot) int {
	p := r.palette
	layout := memoryLayout(len(s.Cards))
	last := gameY

	for i, c := range s.Cards {
		area := layout.CardRect(i)
		style, face := p.Down, ' '
		switch {
		case c.Matched:
			style, face = p.Done, c.Symbol
		case c.Revealed:
			style, face = p.Up, c.Symbol
		}
		for y := area.Y; y < area.Y+area.Height; y++ {
			for x := area.X; x < area.X+area.Width; x++ {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
		r.screen.SetContent(area.X+area.Width/2, area.Y+area.Height/2, face, nil, style)
		if i == s.Cursor {
			r.screen.SetContent(area.X, area.Y+area.Height/2, '▶', nil, p.Cursor)
		}
		last = max(last, area.Y+area.Height-1)
	}
	return last
}

func (r *TerminalRenderer) drawTyping(s typing.Snapshot) int {
	p := r.palette
	y := gameY
	r.drawText(gameX, y, s.Target, p.Good)

	// Input coloured per rune against the target
	y += 2
	target := []rune(s.Target)
	x := gameX
	r.drawText(x-2, y, ">", p.Border)
	for i, ch := range []rune(s.Input) {
		style := p.Good
		if i >= len(target) || target[i] != ch {
			style = p.Bad
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(1, runewidth.RuneWidth(ch))
	}
	if !s.Done {
		r.screen.SetContent(x, y, '▏', nil, p.Cursor)
	}

	y += 2
	if s.Stats != "" {
		r.drawText(gameX, y, s.Stats, p.Title)
	}
	return y
}

func (r *TerminalRenderer) drawFooter(f Frame, y int) {
	p := r.palette
	y++
	r.drawText(gameX, y, f.Readout, p.Title)

	y++
	x := gameX
	if f.Controls.Start {
		x = r.drawText(x, y, " Start [s] ", p.Control) + 1
	}
	if f.Controls.Pause {
		x = r.drawText(x, y, " Pause [p] ", p.Control) + 1
	}
	hint := "Esc close"
	if f.State == "Paused" {
		hint = "paused, s to resume   " + hint
	}
	r.drawText(x+1, y, hint, p.Dim)
}

// drawNotices stacks toasts in the top right corner, newest at the bottom
func (r *TerminalRenderer) drawNotices(notices []notify.Notice) {
	x := r.width - constants.ToastWidth - 1
	if x < 0 {
		x = 0
	}
	for i, n := range notices {
		y := 1 + i*2
		msg := runewidth.Truncate(n.Message, constants.ToastWidth-2, "…")
		pad := constants.ToastWidth - 2 - runewidth.StringWidth(msg)
		line := " " + msg + strings.Repeat(" ", max(0, pad)) + " "
		r.drawText(x, y, line, r.palette.Toast)
	}
}

func (r *TerminalRenderer) drawDebug(lines []string) {
	y := r.height - len(lines)
	for _, line := range lines {
		if y >= 0 {
			r.drawText(0, y, line, r.palette.Dim)
		}
		y++
	}
}

func (r *TerminalRenderer) drawBox(x, y, w, h int, style tcell.Style) {
	for i := 1; i < w-1; i++ {
		r.screen.SetContent(x+i, y, '─', nil, style)
		r.screen.SetContent(x+i, y+h-1, '─', nil, style)
	}
	for j := 1; j < h-1; j++ {
		r.screen.SetContent(x, y+j, '│', nil, style)
		r.screen.SetContent(x+w-1, y+j, '│', nil, style)
	}
	r.screen.SetContent(x, y, '┌', nil, style)
	r.screen.SetContent(x+w-1, y, '┐', nil, style)
	r.screen.SetContent(x, y+h-1, '└', nil, style)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

// drawText writes s at x,y and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(1, runewidth.RuneWidth(ch))
	}
	return x
}

