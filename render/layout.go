package render

import (
	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/core"
)

// Game area origin, inside the border
const (
	gameX = 2
	gameY = constants.HeaderHeight + 2

	// menuTop is the row of the first menu entry
	menuTop = constants.HeaderHeight + 3
)

// MemoryLayout positions the card grid on screen
type MemoryLayout struct {
	Origin  core.Point
	Columns int
	Cards   int
}

func memoryLayout(cards int) MemoryLayout {
	return MemoryLayout{
		Origin:  core.Point{X: gameX, Y: gameY},
		Columns: constants.MemoryColumns,
		Cards:   cards,
	}
}

// CardRect returns the screen area of card i
func (l MemoryLayout) CardRect(i int) core.Area {
	col, row := i%l.Columns, i/l.Columns
	return core.Area{
		X:      l.Origin.X + col*(constants.MemoryCardWidth+constants.MemoryCardGap),
		Y:      l.Origin.Y + row*(constants.MemoryCardHeight+constants.MemoryCardGap),
		Width:  constants.MemoryCardWidth,
		Height: constants.MemoryCardHeight,
	}
}

// CardAt hit-tests a screen cell; gaps between cards miss
func (l MemoryLayout) CardAt(x, y int) (int, bool) {
	p := core.Point{X: x, Y: y}
	for i := 0; i < l.Cards; i++ {
		if l.CardRect(i).Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// snakeCell maps a grid cell to its left screen column and row
func snakeCell(p core.Point) (int, int) {
	return gameX + p.X*constants.SnakeCellWidth, gameY + p.Y
}

// pongCell maps court pixels to a screen cell
func pongCell(x, y float64) (int, int) {
	return gameX + int(x)/constants.PongPixelsPerColumn, gameY + int(y)/constants.PongPixelsPerRow
}
