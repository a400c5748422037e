package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions, neon on dark navy
var (
	RgbBackground = tcell.NewRGBColor(5, 8, 20)      // Page background
	RgbCyan       = tcell.NewRGBColor(0, 212, 255)   // Borders, headings
	RgbGreen      = tcell.NewRGBColor(0, 255, 136)   // Snake body, paddles, cards
	RgbGreenHead  = tcell.NewRGBColor(150, 255, 200) // Snake head
	RgbMagenta    = tcell.NewRGBColor(255, 0, 255)   // Food, ball
	RgbText       = tcell.NewRGBColor(230, 230, 240) // Body text
	RgbDim        = tcell.NewRGBColor(90, 95, 120)   // Hints, grid
	RgbError      = tcell.NewRGBColor(255, 80, 80)   // Wrong typing input
	RgbToastBg    = tcell.NewRGBColor(20, 30, 60)    // Notification box
	RgbCardDown   = tcell.NewRGBColor(0, 60, 40)     // Face-down card
	RgbCardUp     = tcell.NewRGBColor(0, 50, 80)     // Revealed card
	RgbCardDone   = tcell.NewRGBColor(30, 30, 40)    // Matched card
)

// Palette holds the styles used by one renderer
// Monochrome palettes only use reverse video and bold so they work on any terminal
type Palette struct {
	Base    tcell.Style
	Border  tcell.Style
	Title   tcell.Style
	Dim     tcell.Style
	Snake   tcell.Style
	Head    tcell.Style
	Food    tcell.Style
	Paddle  tcell.Style
	Ball    tcell.Style
	Good    tcell.Style
	Bad     tcell.Style
	Toast   tcell.Style
	Down    tcell.Style
	Up      tcell.Style
	Done    tcell.Style
	Cursor  tcell.Style
	Control tcell.Style
}

// NewPalette returns the colour palette or its monochrome fallback
func NewPalette(color bool) Palette {
	if !color {
		base := tcell.StyleDefault
		return Palette{
			Base:    base,
			Border:  base,
			Title:   base.Bold(true),
			Dim:     base.Dim(true),
			Snake:   base.Reverse(true),
			Head:    base.Reverse(true).Bold(true),
			Food:    base.Bold(true),
			Paddle:  base.Reverse(true),
			Ball:    base.Bold(true),
			Good:    base.Bold(true),
			Bad:     base.Underline(true),
			Toast:   base.Reverse(true),
			Down:    base.Reverse(true),
			Up:      base.Bold(true),
			Done:    base.Dim(true),
			Cursor:  base.Underline(true).Bold(true),
			Control: base.Reverse(true),
		}
	}

	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	return Palette{
		Base:    base,
		Border:  base.Foreground(RgbCyan),
		Title:   base.Foreground(RgbCyan).Bold(true),
		Dim:     base.Foreground(RgbDim),
		Snake:   base.Foreground(RgbGreen),
		Head:    base.Foreground(RgbGreenHead),
		Food:    base.Foreground(RgbMagenta),
		Paddle:  base.Foreground(RgbGreen),
		Ball:    base.Foreground(RgbMagenta),
		Good:    base.Foreground(RgbGreen),
		Bad:     base.Foreground(RgbError),
		Toast:   base.Background(RgbToastBg).Foreground(RgbCyan).Bold(true),
		Down:    base.Background(RgbCardDown).Foreground(RgbGreen),
		Up:      base.Background(RgbCardUp).Foreground(RgbText).Bold(true),
		Done:    base.Background(RgbCardDone).Foreground(RgbDim),
		Cursor:  base.Foreground(RgbMagenta).Bold(true),
		Control: base.Background(RgbCyan).Foreground(RgbBackground),
	}
}
