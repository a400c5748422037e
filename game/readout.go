package game

import "fmt"

// Readout is the shared score line under the game area, replaced by plain text
type Readout struct {
	text string
}

// NewReadout creates a readout showing a zero score
func NewReadout() *Readout {
	r := &Readout{}
	r.SetScore(0)
	return r
}

// Set replaces the readout text
func (r *Readout) Set(text string) {
	r.text = text
}

// SetScore shows "Score: n"
func (r *Readout) SetScore(n int) {
	r.text = fmt.Sprintf("Score: %d", n)
}

// SetMoves shows "Moves: n"
func (r *Readout) SetMoves(n int) {
	r.text = fmt.Sprintf("Moves: %d", n)
}

// Text returns the current readout
func (r *Readout) Text() string {
	return r.text
}
