// Package gametest provides deterministic collaborators for engine tests
package gametest

import (
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/lixenwraith/folio-arcade/engine"
	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/status"
	"github.com/lixenwraith/folio-arcade/vmath"
)

// Epoch is the virtual start time of every test scheduler
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Progress records awards and keeps a monotonic high score
type Progress struct {
	Experience int
	Awards     []int
	HighScore  int
}

func (p *Progress) AddExperience(amount int) {
	if amount < 0 {
		amount = 0
	}
	p.Experience += amount
	p.Awards = append(p.Awards, amount)
}

func (p *Progress) RecordScoreIfHighest(score int) bool {
	if score > p.HighScore {
		p.HighScore = score
		return true
	}
	return false
}

// Notifier records messages
type Notifier struct {
	Messages []string
}

func (n *Notifier) Notify(message string, _ time.Duration) {
	n.Messages = append(n.Messages, message)
}

// Last returns the most recent message or ""
func (n *Notifier) Last() string {
	if len(n.Messages) == 0 {
		return ""
	}
	return n.Messages[len(n.Messages)-1]
}

// Sounds records played cues
type Sounds struct {
	Played []game.Cue
}

func (s *Sounds) Play(cue game.Cue) {
	s.Played = append(s.Played, cue)
}

// Harness bundles a context with its fakes
type Harness struct {
	Ctx      *game.Context
	Sched    *engine.ManualScheduler
	Progress *Progress
	Notifier *Notifier
	Sounds   *Sounds
}

// New builds a context on a manual scheduler with a fixed RNG seed
func New(t testing.TB, seed uint64) *Harness {
	t.Helper()
	h := &Harness{
		Sched:    engine.NewManualScheduler(Epoch),
		Progress: &Progress{},
		Notifier: &Notifier{},
		Sounds:   &Sounds{},
	}
	h.Ctx = game.Context{
		Scheduler: h.Sched,
		Progress:  h.Progress,
		Notifier:  h.Notifier,
		Sounds:    h.Sounds,
		Rand:      vmath.NewFastRand(seed),
		Readout:   game.NewReadout(),
		Log:       zaptest.NewLogger(t),
		Status:    status.NewRegistry(),
	}.WithDefaults()
	return h
}
