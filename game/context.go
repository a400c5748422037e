package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/engine"
	"github.com/lixenwraith/folio-arcade/status"
	"github.com/lixenwraith/folio-arcade/vmath"
)

// Progress is the single-owner mutation interface of the shared progress record
type Progress interface {
	AddExperience(amount int)
	RecordScoreIfHighest(score int) bool
}

// Notifier is the notification sink; d <= 0 selects the default duration
type Notifier interface {
	Notify(message string, d time.Duration)
}

// Cue names a sound effect
type Cue uint8

const (
	CuePickup Cue = iota
	CueHit
	CueMatch
	CueMiss
	CueGameOver
	CueWin
	CueLevelUp
)

func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueHit:
		return "hit"
	case CueMatch:
		return "match"
	case CueMiss:
		return "miss"
	case CueGameOver:
		return "gameover"
	case CueWin:
		return "win"
	case CueLevelUp:
		return "levelup"
	default:
		return "unknown"
	}
}

// Sounds plays cues; implementations must be safe when audio is unavailable
type Sounds interface {
	Play(cue Cue)
}

// Context is the application context handed to every engine at construction
// It replaces ambient globals: engines reach shared state only through these fields
type Context struct {
	Scheduler engine.Scheduler
	Progress  Progress
	Notifier  Notifier
	Sounds    Sounds
	Rand      *vmath.FastRand
	Readout   *Readout
	Log       *zap.Logger
	Status    *status.Registry
}

// WithDefaults returns a copy with every nil collaborator replaced by a no-op
// Scheduler is required and is not defaulted
func (c Context) WithDefaults() *Context {
	if c.Progress == nil {
		c.Progress = nopProgress{}
	}
	if c.Notifier == nil {
		c.Notifier = nopNotifier{}
	}
	if c.Sounds == nil {
		c.Sounds = nopSounds{}
	}
	if c.Rand == nil {
		var seed uint64
		if c.Scheduler != nil {
			seed = uint64(c.Scheduler.Now().UnixNano())
		}
		c.Rand = vmath.NewFastRand(seed)
	}
	if c.Readout == nil {
		c.Readout = NewReadout()
	}
	if c.Log == nil {
		c.Log = zap.NewNop()
	}
	if c.Status == nil {
		c.Status = status.NewRegistry()
	}
	return &c
}

type nopProgress struct{}

func (nopProgress) AddExperience(int)             {}
func (nopProgress) RecordScoreIfHighest(int) bool { return false }

type nopNotifier struct{}

func (nopNotifier) Notify(string, time.Duration) {}

type nopSounds struct{}

func (nopSounds) Play(Cue) {}
