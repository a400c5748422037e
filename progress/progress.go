// Package progress owns the portfolio-wide experience, level and high score record
package progress

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/core"
	"github.com/lixenwraith/folio-arcade/status"
)

// Record is the persisted progress, a flat record of three integers
type Record struct {
	Experience int `json:"xp"`
	Level      int `json:"level"`
	HighScore  int `json:"highscore"`
}

// DefaultRecord is the state before anything has been persisted
func DefaultRecord() Record {
	return Record{Experience: 0, Level: 1, HighScore: 0}
}

// normalize repairs records that violate the invariants (hand-edited or corrupt stores)
func (r Record) normalize() Record {
	if r.Experience < 0 {
		r.Experience = 0
	}
	if r.HighScore < 0 {
		r.HighScore = 0
	}
	if r.Level < 1 {
		r.Level = 1
	}
	return r
}

// Backend is the durable key-value boundary for the record
type Backend interface {
	// Load returns found=false when no record exists for key
	Load(ctx context.Context, key string) (rec Record, found bool, err error)
	Save(ctx context.Context, key string, rec Record) error
	Close() error
}

// Notifier receives level-up messages
type Notifier interface {
	Notify(message string, d time.Duration)
}

// Store is the single owner of the Record; all mutation goes through its methods
// Not safe for concurrent use: callers run on the event loop
type Store struct {
	rec      Record
	backend  Backend
	key      string
	timeout  time.Duration
	notifier Notifier
	onLevel  func(level int)
	log      *zap.Logger

	// Writer state: the latest unsaved record, shared with the writer goroutine
	mu        sync.Mutex
	pending   Record
	dirty     bool
	wake      chan struct{}
	closing   chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	statSaves    *atomic.Int64
	statFailures *atomic.Int64
}

// Option configures a Store
type Option func(*Store)

// WithKey overrides the fixed storage key
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithTimeout bounds each backend call
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithNotifier sets the sink for level-up notifications
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithLevelHook registers a callback run once per level gained
func WithLevelHook(fn func(level int)) Option {
	return func(s *Store) { s.onLevel = fn }
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithStatus wires save counters into the metrics registry
func WithStatus(reg *status.Registry) Option {
	return func(s *Store) {
		if reg != nil {
			s.statSaves = reg.Ints.Get("store.saves")
			s.statFailures = reg.Ints.Get("store.failures")
		}
	}
}

// NewStore creates a store holding the default record; call Load to restore persisted state
// A nil backend keeps the record in memory only, otherwise a writer goroutine runs until Close
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		rec:          DefaultRecord(),
		backend:      backend,
		key:          constants.ProgressKey,
		timeout:      constants.StoreTimeout,
		log:          zap.NewNop(),
		wake:         make(chan struct{}, 1),
		closing:      make(chan struct{}),
		done:         make(chan struct{}),
		statSaves:    new(atomic.Int64),
		statFailures: new(atomic.Int64),
	}
	for _, opt := range opts {
		opt(s)
	}
	if backend != nil {
		core.Go(s.writeLoop)
	} else {
		close(s.done)
	}
	return s
}

// Snapshot returns a copy of the current record
func (s *Store) Snapshot() Record {
	return s.rec
}

// AddExperience adds amount (negative clamps to zero) and advances the level for every
// threshold crossed, level*100 evaluated with the level before each increment
func (s *Store) AddExperience(amount int) {
	if amount < 0 {
		amount = 0
	}
	s.rec.Experience += amount

	for s.rec.Experience >= s.rec.Level*constants.ExperiencePerLevel {
		s.rec.Level++
		s.log.Info("level up", zap.Int("level", s.rec.Level), zap.Int("xp", s.rec.Experience))
		if s.notifier != nil {
			s.notifier.Notify(fmt.Sprintf("Level Up! You're now level %d!", s.rec.Level), 0)
		}
		if s.onLevel != nil {
			s.onLevel(s.rec.Level)
		}
	}

	s.Save()
}

// RecordScoreIfHighest overwrites the high score only when score is strictly greater
func (s *Store) RecordScoreIfHighest(score int) bool {
	if score <= s.rec.HighScore {
		return false
	}
	s.rec.HighScore = score
	s.log.Info("new high score", zap.Int("score", score))
	s.Save()
	return true
}

// Load restores the record; absent or unreadable state leaves the defaults
func (s *Store) Load(ctx context.Context) {
	if s.backend == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rec, found, err := s.backend.Load(ctx, s.key)
	if err != nil {
		s.log.Warn("progress load failed, using defaults", zap.String("key", s.key), zap.Error(err))
		return
	}
	if !found {
		s.log.Debug("no stored progress", zap.String("key", s.key))
		return
	}
	s.rec = rec.normalize()
	s.log.Info("progress restored",
		zap.Int("xp", s.rec.Experience),
		zap.Int("level", s.rec.Level),
		zap.Int("highscore", s.rec.HighScore))
}

// Save queues the current record for the writer and returns at once
// Only the latest queued record is written; failures are logged and swallowed
func (s *Store) Save() {
	if s.backend == nil {
		return
	}
	s.mu.Lock()
	s.pending = s.rec
	s.dirty = true
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// writeLoop owns every backend write until Close
func (s *Store) writeLoop() {
	defer close(s.done)
	for {
		select {
		case <-s.wake:
			s.flush()
		case <-s.closing:
			s.flush()
			return
		}
	}
}

func (s *Store) flush() {
	s.mu.Lock()
	rec, dirty := s.pending, s.dirty
	s.dirty = false
	s.mu.Unlock()
	if !dirty {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.backend.Save(ctx, s.key, rec); err != nil {
		s.statFailures.Add(1)
		s.log.Warn("progress save failed", zap.String("key", s.key), zap.Error(err))
		return
	}
	s.statSaves.Add(1)
}

// Close writes any queued record, stops the writer and releases the backend
func (s *Store) Close() error {
	if s.backend == nil {
		return nil
	}
	s.closeOnce.Do(func() { close(s.closing) })
	<-s.done
	return s.backend.Close()
}
