package game

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/engine"
)

// Session is the transient per-play-through state shared by every engine
// It owns the scheduler handles of its engine: callbacks scheduled through the session
// become no-ops once the session is invalidated
type Session struct {
	ID    uuid.UUID
	Kind  Kind
	Score int

	alive   bool
	sched   engine.Scheduler
	handles map[*sessionHandle]struct{}
	log     *zap.Logger
}

// NewSession creates a live session for kind
func NewSession(kind Kind, sched engine.Scheduler, log *zap.Logger) *Session {
	id := uuid.New()
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		ID:      id,
		Kind:    kind,
		alive:   true,
		sched:   sched,
		handles: make(map[*sessionHandle]struct{}),
		log:     log.With(zap.String("session", id.String()), zap.Stringer("game", kind)),
	}
}

// Alive reports whether the session has not been invalidated
func (s *Session) Alive() bool {
	return s.alive
}

// Logger returns a logger tagged with the session id and game
func (s *Session) Logger() *zap.Logger {
	return s.log
}

// Now returns scheduler time
func (s *Session) Now() time.Time {
	return s.sched.Now()
}

// After schedules a one-shot callback bound to this session
func (s *Session) After(d time.Duration, fn func()) engine.Handle {
	if !s.alive {
		return engine.NopHandle{}
	}
	h := &sessionHandle{s: s}
	h.inner = s.sched.After(d, func() {
		delete(s.handles, h)
		if !s.alive {
			return
		}
		fn()
	})
	s.handles[h] = struct{}{}
	return h
}

// Every schedules a recurring callback bound to this session
func (s *Session) Every(d time.Duration, fn func()) engine.Handle {
	if !s.alive {
		return engine.NopHandle{}
	}
	h := &sessionHandle{s: s}
	h.inner = s.sched.Every(d, func() {
		if !s.alive {
			return
		}
		fn()
	})
	s.handles[h] = struct{}{}
	return h
}

// Pending returns the number of outstanding session callbacks
func (s *Session) Pending() int {
	return len(s.handles)
}

// Invalidate ends the session and cancels every outstanding callback
func (s *Session) Invalidate() {
	if !s.alive {
		return
	}
	s.alive = false
	for h := range s.handles {
		h.inner.Cancel()
	}
	clear(s.handles)
}

type sessionHandle struct {
	inner engine.Handle
	s     *Session
}

func (h *sessionHandle) Cancel() {
	h.inner.Cancel()
	delete(h.s.handles, h)
}
