// Package notify shows transient messages that dismiss themselves
package notify

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/engine"
	"github.com/lixenwraith/folio-arcade/status"
)

// Notice is one displayed message
type Notice struct {
	ID      uint64
	Message string
	Shown   time.Time
	Expires time.Time
}

type entry struct {
	Notice
	handle engine.Handle
}

// Service keeps the active notices; call from the event loop only
type Service struct {
	sched   engine.Scheduler
	entries []*entry
	nextID  uint64
	max     int
	log     *zap.Logger

	statShown *atomic.Int64
}

// New creates a service whose dismissals run on sched
func New(sched engine.Scheduler, log *zap.Logger, reg *status.Registry) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Service{
		sched:     sched,
		max:       constants.NotificationMaxActive,
		log:       log,
		statShown: reg.Ints.Get("notify.shown"),
	}
}

// Notify displays message for d; d <= 0 uses the default duration
func (s *Service) Notify(message string, d time.Duration) {
	if d <= 0 {
		d = constants.NotificationDuration
	}

	now := s.sched.Now()
	s.nextID++
	e := &entry{Notice: Notice{
		ID:      s.nextID,
		Message: message,
		Shown:   now,
		Expires: now.Add(d),
	}}
	id := e.ID
	e.handle = s.sched.After(d, func() { s.remove(id) })

	s.entries = append(s.entries, e)
	if len(s.entries) > s.max {
		oldest := s.entries[0]
		oldest.handle.Cancel()
		s.entries = s.entries[1:]
	}

	s.statShown.Add(1)
	s.log.Debug("notice", zap.String("message", message), zap.Duration("duration", d))
}

// Dismiss removes a notice before it expires
func (s *Service) Dismiss(id uint64) {
	for _, e := range s.entries {
		if e.ID == id {
			e.handle.Cancel()
			break
		}
	}
	s.remove(id)
}

// Active returns the displayed notices, oldest first
func (s *Service) Active() []Notice {
	out := make([]Notice, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Notice
	}
	return out
}

func (s *Service) remove(id uint64) {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
