package engine

import "time"

// ManualScheduler is a deterministic Scheduler driven by Advance
// Time only moves when the test says so; not safe for concurrent use
type ManualScheduler struct {
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	due       time.Time
	period    time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

func (t *manualTimer) Cancel() {
	t.cancelled = true
}

// NewManualScheduler creates a scheduler whose clock starts at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the virtual time
func (m *ManualScheduler) Now() time.Time {
	return m.now
}

// After schedules fn once at Now()+d
func (m *ManualScheduler) After(d time.Duration, fn func()) Handle {
	return m.add(d, 0, fn)
}

// Every schedules fn at Now()+d and every d after that
func (m *ManualScheduler) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		d = time.Nanosecond
	}
	return m.add(d, d, fn)
}

func (m *ManualScheduler) add(d, period time.Duration, fn func()) *manualTimer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{
		due:    m.now.Add(d),
		period: period,
		seq:    m.seq,
		fn:     fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due callbacks in deadline order
// Callbacks scheduled during Advance fire in the same call if they fall due before the target
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now.Add(d)

	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}

		m.now = next.due
		if next.period > 0 {
			m.seq++
			next.due = next.due.Add(next.period)
			next.seq = m.seq
		} else {
			next.cancelled = true
		}
		next.fn()
	}

	m.now = target
	m.compact()
}

// Pending returns the number of callbacks that may still fire
func (m *ManualScheduler) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// PendingRecurring returns the number of live recurring callbacks
func (m *ManualScheduler) PendingRecurring() int {
	n := 0
	for _, t := range m.timers {
		if !t.cancelled && t.period > 0 {
			n++
		}
	}
	return n
}

func (m *ManualScheduler) nextDue(target time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.cancelled || t.due.After(target) {
			continue
		}
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *ManualScheduler) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
}
