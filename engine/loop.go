package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/folio-arcade/core"
)

// ErrLoopRunning is returned when Run is called on a loop that already runs
var ErrLoopRunning = errors.New("loop already running")

// Loop is the single-threaded event loop
// Input handlers, ticks and delayed callbacks are all posted here and run one at a time,
// so game state needs no locking as long as it is only touched from loop tasks
type Loop struct {
	tasks chan func()
	clock TimeProvider

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

// NewLoop creates a loop with the given task queue capacity
func NewLoop(buffer int) *Loop {
	return &Loop{
		tasks:    make(chan func(), buffer),
		clock:    NewMonotonicTimeProvider(),
		stopChan: make(chan struct{}),
	}
}

// Now returns the current time
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// Post enqueues fn for execution on the loop, blocking while the queue is full
// Returns false if the loop has been stopped
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.stopChan:
		return false
	}
}

// Run executes posted tasks until ctx is done or Stop is called
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stopChan:
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Stop halts the loop; pending tasks are dropped and feeders exit
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Done is closed once the loop is stopped
func (l *Loop) Done() <-chan struct{} {
	return l.stopChan
}

// After runs fn on the loop once after d
func (l *Loop) After(d time.Duration, fn func()) Handle {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			// Checked on the loop, so a Cancel issued by an earlier task always wins
			if t.cancelled.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return t
}

// Every runs fn on the loop with period d
// A feeder goroutine owns the ticker; the loop only sees posted tasks
func (l *Loop) Every(d time.Duration, fn func()) Handle {
	t := &loopTimer{stop: make(chan struct{})}

	core.Go(func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-t.stop:
				return
			case <-l.stopChan:
				return
			case <-ticker.C:
				l.Post(func() {
					if !t.cancelled.Load() {
						fn()
					}
				})
			}
		}
	})

	return t
}

// loopTimer backs both one-shot and recurring loop callbacks
type loopTimer struct {
	cancelled atomic.Bool
	timer     *time.Timer   // one-shot
	stop      chan struct{} // recurring feeder
}

func (t *loopTimer) Cancel() {
	if !t.cancelled.CompareAndSwap(false, true) {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.stop != nil {
		close(t.stop)
	}
}
