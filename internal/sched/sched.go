package sched

import (
	"time"

	"github.com/mjurik/bounceclock/internal/motion"
)

// SystemClock implements motion.Clock with the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Timers is the real motion.Scheduler. Fired callbacks are never run on the
// timer goroutine; they are pushed onto C so the application loop can run
// them serially with all other event handling.
type Timers struct {
	calls chan func()
}

// NewTimers creates a scheduler ready to arm callbacks.
func NewTimers() *Timers {
	return &Timers{calls: make(chan func(), 16)}
}

// C is the channel the application loop drains. Each received function is
// one fired callback.
func (t *Timers) C() <-chan func() { return t.calls }

// ScheduleOnce arms fn for delivery after d.
func (t *Timers) ScheduleOnce(d time.Duration, fn func()) motion.Handle {
	return time.AfterFunc(d, func() {
		t.calls <- fn
	})
}

// Cancel stops a pending timer. Nil handles and handles that already fired
// or were already cancelled are no-ops.
func (t *Timers) Cancel(h motion.Handle) {
	if h != nil {
		h.Stop()
	}
}
