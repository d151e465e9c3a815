package visibility

import (
	"sort"
	"time"
)

// Scheduler defers work to a later turn of the owner's event loop.
type Scheduler interface {
	// AfterFunc runs fn once d has elapsed. The returned func cancels it.
	AfterFunc(d time.Duration, fn func()) (cancel func())
	// RequestFrame runs fn at the next paint opportunity.
	RequestFrame(fn func())
}

type loopTimer struct {
	due time.Duration
	seq uint64
	fn  func()
}

// Loop is a virtual-time Scheduler. Nothing runs until the owner calls
// Advance or Frame, so all callbacks execute on the owner's goroutine in a
// deterministic order.
type Loop struct {
	now    time.Duration
	seq    uint64
	timers []*loopTimer
	frames []func()
}

// NewLoop returns a loop positioned at time zero.
func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the loop's virtual clock.
func (l *Loop) Now() time.Duration {
	return l.now
}

// AfterFunc schedules fn to run when the virtual clock reaches Now()+d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) func() {
	if d < 0 {
		d = 0
	}
	l.seq++
	t := &loopTimer{due: l.now + d, seq: l.seq, fn: fn}
	l.timers = append(l.timers, t)
	return func() { l.remove(t) }
}

// RequestFrame queues fn for the next call to Frame.
func (l *Loop) RequestFrame(fn func()) {
	l.frames = append(l.frames, fn)
}

// Frame runs the callbacks queued before the call. Callbacks queued while
// running wait for the following frame.
func (l *Loop) Frame() {
	frames := l.frames
	l.frames = nil
	for _, fn := range frames {
		fn()
	}
}

// Advance moves the clock forward by d, firing due timers in order. Timers
// scheduled by a firing timer also fire if they fall inside the window.
func (l *Loop) Advance(d time.Duration) {
	target := l.now + d
	for {
		t := l.next(target)
		if t == nil {
			break
		}
		l.remove(t)
		l.now = t.due
		t.fn()
	}
	l.now = target
}

// Pending reports how many timers and frame callbacks are queued.
func (l *Loop) Pending() (timers, frames int) {
	return len(l.timers), len(l.frames)
}

func (l *Loop) next(limit time.Duration) *loopTimer {
	if len(l.timers) == 0 {
		return nil
	}
	sort.Slice(l.timers, func(i, j int) bool {
		if l.timers[i].due != l.timers[j].due {
			return l.timers[i].due < l.timers[j].due
		}
		return l.timers[i].seq < l.timers[j].seq
	})
	if l.timers[0].due > limit {
		return nil
	}
	return l.timers[0]
}

func (l *Loop) remove(t *loopTimer) {
	for i, cur := range l.timers {
		if cur == t {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return
		}
	}
}

// Debouncer collapses a burst of schedules into the last one. Each schedule
// takes a fresh token; a countdown whose token is stale does nothing even if
// the scheduler already dequeued it.
type Debouncer struct {
	sched  Scheduler
	delay  time.Duration
	token  uint64
	cancel func()
}

// NewDebouncer returns a debouncer that waits delay on sched. A nil sched
// runs every scheduled func immediately.
func NewDebouncer(sched Scheduler, delay time.Duration) *Debouncer {
	return &Debouncer{sched: sched, delay: delay}
}

// Schedule replaces any pending func with fn.
func (d *Debouncer) Schedule(fn func()) {
	d.Stop()
	if d.sched == nil {
		fn()
		return
	}
	token := d.token
	d.cancel = d.sched.AfterFunc(d.delay, func() {
		if token != d.token {
			return
		}
		d.cancel = nil
		fn()
	})
}

// Stop drops the pending func, if any.
func (d *Debouncer) Stop() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.token++
}
