package visibility

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Callback receives an entry whenever the intersecting state changes.
type Callback func(e Entry, isIntersecting bool)

type subscriber struct {
	id int
	fn Callback
}

// Observer reports intersecting-state changes for the elements it observes.
// Consecutive reports never carry the same state.
type Observer struct {
	threshold  float64
	rootMargin string
	debounce   time.Duration

	platform Intersection
	pending  *Entry
	timer    *Debouncer

	hasLast bool
	last    bool

	subs   []subscriber
	nextID int

	disconnected bool
	log          *zap.Logger
}

// NewObserver builds an observer with mobile-aware defaults. cb may be nil
// when listeners are attached later with Subscribe. Without a window the
// observer is inert, and without a scheduler reports are not debounced. Errors from the platform primitive are returned as-is.
func (t *Tracker) NewObserver(cb Callback, opts ...Option) (*Observer, error) {
	s := collect(opts)
	preset := t.preset()

	o := &Observer{
		threshold:  preset.Threshold,
		rootMargin: preset.RootMargin,
		debounce:   preset.Debounce,
		log:        t.log,
	}
	if s.hasThreshold {
		o.threshold = s.threshold
	}
	if s.hasRootMargin {
		o.rootMargin = s.rootMargin
	}
	if s.hasDebounce {
		o.debounce = s.debounce
	}
	if cb != nil {
		o.Subscribe(cb)
	}

	if t.window == nil || t.primitive == nil {
		return o, nil
	}

	switch {
	case t.sched == nil:
		o.debounce = 0
	case o.debounce > 0:
		o.timer = NewDebouncer(t.sched, o.debounce)
	}

	platform, err := t.primitive.NewIntersection(o.receive, o.threshold, o.rootMargin)
	if err != nil {
		return nil, fmt.Errorf("create intersection: %w", err)
	}
	o.platform = platform

	t.log.Debug("observer created",
		zap.Float64("threshold", o.threshold),
		zap.String("rootMargin", o.rootMargin),
		zap.Duration("debounce", o.debounce),
	)
	return o, nil
}

// Threshold returns the resolved intersection threshold.
func (o *Observer) Threshold() float64 { return o.threshold }

// RootMargin returns the resolved root margin.
func (o *Observer) RootMargin() string { return o.rootMargin }

// Debounce returns the resolved debounce interval.
func (o *Observer) Debounce() time.Duration { return o.debounce }

// Observe starts watching el.
func (o *Observer) Observe(el Element) {
	if o.platform == nil || o.disconnected || isNil(el) {
		return
	}
	o.platform.Observe(el)
}

// Subscribe adds a listener and returns a func that removes it.
func (o *Observer) Subscribe(fn Callback) (unsubscribe func()) {
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

// Disconnect stops platform delivery and drops any pending debounced report.
// It is safe to call more than once.
func (o *Observer) Disconnect() {
	if o.disconnected {
		return
	}
	o.disconnected = true
	if o.timer != nil {
		o.timer.Stop()
	}
	o.pending = nil
	if o.platform != nil {
		o.platform.Disconnect()
	}
}

func (o *Observer) receive(entries []Entry) {
	for _, e := range entries {
		if o.disconnected {
			return
		}
		if o.timer == nil {
			o.deliver(e)
			continue
		}
		entry := e
		o.pending = &entry
		o.timer.Schedule(o.flush)
	}
}

func (o *Observer) flush() {
	if o.pending == nil || o.disconnected {
		return
	}
	e := *o.pending
	o.pending = nil
	o.deliver(e)
}

func (o *Observer) deliver(e Entry) {
	if o.hasLast && o.last == e.IsIntersecting {
		return
	}
	o.hasLast = true
	o.last = e.IsIntersecting

	subs := append([]subscriber(nil), o.subs...)
	for _, s := range subs {
		s.fn(e, e.IsIntersecting)
	}
}
