package visibility

import "fmt"

// Cleanup disconnects whatever an entry point set up. Calling it again is a
// no-op.
type Cleanup func()

func noopCleanup() {}

// Handlers are the optional callbacks of CreateSectionObserver.
type Handlers struct {
	OnVisible      func()
	OnHidden       func()
	OnScrolledPast func()
}

// SectionState is where a lifecycle section observer sits.
type SectionState int

const (
	// SectionHidden is the initial state and the state after leaving view
	// near the edge.
	SectionHidden SectionState = iota
	SectionVisible
	// SectionHiddenPastThreshold means the section left view by more than
	// the scroll-past distance; with reanimation it may animate in again.
	SectionHiddenPastThreshold
)

func (s SectionState) String() string {
	switch s {
	case SectionHidden:
		return "hidden"
	case SectionVisible:
		return "visible"
	case SectionHiddenPastThreshold:
		return "hidden-past-threshold"
	default:
		return fmt.Sprintf("SectionState(%d)", int(s))
	}
}

// ObserveSection calls onVisible every time el becomes intersecting, and once
// at mount if el is already on screen. Transitions to hidden are ignored.
func (t *Tracker) ObserveSection(el Element, onVisible func(), opts ...Option) (Cleanup, error) {
	if isNil(el) || t.window == nil {
		return noopCleanup, nil
	}
	if onVisible == nil {
		onVisible = func() {}
	}
	s := collect(opts)

	var closed bool
	obs, err := t.NewObserver(func(_ Entry, isIntersecting bool) {
		if isIntersecting {
			onVisible()
		}
	}, opts...)
	if err != nil {
		return nil, err
	}
	obs.Observe(el)

	if !s.skipInitialCheck {
		t.CheckInitialVisibility(el, t.resolveThreshold(s), func() {
			if !closed {
				onVisible()
			}
		})
	}

	return func() {
		closed = true
		obs.Disconnect()
	}, nil
}

// sectionLifecycle is the per-section state machine behind
// CreateSectionObserver.
type sectionLifecycle struct {
	state      SectionState
	reanimate  bool
	scrollPast float64
	h          Handlers
}

func (l *sectionLifecycle) handle(e Entry, isIntersecting bool) {
	if isIntersecting {
		if !l.reanimate || l.state != SectionVisible {
			call(l.h.OnVisible)
		}
		l.state = SectionVisible
		return
	}

	l.state = SectionHidden
	if !IsScrolledPast(e, l.scrollPast) {
		// Near the edge: keep the section as-is to avoid flicker.
		return
	}
	if l.reanimate {
		l.state = SectionHiddenPastThreshold
		call(l.h.OnScrolledPast)
	}
	call(l.h.OnHidden)
}

// CreateSectionObserver tracks el through Hidden, Visible and
// HiddenPastThreshold and fires h accordingly. With EnableReanimation,
// OnVisible fires again only after the section was scrolled past.
func (t *Tracker) CreateSectionObserver(el Element, h Handlers, opts ...Option) (Cleanup, error) {
	if isNil(el) || t.window == nil {
		return noopCleanup, nil
	}
	s := collect(opts)

	lc := &sectionLifecycle{
		reanimate:  s.reanimate,
		scrollPast: t.resolveScrollPast(s),
		h:          h,
	}

	var closed bool
	obs, err := t.NewObserver(lc.handle, opts...)
	if err != nil {
		return nil, err
	}
	obs.Observe(el)

	t.CheckInitialVisibility(el, t.resolveThreshold(s), func() {
		if closed {
			return
		}
		if lc.state != SectionVisible {
			call(h.OnVisible)
		}
	})

	return func() {
		closed = true
		obs.Disconnect()
	}, nil
}

// ObserveRedraw calls onVisible on every transition into view so callers can
// restart a drawing animation. The mount-time check fires at most once and
// only if the observer has not already reported the element.
func (t *Tracker) ObserveRedraw(el Element, onVisible func(), opts ...Option) (Cleanup, error) {
	if isNil(el) || t.window == nil {
		return noopCleanup, nil
	}
	s := collect(opts)

	var closed, seen bool
	obs, err := t.NewObserver(func(_ Entry, isIntersecting bool) {
		if isIntersecting {
			seen = true
			call(onVisible)
		}
	}, opts...)
	if err != nil {
		return nil, err
	}
	obs.Observe(el)

	ratio := DefaultRedrawThreshold
	if s.hasThreshold {
		ratio = s.threshold
	}
	t.CheckInitialVisibility(el, ratio, func() {
		if closed || seen {
			return
		}
		seen = true
		call(onVisible)
	})

	return func() {
		closed = true
		obs.Disconnect()
	}, nil
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
