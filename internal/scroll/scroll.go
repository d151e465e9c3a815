// Package scroll tracks the page scroll position and the derived
// "scrolled" flag that switches the navbar to its backdrop style.
package scroll

import (
	"strings"
	"time"

	"github.com/zhaoyu-io/folio/internal/visibility"
)

// Navbar defaults: the flag flips around 20px, with 5px of slack either way,
// once scrolling has been quiet for 10ms.
const (
	DefaultThreshold  = 20
	DefaultHysteresis = 5
	DefaultDebounce   = 10 * time.Millisecond
)

// Store holds the scroll offset in logical pixels. Subscribers receive the
// current value on subscription and then every change. Not safe for
// concurrent use; drive it from the event loop that owns the scheduler.
type Store struct {
	threshold  float64
	hysteresis float64

	y        float64
	lastY    float64
	scrolled bool

	settle *visibility.Debouncer

	nextID       int
	positionSubs map[int]func(float64)
	scrolledSubs map[int]func(bool)
}

// NewStore evaluates the scrolled flag once for offset zero, the same as a
// fresh page load.
func NewStore(sched visibility.Scheduler, threshold, hysteresis float64, debounce time.Duration) *Store {
	s := &Store{
		threshold:    threshold,
		hysteresis:   hysteresis,
		settle:       visibility.NewDebouncer(sched, debounce),
		positionSubs: make(map[int]func(float64)),
		scrolledSubs: make(map[int]func(bool)),
	}
	s.update()
	return s
}

// Y returns the current offset.
func (s *Store) Y() float64 {
	return s.y
}

// Scrolled reports whether the page counts as scrolled for the navbar.
func (s *Store) Scrolled() bool {
	return s.scrolled
}

// Set records a new offset. Position subscribers are told right away; the
// scrolled flag settles after the debounce.
func (s *Store) Set(y float64) {
	if y != s.y {
		s.y = y
		for _, fn := range s.positionSubs {
			fn(y)
		}
	}
	s.settle.Schedule(s.update)
}

// Subscribe registers fn for offset changes.
func (s *Store) Subscribe(fn func(y float64)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.positionSubs[id] = fn
	fn(s.y)
	return func() { delete(s.positionSubs, id) }
}

// SubscribeScrolled registers fn for changes of the scrolled flag.
func (s *Store) SubscribeScrolled(fn func(scrolled bool)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.scrolledSubs[id] = fn
	fn(s.scrolled)
	return func() { delete(s.scrolledSubs, id) }
}

// Close drops a pending flag update.
func (s *Store) Close() {
	s.settle.Stop()
}

// update applies the flag with hysteresis: moving down needs to clear
// threshold+hysteresis, moving up keeps the flag until threshold-hysteresis.
func (s *Store) update() {
	var scrolled bool
	if s.y > s.lastY {
		scrolled = s.y > s.threshold+s.hysteresis
	} else {
		scrolled = s.y > s.threshold-s.hysteresis
	}
	s.lastY = s.y
	if scrolled == s.scrolled {
		return
	}
	s.scrolled = scrolled
	for _, fn := range s.scrolledSubs {
		fn(scrolled)
	}
}

// AnchorTarget extracts the section id from an in-page link such as
// "/#projects". Other links report false.
func AnchorTarget(href string) (id string, ok bool) {
	if !strings.HasPrefix(href, "/#") {
		return "", false
	}
	return href[2:], true
}
