package visibility

import "errors"

type fakeWindow struct {
	width, height float64
}

func (w *fakeWindow) InnerWidth() float64  { return w.width }
func (w *fakeWindow) InnerHeight() float64 { return w.height }

type fakeElement struct {
	rect Rect
}

func (e *fakeElement) BoundingClientRect() Rect { return e.rect }

// fakePrimitive records registrations so tests can push entry batches by
// hand, the way a browser would.
type fakePrimitive struct {
	created []*fakeIntersection
	err     error
}

func (p *fakePrimitive) NewIntersection(fn func([]Entry), threshold float64, rootMargin string) (Intersection, error) {
	if p.err != nil {
		return nil, p.err
	}
	in := &fakeIntersection{fn: fn, threshold: threshold, rootMargin: rootMargin}
	p.created = append(p.created, in)
	return in, nil
}

func (p *fakePrimitive) last() *fakeIntersection {
	return p.created[len(p.created)-1]
}

type fakeIntersection struct {
	fn           func([]Entry)
	threshold    float64
	rootMargin   string
	observed     []Element
	disconnected int
}

func (in *fakeIntersection) Observe(el Element) { in.observed = append(in.observed, el) }
func (in *fakeIntersection) Disconnect()        { in.disconnected++ }

func (in *fakeIntersection) push(entries ...Entry) { in.fn(entries) }

var errBadOptions = errors.New("bad options")

func entry(intersecting bool, top float64) Entry {
	return Entry{IsIntersecting: intersecting, BoundingRect: Rect{Top: top, Height: 50}}
}

type harness struct {
	win  *fakeWindow
	prim *fakePrimitive
	loop *Loop
	tr   *Tracker
}

func newHarness(width float64) *harness {
	h := &harness{
		win:  &fakeWindow{width: width, height: 800},
		prim: &fakePrimitive{},
		loop: NewLoop(),
	}
	h.tr = New(h.win, h.prim, h.loop, DefaultConfig(), nil)
	return h
}

type counter struct{ n int }

func (c *counter) inc() { c.n++ }
