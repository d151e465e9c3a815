package visibility

import "reflect"

// Rect is an axis-aligned box in viewport coordinates, logical pixels.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns the y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Element is anything with a measurable box.
type Element interface {
	BoundingClientRect() Rect
}

// isNil reports whether el is nil or wraps a nil pointer, such as a
// (*Block)(nil).
func isNil(el Element) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Entry is one intersection report produced by the platform primitive.
type Entry struct {
	Target            Element
	IsIntersecting    bool
	IntersectionRatio float64
	BoundingRect      Rect
}

// Primitive is the platform intersection API the observers wrap.
type Primitive interface {
	// NewIntersection registers fn to receive entry batches for every
	// element later passed to Observe. It fails when threshold or rootMargin
	// cannot be used.
	NewIntersection(fn func([]Entry), threshold float64, rootMargin string) (Intersection, error)
}

// Intersection is a live platform registration.
type Intersection interface {
	Observe(el Element)
	Disconnect()
}
