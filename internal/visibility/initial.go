package visibility

import "math"

// VisibleRatio returns the fraction of r's height inside a viewport of the
// given height. Zero-height boxes are 0; boxes fully outside go negative.
func VisibleRatio(r Rect, viewportHeight float64) float64 {
	if !(r.Height > 0) {
		return 0
	}
	visible := math.Min(r.Bottom(), viewportHeight) - math.Max(r.Top, 0)
	return visible / r.Height
}

// CheckInitialVisibility measures el at the next frame and calls cb once if
// at least ratio of it is on screen. The platform primitive reports already
// visible elements asynchronously, so mount-time animations use this instead.
func (t *Tracker) CheckInitialVisibility(el Element, ratio float64, cb func()) {
	if t.window == nil || t.sched == nil || isNil(el) || cb == nil {
		return
	}
	t.sched.RequestFrame(func() {
		if VisibleRatio(el.BoundingClientRect(), t.window.InnerHeight()) >= ratio {
			cb()
		}
	})
}
