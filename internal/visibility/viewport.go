package visibility

// Window is the windowing context observers measure against. A nil Window
// means there is no interactive viewport (for example when content is being
// prerendered) and every entry point falls back to a safe default.
type Window interface {
	InnerWidth() float64
	InnerHeight() float64
}

// Classifier memoizes the mobile/desktop decision keyed by viewport width.
type Classifier struct {
	breakpoint float64

	valid       bool
	width       float64
	mobile      bool
	evaluations int
}

// NewClassifier returns a classifier that treats widths strictly below
// breakpoint as mobile.
func NewClassifier(breakpoint float64) *Classifier {
	return &Classifier{breakpoint: breakpoint}
}

// IsMobile reports whether w is narrower than the breakpoint. The cached
// answer is reused until the width changes or force is set. A nil window is
// never mobile.
func (c *Classifier) IsMobile(w Window, force bool) bool {
	if w == nil {
		return false
	}

	width := w.InnerWidth()
	if !force && c.valid && c.width == width {
		return c.mobile
	}

	c.evaluations++
	c.valid = true
	c.width = width
	c.mobile = width < c.breakpoint
	return c.mobile
}

// Evaluations returns how many times the classification was recomputed.
func (c *Classifier) Evaluations() int {
	return c.evaluations
}
