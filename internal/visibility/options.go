package visibility

import "time"

// Option overrides one observer or section setting. Settings that are not
// overridden come from the mobile or desktop preset.
type Option func(*settings)

type settings struct {
	threshold    float64
	hasThreshold bool

	rootMargin    string
	hasRootMargin bool

	debounce    time.Duration
	hasDebounce bool

	scrollPast    float64
	hasScrollPast bool

	skipInitialCheck bool
	reanimate        bool
}

// WithThreshold sets the visible fraction, in [0,1], that counts as
// intersecting.
func WithThreshold(t float64) Option {
	return func(s *settings) {
		s.threshold = t
		s.hasThreshold = true
	}
}

// WithRootMargin sets the CSS-style margin applied to the viewport before
// intersecting, e.g. "0px 0px -50px 0px".
func WithRootMargin(m string) Option {
	return func(s *settings) {
		s.rootMargin = m
		s.hasRootMargin = true
	}
}

// WithDebounce sets the quiet interval before a state change is reported.
// Zero reports changes synchronously.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) {
		if d < 0 {
			d = 0
		}
		s.debounce = d
		s.hasDebounce = true
	}
}

// WithScrollPastThreshold sets the scrolled-past distance in pixels for
// CreateSectionObserver.
func WithScrollPastThreshold(px float64) Option {
	return func(s *settings) {
		s.scrollPast = px
		s.hasScrollPast = true
	}
}

// WithoutInitialCheck disables the mount-time visibility check in
// ObserveSection.
func WithoutInitialCheck() Option {
	return func(s *settings) { s.skipInitialCheck = true }
}

// EnableReanimation makes CreateSectionObserver fire OnVisible again when a
// section re-enters view after being scrolled well past.
func EnableReanimation() Option {
	return func(s *settings) { s.reanimate = true }
}

func collect(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
