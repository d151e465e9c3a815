package visibility

import "go.uber.org/zap"

// Tracker owns the viewport classification cache and the collaborators every
// observer needs. One tracker serves one page.
type Tracker struct {
	window     Window
	primitive  Primitive
	sched      Scheduler
	cfg        Config
	classifier *Classifier
	log        *zap.Logger
}

// New builds a tracker. window may be nil when there is no interactive
// viewport; a nil logger is replaced with a no-op one.
func New(window Window, primitive Primitive, sched Scheduler, cfg Config, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Breakpoint == 0 {
		cfg.Breakpoint = DefaultBreakpoint
	}
	return &Tracker{
		window:     window,
		primitive:  primitive,
		sched:      sched,
		cfg:        cfg,
		classifier: NewClassifier(cfg.Breakpoint),
		log:        logger,
	}
}

// Config returns the tracker's static configuration.
func (t *Tracker) Config() Config {
	return t.cfg
}

// Classifier exposes the viewport classification cache.
func (t *Tracker) Classifier() *Classifier {
	return t.classifier
}

// IsMobileViewport reports whether the viewport is narrower than the
// configured breakpoint. Without a window it is always false.
func (t *Tracker) IsMobileViewport(force bool) bool {
	return t.classifier.IsMobile(t.window, force)
}

func (t *Tracker) preset() Preset {
	if t.IsMobileViewport(false) {
		return t.cfg.Mobile
	}
	return t.cfg.Desktop
}

// resolveThreshold returns the explicit threshold or the preset one.
func (t *Tracker) resolveThreshold(s settings) float64 {
	if s.hasThreshold {
		return s.threshold
	}
	return t.preset().Threshold
}

func (t *Tracker) resolveScrollPast(s settings) float64 {
	if s.hasScrollPast {
		return s.scrollPast
	}
	if t.cfg.ScrollPastThreshold != 0 {
		return t.cfg.ScrollPastThreshold
	}
	return DefaultScrollPastThreshold
}
