// Package anim holds the frame-stepped animations the terminal client
// runs when a section scrolls into view. Callers step them once per frame
// from their own loop; nothing here starts goroutines.
package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultRise is how many rows a section travels while entering.
	DefaultRise = 2.0
	// Spring parameters for entrances: slightly under-damped.
	DefaultFrequency = 6.0
	DefaultDamping   = 0.7

	settleEpsilon = 0.01
)

// Entrance slides a block up from Rise rows below its resting place. It
// starts hidden; Show starts the spring and Hide snaps back so the block
// can animate again.
type Entrance struct {
	spring harmonica.Spring
	rise   float64
	pos    float64
	vel    float64
	shown  bool
}

// NewEntrance builds an entrance stepped at fps frames per second.
func NewEntrance(fps int, rise float64) *Entrance {
	return &Entrance{
		spring: harmonica.NewSpring(harmonica.FPS(fps), DefaultFrequency, DefaultDamping),
		rise:   rise,
		pos:    rise,
	}
}

func (e *Entrance) Show() {
	e.shown = true
}

func (e *Entrance) Hide() {
	e.shown = false
	e.pos = e.rise
	e.vel = 0
}

// Shown reports whether the block has been revealed.
func (e *Entrance) Shown() bool {
	return e.shown
}

// Update advances the spring by one frame and reports whether it moved.
func (e *Entrance) Update() bool {
	if !e.shown || e.Settled() {
		return false
	}
	e.pos, e.vel = e.spring.Update(e.pos, e.vel, 0)
	if e.Settled() {
		e.pos, e.vel = 0, 0
	}
	return true
}

// Settled reports whether the block is at rest.
func (e *Entrance) Settled() bool {
	if !e.shown {
		return true
	}
	return math.Abs(e.pos) < settleEpsilon && math.Abs(e.vel) < settleEpsilon
}

// Offset is the current displacement in whole rows. Overshoot above the
// resting place is clamped to zero.
func (e *Entrance) Offset() int {
	if e.pos <= 0 {
		return 0
	}
	return int(math.Round(e.pos))
}

// Progress runs from 0 (hidden) to 1 (at rest).
func (e *Entrance) Progress() float64 {
	if !e.shown {
		return 0
	}
	if e.rise == 0 {
		return 1
	}
	return math.Min(1, math.Max(0, 1-e.pos/e.rise))
}

// Fill eases a bar from empty to its target level.
type Fill struct {
	target   float64
	duration time.Duration
	tween    *gween.Tween
	value    float64
	done     bool
}

// NewFill returns an empty bar that will ease to target over d.
func NewFill(target float64, d time.Duration) *Fill {
	return &Fill{target: target, duration: d}
}

// Start begins filling from the current value. Calling it on a running or
// full bar does nothing.
func (f *Fill) Start() {
	if f.tween != nil || f.done {
		return
	}
	f.tween = gween.New(float32(f.value), float32(f.target), float32(f.duration.Seconds()), ease.OutCubic)
}

// Reset empties the bar.
func (f *Fill) Reset() {
	f.tween = nil
	f.value = 0
	f.done = false
}

// Update advances the tween by dt and reports whether the value changed.
func (f *Fill) Update(dt time.Duration) bool {
	if f.tween == nil {
		return false
	}
	val, finished := f.tween.Update(float32(dt.Seconds()))
	f.value = float64(val)
	if finished {
		f.value = f.target
		f.tween = nil
		f.done = true
	}
	return true
}

func (f *Fill) Value() float64 {
	return f.value
}

func (f *Fill) Done() bool {
	return f.done
}

// Running reports whether the bar is mid-animation.
func (f *Fill) Running() bool {
	return f.tween != nil
}
