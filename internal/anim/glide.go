package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Glide eases a scroll position toward a target row. It is critically
// damped so it never scrolls past the target.
type Glide struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

func NewGlide(fps int) *Glide {
	return &Glide{spring: harmonica.NewSpring(harmonica.FPS(fps), 10, 1)}
}

// Start glides from row from to row to.
func (g *Glide) Start(from, to int) {
	if g.active {
		from = g.Row()
	} else {
		g.vel = 0
	}
	g.pos = float64(from)
	g.target = float64(to)
	g.active = from != to
}

// Stop abandons the glide where it is, e.g. when the user scrolls by hand.
func (g *Glide) Stop() {
	g.active = false
	g.vel = 0
}

func (g *Glide) Active() bool {
	return g.active
}

// Update steps one frame and returns the row to show.
func (g *Glide) Update() int {
	if !g.active {
		return g.Row()
	}
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, g.target)
	if math.Abs(g.pos-g.target) < 0.5 && math.Abs(g.vel) < 0.5 {
		g.pos = g.target
		g.active = false
	}
	return g.Row()
}

func (g *Glide) Row() int {
	return int(math.Round(g.pos))
}
