package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// transition animates the incoming card sliding over the viewport. Its
// position doubles as the card's viewport coverage fraction, which
// feeds the dominance debouncer: a card mid-slide has not covered
// enough of the screen to count as viewed.
type transition struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	moving bool
}

func newTransition() transition {
	return transition{
		spring: harmonica.NewSpring(harmonica.FPS(animFPS), 9.0, 1.0),
		pos:    1.0,
	}
}

// Restart begins a new slide from zero coverage.
func (t *transition) Restart() {
	t.pos = 0
	t.vel = 0
	t.moving = true
}

// Step advances one frame. Returns false once settled at full coverage.
func (t *transition) Step() bool {
	if !t.moving {
		return false
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, 1.0)
	if math.Abs(t.pos-1.0) < 0.001 && math.Abs(t.vel) < 0.001 {
		t.pos = 1.0
		t.vel = 0
		t.moving = false
	}
	return t.moving
}

// Coverage returns the incoming card's viewport coverage in [0, 1].
func (t *transition) Coverage() float64 {
	switch {
	case t.pos < 0:
		return 0
	case t.pos > 1:
		return 1
	}
	return t.pos
}
