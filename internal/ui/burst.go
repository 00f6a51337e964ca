package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// animFPS is the frame rate of card transitions and the like burst.
const animFPS = 30

// likeBurst is the one-shot emphasis animation played when a card is
// liked: the heart scales up in a burst and springs back to rest.
// Purely presentational; nothing downstream depends on it.
type likeBurst struct {
	spring harmonica.Spring
	scale  float64
	vel    float64
	active bool
}

func newLikeBurst() likeBurst {
	return likeBurst{
		// Lowish damping so the settle has a visible overshoot.
		spring: harmonica.NewSpring(harmonica.FPS(animFPS), 8.0, 0.4),
		scale:  1.0,
	}
}

// Trigger starts the burst from an enlarged scale.
func (b *likeBurst) Trigger() {
	b.scale = 1.8
	b.vel = 0
	b.active = true
}

// Step advances one frame. Returns false once the spring has settled.
func (b *likeBurst) Step() bool {
	if !b.active {
		return false
	}
	b.scale, b.vel = b.spring.Update(b.scale, b.vel, 1.0)
	if math.Abs(b.scale-1.0) < 0.01 && math.Abs(b.vel) < 0.01 {
		b.scale = 1.0
		b.vel = 0
		b.active = false
	}
	return b.active
}

// Scale returns the current heart scale, 1.0 at rest.
func (b *likeBurst) Scale() float64 { return b.scale }
