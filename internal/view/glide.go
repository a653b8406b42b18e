package view

import (
	"math"

	"github.com/charmbracelet/harmonica"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// glide eases the highlight frame toward the selected slot. A panel switch
// or a lost selection snaps it.
type glide struct {
	active bool
	panel  Panel
	pos    rl.Vector2
	velX   float64
	velY   float64
}

const (
	glideFrequency = 12.0
	glideDamping   = 0.9
	glideSnap      = 0.5
)

func (g *glide) update(dt float64, panel Panel, target rl.Vector2) rl.Vector2 {
	if !g.active || g.panel != panel || dt <= 0 {
		g.active = true
		g.panel = panel
		g.pos = target
		g.velX, g.velY = 0, 0
		return target
	}
	spring := harmonica.NewSpring(dt, glideFrequency, glideDamping)
	x, vx := spring.Update(float64(g.pos.X), g.velX, float64(target.X))
	y, vy := spring.Update(float64(g.pos.Y), g.velY, float64(target.Y))
	if math.Abs(x-float64(target.X)) < glideSnap && math.Abs(y-float64(target.Y)) < glideSnap {
		x, y, vx, vy = float64(target.X), float64(target.Y), 0, 0
	}
	g.pos = rl.NewVector2(float32(x), float32(y))
	g.velX, g.velY = vx, vy
	return g.pos
}

func (g *glide) forget() { *g = glide{} }
