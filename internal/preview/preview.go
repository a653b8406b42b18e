// Package preview builds the pose used to draw an item mesh inside a slot.
//
// All matrices follow raymath conventions: MatrixMultiply(a, b) applies a
// first, then b.
package preview

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/invview/internal/item"
)

const fullTurn = 2 * math.Pi

// Options are the fixed presentation rules of the inventory view.
type Options struct {
	// Tilt is the camera-facing tilt in degrees, applied after the idle spin.
	Tilt rl.Vector3
	// SelectedScale enlarges the highlighted item.
	SelectedScale float32
}

func DefaultOptions() Options {
	return Options{
		Tilt:          rl.NewVector3(-25, 0, 0),
		SelectedScale: 1.2,
	}
}

// Pivot is the default rotation center: the middle of the mesh bounds.
func Pivot(b item.Bounds) rl.Vector3 {
	c := b.Center()
	return rl.NewVector3(c.X, c.Y, c.Z)
}

// Scale is the uniform factor that makes the largest bounding dimension
// exactly size, enlarged when selected.
func Scale(b item.Bounds, size float32, selected bool, opt Options) float32 {
	largest := b.Largest()
	if largest <= 1e-6 {
		largest = 1
	}
	s := size / largest
	if selected && opt.SelectedScale > 0 {
		s *= opt.SelectedScale
	}
	return s
}

// Transform poses it around pivot: the item's own inventory rotation, the
// idle spin by phase (radians), the view tilt, then the fit-to-size scale.
// The result is centered on the origin; use Place to move it into a slot.
func Transform(it item.Item, size float32, pivot rl.Vector3, selected bool, phase float32, opt Options) rl.Matrix {
	m := rl.MatrixTranslate(-pivot.X, -pivot.Y, -pivot.Z)
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(it.InvRotation.X*rl.Deg2rad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(it.InvRotation.Y*rl.Deg2rad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateZ(it.InvRotation.Z*rl.Deg2rad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(phase))
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(opt.Tilt.X*rl.Deg2rad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(opt.Tilt.Y*rl.Deg2rad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateZ(opt.Tilt.Z*rl.Deg2rad))
	s := Scale(it.Bounds, size, selected, opt)
	m = rl.MatrixMultiply(m, rl.MatrixScale(s, s, s))
	if it.InvZBias != 0 {
		// z-bias is a percentage of the slot size, pushing the item away
		// from the camera.
		m = rl.MatrixMultiply(m, rl.MatrixTranslate(0, 0, -size*it.InvZBias/100))
	}
	return m
}

// Fit is Transform around the center of the item's bounds.
func Fit(it item.Item, size float32, selected bool, phase float32, opt Options) rl.Matrix {
	return Transform(it, size, Pivot(it.Bounds), selected, phase, opt)
}

// Place appends a translation to at.
func Place(m rl.Matrix, at rl.Vector3) rl.Matrix {
	return rl.MatrixMultiply(m, rl.MatrixTranslate(at.X, at.Y, at.Z))
}

// BoxEdges indexes pairs of Corners forming the box wireframe.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Corners returns the eight corners of b.
func Corners(b item.Bounds) [8]rl.Vector3 {
	var out [8]rl.Vector3
	for i := range out {
		v := rl.NewVector3(b.Min.X, b.Min.Y, b.Min.Z)
		if i&1 != 0 {
			v.X = b.Max.X
		}
		if i&2 != 0 {
			v.Y = b.Max.Y
		}
		if i&4 != 0 {
			v.Z = b.Max.Z
		}
		out[i] = v
	}
	return out
}

// Project transforms the corners of b by m.
func Project(b item.Bounds, m rl.Matrix) [8]rl.Vector3 {
	corners := Corners(b)
	for i, c := range corners {
		corners[i] = rl.Vector3Transform(c, m)
	}
	return corners
}

// Spinner holds the idle rotation phase of the selected item.
type Spinner struct {
	Phase float32
}

// Advance adds speed*dt radians and wraps into [0, 2π).
func (s *Spinner) Advance(dt float64, speed float32) {
	if dt <= 0 {
		return
	}
	p := math.Mod(float64(s.Phase)+dt*float64(speed), fullTurn)
	if p < 0 {
		p += fullTurn
	}
	s.Phase = float32(p)
}

// Reset is called when a different item becomes selected.
func (s *Spinner) Reset() { s.Phase = 0 }
