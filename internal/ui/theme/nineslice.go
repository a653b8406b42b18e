package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// NineSlice is a scalable 9-patch texture. Corner sizes are in source
// pixels; corners draw verbatim, edges stretch along one axis and the
// centre stretches both ways.
type NineSlice struct {
	Tex    rl.Texture2D
	Left   int32
	Right  int32
	Top    int32
	Bottom int32
}

// Patch pairs a source region of the texture with its destination.
type Patch struct {
	Src  rl.Rectangle
	Dest rl.Rectangle
}

// Patches splits dest into the nine regions of ns, row by row from the
// top-left. Corners shrink evenly when dest is smaller than them.
func (ns NineSlice) Patches(dest rl.Rectangle) [9]Patch {
	sw, sh := float32(ns.Tex.Width), float32(ns.Tex.Height)
	l, r := float32(ns.Left), float32(ns.Right)
	t, b := float32(ns.Top), float32(ns.Bottom)

	dl, dr, dt, db := l, r, t, b
	if dl+dr > dest.Width {
		dl, dr = dest.Width/2, dest.Width/2
	}
	if dt+db > dest.Height {
		dt, db = dest.Height/2, dest.Height/2
	}

	srcX := [3]float32{0, l, sw - r}
	srcW := [3]float32{l, sw - l - r, r}
	srcY := [3]float32{0, t, sh - b}
	srcH := [3]float32{t, sh - t - b, b}
	dstX := [3]float32{dest.X, dest.X + dl, dest.X + dest.Width - dr}
	dstW := [3]float32{dl, dest.Width - dl - dr, dr}
	dstY := [3]float32{dest.Y, dest.Y + dt, dest.Y + dest.Height - db}
	dstH := [3]float32{dt, dest.Height - dt - db, db}

	var out [9]Patch
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = Patch{
				Src:  rl.NewRectangle(srcX[col], srcY[row], srcW[col], srcH[row]),
				Dest: rl.NewRectangle(dstX[col], dstY[row], dstW[col], dstH[row]),
			}
		}
	}
	return out
}

// DrawNineSlice renders ns into dest, tinted by tint. Without a loaded
// texture it draws fill with a thin tint border instead.
func DrawNineSlice(ns NineSlice, dest rl.Rectangle, fill, tint rl.Color) {
	if ns.Tex.ID == 0 {
		rl.DrawRectangleRec(dest, fill)
		rl.DrawRectangleLinesEx(dest, BorderWidth, tint)
		return
	}
	for _, p := range ns.Patches(dest) {
		if p.Dest.Width <= 0 || p.Dest.Height <= 0 {
			continue
		}
		rl.DrawTexturePro(ns.Tex, p.Src, p.Dest, rl.Vector2{}, 0, tint)
	}
}
