// Package layout places a cursor window onto a grid of screen slots.
package layout

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/invview/internal/cursor"
)

type DrawFlags uint8

const (
	DrawSelected DrawFlags = 1 << iota
	DrawEquipped
)

func (f DrawFlags) Has(flag DrawFlags) bool { return f&flag != 0 }

// ItemDrawState pairs a position in the panel's item list with render
// flags. It lives for one frame.
type ItemDrawState struct {
	Index int
	Flags DrawFlags
}

// Alignment anchors the slot block inside its panel.
type Alignment struct {
	Horizontal HAlign
	Vertical   VAlign
}

type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

var (
	TopLeft  = Alignment{Horizontal: AlignLeft, Vertical: AlignTop}
	TopRight = Alignment{Horizontal: AlignRight, Vertical: AlignTop}
	Centered = Alignment{Horizontal: AlignCenter, Vertical: AlignMiddle}
)

// ParseAlignment reads "top_left", "center", "bottom_right" style names.
func ParseAlignment(s string) (Alignment, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "center", "centre", "middle":
		return Centered, true
	}
	vert, horiz, ok := strings.Cut(s, "_")
	if !ok {
		return TopLeft, false
	}
	var a Alignment
	switch vert {
	case "top":
		a.Vertical = AlignTop
	case "middle", "center":
		a.Vertical = AlignMiddle
	case "bottom":
		a.Vertical = AlignBottom
	default:
		return TopLeft, false
	}
	switch horiz {
	case "left":
		a.Horizontal = AlignLeft
	case "center", "middle":
		a.Horizontal = AlignCenter
	case "right":
		a.Horizontal = AlignRight
	default:
		return TopLeft, false
	}
	return a, true
}

// Slot is one grid cell. Empty slots draw only their background.
type Slot struct {
	Rect   rl.Rectangle
	Row    int
	Column int
	Item   ItemDrawState
	Empty  bool
}

// DrawStates builds the per-frame draw records for the cursor's window.
// equipped may be nil.
func DrawStates(cs cursor.State, equipped func(i int) bool) []ItemDrawState {
	w := cs.Window()
	out := make([]ItemDrawState, 0, w.Count)
	for i := w.Offset; i < w.Offset+w.Count; i++ {
		ds := ItemDrawState{Index: i}
		if i == cs.ItemIndex {
			ds.Flags |= DrawSelected
		}
		if equipped != nil && equipped(i) {
			ds.Flags |= DrawEquipped
		}
		out = append(out, ds)
	}
	return out
}

// Origin is the top-left corner of the slot block within panel.
func Origin(panel rl.Rectangle, slotSize float32, align Alignment, grid cursor.Grid) rl.Vector2 {
	blockW := slotSize * float32(max(1, grid.Columns))
	blockH := slotSize * float32(max(1, grid.Rows))
	origin := rl.NewVector2(panel.X, panel.Y)
	switch align.Horizontal {
	case AlignCenter:
		origin.X += (panel.Width - blockW) / 2
	case AlignRight:
		origin.X += panel.Width - blockW
	}
	switch align.Vertical {
	case AlignMiddle:
		origin.Y += (panel.Height - blockH) / 2
	case AlignBottom:
		origin.Y += panel.Height - blockH
	}
	return origin
}

// Arrange lays out every cell of grid in row-major order and fills the
// leading cells with states.
func Arrange(panel rl.Rectangle, slotSize float32, align Alignment, grid cursor.Grid, states []ItemDrawState) []Slot {
	cols, rows := max(1, grid.Columns), max(1, grid.Rows)
	origin := Origin(panel, slotSize, align, grid)
	slots := make([]Slot, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := len(slots)
			s := Slot{
				Rect:   rl.NewRectangle(origin.X+float32(c)*slotSize, origin.Y+float32(r)*slotSize, slotSize, slotSize),
				Row:    r,
				Column: c,
				Empty:  n >= len(states),
				Item:   ItemDrawState{Index: -1},
			}
			if !s.Empty {
				s.Item = states[n]
			}
			slots = append(slots, s)
		}
	}
	return slots
}

// SlotAt returns the index of the slot containing p, or -1.
func SlotAt(slots []Slot, p rl.Vector2) int {
	for i, s := range slots {
		if rl.CheckCollisionPointRec(p, s.Rect) {
			return i
		}
	}
	return -1
}

// Center is the middle point of a rectangle.
func Center(r rl.Rectangle) rl.Vector2 {
	return rl.NewVector2(r.X+r.Width/2, r.Y+r.Height/2)
}
