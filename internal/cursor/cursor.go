// Package cursor tracks selection and scrolling of one inventory grid.
//
// The selection is anchored on an item symbol rather than an index, and is
// re-resolved on every update because the list behind it may have been
// resorted, filtered or mutated since the last frame.
package cursor

import (
	"math"

	"github.com/appengine-ltd/invview/internal/item"
)

// Grid is how many whole slots fit into a panel.
type Grid struct {
	Columns int
	Rows    int
}

// GridFor computes the grid for a panel of width x height filled with
// square slots of slotSize. Both dimensions are at least one slot.
func GridFor(slotSize, width, height float32) Grid {
	g := Grid{Columns: 1, Rows: 1}
	if slotSize <= 0 {
		return g
	}
	if c := int(math.Floor(float64(width / slotSize))); c > 1 {
		g.Columns = c
	}
	if r := int(math.Floor(float64(height / slotSize))); r > 1 {
		g.Rows = r
	}
	return g
}

func (g Grid) Slots() int {
	n := g.normalized()
	return n.Columns * n.Rows
}

func (g Grid) normalized() Grid {
	return Grid{Columns: max(1, g.Columns), Rows: max(1, g.Rows)}
}

// Step is one frame's accumulated directional input.
type Step struct {
	Rows    int
	Columns int
}

func (s Step) Zero() bool { return s.Rows == 0 && s.Columns == 0 }

// Window is the contiguous range of list positions currently rendered.
type Window struct {
	Offset int
	Count  int
}

func (w Window) Contains(i int) bool { return i >= w.Offset && i < w.Offset+w.Count }

// State is the cursor of one panel.
type State struct {
	// Durable across frames.
	SelectedSymbol     item.Symbol
	LastSelectedSlot   int
	DisplayedRowsStart int

	// Derived by Update.
	NumVisibleItems int
	OffsetItems     int
	ItemIndex       int
}

func New() State {
	var s State
	s.Reset()
	return s
}

// Reset forgets the selection and scrolls back to the top.
func (s *State) Reset() {
	s.SelectedSymbol = item.NoSymbol
	s.LastSelectedSlot = 0
	s.DisplayedRowsStart = 0
	s.NumVisibleItems = 0
	s.OffsetItems = 0
	s.ItemIndex = -1
}

// Selected returns the resolved list position, false with no selection.
func (s State) Selected() (int, bool) {
	return s.ItemIndex, s.ItemIndex >= 0
}

func (s State) Window() Window {
	return Window{Offset: s.OffsetItems, Count: s.NumVisibleItems}
}

// Update re-anchors the selection in symbols, applies step and scrolls the
// minimum needed to keep the selection visible. The caller must not pass
// the same step twice.
func (s *State) Update(grid Grid, symbols []item.Symbol, step Step) {
	grid = grid.normalized()
	n := len(symbols)
	if n == 0 {
		s.SelectedSymbol = item.NoSymbol
		s.DisplayedRowsStart = 0
		s.NumVisibleItems = 0
		s.OffsetItems = 0
		s.ItemIndex = -1
		return
	}

	idx := s.resolve(symbols)
	idx = move(idx, n, grid.Columns, step)

	totalRows := (n + grid.Columns - 1) / grid.Columns
	maxScroll := max(0, totalRows-grid.Rows)
	row := idx / grid.Columns
	start := s.DisplayedRowsStart
	if row < start {
		start = row
	} else if row >= start+grid.Rows {
		start = row - grid.Rows + 1
	}
	s.DisplayedRowsStart = clamp(start, 0, maxScroll)

	s.OffsetItems = s.DisplayedRowsStart * grid.Columns
	s.NumVisibleItems = min(grid.Rows*grid.Columns, n-s.OffsetItems)
	s.ItemIndex = idx
	s.SelectedSymbol = symbols[idx]
	s.LastSelectedSlot = idx
}

// SelectVisible points the cursor at the item shown in the given visible
// slot. It reports false and changes nothing when the slot is empty.
// The next Update settles the window.
func (s *State) SelectVisible(slot int, symbols []item.Symbol) bool {
	if slot < 0 || slot >= s.NumVisibleItems {
		return false
	}
	idx := s.OffsetItems + slot
	if idx >= len(symbols) {
		return false
	}
	s.SelectedSymbol = symbols[idx]
	s.LastSelectedSlot = idx
	s.ItemIndex = idx
	return true
}

// SelectSymbol points the cursor at sym when it is in symbols. The next
// Update scrolls it into view.
func (s *State) SelectSymbol(sym item.Symbol, symbols []item.Symbol) bool {
	for i, cand := range symbols {
		if cand == sym && sym != item.NoSymbol {
			s.SelectedSymbol = sym
			s.LastSelectedSlot = i
			s.ItemIndex = i
			return true
		}
	}
	return false
}

func (s *State) resolve(symbols []item.Symbol) int {
	if s.SelectedSymbol != item.NoSymbol {
		for i, sym := range symbols {
			if sym == s.SelectedSymbol {
				return i
			}
		}
	}
	return clamp(s.LastSelectedSlot, 0, len(symbols)-1)
}

// move applies a grid step without wrapping. A target past the end of a
// short last row lands on the last item.
func move(idx, n, columns int, step Step) int {
	if step.Zero() {
		return idx
	}
	lastRow := (n - 1) / columns
	row := clamp(idx/columns+step.Rows, 0, lastRow)
	col := clamp(idx%columns+step.Columns, 0, columns-1)
	return min(row*columns+col, n-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
