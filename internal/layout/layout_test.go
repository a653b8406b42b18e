package layout

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/invview/internal/cursor"
	"github.com/appengine-ltd/invview/internal/item"
)

func cursorOver(t *testing.T, grid cursor.Grid, n, selected int) cursor.State {
	t.Helper()
	symbols := make([]item.Symbol, n)
	for i := range symbols {
		symbols[i] = item.Symbol(i + 1)
	}
	cs := cursor.New()
	if selected >= 0 {
		cs.SelectedSymbol = symbols[selected]
	}
	cs.Update(grid, symbols, cursor.Step{})
	return cs
}

func TestDrawStatesFlagsSelectionAndEquipment(t *testing.T) {
	grid := cursor.Grid{Columns: 3, Rows: 2}
	cs := cursorOver(t, grid, 10, 7)
	states := DrawStates(cs, func(i int) bool { return i == 5 || i == 9 })

	if len(states) != cs.NumVisibleItems {
		t.Fatalf("expected %d states, got %d", cs.NumVisibleItems, len(states))
	}
	if states[0].Index != cs.OffsetItems {
		t.Fatalf("expected first state at offset %d, got %d", cs.OffsetItems, states[0].Index)
	}
	for _, ds := range states {
		if got := ds.Flags.Has(DrawSelected); got != (ds.Index == 7) {
			t.Fatalf("index %d: selected flag %v", ds.Index, got)
		}
		if got := ds.Flags.Has(DrawEquipped); got != (ds.Index == 5 || ds.Index == 9) {
			t.Fatalf("index %d: equipped flag %v", ds.Index, got)
		}
	}
}

func TestArrangeFillsGridAndMarksEmptySlots(t *testing.T) {
	grid := cursor.Grid{Columns: 4, Rows: 2}
	cs := cursorOver(t, grid, 5, 0)
	states := DrawStates(cs, nil)
	panel := rl.NewRectangle(10, 20, 400, 200)
	slots := Arrange(panel, 50, TopLeft, grid, states)

	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	for i, s := range slots {
		if s.Empty != (i >= 5) {
			t.Fatalf("slot %d: empty=%v", i, s.Empty)
		}
		if s.Row != i/4 || s.Column != i%4 {
			t.Fatalf("slot %d: expected row/col %d/%d, got %d/%d", i, i/4, i%4, s.Row, s.Column)
		}
	}
	if r := slots[5].Rect; r.X != 60 || r.Y != 70 || r.Width != 50 || r.Height != 50 {
		t.Fatalf("unexpected rect for slot 5: %+v", r)
	}
	if slots[6].Item.Index != -1 {
		t.Fatalf("empty slot should carry no item, got %d", slots[6].Item.Index)
	}
}

func TestOriginAlignment(t *testing.T) {
	panel := rl.NewRectangle(0, 0, 300, 200)
	grid := cursor.Grid{Columns: 2, Rows: 2}
	cases := []struct {
		align Alignment
		want  rl.Vector2
	}{
		{TopLeft, rl.NewVector2(0, 0)},
		{TopRight, rl.NewVector2(200, 0)},
		{Centered, rl.NewVector2(100, 50)},
		{Alignment{Horizontal: AlignCenter, Vertical: AlignBottom}, rl.NewVector2(100, 100)},
	}
	for _, tc := range cases {
		if got := Origin(panel, 50, tc.align, grid); got != tc.want {
			t.Fatalf("align %+v: expected %+v, got %+v", tc.align, tc.want, got)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	cases := map[string]Alignment{
		"top_left":      TopLeft,
		"TOP_RIGHT":     TopRight,
		"center":        Centered,
		"bottom_center": {Horizontal: AlignCenter, Vertical: AlignBottom},
	}
	for in, want := range cases {
		got, ok := ParseAlignment(in)
		if !ok || got != want {
			t.Fatalf("%q: expected %+v, got %+v (ok=%v)", in, want, got, ok)
		}
	}
	if _, ok := ParseAlignment("sideways"); ok {
		t.Fatalf("expected unknown alignment to fail")
	}
}

func TestEmptyListRendersOnlyEmptySlots(t *testing.T) {
	grid := cursor.Grid{Columns: 3, Rows: 3}
	cs := cursorOver(t, grid, 0, -1)
	slots := Arrange(rl.NewRectangle(0, 0, 150, 150), 50, TopLeft, grid, DrawStates(cs, nil))
	for i, s := range slots {
		if !s.Empty {
			t.Fatalf("slot %d should be empty", i)
		}
	}
}
