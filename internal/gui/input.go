package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/invview/internal/cursor"
	"github.com/appengine-ltd/invview/internal/game"
	"github.com/appengine-ltd/invview/internal/layout"
	"github.com/appengine-ltd/invview/internal/view"
)

// keyFunc reports whether a key went down this frame.
type keyFunc func(key int32) bool

// Input is one frame of keyboard intent.
type Input struct {
	Step            cursor.Step
	Actions         []view.Action
	ToggleInventory bool
	CycleLoot       bool
	CycleFilter     bool
	OpenConsole     bool
	Close           bool
}

var moveKeys = []struct {
	key        int32
	rows, cols int
}{
	{rl.KeyUp, -1, 0},
	{rl.KeyW, -1, 0},
	{rl.KeyDown, 1, 0},
	{rl.KeyS, 1, 0},
	{rl.KeyLeft, 0, -1},
	{rl.KeyA, 0, -1},
	{rl.KeyRight, 0, 1},
	{rl.KeyD, 0, 1},
}

var actionKeys = []struct {
	key    int32
	action view.Action
}{
	{rl.KeyEnter, view.ActionUse},
	{rl.KeyE, view.ActionUse},
	{rl.KeyQ, view.ActionDrop},
	{rl.KeyBackspace, view.ActionDrop},
	{rl.KeySpace, view.ActionAlternate},
	{rl.KeyR, view.ActionAlternate},
	{rl.KeyTab, view.ActionSwitchPanel},
}

// readInput maps this frame's key presses. Several movement keys in one
// frame add up.
func readInput(pressed keyFunc) Input {
	var in Input
	for _, m := range moveKeys {
		if pressed(m.key) {
			in.Step.Rows += m.rows
			in.Step.Columns += m.cols
		}
	}
	for _, a := range actionKeys {
		if pressed(a.key) {
			in.Actions = append(in.Actions, a.action)
		}
	}
	in.ToggleInventory = pressed(rl.KeyI)
	in.CycleLoot = pressed(rl.KeyL)
	in.CycleFilter = pressed(rl.KeyF)
	in.OpenConsole = pressed(rl.KeySlash) || pressed(rl.KeyT)
	in.Close = pressed(rl.KeyEscape)
	return in
}

// applyInput feeds one frame of input into the session. It reports quit
// when Escape is pressed with the view already closed.
func applyInput(s *game.Session, in Input) (quit bool, err error) {
	v := s.View()
	if in.Close {
		if v.State() == view.StateDisabled {
			return true, nil
		}
		return false, s.Close()
	}
	if in.ToggleInventory {
		if err := s.ToggleInventory(); err != nil {
			return false, err
		}
	}
	if in.CycleLoot {
		if err := s.CycleLoot(); err != nil {
			return false, err
		}
	}
	if in.CycleFilter {
		s.CycleFilter(v.Focus())
	}
	if !in.Step.Zero() {
		v.AddDelta(in.Step.Rows, in.Step.Columns)
	}
	for _, a := range in.Actions {
		v.Trigger(a)
	}
	return false, nil
}

// slotUnder finds the shown slot containing p.
func slotUnder(frame view.Frame, p rl.Vector2) (view.Panel, int, bool) {
	for _, pf := range frame.Panels {
		if !rl.CheckCollisionPointRec(p, pf.Rect) {
			continue
		}
		if i := layout.SlotAt(pf.Slots, p); i >= 0 {
			return pf.Panel, i, true
		}
	}
	return view.PanelSelf, -1, false
}

// applyClick selects the clicked slot; a right click also uses it.
func applyClick(s *game.Session, p rl.Vector2, use bool) bool {
	panel, slot, ok := slotUnder(s.Frame(), p)
	if !ok || !s.View().SelectSlot(panel, slot) {
		return false
	}
	if use {
		s.View().Trigger(view.ActionUse)
	}
	return true
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}
