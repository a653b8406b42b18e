package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/invview/internal/config"
	"github.com/appengine-ltd/invview/internal/game"
	"github.com/appengine-ltd/invview/internal/view"
)

func keys(down ...int32) keyFunc {
	set := map[int32]bool{}
	for _, k := range down {
		set[k] = true
	}
	return func(key int32) bool { return set[key] }
}

func testSession(t *testing.T) *game.Session {
	t.Helper()
	w, err := game.Generate(11, 2, 6, nil, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return game.NewSession(w, view.Options{Layout: view.LayoutFromConfig(config.Default())})
}

func TestReadInputMapsKeys(t *testing.T) {
	in := readInput(keys(rl.KeyDown, rl.KeyD, rl.KeyRight, rl.KeyE, rl.KeyTab, rl.KeyL))
	if in.Step.Rows != 1 || in.Step.Columns != 2 {
		t.Fatalf("expected step 1/2, got %+v", in.Step)
	}
	if len(in.Actions) != 2 || in.Actions[0] != view.ActionUse || in.Actions[1] != view.ActionSwitchPanel {
		t.Fatalf("unexpected actions %v", in.Actions)
	}
	if !in.CycleLoot || in.ToggleInventory || in.Close {
		t.Fatalf("unexpected flags %+v", in)
	}
	if got := readInput(keys(rl.KeySlash)); !got.OpenConsole {
		t.Fatalf("expected slash to open the console")
	}
}

func TestApplyInputTogglesAndQuits(t *testing.T) {
	s := testSession(t)
	quit, err := applyInput(s, readInput(keys(rl.KeyI)))
	if err != nil || quit {
		t.Fatalf("toggle: quit=%v err=%v", quit, err)
	}
	if s.View().State() != view.StateNormal {
		t.Fatalf("expected normal state, got %s", s.View().State())
	}
	if quit, _ := applyInput(s, readInput(keys(rl.KeyEscape))); quit {
		t.Fatalf("escape with the view open must only close it")
	}
	if s.View().State() != view.StateDisabled {
		t.Fatalf("expected disabled state, got %s", s.View().State())
	}
	if quit, _ := applyInput(s, readInput(keys(rl.KeyEscape))); !quit {
		t.Fatalf("expected escape to quit with the view closed")
	}
}

func TestApplyInputMovesCursor(t *testing.T) {
	s := testSession(t)
	if err := s.ToggleInventory(); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Step(0); err != nil {
		t.Fatalf("step: %v", err)
	}
	pf, _ := s.Frame().Panel(view.PanelSelf)
	if len(pf.List) < 2 {
		t.Skipf("generated inventory too small: %d", len(pf.List))
	}
	if _, err := applyInput(s, readInput(keys(rl.KeyRight))); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := s.Step(0); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := s.View().Cursor(view.PanelSelf).ItemIndex; got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
}

func TestClickSelectsSlot(t *testing.T) {
	s := testSession(t)
	if err := s.ToggleInventory(); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Step(0); err != nil {
		t.Fatalf("step: %v", err)
	}
	pf, _ := s.Frame().Panel(view.PanelSelf)
	if len(pf.Slots) == 0 {
		t.Fatalf("expected slots")
	}
	first := pf.Slots[0].Rect
	panel, slot, ok := slotUnder(s.Frame(), rl.NewVector2(first.X+first.Width/2, first.Y+first.Height/2))
	if !ok || panel != view.PanelSelf || slot != 0 {
		t.Fatalf("expected self slot 0, got %v/%d/%v", panel, slot, ok)
	}
	if _, _, ok := slotUnder(s.Frame(), rl.NewVector2(-10, -10)); ok {
		t.Fatalf("expected no slot outside the panels")
	}
	if !applyClick(s, rl.NewVector2(first.X+1, first.Y+1), false) {
		t.Fatalf("expected click on an item to select it")
	}
}
