package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/appengine-ltd/invview/internal/config"
	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/view"
)

func newTestSession(t *testing.T, w *World) *Session {
	t.Helper()
	return NewSession(w, view.Options{Layout: view.LayoutFromConfig(config.Default())})
}

func TestToggleInventory(t *testing.T) {
	s := newTestSession(t, newTestWorld(t))
	if err := s.ToggleInventory(); err != nil {
		t.Fatalf("open: %v", err)
	}
	frame, err := s.Step(0.016)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if frame.State != view.StateNormal || len(frame.Panels) != 1 {
		t.Fatalf("expected one visible panel in normal state, got %s/%d", frame.State, len(frame.Panels))
	}
	if err := s.ToggleInventory(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if frame, _ := s.Step(0.016); frame.Visible() {
		t.Fatalf("expected hidden view after toggle")
	}
}

func TestConsoleLootAndTake(t *testing.T) {
	w := newTestWorld(t)
	s := newTestSession(t, w)
	if _, err := s.Execute("loot chest"); err != nil {
		t.Fatalf("loot: %v", err)
	}
	if s.View().State() != view.StateLoot || s.View().Other() != 2 {
		t.Fatalf("expected loot of entity 2, got %s/%d", s.View().State(), s.View().Other())
	}
	if _, err := s.Execute("take gold"); err != nil {
		t.Fatalf("take: %v", err)
	}
	if _, err := s.Step(0.016); err != nil {
		t.Fatalf("step: %v", err)
	}
	gold, _ := findItem(t, w, 1, "ItMi_Gold")
	if gold.Count != 75 {
		t.Fatalf("expected 75 gold, got %d", gold.Count)
	}
	if s.Status() != "took Gold from Chest" {
		t.Fatalf("unexpected status %q", s.Status())
	}
}

func TestConsoleUseAppliesOnStep(t *testing.T) {
	w := newTestWorld(t)
	s := newTestSession(t, w)
	if _, err := s.Execute("drink essence of healing"); err != nil {
		t.Fatalf("drink: %v", err)
	}
	if potion, _ := findItem(t, w, 1, "ItPo_Health_01"); potion.Count != 3 {
		t.Fatalf("expected nothing applied before Step, got %d", potion.Count)
	}
	if _, err := s.Step(0); err != nil {
		t.Fatalf("step: %v", err)
	}
	if potion, _ := findItem(t, w, 1, "ItPo_Health_01"); potion.Count != 2 {
		t.Fatalf("expected 2 potions left, got %d", potion.Count)
	}
}

func TestConsoleErrors(t *testing.T) {
	s := newTestSession(t, newTestWorld(t))
	if _, err := s.Execute("take gold"); !errors.Is(err, ErrNotLooting) {
		t.Fatalf("expected ErrNotLooting, got %v", err)
	}
	if _, err := s.Execute("drop crown"); !errors.Is(err, ErrNoSuchItem) {
		t.Fatalf("expected ErrNoSuchItem, got %v", err)
	}
}

func TestConsoleClarifiesAmbiguousName(t *testing.T) {
	s := newTestSession(t, newTestWorld(t))
	reply, err := s.Execute("drop sword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "drop short sword") || !strings.Contains(reply, "drop broad sword") {
		t.Fatalf("expected both swords offered, got %q", reply)
	}
	if s.Status() != reply {
		t.Fatalf("expected status to carry the question")
	}
}

func TestConsoleFilters(t *testing.T) {
	s := newTestSession(t, newTestWorld(t))
	if _, err := s.Execute("find heal"); err != nil {
		t.Fatalf("find: %v", err)
	}
	if got := s.View().Filter(view.PanelSelf).Query; got != "heal" {
		t.Fatalf("expected query heal, got %q", got)
	}
	if _, err := s.Execute("clear"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.View().Filter(view.PanelSelf).Active() {
		t.Fatalf("expected filter cleared")
	}
}

func TestViewIntentsReachTheWorld(t *testing.T) {
	w := newTestWorld(t)
	s := newTestSession(t, w)
	if err := s.Loot(2); err != nil {
		t.Fatalf("loot: %v", err)
	}
	if _, err := s.Step(0.016); err != nil {
		t.Fatalf("step: %v", err)
	}
	if !s.View().SelectItem(view.PanelSelf, 11) {
		t.Fatalf("expected broad sword to be selectable")
	}
	s.View().Trigger(view.ActionUse)
	if _, err := s.Step(0.016); err != nil {
		t.Fatalf("step: %v", err)
	}
	if _, ok := findItem(t, w, 2, "ItMw_Schwert"); !ok {
		t.Fatalf("expected broad sword put into the chest")
	}
}

func TestCycleLootWraps(t *testing.T) {
	w, err := Generate(7, 3, 4, nil, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	s := newTestSession(t, w)
	want := []item.EntityID{2, 3, 4, 2}
	for i, id := range want {
		if err := s.CycleLoot(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
		if s.View().Other() != id {
			t.Fatalf("cycle %d: expected entity %d, got %d", i, id, s.View().Other())
		}
	}

	alone, err := NewWorld(1, []Entity{{ID: 1}}, nil, nil)
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	if err := newTestSession(t, alone).CycleLoot(); !errors.Is(err, ErrNoContainers) {
		t.Fatalf("expected ErrNoContainers, got %v", err)
	}
}

func TestCycleFilterReturnsToEverything(t *testing.T) {
	s := newTestSession(t, newTestWorld(t))
	s.CycleFilter(view.PanelSelf)
	if !s.View().Filter(view.PanelSelf).Active() {
		t.Fatalf("expected first cycle to narrow the panel")
	}
	for i := 0; i < 12 && s.View().Filter(view.PanelSelf).Active(); i++ {
		s.CycleFilter(view.PanelSelf)
	}
	if s.View().Filter(view.PanelSelf).Active() {
		t.Fatalf("expected cycling to come back to everything")
	}
}

func TestVanishedContainerClosesView(t *testing.T) {
	w := newTestWorld(t)
	s := newTestSession(t, w)
	if err := s.Loot(2); err != nil {
		t.Fatalf("loot: %v", err)
	}
	w.Remove(2)
	if _, err := s.Step(0.016); !errors.Is(err, view.ErrInvalidOther) {
		t.Fatalf("expected ErrInvalidOther, got %v", err)
	}
	if s.View().State() != view.StateDisabled {
		t.Fatalf("expected view disabled, got %s", s.View().State())
	}
}
