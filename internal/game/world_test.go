package game

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/view"
)

const testWorldJSON = `{
  "format_version": 1,
  "player": 1,
  "entities": [
    {"id": 1, "name": "Hero", "items": [
      {"symbol": 10, "instance": "ItMw_ShortSword01", "name": "Short Sword", "damage": 18, "flags": 1},
      {"symbol": 11, "instance": "ItMw_Schwert", "name": "Broad Sword", "damage": 40},
      {"symbol": 12, "instance": "ItPo_Health_01", "name": "Essence of Healing", "count": 3},
      {"instance": "ItMi_Gold", "name": "Gold", "count": 50},
      {"symbol": 13, "instance": "ItWr_Letter_01", "name": "Sealed Letter"}
    ]},
    {"id": 2, "name": "Chest", "items": [
      {"symbol": 20, "instance": "ItMi_Gold", "name": "Gold", "count": 25},
      {"instance": "ItFo_Bread", "name": "Bread"}
    ]}
  ]
}`

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := ParseWorld([]byte(testWorldJSON), nil, nil)
	if err != nil {
		t.Fatalf("parse world: %v", err)
	}
	return w
}

func findItem(t *testing.T, w *World, owner item.EntityID, instance string) (item.Item, bool) {
	t.Helper()
	items, err := w.Items(owner)
	if err != nil {
		t.Fatalf("items of %d: %v", owner, err)
	}
	for _, it := range items {
		if it.Instance == instance {
			return it, true
		}
	}
	return item.Item{}, false
}

func TestParseWorldAssignsMissingSymbols(t *testing.T) {
	w := newTestWorld(t)
	gold, ok := findItem(t, w, 1, "ItMi_Gold")
	if !ok || gold.Symbol != 21 {
		t.Fatalf("expected player gold to get symbol 21, got %+v", gold)
	}
	bread, ok := findItem(t, w, 2, "ItFo_Bread")
	if !ok || bread.Symbol != 22 || bread.Count != 1 {
		t.Fatalf("expected bread symbol 22 count 1, got %+v", bread)
	}
	if bread.Bounds.Largest() <= 0 {
		t.Fatalf("expected default bounds for bread")
	}
}

func TestParseWorldRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"duplicate symbol": `{"format_version":1,"player":1,"entities":[{"id":1,"items":[{"symbol":5},{"symbol":5}]}]}`,
		"missing player":   `{"format_version":1,"player":3,"entities":[{"id":1}]}`,
		"zero id":          `{"format_version":1,"player":1,"entities":[{"id":1},{"id":0}]}`,
		"newer format":     `{"format_version":9,"player":1,"entities":[{"id":1}]}`,
		"not json":         `{`,
	}
	for name, data := range cases {
		if _, err := ParseWorld([]byte(data), nil, nil); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	w := newTestWorld(t)
	items, _ := w.Items(1)
	items[0].Name = "changed"
	again, _ := w.Items(1)
	if again[0].Name == "changed" {
		t.Fatalf("expected Items to return a copy")
	}
	if _, err := w.Items(99); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("expected ErrUnknownEntity, got %v", err)
	}
}

func TestTakeMergesPlainStacks(t *testing.T) {
	w := newTestWorld(t)
	if err := w.Apply(view.Intent{Kind: view.IntentTake, Symbol: 20, From: 2, To: 1}); err != nil {
		t.Fatalf("take: %v", err)
	}
	gold, _ := findItem(t, w, 1, "ItMi_Gold")
	if gold.Count != 75 || gold.Symbol != 21 {
		t.Fatalf("expected merged 75 gold under symbol 21, got %+v", gold)
	}
	if _, ok := findItem(t, w, 2, "ItMi_Gold"); ok {
		t.Fatalf("expected gold gone from chest")
	}
}

func TestPutClearsEquippedFlag(t *testing.T) {
	w := newTestWorld(t)
	if err := w.Apply(view.Intent{Kind: view.IntentPut, Symbol: 10, From: 1, To: 2}); err != nil {
		t.Fatalf("put: %v", err)
	}
	sword, ok := findItem(t, w, 2, "ItMw_ShortSword01")
	if !ok || sword.Equipped() || sword.Symbol != 10 {
		t.Fatalf("expected unequipped sword with its symbol in chest, got %+v", sword)
	}
}

func TestTransferErrors(t *testing.T) {
	w := newTestWorld(t)
	if err := w.Apply(view.Intent{Kind: view.IntentTake, Symbol: 999, From: 2, To: 1}); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if err := w.Apply(view.Intent{Kind: view.IntentPut, Symbol: 11, From: 1, To: 42}); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("expected ErrUnknownEntity, got %v", err)
	}
	if _, ok := findItem(t, w, 1, "ItMw_Schwert"); !ok {
		t.Fatalf("failed transfer must not lose the item")
	}
}

func TestUseEquipsAndConsumes(t *testing.T) {
	w := newTestWorld(t)
	if err := w.Apply(view.Intent{Kind: view.IntentUse, Symbol: 11, From: 1}); err != nil {
		t.Fatalf("equip: %v", err)
	}
	broad, _ := findItem(t, w, 1, "ItMw_Schwert")
	short, _ := findItem(t, w, 1, "ItMw_ShortSword01")
	if !broad.Equipped() || short.Equipped() {
		t.Fatalf("expected broad sword to replace short sword, got %v/%v", broad.Equipped(), short.Equipped())
	}

	if err := w.Apply(view.Intent{Kind: view.IntentUse, Symbol: 12, From: 1}); err != nil {
		t.Fatalf("drink: %v", err)
	}
	potion, _ := findItem(t, w, 1, "ItPo_Health_01")
	if potion.Count != 2 {
		t.Fatalf("expected 2 potions left, got %d", potion.Count)
	}

	if err := w.Apply(view.Intent{Kind: view.IntentUse, Symbol: 13, From: 1}); !errors.Is(err, ErrNotUsable) {
		t.Fatalf("expected ErrNotUsable for a letter, got %v", err)
	}
	if err := w.Apply(view.Intent{Kind: view.IntentUse, Symbol: 20, From: 2}); !errors.Is(err, ErrNotUsable) {
		t.Fatalf("expected ErrNotUsable outside the player, got %v", err)
	}
}

func TestDropAndAlternate(t *testing.T) {
	w := newTestWorld(t)
	if err := w.Apply(view.Intent{Kind: view.IntentAlternate, Symbol: 12, From: 1}); err != nil {
		t.Fatalf("alternate: %v", err)
	}
	potion, _ := findItem(t, w, 1, "ItPo_Health_01")
	if potion.Count != 2 || potion.Symbol != 12 {
		t.Fatalf("expected one unit removed from the stack, got %+v", potion)
	}
	if err := w.Apply(view.Intent{Kind: view.IntentDrop, Symbol: 12, From: 1}); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, ok := findItem(t, w, 1, "ItPo_Health_01"); ok {
		t.Fatalf("expected whole stack dropped")
	}
}

func TestApplyAllCollectsFailures(t *testing.T) {
	w := newTestWorld(t)
	errs := w.ApplyAll([]view.Intent{
		{Kind: view.IntentDrop, Symbol: 13, From: 1},
		{Kind: view.IntentDrop, Symbol: 13, From: 1},
	})
	if len(errs) != 1 {
		t.Fatalf("expected one failure, got %v", errs)
	}
}

func TestRemoveEntity(t *testing.T) {
	w := newTestWorld(t)
	if w.Remove(1) {
		t.Fatalf("player must not be removable")
	}
	if !w.Remove(2) || w.Exists(2) {
		t.Fatalf("expected chest removed")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	w := newTestWorld(t)
	path := filepath.Join(t.TempDir(), "nested", "world.json")
	if err := w.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadWorld(path, nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Player() != 1 || loaded.Name(2) != "Chest" {
		t.Fatalf("unexpected loaded world player=%d name=%q", loaded.Player(), loaded.Name(2))
	}
	items, _ := loaded.Items(1)
	if len(items) != 5 {
		t.Fatalf("expected 5 player items, got %d", len(items))
	}
}

func TestSampleWorldLoads(t *testing.T) {
	w, err := LoadWorld(filepath.Join("..", "..", "world.json"), nil, nil)
	if err != nil {
		t.Fatalf("load sample world: %v", err)
	}
	if w.Name(w.Player()) != "Hero" || len(w.Containers()) != 2 {
		t.Fatalf("expected Hero and two containers, got %q/%v", w.Name(w.Player()), w.Containers())
	}
	if _, ok := findItem(t, w, 2, "ItMi_Gold"); !ok {
		t.Fatalf("expected gold in the chest")
	}
}
