package game

import (
	"fmt"

	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/view"
)

// Apply carries out one intent from the inventory view. The view sees the
// result on its next update.
func (w *World) Apply(intent view.Intent) error {
	var err error
	switch intent.Kind {
	case view.IntentUse:
		err = w.use(intent.From, intent.Symbol)
	case view.IntentDrop:
		_, err = w.take(intent.From, intent.Symbol, 0)
	case view.IntentAlternate:
		_, err = w.take(intent.From, intent.Symbol, 1)
	case view.IntentTake, view.IntentPut:
		err = w.transfer(intent.From, intent.To, intent.Symbol)
	default:
		err = fmt.Errorf("unsupported intent %s", intent.Kind)
	}
	if err != nil {
		w.log.Verbose("world: %s rejected: %v", intent, err)
		return err
	}
	w.log.Verbose("world: applied %s", intent)
	return nil
}

// ApplyAll applies intents in order and returns the failures.
func (w *World) ApplyAll(intents []view.Intent) []error {
	var errs []error
	for _, intent := range intents {
		if err := w.Apply(intent); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (w *World) find(owner item.EntityID, sym item.Symbol) (*Entity, int, error) {
	e, ok := w.entities[owner]
	if !ok {
		return nil, -1, fmt.Errorf("%w: %d", ErrUnknownEntity, owner)
	}
	for i := range e.Items {
		if e.Items[i].Symbol == sym {
			return e, i, nil
		}
	}
	return nil, -1, fmt.Errorf("%w: symbol %d in entity %d", ErrUnknownItem, sym, owner)
}

// take removes qty units of a stack from owner, the whole stack when qty
// is 0, and returns what was removed.
func (w *World) take(owner item.EntityID, sym item.Symbol, qty int) (item.Item, error) {
	e, idx, err := w.find(owner, sym)
	if err != nil {
		return item.Item{}, err
	}
	stack := e.Items[idx]
	if qty <= 0 || qty >= stack.Count {
		e.Items = append(e.Items[:idx], e.Items[idx+1:]...)
		return stack, nil
	}
	e.Items[idx].Count -= qty
	part := stack
	part.Count = qty
	part.Symbol = w.newSymbol()
	return part, nil
}

func (w *World) transfer(from, to item.EntityID, sym item.Symbol) error {
	dst, ok := w.entities[to]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEntity, to)
	}
	if from == to {
		return fmt.Errorf("transfer of symbol %d onto its own owner %d", sym, from)
	}
	moved, err := w.take(from, sym, 0)
	if err != nil {
		return err
	}
	moved.Flags &^= item.FlagEquipped
	dst.Items = addOrMerge(dst.Items, moved)
	return nil
}

// addOrMerge folds plain stacks of the same instance together. Flagged
// items always keep their own slot.
func addOrMerge(items []item.Item, it item.Item) []item.Item {
	if it.Flags == 0 && it.Instance != "" {
		for i := range items {
			if items[i].Instance == it.Instance && items[i].Flags == 0 {
				items[i].Count += it.Count
				return items
			}
		}
	}
	return append(items, it)
}

func (w *World) use(owner item.EntityID, sym item.Symbol) error {
	if owner != w.player {
		return fmt.Errorf("%w: only the player uses items", ErrNotUsable)
	}
	e, idx, err := w.find(owner, sym)
	if err != nil {
		return err
	}
	it := e.Items[idx]
	cat := w.policy.Classify(it)
	switch cat {
	case item.CategoryPotion, item.CategoryFood, item.CategoryPlant:
		_, err := w.take(owner, sym, 1)
		return err
	case item.CategoryMeleeWeapon, item.CategoryRangedWeapon, item.CategoryArmor,
		item.CategoryAmulet, item.CategoryBelt, item.CategoryLight, item.CategoryRing:
		if it.Flags.Has(item.FlagBroken) {
			return fmt.Errorf("%w: %s is broken", ErrNotUsable, it.DisplayName())
		}
		if it.Equipped() {
			e.Items[idx].Flags &^= item.FlagEquipped
			return nil
		}
		// One equipped item per category, rings excepted.
		if cat != item.CategoryRing {
			for i := range e.Items {
				if i != idx && e.Items[i].Equipped() && w.policy.Classify(e.Items[i]) == cat {
					e.Items[i].Flags &^= item.FlagEquipped
				}
			}
		}
		e.Items[idx].Flags |= item.FlagEquipped
		return nil
	default:
		return fmt.Errorf("%w: %s (%s)", ErrNotUsable, it.DisplayName(), cat)
	}
}
