package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appengine-ltd/invview/internal/inventory"
	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/logging"
)

const worldFormatVersion = 1

var (
	ErrUnknownEntity = errors.New("unknown entity")
	ErrUnknownItem   = errors.New("item not in inventory")
	ErrNotUsable     = errors.New("item cannot be used")
)

// Entity is anything that owns an inventory: the player, a chest, a corpse.
type Entity struct {
	ID    item.EntityID `json:"id"`
	Name  string        `json:"name"`
	Items []item.Item   `json:"items,omitempty"`
}

type worldFile struct {
	FormatVersion int           `json:"format_version"`
	Player        item.EntityID `json:"player"`
	Entities      []Entity      `json:"entities"`
}

// World is a small in-memory item database serving the inventory view and
// applying the intents it emits. It is not safe for concurrent use.
type World struct {
	player     item.EntityID
	entities   map[item.EntityID]*Entity
	nextSymbol item.Symbol
	policy     *inventory.Policy
	log        *logging.Logger
}

// NewWorld builds a world from entities. Missing symbols are assigned and
// duplicate symbols are rejected.
func NewWorld(player item.EntityID, entities []Entity, policy *inventory.Policy, log *logging.Logger) (*World, error) {
	if policy == nil {
		policy = inventory.NewPolicy(nil)
	}
	if log == nil {
		log = logging.Discard()
	}
	w := &World{
		player:   player,
		entities: make(map[item.EntityID]*Entity, len(entities)),
		policy:   policy,
		log:      log,
	}
	seen := map[item.Symbol]item.EntityID{}
	for _, e := range entities {
		if e.ID == item.NoEntity {
			return nil, fmt.Errorf("entity %q: id must be non-zero", e.Name)
		}
		if _, dup := w.entities[e.ID]; dup {
			return nil, fmt.Errorf("entity %d: duplicate id", e.ID)
		}
		for _, it := range e.Items {
			if it.Symbol == 0 {
				continue
			}
			if it.Symbol == item.NoSymbol {
				return nil, fmt.Errorf("entity %d: item %s uses a reserved symbol", e.ID, it.Instance)
			}
			if owner, dup := seen[it.Symbol]; dup {
				return nil, fmt.Errorf("symbol %d held by entities %d and %d", it.Symbol, owner, e.ID)
			}
			seen[it.Symbol] = e.ID
			w.nextSymbol = max(w.nextSymbol, it.Symbol)
		}
		ent := e
		ent.Items = append([]item.Item(nil), e.Items...)
		w.entities[e.ID] = &ent
	}
	if _, ok := w.entities[player]; !ok {
		return nil, fmt.Errorf("%w: player %d", ErrUnknownEntity, player)
	}
	for _, id := range w.EntityIDs() {
		ent := w.entities[id]
		for i := range ent.Items {
			normalizeItem(&ent.Items[i])
			if ent.Items[i].Symbol == 0 {
				ent.Items[i].Symbol = w.newSymbol()
			}
		}
	}
	return w, nil
}

// LoadWorld reads a world file.
func LoadWorld(path string, policy *inventory.Policy, log *logging.Logger) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world: %w", err)
	}
	w, err := ParseWorld(data, policy, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

func ParseWorld(data []byte, policy *inventory.Policy, log *logging.Logger) (*World, error) {
	var f worldFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse world: %w", err)
	}
	if f.FormatVersion > worldFormatVersion {
		return nil, fmt.Errorf("world format_version %d is newer than supported %d", f.FormatVersion, worldFormatVersion)
	}
	return NewWorld(f.Player, f.Entities, policy, log)
}

// Save writes the world with entities ordered by id.
func (w *World) Save(path string) error {
	payload := worldFile{FormatVersion: worldFormatVersion, Player: w.player}
	for _, id := range w.EntityIDs() {
		payload.Entities = append(payload.Entities, *w.entities[id])
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o600)
}

func (w *World) Player() item.EntityID { return w.player }

// EntityIDs lists every entity in ascending id order.
func (w *World) EntityIDs() []item.EntityID {
	ids := make([]item.EntityID, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Containers lists every entity but the player in ascending id order.
func (w *World) Containers() []item.EntityID {
	ids := w.EntityIDs()
	out := ids[:0]
	for _, id := range ids {
		if id != w.player {
			out = append(out, id)
		}
	}
	return out
}

// Policy is the sort policy the world classifies items with.
func (w *World) Policy() *inventory.Policy { return w.policy }

func (w *World) Entity(id item.EntityID) (Entity, bool) {
	e, ok := w.entities[id]
	if !ok {
		return Entity{}, false
	}
	out := *e
	out.Items = append([]item.Item(nil), e.Items...)
	return out, true
}

// Name returns an entity's display name, or its id when it has none.
func (w *World) Name(id item.EntityID) string {
	if e, ok := w.entities[id]; ok && strings.TrimSpace(e.Name) != "" {
		return e.Name
	}
	return fmt.Sprintf("entity %d", id)
}

func (w *World) Exists(owner item.EntityID) bool {
	_, ok := w.entities[owner]
	return ok
}

// Items returns a copy of an owner's inventory in storage order.
func (w *World) Items(owner item.EntityID) ([]item.Item, error) {
	e, ok := w.entities[owner]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntity, owner)
	}
	return append([]item.Item(nil), e.Items...), nil
}

// Remove deletes an entity, as when a container is destroyed.
func (w *World) Remove(id item.EntityID) bool {
	if id == w.player {
		return false
	}
	if _, ok := w.entities[id]; !ok {
		return false
	}
	delete(w.entities, id)
	w.log.Info("world: entity %d removed", id)
	return true
}

func (w *World) newSymbol() item.Symbol {
	w.nextSymbol++
	return w.nextSymbol
}

func normalizeItem(it *item.Item) {
	it.Instance = strings.TrimSpace(it.Instance)
	it.Category = it.Category.Normalize()
	if it.Count <= 0 {
		it.Count = 1
	}
	if it.Bounds.Largest() <= 0 {
		it.Bounds = item.Bounds{
			Min: item.Vec3{X: -0.5, Y: -0.5, Z: -0.5},
			Max: item.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		}
	}
}
