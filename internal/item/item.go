package item

import (
	"fmt"
	"math"
	"strings"
)

// Symbol identifies one item instance. It survives resorting and list
// rebuilds, so the cursor anchors on it instead of an index.
type Symbol uint64

// NoSymbol marks "nothing selected".
const NoSymbol Symbol = math.MaxUint64

// EntityID identifies an inventory owner (the player, a corpse, a chest).
type EntityID uint32

// NoEntity means no second panel is paired with the player inventory.
const NoEntity EntityID = 0

type Category string

const (
	CategoryMeleeWeapon  Category = "melee_weapon"
	CategoryRangedWeapon Category = "ranged_weapon"
	CategoryAmmunition   Category = "ammunition"
	CategoryArmor        Category = "armor"
	CategoryRune         Category = "rune"
	CategoryScroll       Category = "scroll"
	CategoryAmulet       Category = "amulet"
	CategoryRing         Category = "ring"
	CategoryBelt         Category = "belt"
	CategoryPotion       Category = "potion"
	CategoryFood         Category = "food"
	CategoryPlant        Category = "plant"
	CategoryWritten      Category = "written"
	CategoryKey          Category = "key"
	CategoryValuable     Category = "valuable"
	CategoryTrophy       Category = "trophy"
	CategoryLight        Category = "light"
	CategoryMisc         Category = "misc"
)

func (c Category) Normalize() Category {
	return Category(strings.ToLower(strings.TrimSpace(string(c))))
}

type Flags uint8

const (
	FlagEquipped Flags = 1 << iota
	FlagQuest
	FlagBroken
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

// Vec3 is a plain float triple so item data stays free of renderer types.
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Bounds is the axis aligned bounding box of the item's mesh, in mesh units.
type Bounds struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

func (b Bounds) Size() Vec3 {
	return Vec3{
		X: float32(math.Abs(float64(b.Max.X - b.Min.X))),
		Y: float32(math.Abs(float64(b.Max.Y - b.Min.Y))),
		Z: float32(math.Abs(float64(b.Max.Z - b.Min.Z))),
	}
}

func (b Bounds) Center() Vec3 {
	return Vec3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Largest returns the biggest extent of the box; zero for a degenerate box.
func (b Bounds) Largest() float32 {
	s := b.Size()
	return max(s.X, s.Y, s.Z)
}

// Item is read-only here. It is owned by whatever world or database serves
// the inventories.
type Item struct {
	Symbol      Symbol   `json:"symbol"`
	Instance    string   `json:"instance"`
	Name        string   `json:"name"`
	Category    Category `json:"category,omitempty"`
	Flags       Flags    `json:"flags,omitempty"`
	Value       int      `json:"value,omitempty"`
	WeightKg    float64  `json:"weight_kg,omitempty"`
	Damage      int      `json:"damage,omitempty"`
	Protection  int      `json:"protection,omitempty"`
	Count       int      `json:"count,omitempty"`
	Bounds      Bounds   `json:"bounds"`
	InvRotation Vec3     `json:"inv_rotation,omitempty"` // degrees
	InvZBias    float32  `json:"inv_zbias,omitempty"`
	Description []string `json:"description,omitempty"`
}

func (it Item) Equipped() bool { return it.Flags.Has(FlagEquipped) }

func (it Item) Quest() bool { return it.Flags.Has(FlagQuest) }

// DisplayName falls back to the instance name when the item has no name.
func (it Item) DisplayName() string {
	if name := strings.TrimSpace(it.Name); name != "" {
		return name
	}
	return it.Instance
}

// Label is the slot caption: the name plus a stack count when there is one.
func (it Item) Label() string {
	if it.Count > 1 {
		return fmt.Sprintf("%s x%d", it.DisplayName(), it.Count)
	}
	return it.DisplayName()
}

// InfoLines are the tooltip rows shown for the selected item.
func (it Item) InfoLines() []string {
	lines := []string{it.Label()}
	if it.Damage > 0 {
		lines = append(lines, fmt.Sprintf("Damage: %d", it.Damage))
	}
	if it.Protection > 0 {
		lines = append(lines, fmt.Sprintf("Protection: %d", it.Protection))
	}
	if it.WeightKg > 0 {
		lines = append(lines, fmt.Sprintf("Weight: %.1fkg", it.WeightKg))
	}
	if it.Value > 0 {
		lines = append(lines, fmt.Sprintf("Value: %d", it.Value))
	}
	if it.Flags.Has(FlagBroken) {
		lines = append(lines, "Broken")
	}
	if it.Quest() {
		lines = append(lines, "Quest item")
	}
	lines = append(lines, it.Description...)
	return lines
}

// Symbols extracts the symbols of items picked by indices, in order.
func Symbols(items []Item, indices []int) []Symbol {
	out := make([]Symbol, len(indices))
	for i, idx := range indices {
		out[i] = items[idx].Symbol
	}
	return out
}
