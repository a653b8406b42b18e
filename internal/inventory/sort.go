package inventory

import (
	"sort"
	"strings"

	"github.com/appengine-ltd/invview/internal/item"
)

// Bucket is the coarse display group of an item. Lower buckets sort first.
type Bucket int

const (
	BucketQuest Bucket = iota
	BucketMeleeWeapon
	BucketRangedWeapon
	BucketArmor
	BucketMagic
	BucketJewelry
	BucketConsumable
	BucketDocument
	BucketValuable
	BucketMisc
)

var bucketNames = map[Bucket]string{
	BucketQuest:        "quest",
	BucketMeleeWeapon:  "melee",
	BucketRangedWeapon: "ranged",
	BucketArmor:        "armor",
	BucketMagic:        "magic",
	BucketJewelry:      "jewelry",
	BucketConsumable:   "consumable",
	BucketDocument:     "document",
	BucketValuable:     "valuable",
	BucketMisc:         "misc",
}

func (b Bucket) String() string {
	if name, ok := bucketNames[b]; ok {
		return name
	}
	return "misc"
}

// ParseBucket accepts the names printed by Bucket.String.
func ParseBucket(s string) (Bucket, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for b, name := range bucketNames {
		if name == s {
			return b, true
		}
	}
	return BucketMisc, false
}

var categoryBuckets = map[item.Category]Bucket{
	item.CategoryMeleeWeapon:  BucketMeleeWeapon,
	item.CategoryRangedWeapon: BucketRangedWeapon,
	item.CategoryAmmunition:   BucketRangedWeapon,
	item.CategoryArmor:        BucketArmor,
	item.CategoryRune:         BucketMagic,
	item.CategoryScroll:       BucketMagic,
	item.CategoryAmulet:       BucketJewelry,
	item.CategoryRing:         BucketJewelry,
	item.CategoryBelt:         BucketJewelry,
	item.CategoryPotion:       BucketConsumable,
	item.CategoryFood:         BucketConsumable,
	item.CategoryPlant:        BucketConsumable,
	item.CategoryWritten:      BucketDocument,
	item.CategoryKey:          BucketDocument,
	item.CategoryValuable:     BucketValuable,
	item.CategoryTrophy:       BucketMisc,
	item.CategoryLight:        BucketMisc,
	item.CategoryMisc:         BucketMisc,
}

// Policy owns item classification and the display order.
type Policy struct {
	table *CategoryTable
}

func NewPolicy(table *CategoryTable) *Policy {
	if table == nil {
		table = DefaultCategoryTable()
	}
	return &Policy{table: table}
}

// Classify prefers the item's own category and falls back to the table.
// Anything unresolved is misc.
func (p *Policy) Classify(it item.Item) item.Category {
	if c := it.Category.Normalize(); c != "" {
		return c
	}
	if c, ok := p.table.Lookup(it.Instance); ok {
		return c
	}
	return item.CategoryMisc
}

// PrimarySortValue maps an item to its bucket. Quest items always lead,
// whatever their category.
func (p *Policy) PrimarySortValue(it item.Item) int {
	return int(p.Bucket(it))
}

func (p *Policy) Bucket(it item.Item) Bucket {
	if it.Quest() {
		return BucketQuest
	}
	if b, ok := categoryBuckets[p.Classify(it)]; ok {
		return b
	}
	return BucketMisc
}

// secondaryKey is the in-bucket rank; larger sorts earlier.
func secondaryKey(b Bucket, it item.Item) int {
	switch b {
	case BucketMeleeWeapon, BucketRangedWeapon:
		return it.Damage
	case BucketArmor:
		return it.Protection
	default:
		return it.Value
	}
}

// Less is a strict total order over items with distinct symbols: bucket,
// then the bucket's stat descending, then name, instance and symbol.
func (p *Policy) Less(l, r item.Item) bool {
	lb, rb := p.Bucket(l), p.Bucket(r)
	if lb != rb {
		return lb < rb
	}
	if lk, rk := secondaryKey(lb, l), secondaryKey(rb, r); lk != rk {
		return lk > rk
	}
	if ln, rn := l.DisplayName(), r.DisplayName(); ln != rn {
		return ln < rn
	}
	if l.Instance != r.Instance {
		return l.Instance < r.Instance
	}
	return l.Symbol < r.Symbol
}

// Sort orders an index view over items in place.
func (p *Policy) Sort(items []item.Item, indices []int) {
	sort.SliceStable(indices, func(i, j int) bool {
		return p.Less(items[indices[i]], items[indices[j]])
	})
}

// View returns the sorted and filtered index view of items.
func (p *Policy) View(items []item.Item, f Filter) []int {
	indices := make([]int, 0, len(items))
	for i := range items {
		if f.Match(p, items[i]) {
			indices = append(indices, i)
		}
	}
	p.Sort(items, indices)
	return indices
}
