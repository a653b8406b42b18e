package inventory

import (
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/appengine-ltd/invview/internal/item"
)

func testItems() []item.Item {
	return []item.Item{
		{Symbol: 1, Instance: "ItMw_1H_Sword_01", Name: "Rusty Sword", Damage: 10},
		{Symbol: 2, Instance: "ItMw_1H_Axe_01", Name: "Axe", Damage: 20},
		{Symbol: 3, Instance: "ItWr_Letter", Name: "Letter", Flags: item.FlagQuest},
		{Symbol: 4, Instance: "ItPo_Health_01", Name: "Essence of Healing", Value: 25},
		{Symbol: 5, Instance: "ItPo_Health_02", Name: "Extract of Healing", Value: 50},
		{Symbol: 6, Instance: "ItAr_Leather_L", Name: "Leather Armor", Protection: 25},
		{Symbol: 7, Instance: "ItMi_Gold", Name: "Gold", Value: 1, Count: 120},
		{Symbol: 8, Instance: "Something_Odd", Name: "Odd Thing"},
		{Symbol: 9, Instance: "ItRw_Bow_L_01", Name: "Short Bow", Damage: 15},
		{Symbol: 10, Instance: "ItMw_1H_Sword_01", Name: "Rusty Sword", Damage: 10},
	}
}

func sortedSymbols(p *Policy, items []item.Item) []item.Symbol {
	return item.Symbols(items, p.View(items, Filter{}))
}

func TestSortScenarioQuestThenBetterWeapon(t *testing.T) {
	items := []item.Item{
		{Symbol: 1, Name: "A", Category: item.CategoryMeleeWeapon, Damage: 10},
		{Symbol: 2, Name: "B", Category: item.CategoryMeleeWeapon, Damage: 20},
		{Symbol: 3, Name: "C", Flags: item.FlagQuest},
	}
	got := sortedSymbols(NewPolicy(nil), items)
	want := []item.Symbol{3, 2, 1}
	if !slices.Equal(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}

func TestSortIsDeterministicAcrossInputOrders(t *testing.T) {
	p := NewPolicy(nil)
	base := testItems()
	want := sortedSymbols(p, base)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		shuffled := slices.Clone(base)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if got := sortedSymbols(p, shuffled); !slices.Equal(got, want) {
			t.Fatalf("shuffle %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestLessIsStrictForDistinctSymbols(t *testing.T) {
	p := NewPolicy(nil)
	items := testItems()
	for _, l := range items {
		if p.Less(l, l) {
			t.Fatalf("item %d compared less than itself", l.Symbol)
		}
		for _, r := range items {
			if l.Symbol == r.Symbol {
				continue
			}
			if p.Less(l, r) == p.Less(r, l) {
				t.Fatalf("items %d and %d are not strictly ordered", l.Symbol, r.Symbol)
			}
		}
	}
}

func TestBucketOrder(t *testing.T) {
	p := NewPolicy(nil)
	got := sortedSymbols(p, testItems())
	// quest, melee (20 before 10, equal swords by symbol), ranged, armor,
	// potions by value, gold, misc
	want := []item.Symbol{3, 2, 1, 10, 9, 6, 5, 4, 7, 8}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUnknownCategoryFallsIntoMisc(t *testing.T) {
	p := NewPolicy(nil)
	odd := item.Item{Symbol: 1, Instance: "Zz_Unknown", Category: "made_up"}
	if b := p.Bucket(odd); b != BucketMisc {
		t.Fatalf("expected misc bucket, got %v", b)
	}
	if b := p.Bucket(item.Item{Instance: "nothing"}); b != BucketMisc {
		t.Fatalf("expected misc bucket for unclassified instance, got %v", b)
	}
}

func TestCategoryTableLongestPrefixWins(t *testing.T) {
	table := DefaultCategoryTable()
	cases := []struct {
		instance string
		want     item.Category
	}{
		{"ItRw_Arrow", item.CategoryAmmunition},
		{"ItRw_Crossbow_M_01", item.CategoryRangedWeapon},
		{"itmi_gold", item.CategoryValuable},
		{"ItMi_Hammer", item.CategoryMisc},
		{"ItBE_Addon_Leather_01", item.CategoryBelt},
		{"ItSc_Firebolt", item.CategoryScroll},
	}
	for _, tc := range cases {
		got, ok := table.Lookup(tc.instance)
		if !ok || got != tc.want {
			t.Fatalf("%s: expected %q, got %q (ok=%v)", tc.instance, tc.want, got, ok)
		}
	}
	if _, ok := table.Lookup("Unknown_Thing"); ok {
		t.Fatalf("expected no match for unknown instance")
	}
}

func TestLoadCategoryTableFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	data := []byte("format_version: 1\nprefixes:\n  Xx: rune\ninstances:\n  Xx_Special: valuable\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write table: %v", err)
	}
	table, err := LoadCategoryTable(path)
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	if c, _ := table.Lookup("Xx_Other"); c != item.CategoryRune {
		t.Fatalf("expected rune for prefix match, got %q", c)
	}
	if c, _ := table.Lookup("Xx_Special"); c != item.CategoryValuable {
		t.Fatalf("expected exact match to win, got %q", c)
	}

	missing, err := LoadCategoryTable(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to default: %v", err)
	}
	if missing.Len() == 0 {
		t.Fatalf("expected default table for missing file")
	}

	if err := os.WriteFile(path, []byte("format_version: 9\n"), 0o600); err != nil {
		t.Fatalf("write table: %v", err)
	}
	if _, err := LoadCategoryTable(path); err == nil {
		t.Fatalf("expected error for unsupported format version")
	}
}

func TestFilterKeepsOrderAndMatchesTypos(t *testing.T) {
	p := NewPolicy(nil)
	items := testItems()

	got := item.Symbols(items, p.View(items, Filter{Query: "healing"}))
	if !slices.Equal(got, []item.Symbol{5, 4}) {
		t.Fatalf("expected potions by value, got %v", got)
	}

	got = item.Symbols(items, p.View(items, Filter{Query: "swrod"}))
	if !slices.Equal(got, []item.Symbol{1, 10}) {
		t.Fatalf("expected typo to match swords, got %v", got)
	}

	got = item.Symbols(items, p.View(items, Filter{Buckets: []Bucket{BucketMeleeWeapon, BucketRangedWeapon}}))
	if !slices.Equal(got, []item.Symbol{2, 1, 10, 9}) {
		t.Fatalf("expected weapons only, got %v", got)
	}

	if got := p.View(items, Filter{Query: "zzzz"}); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestMatchNameShortWordsNeedSubstring(t *testing.T) {
	if MatchName("ax", "Short Bow") {
		t.Fatalf("short query should not fuzzy match")
	}
	if !MatchName("ax", "Axe") {
		t.Fatalf("short query should match as substring")
	}
	if !MatchName("", "anything") {
		t.Fatalf("empty query should match everything")
	}
}

func TestPrimarySortValueFollowsBucketOrder(t *testing.T) {
	p := NewPolicy(nil)
	items := testItems()
	letter, axe, bow, armor, potion, gold, odd := items[2], items[1], items[8], items[5], items[3], items[6], items[7]

	ordered := []item.Item{letter, axe, bow, armor, potion, gold, odd}
	for i := 1; i < len(ordered); i++ {
		prev, cur := p.PrimarySortValue(ordered[i-1]), p.PrimarySortValue(ordered[i])
		if prev >= cur {
			t.Fatalf("expected %s (%d) before %s (%d)", ordered[i-1].Name, prev, ordered[i].Name, cur)
		}
	}
	if got := p.PrimarySortValue(odd); got != int(BucketMisc) {
		t.Fatalf("expected unknown instance in misc, got %d", got)
	}

	questAxe := axe
	questAxe.Flags |= item.FlagQuest
	if got := p.PrimarySortValue(questAxe); got != int(BucketQuest) {
		t.Fatalf("expected quest flag to win over category, got %d", got)
	}
}
