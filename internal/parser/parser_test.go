package parser

import "testing"

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  INVENTRY  ", want: "inventry"},
		{in: "pick-up   STIC!!", want: "pick up stic"},
		{in: "Hunter's_Pack", want: "hunter s pack"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestAliasInvMapsToInventory(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "inv")
	if intent.Verb != "inventory" || intent.Kind != Query {
		t.Fatalf("expected inventory query, got %q kind=%v", intent.Verb, intent.Kind)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestTypoInventryMapsToInventory(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "inventry")
	if intent.Verb != "inventory" {
		t.Fatalf("expected inventory verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestTakeResolvesAgainstOtherPanel(t *testing.T) {
	p := New()
	ctx := ParseContext{
		Own:   []string{"Stone"},
		Other: []string{"Stick", "Stone"},
	}
	intent := p.Parse(ctx, "pick up stic")
	if intent.Verb != "take" {
		t.Fatalf("expected take verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "stick" {
		t.Fatalf("expected first arg stick, got %+v", intent.Args)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestAmbiguousItemReturnsClarify(t *testing.T) {
	p := New()
	ctx := ParseContext{Own: []string{"Short Sword", "Broad Sword", "Bread"}}
	intent := p.Parse(ctx, "drop sword")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for two swords")
	}
	if len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected two options, got %+v", intent.Clarify.Options)
	}
	for _, opt := range intent.Clarify.Options {
		if opt.Verb != "drop" || len(opt.Args) != 1 {
			t.Fatalf("unexpected option %+v", opt)
		}
	}
}

func TestMissingArgumentOffersPool(t *testing.T) {
	p := New()
	ctx := ParseContext{Containers: []string{"Chest 1", "Barrel 2"}}
	intent := p.Parse(ctx, "loot")
	if intent.Clarify == nil || len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected container options, got %+v", intent.Clarify)
	}
	if intent.Clarify.Options[0].Args[0] != "chest 1" {
		t.Fatalf("expected options in pool order, got %+v", intent.Clarify.Options)
	}
}

func TestLongerAliasWins(t *testing.T) {
	p := New()
	ctx := ParseContext{Own: []string{"Arrow", "Bread"}}

	split := p.Parse(ctx, "drop one arrow")
	if split.Verb != "split" || split.Clarify != nil {
		t.Fatalf("expected split without clarify, got %q %+v", split.Verb, split.Clarify)
	}
	if len(split.Args) != 1 || split.Args[0] != "arrow" {
		t.Fatalf("expected arrow arg, got %+v", split.Args)
	}

	clear := p.Parse(ctx, "show all")
	if clear.Verb != "clear" {
		t.Fatalf("expected clear, got %q", clear.Verb)
	}
}

func TestQuantityIsSplitFromName(t *testing.T) {
	p := New()
	ctx := ParseContext{Own: []string{"Arrow"}}
	intent := p.Parse(ctx, "drop 12 arrow")
	if intent.Quantity == nil || intent.Quantity.N != 12 {
		t.Fatalf("expected quantity 12, got %+v", intent.Quantity)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "arrow" {
		t.Fatalf("expected arrow arg, got %+v", intent.Args)
	}
	if got := intent.CommandLine(); got != "drop 12 arrow" {
		t.Fatalf("unexpected command string %q", got)
	}
}

func TestQuantityWordsAndNumberedNames(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{Own: []string{"Arrow"}}, "drop two arrow")
	if intent.Quantity == nil || intent.Quantity.N != 2 {
		t.Fatalf("expected quantity 2, got %+v", intent.Quantity)
	}

	loot := p.Parse(ParseContext{Containers: []string{"Chest 1", "Barrel 2"}}, "loot chest 1")
	if loot.Quantity != nil {
		t.Fatalf("container names keep their numbers, got quantity %+v", loot.Quantity)
	}
	if len(loot.Args) != 1 || loot.Args[0] != "chest 1" {
		t.Fatalf("expected chest 1, got %+v", loot.Args)
	}
}

func TestPronounUsesLastItem(t *testing.T) {
	p := New()
	ctx := ParseContext{Own: []string{"Bread"}, LastItem: "Bread"}
	intent := p.Parse(ctx, "eat it")
	if intent.Verb != "use" || len(intent.Args) != 1 || intent.Args[0] != "bread" {
		t.Fatalf("expected use bread, got %q %+v", intent.Verb, intent.Args)
	}

	noRef := p.Parse(ParseContext{}, "eat it")
	if noRef.Clarify == nil {
		t.Fatalf("expected clarify without a previous item")
	}
}

func TestFindKeepsFreeText(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "look for healing potion")
	if intent.Verb != "find" || len(intent.Args) != 1 || intent.Args[0] != "healing potion" {
		t.Fatalf("expected find with one phrase, got %q %+v", intent.Verb, intent.Args)
	}
}

func TestFreeTextFallbacks(t *testing.T) {
	p := New()
	if got := p.Parse(ParseContext{}, "what do I have?"); got.Verb != "inventory" {
		t.Fatalf("expected inventory, got %q", got.Verb)
	}
	if got := p.Parse(ParseContext{}, "I need something for healing"); got.Verb != "find" || len(got.Args) != 1 || got.Args[0] != "healing" {
		t.Fatalf("expected find healing, got %q %+v", got.Verb, got.Args)
	}
	unknown := p.Parse(ParseContext{}, "xyzzy plugh")
	if unknown.Kind != Unknown || unknown.Clarify == nil {
		t.Fatalf("expected unknown with clarify, got %+v", unknown)
	}
}

func TestRegisterCommandExtendsVerbs(t *testing.T) {
	p := New()
	p.RegisterCommand(CommandDef{Canonical: "sort", Aliases: []string{"tidy"}})
	if got := p.Parse(ParseContext{}, "tidy"); got.Verb != "sort" {
		t.Fatalf("expected sort, got %q", got.Verb)
	}
}
