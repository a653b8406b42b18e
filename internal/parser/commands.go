package parser

import (
	"sort"
	"strings"
)

var defaultCommands = []CommandDef{
	{Canonical: "help", Aliases: []string{"h", "commands", "?"}},
	{Canonical: "inventory", Aliases: []string{"inv", "bag", "i", "open bag"}},
	{Canonical: "close", Aliases: []string{"exit", "done", "close bag"}},
	{Canonical: "loot", Aliases: []string{"search", "open"}, MinArgs: 1, MaxArgs: 1, Pool: PoolContainers},
	{Canonical: "take", Aliases: []string{"get", "grab", "pick up", "pickup"}, MinArgs: 1, MaxArgs: 1, Pool: PoolOther},
	{Canonical: "put", Aliases: []string{"store", "stash", "give"}, MinArgs: 1, MaxArgs: 1, Pool: PoolOwn},
	{Canonical: "drop", Aliases: []string{"discard", "throw away"}, MinArgs: 1, MaxArgs: 1, Pool: PoolOwn},
	{Canonical: "use", Aliases: []string{"equip", "wear", "eat", "drink", "apply", "unequip"}, MinArgs: 1, MaxArgs: 1, Pool: PoolOwn},
	{Canonical: "split", Aliases: []string{"drop one"}, MinArgs: 1, MaxArgs: 1, Pool: PoolOwn},
	{Canonical: "find", Aliases: []string{"filter", "look for"}, MinArgs: 1, MaxArgs: 4},
	{Canonical: "show", Aliases: []string{"only", "list"}, MinArgs: 1, MaxArgs: 1, Pool: PoolBuckets},
	{Canonical: "clear", Aliases: []string{"reset", "show all"}},
	{Canonical: "switch", Aliases: []string{"tab", "other side"}},
}

// verbForm is one way of typing a verb: its name or an alias, folded and
// split into words.
type verbForm struct {
	verb  string
	text  string
	words []string
	alias bool
}

type verbMatch struct {
	verb  string
	words int // input tokens the form covers
	score float64
}

type commandTable struct {
	defs  map[string]CommandDef
	forms []verbForm
}

func newCommandTable(defs []CommandDef) *commandTable {
	t := &commandTable{defs: map[string]CommandDef{}}
	for _, d := range defs {
		t.add(d)
	}
	return t
}

// add registers d, replacing a command of the same name.
func (t *commandTable) add(d CommandDef) {
	d.Canonical = normaliseInput(d.Canonical)
	if d.Canonical == "" {
		return
	}
	if _, ok := t.defs[d.Canonical]; ok {
		kept := t.forms[:0]
		for _, f := range t.forms {
			if f.verb != d.Canonical {
				kept = append(kept, f)
			}
		}
		t.forms = kept
	}
	t.defs[d.Canonical] = d
	t.forms = append(t.forms, verbForm{verb: d.Canonical, text: d.Canonical, words: tokenise(d.Canonical)})
	for _, a := range d.Aliases {
		if words := tokenise(a); len(words) > 0 {
			t.forms = append(t.forms, verbForm{verb: d.Canonical, text: strings.Join(words, " "), words: words, alias: true})
		}
	}
}

func (t *commandTable) list() []CommandDef {
	out := make([]CommandDef, 0, len(t.defs))
	for _, d := range t.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Canonical < out[j].Canonical })
	return out
}

func (t *commandTable) verbs() string {
	var names []string
	for _, d := range t.list() {
		names = append(names, d.Canonical)
	}
	return strings.Join(names, ", ")
}

// score rates how well the leading tokens spell f. A whole multi-word
// alias outranks a shorter form, so "drop one" beats "drop".
func (f verbForm) score(tokens []string) (verbMatch, bool) {
	n := min(len(tokens), len(f.words))
	typed := strings.Join(tokens[:n], " ")
	m := verbMatch{verb: f.verb, words: n}

	if n == len(f.words) && typed == f.text {
		m.score = scoreExact
		if f.alias {
			m.score = 0.97
		}
		m.score += 0.05 * float64(n-1)
		return m, true
	}
	if len(f.words) == 1 && len(tokens[0]) >= minPrefixLen && strings.HasPrefix(f.text, tokens[0]) {
		m.words = 1
		m.score = scorePrefix
		return m, true
	}
	if len(typed) < minTypoPhrase {
		return m, false
	}
	s, ok := typoScore(typed, f.text)
	if !ok {
		return m, false
	}
	if f.alias {
		s += 0.03
	}
	m.score = s
	return m, true
}

// matchVerb returns the best reading of tokens and the best reading with
// a different verb, if any.
func (t *commandTable) matchVerb(tokens []string) (best verbMatch, runnerUp *verbMatch) {
	if len(tokens) == 0 {
		return verbMatch{}, nil
	}
	var all []verbMatch
	for _, f := range t.forms {
		if m, ok := f.score(tokens); ok {
			all = append(all, m)
		}
	}
	if len(all) == 0 {
		return verbMatch{}, nil
	}
	sort.SliceStable(all, func(i, j int) bool {
		switch {
		case all[i].score != all[j].score:
			return all[i].score > all[j].score
		case all[i].words != all[j].words:
			return all[i].words > all[j].words
		}
		return all[i].verb < all[j].verb
	})
	for i := 1; i < len(all); i++ {
		if all[i].verb != all[0].verb {
			return all[0], &all[i]
		}
	}
	return all[0], nil
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "find", "show", "clear", "inventory":
		return Query
	}
	return Command
}
