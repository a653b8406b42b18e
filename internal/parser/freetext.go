package parser

import "strings"

// Whole phrases recognised anywhere in a line before verb matching.
var (
	inventoryPhrases = []string{"what do i have", "what have i got", "my inventory", "check my bag", "check bag"}
	closePhrases     = []string{"never mind", "im done", "i m done", "close it"}
	containerPhrases = []string{"whats inside", "what s inside", "whats in"}
)

// Leads that turn the rest of the line into a name search, and the filler
// words dropped after them: "i need something for healing" finds healing.
var (
	searchLeads   = []string{"i need", "i want", "where is", "where are", "do i have"}
	searchFillers = []string{"something for", "something", "some", "a", "an", "my", "the"}
)

// readFreeText reads conversational lines the verb table cannot.
func readFreeText(ctx ParseContext, in Intent) (Intent, bool) {
	line := in.Normalised
	answer := func(kind IntentKind, verb string, args []string, confidence float64) (Intent, bool) {
		in.Kind, in.Verb, in.Args, in.Confidence = kind, verb, args, clampScore(confidence)
		return in, true
	}

	switch {
	case hasAnyPhrase(line, inventoryPhrases):
		return answer(Query, "inventory", nil, 0.92)
	case hasAnyPhrase(line, closePhrases):
		return answer(Command, "close", nil, 0.86)
	}
	if rest, ok := afterLead(line); ok {
		return answer(Query, "find", []string{rest}, 0.78)
	}
	if len(ctx.Containers) > 0 && hasAnyPhrase(line, containerPhrases) {
		words := strings.Fields(line)
		ranked := rankNames(words[len(words)-1], foldAll(ctx.Containers))
		if len(ranked) > 0 && !tied(ranked) {
			return answer(Command, "loot", []string{ranked[0].name}, ranked[0].score)
		}
	}
	return in, false
}

func afterLead(line string) (string, bool) {
	for _, lead := range searchLeads {
		rest, ok := strings.CutPrefix(line, lead+" ")
		if !ok {
			continue
		}
		for _, filler := range searchFillers {
			rest = strings.TrimPrefix(rest, filler+" ")
		}
		return rest, rest != ""
	}
	return "", false
}

func hasAnyPhrase(line string, phrases []string) bool {
	for _, p := range phrases {
		if hasPhrase(line, p) {
			return true
		}
	}
	return false
}

// hasPhrase matches whole words of phrase inside the folded line.
func hasPhrase(line, phrase string) bool {
	p := normaliseInput(phrase)
	return p != "" && strings.Contains(" "+line+" ", " "+p+" ")
}
