package parser

import (
	"fmt"
	"strings"
)

const maxOfferedOptions = 5

// Parser turns console lines such as "take broad sword" or "show weapons"
// into intents, resolving item and container names against the current
// panels.
type Parser struct {
	table *commandTable
}

func New() *Parser {
	return &Parser{table: newCommandTable(defaultCommands)}
}

// RegisterCommand adds a verb or replaces one of the same name.
func (p *Parser) RegisterCommand(c CommandDef) {
	p.table.add(c)
}

// Commands lists the known verbs by name.
func (p *Parser) Commands() []CommandDef {
	return p.table.list()
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	in := Intent{Raw: raw, Normalised: normaliseInput(raw), Kind: Unknown}
	if in.Normalised == "" {
		in.Clarify = &Question{Prompt: "Enter a command."}
		return in
	}
	if guess, ok := readFreeText(ctx, in); ok {
		return guess
	}

	tokens := tokenise(in.Normalised)
	verb, runnerUp := p.table.matchVerb(tokens)
	if verb.verb == "" || verb.score < 0.5 {
		in.Clarify = &Question{Prompt: "Unknown command. Try " + p.table.verbs() + "."}
		return in
	}
	if runnerUp != nil && runnerUp.words == verb.words && verb.score-runnerUp.score < tieMargin && runnerUp.score > 0.65 {
		in.Clarify = &Question{Prompt: "Did you mean:", Options: []Intent{
			verbOnly(raw, verb),
			verbOnly(raw, *runnerUp),
		}}
		return in
	}

	def := p.table.defs[verb.verb]
	in.Verb = def.Canonical
	in.Kind = commandKind(in.Verb)
	in.Confidence = clampScore(verb.score)

	rest := tokens[verb.words:]
	if def.Pool.holdsItems() {
		rest, in.Quantity = splitQuantity(rest)
	}
	args, question, argScore := resolveArgs(ctx, def, rest)
	if question != nil {
		in.Clarify = question
		in.Confidence = 0.45
		return in
	}
	if len(args) > 0 {
		in.Args = args
		in.Confidence = clampScore(0.75*in.Confidence + 0.25*argScore)
	}

	switch {
	case len(in.Args) < def.MinArgs:
		if options := offerPool(ctx, def); len(options) > 0 {
			in.Clarify = &Question{Prompt: fmt.Sprintf("What should I %s?", def.Canonical), Options: options}
			in.Confidence = 0.46
		} else {
			in.Clarify = &Question{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
			in.Confidence = 0.42
		}
		return in
	case def.MaxArgs > 0 && len(in.Args) > def.MaxArgs:
		in.Args = in.Args[:def.MaxArgs:def.MaxArgs]
		in.Confidence = clampScore(in.Confidence - 0.05)
	}
	if in.Confidence < 0.52 {
		in.Clarify = &Question{Prompt: "Not sure what you meant. Please rephrase."}
	}
	return in
}

func verbOnly(raw string, m verbMatch) Intent {
	return Intent{Raw: raw, Normalised: m.verb, Kind: commandKind(m.verb), Verb: m.verb, Confidence: m.score}
}

// splitQuantity pulls the first count word out of tokens.
func splitQuantity(tokens []string) ([]string, *Quantity) {
	for i, tok := range tokens {
		if q := parseQuantityToken(tok); q != nil {
			rest := append(append([]string(nil), tokens[:i]...), tokens[i+1:]...)
			return rest, q
		}
	}
	return tokens, nil
}

// resolveArgs reads the whole argument phrase as one name when the verb
// has a pool, otherwise as a single free-text argument.
func resolveArgs(ctx ParseContext, def CommandDef, tokens []string) ([]string, *Question, float64) {
	if len(tokens) == 0 {
		return nil, nil, 0.9
	}
	phrase := strings.Join(tokens, " ")
	if def.Pool == PoolNone {
		return []string{phrase}, nil, 0.9
	}
	if len(tokens) == 1 && isPronoun(tokens[0]) {
		last := normaliseInput(ctx.LastItem)
		if last == "" {
			return nil, &Question{Prompt: "What does that refer to?"}, 0.4
		}
		return []string{last}, nil, 0.82
	}

	ranked := rankNames(phrase, foldAll(def.Pool.names(ctx)))
	switch {
	case len(ranked) == 0:
		return []string{phrase}, nil, 0.6
	case tied(ranked):
		q := &Question{Prompt: fmt.Sprintf("Which one should I %s?", def.Canonical)}
		for i, m := range ranked[:2] {
			q.Options = append(q.Options, Intent{
				Kind:       commandKind(def.Canonical),
				Verb:       def.Canonical,
				Args:       []string{m.name},
				Confidence: ranked[0].score - 0.01*float64(i),
			})
		}
		return nil, q, 0.52
	}
	return []string{ranked[0].name}, nil, ranked[0].score
}

// offerPool suggests the command applied to the first names of its pool.
func offerPool(ctx ParseContext, def CommandDef) []Intent {
	names := foldAll(def.Pool.names(ctx))
	var out []Intent
	for _, name := range names[:min(len(names), maxOfferedOptions)] {
		out = append(out, Intent{Kind: commandKind(def.Canonical), Verb: def.Canonical, Args: []string{name}, Confidence: 0.88})
	}
	return out
}

// CommandLine spells the intent back as a console line.
func (in Intent) CommandLine() string {
	verb := normaliseInput(in.Verb)
	if verb == "" {
		return ""
	}
	words := []string{verb}
	if in.Quantity != nil && in.Quantity.Raw != "" {
		words = append(words, normaliseInput(in.Quantity.Raw))
	}
	for _, a := range in.Args {
		if n := normaliseInput(a); n != "" {
			words = append(words, n)
		}
	}
	return strings.Join(words, " ")
}
