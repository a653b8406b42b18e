package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

// Quantity is a count typed next to an item, e.g. "drop 1 arrow". N is -1
// for "all".
type Quantity struct {
	Raw string
	N   int
}

// Intent is one parsed console line. A non-nil Clarify means the line
// could not be acted on as typed.
type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *Question
}

// Question asks the user to rephrase, optionally offering complete
// commands to pick from.
type Question struct {
	Prompt  string
	Options []Intent
}

// ParseContext lists the names the console can resolve arguments against.
type ParseContext struct {
	Own        []string // items in the player's panel
	Other      []string // items in the paired panel
	Containers []string // lootable entities
	Buckets    []string // sort groups for "show"
	LastItem   string   // target of the previous command, for "it"
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	// Pool names the ParseContext list the argument resolves against.
	Pool Pool
}

type Pool int

const (
	PoolNone Pool = iota
	PoolOwn
	PoolOther
	PoolContainers
	PoolBuckets
)

func (p Pool) names(ctx ParseContext) []string {
	switch p {
	case PoolOwn:
		return ctx.Own
	case PoolOther:
		return ctx.Other
	case PoolContainers:
		return ctx.Containers
	case PoolBuckets:
		return ctx.Buckets
	}
	return nil
}

// holdsItems reports whether a count may precede the name.
func (p Pool) holdsItems() bool { return p == PoolOwn || p == PoolOther }
