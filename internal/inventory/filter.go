package inventory

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/invview/internal/item"
)

// Filter narrows a panel. The zero value keeps every item.
type Filter struct {
	Buckets []Bucket
	Query   string
}

func (f Filter) Active() bool {
	return len(f.Buckets) > 0 || strings.TrimSpace(f.Query) != ""
}

func (f Filter) Match(p *Policy, it item.Item) bool {
	if len(f.Buckets) > 0 {
		b := p.Bucket(it)
		found := false
		for _, want := range f.Buckets {
			if want == b {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return MatchName(f.Query, it.DisplayName())
}

// MatchName reports whether every query word appears in name, either as a
// substring or as a close typo of one of the name's words.
func MatchName(query, name string) bool {
	qWords := strings.Fields(strings.ToLower(query))
	if len(qWords) == 0 {
		return true
	}
	lowered := strings.ToLower(name)
	nWords := strings.FieldsFunc(lowered, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '\''
	})
	for _, q := range qWords {
		if strings.Contains(lowered, q) {
			continue
		}
		if len(q) < 3 || !fuzzyWordMatch(q, nWords) {
			return false
		}
	}
	return true
}

func fuzzyWordMatch(q string, words []string) bool {
	for _, w := range words {
		cand := w
		// Compare against the word's head so "swo" style prefixes with a
		// typo still land.
		if len(cand) > len(q)+1 {
			cand = cand[:len(q)+1]
		}
		if levenshtein.ComputeDistance(q, cand) <= typoLimit(len(w)) {
			return true
		}
	}
	return false
}

func typoLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
