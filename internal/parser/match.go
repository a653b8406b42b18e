package parser

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Scores shared by verb and name matching.
const (
	scoreExact    = 1.0
	scorePrefix   = 0.9
	scoreWord     = 0.85
	scoreTypo     = 0.72
	scorePerEdit  = 0.08
	tieMargin     = 0.05
	tieFloor      = 0.6
	minPrefixLen  = 2
	minTypoPhrase = 3
)

// editBudget is how many edits a word of length n may carry and still
// count as a typo of it.
func editBudget(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	}
	return 3
}

// typoScore rates typed against want by edit distance.
func typoScore(typed, want string) (float64, bool) {
	d := levenshtein.ComputeDistance(typed, want)
	if d > editBudget(len(want)) {
		return 0, false
	}
	return scoreTypo - scorePerEdit*float64(d), true
}

type nameMatch struct {
	name  string
	score float64
}

// rankNames scores every folded name against the folded query, best
// first. Names that are not even a typo of the query are left out.
func rankNames(query string, names []string) []nameMatch {
	if query == "" {
		return nil
	}
	var out []nameMatch
	for _, name := range names {
		m := nameMatch{name: name}
		switch {
		case name == query:
			m.score = scoreExact
		case len(query) >= minPrefixLen && len(name) > len(query) && name[:len(query)] == query:
			m.score = scorePrefix
		case hasPhrase(name, query):
			m.score = scoreWord
		default:
			s, ok := typoScore(query, name)
			if !ok {
				continue
			}
			m.score = s
		}
		m.score = clampScore(m.score)
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].name < out[j].name
	})
	return out
}

// tied reports whether the two best matches are too close to pick one.
func tied(ms []nameMatch) bool {
	return len(ms) > 1 && ms[0].score-ms[1].score < tieMargin && ms[1].score > tieFloor
}

// foldAll folds and dedupes names, keeping first-seen order.
func foldAll(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, v := range names {
		n := normaliseInput(v)
		if n != "" && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

func clampScore(v float64) float64 {
	return min(max(v, 0), 1)
}
