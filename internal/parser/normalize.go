package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// Console input and item names are compared after folding: lower case,
// letters and digits only, one space between words.
func normaliseInput(raw string) string {
	return strings.Join(tokenise(raw), " ")
}

// Normalise folds raw the way console input is folded before matching.
func Normalise(raw string) string {
	return normaliseInput(raw)
}

func tokenise(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

var quantityWords = map[string]int{
	"all": -1, "every": -1,
	"a": 1, "an": 1, "one": 1,
	"two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// parseQuantityToken reads "all", a number word, "12" or "x12". N is -1
// for all.
func parseQuantityToken(token string) *Quantity {
	token = strings.ToLower(strings.TrimSpace(token))
	if n, ok := quantityWords[token]; ok {
		return &Quantity{Raw: token, N: n}
	}
	digits := strings.TrimPrefix(token, "x")
	if n, err := strconv.Atoi(digits); err == nil && n > 0 {
		return &Quantity{Raw: digits, N: n}
	}
	return nil
}

var pronouns = map[string]bool{"it": true, "that": true, "this": true, "them": true, "those": true, "these": true}

func isPronoun(token string) bool {
	return pronouns[strings.ToLower(strings.TrimSpace(token))]
}
