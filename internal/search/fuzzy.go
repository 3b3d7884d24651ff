package search

import (
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"
)

// maxEditDistance bounds how far a name word may drift from a query term
// and still count as a match.
const maxEditDistance = 2

// shortTermLimit is the length below which fuzzy distance degenerates
// into noise; shorter terms and words must match exactly (or by prefix,
// when that mode is on).
const shortTermLimit = 3

// EditDistance is the default Levenshtein distance (unit costs).
func EditDistance(a, b string) int {
	return smetrics.WagnerFischer(a, b, 1, 1, 1)
}

// nameMatchesTerms reports whether the record name satisfies every query
// term: each term must occur as a substring of the full name or sit
// within the edit-distance bound of some whitespace-delimited name word.
func (e *Engine) nameMatchesTerms(name string, params Params) bool {
	if !params.CaseSensitive {
		name = strings.ToLower(name)
	}
	words := strings.Fields(name)

	for _, term := range params.terms {
		if strings.Contains(name, term) {
			continue
		}
		matched := false
		for _, word := range words {
			if e.termMatchesWord(term, word, params) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// termMatchesWord applies the fuzzy rules for one term/word pair.
func (e *Engine) termMatchesWord(term, word string, params Params) bool {
	if utf8.RuneCountInString(term) < shortTermLimit || utf8.RuneCountInString(word) < shortTermLimit {
		if params.PrefixShortTerms {
			return strings.HasPrefix(word, term)
		}
		return word == term
	}

	// In case-sensitive mode a pair differing only by case is a case
	// mismatch, not a near-miss; the literal path is where case-folded
	// equality belongs.
	if params.CaseSensitive && word != term && strings.EqualFold(word, term) {
		return false
	}

	return e.editDistance(word, term) <= maxEditDistance
}
