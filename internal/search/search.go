// Package search implements the multi-strategy query dispatch over the
// character index: exact-lookup short-circuits, optional category
// pre-filtering, and fuzzy-name or substring-plus-confusable filtering.
// The engine never mutates the index; every search is a fresh filter pass
// over the cached table, cheap enough to run per keystroke.
package search

import (
	"strings"

	"github.com/virtualritz/glyphana/internal/charindex"
	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/query"
)

// Params carries one search request. Terms are tokenized once at
// construction so the per-record loops never re-split the query.
type Params struct {
	Text           string
	CaseSensitive  bool
	SearchName     bool
	OnlyCategories bool
	// PrefixShortTerms lets query terms shorter than three characters
	// match by word prefix instead of requiring exact word equality.
	PrefixShortTerms bool

	terms []string
}

// NewParams tokenizes text on whitespace and case-folds the terms unless
// the search is case-sensitive.
func NewParams(text string, caseSensitive, searchName, onlyCategories bool) Params {
	p := Params{
		Text:           text,
		CaseSensitive:  caseSensitive,
		SearchName:     searchName,
		OnlyCategories: onlyCategories,
	}
	p.terms = strings.Fields(text)
	if !caseSensitive {
		for i, t := range p.terms {
			p.terms[i] = strings.ToLower(t)
		}
	}
	return p
}

// Terms returns the tokenized query terms.
func (p Params) Terms() []string { return p.terms }

// Engine evaluates search requests. The confusable predicate and edit
// distance are pure external capabilities; both are injectable and
// default to the skeleton comparison and Levenshtein distance.
type Engine struct {
	confusable   func(a, b rune) bool
	editDistance func(a, b string) int
}

// NewEngine creates an engine with the default capabilities.
func NewEngine() *Engine {
	return &Engine{
		confusable:   SkeletonConfusable,
		editDistance: EditDistance,
	}
}

// NewEngineWith creates an engine with explicit capabilities; nil
// arguments fall back to the defaults.
func NewEngineWith(confusable func(a, b rune) bool, editDistance func(a, b string) int) *Engine {
	e := NewEngine()
	if confusable != nil {
		e.confusable = confusable
	}
	if editDistance != nil {
		e.editDistance = editDistance
	}
	return e
}

// Search runs the ordered dispatch and returns the matching records in
// codepoint-ascending order (the index's own order; no re-sort happens).
// selectedID names the active Named category for the category
// restriction; zero, or an id the registry does not know, falls back to
// the unrestricted index rather than an empty result.
//
// Exact lookup beats everything: a literal character or codepoint
// notation that resolves in-index returns immediately, bypassing the
// category restriction and all text filters.
func (e *Engine) Search(params Params, idx *charindex.Index, reg *classify.Registry, selectedID classify.CategoryID) []charindex.Record {
	if params.Text == "" {
		return append([]charindex.Record(nil), idx.All()...)
	}

	parsed := query.Parse(params.Text, idx)
	switch parsed.Kind {
	case query.Literal, query.Codepoint:
		name, _ := idx.Get(parsed.Rune)
		return []charindex.Record{{Rune: parsed.Rune, Name: name}}
	case query.Block:
		return filterRecords(idx.All(), parsed.Block.Contains)
	}

	candidates := idx.All()
	if params.OnlyCategories {
		if cat, ok := reg.ByID(selectedID); ok {
			candidates = filterRecords(candidates, cat.Classifier().Contains)
		}
	}

	if params.SearchName && len(params.terms) > 0 {
		return filterRecords2(candidates, func(rec charindex.Record) bool {
			return e.nameMatchesTerms(rec.Name, params)
		})
	}
	return filterRecords2(candidates, func(rec charindex.Record) bool {
		return e.charOrNameMatches(rec, params)
	})
}

// charOrNameMatches is the non-fuzzy path: the record passes when its
// character occurs in the query string, its name contains the query
// (name search only), or its character is visually confusable with some
// query character.
func (e *Engine) charOrNameMatches(rec charindex.Record, params Params) bool {
	text := params.Text
	chr := string(rec.Rune)
	name := rec.Name
	if !params.CaseSensitive {
		text = strings.ToLower(text)
		chr = strings.ToLower(chr)
		name = strings.ToLower(name)
	}

	if strings.Contains(text, chr) {
		return true
	}
	if params.SearchName && strings.Contains(name, text) {
		return true
	}
	for _, qr := range params.Text {
		if e.confusable(rec.Rune, qr) {
			return true
		}
	}
	return false
}

func filterRecords(records []charindex.Record, keep func(rune) bool) []charindex.Record {
	out := make([]charindex.Record, 0, len(records))
	for _, rec := range records {
		if keep(rec.Rune) {
			out = append(out, rec)
		}
	}
	return out
}

func filterRecords2(records []charindex.Record, keep func(charindex.Record) bool) []charindex.Record {
	out := make([]charindex.Record, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
