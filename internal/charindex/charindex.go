// Package charindex builds and serves the codepoint → display-name table
// the search engine filters. The table is populated once from a character
// source, ordered by codepoint, and never mutated afterward; swapping the
// font source means building a fresh Index and replacing the old one
// wholesale.
package charindex

import (
	"sort"
	"unicode"
)

// Character is one entry from a character source: a codepoint and, when
// the source knows one, a raw glyph name.
type Character struct {
	Rune    rune
	RawName string
}

// Source enumerates the characters a font family can display. The index
// builder tolerates duplicates and unordered input.
type Source interface {
	Characters() ([]Character, error)
}

// Record pairs a codepoint with its resolved display name.
type Record struct {
	Rune rune   `json:"codepoint"`
	Name string `json:"name"`
}

// Index is the full character table, ordered by codepoint ascending.
type Index struct {
	records []Record
	names   map[rune]string
}

// Build consumes a source enumeration and resolves a display name for
// every surviving codepoint. Whitespace and ASCII control characters are
// filtered out. Name resolution never fails: it falls through curated
// names, standard Unicode names, glyph-list names, and finally a
// synthesized "U+XXXX" placeholder, so Build only errors when the source
// itself does.
func Build(src Source) (*Index, error) {
	chars, err := src.Characters()
	if err != nil {
		return nil, err
	}

	names := make(map[rune]string, len(chars))
	for _, ch := range chars {
		if unicode.IsSpace(ch.Rune) || isASCIIControl(ch.Rune) {
			continue
		}
		if _, ok := names[ch.Rune]; ok {
			continue
		}
		names[ch.Rune] = DisplayName(ch.Rune, ch.RawName)
	}

	records := make([]Record, 0, len(names))
	for r, name := range names {
		records = append(records, Record{Rune: r, Name: name})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Rune < records[j].Rune })

	return &Index{records: records, names: names}, nil
}

// Get returns the display name for r.
func (idx *Index) Get(r rune) (string, bool) {
	name, ok := idx.names[r]
	return name, ok
}

// Contains reports whether r is a member of the index.
func (idx *Index) Contains(r rune) bool {
	_, ok := idx.names[r]
	return ok
}

// All returns the full table in codepoint-ascending order. The slice is
// shared; callers must not mutate it.
func (idx *Index) All() []Record { return idx.records }

// Len returns the number of records.
func (idx *Index) Len() int { return len(idx.records) }

func isASCIIControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}
