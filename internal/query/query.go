// Package query classifies raw search input into literal-character,
// codepoint-notation, or free-text queries. Parse failures are never
// errors: anything that does not resolve falls through to free text.
package query

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/virtualritz/glyphana/internal/charindex"
	"github.com/virtualritz/glyphana/internal/classify"
)

// Kind discriminates the parse outcome.
type Kind int

const (
	// FreeText queries run the substring / fuzzy filter pipeline.
	FreeText Kind = iota
	// Literal is a single non-alphabetic character present in the index.
	Literal
	// Codepoint is a numeric notation (u+hex, 0xhex, bare hex or decimal)
	// resolving to an in-index character.
	Codepoint
	// Block is the "show me this block" convenience: a single
	// non-alphabetic character outside the index whose containing Unicode
	// block is known.
	Block
)

// Parsed is the classified query.
type Parsed struct {
	Kind  Kind
	Rune  rune           // valid for Literal and Codepoint
	Block classify.Block // valid for Block
	Text  string         // the raw query, always set
}

// Parse classifies text against the given index.
//
// A single-character query is checked first and takes precedence, with
// one deliberate exclusion: single alphabetic characters do not
// short-circuit, so case-insensitive substring search over names still
// applies to letters. Codepoint notation is tried next, decimal before
// bare hex so "65" reads as decimal sixty-five rather than 0x65. Anything
// unresolvable is free text.
func Parse(text string, idx *charindex.Index) Parsed {
	if r, ok := singleRune(text); ok && !unicode.IsLetter(r) {
		if idx.Contains(r) {
			return Parsed{Kind: Literal, Rune: r, Text: text}
		}
		if b, ok := classify.FindBlock(r); ok {
			return Parsed{Kind: Block, Block: b, Text: text}
		}
		return Parsed{Kind: FreeText, Text: text}
	}

	if r, ok := parseNotation(text, idx); ok {
		return Parsed{Kind: Codepoint, Rune: r, Text: text}
	}

	return Parsed{Kind: FreeText, Text: text}
}

func singleRune(text string) (rune, bool) {
	if text == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(text)
	if size != len(text) || r == utf8.RuneError && size == 1 {
		return 0, false
	}
	return r, true
}

// ResolveNotation parses the numeric notations without consulting any
// index, for callers that address arbitrary codepoints rather than search
// one repertoire. Same precedence as searching: u+hex, 0xhex, decimal,
// then bare hex up to six digits.
func ResolveNotation(text string) (rune, bool) {
	return parseNotation(text, nil)
}

// parseNotation tries the numeric notations in precedence order. Every
// failure (bad digits, out-of-range value, surrogate, codepoint not in
// the index) just declines; it never errors. A nil index accepts every
// valid codepoint.
func parseNotation(text string, idx *charindex.Index) (rune, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(text))

	if hex, ok := strings.CutPrefix(cleaned, "u+"); ok {
		return resolve(hex, 16, idx)
	}
	if hex, ok := strings.CutPrefix(cleaned, "0x"); ok {
		return resolve(hex, 16, idx)
	}
	if isASCIIDigits(cleaned) {
		if r, ok := resolve(cleaned, 10, idx); ok {
			return r, true
		}
	}
	if isHexDigits(cleaned) && len(cleaned) <= 6 {
		return resolve(cleaned, 16, idx)
	}
	return 0, false
}

func resolve(digits string, base int, idx *charindex.Index) (rune, bool) {
	if digits == "" {
		return 0, false
	}
	code, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, false
	}
	r := rune(code)
	if code > unicode.MaxRune || !utf8.ValidRune(r) {
		return 0, false
	}
	if idx != nil && !idx.Contains(r) {
		return 0, false
	}
	return r, true
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f'
}
