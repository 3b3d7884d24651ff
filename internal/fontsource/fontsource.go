// Package fontsource provides the character-enumeration collaborators the
// index builder consumes: either the full set of assigned Unicode
// characters, or the subset a concrete system font can display.
package fontsource

import (
	"os"
	"unicode"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/sfnt"

	"github.com/virtualritz/glyphana/internal/charindex"
	"github.com/virtualritz/glyphana/internal/errors"
)

// categoryKeys are the disjoint top-level general categories whose union
// forms the assigned, displayable character repertoire.
var categoryKeys = []string{"L", "M", "N", "P", "S", "Z"}

// AssignedSource enumerates every assigned Unicode character from the
// standard library's category range tables. It is the font-independent
// default source.
type AssignedSource struct{}

// Characters returns the assigned repertoire in codepoint order.
func (AssignedSource) Characters() ([]charindex.Character, error) {
	var chars []charindex.Character
	for _, key := range categoryKeys {
		visitRangeTable(unicode.Categories[key], func(r rune) {
			chars = append(chars, charindex.Character{Rune: r})
		})
	}
	return chars, nil
}

// visitRangeTable walks every rune of a range table in table order.
func visitRangeTable(rt *unicode.RangeTable, visit func(rune)) {
	if rt == nil {
		return
	}
	for _, r16 := range rt.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			visit(r)
		}
	}
	for _, r32 := range rt.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			visit(r)
		}
	}
}

// FontSource enumerates the characters a system font family can display.
// The font file is located by family name, parsed, and its character map
// probed over the assigned repertoire: a character is displayable when
// the font maps it to a real glyph.
type FontSource struct {
	Family string
}

// Characters implements charindex.Source.
func (s FontSource) Characters() ([]charindex.Character, error) {
	path, err := findfont.Find(s.Family)
	if err != nil {
		return nil, errors.NewFontUnavailable(s.Family, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewFontUnavailable(s.Family, err)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.NewFontUnavailable(s.Family, err)
	}

	candidates, _ := AssignedSource{}.Characters()
	var buf sfnt.Buffer
	chars := make([]charindex.Character, 0, len(candidates)/4)
	for _, c := range candidates {
		gi, err := f.GlyphIndex(&buf, c.Rune)
		if err != nil || gi == 0 {
			continue
		}
		chars = append(chars, c)
	}
	return chars, nil
}
