package fontsource

import (
	"testing"
	"unicode"
)

func TestAssignedSourceCoversCommonCharacters(t *testing.T) {
	chars, err := AssignedSource{}.Characters()
	if err != nil {
		t.Fatalf("Characters failed: %v", err)
	}
	if len(chars) < 10000 {
		t.Fatalf("len = %d, want tens of thousands", len(chars))
	}
	seen := make(map[rune]bool, len(chars))
	for _, c := range chars {
		seen[c.Rune] = true
	}
	for _, r := range []rune{'A', 'z', '0', 'α', 'Я', '€', '∑', 0x1F600} {
		if !seen[r] {
			t.Errorf("assigned repertoire missing %q", r)
		}
	}
}

func TestAssignedSourceExcludesSurrogatesAndUnassigned(t *testing.T) {
	chars, err := AssignedSource{}.Characters()
	if err != nil {
		t.Fatalf("Characters failed: %v", err)
	}
	for _, c := range chars {
		if c.Rune >= 0xD800 && c.Rune <= 0xDFFF {
			t.Fatalf("repertoire contains surrogate %#x", c.Rune)
		}
		if unicode.Is(unicode.Cc, c.Rune) {
			t.Fatalf("repertoire contains control %#x", c.Rune)
		}
	}
}

func TestVisitRangeTableNil(t *testing.T) {
	called := false
	visitRangeTable(nil, func(rune) { called = true })
	if called {
		t.Error("visit called for nil table")
	}
}

func TestFontSourceMissingFamily(t *testing.T) {
	_, err := FontSource{Family: "no-such-font-family-exists.ttf"}.Characters()
	if err == nil {
		t.Skip("a font matching the probe name exists on this system")
	}
}
