package ops

import (
	"testing"

	"github.com/virtualritz/glyphana/internal/charindex"
	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/config"
	"github.com/virtualritz/glyphana/internal/db"
	"github.com/virtualritz/glyphana/internal/errors"
	"github.com/virtualritz/glyphana/internal/search"
)

type runeSource []rune

func (s runeSource) Characters() ([]charindex.Character, error) {
	chars := make([]charindex.Character, len(s))
	for i, r := range s {
		chars[i] = charindex.Character{Rune: r}
	}
	return chars, nil
}

// testEnv builds a small but representative environment: a handful of
// Latin, Greek, currency and arrow characters over the default category
// registry, backed by a throwaway database.
func testEnv(t *testing.T) *Env {
	t.Helper()

	idx, err := charindex.Build(runeSource{
		'A', 'a', 'B', 'α', '€', 0x2010, 0x2190, 0x2192, 0x1D6C2,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return &Env{
		Index:    idx,
		Registry: classify.DefaultRegistry(),
		Engine:   search.NewEngine(),
		DB:       database,
		Config:   config.DefaultConfig(),
	}
}

func TestResolveChar(t *testing.T) {
	env := testEnv(t)

	tests := []struct {
		in   string
		want rune
	}{
		{"€", '€'},
		{"U+0041", 'A'},
		{"0x2190", 0x2190},
		{"65", 'A'},
		// Resolution is not limited to the index
		{"U+1F600", 0x1F600},
	}
	for _, tt := range tests {
		got, err := ResolveChar(env, tt.in)
		if err != nil {
			t.Errorf("ResolveChar(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveChar(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveChar_Invalid(t *testing.T) {
	env := testEnv(t)

	for _, in := range []string{"", "   ", "ab", "U+110000", "hyphen"} {
		_, err := ResolveChar(env, in)
		if !errors.Is(err, errors.ErrInvalidRequest) {
			t.Errorf("ResolveChar(%q) error = %v, want INVALID_REQUEST", in, err)
		}
	}
}

func TestViewOf_UnindexedCharStillNamed(t *testing.T) {
	env := testEnv(t)

	view := viewOf(env, 0x00E9) // not in the test index
	if view.Codepoint != "U+00E9" {
		t.Errorf("Codepoint = %q, want U+00E9", view.Codepoint)
	}
	if view.Name == "" {
		t.Errorf("Name is empty, want a resolved display name")
	}
}
