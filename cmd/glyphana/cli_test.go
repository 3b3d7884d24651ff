package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/virtualritz/glyphana/internal/charindex"
	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/config"
	"github.com/virtualritz/glyphana/internal/db"
	"github.com/virtualritz/glyphana/internal/ops"
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

// setupTestEnv creates a small environment over a temporary database.
func setupTestEnv(t *testing.T) *ops.Env {
	t.Helper()

	idx, err := charindex.Build(runeSource{'A', 'a', 'α', '€', 0x2190})
	if err != nil {
		t.Fatalf("failed to build test index: %v", err)
	}

	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return &ops.Env{
		Index:    idx,
		Registry: classify.DefaultRegistry(),
		Engine:   search.NewEngine(),
		DB:       database,
		Config:   config.DefaultConfig(),
	}
}

// runApp runs the CLI app with args and returns captured stdout.
func runApp(t *testing.T, env *ops.Env, args ...string) (string, error) {
	t.Helper()

	app := newCLIApp(env)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := app.Run(append([]string{"glyphana"}, args...))

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	return buf.String(), err
}

// TestSplitList tests the splitList helper function.
func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single name",
			input:    "Latin",
			expected: []string{"Latin"},
		},
		{
			name:     "multiple names",
			input:    "Greek,Latin,Arrows",
			expected: []string{"Greek", "Latin", "Arrows"},
		},
		{
			name:     "names with spaces",
			input:    " Greek , Latin ",
			expected: []string{"Greek", "Latin"},
		},
		{
			name:     "empty entries filtered",
			input:    "Greek,,Latin,",
			expected: []string{"Greek", "Latin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitList(tt.input)
			if len(result) != len(tt.expected) {
				t.Errorf("expected %d entries, got %d", len(tt.expected), len(result))
				return
			}
			for i, name := range result {
				if name != tt.expected[i] {
					t.Errorf("expected [%d]=%q, got %q", i, tt.expected[i], name)
				}
			}
		})
	}
}

// TestIsLoopback tests the isLoopback helper function.
func TestIsLoopback(t *testing.T) {
	tests := []struct {
		bind     string
		expected bool
	}{
		{"127.0.0.1", true},
		{"localhost", true},
		{"::1", true},
		{"", true},
		{"0.0.0.0", false},
		{"192.168.1.10", false},
		{"example.com", false},
	}

	for _, tt := range tests {
		if got := isLoopback(tt.bind); got != tt.expected {
			t.Errorf("isLoopback(%q) = %v, want %v", tt.bind, got, tt.expected)
		}
	}
}

// TestCLISearch tests the search command.
func TestCLISearch(t *testing.T) {
	env := setupTestEnv(t)

	out, err := runApp(t, env, "search", "--names", "euro")
	if err != nil {
		t.Fatalf("search command failed: %v", err)
	}

	var output ops.SearchOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}

	if len(output.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(output.Results))
	}
	if output.Results[0].Char != "€" {
		t.Errorf("expected €, got %s", output.Results[0].Char)
	}
}

// TestCLISearchNotation tests codepoint notation through the search command.
func TestCLISearchNotation(t *testing.T) {
	env := setupTestEnv(t)

	out, err := runApp(t, env, "search", "U+0041")
	if err != nil {
		t.Fatalf("search command failed: %v", err)
	}

	var output ops.SearchOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if len(output.Results) != 1 || output.Results[0].Codepoint != "U+0041" {
		t.Errorf("expected single U+0041 result, got %+v", output.Results)
	}
}

// TestCLIInfo tests the info command.
func TestCLIInfo(t *testing.T) {
	env := setupTestEnv(t)

	out, err := runApp(t, env, "info", "U+20AC")
	if err != nil {
		t.Fatalf("info command failed: %v", err)
	}

	var output ops.InfoOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}

	if output.Name != "Euro Sign" {
		t.Errorf("expected name Euro Sign, got %s", output.Name)
	}
	if output.Block != "Currency Symbols" {
		t.Errorf("expected block Currency Symbols, got %s", output.Block)
	}

	// Info touches recent by default.
	recent, err := ops.Recent(env)
	if err != nil {
		t.Fatalf("failed to list recent: %v", err)
	}
	if len(recent.Results) != 1 || recent.Results[0].Char != "€" {
		t.Errorf("expected € in recent, got %+v", recent.Results)
	}
}

// TestCLIInfoNoTouch tests that --no-touch skips the recent list.
func TestCLIInfoNoTouch(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := runApp(t, env, "info", "--no-touch", "U+20AC"); err != nil {
		t.Fatalf("info command failed: %v", err)
	}

	recent, err := ops.Recent(env)
	if err != nil {
		t.Fatalf("failed to list recent: %v", err)
	}
	if len(recent.Results) != 0 {
		t.Errorf("expected empty recent list, got %+v", recent.Results)
	}
}

// TestCLIInfoMissingArg tests the error path of the info command.
func TestCLIInfoMissingArg(t *testing.T) {
	env := setupTestEnv(t)

	_, err := runApp(t, env, "info")
	if err == nil {
		t.Fatal("expected error for missing char argument")
	}
	if !strings.Contains(err.Error(), "INVALID_REQUEST") {
		t.Errorf("expected INVALID_REQUEST in error, got %v", err)
	}
}

// TestCLICollectionLifecycle tests collect, collection, uncollect.
func TestCLICollectionLifecycle(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := runApp(t, env, "collect", "€"); err != nil {
		t.Fatalf("collect command failed: %v", err)
	}
	if _, err := runApp(t, env, "collect", "A"); err != nil {
		t.Fatalf("collect command failed: %v", err)
	}

	out, err := runApp(t, env, "collection")
	if err != nil {
		t.Fatalf("collection command failed: %v", err)
	}

	var listing ops.CollectionOutput
	if err := json.Unmarshal([]byte(out), &listing); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if len(listing.Results) != 2 {
		t.Fatalf("expected 2 collected characters, got %d", len(listing.Results))
	}
	// Codepoint order: A before €.
	if listing.Results[0].Char != "A" || listing.Results[1].Char != "€" {
		t.Errorf("expected [A €], got %+v", listing.Results)
	}

	if _, err := runApp(t, env, "uncollect", "A"); err != nil {
		t.Fatalf("uncollect command failed: %v", err)
	}

	_, err = runApp(t, env, "uncollect", "A")
	if err == nil {
		t.Fatal("expected error for already removed character")
	}
	if !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Errorf("expected NOT_FOUND in error, got %v", err)
	}
}

// TestCLICategoriesReorder tests listing and reordering categories.
func TestCLICategoriesReorder(t *testing.T) {
	env := setupTestEnv(t)

	out, err := runApp(t, env, "categories", "--order", "Greek and Coptic,Arrows")
	if err != nil {
		t.Fatalf("categories command failed: %v", err)
	}

	var output ops.CategoriesOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if len(output.Categories) < 2 {
		t.Fatal("expected categories in output")
	}
	if output.Categories[0].Name != "Greek and Coptic" || output.Categories[1].Name != "Arrows" {
		t.Errorf("expected Greek and Coptic then Arrows first, got %s, %s",
			output.Categories[0].Name, output.Categories[1].Name)
	}
}

// TestCLIExportToFile tests the export command with --out.
func TestCLIExportToFile(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := runApp(t, env, "collect", "€"); err != nil {
		t.Fatalf("collect command failed: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "sheet.md")
	if _, err := runApp(t, env, "export", "--title", "Test Sheet", "--out", outPath); err != nil {
		t.Fatalf("export command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read exported sheet: %v", err)
	}
	sheet := string(data)
	if !strings.Contains(sheet, "# Test Sheet") {
		t.Errorf("expected title heading, got:\n%s", sheet)
	}
	if !strings.Contains(sheet, "U+20AC") {
		t.Errorf("expected U+20AC row, got:\n%s", sheet)
	}
}

// TestCLIRecentTouch tests recent listing and the --touch flag.
func TestCLIRecentTouch(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := runApp(t, env, "recent", "--touch", "α"); err != nil {
		t.Fatalf("recent --touch failed: %v", err)
	}
	if _, err := runApp(t, env, "recent", "--touch", "A"); err != nil {
		t.Fatalf("recent --touch failed: %v", err)
	}

	out, err := runApp(t, env, "recent")
	if err != nil {
		t.Fatalf("recent command failed: %v", err)
	}

	var output ops.RecentOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if len(output.Results) != 2 {
		t.Fatalf("expected 2 recent characters, got %d", len(output.Results))
	}
	// Most recent first.
	if output.Results[0].Char != "A" || output.Results[1].Char != "α" {
		t.Errorf("expected [A α], got %+v", output.Results)
	}
}
