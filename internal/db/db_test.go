package db

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/virtualritz/glyphana/internal/classify"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInit(t *testing.T) {
	// Use temp directory for test isolation
	tmpDir := t.TempDir()

	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	// Verify database file was created
	dbPath := filepath.Join(tmpDir, "glyphana.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file not created at %s", dbPath)
	}

	// Verify WAL mode is active
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		t.Fatalf("failed to query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("journal_mode = %s, want wal", journalMode)
	}

	// Verify schema was created
	for _, table := range []string{"recent_chars", "collection_chars", "category_order"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Fatalf("%s table not found: %v", table, err)
		}
	}
}

func TestInit_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	baseDir := filepath.Join(tmpDir, "nested", "path", ".glyphana")

	db, err := Init(baseDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		t.Errorf("base directory not created at %s", baseDir)
	}
}

func TestInit_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	db1, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("first Init() error = %v", err)
	}
	db1.Close()

	db2, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	defer db2.Close()

	version, err := GetUserVersion(db2)
	if err != nil {
		t.Fatalf("GetUserVersion() error = %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestTouchRecent_OrderAndRefresh(t *testing.T) {
	db := testDB(t)

	for _, r := range []rune{'a', 'b', 'c'} {
		if err := TouchRecent(db, r, 0); err != nil {
			t.Fatalf("TouchRecent(%q) error = %v", r, err)
		}
	}
	// Re-touching moves to the front without duplicating.
	if err := TouchRecent(db, 'a', 0); err != nil {
		t.Fatalf("TouchRecent() error = %v", err)
	}

	got, err := ListRecent(db)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	want := []rune{'a', 'c', 'b'}
	if len(got) != len(want) {
		t.Fatalf("ListRecent() = %q, want %q", string(got), string(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListRecent()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTouchRecent_TrimsToMax(t *testing.T) {
	db := testDB(t)

	for _, r := range []rune{'a', 'b', 'c', 'd'} {
		if err := TouchRecent(db, r, 2); err != nil {
			t.Fatalf("TouchRecent(%q) error = %v", r, err)
		}
	}

	got, err := ListRecent(db)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(got) != 2 || got[0] != 'd' || got[1] != 'c' {
		t.Fatalf("ListRecent() = %q, want %q", string(got), "dc")
	}
}

func TestCollection_AddRemoveList(t *testing.T) {
	db := testDB(t)

	for _, r := range []rune{'€', 'A', 'A'} {
		if err := AddToCollection(db, r); err != nil {
			t.Fatalf("AddToCollection(%q) error = %v", r, err)
		}
	}

	got, err := ListCollection(db)
	if err != nil {
		t.Fatalf("ListCollection() error = %v", err)
	}
	if len(got) != 2 || got[0] != 'A' || got[1] != '€' {
		t.Fatalf("ListCollection() = %q, want codepoint order A€", string(got))
	}

	ok, err := InCollection(db, '€')
	if err != nil || !ok {
		t.Fatalf("InCollection('€') = (%v, %v), want (true, nil)", ok, err)
	}

	removed, err := RemoveFromCollection(db, '€')
	if err != nil {
		t.Fatalf("RemoveFromCollection() error = %v", err)
	}
	if !removed {
		t.Errorf("RemoveFromCollection() = false, want true")
	}

	removed, err = RemoveFromCollection(db, '€')
	if err != nil {
		t.Fatalf("RemoveFromCollection() error = %v", err)
	}
	if removed {
		t.Errorf("second RemoveFromCollection() = true, want false")
	}

	ok, err = InCollection(db, '€')
	if err != nil || ok {
		t.Fatalf("InCollection('€') after remove = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestCategoryOrder_RoundTrip(t *testing.T) {
	db := testDB(t)

	// Nothing persisted yet
	ids, err := LoadCategoryOrder(db)
	if err != nil {
		t.Fatalf("LoadCategoryOrder() error = %v", err)
	}
	if ids != nil {
		t.Fatalf("LoadCategoryOrder() = %v, want nil", ids)
	}

	want := []classify.CategoryID{
		classify.IDForName("Emoji"),
		classify.IDForName("Latin"),
		classify.IDForName("Math"),
	}
	if err := SaveCategoryOrder(db, want); err != nil {
		t.Fatalf("SaveCategoryOrder() error = %v", err)
	}

	ids, err = LoadCategoryOrder(db)
	if err != nil {
		t.Fatalf("LoadCategoryOrder() error = %v", err)
	}
	if len(ids) != len(want) {
		t.Fatalf("LoadCategoryOrder() length = %d, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("LoadCategoryOrder()[%d] = %d, want %d", i, ids[i], want[i])
		}
	}

	// Saving again replaces, not appends
	if err := SaveCategoryOrder(db, want[:1]); err != nil {
		t.Fatalf("SaveCategoryOrder() error = %v", err)
	}
	ids, err = LoadCategoryOrder(db)
	if err != nil {
		t.Fatalf("LoadCategoryOrder() error = %v", err)
	}
	if len(ids) != 1 || ids[0] != want[0] {
		t.Fatalf("LoadCategoryOrder() after replace = %v, want [%d]", ids, want[0])
	}
}
