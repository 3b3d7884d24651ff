package db

import (
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/errors"
)

// TouchRecent records that a character was just used. An existing row for
// the same codepoint is refreshed in place; the list is then trimmed to max
// rows, dropping the least recently touched. max <= 0 leaves the list
// unbounded.
func TouchRecent(db *sql.DB, r rune, max int) error {
	query := `
		INSERT INTO recent_chars (id, codepoint, touched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(codepoint) DO UPDATE SET touched_at = excluded.touched_at
	`
	_, err := db.Exec(query, ulid.Make().String(), int64(r), time.Now().UnixNano())
	if err != nil {
		return errors.NewInternal(err)
	}

	if max > 0 {
		trim := `
			DELETE FROM recent_chars
			WHERE codepoint NOT IN (
				SELECT codepoint FROM recent_chars
				ORDER BY touched_at DESC, id DESC
				LIMIT ?
			)
		`
		if _, err := db.Exec(trim, max); err != nil {
			return errors.NewInternal(err)
		}
	}

	return nil
}

// ListRecent returns the recently used characters, most recent first.
func ListRecent(db *sql.DB) ([]rune, error) {
	rows, err := db.Query(`
		SELECT codepoint FROM recent_chars
		ORDER BY touched_at DESC, id DESC
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return scanRunes(rows)
}

// AddToCollection stores a character in the collection. Adding a character
// already present is a no-op.
func AddToCollection(db *sql.DB, r rune) error {
	query := `
		INSERT INTO collection_chars (codepoint, added_at)
		VALUES (?, ?)
		ON CONFLICT(codepoint) DO NOTHING
	`
	if _, err := db.Exec(query, int64(r), time.Now().UnixNano()); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// RemoveFromCollection deletes a character from the collection.
// Returns whether a row was actually removed.
func RemoveFromCollection(db *sql.DB, r rune) (bool, error) {
	res, err := db.Exec(`DELETE FROM collection_chars WHERE codepoint = ?`, int64(r))
	if err != nil {
		return false, errors.NewInternal(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return n > 0, nil
}

// ListCollection returns the collected characters in codepoint order.
func ListCollection(db *sql.DB) ([]rune, error) {
	rows, err := db.Query(`
		SELECT codepoint FROM collection_chars
		ORDER BY codepoint ASC
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return scanRunes(rows)
}

// InCollection reports whether a character is collected.
func InCollection(db *sql.DB, r rune) (bool, error) {
	var one int
	err := db.QueryRow(`SELECT 1 FROM collection_chars WHERE codepoint = ?`, int64(r)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return true, nil
}

// SaveCategoryOrder replaces the persisted category ordering.
func SaveCategoryOrder(db *sql.DB, ids []classify.CategoryID) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.NewInternal(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM category_order`); err != nil {
		return errors.NewInternal(err)
	}
	for pos, id := range ids {
		_, err := tx.Exec(
			`INSERT INTO category_order (category_id, position) VALUES (?, ?)`,
			int64(id), pos,
		)
		if err != nil {
			return errors.NewInternal(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// LoadCategoryOrder returns the persisted category ordering, or nil if none
// has been saved.
func LoadCategoryOrder(db *sql.DB) ([]classify.CategoryID, error) {
	rows, err := db.Query(`
		SELECT category_id FROM category_order
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var ids []classify.CategoryID
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.NewInternal(err)
		}
		ids = append(ids, classify.CategoryID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return ids, nil
}

func scanRunes(rows *sql.Rows) ([]rune, error) {
	var runes []rune
	for rows.Next() {
		var cp int64
		if err := rows.Scan(&cp); err != nil {
			return nil, errors.NewInternal(err)
		}
		runes = append(runes, rune(cp))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return runes, nil
}
