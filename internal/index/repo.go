package index

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// JournalRow represents a row in the journals table.
type JournalRow struct {
	Path      string
	Checksum  string
	Dates     []string // distinct date tokens, newest first
	Tags      []string
	UpdatedAt time.Time
}

// ItemRow represents one indexed journal line.
type ItemRow struct {
	JournalPath string
	Date        string
	Section     string // literal section label, e.g. "DOING"
	Parent      string // display text of the parent event, "" for top-level
	Text        string
	Completed   bool
	Tags        []string
}

// SearchResult represents one search hit.
type SearchResult struct {
	Path    string
	Date    string
	Section string
	Snippet string
}

// UpsertJournal replaces a journal row, its item rows, and its FTS entries
// within a transaction.
func (db *DB) UpsertJournal(j JournalRow, body string, items []ItemRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	datesJSON, _ := json.Marshal(j.Dates)
	tagsJSON, _ := json.Marshal(j.Tags)

	// Upsert journals table (includes body for fallback search).
	_, err = tx.Exec(`
		INSERT INTO journals (path, checksum, dates, tags, body, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			checksum   = excluded.checksum,
			dates      = excluded.dates,
			tags       = excluded.tags,
			body       = excluded.body,
			updated_at = excluded.updated_at
	`, j.Path, j.Checksum, string(datesJSON), string(tagsJSON), body, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert journal: %w", err)
	}

	// Replace items: delete old then bulk insert.
	_, _ = tx.Exec(`DELETE FROM items WHERE journal_path = ?`, j.Path)
	if len(items) > 0 {
		stmt, err := tx.Prepare(`
			INSERT INTO items (journal_path, date, section, parent, text, completed, tags)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("index: prepare item insert: %w", err)
		}
		defer stmt.Close()
		for _, it := range items {
			completed := 0
			if it.Completed {
				completed = 1
			}
			if _, err := stmt.Exec(j.Path, it.Date, it.Section, it.Parent, it.Text, completed, strings.Join(it.Tags, " ")); err != nil {
				return fmt.Errorf("index: insert item: %w", err)
			}
		}
	}

	// FTS replace (no-op when the FTS5 tag is absent).
	if err := ftsReplace(tx, j.Path, items); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteJournal removes a journal, its item rows, and its FTS entries.
func (db *DB) DeleteJournal(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, path)
	_, _ = tx.Exec(`DELETE FROM items WHERE journal_path = ?`, path)
	_, _ = tx.Exec(`DELETE FROM journals WHERE path = ?`, path)

	return tx.Commit()
}

// GetChecksum returns the stored checksum for a journal, or empty string if not found.
func (db *DB) GetChecksum(path string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM journals WHERE path = ?`, path).Scan(&cs)
	if err != nil {
		return "", nil // not found is fine
	}
	return cs, nil
}

// ListJournals returns paginated journal rows with an optional tag filter.
// sort is "path" or "updated" (default).
func (db *DB) ListJournals(limit, offset int, tag, sort string) ([]JournalRow, int, error) {
	if limit <= 0 {
		limit = 50
	}
	where := ""
	var args []any
	if tag != "" {
		where = `WHERE tags LIKE ?`
		args = append(args, `%"`+tag+`"%`)
	}

	var total int
	if err := db.conn.QueryRow(`SELECT count(*) FROM journals `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count journals: %w", err)
	}

	order := `updated_at DESC`
	if sort == "path" {
		order = `path ASC`
	}
	args = append(args, limit, offset)
	rows, err := db.conn.Query(`
		SELECT path, checksum, dates, tags, updated_at
		FROM journals `+where+`
		ORDER BY `+order+`
		LIMIT ? OFFSET ?
	`, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list journals: %w", err)
	}
	defer rows.Close()

	var out []JournalRow
	for rows.Next() {
		var (
			r           JournalRow
			dates, tags string
		)
		if err := rows.Scan(&r.Path, &r.Checksum, &dates, &tags, &r.UpdatedAt); err != nil {
			return nil, 0, err
		}
		_ = json.Unmarshal([]byte(dates), &r.Dates)
		_ = json.Unmarshal([]byte(tags), &r.Tags)
		out = append(out, r)
	}
	return out, total, rows.Err()
}

// OpenItems returns unfinished DOING items across every journal, newest date
// first.
func (db *DB) OpenItems(limit int) ([]ItemRow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.conn.Query(`
		SELECT journal_path, date, section, parent, text, completed, tags
		FROM items
		WHERE completed = 0 AND upper(section) LIKE '%DOING%'
		ORDER BY date DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("index: open items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// AllPaths returns every indexed journal path.
func (db *DB) AllPaths() (map[string]struct{}, error) {
	rows, err := db.conn.Query(`SELECT path FROM journals`)
	if err != nil {
		return nil, fmt.Errorf("index: all paths: %w", err)
	}
	defer rows.Close()
	out := make(map[string]struct{})
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out[p] = struct{}{}
	}
	return out, rows.Err()
}

// AllChecksums returns path -> checksum for every indexed journal.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM journals`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanItems(rows rowScanner) ([]ItemRow, error) {
	var out []ItemRow
	for rows.Next() {
		var (
			it        ItemRow
			completed int
			tags      string
		)
		if err := rows.Scan(&it.JournalPath, &it.Date, &it.Section, &it.Parent, &it.Text, &completed, &tags); err != nil {
			return nil, err
		}
		it.Completed = completed != 0
		if tags != "" {
			it.Tags = strings.Fields(tags)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
