//go:build sqlite_fts5

package index

import (
	"testing"
	"time"
)

func TestFTS5_TableExists(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM items_fts`).Scan(&count); err != nil {
		t.Fatalf("items_fts table missing: %v", err)
	}
}

func TestFTS5_SearchWithSnippet(t *testing.T) {
	db := testDB(t)
	row := JournalRow{
		Path:      "fts.txt",
		Checksum:  "f1",
		Tags:      []string{"#search"},
		UpdatedAt: time.Now(),
	}
	items := []ItemRow{
		{JournalPath: "fts.txt", Date: "2025-12-19", Section: "NOTES", Text: "Dagaz provides powerful full-text search capabilities.", Tags: []string{"#search"}},
	}
	if err := db.UpsertJournal(row, "body", items); err != nil {
		t.Fatalf("UpsertJournal: %v", err)
	}

	results, err := db.Search("powerful", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Path != "fts.txt" {
		t.Errorf("path = %q", results[0].Path)
	}
	// FTS5 snippet should contain bold markers.
	if results[0].Snippet == "" {
		t.Error("expected non-empty snippet")
	}
}

func TestFTS5_DeleteRemovesFromFTS(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertJournal(JournalRow{Path: "gone.txt", Checksum: "g", UpdatedAt: time.Now()}, "body",
		[]ItemRow{{JournalPath: "gone.txt", Date: "2025-12-19", Section: "NOTES", Text: "vanishing content"}})
	_ = db.DeleteJournal("gone.txt")

	results, _ := db.Search("vanishing", 10)
	for _, r := range results {
		if r.Path == "gone.txt" {
			t.Error("deleted journal still in FTS index")
		}
	}
}

func TestFTS5_UpsertReplacesContent(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertJournal(JournalRow{Path: "evo.txt", Checksum: "1", UpdatedAt: now}, "old",
		[]ItemRow{{JournalPath: "evo.txt", Date: "2025-12-18", Section: "NOTES", Text: "original text"}})
	_ = db.UpsertJournal(JournalRow{Path: "evo.txt", Checksum: "2", UpdatedAt: now}, "new",
		[]ItemRow{{JournalPath: "evo.txt", Date: "2025-12-19", Section: "NOTES", Text: "replacement text"}})

	results, _ := db.Search("original", 10)
	if len(results) != 0 {
		t.Error("old FTS content should be gone")
	}
	results, _ = db.Search("replacement", 10)
	if len(results) != 1 || results[0].Date != "2025-12-19" {
		t.Errorf("FTS not updated: %+v", results)
	}
}
