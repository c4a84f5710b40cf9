// Package testutil provides shared test helpers for setting up journal dirs and databases.
package testutil

import (
	"os"
	"testing"

	"github.com/starford/dagaz/internal/index"
	"github.com/starford/dagaz/internal/storage"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "dagaz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestJournals creates a temporary journals directory with a storage.Provider.
func TestJournals(t *testing.T) (string, storage.Provider) {
	t.Helper()
	journalsDir := t.TempDir()
	store, err := storage.NewFS(journalsDir)
	if err != nil {
		t.Fatal(err)
	}
	return journalsDir, store
}
