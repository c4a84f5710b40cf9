package index

// JournalIndex defines the interface for journal indexing operations.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type JournalIndex interface {
	UpsertJournal(j JournalRow, body string, items []ItemRow) error
	DeleteJournal(path string) error
	GetChecksum(path string) (string, error)
	ListJournals(limit, offset int, tag, sort string) ([]JournalRow, int, error)
	OpenItems(limit int) ([]ItemRow, error)
	Search(query string, limit int) ([]SearchResult, error)
	AllPaths() (map[string]struct{}, error)
	AllChecksums() (map[string]string, error)
	Close() error
}

// Verify *DB satisfies JournalIndex at compile time.
var _ JournalIndex = (*DB)(nil)
