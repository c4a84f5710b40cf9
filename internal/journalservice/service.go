// Package journalservice coordinates storage, index, and the text-mutation
// engine behind the HTTP and MCP surfaces.
package journalservice

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/calendar"
	"github.com/starford/dagaz/internal/checksum"
	"github.com/starford/dagaz/internal/index"
	"github.com/starford/dagaz/internal/journal"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/storage"
)

// JournalDetail is the full representation of a journal file.
type JournalDetail struct {
	Path      string       `json:"path"`
	Content   string       `json:"content"`
	Checksum  string       `json:"checksum"`
	Dates     []string     `json:"dates"`
	Days      []models.Day `json:"days"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// JournalListItem is a lightweight item in a list response.
type JournalListItem struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	Dates     []string  `json:"dates"`
	Tags      []string  `json:"tags"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service coordinates storage and index operations.
type Service struct {
	store storage.Provider
	db    *index.DB
	cal   calendar.Provider
}

// NewService creates a new journal service. cal may be nil, in which case
// SeedDay produces empty EVENTS sections.
func NewService(store storage.Provider, db *index.DB, cal calendar.Provider) *Service {
	return &Service{store: store, db: db, cal: cal}
}

// GetJournal reads a journal from storage and parses it.
func (s *Service) GetJournal(_ context.Context, path string) (*JournalDetail, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return buildDetail(path, data), nil
}

// CreateJournal writes a new journal and indexes it.
func (s *Service) CreateJournal(_ context.Context, path string, content []byte) (*JournalDetail, error) {
	if _, err := s.store.Read(path); err == nil {
		return nil, apperr.ErrAlreadyExists
	}
	if err := s.store.Write(path, content); err != nil {
		return nil, err
	}
	if err := index.IndexFile(s.db, path, content); err != nil {
		return nil, err
	}
	return buildDetail(path, content), nil
}

// UpdateJournal writes updated content with optimistic concurrency.
func (s *Service) UpdateJournal(_ context.Context, path string, content []byte, ifMatch string) (*JournalDetail, error) {
	existing, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	if ifMatch != "" && ifMatch != checksum.Sum(existing) {
		return nil, apperr.ErrConflict
	}
	if err := s.store.Write(path, content); err != nil {
		return nil, err
	}
	if err := index.IndexFile(s.db, path, content); err != nil {
		return nil, err
	}
	return buildDetail(path, content), nil
}

// DeleteJournal removes a journal from storage and index.
func (s *Service) DeleteJournal(_ context.Context, path string) error {
	if err := s.store.Delete(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperr.ErrNotFound
		}
		return err
	}
	return s.db.DeleteJournal(path)
}

// ListJournals returns paginated journals with optional tag filter.
func (s *Service) ListJournals(_ context.Context, limit, offset int, tag, sort string) ([]JournalListItem, int, error) {
	rows, total, err := s.db.ListJournals(limit, offset, tag, sort)
	if err != nil {
		return nil, 0, err
	}
	items := make([]JournalListItem, len(rows))
	for i, r := range rows {
		items[i] = JournalListItem{
			Path:      r.Path,
			Checksum:  r.Checksum,
			Dates:     nonNilSlice(r.Dates),
			Tags:      nonNilSlice(r.Tags),
			UpdatedAt: r.UpdatedAt,
		}
	}
	return items, total, nil
}

// Search delegates full-text search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

// OpenItems returns unfinished DOING items across every journal.
func (s *Service) OpenItems(_ context.Context, limit int) ([]index.ItemRow, error) {
	return s.db.OpenItems(limit)
}

// Dates returns every distinct date in the journal, newest first.
func (s *Service) Dates(_ context.Context, path string) ([]string, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return journal.ExtractDates(string(data)), nil
}

// CarryOver returns the unfinished DOING lines the given date would inherit
// from the most recent earlier day. The journal is not modified.
func (s *Service) CarryOver(_ context.Context, path, targetDate string) ([]string, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return journal.CarryOverDoingItems(string(data), targetDate), nil
}

// buildDetail constructs a JournalDetail from raw data without re-reading the file.
func buildDetail(path string, data []byte) *JournalDetail {
	content := string(data)
	return &JournalDetail{
		Path:      path,
		Content:   content,
		Checksum:  checksum.Sum(data),
		Dates:     nonNilSlice(journal.ExtractDates(content)),
		Days:      nonNilSlice(journal.Parse(content)),
		UpdatedAt: time.Now(),
	}
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
