package api

import (
	"github.com/starford/dagaz/internal/index"
	"github.com/starford/dagaz/internal/journalservice"
)

// CreateJournalRequest is the request body for creating a journal.
type CreateJournalRequest struct {
	Path    string `json:"path" example:"daily.txt" validate:"required"`
	Content string `json:"content" example:"2025-12-19\n[DOING]\n- Task" validate:"required"`
}

// UpdateJournalRequest is the request body for replacing a journal's content.
type UpdateJournalRequest struct {
	Content string `json:"content" example:"2025-12-19\n[DOING]\n- Updated" validate:"required"`
}

// JournalDetail is the full journal response type (aliased from the domain layer).
type JournalDetail = journalservice.JournalDetail

// JournalListItem is a lightweight item in a list response (aliased from the domain layer).
type JournalListItem = journalservice.JournalListItem

// JournalListResponse wraps paginated journal listings.
type JournalListResponse struct {
	Journals []JournalListItem `json:"journals" validate:"required"`
	Total    int               `json:"total" example:"42" validate:"required"`
}

// SearchResult is a single search hit (aliased from the index layer).
type SearchResult = index.SearchResult

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results" validate:"required"`
}

// OpenItemsResponse wraps the open DOING items listing.
type OpenItemsResponse struct {
	Items []index.ItemRow `json:"items" validate:"required"`
}
