// Package models defines the domain types for Dagaz.
package models

import (
	"strings"
	"time"
)

// SectionKind is the semantic type of a journal section. The literal bracket
// label is preserved verbatim on write; Kind is derived only for typing.
type SectionKind int

const (
	KindUnknown SectionKind = iota
	KindEvents
	KindDoing
	KindDone
	KindNotes
	KindBacklog
)

// String returns the canonical label for the kind.
func (k SectionKind) String() string {
	switch k {
	case KindEvents:
		return "EVENTS"
	case KindDoing:
		return "DOING"
	case KindDone:
		return "DONE"
	case KindNotes:
		return "NOTES"
	case KindBacklog:
		return "BACKLOG"
	default:
		return "UNKNOWN"
	}
}

// KindOf derives the semantic kind from a section label. Matching is
// case-insensitive and by substring, so "[Events]" and "[MY EVENTS]" both
// type as EVENTS.
func KindOf(label string) SectionKind {
	u := strings.ToUpper(label)
	switch {
	case strings.Contains(u, "EVENTS"):
		return KindEvents
	case strings.Contains(u, "DOING"):
		return KindDoing
	case strings.Contains(u, "DONE"):
		return KindDone
	case strings.Contains(u, "NOTES"):
		return KindNotes
	case strings.Contains(u, "BACKLOG"):
		return KindBacklog
	default:
		return KindUnknown
	}
}

// Item is one content line within a section. RawLine keeps the exact source
// text so mutators can match and splice it back; DisplayText has the leading
// "x " and "- " markers stripped. Children only occur under EVENTS sections.
type Item struct {
	RawLine     string   `json:"raw_line"`
	DisplayText string   `json:"display_text"`
	IsCompleted bool     `json:"is_completed"`
	Tags        []string `json:"tags,omitempty"`
	Children    []Item   `json:"children,omitempty"`
}

// Section is a [LABEL]-headed span within a date block.
type Section struct {
	Label string      `json:"label"`
	Kind  SectionKind `json:"kind"`
	Items []Item      `json:"items"`
}

// Day is one date block of a journal document.
type Day struct {
	Date     string    `json:"date"`
	Sections []Section `json:"sections"`
}

// JournalMetadata is a lightweight representation returned by list operations.
type JournalMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
