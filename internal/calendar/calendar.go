// Package calendar supplies the scheduled events used to seed a day block.
package calendar

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Event is one scheduled entry for a date. Time is a display string like
// "02:30 PM"; an empty Time means an all-day event.
type Event struct {
	Name string `yaml:"name" json:"name"`
	Time string `yaml:"time,omitempty" json:"time,omitempty"`
}

// Line renders the journal EVENTS line for the event.
func (e Event) Line() string {
	if e.Time == "" {
		return "- All Day - " + e.Name
	}
	return "- " + e.Time + " - " + e.Name
}

// Provider fetches the events scheduled for a date.
type Provider interface {
	FetchEvents(ctx context.Context, date string) ([]Event, error)
}

// Static serves events from an in-memory map keyed by date. Used in tests and
// when no calendar file is configured.
type Static struct {
	Events map[string][]Event
}

// FetchEvents returns the configured events for date, or none.
func (s *Static) FetchEvents(_ context.Context, date string) ([]Event, error) {
	if s == nil || s.Events == nil {
		return nil, nil
	}
	return s.Events[date], nil
}

// File serves events from a YAML file mapping dates to event lists:
//
//	"2025-12-19":
//	  - name: Team Standup
//	    time: 02:30 PM
//	  - name: Conference
//
// The file is re-read on every fetch so external edits take effect without a
// restart. A missing file yields no events.
type File struct {
	path string
}

// NewFile creates a file-backed provider reading from path.
func NewFile(path string) *File {
	return &File{path: path}
}

// FetchEvents loads the file and returns the events for date.
func (f *File) FetchEvents(_ context.Context, date string) ([]Event, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("calendar: read %s: %w", f.path, err)
	}
	var all map[string][]Event
	if err := yaml.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("calendar: parse %s: %w", f.path, err)
	}
	return all[date], nil
}
