package calendar

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestEventLine(t *testing.T) {
	timed := Event{Name: "Team Standup", Time: "02:30 PM"}
	if got := timed.Line(); got != "- 02:30 PM - Team Standup" {
		t.Errorf("Line() = %q", got)
	}
	allDay := Event{Name: "Conference"}
	if got := allDay.Line(); got != "- All Day - Conference" {
		t.Errorf("Line() = %q", got)
	}
}

func TestStaticFetchEvents(t *testing.T) {
	p := &Static{Events: map[string][]Event{
		"2025-12-19": {{Name: "Standup", Time: "09:00 AM"}},
	}}
	evs, err := p.FetchEvents(context.Background(), "2025-12-19")
	if err != nil {
		t.Fatal(err)
	}
	if len(evs) != 1 || evs[0].Name != "Standup" {
		t.Errorf("events = %+v", evs)
	}
	evs, _ = p.FetchEvents(context.Background(), "2025-12-20")
	if len(evs) != 0 {
		t.Errorf("expected no events, got %+v", evs)
	}
}

func TestFileFetchEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calendar.yaml")
	content := `"2025-12-19":
  - name: Team Standup
    time: 02:30 PM
  - name: Conference
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewFile(path)
	evs, err := p.FetchEvents(context.Background(), "2025-12-19")
	if err != nil {
		t.Fatalf("FetchEvents: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("events = %+v, want 2", evs)
	}
	if evs[0].Line() != "- 02:30 PM - Team Standup" {
		t.Errorf("line = %q", evs[0].Line())
	}
	if evs[1].Line() != "- All Day - Conference" {
		t.Errorf("line = %q", evs[1].Line())
	}
}

func TestFileFetchEvents_MissingFile(t *testing.T) {
	p := NewFile(filepath.Join(t.TempDir(), "absent.yaml"))
	evs, err := p.FetchEvents(context.Background(), "2025-12-19")
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if evs != nil {
		t.Errorf("events = %+v, want none", evs)
	}
}

func TestFileFetchEvents_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(path, []byte(":\n  - ["), 0o644)
	if _, err := NewFile(path).FetchEvents(context.Background(), "2025-12-19"); err == nil {
		t.Error("expected parse error")
	}
}
