package journal

import (
	"testing"

	"github.com/starford/dagaz/internal/models"
)

const sampleDoc = `2025-12-19
========================================
[EVENTS]
- 09:00 AM - Standup
  - Draft agenda
  x Book room
- All Day - Conference

[DOING]
- Task A #work
x Task B
Plain task C

[DONE]
x Something else

[NOTES]
free text line

2025-12-20
========================================
[DOING]
`

func TestParse_Structure(t *testing.T) {
	days := Parse(sampleDoc)
	if len(days) != 2 {
		t.Fatalf("len(days) = %d, want 2", len(days))
	}
	if days[0].Date != "2025-12-19" || days[1].Date != "2025-12-20" {
		t.Errorf("dates = %q, %q", days[0].Date, days[1].Date)
	}
	if len(days[0].Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(days[0].Sections))
	}
	events := days[0].Sections[0]
	if events.Kind != models.KindEvents {
		t.Errorf("kind = %v, want EVENTS", events.Kind)
	}
	if len(events.Items) != 2 {
		t.Fatalf("event items = %d, want 2", len(events.Items))
	}
	if len(events.Items[0].Children) != 2 {
		t.Fatalf("children = %d, want 2", len(events.Items[0].Children))
	}
	if !events.Items[0].Children[1].IsCompleted {
		t.Error("second child should be completed")
	}
}

func TestParse_ItemFields(t *testing.T) {
	days := Parse(sampleDoc)
	doing := days[0].Sections[1]
	if doing.Kind != models.KindDoing {
		t.Fatalf("kind = %v, want DOING", doing.Kind)
	}
	if len(doing.Items) != 3 {
		t.Fatalf("doing items = %d, want 3", len(doing.Items))
	}

	a := doing.Items[0]
	if a.RawLine != "- Task A #work" {
		t.Errorf("raw = %q", a.RawLine)
	}
	if a.DisplayText != "Task A #work" {
		t.Errorf("display = %q", a.DisplayText)
	}
	if len(a.Tags) != 1 || a.Tags[0] != "#work" {
		t.Errorf("tags = %v", a.Tags)
	}

	b := doing.Items[1]
	if !b.IsCompleted || b.DisplayText != "Task B" {
		t.Errorf("item B = %+v", b)
	}

	c := doing.Items[2]
	if c.IsCompleted || c.DisplayText != "Plain task C" {
		t.Errorf("item C = %+v", c)
	}
}

func TestParse_SectionLabelPreserved(t *testing.T) {
	days := Parse("2025-01-01\n[Backlog]\n- later\n")
	if len(days) != 1 || len(days[0].Sections) != 1 {
		t.Fatalf("days = %+v", days)
	}
	s := days[0].Sections[0]
	if s.Label != "Backlog" {
		t.Errorf("label = %q, want literal %q", s.Label, "Backlog")
	}
	if s.Kind != models.KindBacklog {
		t.Errorf("kind = %v, want BACKLOG", s.Kind)
	}
}

func TestParse_OrphanedChildDropped(t *testing.T) {
	doc := "2025-01-01\n[EVENTS]\n  - orphan\n- Real event\n"
	days := Parse(doc)
	items := days[0].Sections[0].Items
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].DisplayText != "Real event" {
		t.Errorf("item = %q", items[0].DisplayText)
	}
	if len(items[0].Children) != 0 {
		t.Errorf("orphan attached as child: %v", items[0].Children)
	}
}

func TestParse_ContentOutsideDateBlockIgnored(t *testing.T) {
	doc := "[DOING]\n- floating\nrandom text\n"
	if days := Parse(doc); len(days) != 0 {
		t.Errorf("days = %+v, want none", days)
	}
}

func TestParse_IndentedOnlyNestsUnderEvents(t *testing.T) {
	doc := "2025-01-01\n[DOING]\n- top\n  - indented\n"
	days := Parse(doc)
	items := days[0].Sections[0].Items
	// Outside EVENTS, indentation has no nesting meaning.
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if len(items[0].Children) != 0 {
		t.Errorf("unexpected children: %v", items[0].Children)
	}
}

func TestParse_Empty(t *testing.T) {
	if days := Parse(""); len(days) != 0 {
		t.Errorf("days = %+v", days)
	}
}
