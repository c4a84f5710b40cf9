package journalservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/calendar"
	"github.com/starford/dagaz/internal/testutil"
)

func testService(t *testing.T, cal calendar.Provider) *Service {
	t.Helper()
	_, store := testutil.TestJournals(t)
	db := testutil.TestDB(t)
	return NewService(store, db, cal)
}

const svcDoc = `2025-12-19
========================================
[EVENTS]
- 02:30 PM - Team Standup

[DOING]
- Task A
x Task B

[DONE]

[NOTES]
`

func TestCreateGetDelete(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()

	d, err := svc.CreateJournal(ctx, "daily.txt", []byte(svcDoc))
	if err != nil {
		t.Fatalf("CreateJournal: %v", err)
	}
	if d.Checksum == "" || len(d.Days) != 1 {
		t.Errorf("detail = %+v", d)
	}

	if _, err := svc.CreateJournal(ctx, "daily.txt", []byte("x")); !errors.Is(err, apperr.ErrAlreadyExists) {
		t.Errorf("duplicate create err = %v, want ErrAlreadyExists", err)
	}

	got, err := svc.GetJournal(ctx, "daily.txt")
	if err != nil {
		t.Fatalf("GetJournal: %v", err)
	}
	if got.Content != svcDoc {
		t.Errorf("content mismatch")
	}
	if len(got.Dates) != 1 || got.Dates[0] != "2025-12-19" {
		t.Errorf("dates = %v", got.Dates)
	}

	if err := svc.DeleteJournal(ctx, "daily.txt"); err != nil {
		t.Fatalf("DeleteJournal: %v", err)
	}
	if _, err := svc.GetJournal(ctx, "daily.txt"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("get after delete err = %v, want ErrNotFound", err)
	}
}

func TestUpdateJournal_Conflict(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()

	d, _ := svc.CreateJournal(ctx, "j.txt", []byte(svcDoc))

	if _, err := svc.UpdateJournal(ctx, "j.txt", []byte("new"), "stale-checksum"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
	if _, err := svc.UpdateJournal(ctx, "j.txt", []byte("new"), d.Checksum); err != nil {
		t.Errorf("update with matching checksum: %v", err)
	}
}

func TestApplyToggle_ChangedFlag(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()
	_, _ = svc.CreateJournal(ctx, "j.txt", []byte(svcDoc))

	d, changed, err := svc.ApplyToggle(ctx, "j.txt", "", "- Task A")
	if err != nil {
		t.Fatalf("ApplyToggle: %v", err)
	}
	if !changed {
		t.Error("expected changed = true")
	}
	if !strings.Contains(d.Content, "x - Task A") {
		t.Errorf("content:\n%s", d.Content)
	}

	_, changed, err = svc.ApplyToggle(ctx, "j.txt", "", "- No Such Line")
	if err != nil {
		t.Fatalf("ApplyToggle miss: %v", err)
	}
	if changed {
		t.Error("miss should report changed = false")
	}
}

func TestApplyMoveDone_UpdatesFileAndIndex(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()
	_, _ = svc.CreateJournal(ctx, "j.txt", []byte(svcDoc))

	d, changed, err := svc.ApplyMoveDone(ctx, "j.txt", "", "2025-12-19", "- Task A")
	if err != nil {
		t.Fatalf("ApplyMoveDone: %v", err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	if !strings.Contains(d.Content, "[DONE]\nx Task A") {
		t.Errorf("content:\n%s", d.Content)
	}

	items, err := svc.OpenItems(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range items {
		if it.Text == "Task A" {
			t.Error("moved item still listed as open in index")
		}
	}
}

func TestApplyUpdateSection_Validation(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()
	_, _ = svc.CreateJournal(ctx, "j.txt", []byte(svcDoc))

	if _, _, err := svc.ApplyUpdateSection(ctx, "j.txt", "", "", "EVENTS", nil); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
	if _, _, err := svc.ApplyUpdateSection(ctx, "missing.txt", "", "2025-12-19", "EVENTS", nil); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestApplyDedupe(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()
	doc := "2025-12-16\n[DOING]\n- a\n\n2025-12-16\n[DOING]\n- b\n"
	_, _ = svc.CreateJournal(ctx, "dup.txt", []byte(doc))

	d, changed, err := svc.ApplyDedupe(ctx, "dup.txt", "")
	if err != nil {
		t.Fatalf("ApplyDedupe: %v", err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	if strings.Count(d.Content, "2025-12-16") != 1 {
		t.Errorf("date block not merged:\n%s", d.Content)
	}

	_, changed, _ = svc.ApplyDedupe(ctx, "dup.txt", "")
	if changed {
		t.Error("second dedupe should be a no-op")
	}
}

func TestSeedDay(t *testing.T) {
	cal := &calendar.Static{Events: map[string][]calendar.Event{
		"2025-12-20": {
			{Name: "Standup", Time: "09:00 AM"},
			{Name: "Conference"},
		},
	}}
	svc := testService(t, cal)
	ctx := context.Background()
	_, _ = svc.CreateJournal(ctx, "j.txt", []byte(svcDoc))

	d, changed, err := svc.SeedDay(ctx, "j.txt", "", "2025-12-20")
	if err != nil {
		t.Fatalf("SeedDay: %v", err)
	}
	if !changed {
		t.Fatal("expected change")
	}
	if !strings.HasPrefix(d.Content, "2025-12-20\n") {
		t.Errorf("new day not at top:\n%s", d.Content)
	}
	if !strings.Contains(d.Content, "- 09:00 AM - Standup") || !strings.Contains(d.Content, "- All Day - Conference") {
		t.Errorf("calendar events missing:\n%s", d.Content)
	}
	// Task A was unfinished on 2025-12-19 and must carry over; Task B was done.
	head := d.Content[:strings.Index(d.Content, "2025-12-19")]
	if !strings.Contains(head, "- Task A") {
		t.Errorf("carry-over missing from new block:\n%s", d.Content)
	}
	if strings.Contains(head, "Task B") {
		t.Errorf("completed item carried over:\n%s", d.Content)
	}
	if strings.Contains(d.Content, "\n\n\n") {
		t.Errorf("double blank line:\n%s", d.Content)
	}

	_, changed, err = svc.SeedDay(ctx, "j.txt", "", "2025-12-20")
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("seeding an existing day should be a no-op")
	}
}

func TestCarryOverPreview(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()
	_, _ = svc.CreateJournal(ctx, "j.txt", []byte(svcDoc))

	lines, err := svc.CarryOver(ctx, "j.txt", "2025-12-20")
	if err != nil {
		t.Fatalf("CarryOver: %v", err)
	}
	if len(lines) != 1 || lines[0] != "- Task A" {
		t.Errorf("lines = %v", lines)
	}

	// Preview must not touch the file.
	got, _ := svc.GetJournal(ctx, "j.txt")
	if got.Content != svcDoc {
		t.Error("CarryOver modified the journal")
	}
}
