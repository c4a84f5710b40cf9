package journal

import (
	"reflect"
	"testing"
)

const carryDoc = `2025-12-19
========================================
[DOING]
- Task A
x Task B
Plain task C

[DONE]
x Something else

2025-12-20
========================================
[DOING]
`

func TestCarryOverDoingItems(t *testing.T) {
	got := CarryOverDoingItems(carryDoc, "2025-12-20")
	want := []string{"- Task A", "Plain task C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCarryOverDoingItems_SkipsAheadOfTarget(t *testing.T) {
	// The 2025-12-20 block itself must not feed a 2025-12-20 carry-over, and
	// dates after the target never do.
	doc := "2025-12-21\n[DOING]\n- future\n\n" + carryDoc
	got := CarryOverDoingItems(doc, "2025-12-20")
	want := []string{"- Task A", "Plain task C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCarryOverDoingItems_NoEarlierDay(t *testing.T) {
	if got := CarryOverDoingItems(carryDoc, "2025-12-19"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got := CarryOverDoingItems("", "2025-12-19"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestCarryOverDoingItems_PreviousDayWithoutDoing(t *testing.T) {
	doc := "2025-12-18\n[NOTES]\nn\n\n2025-12-19\n[DOING]\n- x\n"
	if got := CarryOverDoingItems(doc, "2025-12-19"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestExtractDates(t *testing.T) {
	doc := "2025-12-19\n[DOING]\n\n2025-12-21\n[DOING]\n\n2025-12-19\n[NOTES]\n"
	got := ExtractDates(doc)
	want := []string{"2025-12-21", "2025-12-19"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestContentHasDate(t *testing.T) {
	if !ContentHasDate(carryDoc, "2025-12-20") {
		t.Error("2025-12-20 should be present")
	}
	if ContentHasDate(carryDoc, "2025-12-21") {
		t.Error("2025-12-21 should be absent")
	}
}
