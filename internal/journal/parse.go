package journal

import (
	"strings"

	"github.com/starford/dagaz/internal/models"
)

// Parse walks the document once and builds its day/section/item model. The
// model is a presentation view: blank and separator lines are not stored, and
// mutators always splice the raw line array instead of reserializing it.
//
// Parsing is best-effort and never fails. Content outside any date block is
// ignored, as is an indented EVENTS line with no preceding top-level item.
func Parse(content string) []models.Day {
	var (
		days    []models.Day
		day     *models.Day
		section *models.Section
	)

	flushSection := func() {
		if day != nil && section != nil {
			day.Sections = append(day.Sections, *section)
		}
		section = nil
	}
	flushDay := func() {
		flushSection()
		if day != nil {
			days = append(days, *day)
		}
		day = nil
	}

	for _, line := range strings.Split(content, "\n") {
		switch {
		case isDateHeader(line):
			flushDay()
			day = &models.Day{Date: dateToken(line)}

		case isSectionHeader(line):
			if day == nil {
				continue // orphan section header outside any date block
			}
			flushSection()
			label := sectionLabel(line)
			section = &models.Section{Label: label, Kind: models.KindOf(label)}

		case isBlank(line) || isSeparator(line):
			// Not stored; mutators preserve them in the raw line array.

		default:
			if day == nil || section == nil {
				continue
			}
			if section.Kind == models.KindEvents && isChildLine(line) {
				if n := len(section.Items); n > 0 {
					parent := &section.Items[n-1]
					parent.Children = append(parent.Children, newItem(line))
				}
				// No top-level item yet: the orphaned child is dropped.
				continue
			}
			section.Items = append(section.Items, newItem(line))
		}
	}
	flushDay()
	return days
}

func newItem(raw string) models.Item {
	display := stripMarkers(raw)
	_, tags := ExtractTags(raw)
	return models.Item{
		RawLine:     raw,
		DisplayText: display,
		IsCompleted: isCompleted(raw),
		Tags:        tags,
	}
}
