// Package journal implements the plain-text daily-journal format: a
// line-oriented grammar of date blocks containing [EVENTS], [DOING], [DONE]
// and [NOTES] sections, plus the pure text-to-text mutation operations that
// edit a document while preserving its exact formatting.
//
// Every function takes a complete document string and returns a new one;
// nothing is cached between calls and nothing ever fails. An operation that
// cannot locate its target returns its input byte-identical.
package journal

import (
	"regexp"
	"strings"
)

var (
	dateTokenRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	dateExactRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	sectionRe   = regexp.MustCompile(`^\[(.*?)\]$`)
	indentRe    = regexp.MustCompile(`^(?: {2,}|\t)`)
	leadWSRe    = regexp.MustCompile(`^\s*`)
)

// isDateHeader reports whether the trimmed line begins with a YYYY-MM-DD
// token. No calendar validation is performed; 2025-13-99 is a date token.
func isDateHeader(line string) bool {
	return dateTokenRe.MatchString(strings.TrimSpace(line))
}

// isDateLine reports whether the trimmed line is exactly a date token and
// nothing else.
func isDateLine(line string) bool {
	return dateExactRe.MatchString(strings.TrimSpace(line))
}

// dateToken returns the YYYY-MM-DD token of a date-header line, or "".
func dateToken(line string) string {
	return dateTokenRe.FindString(strings.TrimSpace(line))
}

// isSectionHeader reports whether the trimmed line fully matches [LABEL].
func isSectionHeader(line string) bool {
	return sectionRe.MatchString(strings.TrimSpace(line))
}

// sectionLabel returns the text between the brackets of a section header.
func sectionLabel(line string) string {
	m := sectionRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return ""
	}
	return m[1]
}

// isSeparator reports whether the trimmed line starts with "==". Separator
// lines are cosmetic and never part of section bodies.
func isSeparator(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "==")
}

// isBlank reports whether the line is empty after trimming.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isChildLine reports whether the raw, untrimmed line is indented by two or
// more spaces or a tab. Top-level items may start with a bullet but never
// with leading whitespace.
func isChildLine(line string) bool {
	return indentRe.MatchString(line)
}

// isCompleted reports whether the trimmed line carries a leading "x " marker,
// case-insensitively.
func isCompleted(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 2 && (t[0] == 'x' || t[0] == 'X') && t[1] == ' '
}

// leadingWhitespace returns the run of whitespace at the start of the line.
func leadingWhitespace(line string) string {
	return leadWSRe.FindString(line)
}

// stripMarkers removes a single leading "x " completion marker and then a
// single leading "- " bullet marker from the trimmed line.
func stripMarkers(line string) string {
	t := strings.TrimSpace(line)
	if isCompleted(t) {
		t = strings.TrimSpace(t[2:])
	}
	t = strings.TrimPrefix(t, "- ")
	return strings.TrimSpace(t)
}
