package journal

import (
	"sort"
	"strings"
)

// ExtractDates returns every distinct date token in the document, newest
// first. YYYY-MM-DD tokens compare correctly as strings, so ordering is plain
// lexicographic.
func ExtractDates(content string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, l := range splitLines(content) {
		if !isDateHeader(l) {
			continue
		}
		d := dateToken(l)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// ContentHasDate reports whether the document contains a block for date.
func ContentHasDate(content, date string) bool {
	_, ok := findDateBlock(splitLines(content), date)
	return ok
}

// CarryOverDoingItems returns the unfinished DOING lines of the most recent
// day strictly before targetDate, verbatim (bullet prefixes and trailing tags
// included), for seeding a freshly created day. Completed lines (leading
// "x ", case-insensitive) are excluded.
func CarryOverDoingItems(content, targetDate string) []string {
	var prev string
	for _, d := range ExtractDates(content) {
		if d < targetDate {
			prev = d
			break
		}
	}
	if prev == "" {
		return nil
	}

	lines := splitLines(content)
	blk, ok := findDateBlock(lines, prev)
	if !ok {
		return nil
	}
	hIdx, endIdx, ok := findSection(lines, blk.start, blk.end, "[DOING]")
	if !ok {
		return nil
	}

	var out []string
	for i := hIdx + 1; i < endIdx; i++ {
		l := lines[i]
		if isBlank(l) || isSeparator(l) {
			continue
		}
		if isCompleted(strings.TrimSpace(l)) {
			continue
		}
		out = append(out, l)
	}
	return out
}
