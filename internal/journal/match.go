package journal

import (
	"regexp"
	"strings"
)

var wsRunRe = regexp.MustCompile(`\s+`)

// normalize reduces a line to its tolerant comparison form: trim, strip a
// single leading "x " and/or "- " marker, collapse whitespace runs, lowercase.
// The UI may hand back text rendered slightly differently from what is stored,
// so mutators fall back to this form after exact and trimmed equality fail.
func normalize(line string) string {
	t := stripMarkers(line)
	t = wsRunRe.ReplaceAllString(t, " ")
	return strings.ToLower(t)
}

// normalizeEvent is normalize plus stripping of a leading clock-time or
// "All Day - " prefix, yielding the event's bare name.
func normalizeEvent(line string) string {
	t := ExtractEventName(line)
	t = wsRunRe.ReplaceAllString(t, " ")
	return strings.ToLower(t)
}

// linesMatch reports whether candidate matches needle by exact raw equality,
// trimmed equality, or normalized equality, in that order.
func linesMatch(candidate, needle string) bool {
	if candidate == needle {
		return true
	}
	if strings.TrimSpace(candidate) == strings.TrimSpace(needle) {
		return true
	}
	return normalize(candidate) == normalize(needle)
}

// eventLinesMatch is linesMatch with an extra fallback on the normalized bare
// event name, so a needle without its time prefix still finds the event.
func eventLinesMatch(candidate, needle string) bool {
	if linesMatch(candidate, needle) {
		return true
	}
	return normalizeEvent(candidate) == normalizeEvent(needle)
}
