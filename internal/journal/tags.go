package journal

import (
	"regexp"
	"strings"
)

var (
	timePrefixRe = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}\s*(?:AM|PM)\s*-\s*`)
	allDayRe     = regexp.MustCompile(`(?i)^all day\s*-\s*`)
	tagCharRe    = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
)

// ExtractTags strips the leading "x "/"- " markers from line, then pops
// whitespace-delimited trailing #tag tokens right-to-left until the first
// non-tag token. Hashtags in the middle of the text are left alone. The
// returned tags keep their original relative order.
func ExtractTags(line string) (baseText string, tags []string) {
	fields := strings.Fields(stripMarkers(line))
	end := len(fields)
	for end > 0 {
		tok := fields[end-1]
		if len(tok) > 1 && strings.HasPrefix(tok, "#") {
			end--
			continue
		}
		break
	}
	for _, tok := range fields[end:] {
		tags = append(tags, tok)
	}
	return strings.Join(fields[:end], " "), tags
}

// ExtractEventName returns the human label of an event line: markers stripped,
// then a leading "HH:MM AM/PM - " or "All Day - " prefix removed.
func ExtractEventName(eventLine string) string {
	t := stripMarkers(eventLine)
	t = timePrefixRe.ReplaceAllString(t, "")
	t = allDayRe.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}

// EventToTag converts an event name into a #tag slug: alphanumeric and space
// characters only, spaces joined with underscores. An empty result falls back
// to #event.
func EventToTag(name string) string {
	cleaned := tagCharRe.ReplaceAllString(name, "")
	slug := strings.Join(strings.Fields(cleaned), "_")
	if slug == "" {
		slug = "event"
	}
	return "#" + slug
}
