package journal

import "strings"

// canonicalOrder is the section preference used when a day block is rebuilt.
var canonicalOrder = []string{"EVENTS", "DOING", "BACKLOG", "DONE", "NOTES"}

// sectionAcc accumulates one merged section body across every occurrence of
// its label for a given date.
type sectionAcc struct {
	label string // literal bracket text from the first sighting
	body  []string
	seen  map[string]struct{}
}

// add appends a body line. Blank lines are capped at one consecutive
// occurrence; non-blank lines from a later sighting of the same section are
// skipped when an identical line was already collected. Repeats inside the
// first sighting are legitimate user text and kept.
func (s *sectionAcc) add(line string, firstSighting bool) {
	if isBlank(line) {
		if len(s.body) == 0 || isBlank(s.body[len(s.body)-1]) {
			return
		}
		s.body = append(s.body, "")
		return
	}
	if !firstSighting {
		if _, dup := s.seen[line]; dup {
			return
		}
	}
	s.seen[line] = struct{}{}
	s.body = append(s.body, line)
}

// dayAcc accumulates one merged day across every block carrying its date.
type dayAcc struct {
	header      string
	sep         string
	hasSep      bool
	order       []string // uppercased label keys, first-seen
	secs        map[string]*sectionAcc
	lead        *sectionAcc // block content before any section header
	leadSighted bool
}

// DedupeDateBlocks merges every run of blocks sharing a date-header token into
// one canonical block per date: section contents are unioned in first-seen
// order with exact-duplicate lines suppressed, bodies are trimmed of boundary
// blanks, sections are emitted in canonical preference order, and exactly one
// blank line separates sections and days. The operation is idempotent, and a
// document without date headers is returned unchanged.
func DedupeDateBlocks(content string) string {
	lines := splitLines(content)

	first := -1
	for i, l := range lines {
		if isDateHeader(l) {
			first = i
			break
		}
	}
	if first < 0 {
		return content
	}

	preamble := trimTrailingBlanks(lines[:first])

	var dates []string
	days := map[string]*dayAcc{}

	for i := first; i < len(lines); {
		j := i + 1
		for j < len(lines) && !isDateHeader(lines[j]) {
			j++
		}
		date := dateToken(lines[i])
		d, ok := days[date]
		if !ok {
			d = &dayAcc{header: lines[i], secs: map[string]*sectionAcc{}}
			days[date] = d
			dates = append(dates, date)
		}
		accumulateBlock(d, lines[i+1:j])
		i = j
	}

	var out []string
	if len(preamble) > 0 {
		out = append(out, preamble...)
		out = append(out, "")
	}
	for _, date := range dates {
		out = appendMergedDay(out, days[date])
	}
	return joinLines(out)
}

// accumulateBlock folds one block body into the day accumulator.
func accumulateBlock(d *dayAcc, body []string) {
	var cur *sectionAcc
	curFirst := false
	leadFirst := !d.leadSighted
	d.leadSighted = true
	if d.lead != nil {
		d.lead.body = trimTrailingBlanks(d.lead.body)
	}

	pos := 0
	if pos < len(body) && isSeparator(body[pos]) {
		if !d.hasSep {
			d.sep = body[pos]
			d.hasSep = true
		}
		pos++
	}

	for ; pos < len(body); pos++ {
		l := body[pos]
		switch {
		case isSeparator(l):
			// Stray separators are cosmetic; dropped on rebuild.
		case isSectionHeader(l):
			key := strings.ToUpper(sectionLabel(l))
			s, ok := d.secs[key]
			if !ok {
				s = &sectionAcc{label: sectionLabel(l), seen: map[string]struct{}{}}
				d.secs[key] = s
				d.order = append(d.order, key)
			} else {
				// The blank that closed the earlier sighting is padding,
				// not user content.
				s.body = trimTrailingBlanks(s.body)
			}
			cur = s
			curFirst = !ok
		default:
			if cur != nil {
				cur.add(l, curFirst)
				continue
			}
			if d.lead == nil {
				d.lead = &sectionAcc{seen: map[string]struct{}{}}
			}
			d.lead.add(l, leadFirst)
		}
	}
}

// appendMergedDay emits one rebuilt day: header, first-seen separator, lead
// content, then sections in canonical order followed by non-standard labels in
// first-seen order, with one blank line after each.
func appendMergedDay(out []string, d *dayAcc) []string {
	out = append(out, d.header)
	if d.hasSep {
		out = append(out, d.sep)
	}

	wrote := false
	emit := func(label string, body []string) {
		body = trimTrailingBlanks(body)
		if label != "" {
			out = append(out, "["+label+"]")
		} else if len(body) == 0 {
			return
		}
		out = append(out, body...)
		out = append(out, "")
		wrote = true
	}

	if d.lead != nil {
		emit("", d.lead.body)
	}
	emitted := map[string]bool{}
	for _, key := range canonicalOrder {
		if s := d.secs[key]; s != nil {
			emit(s.label, s.body)
			emitted[key] = true
		}
	}
	for _, key := range d.order {
		if emitted[key] {
			continue
		}
		s := d.secs[key]
		emit(s.label, s.body)
	}

	if !wrote {
		out = append(out, "")
	}
	return out
}

// trimTrailingBlanks drops blank lines from the end of a line slice.
func trimTrailingBlanks(lines []string) []string {
	end := len(lines)
	for end > 0 && isBlank(lines[end-1]) {
		end--
	}
	return lines[:end]
}
