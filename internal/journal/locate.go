package journal

import "strings"

// span is a half-open [start, end) line range.
type span struct {
	start, end int
}

// findDateBlock returns the line range of the first block whose header line
// begins with date. The block ends at the next date-header line anywhere
// below, or at the end of the document.
func findDateBlock(lines []string, date string) (span, bool) {
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), date) || !isDateHeader(line) {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if isDateHeader(lines[j]) {
				return span{i, j}, true
			}
		}
		return span{i, len(lines)}, true
	}
	return span{}, false
}

// findDateBlocks returns every block whose header line begins with date, in
// document order. Dirty documents can carry the same date header more than
// once; callers that must tolerate that enumerate all of them.
func findDateBlocks(lines []string, date string) []span {
	var out []span
	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), date) || !isDateHeader(lines[i]) {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if isDateHeader(lines[j]) {
				end = j
				break
			}
		}
		out = append(out, span{i, end})
		i = end - 1
	}
	return out
}

// findSection locates the section with the given literal header (e.g.
// "[DOING]") inside [start, end). headerIdx is the header line; the body runs
// to the next section or date header, else to end.
func findSection(lines []string, start, end int, header string) (headerIdx, endIdx int, ok bool) {
	for i := start; i < end; i++ {
		if strings.TrimSpace(lines[i]) != header {
			continue
		}
		for j := i + 1; j < end; j++ {
			if isSectionHeader(lines[j]) || isDateHeader(lines[j]) {
				return i, j, true
			}
		}
		return i, end, true
	}
	return 0, 0, false
}
