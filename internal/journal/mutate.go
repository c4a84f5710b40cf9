package journal

import "strings"

// All mutators are total functions over the document text: when the target
// date, section, or line cannot be located the input comes back byte-identical
// and no partial edit is ever applied.

func splitLines(content string) []string { return strings.Split(content, "\n") }
func joinLines(lines []string) string    { return strings.Join(lines, "\n") }

// splice returns a new line slice with del lines at position at replaced by
// insert. Building before+insert+after avoids aliasing the input.
func splice(lines []string, at, del int, insert ...string) []string {
	out := make([]string, 0, len(lines)-del+len(insert))
	out = append(out, lines[:at]...)
	out = append(out, insert...)
	out = append(out, lines[at+del:]...)
	return out
}

// collapseBlankAt removes one of two adjacent blank lines that a deletion at
// position at may have left behind, keeping the single-blank separation
// between sections intact.
func collapseBlankAt(lines []string, at int) ([]string, bool) {
	if at > 0 && at < len(lines) && isBlank(lines[at-1]) && isBlank(lines[at]) {
		return splice(lines, at, 1), true
	}
	return lines, false
}

const separatorLine = "========================================"

var skeletonLabels = []string{"EVENTS", "DOING", "DONE", "NOTES"}

// UpdateSectionForDate replaces the body of the named section in the date's
// block with items. A missing section is inserted right after the block's
// separator (or date line); a missing date block is synthesized as a full
// canonical skeleton prepended to the document.
func UpdateSectionForDate(content, date, label string, items []string) string {
	label = strings.Trim(label, "[]")
	header := "[" + label + "]"
	lines := splitLines(content)

	blk, ok := findDateBlock(lines, date)
	if !ok {
		return prependDayBlock(content, date, label, items)
	}

	hIdx, endIdx, ok := findSection(lines, blk.start, blk.end, header)
	if !ok {
		insertAt := blk.start + 1
		if insertAt < blk.end && isSeparator(lines[insertAt]) {
			insertAt++
		}
		insert := append([]string{header}, items...)
		if insertAt >= len(lines) || !isBlank(lines[insertAt]) {
			insert = append(insert, "")
		}
		return joinLines(splice(lines, insertAt, 0, insert...))
	}

	insert := append([]string{}, items...)
	if endIdx < len(lines) {
		insert = append(insert, "")
	} else if endIdx > hIdx+1 && isBlank(lines[endIdx-1]) {
		insert = append(insert, "")
	}
	return joinLines(splice(lines, hIdx+1, endIdx-(hIdx+1), insert...))
}

// prependDayBlock builds a canonical new day block with the target section
// populated and puts it in front of the existing content.
func prependDayBlock(content, date, label string, items []string) string {
	out := []string{date, separatorLine}
	matched := false
	for _, l := range skeletonLabels {
		out = append(out, "["+l+"]")
		if strings.EqualFold(l, label) {
			out = append(out, items...)
			matched = true
		}
		out = append(out, "")
	}
	if !matched {
		out = append(out, "["+label+"]")
		out = append(out, items...)
		out = append(out, "")
	}

	rest := strings.TrimLeft(content, "\n")
	if rest == "" {
		return joinLines(out)
	}
	return joinLines(out) + "\n" + rest
}

// AttachChildTask finds the top-level EVENTS line matching eventRawLine in any
// block carrying the date (duplicated date headers are tolerated), inserts an
// indented child task right below it, and mirrors the task as a plain item in
// that block's DOING section, creating DOING when absent.
func AttachChildTask(content, date, eventRawLine, taskName string) string {
	lines := splitLines(content)
	for _, blk := range findDateBlocks(lines, date) {
		hIdx, endIdx, ok := findSection(lines, blk.start, blk.end, "[EVENTS]")
		if !ok {
			continue
		}
		for i := hIdx + 1; i < endIdx; i++ {
			l := lines[i]
			if isBlank(l) || isSeparator(l) || isChildLine(l) {
				continue
			}
			if !eventLinesMatch(l, eventRawLine) {
				continue
			}
			lines = splice(lines, i+1, 0, "  - "+taskName)
			lines = insertDoingItem(lines, span{blk.start, blk.end + 1}, "- "+taskName)
			return joinLines(lines)
		}
	}
	return content
}

// insertDoingItem appends item to the block's DOING section, creating the
// section immediately after EVENTS (or near the block top) when it is missing.
func insertDoingItem(lines []string, blk span, item string) []string {
	if hIdx, endIdx, ok := findSection(lines, blk.start, blk.end, "[DOING]"); ok {
		at := hIdx + 1
		for j := hIdx + 1; j < endIdx; j++ {
			if !isBlank(lines[j]) && !isSeparator(lines[j]) {
				at = j + 1
			}
		}
		return splice(lines, at, 0, item)
	}

	insertAt := blk.start + 1
	if insertAt < blk.end && isSeparator(lines[insertAt]) {
		insertAt++
	}
	if _, evEnd, ok := findSection(lines, blk.start, blk.end, "[EVENTS]"); ok {
		insertAt = evEnd
	}
	insert := []string{"[DOING]", item, ""}
	if insertAt > blk.start+1 && !isBlank(lines[insertAt-1]) {
		insert = append([]string{""}, insert...)
	}
	return splice(lines, insertAt, 0, insert...)
}

// ToggleCompletion flips the "x " completion marker on the first line that is
// byte-equal to rawLine, preserving its leading whitespace. Works uniformly
// for top-level items and indented children.
func ToggleCompletion(content, rawLine string) string {
	lines := splitLines(content)
	for i, l := range lines {
		if l != rawLine {
			continue
		}
		indent := leadingWhitespace(l)
		rest := l[len(indent):]
		if isCompleted(rest) {
			lines[i] = indent + rest[2:]
		} else {
			lines[i] = indent + "x " + rest
		}
		return joinLines(lines)
	}
	return content
}

// MoveDoingToDone removes the matching DOING line, inserts it completed as the
// first DONE item (creating DONE after DOING when absent), and best-effort
// marks a matching EVENTS child line completed so the subtask stays in sync.
func MoveDoingToDone(content, date, doingRawLine string) string {
	lines := splitLines(content)
	blk, ok := findDateBlock(lines, date)
	if !ok {
		return content
	}
	dIdx, dEnd, ok := findSection(lines, blk.start, blk.end, "[DOING]")
	if !ok {
		return content
	}

	target := -1
	for i := dIdx + 1; i < dEnd; i++ {
		if isBlank(lines[i]) || isSeparator(lines[i]) {
			continue
		}
		if linesMatch(lines[i], doingRawLine) {
			target = i
			break
		}
	}
	if target < 0 {
		return content
	}

	cleaned := stripMarkers(lines[target])
	base, _ := ExtractTags(cleaned)

	lines = splice(lines, target, 1)
	removed := 1
	var collapsed bool
	if lines, collapsed = collapseBlankAt(lines, target); collapsed {
		removed++
	}
	blkEnd := blk.end - removed

	if hIdx, _, ok := findSection(lines, blk.start, blkEnd, "[DONE]"); ok {
		lines = splice(lines, hIdx+1, 0, "x "+cleaned)
		blkEnd++
	} else {
		_, newDoingEnd, _ := findSection(lines, blk.start, blkEnd, "[DOING]")
		insert := []string{"[DONE]", "x " + cleaned, ""}
		if newDoingEnd > blk.start+1 && !isBlank(lines[newDoingEnd-1]) {
			insert = append([]string{""}, insert...)
		}
		lines = splice(lines, newDoingEnd, 0, insert...)
		blkEnd += len(insert)
	}

	if eIdx, eEnd, ok := findSection(lines, blk.start, blkEnd, "[EVENTS]"); ok {
		for i := eIdx + 1; i < eEnd; i++ {
			if !isChildLine(lines[i]) || isBlank(lines[i]) || isCompleted(lines[i]) {
				continue
			}
			childBase, _ := ExtractTags(lines[i])
			if normalize(childBase) != normalize(base) {
				continue
			}
			lines[i] = leadingWhitespace(lines[i]) + "x " + stripMarkers(lines[i])
			break
		}
	}
	return joinLines(lines)
}

// DeleteEvent removes the matching top-level EVENTS line together with its
// contiguous run of indented child lines. Sibling events are untouched.
func DeleteEvent(content, date, eventRawLine string) string {
	lines := splitLines(content)
	blk, ok := findDateBlock(lines, date)
	if !ok {
		return content
	}
	eIdx, eEnd, ok := findSection(lines, blk.start, blk.end, "[EVENTS]")
	if !ok {
		return content
	}
	for i := eIdx + 1; i < eEnd; i++ {
		l := lines[i]
		if isBlank(l) || isSeparator(l) || isChildLine(l) {
			continue
		}
		if !eventLinesMatch(l, eventRawLine) {
			continue
		}
		j := i + 1
		for j < eEnd && isChildLine(lines[j]) && !isBlank(lines[j]) {
			j++
		}
		lines = splice(lines, i, j-i)
		lines, _ = collapseBlankAt(lines, i)
		return joinLines(lines)
	}
	return content
}

// DeleteEventSubtask removes the matching indented EVENTS child line and,
// best-effort, the DOING line whose tag-stripped text mirrors it. Duplicated
// date headers are tolerated the same way AttachChildTask tolerates them.
func DeleteEventSubtask(content, date, subtaskRawLine string) string {
	lines := splitLines(content)
	for _, blk := range findDateBlocks(lines, date) {
		eIdx, eEnd, ok := findSection(lines, blk.start, blk.end, "[EVENTS]")
		if !ok {
			continue
		}
		for i := eIdx + 1; i < eEnd; i++ {
			if !isChildLine(lines[i]) || isBlank(lines[i]) {
				continue
			}
			if !linesMatch(lines[i], subtaskRawLine) {
				continue
			}
			base, _ := ExtractTags(lines[i])

			lines = splice(lines, i, 1)
			removed := 1
			var collapsed bool
			if lines, collapsed = collapseBlankAt(lines, i); collapsed {
				removed++
			}
			blkEnd := blk.end - removed

			if dIdx, dEnd, ok := findSection(lines, blk.start, blkEnd, "[DOING]"); ok {
				for k := dIdx + 1; k < dEnd; k++ {
					if isBlank(lines[k]) || isSeparator(lines[k]) {
						continue
					}
					doingBase, _ := ExtractTags(lines[k])
					if normalize(doingBase) != normalize(base) {
						continue
					}
					lines = splice(lines, k, 1)
					lines, _ = collapseBlankAt(lines, k)
					break
				}
			}
			return joinLines(lines)
		}
	}
	return content
}
