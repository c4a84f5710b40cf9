package journalservice

import (
	"context"
	"errors"
	"os"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/calendar"
	"github.com/starford/dagaz/internal/checksum"
	"github.com/starford/dagaz/internal/index"
	"github.com/starford/dagaz/internal/journal"
)

// apply runs a text mutation against the journal at path. When the mutation
// changes nothing the file is left untouched and changed is false; otherwise
// the new content is written atomically and reindexed.
func (s *Service) apply(path, ifMatch string, mutate func(string) string) (detail *JournalDetail, changed bool, err error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, apperr.ErrNotFound
		}
		return nil, false, err
	}
	if ifMatch != "" && ifMatch != checksum.Sum(data) {
		return nil, false, apperr.ErrConflict
	}

	out := mutate(string(data))
	if out == string(data) {
		return buildDetail(path, data), false, nil
	}

	outBytes := []byte(out)
	if err := s.store.Write(path, outBytes); err != nil {
		return nil, false, err
	}
	if err := index.IndexFile(s.db, path, outBytes); err != nil {
		return nil, false, err
	}
	return buildDetail(path, outBytes), true, nil
}

// ApplyUpdateSection replaces the body of a section in the date's block,
// creating the section or the whole day block as needed.
func (s *Service) ApplyUpdateSection(_ context.Context, path, ifMatch, date, section string, items []string) (*JournalDetail, bool, error) {
	if date == "" || section == "" {
		return nil, false, apperr.ErrInvalid
	}
	return s.apply(path, ifMatch, func(content string) string {
		return journal.UpdateSectionForDate(content, date, section, items)
	})
}

// ApplyAttachChild inserts an indented child under the matching event line and
// mirrors it into the block's DOING section.
func (s *Service) ApplyAttachChild(_ context.Context, path, ifMatch, date, eventLine, taskName string) (*JournalDetail, bool, error) {
	if date == "" || eventLine == "" || taskName == "" {
		return nil, false, apperr.ErrInvalid
	}
	return s.apply(path, ifMatch, func(content string) string {
		return journal.AttachChildTask(content, date, eventLine, taskName)
	})
}

// ApplyToggle flips the completion marker on the byte-exact line.
func (s *Service) ApplyToggle(_ context.Context, path, ifMatch, rawLine string) (*JournalDetail, bool, error) {
	if rawLine == "" {
		return nil, false, apperr.ErrInvalid
	}
	return s.apply(path, ifMatch, func(content string) string {
		return journal.ToggleCompletion(content, rawLine)
	})
}

// ApplyMoveDone moves a DOING line to the top of DONE, completed, and marks
// the mirrored EVENTS child when one exists.
func (s *Service) ApplyMoveDone(_ context.Context, path, ifMatch, date, doingLine string) (*JournalDetail, bool, error) {
	if date == "" || doingLine == "" {
		return nil, false, apperr.ErrInvalid
	}
	return s.apply(path, ifMatch, func(content string) string {
		return journal.MoveDoingToDone(content, date, doingLine)
	})
}

// ApplyDeleteEvent removes an event line and its indented children.
func (s *Service) ApplyDeleteEvent(_ context.Context, path, ifMatch, date, eventLine string) (*JournalDetail, bool, error) {
	if date == "" || eventLine == "" {
		return nil, false, apperr.ErrInvalid
	}
	return s.apply(path, ifMatch, func(content string) string {
		return journal.DeleteEvent(content, date, eventLine)
	})
}

// ApplyDeleteSubtask removes an indented event child and its DOING mirror.
func (s *Service) ApplyDeleteSubtask(_ context.Context, path, ifMatch, date, subtaskLine string) (*JournalDetail, bool, error) {
	if date == "" || subtaskLine == "" {
		return nil, false, apperr.ErrInvalid
	}
	return s.apply(path, ifMatch, func(content string) string {
		return journal.DeleteEventSubtask(content, date, subtaskLine)
	})
}

// ApplyDedupe merges duplicated date blocks into one canonical block per date.
func (s *Service) ApplyDedupe(_ context.Context, path, ifMatch string) (*JournalDetail, bool, error) {
	return s.apply(path, ifMatch, journal.DedupeDateBlocks)
}

// SeedDay merges any duplicated date blocks, then creates the date's block
// populated with calendar events and the unfinished DOING items carried over
// from the previous day. A date already present in the journal is not seeded
// again.
func (s *Service) SeedDay(ctx context.Context, path, ifMatch, date string) (*JournalDetail, bool, error) {
	if date == "" {
		return nil, false, apperr.ErrInvalid
	}

	var events []calendar.Event
	if s.cal != nil {
		var err error
		events, err = s.cal.FetchEvents(ctx, date)
		if err != nil {
			return nil, false, err
		}
	}
	eventLines := make([]string, len(events))
	for i, e := range events {
		eventLines[i] = e.Line()
	}

	return s.apply(path, ifMatch, func(content string) string {
		content = journal.DedupeDateBlocks(content)
		if journal.ContentHasDate(content, date) {
			return content
		}
		carry := journal.CarryOverDoingItems(content, date)
		out := journal.UpdateSectionForDate(content, date, "EVENTS", eventLines)
		if len(carry) > 0 {
			out = journal.UpdateSectionForDate(out, date, "DOING", carry)
		}
		return out
	})
}
