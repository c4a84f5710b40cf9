package index

import (
	"log/slog"
	"sort"

	"github.com/starford/dagaz/internal/checksum"
	"github.com/starford/dagaz/internal/journal"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/storage"
)

// Sync walks the journals directory and brings the index up to date:
//   - new/changed files are parsed and upserted
//   - files removed from disk are deleted from the index
func Sync(db *DB, store storage.Provider, logger *slog.Logger) error {
	metas, err := store.List("")
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Path] = struct{}{}

		if checksums[m.Path] == m.Checksum {
			continue
		}

		data, err := store.Read(m.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		if err := IndexFile(db, m.Path, data); err != nil {
			logger.Warn("sync: index failed", slog.String("path", m.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", m.Path))
		}
	}

	// Remove stale entries.
	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteJournal(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// IndexFile parses data and upserts the journal plus its flattened items.
// Exported so the service layer can reindex after a write.
func IndexFile(db *DB, path string, data []byte) error {
	content := string(data)
	days := journal.Parse(content)

	var items []ItemRow
	tagSet := map[string]struct{}{}
	for _, day := range days {
		for _, sec := range day.Sections {
			for _, it := range sec.Items {
				items = append(items, itemRow(path, day.Date, sec.Label, "", it, tagSet))
				for _, child := range it.Children {
					items = append(items, itemRow(path, day.Date, sec.Label, it.DisplayText, child, tagSet))
				}
			}
		}
	}

	tags := make([]string, 0, len(tagSet))
	for t := range tagSet {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	row := JournalRow{
		Path:     path,
		Checksum: checksum.Sum(data),
		Dates:    journal.ExtractDates(content),
		Tags:     tags,
	}
	return db.UpsertJournal(row, content, items)
}

func itemRow(path, date, section, parent string, it models.Item, tagSet map[string]struct{}) ItemRow {
	for _, t := range it.Tags {
		tagSet[t] = struct{}{}
	}
	return ItemRow{
		JournalPath: path,
		Date:        date,
		Section:     section,
		Parent:      parent,
		Text:        it.DisplayText,
		Completed:   it.IsCompleted,
		Tags:        it.Tags,
	}
}
