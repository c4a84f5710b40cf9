package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/journalservice"
)

// OpRequest is the tagged union body for POST /api/journals/{path}/ops.
// Op selects the mutation; the other fields are read per operation:
//
//	update_section: date, section, items
//	attach_child:   date, line (the event line), task_name
//	toggle:         line (byte-exact raw line)
//	move_done:      date, line (the DOING line)
//	delete_event:   date, line (the event line)
//	delete_subtask: date, line (the indented child line)
//	dedupe:         no fields
//	seed_day:       date
type OpRequest struct {
	Op       string   `json:"op" validate:"required"`
	Date     string   `json:"date,omitempty"`
	Section  string   `json:"section,omitempty"`
	Items    []string `json:"items,omitempty"`
	Line     string   `json:"line,omitempty"`
	TaskName string   `json:"task_name,omitempty"`
}

// OpResponse reports whether the operation changed the journal, with the
// resulting state either way.
type OpResponse struct {
	Changed bool                          `json:"changed"`
	Journal *journalservice.JournalDetail `json:"journal"`
}

// ApplyOp handles POST /api/journals/*. The wildcard must end in /ops; the
// remainder is the journal path.
func (h *Handler) ApplyOp(w http.ResponseWriter, r *http.Request) {
	raw := journalPath(r)
	if !strings.HasSuffix(raw, "/ops") {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	path := strings.TrimSuffix(raw, "/ops")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req OpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	ifMatch := ifMatchHeader(r)
	ctx := r.Context()

	var (
		detail  *journalservice.JournalDetail
		changed bool
		err     error
	)
	switch req.Op {
	case "update_section":
		detail, changed, err = h.svc.ApplyUpdateSection(ctx, path, ifMatch, req.Date, req.Section, req.Items)
	case "attach_child":
		detail, changed, err = h.svc.ApplyAttachChild(ctx, path, ifMatch, req.Date, req.Line, req.TaskName)
	case "toggle":
		detail, changed, err = h.svc.ApplyToggle(ctx, path, ifMatch, req.Line)
	case "move_done":
		detail, changed, err = h.svc.ApplyMoveDone(ctx, path, ifMatch, req.Date, req.Line)
	case "delete_event":
		detail, changed, err = h.svc.ApplyDeleteEvent(ctx, path, ifMatch, req.Date, req.Line)
	case "delete_subtask":
		detail, changed, err = h.svc.ApplyDeleteSubtask(ctx, path, ifMatch, req.Date, req.Line)
	case "dedupe":
		detail, changed, err = h.svc.ApplyDedupe(ctx, path, ifMatch)
	case "seed_day":
		detail, changed, err = h.svc.SeedDay(ctx, path, ifMatch, req.Date)
	default:
		writeJSON(w, http.StatusBadRequest, errorBody("unknown op: "+req.Op))
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrInvalid):
			writeJSON(w, http.StatusBadRequest, errorBody("missing required op fields"))
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		case errors.Is(err, apperr.ErrConflict):
			writeJSON(w, http.StatusConflict, errorBody("checksum mismatch"))
		default:
			slog.Error("apply op failed",
				slog.String("path", path),
				slog.String("op", req.Op),
				slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, OpResponse{Changed: changed, Journal: detail})
}
