package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/dagaz/internal/journalservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *journalservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Journals CRUD. The GET wildcard also serves /dates and /carryover
	// subresources; the POST wildcard serves /ops.
	r.Get("/journals", h.ListJournals)
	r.Post("/journals", h.CreateJournal)
	r.Get("/journals/*", h.GetJournal)
	r.Put("/journals/*", h.UpdateJournal)
	r.Delete("/journals/*", h.DeleteJournal)
	r.Post("/journals/*", h.ApplyOp)

	// Search.
	r.Get("/search", h.Search)

	// Open DOING items across journals.
	r.Get("/items/open", h.OpenItems)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
