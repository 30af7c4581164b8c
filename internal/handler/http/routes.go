package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes", h.listNotes)
		r.Get("/api/notes/my", h.listMyNotes)
		r.Get("/api/notes/{id}", h.noteByID)
		r.Patch("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)

		// admin routes: the role check happens in the service layer with a
		// fresh directory lookup, never here from the token.
		r.Get("/api/admin/notes", h.adminListNotes)
		r.Delete("/api/admin/notes/{id}", h.adminDeleteNote)
	})

	return router
}
