// internal/app/features/courses/routes.go
package courses

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /courses.
//
// /search and /dates must be registered before /{id} so chi does not
// swallow them as ID parameters.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)

	r.Get("/search", h.ServeSearchByName)
	r.Get("/dates", h.ServeFilterByDates)

	r.Get("/{id}", h.ServeByID)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	r.Get("/{courseID}/report", h.ServeReport)

	return r
}
