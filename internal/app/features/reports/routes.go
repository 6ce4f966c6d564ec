// internal/app/features/reports/routes.go
package reports

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /reports.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/courses", h.ServeCourses)
	return r
}
