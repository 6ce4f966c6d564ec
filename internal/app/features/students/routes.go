// internal/app/features/students/routes.go
package students

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /students.
//
// /search must be registered before /{id} so chi does not swallow it as
// an ID parameter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)

	r.Get("/search", h.ServeSearchByName)

	r.Get("/{id}", h.ServeByID)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	// Enrollment: course references held on the student record
	r.Post("/{studentID}/courses/{courseID}", h.HandleEnroll)
	r.Delete("/{studentID}/courses/{courseID}", h.HandleUnenroll)

	r.Get("/{studentID}/report", h.ServeReport)

	return r
}
