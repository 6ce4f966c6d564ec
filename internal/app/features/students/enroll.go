// internal/app/features/students/enroll.go
package students

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
)

// HandleEnroll handles POST /students/{studentID}/courses/{courseID}.
// Enrolling in a course the student already holds is a no-op success.
// The course ID is not validated against the courses collection.
func (h *Handler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	studentID := chi.URLParam(r, "studentID")
	courseID := chi.URLParam(r, "courseID")

	st, err := h.Svc.Enroll(ctx, studentID, courseID)
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{Message: "Course added successfully.", Data: st})
}

// HandleUnenroll handles DELETE /students/{studentID}/courses/{courseID}.
// Removing a course the student never held is a no-op success.
func (h *Handler) HandleUnenroll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	studentID := chi.URLParam(r, "studentID")
	courseID := chi.URLParam(r, "courseID")

	st, err := h.Svc.Unenroll(ctx, studentID, courseID)
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Message: "Course removed successfully.", Data: st})
}
